package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/surveyloom-cli/internal/render"
)

var emailsCmd = &cobra.Command{
	Use:   "emails <data.json>",
	Short: "Drop rows without a valid email and preview the result",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadAnalysis(args[0])
		if err != nil {
			return err
		}
		filtered, err := a.FilterValidEmails()
		if err != nil {
			return err
		}
		fmt.Printf("kept %d of %d rows\n", filtered.Len(), a.Table().Len())
		render.FprintRecords(os.Stdout, filtered, configuredPreviewRows())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(emailsCmd)
}
