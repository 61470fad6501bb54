package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/surveyloom-cli/internal/render"
	"github.com/KaramelBytes/surveyloom-cli/internal/survey"
)

var imputeValidOnly bool

var imputeCmd = &cobra.Command{
	Use:   "impute <data.json>",
	Short: "Fill unanswered questions with the subject's own mean answer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadAnalysis(args[0])
		if err != nil {
			return err
		}
		tab := a.Table()
		if imputeValidOnly {
			tab, err = a.FilterValidEmails()
			if err != nil {
				return err
			}
		}
		filled, indices := survey.ImputeTable(tab)
		fmt.Printf("filled %d rows (indices %v)\n", len(indices), indices)
		render.FprintRecords(os.Stdout, filled, configuredPreviewRows())
		return nil
	},
}

func init() {
	imputeCmd.Flags().BoolVar(&imputeValidOnly, "valid-only", false, "drop rows without a valid email before imputing")
	rootCmd.AddCommand(imputeCmd)
}
