package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/surveyloom-cli/internal/render"
)

var correlateCmd = &cobra.Command{
	Use:   "correlate <data.json>",
	Short: "Break answer means down by gender and age group",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadAnalysis(args[0])
		if err != nil {
			return err
		}
		groups, err := a.CorrelateGenderAge()
		if err != nil {
			return err
		}
		render.FprintGroupMeans(os.Stdout, groups)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(correlateCmd)
}
