package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/surveyloom-cli/internal/render"
)

var scoreMaxMissing int

var scoreCmd = &cobra.Command{
	Use:   "score <data.json>",
	Short: "Compute each subject's score (floored mean of answered questions)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadAnalysis(args[0])
		if err != nil {
			return err
		}
		maxMissing := configuredMaxMissing()
		if cmd.Flags().Changed("max-missing") {
			maxMissing = scoreMaxMissing
		}
		tab, err := a.Score(maxMissing)
		if err != nil {
			return err
		}
		render.FprintScores(os.Stdout, tab)
		return nil
	},
}

func init() {
	scoreCmd.Flags().IntVar(&scoreMaxMissing, "max-missing", 1, "max unanswered questions before a subject is unscored (overrides config)")
	rootCmd.AddCommand(scoreCmd)
}
