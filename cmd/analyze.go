package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/surveyloom-cli/internal/render"
)

var anaMaxMissing int

var analyzeCmd = &cobra.Command{
	Use:   "analyze <data.json>",
	Short: "Run the full cleaning and summary pipeline over a survey file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadAnalysis(args[0])
		if err != nil {
			return err
		}

		counts, edges, err := a.AgeDistribution()
		if err != nil {
			return err
		}
		render.FprintHistogram(os.Stdout, counts, edges)

		filtered, err := a.FilterValidEmails()
		if err != nil {
			return err
		}
		fmt.Printf("\n%d of %d rows have a valid email\n", filtered.Len(), a.Table().Len())

		_, indices, err := a.ImputeMissing()
		if err != nil {
			return err
		}
		fmt.Printf("%d rows had unanswered questions imputed\n\n", len(indices))

		maxMissing := configuredMaxMissing()
		if cmd.Flags().Changed("max-missing") {
			maxMissing = anaMaxMissing
		}
		if _, err := a.Score(maxMissing); err != nil {
			return err
		}
		render.FprintScores(os.Stdout, a.Table())

		groups, err := a.CorrelateGenderAge()
		if err != nil {
			return err
		}
		fmt.Println()
		render.FprintGroupMeans(os.Stdout, groups)
		return nil
	},
}

func init() {
	analyzeCmd.Flags().IntVar(&anaMaxMissing, "max-missing", 1, "max unanswered questions before a subject is unscored (overrides config)")
	rootCmd.AddCommand(analyzeCmd)
}
