package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/surveyloom-cli/internal/render"
	"github.com/KaramelBytes/surveyloom-cli/internal/utils"
)

var histJSON bool

var histCmd = &cobra.Command{
	Use:   "hist <data.json>",
	Short: "Show the age distribution of the participants",
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
		if histJSON {
			b, err := utils.PrettyJSON(struct {
				Counts []int     `json:"counts"`
				Edges  []float64 `json:"edges"`
			}{counts, edges})
			if err != nil {
				return err
			}
			fmt.Println(string(b))
			return nil
		}
		render.FprintHistogram(os.Stdout, counts, edges)
		return nil
	},
}

func init() {
	histCmd.Flags().BoolVar(&histJSON, "json", false, "print counts and edges as JSON instead of a chart")
	rootCmd.AddCommand(histCmd)
}
