package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var describeCmd = &cobra.Command{
	Use:   "describe <data.json>",
	Short: "Show dataset dimensions, column summaries and age statistics",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadAnalysis(args[0])
		if err != nil {
			return err
		}
		df, err := a.Frame()
		if err != nil {
			return err
		}
		rows, cols := df.Dims()
		fmt.Printf("%d rows x %d columns\n\n", rows, cols)
		fmt.Println(df.Describe())

		s, err := a.AgeSummary()
		if err != nil {
			return err
		}
		if s.N == 0 {
			fmt.Println("no parseable ages")
			return nil
		}
		fmt.Printf("age: n %d  mean %.2f  std dev %.2f  median %.2f  min %.0f  max %.0f\n",
			s.N, s.Mean, s.StdDev, s.Median, s.Min, s.Max)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
}
