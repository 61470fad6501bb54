// Package render prints analysis results to a terminal. Rendering is
// presentation only: it never fails and writes nothing to disk.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// barWidth is the widest histogram bar in characters.
const barWidth = 40

var headline = color.New(color.Bold, color.FgCyan)

// FprintHistogram writes a labeled ASCII bar chart of the age histogram.
// Bars are scaled to the largest bucket; an empty histogram renders as a
// chart of zero-length bars. Safe in headless environments, it only
// writes text to w.
func FprintHistogram(w io.Writer, counts []int, edges []float64) {
	headline.Fprintln(w, "Age distribution")

	maxCount := 0
	for _, c := range counts {
		if c > maxCount {
			maxCount = c
		}
	}
	for i, c := range counts {
		closing := ")"
		if i == len(counts)-1 {
			closing = "]" // final bucket includes its upper edge
		}
		label := fmt.Sprintf("[%3.0f,%4.0f%s", edges[i], edges[i+1], closing)
		bar := ""
		if maxCount > 0 {
			bar = strings.Repeat("#", c*barWidth/maxCount)
		}
		fmt.Fprintf(w, "%s %-*s %d\n", label, barWidth, bar, c)
	}
	fmt.Fprintln(w, "age bucket x number of participants")
}
