package render

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/KaramelBytes/surveyloom-cli/internal/survey"
)

// FprintGroupMeans writes the gender/age-group mean table.
func FprintGroupMeans(w io.Writer, groups []survey.GroupMeans) {
	headline.Fprintln(w, "Mean answers by gender and age group")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Gender", "Age Group", "N", "Q1", "Q2", "Q3", "Q4", "Q5"})
	for _, g := range groups {
		row := []string{g.Gender, g.AgeGroup, strconv.Itoa(g.N)}
		for _, m := range g.Q {
			row = append(row, fmtCell(m))
		}
		table.Append(row)
	}
	table.Render()
}

// FprintScores writes each subject's score; unscored subjects show a dash.
func FprintScores(w io.Writer, t *survey.Table) {
	headline.Fprintln(w, "Subject scores")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Row", "Email", "Score"})
	for i, r := range t.Records {
		score := "-"
		if r.Score != nil {
			score = strconv.Itoa(*r.Score)
		}
		table.Append([]string{strconv.Itoa(i), cellString(r.Email), score})
	}
	table.Render()
}

// FprintRecords writes up to limit rows of the table, raw cells as-is.
// Pass limit <= 0 for all rows.
func FprintRecords(w io.Writer, t *survey.Table, limit int) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Row", "Age", "Gender", "Email", "Q1", "Q2", "Q3", "Q4", "Q5"})
	n := t.Len()
	if limit > 0 && limit < n {
		n = limit
	}
	for i := 0; i < n; i++ {
		r := t.Records[i]
		row := []string{strconv.Itoa(i), cellString(r.Age), cellString(r.Gender), cellString(r.Email)}
		for _, q := range r.Q {
			row = append(row, cellString(q))
		}
		table.Append(row)
	}
	table.Render()
	if n < t.Len() {
		fmt.Fprintf(w, "... %d more rows\n", t.Len()-n)
	}
}

// fmtCell formats a mean value, with NaN shown as a dash.
func fmtCell(f float64) string {
	if math.IsNaN(f) {
		return "-"
	}
	return strconv.FormatFloat(f, 'f', 2, 64)
}

// cellString formats a raw cell for display; missing cells show a dash.
func cellString(v any) string {
	switch x := v.(type) {
	case nil:
		return "-"
	case float64:
		if math.IsNaN(x) {
			return "-"
		}
		return strconv.FormatFloat(x, 'f', -1, 64)
	case string:
		return x
	default:
		return fmt.Sprint(x)
	}
}
