package survey

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// AgeStats summarizes the parseable ages in the table.
type AgeStats struct {
	N      int
	Mean   float64
	StdDev float64
	Median float64
	Min    float64
	Max    float64
}

// Frame converts the loaded table into a gota dataframe with the question
// columns and age coerced to floats (missing values as NaN) so datasets
// can be eyeballed with the dataframe's own tooling. Derived columns are
// included when present.
func (a *Analysis) Frame() (dataframe.DataFrame, error) {
	if a.tab == nil {
		return dataframe.DataFrame{}, ErrNotLoaded
	}

	n := a.tab.Len()
	ages := make([]float64, n)
	genders := make([]string, n)
	emails := make([]string, n)
	qs := make([][]float64, NumQuestions)
	for i := range qs {
		qs[i] = make([]float64, n)
	}
	for idx, r := range a.tab.Records {
		ages[idx] = asNumber(r.Age)
		genders[idx] = stringOrEmpty(r.Gender)
		emails[idx] = stringOrEmpty(r.Email)
		for i, q := range r.Q {
			qs[i][idx] = asNumber(q)
		}
	}

	cols := []series.Series{
		series.New(ages, series.Float, "age"),
		series.New(genders, series.String, "gender"),
		series.New(emails, series.String, "email"),
	}
	for i := range qs {
		cols = append(cols, series.New(qs[i], series.Float, fmt.Sprintf("q%d", i+1)))
	}
	return dataframe.New(cols...), nil
}

// AgeSummary computes sample statistics over the parseable ages. The table
// is not modified. Returns zero-valued stats when no age parses.
func (a *Analysis) AgeSummary() (AgeStats, error) {
	if a.tab == nil {
		return AgeStats{}, ErrNotLoaded
	}
	s := stats.Sample{}
	for _, r := range a.tab.Records {
		if v := asNumber(r.Age); !isMissing(v) {
			s.Xs = append(s.Xs, v)
		}
	}
	if len(s.Xs) == 0 {
		return AgeStats{}, nil
	}
	s.Sort()
	lo, hi := s.Bounds()
	return AgeStats{
		N:      len(s.Xs),
		Mean:   s.Mean(),
		StdDev: s.StdDev(),
		Median: s.Quantile(0.5),
		Min:    lo,
		Max:    hi,
	}, nil
}

func stringOrEmpty(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	if f, ok := v.(float64); ok && math.IsNaN(f) {
		return ""
	}
	return fmt.Sprint(v)
}
