package survey

import (
	"fmt"
	"math"
	"sort"
)

// Age group labels derived from the age column.
const (
	AgeGroupAbove40 = "above_40"
	AgeGroupBelow40 = "below_40"
)

// ageGroupCutoff splits subjects at age 40 (inclusive above).
const ageGroupCutoff = 40.0

// GroupMeans holds the per-question answer means for one
// (gender, age group) combination.
type GroupMeans struct {
	Gender   string
	AgeGroup string
	// Q holds the mean of each question over the group's non-missing
	// answers; NaN when nobody in the group answered that question.
	Q [NumQuestions]float64
	// N is the number of rows in the group.
	N int
}

// CorrelateGenderAge breaks the answers down by gender and age group and
// returns the mean of each question per group, sorted by (gender, age
// group). The age column is coerced to numeric in place and an age_group
// column is derived on the analysis table: above_40 when age >= 40, else
// below_40. A missing age fails the >= 40 comparison and therefore lands
// in below_40; that quirk is part of the established behavior and is kept
// as is. Rows with a missing gender are excluded from the grouping, and
// combinations with no rows do not appear in the result.
func (a *Analysis) CorrelateGenderAge() ([]GroupMeans, error) {
	if a.tab == nil {
		return nil, ErrNotLoaded
	}

	type acc struct {
		n   int
		sum [NumQuestions]float64
		cnt [NumQuestions]int
	}
	type key struct{ gender, ageGroup string }
	groups := map[key]*acc{}

	for idx := range a.tab.Records {
		r := &a.tab.Records[idx]
		age := asNumber(r.Age)
		r.Age = age
		if age >= ageGroupCutoff {
			r.AgeGroup = AgeGroupAbove40
		} else {
			r.AgeGroup = AgeGroupBelow40
		}
		if r.Gender == nil {
			continue
		}
		k := key{gender: fmt.Sprint(r.Gender), ageGroup: r.AgeGroup}
		g := groups[k]
		if g == nil {
			g = &acc{}
			groups[k] = g
		}
		g.n++
		for i, q := range r.Q {
			if v := asNumber(q); !isMissing(v) {
				g.sum[i] += v
				g.cnt[i]++
			}
		}
	}

	out := make([]GroupMeans, 0, len(groups))
	for k, g := range groups {
		gm := GroupMeans{Gender: k.gender, AgeGroup: k.ageGroup, N: g.n}
		for i := 0; i < NumQuestions; i++ {
			if g.cnt[i] == 0 {
				gm.Q[i] = math.NaN()
				continue
			}
			gm.Q[i] = g.sum[i] / float64(g.cnt[i])
		}
		out = append(out, gm)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Gender == out[j].Gender {
			return out[i].AgeGroup < out[j].AgeGroup
		}
		return out[i].Gender < out[j].Gender
	})
	a.log.Debug().Int("groups", len(out)).Msg("correlated gender and age group")
	return out, nil
}
