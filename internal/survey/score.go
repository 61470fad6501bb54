package survey

import "math"

// DefaultMaxMissing is the default number of unanswered questions a
// subject may have and still receive a score.
const DefaultMaxMissing = 1

// Score computes each subject's score and stores it on the analysis table
// in place, overwriting any previous score column. The question columns
// are coerced to numeric first (also in place), so unparseable answers
// become missing. A subject with more than maxMissing missing answers is
// left unscored (nil, never zero); otherwise the score is the floor of the
// mean of the answered questions. The mean is floored, not rounded, and
// the result is not clamped.
//
// Returns the mutated table for convenience.
func (a *Analysis) Score(maxMissing int) (*Table, error) {
	if a.tab == nil {
		return nil, ErrNotLoaded
	}

	var scored, unscored int
	for idx := range a.tab.Records {
		r := &a.tab.Records[idx]
		vals := make([]float64, NumQuestions)
		for i, q := range r.Q {
			vals[i] = asNumber(q)
			r.Q[i] = vals[i]
		}
		mean, missing := rowMean(vals)
		if missing > maxMissing || isMissing(mean) {
			r.Score = nil
			unscored++
			continue
		}
		s := int(math.Floor(mean))
		r.Score = &s
		scored++
	}
	a.log.Debug().
		Int("scored", scored).
		Int("unscored", unscored).
		Int("max_missing", maxMissing).
		Msg("scored subjects")
	return a.tab, nil
}
