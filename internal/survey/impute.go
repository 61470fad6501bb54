package survey

// ImputeTable fills unanswered questions on a copy of t. For every row
// with at least one missing answer among q1..q5, the row's index is
// recorded and each missing answer is replaced with the mean of that row's
// own answered questions (a row-wise mean, not a column-wise one). A value
// counts as missing when it fails numeric coercion, so null, absent and
// garbage answers are all filled alike.
//
// A row with all five answers missing has no defined mean; its answers are
// set to NaN and the row is still reported. t is not modified; indices
// refer to its row order, ascending.
func ImputeTable(t *Table) (*Table, []int) {
	filled := t.Copy()
	indices := []int{}
	vals := make([]float64, NumQuestions)

	for idx := range filled.Records {
		r := &filled.Records[idx]
		for i, q := range r.Q {
			vals[i] = asNumber(q)
		}
		mean, missing := rowMean(vals)
		if missing == 0 {
			continue
		}
		indices = append(indices, idx)
		for i := range r.Q {
			if isMissing(vals[i]) {
				r.Q[i] = mean // NaN when the whole row was blank
			}
		}
	}
	return filled, indices
}

// ImputeMissing runs ImputeTable over the analysis table, leaving the
// stored table untouched.
func (a *Analysis) ImputeMissing() (*Table, []int, error) {
	if a.tab == nil {
		return nil, nil, ErrNotLoaded
	}
	filled, indices := ImputeTable(a.tab)
	a.log.Debug().Int("rows_filled", len(indices)).Msg("imputed missing answers")
	return filled, indices, nil
}
