package survey

// Age histogram bin layout: ten fixed-width bins spanning 0-100.
const (
	histBins     = 10
	histBinWidth = 10.0
	histMax      = 100.0
)

// AgeDistribution buckets the participants' ages into ten fixed-width bins
// [0,10), [10,20), ... [90,100] and returns the per-bin counts together
// with the eleven bin edges. The age column is coerced to numeric in place
// first (unparseable ages become missing); missing and out-of-range ages
// are excluded, so the counts sum to the number of rows with a parseable
// in-range age.
func (a *Analysis) AgeDistribution() (counts []int, edges []float64, err error) {
	if a.tab == nil {
		return nil, nil, ErrNotLoaded
	}

	counts = make([]int, histBins)
	edges = make([]float64, histBins+1)
	for i := range edges {
		edges[i] = float64(i) * histBinWidth
	}

	var valid int
	for i := range a.tab.Records {
		r := &a.tab.Records[i]
		age := asNumber(r.Age)
		r.Age = age
		if isMissing(age) || age < 0 || age > histMax {
			continue
		}
		bin := int(age / histBinWidth)
		if bin == histBins { // last bin is right-inclusive
			bin--
		}
		counts[bin]++
		valid++
	}
	a.log.Debug().Int("valid_ages", valid).Msg("computed age distribution")
	return counts, edges, nil
}
