package model

import (
	"math"
	"sort"
)

// Attribution is the display view of one feature's effect on the score:
// its name, signed logit contribution, and the raw input value.
type Attribution struct {
	Name          string  `json:"name" yaml:"name"`
	Key           string  `json:"key" yaml:"key"`
	Contribution  float64 `json:"contribution" yaml:"contribution"`
	OriginalValue float64 `json:"original_value" yaml:"originalValue"`
}

// IncreasesRisk reports whether the attribution pushes the prediction
// toward disease. A contribution of exactly zero counts as increasing.
func (a Attribution) IncreasesRisk() bool {
	return a.Contribution >= 0
}

// Rank zips contributions with the feature table and orders the result
// by descending absolute contribution. The sort is stable: equal
// magnitudes keep their original feature order, so repeated calls on the
// same input produce the same ordering.
func Rank(contributions, features []float64) []Attribution {
	attrs := make([]Attribution, len(contributions))
	for i, c := range contributions {
		attrs[i] = Attribution{
			Name:          specs[i].Name,
			Key:           specs[i].Key,
			Contribution:  c,
			OriginalValue: features[i],
		}
	}
	sort.SliceStable(attrs, func(i, j int) bool {
		return math.Abs(attrs[i].Contribution) > math.Abs(attrs[j].Contribution)
	})
	return attrs
}

// TopN returns the first n ranked attributions, or all of them when the
// slice is shorter.
func TopN(attrs []Attribution, n int) []Attribution {
	if n > len(attrs) {
		n = len(attrs)
	}
	return attrs[:n]
}
