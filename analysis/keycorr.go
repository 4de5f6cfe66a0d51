package analysis

import (
	"math"

	"github.com/jsphweid/smart/score"
	"github.com/jsphweid/smart/util"
)

// Krumhansl-Schmuckler key profiles: perceived stability of each
// pitch class relative to the tonic at index 0.
var (
	majorProfile = []float64{6.35, 2.23, 3.48, 2.33, 4.38, 4.09, 2.52, 5.19, 2.39, 3.66, 2.29, 2.88}
	minorProfile = []float64{6.33, 2.68, 3.52, 5.38, 2.60, 3.53, 2.54, 4.75, 3.98, 2.69, 3.34, 3.17}
)

// KeyCorrelations correlates the score's duration-weighted pitch-class
// distribution against the Krumhansl-Schmuckler profiles of all 24
// keys. Indices 0-11 are the major keys C through B, indices 12-23
// the minor keys. The best-scoring key is the likely tonality.
func KeyCorrelations(s *score.Score) *Distribution {
	pc := PitchClassDistribution(s, true)
	data := make([]float64, 24)
	for tonic := 0; tonic < 12; tonic++ {
		data[tonic] = correlate(pc.Data, rotated(majorProfile, tonic))
		data[tonic+12] = correlate(pc.Data, rotated(minorProfile, tonic))
	}
	cats := make([]string, 24)
	for i, name := range pitchClassNames {
		cats[i] = name + " major"
		cats[i+12] = name + " minor"
	}
	return &Distribution{
		Name:        "Key Correlation",
		Type:        KeyCorrelation,
		Dimensions:  []int{24},
		Data:        data,
		XCategories: cats,
		XLabel:      "Key",
		YLabel:      "Correlation",
	}
}

// BestKey returns the name and correlation of the highest-scoring key.
func BestKey(s *score.Score) (string, float64) {
	d := KeyCorrelations(s)
	best := util.ArgMax(d.Data)
	return d.XCategories[best], d.Data[best]
}

// rotated shifts a profile so the tonic lands on pitch class tonic.
func rotated(profile []float64, tonic int) []float64 {
	out := make([]float64, 12)
	for pc := 0; pc < 12; pc++ {
		out[(pc+tonic)%12] = profile[pc]
	}
	return out
}

// correlate computes the Pearson correlation of two equal-length
// vectors, 0 when either is constant.
func correlate(a, b []float64) float64 {
	n := float64(len(a))
	var meanA, meanB float64
	for i := range a {
		meanA += a[i]
		meanB += b[i]
	}
	meanA /= n
	meanB /= n

	var cov, varA, varB float64
	for i := range a {
		da, db := a[i]-meanA, b[i]-meanB
		cov += da * db
		varA += da * da
		varB += db * db
	}
	if varA == 0 || varB == 0 {
		return 0
	}
	return cov / math.Sqrt(varA*varB)
}
