package analysis

import (
	"math"

	"github.com/jsphweid/smart/util"
)

// Entropy computes the relative entropy of a distribution: 0 for a
// point mass, 1 for uniform. The input is normalized first, so raw
// counts are acceptable.
func Entropy(data []float64) float64 {
	if len(data) < 2 {
		return 0
	}
	total := util.Sum(data)
	h := 0.0
	for _, v := range data {
		p := v / (total + 1e-12)
		h -= p * math.Log(p+1e-12)
	}
	return h / math.Log(float64(len(data)))
}
