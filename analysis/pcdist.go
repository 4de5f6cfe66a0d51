package analysis

import (
	"github.com/jsphweid/smart/score"
)

// PitchClassDistribution computes the duration-weighted distribution
// of pitch classes across all notes of the score (pcdist1).
func PitchClassDistribution(s *score.Score, weighted bool) *Distribution {
	data := make([]float64, 12)
	for _, container := range score.NoteContainers(s) {
		for _, n := range score.Notes(container) {
			w := 1.0
			if weighted {
				w = n.Duration()
			}
			data[n.Pitch.PitchClass()] += w
		}
	}
	normalize(data)
	return &Distribution{
		Name:        "Pitch Class Distribution",
		Type:        PitchClass,
		Dimensions:  []int{12},
		Data:        data,
		XCategories: pitchClassNames,
		XLabel:      "Pitch Class",
		YLabel:      "Proportion",
	}
}

// PitchClassTransitionDistribution computes the second-order
// pitch-class distribution (pcdist2): cell [i][j] is the weight of
// transitions from pitch class i to pitch class j between consecutive
// notes of the same container, weighted by the product of the two
// note durations.
func PitchClassTransitionDistribution(s *score.Score, weighted bool) *Distribution {
	data := make([]float64, 12*12)
	for _, container := range score.NoteContainers(s) {
		notes := score.Notes(container)
		for i := 1; i < len(notes); i++ {
			prev, cur := notes[i-1], notes[i]
			w := 1.0
			if weighted {
				w = prev.Duration() * cur.Duration()
			}
			data[prev.Pitch.PitchClass()*12+cur.Pitch.PitchClass()] += w
		}
	}
	normalize(data)
	return &Distribution{
		Name:        "Pitch Class Transition Distribution",
		Type:        PitchClassTransition,
		Dimensions:  []int{12, 12},
		Data:        data,
		XCategories: pitchClassNames,
		XLabel:      "To Pitch Class",
		YCategories: pitchClassNames,
		YLabel:      "From Pitch Class",
	}
}
