package analysis

import (
	"math"

	"github.com/jsphweid/smart/score"
)

var durationCategories = []string{
	"sixteenth", "0.35", "eighth", "0.71", "quarter", "1.41", "half", "2.83", "whole",
}

// durationBin maps a duration in quarters onto a 9-bin logarithmic
// scale centered on the sixteenth through the whole note. Durations
// outside the scale report -1 and are ignored.
func durationBin(dur float64) int {
	if dur <= 0 {
		return -1
	}
	bin := int(math.Round(2*math.Log2(dur))) + 4
	if bin < 0 || bin > 8 {
		return -1
	}
	return bin
}

// DurationDistribution computes the distribution of note durations
// over 9 logarithmic bins (durdist1).
func DurationDistribution(s *score.Score) *Distribution {
	data := make([]float64, 9)
	for _, container := range score.NoteContainers(s) {
		for _, n := range score.Notes(container) {
			if bin := durationBin(n.Duration()); bin >= 0 {
				data[bin]++
			}
		}
	}
	normalize(data)
	return &Distribution{
		Name:        "Duration Distribution",
		Type:        Duration,
		Dimensions:  []int{9},
		Data:        data,
		XCategories: durationCategories,
		XLabel:      "Duration (quarters)",
		YLabel:      "Proportion",
	}
}

// DurationTransitionDistribution computes the second-order duration
// distribution (durdist2): cell [i][j] is the proportion of notes in
// bin i followed by a note in bin j. A note falling outside the bins
// breaks the pair on both sides. The score must be monophonic.
func DurationTransitionDistribution(s *score.Score) (*Distribution, error) {
	if !IsMonophonic(s) {
		return nil, ErrNotMonophonic
	}
	data := make([]float64, 9*9)
	for _, container := range score.NoteContainers(s) {
		prevBin := -1
		for _, n := range score.Notes(container) {
			bin := durationBin(n.Duration())
			if bin >= 0 && prevBin >= 0 {
				data[prevBin*9+bin]++
			}
			prevBin = bin
		}
	}
	normalize(data)
	return &Distribution{
		Name:        "Duration Transition Distribution",
		Type:        DurationTransition,
		Dimensions:  []int{9, 9},
		Data:        data,
		XCategories: durationCategories,
		XLabel:      "Duration (to)",
		YCategories: durationCategories,
		YLabel:      "Duration (from)",
	}, nil
}
