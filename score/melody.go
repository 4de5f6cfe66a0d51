package score

import (
	"fmt"

	"github.com/jsphweid/smart/pitch"
)

// FromMelody builds a flat one-part score from MIDI key numbers with
// sequential timing: each note starts where the previous one ends.
// durations must have length 1 (applied to every note) or match
// keynums.
func FromMelody(keynums []int, durations []float64) (*Score, error) {
	if len(durations) == 1 && len(keynums) > 1 {
		d := durations[0]
		durations = make([]float64, len(keynums))
		for i := range durations {
			durations[i] = d
		}
	}
	if len(durations) != len(keynums) {
		return nil, fmt.Errorf("score: %d keynums but %d durations", len(keynums), len(durations))
	}
	onsets := make([]float64, len(keynums))
	t := 0.0
	for i, d := range durations {
		onsets[i] = t
		t += d
	}
	return FromMelodyOnsets(keynums, onsets, durations)
}

// FromMelodyOnsets builds a flat one-part score from parallel slices of
// key numbers, absolute onsets, and durations. Notes must not overlap.
func FromMelodyOnsets(keynums []int, onsets, durations []float64) (*Score, error) {
	if len(onsets) != len(keynums) || len(durations) != len(keynums) {
		return nil, fmt.Errorf("score: keynums, onsets, and durations must have equal length")
	}
	for i := 0; i+1 < len(onsets); i++ {
		if onsets[i]+durations[i] > onsets[i+1] {
			return nil, fmt.Errorf("score: note %d ends at %g but note %d starts at %g",
				i, onsets[i]+durations[i], i+1, onsets[i+1])
		}
	}

	s := NewScore(nil)
	p := NewPart(1, "", 0)
	s.Insert(p)
	end := 0.0
	for i, kn := range keynums {
		p.Insert(NewNote(onsets[i], durations[i], pitch.New(kn)))
		if off := onsets[i] + durations[i]; off > end {
			end = off
		}
	}
	s.duration = end
	p.duration = end
	return s, nil
}
