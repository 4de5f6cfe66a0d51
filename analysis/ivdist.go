package analysis

import (
	"github.com/pkg/errors"

	"github.com/jsphweid/smart/score"
)

// ErrNotMonophonic reports that an algorithm requiring one melodic
// line per container was given overlapping notes.
var ErrNotMonophonic = errors.New("analysis: score is not monophonic")

// addIntervals accumulates melodic intervals between consecutive
// notes into a 25-bin distribution (-12..+12 semitones at index+12).
// Intervals wider than an octave are discarded.
func addIntervals(data []float64, notes []*score.Note, weighted bool) {
	for i := 1; i < len(notes); i++ {
		prev, cur := notes[i-1], notes[i]
		diff := cur.Pitch.Keynum - prev.Pitch.Keynum
		if diff < -12 || diff > 12 {
			continue
		}
		if weighted {
			data[diff+12] += prev.Duration() * cur.Duration()
		} else {
			data[diff+12]++
		}
	}
}

// IntervalDistribution computes the distribution of melodic intervals
// between consecutive notes of each container (ivdist1). The score
// must be monophonic.
func IntervalDistribution(s *score.Score, weighted bool) (*Distribution, error) {
	if !IsMonophonic(s) {
		return nil, ErrNotMonophonic
	}
	data := make([]float64, 25)
	for _, container := range score.NoteContainers(s) {
		addIntervals(data, score.Notes(container), weighted)
	}
	normalize(data)
	return &Distribution{
		Name:        "Interval Distribution",
		Type:        Interval,
		Dimensions:  []int{25},
		Data:        data,
		XCategories: intervalCategories(),
		XLabel:      "Interval (semitones)",
		YLabel:      "Proportion",
	}, nil
}

// IntervalTransitionDistribution computes the second-order interval
// distribution (ivdist2): cell [i][j] is the weight of an interval i
// followed by an interval j over three consecutive notes, weighted by
// the product of the three durations. The score must be monophonic.
func IntervalTransitionDistribution(s *score.Score, weighted bool) (*Distribution, error) {
	if !IsMonophonic(s) {
		return nil, ErrNotMonophonic
	}
	data := make([]float64, 25*25)
	for _, container := range score.NoteContainers(s) {
		notes := score.Notes(container)
		for i := 2; i < len(notes); i++ {
			a, b, c := notes[i-2], notes[i-1], notes[i]
			prevDiff := b.Pitch.Keynum - a.Pitch.Keynum
			diff := c.Pitch.Keynum - b.Pitch.Keynum
			if prevDiff < -12 || prevDiff > 12 || diff < -12 || diff > 12 {
				continue
			}
			if weighted {
				data[(prevDiff+12)*25+diff+12] += a.Duration() * b.Duration() * c.Duration()
			} else {
				data[(prevDiff+12)*25+diff+12]++
			}
		}
	}
	normalize(data)
	cats := intervalCategories()
	return &Distribution{
		Name:        "Interval Transition Distribution",
		Type:        IntervalTransition,
		Dimensions:  []int{25, 25},
		Data:        data,
		XCategories: cats,
		XLabel:      "To Interval",
		YCategories: cats,
		YLabel:      "From Interval",
	}, nil
}

// PitchClassIntervalDistribution computes the joint distribution of a
// note's pitch class and the interval to the following note: cell
// [pc][iv+12] weighted by the product of the two durations. The score
// must be monophonic.
func PitchClassIntervalDistribution(s *score.Score, weighted bool) (*Distribution, error) {
	if !IsMonophonic(s) {
		return nil, ErrNotMonophonic
	}
	data := make([]float64, 12*25)
	for _, container := range score.NoteContainers(s) {
		notes := score.Notes(container)
		for i := 1; i < len(notes); i++ {
			prev, cur := notes[i-1], notes[i]
			diff := cur.Pitch.Keynum - prev.Pitch.Keynum
			if diff < -12 || diff > 12 {
				continue
			}
			if weighted {
				data[prev.Pitch.PitchClass()*25+diff+12] += prev.Duration() * cur.Duration()
			} else {
				data[prev.Pitch.PitchClass()*25+diff+12]++
			}
		}
	}
	normalize(data)
	return &Distribution{
		Name:        "Pitch Class Interval Distribution",
		Type:        PitchClassInterval,
		Dimensions:  []int{12, 25},
		Data:        data,
		XCategories: intervalCategories(),
		XLabel:      "Interval (semitones)",
		YCategories: pitchClassNames,
		YLabel:      "Pitch Class",
	}, nil
}

// IntervalSizeDistribution folds the signed interval distribution
// into 13 absolute sizes, unison through octave (ivsizedist1).
func IntervalSizeDistribution(s *score.Score, weighted bool) (*Distribution, error) {
	id, err := IntervalDistribution(s, weighted)
	if err != nil {
		return nil, err
	}
	data := make([]float64, 13)
	data[0] = id.Data[12]
	for i := 1; i < 13; i++ {
		data[i] = id.Data[i+12] + id.Data[12-i]
	}
	cats := make([]string, 13)
	for i := range cats {
		cats[i] = intervalSizeName(i)
	}
	return &Distribution{
		Name:        "Interval Size Distribution",
		Type:        IntervalSize,
		Dimensions:  []int{13},
		Data:        data,
		XCategories: cats,
		XLabel:      "Interval Size (semitones)",
		YLabel:      "Proportion",
	}, nil
}

// IntervalDirectionDistribution returns, for each interval size from
// minor second through octave, the proportion of its occurrences that
// move upward (ivdirdist1). Sizes that never occur report 0.
func IntervalDirectionDistribution(s *score.Score, weighted bool) (*Distribution, error) {
	id, err := IntervalDistribution(s, weighted)
	if err != nil {
		return nil, err
	}
	data := make([]float64, 12)
	for i := 0; i < 12; i++ {
		up := id.Data[i+13]
		down := id.Data[11-i]
		if up+down != 0 {
			data[i] = up / (up + down)
		}
	}
	cats := make([]string, 12)
	for i := range cats {
		cats[i] = intervalSizeName(i + 1)
	}
	return &Distribution{
		Name:        "Interval Direction Distribution",
		Type:        IntervalDirection,
		Dimensions:  []int{12},
		Data:        data,
		XCategories: cats,
		XLabel:      "Interval Size (semitones)",
		YLabel:      "Proportion Upward",
	}, nil
}

func intervalSizeName(semitones int) string {
	names := []string{
		"unison", "m2", "M2", "m3", "M3", "P4", "TT",
		"P5", "m6", "M6", "m7", "M7", "octave",
	}
	return names[semitones]
}
