// Package analysis computes numeric summaries of scores: pitch-class,
// interval, and duration distributions, their second-order transition
// matrices, entropy, key correlation, and skyline melody extraction.
// Algorithms read scores through the traversal API only; the single
// mutation they may perform is attaching annotation values to notes.
package analysis

import (
	"fmt"

	"github.com/jsphweid/smart/util"
)

// DistributionType names the numeric summary a Distribution holds and
// fixes its dimensions.
type DistributionType string

const (
	PitchClass           DistributionType = "pitch_class"
	Interval             DistributionType = "interval"
	PitchClassInterval   DistributionType = "pitch_class_interval"
	Duration             DistributionType = "duration"
	IntervalSize         DistributionType = "interval_size"
	IntervalDirection    DistributionType = "interval_direction"
	PitchClassTransition DistributionType = "pitch_class_transition"
	IntervalTransition   DistributionType = "interval_transition"
	DurationTransition   DistributionType = "duration_transition"
	KeyCorrelation       DistributionType = "key_correlation"
)

// Dimensions returns the fixed shape for a distribution type, e.g.
// [12] for pitch_class or [25, 25] for interval_transition (intervals
// run -12..+12 semitones; anything wider is discarded).
func (t DistributionType) Dimensions() []int {
	switch t {
	case PitchClass:
		return []int{12}
	case Interval:
		return []int{25}
	case PitchClassInterval:
		return []int{12, 25}
	case Duration:
		return []int{9}
	case IntervalSize:
		return []int{13}
	case IntervalDirection:
		return []int{12}
	case PitchClassTransition:
		return []int{12, 12}
	case IntervalTransition:
		return []int{25, 25}
	case DurationTransition:
		return []int{9, 9}
	case KeyCorrelation:
		return []int{24}
	}
	return nil
}

// ParseDistributionType validates a distribution type name.
func ParseDistributionType(name string) (DistributionType, error) {
	t := DistributionType(name)
	if t.Dimensions() == nil {
		return "", fmt.Errorf("analysis: unknown distribution type %q", name)
	}
	return t, nil
}

// Distribution is a probability distribution plus presentation
// metadata. Data is row-major for two-dimensional types.
type Distribution struct {
	Name        string           `json:"name"`
	Type        DistributionType `json:"distribution_type"`
	Dimensions  []int            `json:"dimensions"`
	Data        []float64        `json:"data"`
	XCategories []string         `json:"x_categories,omitempty"`
	XLabel      string           `json:"x_label,omitempty"`
	YCategories []string         `json:"y_categories,omitempty"`
	YLabel      string           `json:"y_label,omitempty"`
}

// At indexes a two-dimensional distribution by row and column.
func (d *Distribution) At(i, j int) float64 {
	return d.Data[i*d.Dimensions[1]+j]
}

var pitchClassNames = []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

func intervalCategories() []string {
	cats := make([]string, 25)
	for i := range cats {
		cats[i] = fmt.Sprintf("%+d", i-12)
	}
	cats[12] = "0"
	return cats
}

// normalize scales data so it sums to 1, leaving an all-zero
// distribution untouched.
func normalize(data []float64) {
	total := util.Sum(data)
	if total <= 0 {
		return
	}
	for i := range data {
		data[i] /= total
	}
}
