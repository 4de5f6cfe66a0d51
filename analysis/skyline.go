package analysis

import (
	"sort"

	norm "github.com/jsphweid/smart/normalize"
	"github.com/jsphweid/smart/score"
)

// Skyline extracts the top melodic line of a score: every note that
// sounds below another note is removed. A lower note followed by a
// higher one within threshold beats is dropped outright; one followed
// less quickly is shortened to end where the higher note begins. The
// result is a new flat, single-part score; the input is not modified.
func Skyline(s *score.Score, threshold float64) (*score.Score, error) {
	flat, err := norm.Flatten(s, true)
	if err != nil {
		return nil, err
	}

	notes := score.Notes(flat)
	sort.SliceStable(notes, func(i, j int) bool {
		if notes[i].Onset() != notes[j].Onset() {
			return notes[i].Onset() < notes[j].Onset()
		}
		return notes[i].Pitch.Keynum > notes[j].Pitch.Keynum
	})

	var kept []*score.Note
	for _, n := range notes {
		below := false
		for _, prev := range kept {
			if n.Pitch.Keynum < prev.Pitch.Keynum && n.Onset() < prev.Offset() {
				below = true
				break
			}
		}
		if below {
			continue
		}

		kept = append(kept, n.Copy())

		// Resolve kept lower notes the new note now covers.
		for j := len(kept) - 2; j >= 0; j-- {
			low := kept[j]
			if low.Pitch.Keynum >= n.Pitch.Keynum || low.Offset() <= n.Onset() {
				continue
			}
			if low.Onset() > n.Onset()-threshold {
				kept = append(kept[:j], kept[j+1:]...)
			} else {
				low.SetDuration(n.Onset() - low.Onset())
			}
		}
	}

	out := flat.CopyEmpty()
	part := score.NewPart(1, "", 0)
	for _, n := range kept {
		part.Append(n)
	}
	out.Append(part)
	return out, nil
}
