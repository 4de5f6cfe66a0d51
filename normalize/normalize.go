package normalize

import "github.com/jsphweid/smart/score"

// RemoveRests returns a deep copy with every Rest dropped. Onsets are
// absolute, so removing a rest never shifts its neighbors; group
// durations are explicit and keep the original timing envelope.
func RemoveRests(s *score.Score) *score.Score {
	cp := s.CopyEmpty()
	removeRests(cp, s)
	return cp
}

func removeRests(dst score.EventGroup, src score.EventGroup) {
	for _, ev := range src.Content() {
		switch v := ev.(type) {
		case *score.Rest:
			// dropped
		case score.EventGroup:
			cp := copyEmptyGroup(v)
			removeRests(cp, v)
			dst.Insert(cp)
		default:
			dst.Insert(ev.CopyEvent())
		}
	}
}

// ExpandChords returns a deep copy in which each Chord is replaced by
// its child Notes, spliced directly into the chord's former parent.
// Each note keeps its own pitch, tie, and duration. A Chord containing
// anything but Notes (or pass-through signature events) cannot be
// reinterpreted and is rejected.
func ExpandChords(s *score.Score) (*score.Score, error) {
	if err := validateChords(s); err != nil {
		return nil, err
	}
	cp := s.CopyEmpty()
	expandChords(cp, s)
	return cp, nil
}

func validateChords(root score.Event) error {
	var err error
	score.Walk(root, func(ev score.Event) bool {
		c, ok := ev.(*score.Chord)
		if !ok {
			return true
		}
		for _, child := range c.Content() {
			switch child.(type) {
			case *score.Note, *score.TimeSignature, *score.KeySignature:
			case *score.Chord:
				err = preconditionf("Chord at onset %g contains a nested Chord", c.Onset())
				return false
			default:
				err = preconditionf("Chord at onset %g contains a %s", c.Onset(), score.KindOf(child))
				return false
			}
		}
		return true
	})
	return err
}

func expandChords(dst score.EventGroup, src score.EventGroup) {
	for _, ev := range src.Content() {
		switch v := ev.(type) {
		case *score.Chord:
			for _, child := range v.Content() {
				dst.Insert(child.CopyEvent())
			}
		case score.EventGroup:
			cp := copyEmptyGroup(v)
			expandChords(cp, v)
			dst.Insert(cp)
		default:
			dst.Insert(ev.CopyEvent())
		}
	}
}
