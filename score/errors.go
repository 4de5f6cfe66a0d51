package score

import "github.com/pkg/errors"

// ErrInapplicable reports an access to an attribute a node's kind does
// not define, e.g. asking a Rest for pitch. Match with errors.Is.
var ErrInapplicable = errors.New("inapplicable access")

// AsNote returns ev as a *Note, or an ErrInapplicable describing what
// was found instead. Use it when a traversal yields an Event that is
// required to be a pitched note.
func AsNote(ev Event) (*Note, error) {
	n, ok := ev.(*Note)
	if !ok {
		return nil, errors.Wrapf(ErrInapplicable, "expected Note, found %s at onset %g", KindOf(ev), ev.Onset())
	}
	return n, nil
}

// KindOf names an event's kind for error messages and tree dumps.
func KindOf(ev Event) string {
	switch ev.(type) {
	case *Note:
		return "Note"
	case *Rest:
		return "Rest"
	case *Chord:
		return "Chord"
	case *Measure:
		return "Measure"
	case *Staff:
		return "Staff"
	case *Part:
		return "Part"
	case *Score:
		return "Score"
	case *TimeSignature:
		return "TimeSignature"
	case *KeySignature:
		return "KeySignature"
	}
	return "unknown"
}
