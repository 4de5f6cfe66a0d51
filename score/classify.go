package score

// Structural classifiers. Each predicate inspects a subtree and answers
// without mutating anything and without failing: mixed or unusual trees
// get an answer for every predicate independently. Only the normalizers
// in package normalize reject inputs.

// IsMeasured reports whether every leaf under s is reachable only
// through the strict containment order Score -> Part -> Staff ->
// Measure -> (Note | Rest | Chord). Signature events are tolerated at
// any level; a Staff directly under the Score, or a Measure directly
// under a Part, disqualifies the tree.
func IsMeasured(s *Score) bool {
	for _, ev := range s.Content() {
		switch p := ev.(type) {
		case *Part:
			if !partIsMeasured(p) {
				return false
			}
		case *TimeSignature, *KeySignature:
			// tolerated metadata
		default:
			return false
		}
	}
	return true
}

func partIsMeasured(p *Part) bool {
	for _, ev := range p.Content() {
		switch st := ev.(type) {
		case *Staff:
			if !staffIsMeasured(st) {
				return false
			}
		case *TimeSignature, *KeySignature:
		default:
			return false
		}
	}
	return true
}

func staffIsMeasured(st *Staff) bool {
	for _, ev := range st.Content() {
		switch m := ev.(type) {
		case *Measure:
			if !measureIsMeasured(m) {
				return false
			}
		case *TimeSignature, *KeySignature:
		default:
			return false
		}
	}
	return true
}

func measureIsMeasured(m *Measure) bool {
	for _, ev := range m.Content() {
		switch c := ev.(type) {
		case *Note, *Rest, *TimeSignature, *KeySignature:
		case *Chord:
			for _, inner := range c.Content() {
				switch inner.(type) {
				case *Note, *TimeSignature, *KeySignature:
				default:
					return false
				}
			}
		default:
			return false
		}
	}
	return true
}

// IsFlat reports whether s matches exactly Score -> Part -> Note with
// no Staff, Measure, Rest, Chord, or tie anywhere beneath a Part.
func IsFlat(s *Score) bool {
	for _, ev := range s.Content() {
		switch p := ev.(type) {
		case *Part:
			for _, child := range p.Content() {
				switch n := child.(type) {
				case *Note:
					if n.Tie != TieNone {
						return false
					}
				case *TimeSignature, *KeySignature:
				default:
					return false
				}
			}
		case *TimeSignature, *KeySignature:
		default:
			return false
		}
	}
	return true
}

// HasTies reports whether any Note anywhere under root carries a tie.
func HasTies(root Event) bool {
	found := false
	Walk(root, func(ev Event) bool {
		if n, ok := ev.(*Note); ok && n.Tie != TieNone {
			found = true
			return false
		}
		return true
	})
	return found
}

// HasChords reports whether any Chord exists anywhere under root.
func HasChords(root Event) bool {
	return hasKind(root, func(ev Event) bool { _, ok := ev.(*Chord); return ok })
}

// HasRests reports whether any Rest exists anywhere under root.
func HasRests(root Event) bool {
	return hasKind(root, func(ev Event) bool { _, ok := ev.(*Rest); return ok })
}

// HasMeasures reports whether any Measure exists anywhere under root.
func HasMeasures(root Event) bool {
	return hasKind(root, func(ev Event) bool { _, ok := ev.(*Measure); return ok })
}

func hasKind(root Event, match func(Event) bool) bool {
	found := false
	Walk(root, func(ev Event) bool {
		if match(ev) {
			found = true
			return false
		}
		return true
	})
	return found
}
