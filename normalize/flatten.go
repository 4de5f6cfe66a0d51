package normalize

import "github.com/jsphweid/smart/score"

// Flatten returns a deep copy reduced to Score -> Part -> Note. Tied
// note chains are merged first (a flat score has no ties), then Staff,
// Measure, and Chord wrappers are removed. Signature events attached
// at staff, measure, or chord level have no meaning outside measured
// structure and are dropped; annotations on surviving notes are kept.
// With collapse, all parts are merged into one as a final step.
func Flatten(s *score.Score, collapse bool) (*score.Score, error) {
	merged, err := MergeTiedNotes(s)
	if err != nil {
		return nil, err
	}

	flat := merged.CopyEmpty()
	for _, ev := range merged.Content() {
		p, ok := ev.(*score.Part)
		if !ok {
			flat.Insert(ev.CopyEvent())
			continue
		}
		pc := p.CopyEmpty()
		for _, n := range score.Notes(p) {
			pc.Insert(n.Copy())
		}
		flat.Insert(pc)
	}

	if collapse {
		return collapseFlat(flat), nil
	}
	return flat, nil
}

// collapseFlat merges the parts of a flat score into one part with
// notes in onset order. Notes sharing an onset keep their part order:
// all of part 1's notes at t precede part 2's notes at t, stably
// across repeated calls.
func collapseFlat(s *score.Score) *score.Score {
	cp := s.CopyEmpty()
	np := score.NewPart(1, "", s.Onset())
	end := s.Onset()
	for _, ev := range s.Content() {
		p, ok := ev.(*score.Part)
		if !ok {
			cp.Insert(ev.CopyEvent())
			continue
		}
		for _, n := range score.Notes(p) {
			np.Insert(n.Copy())
			if off := n.Offset(); off > end {
				end = off
			}
		}
	}
	np.SetDuration(end - s.Onset())
	cp.Insert(np)
	return cp
}

// Selection picks parts or staves for CollapseParts. A nil *Selection
// selects everything. Exactly one field is normally set: Index selects
// by zero-based position, Number by the part or staff number label,
// Instrument by the part's instrument name.
type Selection struct {
	Index      *int
	Number     *int
	Instrument string
}

// SelectIndex selects the element at a zero-based position.
func SelectIndex(i int) *Selection { return &Selection{Index: &i} }

// SelectNumber selects elements carrying a number label.
func SelectNumber(n int) *Selection { return &Selection{Number: &n} }

// SelectInstrument selects parts by instrument name.
func SelectInstrument(name string) *Selection { return &Selection{Instrument: name} }

func (sel *Selection) matchesPart(i int, p *score.Part) bool {
	if sel == nil {
		return true
	}
	if sel.Index != nil && *sel.Index == i {
		return true
	}
	if sel.Number != nil && *sel.Number == p.Number {
		return true
	}
	return sel.Instrument != "" && sel.Instrument == p.Instrument
}

func (sel *Selection) matchesStaff(i int, st *score.Staff) bool {
	if sel == nil {
		return true
	}
	if sel.Index != nil && *sel.Index == i {
		return true
	}
	return sel.Number != nil && *sel.Number == st.Number
}

// CollapseParts returns a flat one-part score holding the notes of the
// selected parts and staves in onset order:
//
//	Score
//	    Part
//	        Note Note Note ...
//
// Selecting staves requires a part selection and a measured input: a
// flat score has no staves to select from.
func CollapseParts(s *score.Score, parts, staves *Selection) (*score.Score, error) {
	if staves != nil && parts == nil {
		return nil, preconditionf("staff selection requires a part selection")
	}

	merged, err := MergeTiedNotes(s)
	if err != nil {
		return nil, err
	}

	pruned := merged.CopyEmpty()
	partIndex := 0
	for _, ev := range merged.Content() {
		p, ok := ev.(*score.Part)
		if !ok {
			continue
		}
		i := partIndex
		partIndex++
		if !parts.matchesPart(i, p) {
			continue
		}
		if staves == nil {
			if len(p.Content()) > 0 {
				pruned.Insert(p.Copy())
			}
			continue
		}
		pc := p.CopyEmpty()
		staffIndex := 0
		for _, child := range p.Content() {
			st, ok := child.(*score.Staff)
			if !ok {
				return nil, preconditionf("staff selection on part %d which contains a %s, not staves",
					p.Number, score.KindOf(child))
			}
			j := staffIndex
			staffIndex++
			if staves.matchesStaff(j, st) {
				pc.Insert(st.Copy())
			}
		}
		if len(pc.Content()) > 0 {
			pruned.Insert(pc)
		}
	}

	flat, err := Flatten(pruned, false)
	if err != nil {
		return nil, err
	}
	return collapseFlat(flat), nil
}
