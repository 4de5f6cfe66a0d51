package normalize

import "github.com/jsphweid/smart/score"

// staffOf climbs parent links to the enclosing Staff, if any.
func staffOf(ev score.Event) *score.Staff {
	for p := ev.Parent(); p != nil; p = p.Parent() {
		if st, ok := p.(*score.Staff); ok {
			return st
		}
	}
	return nil
}

// RemoveMeasures returns a deep copy with Measure wrappers deleted:
// Notes, Rests, and Chords become direct children of their Staff. Tie
// chains confined to one staff survive as fragments. A chain that
// crosses into another staff has no representation afterward, so it is
// merged: the earliest fragment absorbs the chain and the rest are
// deleted. The input must be a measured score.
func RemoveMeasures(s *score.Score) (*score.Score, error) {
	if !score.IsMeasured(s) {
		return nil, preconditionf("RemoveMeasures requires a measured score")
	}

	plans := make(map[*score.Note]notePlan)
	for _, ev := range s.Content() {
		p, ok := ev.(*score.Part)
		if !ok {
			continue
		}
		chains, err := tieChains(score.Notes(p))
		if err != nil {
			return nil, err
		}
		for _, chain := range chains {
			if !crossesStaves(chain) {
				continue
			}
			mergePlan([][]*score.Note{chain}, plans)
		}
	}

	cp := s.CopyEmpty()
	for _, ev := range s.Content() {
		p, ok := ev.(*score.Part)
		if !ok {
			cp.Insert(ev.CopyEvent())
			continue
		}
		pc := p.CopyEmpty()
		for _, child := range p.Content() {
			st, ok := child.(*score.Staff)
			if !ok {
				pc.Insert(child.CopyEvent())
				continue
			}
			sc := st.CopyEmpty()
			for _, sev := range st.Content() {
				if m, ok := sev.(*score.Measure); ok {
					rebuild(sc, m, plans)
				} else {
					sc.Insert(sev.CopyEvent())
				}
			}
			pc.Insert(sc)
		}
		cp.Insert(pc)
	}
	return cp, nil
}

func crossesStaves(chain []*score.Note) bool {
	first := staffOf(chain[0])
	for _, frag := range chain[1:] {
		if staffOf(frag) != first {
			return true
		}
	}
	return false
}
