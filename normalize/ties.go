package normalize

import "github.com/jsphweid/smart/score"

// tieChains groups tied note fragments into chains. notes must be in
// temporal traversal order for one part. A chain opens with TieStart,
// extends through TieContinue fragments of the same key number, and
// closes with TieStop. Malformed chains are precondition violations.
func tieChains(notes []*score.Note) ([][]*score.Note, error) {
	open := make(map[int][]*score.Note)
	var chains [][]*score.Note
	for _, n := range notes {
		kn := n.Pitch.Keynum
		switch n.Tie {
		case score.TieNone:
		case score.TieStart:
			if open[kn] != nil {
				return nil, preconditionf("tie start on %s at onset %g while an earlier tie on the same pitch is unresolved",
					n.Pitch.NameWithOctave(), n.Onset())
			}
			open[kn] = []*score.Note{n}
		case score.TieContinue:
			if open[kn] == nil {
				return nil, preconditionf("tie continue on %s at onset %g with no preceding start",
					n.Pitch.NameWithOctave(), n.Onset())
			}
			open[kn] = append(open[kn], n)
		case score.TieStop:
			if open[kn] == nil {
				return nil, preconditionf("tie stop on %s at onset %g with no preceding start",
					n.Pitch.NameWithOctave(), n.Onset())
			}
			chains = append(chains, append(open[kn], n))
			delete(open, kn)
		}
	}
	for _, frags := range open {
		first := frags[0]
		return nil, preconditionf("incomplete tie on %s starting at onset %g",
			first.Pitch.NameWithOctave(), first.Onset())
	}
	return chains, nil
}

// mergePlan maps every fragment of every chain to its rebuild action:
// the first fragment absorbs the chain's full extent, the rest vanish.
func mergePlan(chains [][]*score.Note, plans map[*score.Note]notePlan) {
	for _, chain := range chains {
		first, last := chain[0], chain[len(chain)-1]
		plans[first] = notePlan{action: noteMerge, mergeEnd: last.Offset()}
		for _, frag := range chain[1:] {
			plans[frag] = notePlan{action: noteDrop}
		}
	}
}

// MergeTiedNotes returns a deep copy in which every chain of tied note
// fragments is replaced by a single note spanning from the first
// fragment's onset to the last fragment's offset. Chains may cross
// measure and staff boundaries within a part; the merged note then
// spans those boundaries. A tie-free tree yields a plain copy.
func MergeTiedNotes(s *score.Score) (*score.Score, error) {
	if !score.HasTies(s) {
		return s.Copy(), nil
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
		mergePlan(chains, plans)
	}

	cp := s.CopyEmpty()
	rebuild(cp, s, plans)
	return cp, nil
}
