package normalize

import "github.com/jsphweid/smart/score"

// noteAction tells a rebuild what to do with one original note.
type noteAction int

const (
	noteKeep noteAction = iota
	noteDrop
	noteMerge // keep, clear the tie, extend duration to mergeEnd
)

type notePlan struct {
	action   noteAction
	mergeEnd float64 // absolute offset of the merged note
}

// copyEmptyGroup clones a group node without its children.
func copyEmptyGroup(g score.EventGroup) score.EventGroup {
	switch v := g.(type) {
	case *score.Score:
		return v.CopyEmpty()
	case *score.Part:
		return v.CopyEmpty()
	case *score.Staff:
		return v.CopyEmpty()
	case *score.Measure:
		return v.CopyEmpty()
	case *score.Chord:
		return v.CopyEmpty()
	}
	return nil
}

// rebuild deep-copies the subtree under src into dst, consulting plans
// for each Note and keep for each Rest. Unknown zero-duration events
// pass through.
func rebuild(dst score.EventGroup, src score.EventGroup, plans map[*score.Note]notePlan) {
	for _, ev := range src.Content() {
		switch v := ev.(type) {
		case *score.Note:
			plan, planned := plans[v]
			if planned && plan.action == noteDrop {
				continue
			}
			cp := v.Copy()
			if planned && plan.action == noteMerge {
				cp.Tie = score.TieNone
				cp.SetDuration(plan.mergeEnd - cp.Onset())
			}
			dst.Insert(cp)
		case score.EventGroup:
			cp := copyEmptyGroup(v)
			rebuild(cp, v, plans)
			dst.Insert(cp)
		default:
			dst.Insert(ev.CopyEvent())
		}
	}
}
