package normalize

import (
	"github.com/jsphweid/smart/score"
	"github.com/jsphweid/smart/timemap"
)

// ToSeconds returns a deep copy with every onset and duration rewritten
// from beats to seconds through the score's TimeMap. There is no
// dual-unit storage: the copy's times are in seconds and its Units flag
// says so. A score already in seconds yields a plain copy.
func ToSeconds(s *score.Score) *score.Score {
	if s.Units == score.UnitSeconds {
		return s.Copy()
	}
	cp := convertUnits(s, func(tm *timemap.TimeMap, t float64) float64 {
		return tm.BeatToTime(t)
	})
	cp.Units = score.UnitSeconds
	return cp
}

// ToBeats is the inverse of ToSeconds.
func ToBeats(s *score.Score) *score.Score {
	if s.Units == score.UnitBeats {
		return s.Copy()
	}
	cp := convertUnits(s, func(tm *timemap.TimeMap, t float64) float64 {
		return tm.TimeToBeat(t)
	})
	cp.Units = score.UnitBeats
	return cp
}

func convertUnits(s *score.Score, lookup func(*timemap.TimeMap, float64) float64) *score.Score {
	cp := s.CopyEmpty()
	// lookups go through the copy's TimeMap so the original's locality
	// hint is untouched
	f := func(t float64) float64 { return lookup(cp.TimeMap, t) }
	retimeNode(cp, s, f)
	retime(cp, s, f)
	return cp
}

func retime(dst, src score.EventGroup, f func(float64) float64) {
	for _, ev := range src.Content() {
		if g, ok := ev.(score.EventGroup); ok {
			cp := copyEmptyGroup(g)
			retimeNode(cp, g, f)
			retime(cp, g, f)
			dst.Insert(cp)
			continue
		}
		cp := ev.CopyEvent()
		retimeNode(cp, ev, f)
		dst.Insert(cp)
	}
}

// retimeNode maps a node's endpoints: durations are converted as the
// difference of converted endpoints, so a tempo change inside a note
// stretches it correctly.
func retimeNode(cp, orig score.Event, f func(float64) float64) {
	onset := f(orig.Onset())
	cp.SetOnset(onset)
	cp.SetDuration(f(orig.Offset()) - onset)
}
