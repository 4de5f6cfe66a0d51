// Package timemap converts between beat time (quarters) and seconds
// using a piece-wise linear map of tempo breakpoints.
package timemap

import "fmt"

// DefaultBPM is the tempo assumed before any breakpoint is appended.
const DefaultBPM = 100.0

// Breakpoint is a (beat, seconds) pair in the piece-wise linear mapping.
type Breakpoint struct {
	Beat float64
	Time float64
}

// TimeMap maps beat positions to seconds and back. The map always
// contains an initial breakpoint at (0, 0). lastTempo, in beats per
// second, extrapolates beyond the final breakpoint.
//
// Lookups cache the index of the last answer. Successive lookups at
// increasing positions resume from the cached index, so sequential
// conversion of a whole score approaches O(1) per call. Out-of-order
// lookups still return correct results by searching from the hint.
type TimeMap struct {
	beats     []Breakpoint
	lastTempo float64
	hint      int
}

// New creates a TimeMap with a single breakpoint at (0, 0) and the
// given tempo in beats per minute. A bpm of 0 selects DefaultBPM.
func New(bpm float64) *TimeMap {
	if bpm <= 0 {
		bpm = DefaultBPM
	}
	return &TimeMap{
		beats:     []Breakpoint{{0, 0}},
		lastTempo: bpm / 60.0,
	}
}

// AppendBeatTempo appends a tempo change: from beat onward the tempo is
// bpm, holding until a later append. beat must not precede the final
// breakpoint already in the map.
func (tm *TimeMap) AppendBeatTempo(beat, bpm float64) error {
	last := tm.beats[len(tm.beats)-1]
	if beat < last.Beat {
		return fmt.Errorf("timemap: tempo change at beat %g precedes final breakpoint at beat %g", beat, last.Beat)
	}
	if bpm <= 0 {
		return fmt.Errorf("timemap: non-positive tempo %g at beat %g", bpm, beat)
	}
	if beat > last.Beat {
		tm.beats = append(tm.beats, Breakpoint{Beat: beat, Time: tm.BeatToTime(beat)})
	}
	tm.lastTempo = bpm / 60.0
	return nil
}

// locateBeat returns the insertion index for beat: the first entry whose
// Beat exceeds or equals beat, or len(beats) if beat lies beyond every
// entry. The search starts at the cached hint.
func (tm *TimeMap) locateBeat(beat float64) int {
	i := tm.hint
	if i > len(tm.beats) {
		i = len(tm.beats)
	}
	for i > 0 && beat <= tm.beats[i-1].Beat {
		i--
	}
	for i < len(tm.beats) && beat > tm.beats[i].Beat {
		i++
	}
	tm.hint = i
	return i
}

// locateTime is locateBeat over the seconds axis.
func (tm *TimeMap) locateTime(time float64) int {
	i := tm.hint
	if i > len(tm.beats) {
		i = len(tm.beats)
	}
	for i > 0 && time <= tm.beats[i-1].Time {
		i--
	}
	for i < len(tm.beats) && time > tm.beats[i].Time {
		i++
	}
	tm.hint = i
	return i
}

// BeatToTime converts a beat position to seconds.
func (tm *TimeMap) BeatToTime(beat float64) float64 {
	if beat <= 0 {
		// no tempo is defined before zero; pass the value through
		return beat
	}
	i := tm.locateBeat(beat)
	if i == len(tm.beats) {
		mb := tm.beats[i-1]
		return mb.Time + (beat-mb.Beat)/tm.lastTempo
	}
	// i >= 1 because beats[0] is (0, 0) and beat > 0
	mb0, mb1 := tm.beats[i-1], tm.beats[i]
	return mb0.Time + (beat-mb0.Beat)*(mb1.Time-mb0.Time)/(mb1.Beat-mb0.Beat)
}

// TimeToBeat converts seconds to a beat position. It is the inverse of
// BeatToTime up to floating-point rounding.
func (tm *TimeMap) TimeToBeat(time float64) float64 {
	if time <= 0 {
		return time
	}
	i := tm.locateTime(time)
	if i == len(tm.beats) {
		mb := tm.beats[i-1]
		return mb.Beat + (time-mb.Time)*tm.lastTempo
	}
	mb0, mb1 := tm.beats[i-1], tm.beats[i]
	return mb0.Beat + (time-mb0.Time)*(mb1.Beat-mb0.Beat)/(mb1.Time-mb0.Time)
}

// TempoAt returns the tempo in bpm in effect at beat. At a breakpoint
// the tempo on the left of the change is reported.
func (tm *TimeMap) TempoAt(beat float64) float64 {
	i := tm.locateBeat(beat)
	if i >= len(tm.beats) || len(tm.beats) < 2 {
		return tm.lastTempo * 60.0
	}
	if i == 0 {
		i = 1
	}
	mb0, mb1 := tm.beats[i-1], tm.beats[i]
	return (mb1.Beat - mb0.Beat) * 60.0 / (mb1.Time - mb0.Time)
}

// Copy returns an independent TimeMap with the same breakpoints.
func (tm *TimeMap) Copy() *TimeMap {
	c := &TimeMap{
		beats:     make([]Breakpoint, len(tm.beats)),
		lastTempo: tm.lastTempo,
	}
	copy(c.beats, tm.beats)
	return c
}

// Breakpoints returns a copy of the breakpoint table.
func (tm *TimeMap) Breakpoints() []Breakpoint {
	bps := make([]Breakpoint, len(tm.beats))
	copy(bps, tm.beats)
	return bps
}
