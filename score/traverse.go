package score

import (
	"fmt"
	"io"
	"strings"
)

// Walk visits root and every descendant depth-first in content order.
// Returning false from fn stops the walk.
func Walk(root Event, fn func(Event) bool) {
	walk(root, fn)
}

func walk(ev Event, fn func(Event) bool) bool {
	if !fn(ev) {
		return false
	}
	if g, ok := ev.(EventGroup); ok {
		for _, child := range g.Content() {
			if !walk(child, fn) {
				return false
			}
		}
	}
	return true
}

// Notes collects every Note under root in depth-first order, including
// notes inside chords.
func Notes(root Event) []*Note {
	var notes []*Note
	Walk(root, func(ev Event) bool {
		if n, ok := ev.(*Note); ok {
			notes = append(notes, n)
		}
		return true
	})
	return notes
}

// NoteContainers returns the groups whose note sequences are analyzed
// independently: the Staff objects of a measured score, or the Part
// objects of a flattened one. Parts without staves stand for
// themselves.
func NoteContainers(s *Score) []EventGroup {
	var containers []EventGroup
	for _, ev := range s.Content() {
		p, ok := ev.(*Part)
		if !ok {
			continue
		}
		staves := false
		for _, child := range p.Content() {
			if st, ok := child.(*Staff); ok {
				containers = append(containers, st)
				staves = true
			}
		}
		if !staves {
			containers = append(containers, p)
		}
	}
	return containers
}

// Dump writes an indented description of the subtree, one event per
// line, for inspection.
func Dump(w io.Writer, root Event) {
	dump(w, root, 0)
}

func dump(w io.Writer, ev Event, indent int) {
	pad := strings.Repeat(" ", indent)
	switch e := ev.(type) {
	case *Note:
		tie := ""
		if e.Tie != TieNone {
			tie = " tie " + e.Tie.String()
		}
		fmt.Fprintf(w, "%sNote at %.3f duration %.3f pitch %s%s\n",
			pad, e.Onset(), e.Duration(), e.Pitch.NameWithOctave(), tie)
	case *Rest:
		fmt.Fprintf(w, "%sRest at %.3f duration %.3f\n", pad, e.Onset(), e.Duration())
	case *TimeSignature:
		fmt.Fprintf(w, "%sTimeSignature at %.3f %g/%d\n", pad, e.Onset(), e.Beats, e.BeatType)
	case *KeySignature:
		fmt.Fprintf(w, "%sKeySignature at %.3f sharps %d\n", pad, e.Onset(), e.Sharps)
	case *Measure:
		label := ""
		if e.Number != "" {
			label = " " + e.Number
		}
		fmt.Fprintf(w, "%sMeasure%s at %.3f duration %.3f\n", pad, label, e.Onset(), e.Duration())
	case *Staff:
		fmt.Fprintf(w, "%sStaff %d at %.3f duration %.3f\n", pad, e.Number, e.Onset(), e.Duration())
	case *Part:
		name := ""
		if e.Instrument != "" {
			name = " (" + e.Instrument + ")"
		}
		fmt.Fprintf(w, "%sPart %d%s at %.3f duration %.3f\n", pad, e.Number, name, e.Onset(), e.Duration())
	case *Score:
		fmt.Fprintf(w, "%sScore at %.3f duration %.3f units %s\n", pad, e.Onset(), e.Duration(), e.Units)
	default:
		fmt.Fprintf(w, "%s%s at %.3f duration %.3f\n", pad, KindOf(ev), ev.Onset(), ev.Duration())
	}
	if g, ok := ev.(EventGroup); ok {
		for _, child := range g.Content() {
			dump(w, child, indent+4)
		}
	}
}
