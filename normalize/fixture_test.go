package normalize

import (
	"github.com/jsphweid/smart/pitch"
	"github.com/jsphweid/smart/score"
)

// measuredFixture builds:
//
//	Score
//	    Part 1 (piano)
//	        Staff 1
//	            Measure 1: C4(0,1) D4(1,2) Rest(3,0.5) E4(3.5,0.5 tie start)
//	            Measure 2: E4(4,1 tie stop) Rest(5,1) Chord(6,2){C4 G4}
func measuredFixture() *score.Score {
	s := score.NewScore(nil)
	p := score.NewPart(1, "piano", 0)
	st := score.NewStaff(1, 0)

	m1 := score.NewMeasure("1", 0, 4)
	m1.Insert(score.NewNote(0, 1, pitch.New(60)))
	m1.Insert(score.NewNote(1, 2, pitch.New(62)))
	m1.Insert(score.NewRest(3, 0.5))
	tied := score.NewNote(3.5, 0.5, pitch.New(64))
	tied.Tie = score.TieStart
	m1.Insert(tied)

	m2 := score.NewMeasure("2", 4, 4)
	tail := score.NewNote(4, 1, pitch.New(64))
	tail.Tie = score.TieStop
	m2.Insert(tail)
	m2.Insert(score.NewRest(5, 1))
	ch := score.NewChord(6, 2)
	ch.Append(score.NewNote(6, 2, pitch.New(60)))
	ch.Append(score.NewNote(6, 2, pitch.New(67)))
	m2.Insert(ch)

	st.Insert(m1)
	st.Insert(m2)
	st.SetDuration(8)
	p.Insert(st)
	p.SetDuration(8)
	s.Insert(p)
	s.SetDuration(8)
	return s
}

// twoPartFixture has two flat parts, each with one note at onset 0:
// durations 1 (violin) and 2 (cello).
func twoPartFixture() *score.Score {
	s := score.NewScore(nil)

	p1 := score.NewPart(1, "violin", 0)
	p1.Insert(score.NewNote(0, 1, pitch.New(72)))
	p1.SetDuration(1)
	s.Insert(p1)

	p2 := score.NewPart(2, "cello", 0)
	p2.Insert(score.NewNote(0, 2, pitch.New(48)))
	p2.SetDuration(2)
	s.Insert(p2)

	s.SetDuration(2)
	return s
}
