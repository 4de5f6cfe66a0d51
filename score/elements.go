package score

import (
	"github.com/jsphweid/smart/pitch"
	"github.com/jsphweid/smart/timemap"
)

// Note is a single pitched event, normally an element of a Measure,
// Chord, or (in a flattened score) Part.
type Note struct {
	base
	Pitch   pitch.Pitch
	Dynamic int // 0 means unspecified
	Lyric   string
	Tie     Tie
}

// NewNote creates a detached Note at an absolute onset.
func NewNote(onset, duration float64, p pitch.Pitch) *Note {
	return &Note{base: base{onset: onset, duration: duration}, Pitch: p}
}

// Copy returns a detached copy of the note.
func (n *Note) Copy() *Note {
	return &Note{
		base:    n.copyBase(),
		Pitch:   n.Pitch,
		Dynamic: n.Dynamic,
		Lyric:   n.Lyric,
		Tie:     n.Tie,
	}
}

func (n *Note) CopyEvent() Event { return n.Copy() }

// Rest is an unpitched placeholder, normally an element of a Measure.
// A Rest has no pitch; see AsNote for the guarded conversion.
type Rest struct {
	base
}

// NewRest creates a detached Rest at an absolute onset.
func NewRest(onset, duration float64) *Rest {
	return &Rest{base: base{onset: onset, duration: duration}}
}

func (r *Rest) Copy() *Rest      { return &Rest{base: r.copyBase()} }
func (r *Rest) CopyEvent() Event { return r.Copy() }

// TimeSignature is a zero-duration event carrying meter information.
// Traversals that do not interpret it pass it through.
type TimeSignature struct {
	base
	Beats    float64 // beats per measure, may be fractional
	BeatType int     // 1, 2, 4, 8, ...
}

func NewTimeSignature(onset, beats float64, beatType int) *TimeSignature {
	return &TimeSignature{base: base{onset: onset}, Beats: beats, BeatType: beatType}
}

func (ts *TimeSignature) Copy() *TimeSignature {
	return &TimeSignature{base: ts.copyBase(), Beats: ts.Beats, BeatType: ts.BeatType}
}

func (ts *TimeSignature) CopyEvent() Event { return ts.Copy() }

// KeySignature is a zero-duration event carrying the number of sharps
// (positive) or flats (negative).
type KeySignature struct {
	base
	Sharps int
}

func NewKeySignature(onset float64, sharps int) *KeySignature {
	return &KeySignature{base: base{onset: onset}, Sharps: sharps}
}

func (ks *KeySignature) Copy() *KeySignature {
	return &KeySignature{base: ks.copyBase(), Sharps: ks.Sharps}
}

func (ks *KeySignature) CopyEvent() Event { return ks.Copy() }

// Chord groups Notes sharing one onset. Zero or one note is legal. The
// chord's duration is explicit and normally covers its longest note.
type Chord struct {
	group
}

func NewChord(onset, duration float64) *Chord {
	c := &Chord{group: group{base: base{onset: onset, duration: duration}}}
	c.self = c
	return c
}

// Append adds a note to the chord, growing the chord's duration to
// cover it if needed.
func (c *Chord) Append(n *Note) { c.appendConcurrent(n) }

// Notes returns the chord's notes. Any non-Note structural child is an
// inapplicable access, reported rather than skipped.
func (c *Chord) Notes() ([]*Note, error) {
	notes := make([]*Note, 0, len(c.content))
	for _, ev := range c.content {
		n, err := AsNote(ev)
		if err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, nil
}

// CopyEmpty copies the chord node itself without children.
func (c *Chord) CopyEmpty() *Chord {
	cp := &Chord{group: group{base: c.copyBase()}}
	cp.self = cp
	return cp
}

func (c *Chord) Copy() *Chord {
	cp := c.CopyEmpty()
	for _, ev := range c.content {
		cp.Insert(ev.CopyEvent())
	}
	return cp
}

func (c *Chord) CopyEvent() Event { return c.Copy() }

// Measure is one bar of a Staff. Number is the label printed in the
// score, e.g. "22a", and may be empty.
type Measure struct {
	group
	Number string
}

func NewMeasure(number string, onset, duration float64) *Measure {
	m := &Measure{group: group{base: base{onset: onset, duration: duration}}}
	m.self = m
	m.Number = number
	return m
}

// Append places ev sequentially at the measure's current end and
// extends the measure's duration.
func (m *Measure) Append(ev Event) { m.appendSequential(ev) }

func (m *Measure) CopyEmpty() *Measure {
	cp := &Measure{group: group{base: m.copyBase()}, Number: m.Number}
	cp.self = cp
	return cp
}

func (m *Measure) Copy() *Measure {
	cp := m.CopyEmpty()
	for _, ev := range m.content {
		cp.Insert(ev.CopyEvent())
	}
	return cp
}

func (m *Measure) CopyEvent() Event { return m.Copy() }

// Staff is one staff line through the whole piece, an element of a
// Part. Staves are numbered from 1 at the top of the part.
type Staff struct {
	group
	Number int
}

func NewStaff(number int, onset float64) *Staff {
	s := &Staff{group: group{base: base{onset: onset}}}
	s.self = s
	s.Number = number
	return s
}

// Append places ev sequentially at the staff's current end and extends
// the staff's duration.
func (s *Staff) Append(ev Event) { s.appendSequential(ev) }

func (s *Staff) CopyEmpty() *Staff {
	cp := &Staff{group: group{base: s.copyBase()}, Number: s.Number}
	cp.self = cp
	return cp
}

func (s *Staff) Copy() *Staff {
	cp := s.CopyEmpty()
	for _, ev := range s.content {
		cp.Insert(ev.CopyEvent())
	}
	return cp
}

func (s *Staff) CopyEvent() Event { return s.Copy() }

// Part is one instrument of a Score. In a measured score it contains
// Staves; in a flattened score it contains Notes directly.
type Part struct {
	group
	Number     int
	Instrument string
}

func NewPart(number int, instrument string, onset float64) *Part {
	p := &Part{group: group{base: base{onset: onset}}}
	p.self = p
	p.Number = number
	p.Instrument = instrument
	return p
}

// Append adds ev at its own onset, growing the part's duration to
// cover it if needed.
func (p *Part) Append(ev Event) { p.appendConcurrent(ev) }

func (p *Part) CopyEmpty() *Part {
	cp := &Part{group: group{base: p.copyBase()}, Number: p.Number, Instrument: p.Instrument}
	cp.self = cp
	return cp
}

func (p *Part) Copy() *Part {
	cp := p.CopyEmpty()
	for _, ev := range p.content {
		cp.Insert(ev.CopyEvent())
	}
	return cp
}

func (p *Part) CopyEvent() Event { return p.Copy() }

// Score is the top-level node for one musical work. It owns the
// TimeMap and records which unit every onset in the tree uses.
type Score struct {
	group
	TimeMap *timemap.TimeMap
	Units   Unit
}

// NewScore creates an empty Score in beats. A nil TimeMap gets the
// default tempo.
func NewScore(tm *timemap.TimeMap) *Score {
	if tm == nil {
		tm = timemap.New(0)
	}
	s := &Score{group: group{}, TimeMap: tm}
	s.self = s
	return s
}

// Append adds ev (normally a Part) at its own onset, growing the
// score's duration to cover it if needed.
func (s *Score) Append(ev Event) { s.appendConcurrent(ev) }

// CopyEmpty copies the score node and its TimeMap without content.
func (s *Score) CopyEmpty() *Score {
	cp := &Score{group: group{base: s.copyBase()}, TimeMap: s.TimeMap.Copy(), Units: s.Units}
	cp.self = cp
	return cp
}

func (s *Score) Copy() *Score {
	cp := s.CopyEmpty()
	for _, ev := range s.content {
		cp.Insert(ev.CopyEvent())
	}
	return cp
}

func (s *Score) CopyEvent() Event { return s.Copy() }

// PartCount reports how many parts the score contains.
func (s *Score) PartCount() int {
	count := 0
	for _, ev := range s.content {
		if _, ok := ev.(*Part); ok {
			count++
		}
	}
	return count
}
