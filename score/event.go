// Package score is a hierarchical symbolic-music representation. A
// Score contains Parts, which contain Staves, Measures, and finally
// Notes, Rests, and Chords:
//
//	Score
//	    Part (one per instrument)
//	        Staff (usually 1, e.g. 2 for a grand staff)
//	            Measure
//	                Note | Rest | Chord(Note...) | TimeSignature | KeySignature
//
// A flattened score keeps only Score -> Part -> Note.
//
// Every event stores its onset as an absolute position in the score's
// time unit (beats or seconds, never mixed within one tree), not as a
// displacement from its parent. Trees are treated as immutable once
// built: transformations in package normalize always return fresh deep
// copies. The one sanctioned in-place mutation is attaching annotation
// values to existing events.
package score

// Unit is the time unit shared by every onset and duration in one tree.
type Unit int

const (
	UnitBeats Unit = iota
	UnitSeconds
)

func (u Unit) String() string {
	if u == UnitSeconds {
		return "seconds"
	}
	return "beats"
}

// Tie marks how a Note fragment joins neighboring fragments into one
// logical note. A tied sequence runs start, continue..., stop.
type Tie int

const (
	TieNone Tie = iota
	TieStart
	TieContinue
	TieStop
)

func (t Tie) String() string {
	switch t {
	case TieStart:
		return "start"
	case TieContinue:
		return "continue"
	case TieStop:
		return "stop"
	}
	return "none"
}

// Event is anything that takes place in time: a Note, Rest, Chord,
// Measure, Staff, Part, Score, TimeSignature, or KeySignature. The
// hierarchy is closed; traversals must tolerate (skip or pass through)
// event kinds they do not interpret.
type Event interface {
	// Onset is the absolute start time in the tree's unit.
	Onset() float64
	// Duration is the extent of the event, >= 0.
	Duration() float64
	// Offset is Onset + Duration.
	Offset() float64
	// Parent is the enclosing group, or nil for a detached root.
	Parent() EventGroup
	// CopyEvent deep-copies the subtree rooted at this event. The copy
	// is detached: its parent is nil and it shares nothing with the
	// original.
	CopyEvent() Event
	// Annotation retrieves an annotation value attached to this event.
	Annotation(key string) (any, bool)
	// SetAnnotation attaches an annotation value to this event. This is
	// the only mutation permitted on a built tree.
	SetAnnotation(key string, value any)

	// SetOnset and SetDuration are builder-phase API: importers and
	// normalizers position nodes they own; trees shared with other
	// code must not be retimed.
	SetOnset(float64)
	SetDuration(float64)

	setParent(EventGroup)
}

// EventGroup is an Event owning an ordered sequence of child events.
// The group's duration is explicit, not derived from its content, so
// removing children never changes the group's timing envelope.
type EventGroup interface {
	Event
	// Content returns the children in onset order. The returned slice
	// is owned by the group and must not be modified.
	Content() []Event
	// Insert adds an event, keeping content ordered by onset, and sets
	// the event's parent. The group's duration is unchanged.
	Insert(Event)
}

// base carries the fields common to every event.
type base struct {
	onset       float64
	duration    float64
	parent      EventGroup
	annotations map[string]any
}

func (b *base) Onset() float64       { return b.onset }
func (b *base) Duration() float64    { return b.duration }
func (b *base) Offset() float64      { return b.onset + b.duration }
func (b *base) Parent() EventGroup   { return b.parent }
func (b *base) setParent(p EventGroup) { b.parent = p }

func (b *base) Annotation(key string) (any, bool) {
	v, ok := b.annotations[key]
	return v, ok
}

func (b *base) SetAnnotation(key string, value any) {
	if b.annotations == nil {
		b.annotations = make(map[string]any)
	}
	b.annotations[key] = value
}

// SetOnset moves the event to an absolute time. Builder-phase API:
// importers and normalizers position nodes they own with it; trees
// shared with other code must not be repositioned.
func (b *base) SetOnset(t float64) { b.onset = t }

// SetDuration resizes the event. Builder-phase API, like SetOnset.
func (b *base) SetDuration(d float64) { b.duration = d }

// copyBase duplicates onset, duration, and annotations; never the parent.
func (b *base) copyBase() base {
	c := base{onset: b.onset, duration: b.duration}
	if len(b.annotations) > 0 {
		c.annotations = make(map[string]any, len(b.annotations))
		for k, v := range b.annotations {
			c.annotations[k] = v
		}
	}
	return c
}

// group implements the shared part of EventGroup. self points at the
// concrete node so children's parent references name the outer type.
type group struct {
	base
	self    EventGroup
	content []Event
}

func (g *group) Content() []Event { return g.content }

// Insert places ev in onset order. Events already in order append in
// O(1); an out-of-order event is placed before the first child with a
// greater onset.
func (g *group) Insert(ev Event) {
	n := len(g.content)
	if n > 0 && ev.Onset() < g.content[n-1].Onset() {
		i := n - 1
		for i > 0 && g.content[i-1].Onset() > ev.Onset() {
			i--
		}
		g.content = append(g.content, nil)
		copy(g.content[i+1:], g.content[i:])
		g.content[i] = ev
	} else {
		g.content = append(g.content, ev)
	}
	ev.setParent(g.self)
}

// appendSequential places ev at the group's current end (onset +
// duration) and extends the group's duration by ev's duration. Used by
// sequence-like groups (Measure, Staff).
func (g *group) appendSequential(ev Event) {
	ev.SetOnset(g.onset + g.duration)
	g.duration += ev.Duration()
	g.Insert(ev)
}

// appendConcurrent places ev without moving it and grows the group's
// duration to cover ev if needed. Used by concurrence-like groups
// (Chord, Part, Score).
func (g *group) appendConcurrent(ev Event) {
	g.Insert(ev)
	if end := ev.Offset() - g.onset; end > g.duration {
		g.duration = end
	}
}

// last returns the final child or nil.
func (g *group) last() Event {
	if len(g.content) == 0 {
		return nil
	}
	return g.content[len(g.content)-1]
}
