package score

import (
	"testing"

	"github.com/jsphweid/smart/pitch"
	"github.com/stretchr/testify/assert"
)

// buildMeasured is a Score -> Part -> Staff -> 2 Measures fixture with
// a tie crossing the measure boundary at beat 4.
func buildMeasured(t *testing.T) *Score {
	t.Helper()
	s := NewScore(nil)
	p := NewPart(1, "piano", 0)
	st := NewStaff(1, 0)

	m1 := NewMeasure("1", 0, 4)
	m1.Insert(NewNote(0, 1, pitch.New(60)))
	m1.Insert(NewNote(1, 2, pitch.New(62)))
	tied := NewNote(3.5, 0.5, pitch.New(64))
	tied.Tie = TieStart
	m1.Insert(tied)

	m2 := NewMeasure("2", 4, 4)
	tail := NewNote(4, 1, pitch.New(64))
	tail.Tie = TieStop
	m2.Insert(tail)
	m2.Insert(NewRest(5, 1))
	ch := NewChord(6, 2)
	ch.Append(NewNote(6, 2, pitch.New(60)))
	ch.Append(NewNote(6, 2, pitch.New(67)))
	m2.Insert(ch)

	st.Insert(m1)
	st.Insert(m2)
	st.duration = 8
	p.Insert(st)
	p.duration = 8
	s.Insert(p)
	s.duration = 8
	return s
}

func TestInsertKeepsOnsetOrder(t *testing.T) {
	m := NewMeasure("", 0, 4)
	m.Insert(NewNote(2, 1, pitch.New(64)))
	m.Insert(NewNote(0, 1, pitch.New(60)))
	m.Insert(NewNote(1, 1, pitch.New(62)))

	onsets := []float64{}
	for _, ev := range m.Content() {
		onsets = append(onsets, ev.Onset())
	}
	assert.Equal(t, []float64{0, 1, 2}, onsets)
}

func TestInsertEqualOnsetsIsStable(t *testing.T) {
	p := NewPart(1, "", 0)
	first := NewNote(0, 1, pitch.New(60))
	second := NewNote(0, 2, pitch.New(72))
	p.Insert(first)
	p.Insert(second)

	assert := assert.New(t)
	assert.Same(first, p.Content()[0])
	assert.Same(second, p.Content()[1])
}

func TestSequentialAppend(t *testing.T) {
	m := NewMeasure("", 0, 0)
	m.Append(NewNote(0, 1.5, pitch.New(60)))
	m.Append(NewRest(0, 0.5))
	m.Append(NewNote(0, 2, pitch.New(62)))

	assert := assert.New(t)
	assert.Equal(4.0, m.Duration())
	assert.Equal(1.5, m.Content()[1].Onset())
	assert.Equal(2.0, m.Content()[2].Onset())
}

func TestGroupDurationIndependentOfContent(t *testing.T) {
	m := NewMeasure("", 0, 4)
	m.Insert(NewNote(0, 1, pitch.New(60)))
	assert.Equal(t, 4.0, m.Duration())
}

func TestDeepCopyIsDetachedAndIndependent(t *testing.T) {
	s := buildMeasured(t)
	cp := s.Copy()

	assert := assert.New(t)
	assert.Nil(cp.Parent())

	// no node of the copy is a node of the original
	originals := map[Event]bool{}
	Walk(s, func(ev Event) bool { originals[ev] = true; return true })
	Walk(cp, func(ev Event) bool {
		assert.False(originals[ev], "copy aliases original node %s", KindOf(ev))
		return true
	})

	// parent links in the copy point at copied ancestors
	Walk(cp, func(ev Event) bool {
		if par := ev.Parent(); par != nil {
			assert.False(originals[par], "copied %s has original parent", KindOf(ev))
		}
		return true
	})

	// annotation mutation does not cross trees
	Notes(cp)[0].SetAnnotation("entropy", 0.5)
	_, ok := Notes(s)[0].Annotation("entropy")
	assert.False(ok)
}

func TestCopyPreservesTimingAndPitches(t *testing.T) {
	s := buildMeasured(t)
	cp := s.Copy()

	orig, dup := Notes(s), Notes(cp)
	assert := assert.New(t)
	assert.Equal(len(orig), len(dup))
	for i := range orig {
		assert.Equal(orig[i].Onset(), dup[i].Onset())
		assert.Equal(orig[i].Duration(), dup[i].Duration())
		assert.Equal(orig[i].Pitch, dup[i].Pitch)
		assert.Equal(orig[i].Tie, dup[i].Tie)
	}
}

func TestChordNotesRejectsForeignChild(t *testing.T) {
	ch := NewChord(0, 1)
	ch.Append(NewNote(0, 1, pitch.New(60)))
	ch.Insert(NewRest(0, 1))

	_, err := ch.Notes()
	assert.ErrorIs(t, err, ErrInapplicable)
}

func TestNoteContainers(t *testing.T) {
	measured := buildMeasured(t)
	containers := NoteContainers(measured)
	assert.Len(t, containers, 1)
	_, isStaff := containers[0].(*Staff)
	assert.True(t, isStaff)

	flat, err := FromMelody([]int{60, 62, 64}, []float64{1})
	assert.NoError(t, err)
	containers = NoteContainers(flat)
	assert.Len(t, containers, 1)
	_, isPart := containers[0].(*Part)
	assert.True(t, isPart)
}

func TestFromMelody(t *testing.T) {
	s, err := FromMelody([]int{60, 62, 64, 65}, []float64{0.5, 1, 1, 1.5})
	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(4.0, s.Duration())

	notes := Notes(s)
	assert.Len(notes, 4)
	assert.Equal(0.5, notes[1].Onset())
	assert.Equal(pitch.New(64), notes[2].Pitch)
	assert.True(IsFlat(s))
}

func TestFromMelodyOnsetsRejectsOverlap(t *testing.T) {
	_, err := FromMelodyOnsets([]int{60, 62}, []float64{0, 0.5}, []float64{1, 1})
	assert.Error(t, err)
}
