package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsphweid/smart/pitch"
	"github.com/jsphweid/smart/score"
)

func melody(t *testing.T, keynums []int, durations []float64) *score.Score {
	t.Helper()
	s, err := score.FromMelody(keynums, durations)
	assert.NoError(t, err)
	return s
}

func TestPitchClassDistribution(t *testing.T) {
	assert := assert.New(t)

	// C4 for 3 beats, G4 for 1 beat.
	s := melody(t, []int{60, 67}, []float64{3, 1})

	d := PitchClassDistribution(s, true)
	assert.Equal(PitchClass, d.Type)
	assert.Equal([]int{12}, d.Dimensions)
	assert.InDelta(0.75, d.Data[0], 1e-9)
	assert.InDelta(0.25, d.Data[7], 1e-9)

	unweighted := PitchClassDistribution(s, false)
	assert.InDelta(0.5, unweighted.Data[0], 1e-9)
	assert.InDelta(0.5, unweighted.Data[7], 1e-9)
}

func TestPitchClassDistributionEmptyScore(t *testing.T) {
	d := PitchClassDistribution(score.NewScore(nil), true)
	for _, v := range d.Data {
		assert.Zero(t, v)
	}
}

func TestPitchClassTransitionDistribution(t *testing.T) {
	assert := assert.New(t)

	// C -> D -> C, unit durations: transitions (0,2) and (2,0).
	s := melody(t, []int{60, 62, 60}, []float64{1})
	d := PitchClassTransitionDistribution(s, true)
	assert.Equal([]int{12, 12}, d.Dimensions)
	assert.InDelta(0.5, d.At(0, 2), 1e-9)
	assert.InDelta(0.5, d.At(2, 0), 1e-9)
	assert.Zero(d.At(2, 2))
}

func TestIntervalDistribution(t *testing.T) {
	assert := assert.New(t)

	// Up a fifth, down a third: +7 and -4 with unit weights.
	s := melody(t, []int{60, 67, 63}, []float64{1})
	d, err := IntervalDistribution(s, false)
	assert.NoError(err)
	assert.InDelta(0.5, d.Data[7+12], 1e-9)
	assert.InDelta(0.5, d.Data[-4+12], 1e-9)
}

func TestIntervalDistributionDiscardsWideLeaps(t *testing.T) {
	assert := assert.New(t)

	// C4 up to E6 is over an octave and must not be counted.
	s := melody(t, []int{60, 88, 86}, []float64{1})
	d, err := IntervalDistribution(s, false)
	assert.NoError(err)
	assert.InDelta(1.0, d.Data[-2+12], 1e-9)
}

func TestIntervalDistributionRejectsPolyphony(t *testing.T) {
	s := score.NewScore(nil)
	p := score.NewPart(1, "", 0)
	s.Append(p)
	p.Append(score.NewNote(0, 2, pitch.New(60)))
	p.Append(score.NewNote(0.5, 2, pitch.New(64)))

	_, err := IntervalDistribution(s, true)
	assert.ErrorIs(t, err, ErrNotMonophonic)
}

func TestIntervalTransitionDistribution(t *testing.T) {
	assert := assert.New(t)

	// +2 then +2 twice, +2 then -4 once.
	s := melody(t, []int{60, 62, 64, 66, 62}, []float64{1})
	d, err := IntervalTransitionDistribution(s, false)
	assert.NoError(err)
	assert.InDelta(2.0/3.0, d.At(2+12, 2+12), 1e-9)
	assert.InDelta(1.0/3.0, d.At(2+12, -4+12), 1e-9)
}

func TestPitchClassIntervalDistribution(t *testing.T) {
	assert := assert.New(t)

	// C up a second, D down a second.
	s := melody(t, []int{60, 62, 60}, []float64{1})
	d, err := PitchClassIntervalDistribution(s, false)
	assert.NoError(err)
	assert.Equal([]int{12, 25}, d.Dimensions)
	assert.InDelta(0.5, d.At(0, 2+12), 1e-9)
	assert.InDelta(0.5, d.At(2, -2+12), 1e-9)
}

func TestIntervalSizeDistribution(t *testing.T) {
	assert := assert.New(t)

	// +7 and -7 fold into one size bin.
	s := melody(t, []int{60, 67, 60}, []float64{1})
	d, err := IntervalSizeDistribution(s, false)
	assert.NoError(err)
	assert.Equal([]int{13}, d.Dimensions)
	assert.InDelta(1.0, d.Data[7], 1e-9)
	assert.Zero(d.Data[0])
}

func TestIntervalDirectionDistribution(t *testing.T) {
	assert := assert.New(t)

	// Three seconds up, one down: 0.75 of major seconds rise.
	s := melody(t, []int{60, 62, 64, 62, 64}, []float64{1})
	d, err := IntervalDirectionDistribution(s, false)
	assert.NoError(err)
	assert.InDelta(0.75, d.Data[1], 1e-9) // index 1 is the major second
	assert.Zero(d.Data[11])               // no octaves at all
}

func TestDurationDistribution(t *testing.T) {
	assert := assert.New(t)

	// quarter, quarter, half, plus a duration too long for any bin.
	s := melody(t, []int{60, 62, 64, 65}, []float64{1, 1, 2, 16})
	d := DurationDistribution(s)
	assert.InDelta(2.0/3.0, d.Data[4], 1e-9)
	assert.InDelta(1.0/3.0, d.Data[6], 1e-9)
}

func TestDurationTransitionDistribution(t *testing.T) {
	assert := assert.New(t)

	s := melody(t, []int{60, 62, 64}, []float64{1, 2, 1})
	d, err := DurationTransitionDistribution(s)
	assert.NoError(err)
	assert.InDelta(0.5, d.At(4, 6), 1e-9)
	assert.InDelta(0.5, d.At(6, 4), 1e-9)
}

func TestEntropy(t *testing.T) {
	assert := assert.New(t)

	assert.InDelta(1.0, Entropy([]float64{0.5, 0.5}), 1e-6)
	assert.InDelta(0.0, Entropy([]float64{0.0, 1.0}), 1e-6)
	assert.InDelta(1.0, Entropy([]float64{3, 3, 3, 3}), 1e-6) // raw counts work too
}

func TestIsMonophonic(t *testing.T) {
	assert := assert.New(t)

	assert.True(IsMonophonic(melody(t, []int{60, 62, 64}, []float64{1})))

	s := score.NewScore(nil)
	p := score.NewPart(1, "", 0)
	s.Append(p)
	p.Append(score.NewNote(0, 1.005, pitch.New(60)))
	p.Append(score.NewNote(1, 1, pitch.New(62)))
	// Overlap of 0.005 is within tolerance.
	assert.True(IsMonophonic(s))

	p.Append(score.NewNote(1.5, 1, pitch.New(64)))
	assert.False(IsMonophonic(s))
}

func TestNoteCount(t *testing.T) {
	assert.Equal(t, 4, NoteCount(melody(t, []int{60, 62, 64, 65}, []float64{1})))
	assert.Zero(t, NoteCount(score.NewScore(nil)))
}

func TestSkylineKeepsTopLine(t *testing.T) {
	assert := assert.New(t)

	s := score.NewScore(nil)
	p := score.NewPart(1, "", 0)
	s.Append(p)
	// Melody on top, sustained accompaniment below.
	p.Append(score.NewNote(0, 4, pitch.New(48)))
	p.Append(score.NewNote(0, 1, pitch.New(72)))
	p.Append(score.NewNote(1, 1, pitch.New(74)))
	p.Append(score.NewNote(2, 2, pitch.New(76)))

	out, err := Skyline(s, 0.1)
	assert.NoError(err)
	notes := score.Notes(out)
	assert.Len(notes, 3)
	for _, n := range notes {
		assert.GreaterOrEqual(n.Pitch.Keynum, 72)
	}
}

func TestSkylineDropsQuicklyCoveredNote(t *testing.T) {
	assert := assert.New(t)

	s := score.NewScore(nil)
	p := score.NewPart(1, "", 0)
	s.Append(p)
	p.Append(score.NewNote(0, 2, pitch.New(60)))
	p.Append(score.NewNote(0.05, 2, pitch.New(72))) // covers the low note almost immediately

	out, err := Skyline(s, 0.1)
	assert.NoError(err)
	notes := score.Notes(out)
	assert.Len(notes, 1)
	assert.Equal(72, notes[0].Pitch.Keynum)
}

func TestSkylineShortensSlowerCoveredNote(t *testing.T) {
	assert := assert.New(t)

	s := score.NewScore(nil)
	p := score.NewPart(1, "", 0)
	s.Append(p)
	p.Append(score.NewNote(0, 4, pitch.New(60)))
	p.Append(score.NewNote(1, 2, pitch.New(72)))

	out, err := Skyline(s, 0.1)
	assert.NoError(err)
	notes := score.Notes(out)
	assert.Len(notes, 2)
	assert.Equal(60, notes[0].Pitch.Keynum)
	assert.InDelta(1.0, notes[0].Duration(), 1e-9) // ends where the upper note starts
}

func TestSkylineDoesNotMutateInput(t *testing.T) {
	assert := assert.New(t)

	s := score.NewScore(nil)
	p := score.NewPart(1, "", 0)
	s.Append(p)
	p.Append(score.NewNote(0, 4, pitch.New(60)))
	p.Append(score.NewNote(1, 2, pitch.New(72)))

	_, err := Skyline(s, 0.1)
	assert.NoError(err)
	assert.InDelta(4.0, score.Notes(s)[0].Duration(), 1e-9)
}

func TestKeyCorrelationFindsCMajor(t *testing.T) {
	assert := assert.New(t)

	// C major scale, tonic emphasized by duration.
	s := melody(t, []int{60, 62, 64, 65, 67, 69, 71, 72},
		[]float64{2, 1, 1, 1, 1, 1, 1, 2})

	d := KeyCorrelations(s)
	assert.Equal([]int{24}, d.Dimensions)

	name, corr := BestKey(s)
	assert.Equal("C major", name)
	assert.Greater(corr, 0.8)
}

func TestKeyCorrelationFindsAMinor(t *testing.T) {
	// Harmonic A minor scale with the tonic emphasized.
	s := melody(t, []int{57, 59, 60, 62, 64, 65, 68, 69},
		[]float64{2, 1, 1, 1, 1, 1, 1, 2})

	name, _ := BestKey(s)
	assert.Equal(t, "A minor", name)
}

func TestParseDistributionType(t *testing.T) {
	assert := assert.New(t)

	dt, err := ParseDistributionType("pitch_class")
	assert.NoError(err)
	assert.Equal(PitchClass, dt)

	_, err = ParseDistributionType("spectral")
	assert.Error(err)
}
