package midi

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/jsphweid/smart/pitch"
	"github.com/jsphweid/smart/score"
	"github.com/jsphweid/smart/timemap"
)

const tpq = 480

func event(delta uint32, msg []byte) smf.Event {
	return smf.Event{Delta: delta, Message: smf.Message(msg)}
}

func buildSMF(tracks ...smf.Track) *smf.SMF {
	var s smf.SMF
	s.TimeFormat = smf.MetricTicks(tpq)
	s.Tracks = tracks
	return &s
}

func TestConvert(t *testing.T) {
	assert := assert.New(t)

	tempoTrack := smf.Track{
		event(0, smf.MetaTempo(120)),
		event(4*tpq, smf.MetaTempo(60)),
	}
	tempoTrack.Close(0)

	noteTrack := smf.Track{
		event(0, smf.MetaTrackSequenceName("piano")),
		event(0, gomidi.NoteOn(0, 60, 100)),
		event(tpq, gomidi.NoteOff(0, 60)),
		event(0, gomidi.NoteOn(0, 64, 80)),
		event(tpq, gomidi.NoteOff(0, 64)),
	}
	noteTrack.Close(0)

	s, err := Convert(buildSMF(tempoTrack, noteTrack))
	assert.NoError(err)

	// The tempo track carries no notes and produces no part.
	assert.Equal(1, s.PartCount())
	assert.True(score.IsFlat(s))

	part := s.Content()[0].(*score.Part)
	assert.Equal("piano", part.Instrument)

	notes := score.Notes(part)
	assert.Len(notes, 2)
	assert.Equal(60, notes[0].Pitch.Keynum)
	assert.InDelta(0.0, notes[0].Onset(), 1e-9)
	assert.InDelta(1.0, notes[0].Duration(), 1e-9)
	assert.Equal(100, notes[0].Dynamic)
	assert.Equal(64, notes[1].Pitch.Keynum)
	assert.InDelta(1.0, notes[1].Onset(), 1e-9)

	// 120 bpm until beat 4, then 60 bpm.
	assert.InDelta(1.0, s.TimeMap.BeatToTime(2), 1e-9)
	assert.InDelta(2.0, s.TimeMap.BeatToTime(4), 1e-9)
	assert.InDelta(4.0, s.TimeMap.BeatToTime(6), 1e-9)
}

func TestConvertRetriggeredKey(t *testing.T) {
	assert := assert.New(t)

	tr := smf.Track{
		event(0, gomidi.NoteOn(0, 60, 90)),
		event(tpq, gomidi.NoteOn(0, 60, 90)), // retrigger before the off
		event(tpq, gomidi.NoteOff(0, 60)),
	}
	tr.Close(0)

	s, err := Convert(buildSMF(tr))
	assert.NoError(err)

	notes := score.Notes(s)
	assert.Len(notes, 2)
	assert.InDelta(0.0, notes[0].Onset(), 1e-9)
	assert.InDelta(1.0, notes[0].Duration(), 1e-9)
	assert.InDelta(1.0, notes[1].Onset(), 1e-9)
	assert.InDelta(1.0, notes[1].Duration(), 1e-9)
}

func TestConvertClosesHangingNote(t *testing.T) {
	assert := assert.New(t)

	tr := smf.Track{
		event(0, gomidi.NoteOn(0, 72, 90)),
	}
	tr.Close(2 * tpq) // end of track arrives with the note still down

	s, err := Convert(buildSMF(tr))
	assert.NoError(err)

	notes := score.Notes(s)
	assert.Len(notes, 1)
	assert.InDelta(2.0, notes[0].Duration(), 1e-9)
}

func TestConvertSeparateChannels(t *testing.T) {
	assert := assert.New(t)

	// The same key on two channels must pair independently.
	tr := smf.Track{
		event(0, gomidi.NoteOn(0, 60, 90)),
		event(0, gomidi.NoteOn(1, 60, 90)),
		event(tpq, gomidi.NoteOff(0, 60)),
		event(tpq, gomidi.NoteOff(1, 60)),
	}
	tr.Close(0)

	s, err := Convert(buildSMF(tr))
	assert.NoError(err)

	notes := score.Notes(s)
	assert.Len(notes, 2)
	durations := []float64{notes[0].Duration(), notes[1].Duration()}
	assert.Contains(durations, 1.0)
	assert.Contains(durations, 2.0)
}

func TestExportRoundTrip(t *testing.T) {
	assert := assert.New(t)

	tm := timemap.New(120)
	assert.NoError(tm.AppendBeatTempo(4, 60))
	s := score.NewScore(tm)
	p := score.NewPart(1, "flute", 0)
	s.Append(p)
	n := score.NewNote(0, 1, pitch.New(60))
	n.Dynamic = 100
	p.Append(n)
	p.Append(score.NewNote(1, 2, pitch.New(64)))

	mf, err := Export(s)
	assert.NoError(err)

	got, err := Convert(mf)
	assert.NoError(err)

	part := got.Content()[0].(*score.Part)
	assert.Equal("flute", part.Instrument)

	notes := score.Notes(got)
	assert.Len(notes, 2)
	assert.Equal(60, notes[0].Pitch.Keynum)
	assert.Equal(100, notes[0].Dynamic)
	assert.InDelta(1.0, notes[0].Duration(), 1e-9)
	assert.InDelta(1.0, notes[1].Onset(), 1e-9)
	assert.InDelta(2.0, notes[1].Duration(), 1e-9)

	// the tempo change survives the trip
	assert.InDelta(4.0, got.TimeMap.BeatToTime(6), 1e-9)
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile("/nonexistent/file.mid")
	assert.Error(t, err)
}

func TestReadFileGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.mid")
	assert.NoError(t, os.WriteFile(path, []byte("not a midi file"), 0644))

	s, err := ReadFile(path)
	assert.Error(t, err)
	assert.Nil(t, s)
}

func TestRecoverParseCatchesAnyPanic(t *testing.T) {
	assert := assert.New(t)

	// panics need not be strings
	for _, payload := range []any{"boom", 42, struct{}{}} {
		err := func() (e error) {
			defer recoverParse("x.mid", &e)
			panic(payload)
		}()
		assert.Error(err)
	}
}
