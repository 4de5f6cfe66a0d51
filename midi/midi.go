// Package midi imports Standard MIDI Files into flat scores.
package midi

import (
	"bytes"
	"os"
	"sort"

	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/jsphweid/smart/pitch"
	"github.com/jsphweid/smart/score"
	"github.com/jsphweid/smart/timemap"
)

// recoverParse converts a parser panic of any type into an error.
func recoverParse(path string, e *error) {
	if r := recover(); r != nil {
		*e = errors.Errorf("midi: parsing %v: %v", path, r)
	}
}

// ReadFile parses a Standard MIDI File and converts it to a Score.
func ReadFile(path string) (s *score.Score, e error) {
	// the smf parser panics on some malformed files
	// https://github.com/gomidi/midi/issues/20
	defer recoverParse(path, &e)

	dat, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "midi: reading %v", path)
	}
	parsed, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return nil, errors.Wrapf(err, "midi: parsing %v", path)
	}
	return Convert(parsed)
}

// Convert builds a flat Score in beats from a parsed SMF: one Part per
// track carrying notes, tempo meta events folded into the TimeMap.
// Note-on velocity lands in Note.Dynamic; a note left sounding at the
// end of its track is closed at the track's final event.
func Convert(s *smf.SMF) (*score.Score, error) {
	mt, ok := s.TimeFormat.(smf.MetricTicks)
	if !ok {
		return nil, errors.Errorf("midi: unsupported time format %v", s.TimeFormat)
	}
	tpq := float64(mt.Resolution())

	tm, err := buildTimeMap(s, tpq)
	if err != nil {
		return nil, err
	}

	out := score.NewScore(tm)
	partNum := 0
	for _, track := range s.Tracks {
		part := convertTrack(track, tpq, partNum+1)
		if part == nil {
			continue
		}
		partNum++
		out.Append(part)
	}
	return out, nil
}

// buildTimeMap collects tempo meta events from every track. They are
// normally confined to track 0, but nothing requires that.
func buildTimeMap(s *smf.SMF, tpq float64) (*timemap.TimeMap, error) {
	type tempoChange struct {
		beat float64
		bpm  float64
	}
	var changes []tempoChange
	for _, track := range s.Tracks {
		var absTicks int64
		for _, ev := range track {
			absTicks += int64(ev.Delta)
			var bpm float64
			if ev.Message.GetMetaTempo(&bpm) {
				changes = append(changes, tempoChange{float64(absTicks) / tpq, bpm})
			}
		}
	}
	sort.SliceStable(changes, func(i, j int) bool {
		return changes[i].beat < changes[j].beat
	})

	tm := timemap.New(0)
	for _, tc := range changes {
		if err := tm.AppendBeatTempo(tc.beat, tc.bpm); err != nil {
			return nil, errors.Wrap(err, "midi: tempo track")
		}
	}
	return tm, nil
}

type soundingKey struct {
	channel uint8
	key     uint8
}

type soundingNote struct {
	onset    float64
	velocity uint8
}

// convertTrack returns a Part holding the track's notes, or nil for a
// track with none (tempo or marker tracks).
func convertTrack(track smf.Track, tpq float64, number int) *score.Part {
	var name string
	var notes []*score.Note
	sounding := make(map[soundingKey]soundingNote)

	var absTicks int64
	beat := 0.0
	for _, ev := range track {
		absTicks += int64(ev.Delta)
		beat = float64(absTicks) / tpq

		var trackName string
		var channel, key, velocity uint8
		switch {
		case ev.Message.GetMetaTrackName(&trackName):
			name = trackName
		case ev.Message.GetNoteStart(&channel, &key, &velocity):
			sk := soundingKey{channel, key}
			// a retriggered key ends the old note here
			if prev, ok := sounding[sk]; ok {
				notes = append(notes, makeNote(key, prev, beat))
			}
			sounding[sk] = soundingNote{onset: beat, velocity: velocity}
		case ev.Message.GetNoteEnd(&channel, &key):
			sk := soundingKey{channel, key}
			if prev, ok := sounding[sk]; ok {
				delete(sounding, sk)
				notes = append(notes, makeNote(key, prev, beat))
			}
		}
	}
	for sk, prev := range sounding {
		notes = append(notes, makeNote(sk.key, prev, beat))
	}

	if len(notes) == 0 {
		return nil
	}
	part := score.NewPart(number, name, 0)
	for _, n := range notes {
		part.Append(n)
	}
	return part
}

func makeNote(key uint8, sn soundingNote, offBeat float64) *score.Note {
	n := score.NewNote(sn.onset, offBeat-sn.onset, pitch.New(int(key)))
	n.Dynamic = int(sn.velocity)
	return n
}
