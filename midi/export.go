package midi

import (
	"os"
	"sort"

	"github.com/pkg/errors"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/jsphweid/smart/normalize"
	"github.com/jsphweid/smart/score"
)

const exportTPQ = 480

// defaultVelocity is used for notes whose dynamic was never set.
const defaultVelocity = 64

// Export renders a score as an SMF: a tempo track built from the
// TimeMap followed by one track per part. The score may be in any
// unit and of any shape; it is flattened to note lists first.
func Export(s *score.Score) (*smf.SMF, error) {
	if s.Units == score.UnitSeconds {
		s = normalize.ToBeats(s)
	}
	flat, err := normalize.Flatten(s, false)
	if err != nil {
		return nil, errors.Wrap(err, "midi: export")
	}

	var out smf.SMF
	out.TimeFormat = smf.MetricTicks(exportTPQ)
	out.Tracks = append(out.Tracks, tempoTrack(flat))
	for _, ev := range flat.Content() {
		part, ok := ev.(*score.Part)
		if !ok {
			continue
		}
		out.Tracks = append(out.Tracks, partTrack(part))
	}
	return &out, nil
}

// WriteFile renders a score as an SMF and writes it to path.
func WriteFile(s *score.Score, path string) error {
	mf, err := Export(s)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "midi: creating %v", path)
	}
	defer f.Close()
	if _, err := mf.WriteTo(f); err != nil {
		return errors.Wrapf(err, "midi: writing %v", path)
	}
	return nil
}

func tempoTrack(s *score.Score) smf.Track {
	var tr smf.Track
	lastTick := int64(0)
	for _, bp := range s.TimeMap.Breakpoints() {
		// tempo in effect just after the breakpoint
		bpm := s.TimeMap.TempoAt(bp.Beat + 1e-9)
		tick := beatToTick(bp.Beat)
		tr = append(tr, smf.Event{
			Delta:   uint32(tick - lastTick),
			Message: smf.MetaTempo(bpm),
		})
		lastTick = tick
	}
	tr.Close(0)
	return tr
}

func partTrack(part *score.Part) smf.Track {
	var tr smf.Track
	if part.Instrument != "" {
		tr = append(tr, smf.Event{Message: smf.MetaTrackSequenceName(part.Instrument)})
	}

	type noteEvent struct {
		tick  int64
		isOff bool
		msg   []byte
	}
	var events []noteEvent
	for _, n := range score.Notes(part) {
		key := uint8(n.Pitch.Keynum)
		velocity := uint8(defaultVelocity)
		if n.Dynamic > 0 {
			velocity = uint8(n.Dynamic)
		}
		events = append(events, noteEvent{
			tick: beatToTick(n.Onset()),
			msg:  gomidi.NoteOn(0, key, velocity),
		})
		events = append(events, noteEvent{
			tick:  beatToTick(n.Offset()),
			isOff: true,
			msg:   gomidi.NoteOff(0, key),
		})
	}
	// offs go first at equal ticks so retriggered keys pair up
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].tick != events[j].tick {
			return events[i].tick < events[j].tick
		}
		return events[i].isOff && !events[j].isOff
	})

	lastTick := int64(0)
	for _, ev := range events {
		tr = append(tr, smf.Event{
			Delta:   uint32(ev.tick - lastTick),
			Message: smf.Message(ev.msg),
		})
		lastTick = ev.tick
	}
	tr.Close(0)
	return tr
}

func beatToTick(beat float64) int64 {
	return int64(beat*exportTPQ + 0.5)
}
