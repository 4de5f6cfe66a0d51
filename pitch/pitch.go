package pitch

import "fmt"

// Pitch is a symbolic musical pitch. Keynum follows the MIDI convention
// where C4 is 60. Alt is the alteration applied to the written note name:
// +1 for a sharp, -1 for a flat, +2 for a double sharp, and so on. The
// letter name is recovered by subtracting Alt from Keynum, so C#4 is
// {61, 1} and Db4 is {61, -1}. Two pitches with the same Keynum but
// different Alt are enharmonic spellings of the same sounding pitch.
type Pitch struct {
	Keynum int
	Alt    int
}

var letterNames = [12]string{"C", "?", "D", "?", "E", "F", "?", "G", "?", "A", "?", "B"}

// natural reports whether pc (0-11) is one of the unaltered letter
// pitch classes C D E F G A B.
func natural(pc int) bool {
	switch pc {
	case 0, 2, 4, 5, 7, 9, 11:
		return true
	}
	return false
}

func mod12(n int) int {
	m := n % 12
	if m < 0 {
		m += 12
	}
	return m
}

// New creates a Pitch from a MIDI key number with a conventional default
// spelling: C#, F# as sharps and Eb, Ab, Bb as flats.
func New(keynum int) Pitch {
	alt := 0
	switch mod12(keynum) {
	case 1, 6: // C#, F#
		alt = 1
	case 3, 8, 10: // Eb, Ab, Bb
		alt = -1
	}
	return Pitch{Keynum: keynum, Alt: alt}
}

// NewWithAlt creates a Pitch with an explicit alteration. The alteration
// must place the written note on a natural letter name.
func NewWithAlt(keynum, alt int) (Pitch, error) {
	if !natural(mod12(keynum - alt)) {
		return Pitch{}, fmt.Errorf("pitch: keynum %d with alt %d does not name a natural letter", keynum, alt)
	}
	return Pitch{Keynum: keynum, Alt: alt}, nil
}

// PitchClass returns the sounding pitch class 0-11 where 0 is C.
func (p Pitch) PitchClass() int {
	return mod12(p.Keynum)
}

// Octave returns the sounding octave number, where C4 = 60. Enharmonic
// respelling does not change the octave: B#3 and C4 both return 4.
func (p Pitch) Octave() int {
	return p.Keynum/12 - 1
}

// Name returns the letter pitch class, one of {0 2 4 5 7 9 11}.
func (p Pitch) Name() int {
	return mod12(p.Keynum - p.Alt)
}

// NameString returns the written name with accidentals, e.g. "C#" or "Bbb".
func (p Pitch) NameString() string {
	s := letterNames[p.Name()]
	if p.Alt > 0 {
		for i := 0; i < p.Alt; i++ {
			s += "#"
		}
	} else if p.Alt < 0 {
		for i := 0; i < -p.Alt; i++ {
			s += "b"
		}
	}
	return s
}

// NameWithOctave returns the written name and octave of the written
// letter, e.g. C4 respelled downward is "B#3".
func (p Pitch) NameWithOctave() string {
	unaltered := p.Keynum - p.Alt
	return fmt.Sprintf("%s%d", p.NameString(), unaltered/12-1)
}

// Less orders pitches by key number, then by spelling: a sharp spelling
// sorts below a flat spelling of the same key number because its letter
// name is lower in the musical alphabet.
func (p Pitch) Less(o Pitch) bool {
	if p.Keynum != o.Keynum {
		return p.Keynum < o.Keynum
	}
	return -p.Alt < -o.Alt
}

// Enharmonic returns a respelling where Alt is zero or has the opposite
// sign, minimized in magnitude. E.g. Cbb -> A#, C -> B#.
func (p Pitch) Enharmonic() Pitch {
	alt := p.Alt
	unaltered := p.Keynum - alt
	switch {
	case alt < 0:
		for alt < 0 || !natural(mod12(unaltered)) {
			unaltered--
			alt++
		}
	case alt > 0:
		for alt > 0 || !natural(mod12(unaltered)) {
			unaltered++
			alt--
		}
	default:
		switch mod12(unaltered) {
		case 0, 5: // C->B#, F->E#
			alt = 1
		case 11, 4: // B->Cb, E->Fb
			alt = -1
		default: // A->Bbb, D->Ebb, G->Abb
			alt = -2
		}
	}
	return Pitch{Keynum: p.Keynum, Alt: alt}
}

// UpperEnharmonic respells with the next letter up, e.g. C#->Db, C##->D.
func (p Pitch) UpperEnharmonic() Pitch {
	alt := p.Alt
	switch mod12(p.Keynum - alt) {
	case 0, 2, 5, 7, 9: // C D F G A are a whole step below the next letter
		alt -= 2
	default: // E->F, B->C
		alt--
	}
	return Pitch{Keynum: p.Keynum, Alt: alt}
}

// LowerEnharmonic respells with the next letter down, e.g. Db->C#, D->C##.
func (p Pitch) LowerEnharmonic() Pitch {
	alt := p.Alt
	switch mod12(p.Keynum - alt) {
	case 2, 4, 7, 9, 11: // D E G A B are a whole step above the previous letter
		alt += 2
	default: // F->E, C->B
		alt++
	}
	return Pitch{Keynum: p.Keynum, Alt: alt}
}
