package analysis

import "github.com/jsphweid/smart/score"

// overlapTolerance absorbs float rounding when comparing a note's
// onset against the previous note's offset.
const overlapTolerance = 0.01

// IsMonophonic reports whether no two notes of the same container
// sound at once. Chords always disqualify a score.
func IsMonophonic(s *score.Score) bool {
	for _, container := range score.NoteContainers(s) {
		notes := score.Notes(container)
		for i := 1; i < len(notes); i++ {
			if notes[i].Onset()-notes[i-1].Offset() < -overlapTolerance {
				return false
			}
		}
	}
	return true
}

// NoteCount returns the number of notes in the score, at any depth.
func NoteCount(s *score.Score) int {
	return len(score.Notes(s))
}
