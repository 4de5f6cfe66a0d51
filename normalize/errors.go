// Package normalize provides the structural normalizations of a score:
// removing rests, expanding chords, merging tied notes, deleting
// measure and staff wrappers, flattening, collapsing parts, and time
// unit conversion. Every operation validates its precondition first,
// then returns a structurally new deep copy; the input tree is never
// mutated or aliased into the result.
package normalize

import "github.com/pkg/errors"

// ErrPrecondition reports that an input tree violates a structural
// invariant the operation requires. Match with errors.Is.
var ErrPrecondition = errors.New("precondition violation")

func preconditionf(format string, args ...any) error {
	return errors.Wrapf(ErrPrecondition, format, args...)
}
