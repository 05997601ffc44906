// Package score defines totally ordered score values.
//
// Score is a capability with a single integer Value; the generic helpers
// Compare, AtLeast, and Best order any Score by that value, so new score
// kinds get ordering for free by implementing one method.
package score

import (
	"cmp"
	"slices"
)

// Score is anything carrying an integer score value.
type Score interface {
	Value() int
}

// RacingScore is the score a racer earns in one race.
type RacingScore int

// Value returns the score as an int.
func (s RacingScore) Value() int { return int(s) }

// Compare returns -1, 0, or +1 as s is less than, equal to, or greater than other.
func (s RacingScore) Compare(other RacingScore) int { return Compare(s, other) }

// Less reports whether s ranks strictly below other.
func (s RacingScore) Less(other RacingScore) bool { return s.Compare(other) < 0 }

// Compare orders two scores of the same kind by Value.
func Compare[S Score](a, b S) int {
	return cmp.Compare(a.Value(), b.Value())
}

// AtLeast reports whether a ≥ b.
func AtLeast[S Score](a, b S) bool {
	return Compare(a, b) >= 0
}

// Best returns the highest score and true, or the zero S and false when
// scores is empty. On ties the earliest score wins.
func Best[S Score](scores []S) (S, bool) {
	if len(scores) == 0 {
		var zero S
		return zero, false
	}

	return slices.MaxFunc(scores, Compare[S]), true
}
