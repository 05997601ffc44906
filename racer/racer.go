package racer

import (
	"iter"
	"slices"
)

// TopSpeed returns the highest Speed among racers, or 0 when racers is empty.
//
// Only the value is returned, so which of several tied racers "won" is
// unobservable; use Fastest when the identity matters.
func TopSpeed[R Racer](racers []R) float64 {
	return TopSpeedSeq(slices.Values(racers))
}

// TopSpeedSeq returns the highest Speed yielded by seq, or 0 when seq is empty.
// A nil seq is treated as empty.
func TopSpeedSeq[R Racer](seq iter.Seq[R]) float64 {
	if seq == nil {
		return 0
	}
	var (
		best  float64
		found bool
	)
	for r := range seq {
		s := r.Speed()
		if !found || s > best {
			best, found = s, true
		}
	}

	return best
}

// Fastest returns the racer with the highest Speed and true, or the zero R
// and false when racers is empty. On ties the earliest racer wins.
func Fastest[R Racer](racers []R) (R, bool) {
	var winner R
	if len(racers) == 0 {
		return winner, false
	}
	winner = racers[0]
	best := winner.Speed()
	for _, r := range racers[1:] {
		if s := r.Speed(); s > best {
			winner, best = r, s
		}
	}

	return winner, true
}
