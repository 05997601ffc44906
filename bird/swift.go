package bird

import (
	"strconv"
	"strings"
)

// baseSpeedFactor is the speed factor of a freshly built SwiftBird.
const baseSpeedFactor = 1000.0

// SwiftBird gets faster with each version.
//
// It is the only mutable variant: Boost raises the internal speed factor in
// place, so it must be boosted through a pointer.
type SwiftBird struct {
	version     float64
	speedFactor float64
}

// NewSwiftBird returns a SwiftBird of the given version with the base speed factor.
// A negative version is clamped to zero so the airspeed is never negative.
func NewSwiftBird(version float64) SwiftBird {
	return SwiftBird{
		version:     max(version, 0),
		speedFactor: baseSpeedFactor,
	}
}

// Name returns "Swift <version>", always printing at least one decimal place.
func (s SwiftBird) Name() string {
	v := strconv.FormatFloat(s.version, 'f', -1, 64)
	if !strings.ContainsAny(v, ".eEnN") {
		v += ".0"
	}

	return "Swift " + v
}

// Version returns the version the bird was built with.
func (s SwiftBird) Version() float64 { return s.version }

// AirspeedVelocity returns version × speed factor.
func (s SwiftBird) AirspeedVelocity() float64 {
	return s.version * s.speedFactor
}

// Boost adds power to the speed factor. Later airspeed reads grow by
// version × power per call. A negative power can slow the bird down, but the
// factor never drops below zero.
func (s *SwiftBird) Boost(power float64) {
	s.speedFactor = max(s.speedFactor+power, 0)
}

// String implements fmt.Stringer.
func (s SwiftBird) String() string { return Describe(s) }
