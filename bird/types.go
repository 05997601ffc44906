package bird

import "errors"

// ErrBridgeOfDeath is the panic value raised when the airspeed of an
// Unknown swallow is requested.
var ErrBridgeOfDeath = errors.New("bird: you are thrown from the bridge of death")

// Bird is a named flying entity.
type Bird interface {
	Name() string
}

// Flyable is the speed-capable capability: a bird that reports a non-negative
// airspeed velocity.
type Flyable interface {
	AirspeedVelocity() float64
}

// flightOverride lets a variant decide CanFly from its own state instead of
// from Flyable membership.
type flightOverride interface {
	CanFly() bool
}

const (
	canFlyDescription    = "I can fly"
	cannotFlyDescription = "Guess I'll just sit here :["
)

// CanFly reports whether b can fly.
//
// A bird that provides its own CanFly method decides for itself; every other
// bird can fly exactly when it also satisfies Flyable.
func CanFly(b Bird) bool {
	if o, ok := b.(flightOverride); ok {
		return o.CanFly()
	}
	_, ok := b.(Flyable)

	return ok
}

// Describe returns the default description of b, used by every variant's String.
func Describe(b Bird) string {
	if CanFly(b) {
		return canFlyDescription
	}

	return cannotFlyDescription
}
