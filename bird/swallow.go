package bird

// UnladenSwallow is the closed set of swallows a bridgekeeper may ask about.
type UnladenSwallow int

const (
	// African swallows fly at 10.0.
	African UnladenSwallow = iota

	// European swallows fly at 9.9.
	European

	// Unknown is neither; it cannot fly and has no airspeed.
	Unknown
)

// Name returns the swallow's display name.
func (s UnladenSwallow) Name() string {
	switch s {
	case African:
		return "African"
	case European:
		return "European"
	default:
		return "What do you mean? African or European?"
	}
}

// AirspeedVelocity returns the swallow's airspeed.
// It panics with ErrBridgeOfDeath for Unknown.
func (s UnladenSwallow) AirspeedVelocity() float64 {
	switch s {
	case African:
		return 10.0
	case European:
		return 9.9
	default:
		panic(ErrBridgeOfDeath)
	}
}

// CanFly overrides the Flyable-derived default: only a known swallow flies.
func (s UnladenSwallow) CanFly() bool {
	return s == African || s == European
}

// String implements fmt.Stringer.
func (s UnladenSwallow) String() string { return Describe(s) }
