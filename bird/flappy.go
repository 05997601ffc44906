package bird

// flapFactor scales amplitude × frequency into airspeed.
const flapFactor = 3.0

// FlappyBird flies by flapping: its airspeed grows with amplitude and frequency.
// The zero value is a nameless bird that does not move.
type FlappyBird struct {
	name      string
	amplitude float64
	frequency float64
}

// NewFlappyBird returns a FlappyBird with the given flap amplitude and frequency.
// Negative inputs are clamped to zero so the airspeed is never negative.
func NewFlappyBird(name string, amplitude, frequency float64) FlappyBird {
	return FlappyBird{
		name:      name,
		amplitude: max(amplitude, 0),
		frequency: max(frequency, 0),
	}
}

// Name returns the bird's display name.
func (f FlappyBird) Name() string { return f.name }

// Amplitude returns the flap amplitude.
func (f FlappyBird) Amplitude() float64 { return f.amplitude }

// Frequency returns the flap frequency.
func (f FlappyBird) Frequency() float64 { return f.frequency }

// AirspeedVelocity returns 3 × frequency × amplitude.
func (f FlappyBird) AirspeedVelocity() float64 {
	return flapFactor * f.frequency * f.amplitude
}

// String implements fmt.Stringer.
func (f FlappyBird) String() string { return Describe(f) }
