package bird

import "github.com/katalvlaran/lvrace/racer"

// waddleSpeed is a penguin's full waddle speed.
const waddleSpeed = 42.0

var (
	_ racer.Racer   = FlappyBird{}
	_ racer.Racer   = Penguin{}
	_ racer.Racer   = SwiftBird{}
	_ racer.Racer   = UnladenSwallow(0)
	_ racer.Booster = (*SwiftBird)(nil)
)

// Speed races at the flapping airspeed.
func (f FlappyBird) Speed() float64 { return f.AirspeedVelocity() }

// Speed races at the current versioned airspeed, boosts included.
func (s SwiftBird) Speed() float64 { return s.AirspeedVelocity() }

// Speed races at waddle speed.
func (p Penguin) Speed() float64 { return waddleSpeed }

// Speed is the airspeed of a swallow that can fly, and 0 otherwise.
// Unlike AirspeedVelocity it never panics.
func (s UnladenSwallow) Speed() float64 {
	if !s.CanFly() {
		return 0
	}

	return s.AirspeedVelocity()
}
