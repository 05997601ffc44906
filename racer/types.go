package racer

// Racer is anything with a speed. Speed is all racers care about.
type Racer interface {
	Speed() float64
}

// Booster is a racer that can cheat by raising its own speed in place.
type Booster interface {
	Boost(power float64)
}
