// Package vehicle holds racers that are not birds.
package vehicle

import "github.com/katalvlaran/lvrace/racer"

// DefaultMotorcycleSpeed is the speed of a motorcycle built by NewMotorcycle.
const DefaultMotorcycleSpeed = 200.0

var _ racer.Racer = (*Motorcycle)(nil)

// Motorcycle is a plain vehicle with a constant speed.
type Motorcycle struct {
	Name     string
	Velocity float64
}

// NewMotorcycle returns a motorcycle ridden by name at DefaultMotorcycleSpeed.
func NewMotorcycle(name string) *Motorcycle {
	return &Motorcycle{
		Name:     name,
		Velocity: DefaultMotorcycleSpeed,
	}
}

// Speed returns the motorcycle's velocity.
func (m *Motorcycle) Speed() float64 { return m.Velocity }

// String returns the rider's name.
func (m *Motorcycle) String() string { return m.Name }
