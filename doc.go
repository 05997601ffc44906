// Package lvrace is a small playground for capability-driven Go: birds that may
// or may not fly, racers of any shape, and one generic ranking utility.
//
// 🚀 What is inside?
//
//	bird/       - Bird and Flyable capabilities, CanFly/Describe defaults, four variants
//	racer/      - Racer and Booster capabilities, TopSpeed / TopSpeedSeq / Fastest
//	vehicle/    - Motorcycle, a racer that is not a bird
//	score/      - Score capability, RacingScore, generic Compare / AtLeast / Best
//	roster/     - TOML line-ups turned into []racer.Racer
//	capability/ - static audit of which types satisfy which capability
//	cmd/racerank - rank a roster from the command line
//
// ✨ The one idea worth keeping:
//
//	Ranking is written once, as a generic function over the Racer capability,
//	not once per concrete type:
//
//	    func TopSpeed[R racer.Racer](racers []R) float64
//
//	It accepts a []racer.Racer of mixed values, a []bird.SwiftBird, or any
//	sub-slice of either, and returns 0 for an empty input.
//
//	go get github.com/katalvlaran/lvrace
package lvrace
