// Package racer ranks anything that can race.
//
// Racer is a one-method capability: a value that reports a non-negative speed.
// Birds, vehicles, and any user type can join a race by implementing Speed.
//
// Ranking:
//
//   - TopSpeed     - maximum speed of a slice, 0 for an empty slice.
//   - TopSpeedSeq  - the same reduction over an iter.Seq.
//   - Fastest      - the racer holding the top speed (first one wins ties).
//
// All three are generic over the element type, so they accept a []racer.Racer
// of mixed values just as well as a homogeneous []bird.SwiftBird, and any
// sub-slice ranks exactly like a fresh slice holding the same elements.
//
// Complexity: O(n) time, O(1) extra memory.
//
// Example:
//
//	line := []racer.Racer{bird.NewPenguin("King Penguin"), vehicle.NewMotorcycle("Giacomo")}
//	fmt.Println(racer.TopSpeed(line)) // 200
package racer
