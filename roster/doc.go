// Package roster describes a race line-up in TOML and turns it into racers.
//
// File layout:
//
//	title = "Bridge of Death Invitational"
//
//	[[racer]]
//	kind      = "flappy"     # flappy | penguin | swift | swallow | motorcycle
//	name      = "Felipe"
//	amplitude = 3.0
//	frequency = 20.0
//
//	[[racer]]
//	kind    = "swift"
//	version = 5.0
//	boosts  = [3.0, 3.0]     # applied in order through racer.Booster
//
//	[[racer]]
//	kind    = "swallow"
//	variety = "african"      # african | european | unknown
//
// Order in the file is the order of the line-up, so sub-ranges taken by the
// caller match the file.
//
// Errors (sentinel):
//
//   - ErrEmptyRoster     - no [[racer]] entries.
//   - ErrUnknownKind     - kind is missing or not one of the five kinds.
//   - ErrUnknownVariety  - swallow variety is not african, european, or unknown.
//   - ErrNegativeParam   - a speed-shaping number (amplitude, frequency, version, speed, boost) is negative.
//   - ErrInvalidParam    - one of those numbers is nan or inf.
//
// Only the numbers that apply to an entry's kind are checked.
// Every entry error is wrapped with its 0-based index, so errors.Is still works.
package roster
