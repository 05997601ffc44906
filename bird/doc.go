// Package bird models a small flock of capability-driven value types.
//
// 🚀 What is a bird here?
//
//	Every variant satisfies Bird (it has a name). Some also satisfy Flyable
//	(they report an airspeed velocity). Whether a bird can fly is not stored
//	anywhere: it is derived from capability membership by CanFly, and a variant
//	may override it by providing its own CanFly method.
//
// ✨ Variants:
//   - FlappyBird      - airspeed = 3 × frequency × amplitude
//   - Penguin         - not Flyable, waddles at a fixed racing speed
//   - SwiftBird       - airspeed = version × speed factor; Boost raises the factor
//   - UnladenSwallow  - African, European, or Unknown (overrides CanFly)
//
// Every variant also satisfies racer.Racer, so a whole flock can be ranked
// with racer.TopSpeed next to non-birds such as vehicle.Motorcycle.
//
// Aborts:
//
//	Asking UnladenSwallow Unknown for its AirspeedVelocity panics with
//	ErrBridgeOfDeath. That state has no meaningful speed, so there is no
//	error value to return. Its racing Speed is 0, because it cannot fly.
//
// Usage:
//
//	felipe := bird.NewFlappyBird("Felipe", 3, 20)
//	fmt.Println(bird.CanFly(felipe), felipe.AirspeedVelocity()) // true 180
//
//	swift := bird.NewSwiftBird(5.0)
//	swift.Boost(3.0)
//	fmt.Println(swift.AirspeedVelocity()) // 5015
package bird
