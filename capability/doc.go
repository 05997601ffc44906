// Package capability audits which concrete types satisfy which capability
// interfaces, using the type checker instead of runtime assertions.
//
// bird.CanFly decides flight at runtime by asking whether a value is also
// Flyable. Audit answers the same question statically for a whole package
// tree: it loads the packages with golang.org/x/tools/go/packages, collects
// every named interface that declares methods (a capability) and every named
// concrete type, and records each pair where T or *T implements the interface.
//
// Names in a Report are package-qualified by package name, e.g. "bird.Flyable"
// or "vehicle.Motorcycle".
//
// Usage:
//
//	rep, err := capability.Audit(ctx, ".", capability.Options{
//	    Patterns: []string{"./bird", "./vehicle"},
//	})
//	if err != nil { ... }
//	ok, viaPtr := rep.Implements("bird.SwiftBird", "racer.Booster") // true, true
package capability
