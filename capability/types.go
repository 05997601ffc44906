package capability

import "errors"

// Sentinel errors for Audit.
var (
	// ErrNoPackages indicates the patterns matched nothing.
	ErrNoPackages = errors.New("capability: no packages matched")

	// ErrPackageErrors indicates a loaded package failed to parse or type-check.
	ErrPackageErrors = errors.New("capability: package has errors")
)

// Options controls which packages are loaded and which capabilities are reported.
type Options struct {
	// Patterns are go/packages load patterns relative to the audit directory.
	// Empty means "./...".
	Patterns []string

	// Capabilities, if non-empty, restricts the report to these qualified
	// interface names (e.g. "bird.Flyable").
	Capabilities []string

	// IncludeUnexported keeps unexported interfaces and types.
	IncludeUnexported bool
}

// Conformance records that Type satisfies Capability.
type Conformance struct {
	Type       string
	Capability string
	ViaPointer bool // only *Type, not Type, satisfies Capability
}

// Report is the result of an Audit. Slices are sorted by name.
type Report struct {
	Capabilities []string
	Types        []string
	Conformances []Conformance

	index map[[2]string]bool
}

// Implements reports whether typeName satisfies capName, and whether it does so
// only through a pointer receiver.
func (r *Report) Implements(typeName, capName string) (ok, viaPointer bool) {
	viaPointer, ok = r.index[[2]string{typeName, capName}]

	return ok, viaPointer
}

// Implementers returns the types satisfying capName in sorted order.
func (r *Report) Implementers(capName string) []string {
	var out []string
	for _, c := range r.Conformances {
		if c.Capability == capName {
			out = append(out, c.Type)
		}
	}

	return out
}
