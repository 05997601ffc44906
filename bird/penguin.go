package bird

// Penguin is a bird without the Flyable capability.
type Penguin struct {
	name string
}

// NewPenguin returns a Penguin called name.
func NewPenguin(name string) Penguin {
	return Penguin{name: name}
}

// Name returns the penguin's display name.
func (p Penguin) Name() string { return p.name }

// String implements fmt.Stringer.
func (p Penguin) String() string { return Describe(p) }
