package roster

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/lvrace/bird"
	"github.com/katalvlaran/lvrace/racer"
	"github.com/katalvlaran/lvrace/vehicle"
)

// Default returns the classic line-up: three swallows, a penguin, a swift,
// a flappy bird, and a motorcycle.
func Default() *Roster {
	return &Roster{
		Title: "Bridge of Death Invitational",
		Entries: []Entry{
			{Kind: KindSwallow, Variety: "african"},
			{Kind: KindSwallow, Variety: "european"},
			{Kind: KindSwallow, Variety: "unknown"},
			{Kind: KindPenguin, Name: "King Penguin"},
			{Kind: KindSwift, Version: 5.1},
			{Kind: KindFlappy, Name: "Felipe", Amplitude: 3.0, Frequency: 20.0},
			{Kind: KindMotorcycle, Name: "Giacomo"},
		},
	}
}

// Load reads and validates a roster file.
func Load(path string) (*Roster, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("roster: open %s: %w", path, err)
	}
	defer f.Close()

	r, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return r, nil
}

// Decode parses a roster from TOML and validates every entry.
// Unknown keys are rejected so typos do not silently default to zero.
func Decode(rd io.Reader) (*Roster, error) {
	var r Roster
	meta, err := toml.NewDecoder(rd).Decode(&r)
	if err != nil {
		return nil, fmt.Errorf("roster: parse: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("roster: unknown key %q", undecoded[0].String())
	}
	if err = r.Validate(); err != nil {
		return nil, err
	}

	return &r, nil
}

// Validate checks every entry without building racers.
func (r *Roster) Validate() error {
	if len(r.Entries) == 0 {
		return ErrEmptyRoster
	}
	for i := range r.Entries {
		if _, err := r.Entries[i].Racer(); err != nil {
			return fmt.Errorf("racer %d: %w", i, err)
		}
	}

	return nil
}

// Racers builds the line-up in file order.
func (r *Roster) Racers() ([]racer.Racer, error) {
	if len(r.Entries) == 0 {
		return nil, ErrEmptyRoster
	}
	out := make([]racer.Racer, 0, len(r.Entries))
	for i := range r.Entries {
		rc, err := r.Entries[i].Racer()
		if err != nil {
			return nil, fmt.Errorf("racer %d: %w", i, err)
		}
		out = append(out, rc)
	}

	return out, nil
}

// Racer builds the racer an entry describes. Only the fields that apply to
// the entry's kind are checked; the rest are ignored.
func (e Entry) Racer() (racer.Racer, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(string(e.Kind)))) {
	case KindFlappy:
		if err := checkParams(param{"amplitude", e.Amplitude}, param{"frequency", e.Frequency}); err != nil {
			return nil, err
		}
		return bird.NewFlappyBird(e.Name, e.Amplitude, e.Frequency), nil

	case KindPenguin:
		return bird.NewPenguin(e.Name), nil

	case KindSwift:
		params := []param{{"version", e.Version}}
		for i, p := range e.Boosts {
			params = append(params, param{fmt.Sprintf("boosts[%d]", i), p})
		}
		if err := checkParams(params...); err != nil {
			return nil, err
		}
		s := bird.NewSwiftBird(e.Version)
		var b racer.Booster = &s
		for _, p := range e.Boosts {
			b.Boost(p)
		}
		return s, nil

	case KindSwallow:
		v, err := parseVariety(e.Variety)
		if err != nil {
			return nil, err
		}
		return v, nil

	case KindMotorcycle:
		m := vehicle.NewMotorcycle(e.Name)
		if e.Speed != nil {
			if err := checkParams(param{"speed", *e.Speed}); err != nil {
				return nil, err
			}
			m.Velocity = *e.Speed
		}
		return m, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, e.Kind)
	}
}

// param is a named number checked by checkParams.
type param struct {
	name string
	val  float64
}

// checkParams rejects non-finite and negative values, in that order.
func checkParams(params ...param) error {
	for _, p := range params {
		switch {
		case math.IsNaN(p.val) || math.IsInf(p.val, 0):
			return fmt.Errorf("%w: %s=%v", ErrInvalidParam, p.name, p.val)
		case p.val < 0:
			return fmt.Errorf("%w: %s=%v", ErrNegativeParam, p.name, p.val)
		}
	}

	return nil
}

func parseVariety(s string) (bird.UnladenSwallow, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "african":
		return bird.African, nil
	case "european":
		return bird.European, nil
	case "unknown":
		return bird.Unknown, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownVariety, s)
	}
}
