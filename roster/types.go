package roster

import "errors"

// Sentinel errors for roster decoding and validation.
var (
	// ErrEmptyRoster indicates a roster without any racer entries.
	ErrEmptyRoster = errors.New("roster: no racers")

	// ErrUnknownKind indicates an entry whose kind is missing or unsupported.
	ErrUnknownKind = errors.New("roster: unknown racer kind")

	// ErrUnknownVariety indicates a swallow entry with an unsupported variety.
	ErrUnknownVariety = errors.New("roster: unknown swallow variety")

	// ErrNegativeParam indicates a negative amplitude, frequency, version, speed, or boost.
	ErrNegativeParam = errors.New("roster: negative parameter")

	// ErrInvalidParam indicates a NaN or infinite amplitude, frequency, version, speed, or boost.
	ErrInvalidParam = errors.New("roster: non-finite parameter")
)

// Kind names a racer variant in a roster file.
type Kind string

// Supported kinds.
const (
	KindFlappy     Kind = "flappy"
	KindPenguin    Kind = "penguin"
	KindSwift      Kind = "swift"
	KindSwallow    Kind = "swallow"
	KindMotorcycle Kind = "motorcycle"
)

// Roster is a titled, ordered line-up.
type Roster struct {
	Title   string  `toml:"title"`
	Entries []Entry `toml:"racer"`
}

// Entry is one racer in a roster. Fields that do not apply to Kind are ignored,
// including by validation.
type Entry struct {
	Kind      Kind      `toml:"kind"`
	Name      string    `toml:"name"`
	Amplitude float64   `toml:"amplitude"`
	Frequency float64   `toml:"frequency"`
	Version   float64   `toml:"version"`
	Variety   string    `toml:"variety"`
	Speed     *float64  `toml:"speed"`
	Boosts    []float64 `toml:"boosts"`
}
