package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRun_DefaultRoster ranks the built-in line-up and its default sub-range.
func TestRun_DefaultRoster(t *testing.T) {
	cfg, err := parseFlags(nil)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), cfg, &out, zerolog.Nop()))
	assert.Equal(t, "Bridge of Death Invitational\n"+
		"top speed: 5100\n"+
		"top speed [1:4]: 42\n"+
		"best score: 150\n", out.String())
}

// TestRun_RosterFile ranks a roster file with an open-ended sub-range.
func TestRun_RosterFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "race.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
title = "Sunday"

[[racer]]
kind = "penguin"
name = "Pingu"

[[racer]]
kind = "motorcycle"
name = "Giacomo"
`), 0o644))

	cfg, err := parseFlags([]string{"-roster", path, "-from", "0", "-to", "0"})
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), cfg, &out, zerolog.Nop()))
	assert.Contains(t, out.String(), "top speed: 200\n")
	assert.Contains(t, out.String(), "top speed [0:2]: 200\n")
}

// TestRun_ShortRosterDefaultRange ranks a 2-racer roster without range flags.
func TestRun_ShortRosterDefaultRange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "duel.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
title = "Duel"

[[racer]]
kind = "penguin"
name = "Pingu"

[[racer]]
kind = "motorcycle"
name = "Giacomo"
`), 0o644))

	cfg, err := parseFlags([]string{"-roster", path})
	require.NoError(t, err)
	assert.False(t, cfg.rangeSet)

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), cfg, &out, zerolog.Nop()))
	assert.Contains(t, out.String(), "top speed: 200\n")
	assert.Contains(t, out.String(), "top speed [1:2]: 200\n")
}

// TestRun_BadRange rejects a sub-range past the end.
func TestRun_BadRange(t *testing.T) {
	cfg, err := parseFlags([]string{"-from", "3", "-to", "99"})
	require.NoError(t, err)
	assert.True(t, cfg.rangeSet, "explicit ranges are not clamped")

	err = run(context.Background(), cfg, &bytes.Buffer{}, zerolog.Nop())
	assert.ErrorIs(t, err, errBadRange)
}

// TestRun_Audit prints conformances for the module.
func TestRun_Audit(t *testing.T) {
	if testing.Short() {
		t.Skip("capability audit shells out to the go command")
	}
	cfg, err := parseFlags([]string{"-audit", "../.."})
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), cfg, &out, zerolog.Nop()))
	assert.Contains(t, out.String(), "bird.Penguin implements racer.Racer\n")
	assert.Contains(t, out.String(), "bird.SwiftBird implements racer.Booster (pointer)\n")
	assert.NotContains(t, out.String(), "bird.Penguin implements bird.Flyable")
}

// TestNewLogger honors the level and falls back to info.
func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "warn")
	l.Info().Msg("hidden")
	l.Warn().Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	assert.Equal(t, zerolog.InfoLevel, newLogger(&buf, "loud").GetLevel())
}
