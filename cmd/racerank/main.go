// Command racerank ranks a line-up of racers by top speed.
//
// Usage:
//
//	racerank [-roster file.toml] [-from N] [-to M] [-audit dir] [-log-level info]
//
// Without -roster the built-in line-up is ranked. -from/-to select a half-open
// sub-range of the line-up (-to 0 means the end); the default [1:4] is cut to
// the roster length, explicit values are not. -audit also prints which
// types in dir satisfy the bird and racer capabilities.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvrace/capability"
	"github.com/katalvlaran/lvrace/racer"
	"github.com/katalvlaran/lvrace/roster"
	"github.com/katalvlaran/lvrace/score"
)

// EnvLogLevel overrides -log-level when set.
const EnvLogLevel = "LVRACE_LOG_LEVEL"

var errBadRange = errors.New("racerank: bad sub-range")

type config struct {
	rosterPath string
	from, to   int
	rangeSet   bool // -from or -to given explicitly
	auditDir   string
	logLevel   string
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}
	logger := newLogger(os.Stderr, cfg.logLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, cfg, os.Stdout, logger); err != nil {
		logger.Error().Err(err).Msg("racerank failed")
		os.Exit(1)
	}
}

func parseFlags(args []string) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("racerank", flag.ContinueOnError)
	fs.StringVar(&cfg.rosterPath, "roster", "", "TOML roster file (built-in line-up when empty)")
	fs.IntVar(&cfg.from, "from", 1, "start of the sub-range to rank (inclusive)")
	fs.IntVar(&cfg.to, "to", 4, "end of the sub-range to rank (exclusive, 0 = end)")
	fs.StringVar(&cfg.auditDir, "audit", "", "module directory to audit for capability conformance")
	fs.StringVar(&cfg.logLevel, "log-level", "info", "log level (trace, debug, info, warn, error, disabled)")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "from" || f.Name == "to" {
			cfg.rangeSet = true
		}
	})
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.logLevel = v
	}

	return cfg, nil
}

// newLogger returns a console zerolog logger; unknown levels fall back to info.
func newLogger(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(lvl).
		With().Timestamp().Str("cmd", "racerank").
		Logger()
}

func run(ctx context.Context, cfg config, out io.Writer, logger zerolog.Logger) error {
	r := roster.Default()
	if cfg.rosterPath != "" {
		var err error
		if r, err = roster.Load(cfg.rosterPath); err != nil {
			return err
		}
	}
	logger.Info().Str("title", r.Title).Int("racers", len(r.Entries)).Msg("roster loaded")

	racers, err := r.Racers()
	if err != nil {
		return err
	}
	for i, rc := range racers {
		logger.Debug().Int("index", i).Str("racer", fmt.Sprintf("%T", rc)).Float64("speed", rc.Speed()).Msg("racer")
	}

	from, to := cfg.from, cfg.to
	if to == 0 {
		to = len(racers)
	}
	if !cfg.rangeSet {
		// The default range fits the built-in line-up; shrink it for shorter rosters.
		to = min(to, len(racers))
		from = min(from, to)
	}
	if from < 0 || from > to || to > len(racers) {
		return fmt.Errorf("%w: [%d:%d] of %d racers", errBadRange, cfg.from, cfg.to, len(racers))
	}

	fmt.Fprintf(out, "%s\n", r.Title)
	fmt.Fprintf(out, "top speed: %g\n", racer.TopSpeed(racers))
	fmt.Fprintf(out, "top speed [%d:%d]: %g\n", from, to, racer.TopSpeed(racers[from:to]))

	best, _ := score.Best([]score.RacingScore{150, 130})
	fmt.Fprintf(out, "best score: %d\n", best.Value())

	if cfg.auditDir == "" {
		return nil
	}
	logger.Info().Str("dir", cfg.auditDir).Msg("auditing capabilities")
	rep, err := capability.Audit(ctx, cfg.auditDir, capability.Options{
		Capabilities: []string{"bird.Bird", "bird.Flyable", "racer.Racer", "racer.Booster"},
	})
	if err != nil {
		return err
	}
	for _, c := range rep.Conformances {
		suffix := ""
		if c.ViaPointer {
			suffix = " (pointer)"
		}
		fmt.Fprintf(out, "%s implements %s%s\n", c.Type, c.Capability, suffix)
	}
	logger.Info().Int("conformances", len(rep.Conformances)).Msg("audit complete")

	return nil
}
