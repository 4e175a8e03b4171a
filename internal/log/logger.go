// SPDX-License-Identifier: MIT

// Package log provides the structured zerolog logger shared by the skill
// dispatcher and the command line tools. The codec packages stay pure and
// never log.
package log

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Environment variables consulted when a Config field is left empty.
const (
	EnvLevel   = "LOG_LEVEL"
	EnvService = "LOG_SERVICE"
)

const defaultService = "alexa-skill"

// Config captures options for the global logger. Empty fields fall back to
// the LOG_* environment variables, then to defaults.
type Config struct {
	Level   string    // "debug", "info", "warn", "error"
	Output  io.Writer // defaults to os.Stderr
	Service string    // service name attached to every entry
}

var (
	once sync.Once
	base zerolog.Logger
)

// Configure initialises the global logger exactly once; later calls are
// no-ops. Packages that only read the logger go through Base or
// WithComponent, which bind defaults on first use.
func Configure(cfg Config) {
	once.Do(func() {
		zerolog.SetGlobalLevel(level(cfg.Level))
		zerolog.TimeFieldFormat = time.RFC3339

		out := cfg.Output
		if out == nil {
			out = os.Stderr
		}
		base = zerolog.New(out).With().
			Timestamp().
			Str(FieldService, service(cfg.Service)).
			Logger()
	})
}

func level(explicit string) zerolog.Level {
	for _, candidate := range []string{explicit, os.Getenv(EnvLevel)} {
		if candidate == "" {
			continue
		}
		if parsed, err := zerolog.ParseLevel(candidate); err == nil {
			return parsed
		}
	}
	return zerolog.InfoLevel
}

func service(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if env := os.Getenv(EnvService); env != "" {
		return env
	}
	return defaultService
}

// Base returns the global logger, binding defaults on first use.
func Base() zerolog.Logger {
	Configure(Config{})
	return base
}

// WithComponent returns a child of the global logger annotated with the
// component name.
func WithComponent(component string) zerolog.Logger {
	return Base().With().Str(FieldComponent, component).Logger()
}
