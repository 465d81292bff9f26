package sti

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/kolkov/sti/internal/runtime"
)

// Mode selects how Output Character values are written.
type Mode = runtime.Mode

const (
	// Integers writes each value in decimal on its own line (default).
	Integers = runtime.Integers
	// ASCII writes each value as one byte; values outside 0-127 are dropped.
	ASCII = runtime.ASCII
	// Unicode writes each value as a UTF-8 encoded character; values
	// outside 0-65534 are dropped.
	Unicode = runtime.Unicode
)

// ParseMode returns the Mode named by s: "integers", "ascii" or "unicode".
func ParseMode(s string) (Mode, error) {
	return runtime.ParseMode(s)
}

// Config holds configuration options for program execution.
type Config struct {
	// Start is the step execution begins with (default: 1).
	Start int

	// Mode selects how Output Character values are rendered
	// (default: Integers).
	Mode Mode

	// Output is the writer for Output Character.
	// If nil, output is captured and returned from Run.
	Output io.Writer

	// Stderr receives warnings when Logger is nil.
	// If nil, warnings are discarded.
	Stderr io.Writer

	// Logger receives warnings. It takes precedence over Stderr.
	Logger *zerolog.Logger

	// Trace, if set, receives one line per executed instruction:
	// "Step <number> <instruction>".
	Trace io.Writer

	// MaxSteps bounds the number of executed instructions (default: 0, no
	// limit). Programs may legitimately run forever; set this to get a
	// StepLimitError instead.
	MaxSteps int
}

// applyDefaults fills in default values for unset Config fields.
func (c *Config) applyDefaults() {
	if c.Start == 0 {
		c.Start = 1
	}
}

// logger returns the logger warnings are written to.
func (c *Config) logger() zerolog.Logger {
	if c.Logger != nil {
		return *c.Logger
	}
	if c.Stderr == nil {
		return zerolog.Nop()
	}
	return NewConsoleLogger(c.Stderr, false)
}

// NewConsoleLogger returns a human-readable logger writing to w, without
// timestamps. Colour is used only if color is true.
func NewConsoleLogger(w io.Writer, color bool) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{
		Out:          w,
		NoColor:      !color,
		PartsExclude: []string{zerolog.TimestampFieldName},
	})
}
