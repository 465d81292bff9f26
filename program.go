package sti

import (
	"bytes"
	"errors"

	"github.com/rs/zerolog"

	"github.com/kolkov/sti/internal/ast"
	"github.com/kolkov/sti/internal/parser"
	"github.com/kolkov/sti/internal/runtime"
	"github.com/kolkov/sti/internal/vm"
)

// Program represents a parsed program ready for execution.
// It is safe for concurrent use; each call to Run works on its own copy of
// the numbered steps.
type Program struct {
	prog     *ast.Program
	warnings []parser.Warning
}

// Result describes a finished run.
type Result struct {
	// Output is the captured output when Config.Output is nil.
	Output string
	// Final is the step the program stopped at.
	Final int
	// Steps is the number of executed instructions.
	Steps int
	// Dropped counts Output Character values out of range for the mode.
	Dropped int
}

// Run executes the program with the given configuration.
// Returns the output as a string, or an error if execution fails.
//
// If config is nil, default configuration is used.
// If config.Output is set, output is written there and the returned
// string will be empty.
func (p *Program) Run(config *Config) (string, error) {
	res, err := p.Execute(config)
	return res.Output, err
}

// Execute runs the program and reports where it stopped. The Result is
// filled in as far as execution got, even when an error is returned.
func (p *Program) Execute(config *Config) (*Result, error) {
	if config == nil {
		config = &Config{}
	}
	config.applyDefaults()

	// Set output capture if not provided
	var outputBuf *bytes.Buffer
	w := config.Output
	if w == nil {
		outputBuf = &bytes.Buffer{}
		w = outputBuf
	}

	out := runtime.NewOutput(w, config.Mode, config.logger())
	v := vm.NewWithConfig(p.prog.Clone(), out, vm.VMConfig{
		Trace:    config.Trace,
		MaxSteps: config.MaxSteps,
	})

	final, err := v.Run(config.Start)

	res := &Result{
		Final:   final,
		Steps:   v.Steps(),
		Dropped: out.Dropped(),
	}
	if outputBuf != nil {
		res.Output = outputBuf.String()
	}

	if err != nil {
		var limit *vm.StepLimitError
		if errors.As(err, &limit) {
			return res, &StepLimitError{Limit: limit.Limit, Step: limit.Step}
		}
		return res, &RuntimeError{Step: final, Message: err.Error(), Err: err}
	}
	return res, nil
}

// Warnings returns the parse warnings, one message per numbered step that
// a later expression step removed.
func (p *Program) Warnings() []string {
	msgs := make([]string, len(p.warnings))
	for i, w := range p.warnings {
		msgs[i] = w.String()
	}
	return msgs
}

// ReportWarnings logs the parse warnings.
func (p *Program) ReportWarnings(log zerolog.Logger) {
	for _, w := range p.warnings {
		log.Warn().
			Int("replaced", w.Replaced).
			Str("by", w.By.String()).
			Msg(w.String())
	}
}

// Steps returns the numbered steps defined by the program, ascending.
func (p *Program) Steps() []int {
	return p.prog.Steps()
}

// String returns the program in normalized source form, one step per line.
func (p *Program) String() string {
	return p.prog.String()
}
