package sti

import (
	"errors"
	"io"
	"strings"

	"github.com/kolkov/sti/internal/lexer"
	"github.com/kolkov/sti/internal/parser"
)

// Version is the sti version string.
const Version = "0.1.0"

// Run executes a program with the given configuration.
// This is a convenience function for one-off execution.
// For repeated execution of the same program, use Compile followed by
// Program.Run.
//
// Parse warnings are logged through the configured logger before running.
// Returns the program output as a string, or an error if parsing or
// execution fails.
//
// Example:
//
//	output, err := sti.Run("Step 1. Output Character 7. Step 2. Stop.", nil)
//	// output: "7\n"
func Run(program string, config *Config) (string, error) {
	prog, err := Compile(program)
	if err != nil {
		return "", err
	}
	if config == nil {
		config = &Config{}
	}
	prog.ReportWarnings(config.logger())
	return prog.Run(config)
}

// Exec runs a program writing its output to output.
//
// Example:
//
//	err := sti.Exec(source, os.Stdout, &sti.Config{Mode: sti.ASCII})
func Exec(program string, output io.Writer, config *Config) error {
	if config == nil {
		config = &Config{}
	}
	config.Output = output

	_, err := Run(program, config)
	return err
}

// Compile parses a program.
// The returned Program can be executed multiple times.
//
// Example:
//
//	prog, err := sti.Compile("Step n. Output Character n.")
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(program string) (*Program, error) {
	return CompileReader(strings.NewReader(program), "")
}

// CompileReader parses a program read line by line from r.
// The filename is only used in error messages.
func CompileReader(r io.Reader, filename string) (*Program, error) {
	prog, warnings, err := parser.ParseReader(r, filename)
	if err != nil {
		return nil, convertError(err)
	}
	return &Program{
		prog:     prog,
		warnings: warnings,
	}, nil
}

// MustCompile is like Compile but panics if the program cannot be parsed.
// It simplifies initialization of global program variables.
func MustCompile(program string) *Program {
	prog, err := Compile(program)
	if err != nil {
		panic(err)
	}
	return prog
}

// convertError maps internal errors to the public error types.
func convertError(err error) error {
	var le *lexer.Error
	if errors.As(err, &le) {
		return &LexError{
			Filename: le.Pos.Filename,
			Line:     le.Pos.Line,
			Column:   le.Pos.Column,
			Text:     le.Line,
			Message:  le.Message,
		}
	}

	var pe *parser.ParseError
	if errors.As(err, &pe) {
		return &ParseError{
			Filename:      pe.Pos.Filename,
			Line:          pe.Pos.Line,
			Column:        pe.Pos.Column,
			Step:          pe.Step.String(),
			Near:          pe.Near(),
			Message:       pe.Message,
			UnexpectedEnd: errors.Is(err, parser.ErrUnexpectedEnd),
		}
	}

	// Reading the source failed.
	return err
}
