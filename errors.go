package sti

import (
	"errors"
	"fmt"
)

// LexError represents an illegal token or a comment that does not start
// the line.
type LexError struct {
	Filename string // Source file name, if known
	Line     int    // 1-based line number
	Column   int    // 1-based column number
	Text     string // Text of the offending line
	Message  string // Error description
}

func (e *LexError) Error() string {
	if e.Filename != "" {
		return fmt.Sprintf("lexical error at %s:%d: %s", e.Filename, e.Line, e.Message)
	}
	return fmt.Sprintf("lexical error at line %d: %s", e.Line, e.Message)
}

// ParseError represents a malformed step.
type ParseError struct {
	Filename string // Source file name, if known
	Line     int    // 1-based line of the first token of the step
	Column   int    // 1-based column of the first token of the step
	Step     string // Step being parsed, e.g. "12" or "2n + 1"
	Near     string // Up to ten tokens from the start of the step
	Message  string // Error description

	// UnexpectedEnd is set when the program ends in the middle of a step.
	UnexpectedEnd bool
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %d:%d in step %s: %s", e.Line, e.Column, e.Step, e.Message)
}

// RuntimeError represents an error during execution, such as a failed
// write of program output.
type RuntimeError struct {
	Step    int    // Step being executed
	Message string // Error description
	Err     error  // Underlying error
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("runtime error at step %d: %s", e.Step, e.Message)
}

func (e *RuntimeError) Unwrap() error {
	return e.Err
}

// StepLimitError is returned when Config.MaxSteps instructions were executed
// without reaching Stop.
type StepLimitError struct {
	Limit int // Configured limit
	Step  int // Step that would have executed next
}

func (e *StepLimitError) Error() string {
	return fmt.Sprintf("step limit of %d reached before step %d", e.Limit, e.Step)
}

// IsStepLimit reports whether err is a StepLimitError and returns the step
// execution was stopped at.
func IsStepLimit(err error) (int, bool) {
	var e *StepLimitError
	if errors.As(err, &e) {
		return e.Step, true
	}
	return 0, false
}
