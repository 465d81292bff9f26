// Package parser builds programs from SMETANA To Infinity! tokens.
package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kolkov/sti/internal/ast"
	"github.com/kolkov/sti/internal/lexer"
	"github.com/kolkov/sti/internal/token"
)

// ErrUnexpectedEnd is wrapped by a ParseError when the tokens run out in the
// middle of a step.
var ErrUnexpectedEnd = errors.New("unexpected end of program")

// contextTokens is the number of tokens shown as error context.
const contextTokens = 10

// ParseError represents a syntax error encountered during parsing.
type ParseError struct {
	Pos     token.Position // Position of the first token of the step
	Step    ast.Expr       // Step being parsed (the previous one if its number is not known yet)
	Index   int            // Index of the first token of the step
	Context []lexer.Token  // Up to ten tokens starting at Index
	Message string         // Human-readable error message
	err     error
}

// Error returns a formatted error message with position information.
func (e *ParseError) Error() string {
	msg := fmt.Sprintf("%s in step %s", e.Message, e.Step)
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s: %s", e.Pos, msg)
	}
	return msg
}

// Unwrap returns ErrUnexpectedEnd for truncated programs, nil otherwise.
func (e *ParseError) Unwrap() error {
	return e.err
}

// Near renders the context tokens separated by spaces.
func (e *ParseError) Near() string {
	parts := make([]string, len(e.Context))
	for i, tok := range e.Context {
		parts[i] = tok.String()
	}
	return strings.Join(parts, " ")
}

// Warning is a non-fatal notice produced while parsing: an expression step
// removed a numbered step defined before it.
type Warning struct {
	Replaced int      // Numbered step that was removed
	By       ast.Expr // Expression step that covers it
}

func (w Warning) String() string {
	return fmt.Sprintf("step %s has replaced step %d", w.By, w.Replaced)
}
