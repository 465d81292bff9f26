package parser

import (
	"fmt"
	"io"
	"slices"

	"github.com/kolkov/sti/internal/ast"
	"github.com/kolkov/sti/internal/lexer"
	"github.com/kolkov/sti/internal/semantic"
	"github.com/kolkov/sti/internal/token"
)

// cursor is a read position in the token stream. Parsing functions take a
// cursor and return the advanced one.
type cursor struct {
	toks []lexer.Token
	i    int
}

func (c cursor) atEnd() bool {
	return c.i >= len(c.toks)
}

// peek returns the current token; ok is false when no tokens are left.
func (c cursor) peek() (tok lexer.Token, ok bool) {
	if c.atEnd() {
		return lexer.Token{Type: token.EOF}, false
	}
	return c.toks[c.i], true
}

func (c cursor) advance() cursor {
	c.i++
	return c
}

// Parser converts a token stream into a Program.
type Parser struct {
	toks     []lexer.Token
	prog     *ast.Program
	warnings []Warning

	step  ast.Expr // Step being parsed, for error context
	start int      // Index of the first token of that step
}

// Parse tokenizes and parses source text.
// Lexical errors are returned as *lexer.Error, syntax errors as *ParseError.
func Parse(src string) (*ast.Program, []Warning, error) {
	toks, err := lexer.TokenizeString(src)
	if err != nil {
		return nil, nil, err
	}
	return ParseTokens(toks)
}

// ParseReader tokenizes and parses source read line by line from r.
func ParseReader(r io.Reader, filename string) (*ast.Program, []Warning, error) {
	toks, err := lexer.Tokenize(r, filename)
	if err != nil {
		return nil, nil, err
	}
	return ParseTokens(toks)
}

// ParseTokens parses a complete program. Line boundaries are irrelevant, so
// toks is the concatenation of all lines.
func ParseTokens(toks []lexer.Token) (*ast.Program, []Warning, error) {
	p := &Parser{
		toks: toks,
		prog: ast.NewProgram(),
	}

	c := cursor{toks: toks}
	for !c.atEnd() {
		p.start = c.i
		next, err := p.parseStep(c)
		if err != nil {
			return nil, nil, err
		}
		c = next
	}

	// Later definitions take precedence, so they are searched first.
	slices.Reverse(p.prog.Exprs)

	return p.prog, p.warnings, nil
}

// parseStep parses: "Step" expr "." instruction "."
func (p *Parser) parseStep(c cursor) (cursor, error) {
	c, err := p.expect(c, token.STEP, "missing 'Step' at the beginning of a step definition")
	if err != nil {
		return c, err
	}

	step, c, err := p.parseExpr(c)
	if err != nil {
		return c, err
	}
	if !step.IsLinear() && step.Value() == 0 {
		p.step = step
		return c, p.errorf("0 is not a valid step number")
	}
	p.step = step

	c, err = p.expect(c, token.DOT, "missing '.' after the step number")
	if err != nil {
		return c, err
	}

	in, c, err := p.parseInstr(c)
	if err != nil {
		return c, err
	}

	c, err = p.expect(c, token.DOT, "missing '.' at end of instruction")
	if err != nil {
		return c, err
	}

	p.define(step, in)
	return c, nil
}

func (p *Parser) parseInstr(c cursor) (ast.Instr, cursor, error) {
	tok, ok := c.peek()
	if !ok {
		return ast.Instr{}, c, p.endError()
	}
	c = c.advance()

	var (
		a, b ast.Expr
		err  error
	)
	switch tok.Type {
	case token.STOP:
		return ast.Halt, c, nil

	case token.GO:
		if c, err = p.expect(c, token.TO, "missing 'To' after 'Go'"); err != nil {
			return ast.Instr{}, c, err
		}
		if c, err = p.expect(c, token.STEP, "missing 'Step' after 'Go To'"); err != nil {
			return ast.Instr{}, c, err
		}
		if a, c, err = p.parseTarget(c); err != nil {
			return ast.Instr{}, c, err
		}
		return ast.Jump(a), c, nil

	case token.SWAP:
		if c, err = p.expect(c, token.STEP, "missing 'Step' after 'Swap'"); err != nil {
			return ast.Instr{}, c, err
		}
		if a, c, err = p.parseTarget(c); err != nil {
			return ast.Instr{}, c, err
		}
		if c, err = p.expect(c, token.WITH, "missing 'With' after first swap target"); err != nil {
			return ast.Instr{}, c, err
		}
		if c, err = p.expect(c, token.STEP, "missing 'Step' after 'With'"); err != nil {
			return ast.Instr{}, c, err
		}
		if b, c, err = p.parseTarget(c); err != nil {
			return ast.Instr{}, c, err
		}
		return ast.Exchange(a, b), c, nil

	case token.OUTPUT:
		if c, err = p.expect(c, token.CHARACTER, "missing 'Character' after 'Output'"); err != nil {
			return ast.Instr{}, c, err
		}
		if a, c, err = p.parseExpr(c); err != nil {
			return ast.Instr{}, c, err
		}
		if err = p.checkOperand(a); err != nil {
			return ast.Instr{}, c, err
		}
		return ast.Emit(a), c, nil

	default:
		return ast.Instr{}, c, p.errorf("illegal instruction '%s'", tok)
	}
}

// parseTarget parses a step reference used as a Go To or Swap operand.
func (p *Parser) parseTarget(c cursor) (ast.Expr, cursor, error) {
	target, c, err := p.parseExpr(c)
	if err != nil {
		return target, c, err
	}
	if !target.IsLinear() && target.Value() == 0 {
		return target, c, p.errorf("0 is not a valid target step number")
	}
	if err := p.checkOperand(target); err != nil {
		return target, c, err
	}
	return target, c, nil
}

// parseExpr parses: [INTEGER] ["N" ["+" INTEGER]]
func (p *Parser) parseExpr(c cursor) (ast.Expr, cursor, error) {
	lead, haveLead := 0, false

	tok, ok := c.peek()
	if !ok {
		return ast.Expr{}, c, p.endError()
	}
	if tok.Type == token.NUMBER {
		lead, haveLead = tok.Num, true
		c = c.advance()
		if tok, ok = c.peek(); !ok {
			return ast.Expr{}, c, p.endError()
		}
	}

	if tok.Type != token.VAR {
		if !haveLead {
			return ast.Expr{}, c, p.errorf("illegal expression - expected a number or 'n'")
		}
		return ast.Num(lead), c, nil
	}
	c = c.advance()

	coeff := 1
	if haveLead {
		if lead == 0 {
			return ast.Expr{}, c, p.errorf("0 is not a valid coefficient")
		}
		coeff = lead
	}

	tok, ok = c.peek()
	if !ok {
		return ast.Expr{}, c, p.endError()
	}
	if tok.Type != token.PLUS {
		return ast.Linear(coeff, 0), c, nil
	}
	c = c.advance()

	tok, ok = c.peek()
	if !ok {
		return ast.Expr{}, c, p.endError()
	}
	if tok.Type != token.NUMBER {
		return ast.Expr{}, c, p.errorf("illegal expression - expected a number after '+'")
	}
	return ast.Linear(coeff, tok.Num), c.advance(), nil
}

// checkOperand rejects n-expressions inside numbered steps, where there is
// no n to substitute.
func (p *Parser) checkOperand(e ast.Expr) error {
	if !p.step.IsLinear() && e.IsLinear() {
		return p.errorf("illegal 'n'-expression in a numbered step")
	}
	return nil
}

func (p *Parser) expect(c cursor, want token.Token, msg string) (cursor, error) {
	tok, ok := c.peek()
	if !ok {
		return c, p.endError()
	}
	if tok.Type != want {
		return c, p.errorf("%s", msg)
	}
	return c.advance(), nil
}

// define installs a fully parsed step. A numbered step silently replaces
// an earlier definition of the same number. An expression step removes the
// numbered steps defined so far that it covers.
func (p *Parser) define(step ast.Expr, in ast.Instr) {
	if !step.IsLinear() {
		p.prog.Numbered[step.Value()] = in
		return
	}

	p.prog.Exprs = append(p.prog.Exprs, ast.ExprStep{Pattern: step, Instr: in})
	for _, n := range semantic.Shadowed(p.prog.Numbered, step) {
		delete(p.prog.Numbered, n)
		p.warnings = append(p.warnings, Warning{Replaced: n, By: step})
	}
}

func (p *Parser) errorf(format string, args ...any) *ParseError {
	e := &ParseError{
		Step:    p.step,
		Index:   p.start,
		Message: fmt.Sprintf(format, args...),
	}
	if p.start < len(p.toks) {
		e.Pos = p.toks[p.start].Pos
		e.Context = p.toks[p.start:min(p.start+contextTokens, len(p.toks))]
	}
	return e
}

func (p *Parser) endError() *ParseError {
	e := p.errorf("%s", ErrUnexpectedEnd)
	e.err = ErrUnexpectedEnd
	return e
}
