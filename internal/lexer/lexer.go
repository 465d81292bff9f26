// Package lexer provides tokenization of SMETANA To Infinity! source code.
//
// Source is tokenized one line at a time. Newlines carry no grammatical
// meaning, so callers concatenate the per-line token slices.
package lexer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/coregx/coregex"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/kolkov/sti/internal/token"
)

// digits matches pieces that are integer literals.
var digits = mustCompile(`^[0-9]+$`)

func mustCompile(pattern string) *coregex.Regexp {
	re, err := coregex.Compile(pattern)
	if err != nil {
		panic(err)
	}
	return re
}

// Token represents a scanned token with its position and value.
type Token struct {
	Type  token.Token
	Pos   token.Position
	Value string // Raw text as written in the source
	Num   int    // Value of a NUMBER token
}

// String renders the token the way it is shown in error context.
func (t Token) String() string {
	if t.Type == token.NUMBER {
		return strconv.Itoa(t.Num)
	}
	return t.Type.String()
}

// Error is a lexical error: an illegal token or a misplaced comment.
type Error struct {
	Pos     token.Position // Position of the offending piece
	Line    string         // Full text of the offending line
	Message string
}

func (e *Error) Error() string {
	if e.Pos.Filename != "" {
		return fmt.Sprintf("%s:%d: %s", e.Pos.Filename, e.Pos.Line, e.Message)
	}
	return fmt.Sprintf("line %d: %s", e.Pos.Line, e.Message)
}

// Lexer tokenizes source lines.
type Lexer struct {
	filename string
	caser    cases.Caser
}

// New creates a Lexer. The filename is only used in positions.
func New(filename string) *Lexer {
	return &Lexer{
		filename: filename,
		caser:    cases.Title(language.Und),
	}
}

// piece is a raw, unclassified chunk of a line.
type piece struct {
	text string
	col  int
}

// Line tokenizes a single line of source. lineNum is 1-based.
// A comment line yields an empty slice.
func (l *Lexer) Line(line string, lineNum int) ([]Token, error) {
	pieces, err := l.split(line, lineNum)
	if err != nil {
		return nil, err
	}

	toks := make([]Token, 0, len(pieces))
	for _, pc := range pieces {
		pos := token.Position{Filename: l.filename, Line: lineNum, Column: pc.col}
		tok, err := l.classify(pc.text, pos)
		if err != nil {
			err.Line = trimEOL(line)
			return nil, err
		}
		toks = append(toks, tok)
	}
	return toks, nil
}

// split breaks a line at whitespace and at the special characters
// '.', '+', 'n' and 'N', which always form tokens of their own.
func (l *Lexer) split(line string, lineNum int) ([]piece, error) {
	var pieces []piece
	var cur strings.Builder
	start := 0

	flush := func() {
		if cur.Len() > 0 {
			pieces = append(pieces, piece{text: cur.String(), col: start})
			cur.Reset()
		}
	}

	for i, c := range line {
		col := i + 1
		switch {
		case unicode.IsSpace(c):
			flush()
		case c == '#':
			if len(pieces) == 0 && cur.Len() == 0 {
				return nil, nil
			}
			return nil, &Error{
				Pos:     token.Position{Filename: l.filename, Line: lineNum, Column: col},
				Line:    trimEOL(line),
				Message: "comment started after non-whitespace character",
			}
		case c == '.' || c == '+' || c == 'n' || c == 'N':
			flush()
			pieces = append(pieces, piece{text: string(c), col: col})
		default:
			if cur.Len() == 0 {
				start = col
			}
			cur.WriteRune(c)
		}
	}
	flush()
	return pieces, nil
}

func (l *Lexer) classify(text string, pos token.Position) (Token, *Error) {
	switch text {
	case ".":
		return Token{Type: token.DOT, Pos: pos, Value: text}, nil
	case "+":
		return Token{Type: token.PLUS, Pos: pos, Value: text}, nil
	}

	if digits.MatchString(text) {
		n, err := strconv.Atoi(text)
		if err != nil {
			return Token{}, &Error{Pos: pos, Message: fmt.Sprintf("number '%s' out of range", text)}
		}
		return Token{Type: token.NUMBER, Pos: pos, Value: text, Num: n}, nil
	}

	typ := token.LookupKeyword(l.caser.String(text))
	if typ == token.ILLEGAL {
		return Token{}, &Error{Pos: pos, Message: fmt.Sprintf("illegal token '%s'", text)}
	}
	return Token{Type: typ, Pos: pos, Value: text}, nil
}

// Tokenize reads all lines from r and returns the concatenated tokens.
// Tokenization stops at the first lexical error.
func Tokenize(r io.Reader, filename string) ([]Token, error) {
	l := New(filename)
	br := bufio.NewReader(r)

	var all []Token
	for lineNum := 1; ; lineNum++ {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		if line != "" {
			toks, lexErr := l.Line(line, lineNum)
			if lexErr != nil {
				return nil, lexErr
			}
			all = append(all, toks...)
		}
		if err != nil {
			return all, nil
		}
	}
}

// TokenizeString is a convenience wrapper around Tokenize.
func TokenizeString(src string) ([]Token, error) {
	return Tokenize(strings.NewReader(src), "")
}

func trimEOL(line string) string {
	return strings.TrimRight(line, "\r\n")
}
