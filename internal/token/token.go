// Package token defines lexical tokens for SMETANA To Infinity! programs.
package token

import "strconv"

// Token represents a lexical token type.
type Token uint8

const (
	// Special tokens
	ILLEGAL Token = iota // <illegal>
	EOF                  // EOF

	// Literals
	NUMBER // number

	// Punctuation
	punctStart
	DOT  // .
	PLUS // +
	VAR  // N
	punctEnd

	// Keywords
	keywordStart
	STEP      // Step
	STOP      // Stop
	GO        // Go
	TO        // To
	SWAP      // Swap
	WITH      // With
	OUTPUT    // Output
	CHARACTER // Character
	keywordEnd
)

var names = [...]string{
	ILLEGAL:   "<illegal>",
	EOF:       "EOF",
	NUMBER:    "number",
	DOT:       ".",
	PLUS:      "+",
	VAR:       "N",
	STEP:      "Step",
	STOP:      "Stop",
	GO:        "Go",
	TO:        "To",
	SWAP:      "Swap",
	WITH:      "With",
	OUTPUT:    "Output",
	CHARACTER: "Character",
}

// String returns the canonical spelling of the token type.
func (t Token) String() string {
	if int(t) < len(names) && names[t] != "" {
		return names[t]
	}
	return "token(" + strconv.Itoa(int(t)) + ")"
}

// IsPunct returns true if the token is one of the single-character symbols.
func (t Token) IsPunct() bool {
	return t > punctStart && t < punctEnd
}

// IsKeyword returns true if the token is a keyword.
func (t Token) IsKeyword() bool {
	return t > keywordStart && t < keywordEnd
}

// keywords maps title-cased words to their token types.
// The variable symbol is included because "n" and "N" title-case to "N".
var keywords = map[string]Token{
	"N":         VAR,
	"Step":      STEP,
	"Stop":      STOP,
	"Go":        GO,
	"To":        TO,
	"Swap":      SWAP,
	"With":      WITH,
	"Output":    OUTPUT,
	"Character": CHARACTER,
}

// LookupKeyword returns the token type for a title-cased word, or ILLEGAL if
// the word is not part of the language.
func LookupKeyword(word string) Token {
	if tok, ok := keywords[word]; ok {
		return tok
	}
	return ILLEGAL
}
