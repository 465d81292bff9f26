package token

import "testing"

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		word string
		want Token
	}{
		{"Step", STEP},
		{"Stop", STOP},
		{"Go", GO},
		{"To", TO},
		{"Swap", SWAP},
		{"With", WITH},
		{"Output", OUTPUT},
		{"Character", CHARACTER},
		{"N", VAR},
		{"step", ILLEGAL},
		{"Goto", ILLEGAL},
		{"", ILLEGAL},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if got := LookupKeyword(tt.word); got != tt.want {
				t.Errorf("LookupKeyword(%q) = %v, want %v", tt.word, got, tt.want)
			}
		})
	}
}

func TestTokenClasses(t *testing.T) {
	for _, tok := range []Token{DOT, PLUS, VAR} {
		if !tok.IsPunct() || tok.IsKeyword() {
			t.Errorf("%v: expected punctuation", tok)
		}
	}
	for _, tok := range []Token{STEP, STOP, GO, TO, SWAP, WITH, OUTPUT, CHARACTER} {
		if !tok.IsKeyword() || tok.IsPunct() {
			t.Errorf("%v: expected keyword", tok)
		}
	}
	if NUMBER.IsKeyword() || NUMBER.IsPunct() {
		t.Error("NUMBER should be neither keyword nor punctuation")
	}
}

func TestTokenString(t *testing.T) {
	if got := CHARACTER.String(); got != "Character" {
		t.Errorf("CHARACTER.String() = %q", got)
	}
	if got := Token(200).String(); got != "token(200)" {
		t.Errorf("Token(200).String() = %q", got)
	}
}

func TestPositionString(t *testing.T) {
	p := Position{Line: 3, Column: 7}
	if got := p.String(); got != "3:7" {
		t.Errorf("got %q", got)
	}
	p.Filename = "prog.sti"
	if got := p.String(); got != "prog.sti:3:7" {
		t.Errorf("got %q", got)
	}
	if NoPos.IsValid() {
		t.Error("NoPos should not be valid")
	}
}
