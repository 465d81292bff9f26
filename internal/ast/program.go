package ast

import (
	"maps"
	"slices"
	"strings"
)

// ExprStep is a step addressed by a linear expression.
type ExprStep struct {
	Pattern Expr
	Instr   Instr
}

// Program is a parsed program.
//
// Numbered is mutated by Swap during execution; Exprs never changes after
// parsing. Exprs is stored most recently defined first so a linear scan
// finds the definition that takes precedence.
type Program struct {
	Numbered map[int]Instr
	Exprs    []ExprStep
}

// NewProgram returns an empty program.
func NewProgram() *Program {
	return &Program{Numbered: make(map[int]Instr)}
}

// Clone returns a copy whose Numbered map can be mutated independently.
// Exprs is shared since nothing writes to it.
func (p *Program) Clone() *Program {
	return &Program{
		Numbered: maps.Clone(p.Numbered),
		Exprs:    p.Exprs,
	}
}

// Steps returns the numbered step keys in ascending order.
func (p *Program) Steps() []int {
	return slices.Sorted(maps.Keys(p.Numbered))
}

// String renders the program as source that parses back to an equivalent
// program. Expression steps come first, in definition order, so that none
// of the numbered steps that follow is removed by shadowing.
func (p *Program) String() string {
	var sb strings.Builder
	_ = NewPrinter(&sb).Print(p)
	return sb.String()
}
