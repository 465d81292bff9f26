// Package ast defines the program representation for SMETANA To Infinity!
//
// A program is a set of steps, each holding exactly one instruction:
//
//	Program
//	├── Numbered   map[int]Instr   - steps addressed by a concrete number
//	└── Exprs      []ExprStep      - steps addressed by a linear expression,
//	                                 most recently defined first
//
// Step numbers and instruction operands are both Expr values. A linear
// expression an + b stands for every number a*k + b with k >= 1.
package ast

import (
	"fmt"
	"strconv"
)

// Expr is either a concrete integer or a linear expression a*n + b.
// Coeff is 0 for a concrete integer, whose value is then held in Offset.
// Linear expressions always have Coeff >= 1 and Offset >= 0.
type Expr struct {
	Coeff  int
	Offset int
}

// Num returns a concrete integer expression.
func Num(v int) Expr { return Expr{Offset: v} }

// Linear returns the expression a*n + b.
func Linear(a, b int) Expr { return Expr{Coeff: a, Offset: b} }

// IsLinear reports whether e contains the variable n.
func (e Expr) IsLinear() bool { return e.Coeff > 0 }

// Value returns the integer of a concrete expression.
func (e Expr) Value() int { return e.Offset }

// At evaluates the expression for n = k. Concrete expressions ignore k.
func (e Expr) At(k int) int {
	if !e.IsLinear() {
		return e.Offset
	}
	return e.Coeff*k + e.Offset
}

// String renders the expression in source form: "7", "n", "5n", "n + 3",
// "5n + 3".
func (e Expr) String() string {
	switch {
	case !e.IsLinear():
		return strconv.Itoa(e.Offset)
	case e.Coeff == 1 && e.Offset == 0:
		return "n"
	case e.Offset == 0:
		return fmt.Sprintf("%dn", e.Coeff)
	case e.Coeff == 1:
		return fmt.Sprintf("n + %d", e.Offset)
	default:
		return fmt.Sprintf("%dn + %d", e.Coeff, e.Offset)
	}
}
