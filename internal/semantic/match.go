// Package semantic decides which step numbers a linear expression covers
// and evaluates expression steps for a concrete step number.
package semantic

import (
	"slices"

	"github.com/kolkov/sti/internal/ast"
)

// Solve returns the k >= 1 with pattern.Coeff*k + pattern.Offset == step.
// ok is false if no such k exists or pattern is not linear.
func Solve(step int, pattern ast.Expr) (k int, ok bool) {
	if !pattern.IsLinear() {
		return 0, false
	}
	an := step - pattern.Offset
	if an%pattern.Coeff != 0 {
		return 0, false
	}
	k = an / pattern.Coeff
	return k, k > 0
}

// Matches reports whether step is covered by pattern.
func Matches(step int, pattern ast.Expr) bool {
	_, ok := Solve(step, pattern)
	return ok
}

// Evaluate substitutes the k recovered from step into every linear operand
// of in. The caller must have checked that step matches pattern; operands
// of a concrete instruction pass through unchanged.
func Evaluate(step int, pattern ast.Expr, in ast.Instr) ast.Instr {
	k := (step - pattern.Offset) / pattern.Coeff
	if in.A.IsLinear() {
		in.A = ast.Num(in.A.At(k))
	}
	if in.B.IsLinear() {
		in.B = ast.Num(in.B.At(k))
	}
	return in
}

// Shadowed returns, in ascending order, the numbered steps that pattern
// covers.
func Shadowed(numbered map[int]ast.Instr, pattern ast.Expr) []int {
	var steps []int
	for step := range numbered {
		if Matches(step, pattern) {
			steps = append(steps, step)
		}
	}
	slices.Sort(steps)
	return steps
}
