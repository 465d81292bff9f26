package ast_test

import (
	"strings"
	"testing"

	"github.com/kolkov/sti/internal/ast"
)

func TestExprString(t *testing.T) {
	tests := []struct {
		expr ast.Expr
		want string
	}{
		{ast.Num(7), "7"},
		{ast.Num(0), "0"},
		{ast.Linear(1, 0), "n"},
		{ast.Linear(5, 0), "5n"},
		{ast.Linear(1, 3), "n + 3"},
		{ast.Linear(5, 3), "5n + 3"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.expr.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExprAt(t *testing.T) {
	if got := ast.Linear(5, 3).At(4); got != 23 {
		t.Errorf("5n + 3 at 4 = %d, want 23", got)
	}
	if got := ast.Num(9).At(4); got != 9 {
		t.Errorf("9 at 4 = %d, want 9", got)
	}
	if ast.Num(9).IsLinear() || !ast.Linear(1, 0).IsLinear() {
		t.Error("IsLinear mismatch")
	}
}

func TestInstrString(t *testing.T) {
	tests := []struct {
		in   ast.Instr
		want string
	}{
		{ast.Halt, "Stop"},
		{ast.Jump(ast.Num(4)), "Go To Step 4"},
		{ast.Jump(ast.Linear(2, 1)), "Go To Step 2n + 1"},
		{ast.Exchange(ast.Num(2), ast.Linear(1, 7)), "Swap Step 2 With Step n + 7"},
		{ast.Emit(ast.Num(65)), "Output Character 65"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.in.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInstrIsConcrete(t *testing.T) {
	if !ast.Exchange(ast.Num(1), ast.Num(2)).IsConcrete() {
		t.Error("numeric swap should be concrete")
	}
	if ast.Exchange(ast.Num(1), ast.Linear(1, 0)).IsConcrete() {
		t.Error("swap with n operand should not be concrete")
	}
	if !ast.Halt.IsConcrete() {
		t.Error("Stop should be concrete")
	}
}

func TestProgramClone(t *testing.T) {
	p := ast.NewProgram()
	p.Numbered[1] = ast.Halt
	p.Exprs = []ast.ExprStep{{Pattern: ast.Linear(1, 0), Instr: ast.Halt}}

	c := p.Clone()
	c.Numbered[2] = ast.Emit(ast.Num(1))
	delete(c.Numbered, 1)

	if _, ok := p.Numbered[1]; !ok {
		t.Error("clone mutation removed step 1 from the source program")
	}
	if _, ok := p.Numbered[2]; ok {
		t.Error("clone mutation added step 2 to the source program")
	}
	if len(c.Exprs) != 1 {
		t.Errorf("expected 1 expression step, got %d", len(c.Exprs))
	}
}

func TestProgramString(t *testing.T) {
	p := ast.NewProgram()
	p.Numbered[10] = ast.Halt
	p.Numbered[2] = ast.Emit(ast.Num(65))
	// Stored most recent first: "Step 2n" was defined after "Step n".
	p.Exprs = []ast.ExprStep{
		{Pattern: ast.Linear(2, 0), Instr: ast.Jump(ast.Linear(1, 1))},
		{Pattern: ast.Linear(1, 0), Instr: ast.Exchange(ast.Num(1), ast.Linear(3, 0))},
	}

	want := strings.Join([]string{
		"Step n. Swap Step 1 With Step 3n.",
		"Step 2n. Go To Step n + 1.",
		"Step 2. Output Character 65.",
		"Step 10. Stop.",
		"",
	}, "\n")
	if got := p.String(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}
