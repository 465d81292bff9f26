package semantic

import (
	"slices"
	"testing"

	"github.com/kolkov/sti/internal/ast"
)

func TestMatches(t *testing.T) {
	tests := []struct {
		step    int
		pattern ast.Expr
		want    bool
	}{
		{1, ast.Linear(1, 0), true},
		{0, ast.Linear(1, 0), false},
		{-5, ast.Linear(1, 0), false},
		{10, ast.Linear(5, 0), true},
		{5, ast.Linear(5, 0), true},
		{12, ast.Linear(5, 0), false},
		{6, ast.Linear(1, 5), true},
		{5, ast.Linear(1, 5), false},
		{13, ast.Linear(5, 3), true},
		{3, ast.Linear(5, 3), false},
		{-2, ast.Linear(5, 3), false},
		{7, ast.Num(7), false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern.String(), func(t *testing.T) {
			if got := Matches(tt.step, tt.pattern); got != tt.want {
				t.Errorf("Matches(%d, %s) = %v, want %v", tt.step, tt.pattern, got, tt.want)
			}
		})
	}
}

// TestMatchesExhaustive checks that exactly the numbers a*k + b with k >= 1
// are matched, over a small grid of expressions.
func TestMatchesExhaustive(t *testing.T) {
	for a := 1; a <= 7; a++ {
		for b := 0; b <= 9; b++ {
			pattern := ast.Linear(a, b)
			covered := make(map[int]bool)
			for k := 1; a*k+b <= 100; k++ {
				covered[a*k+b] = true
			}
			for s := -20; s <= 100; s++ {
				if got := Matches(s, pattern); got != covered[s] {
					t.Fatalf("Matches(%d, %s) = %v, want %v", s, pattern, got, covered[s])
				}
			}
		}
	}
}

func TestSolve(t *testing.T) {
	for a := 1; a <= 5; a++ {
		for b := 0; b <= 5; b++ {
			for k := 1; k <= 20; k++ {
				got, ok := Solve(a*k+b, ast.Linear(a, b))
				if !ok || got != k {
					t.Fatalf("Solve(%d, %dn + %d) = %d, %v; want %d", a*k+b, a, b, got, ok, k)
				}
			}
		}
	}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name    string
		step    int
		pattern ast.Expr
		in      ast.Instr
		want    ast.Instr
	}{
		{
			name:    "stop passes through",
			step:    9,
			pattern: ast.Linear(1, 0),
			in:      ast.Halt,
			want:    ast.Halt,
		},
		{
			name:    "concrete operand unchanged",
			step:    9,
			pattern: ast.Linear(1, 0),
			in:      ast.Emit(ast.Num(65)),
			want:    ast.Emit(ast.Num(65)),
		},
		{
			name:    "output n",
			step:    300,
			pattern: ast.Linear(100, 0),
			in:      ast.Emit(ast.Linear(1, 0)),
			want:    ast.Emit(ast.Num(3)),
		},
		{
			name:    "go to n + 1",
			step:    211,
			pattern: ast.Linear(100, 11),
			in:      ast.Jump(ast.Linear(1, 1)),
			want:    ast.Jump(ast.Num(3)),
		},
		{
			name:    "swap both linear",
			step:    13,
			pattern: ast.Linear(5, 3),
			in:      ast.Exchange(ast.Linear(2, 0), ast.Linear(3, 4)),
			want:    ast.Exchange(ast.Num(4), ast.Num(10)),
		},
		{
			name:    "swap mixed",
			step:    8,
			pattern: ast.Linear(2, 0),
			in:      ast.Exchange(ast.Num(1), ast.Linear(1, 10)),
			want:    ast.Exchange(ast.Num(1), ast.Num(14)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(tt.step, tt.pattern, tt.in)
			if got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
			if !got.IsConcrete() {
				t.Errorf("result %s is not concrete", got)
			}
		})
	}
}

func TestShadowed(t *testing.T) {
	numbered := map[int]ast.Instr{
		1:  ast.Halt,
		5:  ast.Halt,
		6:  ast.Halt,
		11: ast.Halt,
		20: ast.Halt,
	}

	tests := []struct {
		pattern ast.Expr
		want    []int
	}{
		{ast.Linear(1, 5), []int{6, 11, 20}},
		{ast.Linear(1, 0), []int{1, 5, 6, 11, 20}},
		{ast.Linear(5, 0), []int{5, 20}},
		{ast.Linear(5, 1), []int{6, 11}},
		{ast.Linear(100, 0), nil},
	}

	for _, tt := range tests {
		t.Run(tt.pattern.String(), func(t *testing.T) {
			if got := Shadowed(numbered, tt.pattern); !slices.Equal(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
