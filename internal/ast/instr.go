package ast

import "fmt"

// Op identifies an instruction kind.
type Op uint8

const (
	Stop   Op = iota // Stop: halt execution
	GoTo             // Go To Step A
	Swap             // Swap Step A With Step B
	Output           // Output Character A
)

func (op Op) String() string {
	switch op {
	case Stop:
		return "Stop"
	case GoTo:
		return "GoTo"
	case Swap:
		return "Swap"
	case Output:
		return "Output"
	default:
		return fmt.Sprintf("Op(%d)", op)
	}
}

// Instr is a single instruction. Operands unused by Op are zero.
//
//	Stop    -
//	GoTo    A = target step
//	Swap    A, B = the two exchanged steps
//	Output  A = value to emit
type Instr struct {
	Op Op
	A  Expr
	B  Expr
}

// Halt is the instruction every undefined step behaves as.
var Halt = Instr{Op: Stop}

// Jump returns a Go To instruction.
func Jump(target Expr) Instr { return Instr{Op: GoTo, A: target} }

// Exchange returns a Swap instruction.
func Exchange(a, b Expr) Instr { return Instr{Op: Swap, A: a, B: b} }

// Emit returns an Output instruction.
func Emit(v Expr) Instr { return Instr{Op: Output, A: v} }

// IsConcrete reports whether no operand refers to n.
func (in Instr) IsConcrete() bool {
	return !in.A.IsLinear() && !in.B.IsLinear()
}

// String renders the instruction in source form, without the final '.'.
func (in Instr) String() string {
	switch in.Op {
	case Stop:
		return "Stop"
	case GoTo:
		return "Go To Step " + in.A.String()
	case Swap:
		return "Swap Step " + in.A.String() + " With Step " + in.B.String()
	case Output:
		return "Output Character " + in.A.String()
	default:
		return in.Op.String()
	}
}
