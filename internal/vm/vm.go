// Package vm executes parsed SMETANA To Infinity! programs.
package vm

import (
	"fmt"
	"io"

	"github.com/kolkov/sti/internal/ast"
	"github.com/kolkov/sti/internal/semantic"
)

// Emitter receives the value of every executed Output instruction.
type Emitter interface {
	Emit(v int) error
}

type discard struct{}

func (discard) Emit(int) error { return nil }

// StepLimitError is returned when a run executes VMConfig.MaxSteps
// instructions without halting.
type StepLimitError struct {
	Limit int // Configured limit
	Step  int // Step that would have executed next
}

func (e *StepLimitError) Error() string {
	return fmt.Sprintf("step limit of %d reached before step %d", e.Limit, e.Step)
}

// VMConfig contains VM configuration options.
type VMConfig struct {
	// Trace receives one line per executed instruction. Nil disables tracing.
	Trace io.Writer

	// MaxSteps bounds the number of executed instructions. Zero means no
	// limit; programs may then run forever.
	MaxSteps int
}

// VM is the execution engine. It owns the program's numbered steps for the
// duration of a run and rewrites them on Swap.
type VM struct {
	numbered map[int]ast.Instr
	exprs    []ast.ExprStep
	out      Emitter

	trace    io.Writer
	maxSteps int

	pc     int  // Current step number
	halted bool // Set by Stop
	steps  int  // Executed instructions
}

// New creates a VM for prog. The VM mutates prog.Numbered; clone the
// program first to keep it intact.
func New(prog *ast.Program, out Emitter) *VM {
	return NewWithConfig(prog, out, VMConfig{})
}

// NewWithConfig creates a VM with the specified configuration.
func NewWithConfig(prog *ast.Program, out Emitter, config VMConfig) *VM {
	if out == nil {
		out = discard{}
	}
	numbered := prog.Numbered
	if numbered == nil {
		numbered = make(map[int]ast.Instr)
		prog.Numbered = numbered
	}
	return &VM{
		numbered: numbered,
		exprs:    prog.Exprs,
		out:      out,
		trace:    config.Trace,
		maxSteps: config.MaxSteps,
		pc:       1,
	}
}

// Resolve finds the instruction for step and returns it with every operand
// evaluated. Numbered steps take precedence over expression steps, and the
// most recently defined matching expression step wins. An undefined step
// resolves to Stop.
//
// The returned key is the step number for numbered and undefined steps, or
// the matching pattern.
func (v *VM) Resolve(step int) (key ast.Expr, in ast.Instr) {
	if in, ok := v.numbered[step]; ok {
		return ast.Num(step), in
	}
	for _, es := range v.exprs {
		if semantic.Matches(step, es.Pattern) {
			return es.Pattern, semantic.Evaluate(step, es.Pattern, es.Instr)
		}
	}
	return ast.Num(step), ast.Halt
}

// Run executes from step start until a Stop is reached and returns the
// step number it stopped at.
func (v *VM) Run(start int) (int, error) {
	v.pc = start
	v.halted = false
	for !v.halted {
		if err := v.Step(); err != nil {
			return v.pc, err
		}
	}
	return v.pc, nil
}

// Step executes a single instruction.
func (v *VM) Step() error {
	if v.halted {
		return nil
	}
	if v.maxSteps > 0 && v.steps >= v.maxSteps {
		return &StepLimitError{Limit: v.maxSteps, Step: v.pc}
	}

	_, in := v.Resolve(v.pc)
	if v.trace != nil {
		fmt.Fprintf(v.trace, "Step %d %s\n", v.pc, in)
	}
	v.steps++

	switch in.Op {
	case ast.Stop:
		v.halted = true

	case ast.GoTo:
		v.pc = in.A.Value()

	case ast.Swap:
		v.swap(in.A.Value(), in.B.Value())
		v.pc++

	case ast.Output:
		if err := v.out.Emit(in.A.Value()); err != nil {
			return err
		}
		v.pc++

	default:
		return fmt.Errorf("step %d: unknown instruction %s", v.pc, in.Op)
	}
	return nil
}

// swap exchanges the instructions at two steps. Both are resolved and
// evaluated first, then written as numbered steps, so expression steps
// become concrete at those numbers.
func (v *VM) swap(a, b int) {
	_, first := v.Resolve(a)
	_, second := v.Resolve(b)
	v.numbered[a] = second
	v.numbered[b] = first
}

// PC returns the current step number.
func (v *VM) PC() int { return v.pc }

// Halted reports whether a Stop has been executed.
func (v *VM) Halted() bool { return v.halted }

// Steps returns the number of executed instructions.
func (v *VM) Steps() int { return v.steps }

// Numbered returns the live numbered-step map.
func (v *VM) Numbered() map[int]ast.Instr { return v.numbered }
