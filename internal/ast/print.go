package ast

import (
	"fmt"
	"io"
)

// Printer writes programs in source form.
type Printer struct {
	w   io.Writer
	err error
}

// NewPrinter creates a new Printer that writes to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Print writes every step of prog, one per line.
func (p *Printer) Print(prog *Program) error {
	for i := len(prog.Exprs) - 1; i >= 0; i-- {
		es := prog.Exprs[i]
		p.printStep(es.Pattern, es.Instr)
	}
	for _, n := range prog.Steps() {
		p.printStep(Num(n), prog.Numbered[n])
	}
	return p.err
}

// PrintStep writes a single step definition.
func (p *Printer) PrintStep(step Expr, in Instr) error {
	p.printStep(step, in)
	return p.err
}

func (p *Printer) printStep(step Expr, in Instr) {
	p.printf("Step %s. %s.\n", step, in)
}

func (p *Printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}
