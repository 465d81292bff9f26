// Package gen generates SMETANA To Infinity! programs.
package gen

import (
	"fmt"
	"io"
)

// MinSieve is the smallest limit PrimeSieve accepts.
const MinSieve = 2

// PrimeSieve writes a program that outputs every prime up to limit, one
// Output per prime, then stops at step limit+1.
//
// Steps 2..limit stand for the candidates. Step n jumps to the block at
// limit²·n, which outputs n and swaps the steps of its multiples with no-op
// steps before jumping on to n+1. Blocks are limit² steps apart so that no
// two of them can be reached with the same n.
func PrimeSieve(w io.Writer, limit int) error {
	if limit < MinSieve {
		return fmt.Errorf("sieve limit must be at least %d, got %d", MinSieve, limit)
	}
	sq := limit * limit
	if sq/limit != limit {
		return fmt.Errorf("sieve limit %d too large", limit)
	}

	p := &printer{w: w}
	p.printf("# Prime number sieve\n")
	p.printf("# Finds primes up to %d.\n\n", limit)

	p.printf("# Steps 2-%d represent the positive integers to test.\n", limit)
	p.printf("# A step is changed to a no-op once it is known to be composite.\n")
	p.printf("Step n. Go to step %dn.\n\n", sq)

	p.printf("# Start search with step 2.\n")
	p.printf("Step 1. Swap step 1 with step 1.\n\n")

	p.printf("# Steps %d-%d are no-ops to be swapped with steps 2-%d.\n", limit+2, sq-1, limit)
	p.printf("Step n + %d. Swap step 1 with step 1.\n\n", limit)

	p.printf("# All steps %d+ not explicitly defined below are also no-ops.\n", sq)
	p.printf("Step n + %d. Swap step 1 with step 1.\n\n", sq)

	p.printf("# Output n when it is found to be prime.\n")
	p.printf("Step %dn. Output character n.\n\n", sq)

	p.printf("# Multiples of n are composite, so change them to no-ops, using a\n")
	p.printf("# different set of no-op steps for each base n.\n")
	for i := 2; i <= limit/2; i++ {
		p.printf("Step %dn. Swap step %dn with step %dn + %d.\n", sq+i, i, limit+i, limit)
	}
	p.printf("\n")

	p.printf("# Find the next non-composite number.\n")
	p.printf("Step %dn + %d. Go to step n + 1.\n\n", sq, limit+1)

	p.printf("# Stop when we pass %d.\n", limit)
	p.printf("Step %d. Stop.\n", limit+1)

	return p.err
}

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}
