// stisieve - prime sieve program generator
//
// Writes a SMETANA To Infinity! program that prints every prime up to MAX.
// Run the result with "sti".
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/kolkov/sti/internal/gen"
)

const usage = "usage: stisieve MAX"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run generates the sieve for args and returns the exit code.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(stderr, usage)
		return 1
	}
	switch args[0] {
	case "-h", "--help":
		fmt.Fprintln(stdout, usage)
		return 0
	}

	limit, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(stderr, "stisieve: invalid limit: %s\n", args[0])
		return 1
	}

	w := bufio.NewWriter(stdout)
	if err := gen.PrimeSieve(w, limit); err != nil {
		fmt.Fprintf(stderr, "stisieve: %v\n", err)
		return 1
	}
	if err := w.Flush(); err != nil {
		fmt.Fprintf(stderr, "stisieve: %v\n", err)
		return 1
	}
	return 0
}
