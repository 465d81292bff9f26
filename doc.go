// Package sti provides an interpreter for SMETANA To Infinity!
//
// A program is a list of steps, each holding one instruction:
//
//	Step 1. Output Character 72.
//	Step 2. Go To Step 5.
//	Step n + 4. Swap Step 1 With Step 2n.
//	Step 10. Stop.
//
// Step numbers are either integers or linear expressions in n (n, 5n,
// n + 3, 5n + 3) that stand for every value with n >= 1. Execution starts
// at step 1, runs one step after another, and ends at Stop or at a step no
// definition covers. Swap permanently exchanges the instructions of two
// steps while the program runs.
//
// # Quick Start
//
// For simple one-off execution:
//
//	output, err := sti.Run("Step 1. Output Character 65. Step 2. Stop.", nil)
//	// output: "65\n"
//
// With configuration:
//
//	output, err := sti.Run(program, &sti.Config{
//	    Mode:     sti.ASCII,
//	    MaxSteps: 1_000_000,
//	})
//
// # Compiled Programs
//
// A compiled [Program] can be run any number of times. Each run works on
// its own copy of the steps, so Swap in one run does not affect the next:
//
//	prog, err := sti.Compile(source)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := prog.Execute(&sti.Config{Start: 3})
//	fmt.Println(res.Final)
//
// # Error Handling
//
// Errors are returned as specific types:
//   - [LexError]: an illegal token or a misplaced comment
//   - [ParseError]: a malformed step
//   - [StepLimitError]: Config.MaxSteps reached before Stop
//   - [RuntimeError]: output could not be written
//
// Parse warnings (a numbered step removed by a later expression step) and
// out-of-range output values are not errors; they are logged through
// Config.Logger or Config.Stderr.
//
// # Thread Safety
//
// Compiled [Program] objects are safe for concurrent use.
// Each call to [Program.Run] creates an independent execution context.
package sti
