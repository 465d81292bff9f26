package sti_test

import (
	"fmt"
	"os"

	"github.com/kolkov/sti"
)

func ExampleRun() {
	output, err := sti.Run(`
		Step 1. Output Character 72.
		Step 2. Output Character 105.
		Step 3. Stop.
	`, &sti.Config{Mode: sti.ASCII})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(output)
	// Output: Hi
}

func ExampleProgram_Execute() {
	prog := sti.MustCompile(`
		Step n. Output Character n.
		Step 4. Stop.
	`)
	res, err := prog.Execute(&sti.Config{Output: os.Stdout, Start: 2})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("stopped at", res.Final)
	// Output:
	// 2
	// 3
	// stopped at 4
}
