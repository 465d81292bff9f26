// sti - SMETANA To Infinity! interpreter
//
// Runs a program file (or standard input) and writes its output to standard
// output. Uses manual argument parsing so that numeric flags may be attached,
// like -s5 or -l1000.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/kolkov/sti"
)

// version is set at build time via -ldflags.
// For development builds, it will be "dev".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Exit codes.
const (
	exitOK        = 0
	exitFailure   = 1
	exitLexError  = 3
	exitParse     = 4
	exitStepLimit = 5
)

const (
	shortUsage = "usage: sti [-s step] [-a | -i | -u] [-t] [-l limit] [-d] [file | -]"
	longUsage  = `Execution:
  -s, --start step  step to start execution with (default 1)
  -l limit          stop with an error after limit instructions (default: no limit)

Output modes (mutually exclusive):
  -i, --integers    print each character value in decimal on its own line (default)
  -a, --ascii       print each value as a byte, values outside 0-127 are skipped
  -u, --unicode     print each value as a UTF-8 character, values outside
                    0-65534 are skipped

Debugging arguments:
  -t, --trace       print every executed step to stderr
  -d                print the parsed program to stderr and exit

Other:
  -h, --help        show this help message
  -version          show sti version and exit

With no file, or when file is -, the program is read from standard input.
`
)

//nolint:gocyclo,funlen // CLI argument parsing is inherently complex
func main() {
	start := 1
	maxSteps := 0
	var mode *sti.Mode // nil = default, set once by -i, -a or -u
	trace := false
	debug := false

	setMode := func(m sti.Mode) {
		if mode != nil && *mode != m {
			errorExitf("output modes %s and %s are mutually exclusive", *mode, m)
		}
		mode = &m
	}

	var i int
	for i = 1; i < len(os.Args); i++ {
		// Stop on explicit end of args or first arg not prefixed with "-"
		arg := os.Args[i]
		if arg == "--" {
			i++
			break
		}
		if arg == "-" || !strings.HasPrefix(arg, "-") {
			break
		}

		switch arg {
		case "-s", "--start":
			if i+1 >= len(os.Args) {
				errorExitf("flag needs an argument: %s", arg)
			}
			i++
			start = parseStart(os.Args[i])
		case "-l":
			if i+1 >= len(os.Args) {
				errorExitf("flag needs an argument: -l")
			}
			i++
			maxSteps = parseLimit(os.Args[i])
		case "-i", "--integers":
			setMode(sti.Integers)
		case "-a", "--ascii":
			setMode(sti.ASCII)
		case "-u", "--unicode":
			setMode(sti.Unicode)
		case "-t", "--trace":
			trace = true
		case "-d":
			debug = true
		case "-h", "--help":
			fmt.Printf("sti %s - SMETANA To Infinity! interpreter\n\n%s\n\n%s", version, shortUsage, longUsage)
			os.Exit(exitOK)
		case "-version", "--version":
			fmt.Printf("sti version %s\n", version)
			fmt.Printf("  commit:  %s\n", commit)
			fmt.Printf("  built:   %s\n", date)
			fmt.Printf("  library: %s\n", sti.Version)
			os.Exit(exitOK)
		default:
			// Handle flags with no space: -s5, -l1000
			switch {
			case strings.HasPrefix(arg, "--start="):
				start = parseStart(strings.TrimPrefix(arg, "--start="))
			case strings.HasPrefix(arg, "-s"):
				start = parseStart(arg[2:])
			case strings.HasPrefix(arg, "-l"):
				maxSteps = parseLimit(arg[2:])
			default:
				errorExitf("flag provided but not defined: %s", arg)
			}
		}
	}

	args := os.Args[i:]
	if len(args) > 1 {
		errorExitf(shortUsage)
	}

	// Read program from a file or stdin
	path := "-"
	if len(args) == 1 {
		path = args[0]
	}
	prog, err := compileFile(path, os.Stdin)
	if err != nil {
		compileErrorExit(err)
	}

	logger := sti.NewConsoleLogger(os.Stderr, term.IsTerminal(int(os.Stderr.Fd())))
	prog.ReportWarnings(logger)

	if debug {
		fmt.Fprint(os.Stderr, prog.String())
		os.Exit(exitOK)
	}

	// Build configuration with buffered output for performance
	stdout := bufio.NewWriter(os.Stdout)

	config := &sti.Config{
		Start:    start,
		Output:   stdout,
		Logger:   &logger,
		MaxSteps: maxSteps,
	}
	if mode != nil {
		config.Mode = *mode
	}
	if trace {
		// Keep trace lines and program output in order on a terminal.
		config.Trace = &flushWriter{flush: stdout, w: os.Stderr}
	}

	_, err = prog.Run(config)
	if flushErr := stdout.Flush(); flushErr != nil && err == nil {
		err = flushErr
	}
	if err != nil {
		if step, ok := sti.IsStepLimit(err); ok {
			fmt.Fprintf(os.Stderr, "sti: step limit of %d reached at step %d\n", maxSteps, step)
			os.Exit(exitStepLimit)
		}
		errorExit(err)
	}
}

// compileFile parses the program at path, or reads it from stdin when path
// is "-". The file is closed before compileFile returns.
func compileFile(path string, stdin io.Reader) (*sti.Program, error) {
	if path == "-" {
		return sti.CompileReader(stdin, "<stdin>")
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open program file %s: %w", path, err)
	}
	defer file.Close()
	return sti.CompileReader(file, path)
}

// flushWriter flushes program output before every trace write.
type flushWriter struct {
	flush *bufio.Writer
	w     io.Writer
}

func (f *flushWriter) Write(p []byte) (int, error) {
	if err := f.flush.Flush(); err != nil {
		return 0, err
	}
	return f.w.Write(p)
}

func parseStart(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		errorExitf("invalid start step: %s", s)
	}
	return n
}

func parseLimit(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		errorExitf("invalid step limit: %s", s)
	}
	return n
}

// compileErrorExit prints a lexical or parse error with its source context
// and exits with the matching code.
func compileErrorExit(err error) {
	var le *sti.LexError
	if errors.As(err, &le) {
		fmt.Fprintf(os.Stderr, "sti: %v\n", le)
		fmt.Fprintf(os.Stderr, "    %s\n", le.Text)
		if le.Column > 0 {
			fmt.Fprintf(os.Stderr, "    %s^\n", strings.Repeat(" ", le.Column-1))
		}
		os.Exit(exitLexError)
	}

	var pe *sti.ParseError
	if errors.As(err, &pe) {
		fmt.Fprintf(os.Stderr, "sti: %v\n", pe)
		if pe.Near != "" {
			fmt.Fprintf(os.Stderr, "    near: %s\n", pe.Near)
		}
		os.Exit(exitParse)
	}

	errorExit(err)
}

// errorExitf prints formatted error message and exits with code 1
func errorExitf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "sti: "+format+"\n", args...)
	os.Exit(exitFailure)
}

// errorExit prints error and exits with code 1
func errorExit(err error) {
	fmt.Fprintf(os.Stderr, "sti: %v\n", err)
	os.Exit(exitFailure)
}
