// Package runtime provides the output side of program execution.
package runtime

import (
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"

	"github.com/rs/zerolog"
)

// Mode selects how Output Character values are rendered.
type Mode uint8

const (
	// Integers writes each value in decimal followed by a newline.
	Integers Mode = iota
	// ASCII writes each value as a single byte in [0, 127].
	ASCII
	// Unicode writes each value as the UTF-8 encoding of a code point in
	// [0, 65534].
	Unicode
)

func (m Mode) String() string {
	switch m {
	case Integers:
		return "integers"
	case ASCII:
		return "ascii"
	case Unicode:
		return "unicode"
	default:
		return fmt.Sprintf("Mode(%d)", m)
	}
}

// ParseMode returns the Mode named by s ("integers", "ascii", "unicode").
func ParseMode(s string) (Mode, error) {
	switch s {
	case "integers", "integer", "int":
		return Integers, nil
	case "ascii", "byte":
		return ASCII, nil
	case "unicode", "wide":
		return Unicode, nil
	}
	return Integers, fmt.Errorf("unknown output mode %q", s)
}

// Limit returns the largest value the mode can render, or -1 when any
// integer is accepted.
func (m Mode) Limit() int {
	switch m {
	case ASCII:
		return 127
	case Unicode:
		return 65534
	default:
		return -1
	}
}

// Output renders emitted values onto a writer.
// Values out of range for the mode are logged and dropped.
type Output struct {
	w       io.Writer
	mode    Mode
	log     zerolog.Logger
	buf     []byte
	dropped int
}

// NewOutput creates an Output writing to w.
func NewOutput(w io.Writer, mode Mode, log zerolog.Logger) *Output {
	return &Output{
		w:    w,
		mode: mode,
		log:  log,
		buf:  make([]byte, 0, 24),
	}
}

// Emit renders one value. Only write failures are returned.
func (o *Output) Emit(v int) error {
	buf := o.buf[:0]
	switch o.mode {
	case ASCII:
		if v < 0 || v > o.mode.Limit() {
			o.drop(v)
			return nil
		}
		buf = append(buf, byte(v))
	case Unicode:
		if v < 0 || v > o.mode.Limit() {
			o.drop(v)
			return nil
		}
		buf = utf8.AppendRune(buf, rune(v))
	default:
		buf = strconv.AppendInt(buf, int64(v), 10)
		buf = append(buf, '\n')
	}
	o.buf = buf
	_, err := o.w.Write(buf)
	return err
}

func (o *Output) drop(v int) {
	o.dropped++
	o.log.Warn().
		Int("value", v).
		Str("mode", o.mode.String()).
		Msgf("character value %d out of range", v)
}

// Dropped returns the number of values that were out of range.
func (o *Output) Dropped() int {
	return o.dropped
}

// Mode returns the output mode.
func (o *Output) Mode() Mode {
	return o.mode
}
