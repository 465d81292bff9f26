package runtime

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestOutputModes(t *testing.T) {
	tests := []struct {
		name   string
		mode   Mode
		values []int
		want   string
	}{
		{"integers", Integers, []int{1, 65, 1000000}, "1\n65\n1000000\n"},
		{"ascii", ASCII, []int{72, 105, 10}, "Hi\n"},
		{"ascii bounds", ASCII, []int{0, 127}, "\x00\x7f"},
		{"unicode", Unicode, []int{0x48, 0xe9, 0x263a}, "Hé☺"},
		{"unicode upper bound", Unicode, []int{65534}, "\uFFFE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			o := NewOutput(&out, tt.mode, zerolog.Nop())
			for _, v := range tt.values {
				if err := o.Emit(v); err != nil {
					t.Fatalf("emit %d: %v", v, err)
				}
			}
			if got := out.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
			if o.Dropped() != 0 {
				t.Errorf("expected no dropped values, got %d", o.Dropped())
			}
		})
	}
}

func TestOutputOutOfRange(t *testing.T) {
	tests := []struct {
		mode  Mode
		value int
	}{
		{ASCII, 128},
		{ASCII, 200},
		{ASCII, -1},
		{Unicode, 65535},
		{Unicode, 1 << 20},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			var out, logs bytes.Buffer
			o := NewOutput(&out, tt.mode, zerolog.New(&logs))
			if err := o.Emit(tt.value); err != nil {
				t.Fatalf("out of range value should not fail: %v", err)
			}
			if out.Len() != 0 {
				t.Errorf("expected nothing written, got %q", out.String())
			}
			if o.Dropped() != 1 {
				t.Errorf("expected 1 dropped value, got %d", o.Dropped())
			}
			log := logs.String()
			if !strings.Contains(log, `"level":"warn"`) || !strings.Contains(log, "out of range") {
				t.Errorf("expected a warning, got %q", log)
			}
			if !strings.Contains(log, `"mode":"`+tt.mode.String()+`"`) {
				t.Errorf("expected mode field, got %q", log)
			}
		})
	}
}

func TestOutputIntegersAcceptsAnything(t *testing.T) {
	var out bytes.Buffer
	o := NewOutput(&out, Integers, zerolog.Nop())
	_ = o.Emit(-5)
	_ = o.Emit(200)
	if got := out.String(); got != "-5\n200\n" {
		t.Errorf("got %q", got)
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestOutputWriteError(t *testing.T) {
	o := NewOutput(failWriter{}, Integers, zerolog.Nop())
	if err := o.Emit(1); err == nil {
		t.Fatal("expected write error")
	}
}

func TestParseMode(t *testing.T) {
	for _, m := range []Mode{Integers, ASCII, Unicode} {
		got, err := ParseMode(m.String())
		if err != nil || got != m {
			t.Errorf("ParseMode(%q) = %v, %v", m.String(), got, err)
		}
	}
	if _, err := ParseMode("ebcdic"); err == nil {
		t.Error("expected error for unknown mode")
	}
}
