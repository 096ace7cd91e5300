package term

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestDecodeKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  Key
	}{
		{"enter cr", "\r", KeyEnter},
		{"enter lf", "\n", KeyEnter},
		{"tab", "\t", KeyTab},
		{"backspace del", "\x7f", KeyBackspace},
		{"backspace bs", "\x08", KeyBackspace},
		{"lone escape", "\x1b", KeyEscape},
		{"arrow up", "\x1b[A", KeyArrowUp},
		{"arrow down", "\x1b[B", KeyArrowDown},
		{"arrow right", "\x1b[C", KeyArrowRight},
		{"arrow left", "\x1b[D", KeyArrowLeft},
		{"ss3 arrow up", "\x1bOA", KeyArrowUp},
		{"home", "\x1b[H", KeyHome},
		{"end", "\x1b[F", KeyEnd},
		{"home tilde", "\x1b[1~", KeyHome},
		{"end tilde", "\x1b[4~", KeyEnd},
		{"delete", "\x1b[3~", KeyDelete},
		{"page up", "\x1b[5~", KeyPageUp},
		{"page down", "\x1b[6~", KeyPageDown},
		{"modified arrow", "\x1b[1;5A", KeyArrowUp},
		{"unknown csi", "\x1b[99~", KeyUnknown},
		{"alt letter", "\x1bx", KeyUnknown},
		{"ascii rune", "y", KeyRune},
		{"multibyte rune", "é", KeyRune},
		{"control byte", "\x01", KeyUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := bufio.NewReader(strings.NewReader(tt.input))
			got, err := decodeKey(r)
			if err != nil {
				t.Fatalf("decodeKey(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("decodeKey(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDecodeKey_Sequence(t *testing.T) {
	t.Parallel()

	r := bufio.NewReader(strings.NewReader("\x1b[Bé\x1b[A\r"))
	want := []Key{KeyArrowDown, KeyRune, KeyArrowUp, KeyEnter}
	for i, w := range want {
		got, err := decodeKey(r)
		if err != nil {
			t.Fatalf("key %d: error = %v", i, err)
		}
		if got != w {
			t.Errorf("key %d = %v, want %v", i, got, w)
		}
	}

	if _, err := decodeKey(r); !errors.Is(err, io.EOF) {
		t.Errorf("decodeKey at end = %v, want io.EOF", err)
	}
}

func TestDecodeKey_CtrlC(t *testing.T) {
	t.Parallel()

	r := bufio.NewReader(strings.NewReader("\x03"))
	if _, err := decodeKey(r); !errors.Is(err, ErrInterrupted) {
		t.Errorf("decodeKey(ctrl+c) error = %v, want ErrInterrupted", err)
	}
}
