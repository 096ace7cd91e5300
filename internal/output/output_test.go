package output

import (
	"bytes"
	"context"
	"os"
	"testing"
)

func TestFromContext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if got := FromContext(WithPrinter(context.Background(), &buf)).Writer(); got != &buf {
		t.Errorf("Writer() = %v, want the attached buffer", got)
	}
	if got := FromContext(context.Background()).Writer(); got != os.Stdout {
		t.Errorf("Writer() without printer = %v, want os.Stdout", got)
	}
}

func TestPrinter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		print func(p *Printer)
		want  string
	}{
		{name: "Print", print: func(p *Printer) { p.Print("go", "=", "Go") }, want: "go=Go"},
		{name: "Printf", print: func(p *Printer) { p.Printf("Created config file: %s\n", "/tmp/c.toml") }, want: "Created config file: /tmp/c.toml\n"},
		{name: "Println", print: func(p *Printer) { p.Println("true"); p.Println("false") }, want: "true\nfalse\n"},
		{name: "Writer", print: func(p *Printer) { _, _ = p.Writer().Write([]byte("raw")) }, want: "raw"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			tt.print(New(&buf))
			if got := buf.String(); got != tt.want {
				t.Errorf("wrote %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrinter_Lines(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	New(&buf).Lines([]string{"a", "b"})
	if got := buf.String(); got != "a\nb\n" {
		t.Errorf("Lines() wrote %q, want %q", got, "a\nb\n")
	}

	buf.Reset()
	New(&buf).Lines(nil)
	if buf.Len() != 0 {
		t.Errorf("Lines(nil) wrote %q, want nothing", buf.String())
	}
}

func TestPrinter_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := New(&buf).JSON(map[string]any{"value": "a", "label": "Apple"})
	if err != nil {
		t.Fatalf("JSON() error = %v", err)
	}
	want := "{\n  \"label\": \"Apple\",\n  \"value\": \"a\"\n}\n"
	if got := buf.String(); got != want {
		t.Errorf("JSON() wrote %q, want %q", got, want)
	}
}
