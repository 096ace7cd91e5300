package prompt

import (
	"errors"
	"testing"

	"github.com/raphi011/cliprompt/internal/term"
	"github.com/raphi011/cliprompt/internal/ui/styles"
)

func TestMessages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		unicode bool
		render  func(p *Prompter) error
		want    string
	}{
		{
			name:    "intro",
			unicode: true,
			render:  func(p *Prompter) error { return p.Intro("create-app") },
			want:    "┌ create-app\n│\n",
		},
		{
			name:   "intro ascii",
			render: func(p *Prompter) error { return p.Intro("create-app") },
			want:   "T create-app\n|\n",
		},
		{
			name:    "outro",
			unicode: true,
			render:  func(p *Prompter) error { return p.Outro("done") },
			want:    "└ done\n",
		},
		{
			name:    "cancel",
			unicode: true,
			render:  func(p *Prompter) error { return p.Cancel("aborted") },
			want:    "└ aborted\n",
		},
		{
			name:    "log info",
			unicode: true,
			render:  func(p *Prompter) error { return p.Log("hello", LogInfo) },
			want:    "● hello\n│\n",
		},
		{
			name:    "log warn",
			unicode: true,
			render:  func(p *Prompter) error { return p.Log("careful", LogWarn) },
			want:    "▲ careful\n│\n",
		},
		{
			name:    "log error",
			unicode: true,
			render:  func(p *Prompter) error { return p.Log("broken", LogError) },
			want:    "■ broken\n│\n",
		},
		{
			name:   "log error ascii",
			render: func(p *Prompter) error { return p.Log("broken", LogError) },
			want:   "x broken\n|\n",
		},
		{
			name:    "note",
			unicode: true,
			render:  func(p *Prompter) error { return p.Note("ab\nlonger") },
			want: "├────────╮\n" +
				"│ ab     │\n" +
				"│ longer │\n" +
				"├────────╯\n" +
				"│\n",
		},
		{
			name:    "note with wide characters",
			unicode: true,
			render:  func(p *Prompter) error { return p.Note("日本\nabc") },
			want: "├──────╮\n" +
				"│ 日本 │\n" +
				"│ abc  │\n" +
				"├──────╯\n" +
				"│\n",
		},
		{
			name:   "note ascii",
			render: func(p *Prompter) error { return p.Note("hi") },
			want:   "+----+\n| hi |\n+----+\n|\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := term.NewBuffer()
			p := New(b, WithSymbols(styles.NewSymbols(tt.unicode)))
			if err := tt.render(p); err != nil {
				t.Fatalf("render error = %v", err)
			}
			if b.String() != tt.want {
				t.Errorf("output = %q, want %q", b.String(), tt.want)
			}
		})
	}
}

func TestLog_Palette(t *testing.T) {
	t.Parallel()

	mark := func(tag string) styles.Decorator {
		return func(s string) string { return tag + "(" + s + ")" }
	}
	pal := styles.PlainPalette()
	pal.Info = mark("info")
	pal.Warn = mark("warn")
	pal.Error = mark("err")
	pal.Cancel = mark("cancel")

	tests := []struct {
		render func(p *Prompter) error
		want   string
	}{
		{func(p *Prompter) error { return p.Log("m", LogInfo) }, "info(●) m\n│\n"},
		{func(p *Prompter) error { return p.Log("m", LogWarn) }, "warn(▲) warn(m)\n│\n"},
		{func(p *Prompter) error { return p.Log("m", LogError) }, "err(■) err(m)\n│\n"},
		{func(p *Prompter) error { return p.Cancel("m") }, "└ cancel(m)\n"},
	}

	for _, tt := range tests {
		b := term.NewBuffer()
		if err := tt.render(New(b, WithPalette(pal))); err != nil {
			t.Fatalf("render error = %v", err)
		}
		if b.String() != tt.want {
			t.Errorf("output = %q, want %q", b.String(), tt.want)
		}
	}
}

func TestMessages_IOError(t *testing.T) {
	t.Parallel()

	p := New(failingTerminal{term.NewBuffer()})
	for name, err := range map[string]error{
		"intro":  p.Intro("x"),
		"outro":  p.Outro("x"),
		"cancel": p.Cancel("x"),
		"log":    p.Log("x", LogWarn),
		"note":   p.Note("x"),
	} {
		if !errors.Is(err, errWrite) {
			t.Errorf("%s: error = %v, want the write error", name, err)
		}
	}
}

func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    LogLevel
		wantErr bool
	}{
		{in: "", want: LogInfo},
		{in: "info", want: LogInfo},
		{in: "WARN", want: LogWarn},
		{in: "warning", want: LogWarn},
		{in: "error", want: LogError},
		{in: "fatal", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseLogLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLogLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if LogWarn.String() != "warn" || LogError.String() != "error" || LogInfo.String() != "info" {
		t.Error("LogLevel.String() mismatch")
	}
}
