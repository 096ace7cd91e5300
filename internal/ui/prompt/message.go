package prompt

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// LogLevel selects the marker and coloring of [Prompter.Log].
type LogLevel int

const (
	LogInfo LogLevel = iota
	LogWarn
	LogError
)

func (l LogLevel) String() string {
	switch l {
	case LogWarn:
		return "warn"
	case LogError:
		return "error"
	default:
		return "info"
	}
}

// ParseLogLevel parses "info", "warn" or "error".
func ParseLogLevel(s string) (LogLevel, error) {
	switch strings.ToLower(s) {
	case "", "info":
		return LogInfo, nil
	case "warn", "warning":
		return LogWarn, nil
	case "error":
		return LogError, nil
	}
	return LogInfo, fmt.Errorf("invalid log level %q (valid: info, warn, error)", s)
}

// Intro opens a session.
func (p *Prompter) Intro(message string) error {
	if err := p.writeLine(p.sym.BarStart + " " + message); err != nil {
		return err
	}
	return p.emptyLine()
}

// Outro closes a session.
func (p *Prompter) Outro(message string) error {
	return p.writeLine(p.sym.BarEnd + " " + message)
}

// Cancel closes a session that was aborted.
func (p *Prompter) Cancel(message string) error {
	return p.writeLine(p.sym.BarEnd + " " + p.pal.Cancel(message))
}

// Log writes a marked message. Warnings and errors color the message too.
func (p *Prompter) Log(message string, level LogLevel) error {
	var line string
	switch level {
	case LogWarn:
		line = p.pal.Warn(p.sym.Warn) + " " + p.pal.Warn(message)
	case LogError:
		line = p.pal.Error(p.sym.Error) + " " + p.pal.Error(message)
	default:
		line = p.pal.Info(p.sym.Info) + " " + message
	}
	if err := p.writeLine(line); err != nil {
		return err
	}
	return p.emptyLine()
}

// Note draws message inside a box. Each line of message becomes one row;
// the box is as wide as the widest line in terminal cells.
func (p *Prompter) Note(message string) error {
	lines := strings.Split(message, "\n")

	width := 0
	for _, l := range lines {
		width = max(width, runewidth.StringWidth(l))
	}

	rule := strings.Repeat(p.sym.BarH, width+2)
	if err := p.writeLine(p.sym.ConnectLeft + rule + p.sym.CornerTopRight); err != nil {
		return err
	}
	for _, l := range lines {
		pad := strings.Repeat(" ", width-runewidth.StringWidth(l)+1)
		if err := p.writeLine(p.sym.Bar + " " + l + pad + p.sym.Bar); err != nil {
			return err
		}
	}
	if err := p.writeLine(p.sym.ConnectLeft + rule + p.sym.CornerBottomRight); err != nil {
		return err
	}
	return p.emptyLine()
}
