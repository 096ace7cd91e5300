package prompt

import "strings"

// Text asks for a single line of input and returns it without surrounding
// whitespace.
func (p *Prompter) Text(message string) (string, error) {
	if err := p.writeLine(p.question(message)); err != nil {
		return "", err
	}
	if err := p.write(p.sym.Bar + " "); err != nil {
		return "", err
	}

	line, err := p.term.ReadLine()
	if err != nil {
		return "", ioErr("read line", err)
	}

	if err := p.emptyLine(); err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
