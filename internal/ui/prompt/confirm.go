package prompt

import "github.com/raphi011/cliprompt/internal/term"

const defaultConfirmMessage = "Are you sure?"

// Confirm asks a yes/no question. Left selects yes, right selects no, enter
// submits. Yes is preselected. An empty message asks "Are you sure?".
func (p *Prompter) Confirm(message string) (bool, error) {
	if message == "" {
		message = defaultConfirmMessage
	}

	if err := p.hideCursor(); err != nil {
		return false, err
	}
	if err := p.writeLine(p.question(message)); err != nil {
		return false, err
	}

	yes := true
	if err := p.renderConfirm(yes); err != nil {
		return false, err
	}

	for {
		key, err := p.readKey()
		if err != nil {
			return false, err
		}

		switch key {
		case term.KeyArrowLeft, term.KeyArrowRight:
			yes = key == term.KeyArrowLeft
			if err := p.renderConfirm(yes); err != nil {
				return false, err
			}
			if err := p.flush(); err != nil {
				return false, err
			}
		case term.KeyEnter:
			if err := p.showCursor(); err != nil {
				return false, err
			}
			if err := p.writeLine(""); err != nil {
				return false, err
			}
			return yes, p.emptyLine()
		}
	}
}

func (p *Prompter) renderConfirm(yes bool) error {
	on := p.pal.Active(p.sym.RadioActive)
	off := p.sym.RadioInactive
	if yes {
		return p.write(p.optionLine(on + " Yes / " + off + " No"))
	}
	return p.write(p.optionLine(off + " Yes / " + on + " No"))
}
