package prompt

import "github.com/raphi011/cliprompt/internal/term"

// Select asks for one option. Up and down move through the options and wrap
// around, enter submits. The first option is preselected.
func (p *Prompter) Select(message string, options []SelectOption) (SelectOption, error) {
	if len(options) == 0 {
		return SelectOption{}, ErrEmptyOptions
	}

	n := len(options)
	cur := cursor{size: n}

	if err := p.hideCursor(); err != nil {
		return SelectOption{}, err
	}
	if err := p.writeLine(p.question(message)); err != nil {
		return SelectOption{}, err
	}
	if err := p.renderSelect(options, cur.pos); err != nil {
		return SelectOption{}, err
	}
	if err := p.moveUp(n); err != nil {
		return SelectOption{}, err
	}

	for {
		key, err := p.readKey()
		if err != nil {
			return SelectOption{}, err
		}

		switch key {
		case term.KeyArrowUp, term.KeyArrowDown:
			if key == term.KeyArrowUp {
				cur.up()
			} else {
				cur.down()
			}
			if err := p.renderSelect(options, cur.pos); err != nil {
				return SelectOption{}, err
			}
			if err := p.flush(); err != nil {
				return SelectOption{}, err
			}
			if err := p.moveUp(n); err != nil {
				return SelectOption{}, err
			}
		case term.KeyEnter:
			if err := p.moveDown(n); err != nil {
				return SelectOption{}, err
			}
			if err := p.showCursor(); err != nil {
				return SelectOption{}, err
			}
			return options[cur.pos], p.emptyLine()
		}
	}
}

// renderSelect draws one line per option and leaves the cursor below them.
func (p *Prompter) renderSelect(options []SelectOption, active int) error {
	for i, o := range options {
		radio := p.sym.RadioInactive
		if i == active {
			radio = p.pal.Active(p.sym.RadioActive)
		}
		if err := p.writeLine(p.optionLine(radio + " " + o.Label)); err != nil {
			return err
		}
	}
	return nil
}
