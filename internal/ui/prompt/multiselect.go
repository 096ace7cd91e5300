package prompt

import "github.com/raphi011/cliprompt/internal/term"

// MultiSelect asks for any number of options. See [Prompter.MultiSelectMax].
func (p *Prompter) MultiSelect(message string, options []SelectOption) ([]SelectOption, error) {
	return p.MultiSelectMax(message, options, len(options))
}

// MultiSelectMax asks for up to maxChoices options.
//
// Up and down move through the options plus a trailing "confirm" entry,
// wrapping around. Enter on an option toggles it; checking more than
// maxChoices options is silently refused. Enter on "confirm" submits and
// returns the checked options in input order.
func (p *Prompter) MultiSelectMax(message string, options []SelectOption, maxChoices int) ([]SelectOption, error) {
	if len(options) == 0 {
		return nil, ErrEmptyOptions
	}
	if maxChoices > len(options) {
		return nil, &InvalidMaxChoiceError{Message: "max_choice_num must be less or equal than options length"}
	}
	if maxChoices <= 0 {
		return nil, &InvalidMaxChoiceError{Message: "max_choice_num must be greater than 0"}
	}

	// The block is the options plus the confirm line.
	rows := len(options) + 1
	sel := newSelection(len(options), maxChoices)

	if err := p.hideCursor(); err != nil {
		return nil, err
	}
	if err := p.writeLine(p.question(message)); err != nil {
		return nil, err
	}
	if err := p.renderMultiSelect(options, sel); err != nil {
		return nil, err
	}
	if err := p.moveUp(rows); err != nil {
		return nil, err
	}

	for {
		key, err := p.readKey()
		if err != nil {
			return nil, err
		}

		switch key {
		case term.KeyArrowUp:
			sel.up()
		case term.KeyArrowDown:
			sel.down()
		case term.KeyEnter:
			if sel.onConfirm() {
				if err := p.moveDown(rows); err != nil {
					return nil, err
				}
				if err := p.showCursor(); err != nil {
					return nil, err
				}
				return sel.chosen(options), p.emptyLine()
			}
			sel.toggle()
		default:
			continue
		}

		if err := p.renderMultiSelect(options, sel); err != nil {
			return nil, err
		}
		if err := p.flush(); err != nil {
			return nil, err
		}
		if err := p.moveUp(rows); err != nil {
			return nil, err
		}
	}
}

func (p *Prompter) renderMultiSelect(options []SelectOption, sel *selection) error {
	radio := func(active bool) string {
		if active {
			return p.pal.Active(p.sym.RadioActive)
		}
		return p.sym.RadioInactive
	}

	for i, o := range options {
		box := p.sym.CheckboxInactive
		if sel.checked[i] {
			box = p.pal.Checked(p.sym.CheckboxActive)
		}
		line := radio(i == sel.pos) + " " + box + " " + o.Label
		if err := p.writeLine(p.optionLine(line)); err != nil {
			return err
		}
	}
	return p.writeLine(p.optionLine(radio(sel.onConfirm()) + " confirm"))
}

// chosen returns the checked options in input order.
func (s *selection) chosen(options []SelectOption) []SelectOption {
	out := make([]SelectOption, 0, s.count)
	for i, o := range options {
		if s.checked[i] {
			out = append(out, o)
		}
	}
	return out
}
