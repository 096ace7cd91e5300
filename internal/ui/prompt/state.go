package prompt

// cursor is a position on a ring of size entries.
type cursor struct {
	pos  int
	size int
}

func (c *cursor) up() {
	c.pos = (c.pos - 1 + c.size) % c.size
}

func (c *cursor) down() {
	c.pos = (c.pos + 1) % c.size
}

// selection tracks the checked entries of a multi-select. The cursor ring
// has one extra slot past the options for the confirm entry.
type selection struct {
	cursor
	checked []bool
	count   int
	max     int
}

func newSelection(n, maxChoices int) *selection {
	return &selection{
		cursor:  cursor{size: n + 1},
		checked: make([]bool, n),
		max:     maxChoices,
	}
}

// onConfirm reports whether the cursor is on the confirm entry.
func (s *selection) onConfirm() bool {
	return s.pos == len(s.checked)
}

// toggle flips the option under the cursor. Checking is refused once max
// options are checked; unchecking always succeeds.
func (s *selection) toggle() {
	i := s.pos
	if s.checked[i] {
		s.checked[i] = false
		s.count--
		return
	}
	if s.count >= s.max {
		return
	}
	s.checked[i] = true
	s.count++
}
