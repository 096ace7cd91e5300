package term

import (
	"bufio"
	"errors"
	"io"
	"unicode/utf8"
)

const (
	keyCtrlC     = 0x03
	keyEsc       = 0x1b
	keyDel       = 0x7f
	keyBackspace = 0x08
)

// decodeKey reads one key from r. Escape sequences are recognised only when
// their bytes are already buffered, which is the case for sequences emitted
// by a terminal in a single read; a lone ESC is reported as KeyEscape.
func decodeKey(r *bufio.Reader) (Key, error) {
	b, err := r.ReadByte()
	if err != nil {
		return KeyUnknown, err
	}

	switch b {
	case '\r', '\n':
		return KeyEnter, nil
	case '\t':
		return KeyTab, nil
	case keyDel, keyBackspace:
		return KeyBackspace, nil
	case keyCtrlC:
		return KeyUnknown, ErrInterrupted
	case keyEsc:
		if r.Buffered() == 0 {
			return KeyEscape, nil
		}
		return decodeEscape(r)
	}

	if b < 0x20 {
		return KeyUnknown, nil
	}
	if b < utf8.RuneSelf {
		return KeyRune, nil
	}

	// Consume the rest of a multi-byte rune so it is not read as separate keys.
	if err := r.UnreadByte(); err != nil {
		return KeyUnknown, err
	}
	if _, _, err := r.ReadRune(); err != nil {
		return KeyUnknown, err
	}
	return KeyRune, nil
}

// decodeEscape handles the bytes after ESC: CSI ("[") and SS3 ("O")
// sequences for cursor and editing keys.
func decodeEscape(r *bufio.Reader) (Key, error) {
	intro, err := r.ReadByte()
	if err != nil {
		return KeyEscape, nil
	}
	if intro != '[' && intro != 'O' {
		return KeyUnknown, nil
	}

	var params []byte
	for {
		c, err := r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return KeyUnknown, nil
			}
			return KeyUnknown, err
		}
		// Final byte of a CSI sequence is in 0x40..0x7e.
		if c >= 0x40 && c <= 0x7e {
			return csiKey(params, c), nil
		}
		params = append(params, c)
	}
}

func csiKey(params []byte, final byte) Key {
	switch final {
	case 'A':
		return KeyArrowUp
	case 'B':
		return KeyArrowDown
	case 'C':
		return KeyArrowRight
	case 'D':
		return KeyArrowLeft
	case 'H':
		return KeyHome
	case 'F':
		return KeyEnd
	case '~':
		switch string(params) {
		case "1", "7":
			return KeyHome
		case "4", "8":
			return KeyEnd
		case "3":
			return KeyDelete
		case "5":
			return KeyPageUp
		case "6":
			return KeyPageDown
		}
	}
	return KeyUnknown
}
