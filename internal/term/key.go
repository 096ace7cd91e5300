package term

import "strings"

// Key is an abstract key event delivered by [Terminal.ReadKey].
type Key int

// Known keys. KeyRune covers any printable character.
const (
	KeyUnknown Key = iota
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyTab
	KeyHome
	KeyEnd
	KeyDelete
	KeyPageUp
	KeyPageDown
	KeyRune
)

var keyNames = map[Key]string{
	KeyUnknown:    "unknown",
	KeyArrowUp:    "up",
	KeyArrowDown:  "down",
	KeyArrowLeft:  "left",
	KeyArrowRight: "right",
	KeyEnter:      "enter",
	KeyEscape:     "esc",
	KeyBackspace:  "backspace",
	KeyTab:        "tab",
	KeyHome:       "home",
	KeyEnd:        "end",
	KeyDelete:     "delete",
	KeyPageUp:     "pgup",
	KeyPageDown:   "pgdown",
	KeyRune:       "rune",
}

// keyAliases maps accepted spellings to keys, including the long
// "arrow down" form used by scripted input.
var keyAliases = map[string]Key{
	"arrow up":    KeyArrowUp,
	"arrow down":  KeyArrowDown,
	"arrow left":  KeyArrowLeft,
	"arrow right": KeyArrowRight,
	"escape":      KeyEscape,
	"return":      KeyEnter,
	"pageup":      KeyPageUp,
	"pagedown":    KeyPageDown,
	"del":         KeyDelete,
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKey converts a key name like "down" or "arrow down" to a Key.
// Unrecognized names map to KeyUnknown.
func ParseKey(name string) Key {
	name = strings.ToLower(strings.TrimSpace(name))
	if k, ok := keyAliases[name]; ok {
		return k
	}
	for k, n := range keyNames {
		if n == name {
			return k
		}
	}
	return KeyUnknown
}

// ParseKeys splits a comma separated key list, e.g. "down,down,enter".
// Empty entries are skipped.
func ParseKeys(list string) []Key {
	var keys []Key
	for _, part := range strings.Split(list, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		keys = append(keys, ParseKey(part))
	}
	return keys
}
