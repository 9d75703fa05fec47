// Package keys defines the raw input events patterns consume and the
// modifier-aware keymap that turns them into actions.
package keys

import "strings"

// Modifier is a bit set of held modifier keys.
type Modifier uint8

const (
	Shift Modifier = 1 << iota
	Ctrl
	Alt
	Meta

	// None matches an event without modifiers.
	None Modifier = 0
)

// Has reports whether every bit of m2 is set in m.
func (m Modifier) Has(m2 Modifier) bool {
	return m&m2 == m2
}

func (m Modifier) String() string {
	var parts []string
	if m.Has(Ctrl) {
		parts = append(parts, "ctrl")
	}
	if m.Has(Alt) {
		parts = append(parts, "alt")
	}
	if m.Has(Meta) {
		parts = append(parts, "meta")
	}
	if m.Has(Shift) {
		parts = append(parts, "shift")
	}
	return strings.Join(parts, "+")
}

// Key names follow the DOM KeyboardEvent.key values so DOM-style hosts can
// forward events verbatim.
const (
	ArrowUp    = "ArrowUp"
	ArrowDown  = "ArrowDown"
	ArrowLeft  = "ArrowLeft"
	ArrowRight = "ArrowRight"
	Home       = "Home"
	End        = "End"
	PageUp     = "PageUp"
	PageDown   = "PageDown"
	Enter      = "Enter"
	Space      = " "
	Escape     = "Escape"
	Tab        = "Tab"
	Backspace  = "Backspace"
	Delete     = "Delete"
	ShiftKey   = "Shift"
)

// KeyEvent is one key press.
type KeyEvent struct {
	Key  string
	Mods Modifier
}

// Press builds a KeyEvent.
func Press(key string, mods ...Modifier) KeyEvent {
	var m Modifier
	for _, x := range mods {
		m |= x
	}
	return KeyEvent{Key: key, Mods: m}
}

func (e KeyEvent) String() string {
	name := displayName(e.Key)
	if e.Mods == None {
		return name
	}
	return e.Mods.String() + "+" + name
}

// PointerEvent is a primary-button press on a rendered surface. Target is the
// element handle under the pointer; patterns match it against Item.Element.
type PointerEvent struct {
	Target any
	Mods   Modifier
}

// Click builds a PointerEvent.
func Click(target any, mods ...Modifier) PointerEvent {
	var m Modifier
	for _, x := range mods {
		m |= x
	}
	return PointerEvent{Target: target, Mods: m}
}

// displayName renders a key the way bubbletea spells it, which is also what
// help text shows.
func displayName(key string) string {
	switch key {
	case ArrowUp:
		return "up"
	case ArrowDown:
		return "down"
	case ArrowLeft:
		return "left"
	case ArrowRight:
		return "right"
	case Home:
		return "home"
	case End:
		return "end"
	case PageUp:
		return "pgup"
	case PageDown:
		return "pgdown"
	case Enter:
		return "enter"
	case Space:
		return "space"
	case Escape:
		return "esc"
	case Tab:
		return "tab"
	case Backspace:
		return "backspace"
	case Delete:
		return "delete"
	case ShiftKey:
		return "shift"
	}
	return key
}
