package keys

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// teaNames maps bubbletea key spellings onto DOM key names.
var teaNames = map[string]string{
	"up":        ArrowUp,
	"down":      ArrowDown,
	"left":      ArrowLeft,
	"right":     ArrowRight,
	"home":      Home,
	"end":       End,
	"pgup":      PageUp,
	"pgdown":    PageDown,
	"enter":     Enter,
	" ":         Space,
	"space":     Space,
	"esc":       Escape,
	"tab":       Tab,
	"backspace": Backspace,
	"delete":    Delete,
}

// FromTeaKey converts a bubbletea key message into a KeyEvent. Modifier
// prefixes ("ctrl+", "alt+", "shift+") become modifier bits, and an
// upper-case letter reports Shift the way a browser would.
func FromTeaKey(msg tea.KeyMsg) KeyEvent {
	if msg.Paste {
		return KeyEvent{Key: string(msg.Runes)}
	}
	s := msg.String()
	var mods Modifier
	for {
		switch {
		case strings.HasPrefix(s, "ctrl+") && len(s) > len("ctrl+"):
			mods |= Ctrl
			s = s[len("ctrl+"):]
			continue
		case strings.HasPrefix(s, "alt+") && len(s) > len("alt+"):
			mods |= Alt
			s = s[len("alt+"):]
			continue
		case strings.HasPrefix(s, "shift+") && len(s) > len("shift+"):
			mods |= Shift
			s = s[len("shift+"):]
			continue
		}
		break
	}
	if name, ok := teaNames[s]; ok {
		return KeyEvent{Key: name, Mods: mods}
	}
	if utf8.RuneCountInString(s) == 1 {
		r, _ := utf8.DecodeRuneInString(s)
		if unicode.IsUpper(r) {
			mods |= Shift
		}
	}
	return KeyEvent{Key: s, Mods: mods}
}

// FromTeaMouse converts a bubbletea mouse message into a PointerEvent aimed
// at target, the element handle the host found under the pointer.
func FromTeaMouse(msg tea.MouseMsg, target any) PointerEvent {
	var mods Modifier
	if msg.Shift {
		mods |= Shift
	}
	if msg.Ctrl {
		mods |= Ctrl
	}
	if msg.Alt {
		mods |= Alt
	}
	return PointerEvent{Target: target, Mods: mods}
}

// IsPrimaryPress reports whether msg is a left-button press, the only mouse
// event patterns react to.
func IsPrimaryPress(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft
}

// Help returns bubbles key bindings for the keymap, one per action, for use
// with bubbles/help. Bindings without help text are left out.
func (k *Keymap) Help() []key.Binding {
	if k == nil {
		return nil
	}
	var order []string
	names := make(map[string][]string)
	help := make(map[string]string)
	for _, b := range k.bindings {
		if b.Help == "" {
			continue
		}
		if _, seen := names[b.Action]; !seen {
			order = append(order, b.Action)
			help[b.Action] = b.Help
		}
		names[b.Action] = append(names[b.Action], b.Pattern.Names()...)
	}
	out := make([]key.Binding, 0, len(order))
	for _, action := range order {
		ks := names[action]
		out = append(out, key.NewBinding(key.WithKeys(ks...), key.WithHelp(ks[0], help[action])))
	}
	return out
}
