package keys

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Pattern identifies which key events a binding matches.
type Pattern struct {
	key     string
	char    bool
	mods    []Modifier
	anyMods bool
}

// Key matches the named key with no modifiers held.
func Key(name string) Pattern {
	return Pattern{key: name}
}

// Char matches any single printable character.
func Char() Pattern {
	return Pattern{char: true}
}

// With replaces the accepted modifier sets. Each argument is one exact
// combination, so With(Ctrl, Meta) accepts either Ctrl or Meta alone and
// With(Ctrl|Shift) requires both.
func (p Pattern) With(mods ...Modifier) Pattern {
	p.mods = append([]Modifier(nil), mods...)
	p.anyMods = false
	return p
}

// AnyMods accepts the key regardless of held modifiers.
func (p Pattern) AnyMods() Pattern {
	p.anyMods = true
	return p
}

// Matches reports whether e satisfies the pattern.
func (p Pattern) Matches(e KeyEvent) bool {
	if !p.modsMatch(e.Mods) {
		return false
	}
	if p.char {
		return IsChar(e.Key)
	}
	if utf8.RuneCountInString(p.key) == 1 {
		return strings.EqualFold(p.key, e.Key)
	}
	return p.key == e.Key
}

func (p Pattern) modsMatch(m Modifier) bool {
	if p.anyMods {
		return true
	}
	if len(p.mods) == 0 {
		return m == None
	}
	for _, want := range p.mods {
		if m == want {
			return true
		}
	}
	return false
}

// Names returns the bubbletea-style spellings of the pattern, one per
// accepted modifier set ("shift+down", "ctrl+a").
func (p Pattern) Names() []string {
	name := displayName(p.key)
	if p.char {
		name = "a-z"
	}
	if p.anyMods || len(p.mods) == 0 {
		return []string{name}
	}
	out := make([]string, 0, len(p.mods))
	for _, m := range p.mods {
		if m == None {
			out = append(out, name)
			continue
		}
		out = append(out, m.String()+"+"+strings.ToLower(name))
	}
	return out
}

// IsChar reports whether key is a single printable character.
func IsChar(key string) bool {
	if utf8.RuneCountInString(key) != 1 {
		return false
	}
	r, _ := utf8.DecodeRuneInString(key)
	return unicode.IsPrint(r)
}

// Binding associates a pattern with a named action.
type Binding struct {
	Pattern Pattern
	Action  string
	Help    string
	Handler func(KeyEvent)
}

// Keymap is an ordered dispatch table. The first binding whose pattern
// matches an event wins, so more specific bindings are registered first.
type Keymap struct {
	bindings []Binding
}

// NewKeymap creates an empty keymap.
func NewKeymap() *Keymap {
	return &Keymap{}
}

// On appends a binding and returns the keymap for chaining.
func (k *Keymap) On(p Pattern, action string, handler func(KeyEvent)) *Keymap {
	k.bindings = append(k.bindings, Binding{Pattern: p, Action: action, Handler: handler})
	return k
}

// Describe sets the help text of the most recently added binding.
func (k *Keymap) Describe(help string) *Keymap {
	if n := len(k.bindings); n > 0 {
		k.bindings[n-1].Help = help
	}
	return k
}

// Lookup returns the binding e resolves to without running it.
func (k *Keymap) Lookup(e KeyEvent) (Binding, bool) {
	if k == nil {
		return Binding{}, false
	}
	for _, b := range k.bindings {
		if b.Pattern.Matches(e) {
			return b, true
		}
	}
	return Binding{}, false
}

// Handle runs the binding e resolves to. It returns the action name and
// whether any binding matched.
func (k *Keymap) Handle(e KeyEvent) (string, bool) {
	b, ok := k.Lookup(e)
	if !ok {
		return "", false
	}
	if b.Handler != nil {
		b.Handler(e)
	}
	return b.Action, true
}

// Bindings returns a copy of the bindings in dispatch order.
func (k *Keymap) Bindings() []Binding {
	if k == nil {
		return nil
	}
	return append([]Binding(nil), k.bindings...)
}

// Len returns the number of bindings.
func (k *Keymap) Len() int {
	if k == nil {
		return 0
	}
	return len(k.bindings)
}
