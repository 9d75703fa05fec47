// Package listbox implements the listbox interaction pattern: a flat list of
// options with single or multiple selection.
package listbox

import (
	"time"

	"github.com/vanderheijden86/ariapatterns/pkg/behavior"
	"github.com/vanderheijden86/ariapatterns/pkg/debug"
	"github.com/vanderheijden86/ariapatterns/pkg/keys"
)

// Option customizes a Listbox at construction.
type Option[T behavior.Entry[V], V comparable] func(*Listbox[T, V])

// WithClock replaces the typeahead clock.
func WithClock[T behavior.Entry[V], V comparable](now func() time.Time) Option[T, V] {
	return func(l *Listbox[T, V]) { l.now = now }
}

// WithAllItems supplies the unfiltered item set when items returns a subset
// (a filtered popup, for example). Values outside it are dropped by SetValue.
func WithAllItems[T behavior.Entry[V], V comparable](all func() []T) Option[T, V] {
	return func(l *Listbox[T, V]) { l.all = all }
}

// Listbox maps keyboard and pointer events onto list behaviors.
type Listbox[T behavior.Entry[V], V comparable] struct {
	list  *behavior.List[T, V]
	items func() []T
	all   func() []T
	now   func() time.Time
	opts  Options

	keymap     *keys.Keymap
	keymapOpts Options
}

// New creates a listbox over items, the host's ordered option sequence.
func New[T behavior.Entry[V], V comparable](items func() []T, opts Options, options ...Option[T, V]) *Listbox[T, V] {
	l := &Listbox[T, V]{items: items, opts: opts, now: time.Now}
	for _, o := range options {
		o(l)
	}
	l.list = behavior.NewList(behavior.ListInputs[T, V]{
		Items:          items,
		AllItems:       l.all,
		FocusMode:      func() behavior.FocusMode { return l.opts.FocusMode },
		Disabled:       func() bool { return l.opts.Disabled },
		SkipDisabled:   func() bool { return l.opts.SkipDisabled },
		Wrap:           func() bool { return l.opts.Wrap },
		Multi:          func() bool { return l.opts.Multi },
		TypeaheadDelay: func() time.Duration { return l.opts.TypeaheadDelay },
		Now:            func() time.Time { return l.now() },
	})
	return l
}

// Options returns the current configuration.
func (l *Listbox[T, V]) Options() Options { return l.opts }

// SetOptions replaces the configuration. Switching to single select trims
// the value set to its first entry.
func (l *Listbox[T, V]) SetOptions(opts Options) {
	l.opts = opts
	if !opts.Multi {
		l.list.Selection.SetValue(l.list.Selection.Value())
	}
}

// List exposes the composed behaviors for hosts that drive them directly.
func (l *Listbox[T, V]) List() *behavior.List[T, V] { return l.list }

// Items returns the current option sequence.
func (l *Listbox[T, V]) Items() []T { return l.items() }

// ActiveItem returns the active option.
func (l *Listbox[T, V]) ActiveItem() T { return l.list.ActiveItem() }

// Value returns the selected values in selection order.
func (l *Listbox[T, V]) Value() []V { return l.list.Selection.Value() }

// SetValue replaces the selected values.
func (l *Listbox[T, V]) SetValue(v []V) { l.list.Selection.SetValue(v) }

// Tabindex returns the tabindex of the listbox element.
func (l *Listbox[T, V]) Tabindex() int { return l.list.Focus.ListTabindex() }

// ActiveDescendant returns the aria-activedescendant id, if any.
func (l *Listbox[T, V]) ActiveDescendant() (string, bool) {
	return l.list.Focus.ActiveDescendant()
}

// ItemTabindex returns the tabindex of an option.
func (l *Listbox[T, V]) ItemTabindex(item T) int { return l.list.Focus.ItemTabindex(item) }

// ItemSelected reports the aria-selected state of an option.
func (l *Listbox[T, V]) ItemSelected(item T) bool { return l.list.Selection.IsSelected(item) }

// ItemActive reports whether item is the active option.
func (l *Listbox[T, V]) ItemActive(item T) bool { return l.list.ActiveItem() == item }

// SetDefaultState picks the initial active option.
func (l *Listbox[T, V]) SetDefaultState() { l.list.SetDefaultState() }

// Keymap returns the dispatch table for the current options. It is rebuilt
// only when the options changed since the last call.
func (l *Listbox[T, V]) Keymap() *keys.Keymap {
	if l.keymap == nil || l.keymapOpts != l.opts {
		l.keymap = l.buildKeymap()
		l.keymapOpts = l.opts
	}
	return l.keymap
}

// OnKeydown handles one key press. A disabled listbox ignores every event.
// It returns whether a binding handled the key.
func (l *Listbox[T, V]) OnKeydown(e keys.KeyEvent) bool {
	if l.opts.Disabled {
		debug.Log("listbox: disabled, ignoring %s", e)
		return false
	}
	if e.Key == keys.Space && (e.Mods == keys.None || e.Mods == keys.Shift) && l.list.Typeahead.IsTyping() {
		l.list.Search(keys.Space, MoveOpts(l.opts))
		return true
	}
	action, ok := l.Keymap().Handle(e)
	debug.LogIf(ok, "listbox: %s -> %s", e, action)
	return ok
}

// OnPointerdown handles a press on an option. Presses outside every option
// and presses on a disabled listbox are ignored.
func (l *Listbox[T, V]) OnPointerdown(e keys.PointerEvent) bool {
	if l.opts.Disabled {
		return false
	}
	item, ok := ItemFor[T, V](l.items(), e.Target)
	if !ok {
		return false
	}
	opts := PointerSelection(l.opts.Multi, l.opts.FollowFocus(), l.opts.Readonly, e.Mods)
	l.list.Goto(item, opts)
	debug.Log("listbox: pointer on %s", item.ID())
	return true
}

func (l *Listbox[T, V]) buildKeymap() *keys.Keymap {
	km := keys.NewKeymap()
	AddBindings(km, l.list, l.opts)
	AddTypeahead(km, l.list, l.opts)
	return km
}

// ItemFor resolves a pointer target to the item whose element it is.
func ItemFor[T behavior.Entry[V], V comparable](items []T, target any) (T, bool) {
	var zero T
	if target == nil {
		return zero, false
	}
	for _, it := range items {
		if it.Element() == target {
			return it, true
		}
	}
	return zero, false
}

// PointerSelection returns the selection effect of a press given the
// selection configuration and the held modifiers.
func PointerSelection(multi, followFocus, readonly bool, mods keys.Modifier) behavior.SelectOpts {
	switch {
	case readonly:
		return behavior.SelectOpts{}
	case multi && mods.Has(keys.Shift):
		return behavior.SelectOpts{SelectRange: true}
	case multi && (mods.Has(keys.Ctrl) || mods.Has(keys.Meta)):
		return behavior.SelectOpts{Toggle: true}
	case multi && followFocus:
		return behavior.SelectOpts{SelectOne: true}
	case multi:
		return behavior.SelectOpts{Toggle: true}
	case followFocus:
		return behavior.SelectOpts{SelectOne: true}
	default:
		return behavior.SelectOpts{ToggleOne: true}
	}
}
