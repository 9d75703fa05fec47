// Package combobox implements the combobox pattern: a text input that
// filters and drives a listbox- or tree-shaped popup.
package combobox

import (
	"strings"

	"github.com/vanderheijden86/ariapatterns/pkg/behavior"
	"github.com/vanderheijden86/ariapatterns/pkg/debug"
	"github.com/vanderheijden86/ariapatterns/pkg/keys"
)

// FilterMode decides how typing and navigation affect the selection.
type FilterMode int

const (
	// Manual never selects on its own: only Enter, a click, or an exact
	// match when focus leaves commits a value.
	Manual FilterMode = iota
	// AutoSelect selects the best match after every navigation or filter
	// step.
	AutoSelect
	// Highlight is AutoSelect plus an inline completion of the input text.
	Highlight
)

func (m FilterMode) String() string {
	switch m {
	case AutoSelect:
		return "auto-select"
	case Highlight:
		return "highlight"
	default:
		return "manual"
	}
}

// Options configures a combobox.
type Options struct {
	FilterMode FilterMode
	Disabled   bool
	Readonly   bool
	// Direction picks the tree popup's expand and collapse keys.
	Direction behavior.Direction
}

// Input is the state of the text field. Selection offsets count runes; a
// non-empty selection is the unconfirmed part of an inline completion.
type Input struct {
	Text           string `json:"text"`
	SelectionStart int    `json:"selection_start"`
	SelectionEnd   int    `json:"selection_end"`
}

// Combobox holds the open state and input text and delegates everything
// else to the attached popup.
type Combobox[V comparable] struct {
	opts    Options
	popup   ListboxControls[V]
	tree    TreeControls[V]
	inputEl any

	input    Input
	expanded bool
	focused  bool

	keymap    *keys.Keymap
	keymapKey keymapKey
}

type keymapKey struct {
	opts     Options
	expanded bool
	tree     bool
}

// New creates a combobox with no popup attached. inputEl is the handle of
// the text field, used to recognize clicks on it.
func New[V comparable](opts Options, inputEl any) *Combobox[V] {
	return &Combobox[V]{opts: opts, inputEl: inputEl}
}

// AttachListbox attaches a flat popup.
func (c *Combobox[V]) AttachListbox(p ListboxControls[V]) {
	c.popup, c.tree = p, nil
	c.keymap = nil
}

// AttachTree attaches a tree-shaped popup.
func (c *Combobox[V]) AttachTree(p TreeControls[V]) {
	c.popup, c.tree = p, p
	c.keymap = nil
}

// Options returns the current configuration.
func (c *Combobox[V]) Options() Options { return c.opts }

// SetOptions replaces the configuration.
func (c *Combobox[V]) SetOptions(o Options) { c.opts = o }

// Popup returns the attached popup, or nil.
func (c *Combobox[V]) Popup() ListboxControls[V] { return c.popup }

// Expanded reports whether the popup is open.
func (c *Combobox[V]) Expanded() bool { return c.expanded }

// Focused reports whether focus is inside the combobox.
func (c *Combobox[V]) Focused() bool { return c.focused }

// Input returns the text field state.
func (c *Combobox[V]) Input() Input { return c.input }

// Autocomplete returns the aria-autocomplete token.
func (c *Combobox[V]) Autocomplete() string {
	if c.opts.FilterMode == Highlight {
		return "both"
	}
	return "list"
}

// ActiveDescendant returns the id of the active popup item while open.
func (c *Combobox[V]) ActiveDescendant() (string, bool) {
	if !c.expanded || c.popup == nil {
		return "", false
	}
	return c.popup.ActiveID()
}

// Value returns the selected value.
func (c *Combobox[V]) Value() (V, bool) {
	var zero V
	if c.popup == nil {
		return zero, false
	}
	it, ok := c.popup.SelectedItem()
	if !ok {
		return zero, false
	}
	return it.Value(), true
}

// CommittedText is the search term of the selected item, or "".
func (c *Combobox[V]) CommittedText() string {
	if c.popup == nil {
		return ""
	}
	if it, ok := c.popup.SelectedItem(); ok {
		return it.SearchTerm()
	}
	return ""
}

func (c *Combobox[V]) inert() bool { return c.opts.Disabled || c.popup == nil }

func (c *Combobox[V]) selects() bool {
	return c.opts.FilterMode != Manual && !c.opts.Readonly
}

// Open shows the popup.
func (c *Combobox[V]) Open() bool {
	if c.inert() || c.expanded {
		return false
	}
	c.expanded = true
	debug.Log("combobox: open")
	return true
}

// Close hides the popup. Outside manual mode the input shows the committed
// text afterwards.
func (c *Combobox[V]) Close() bool {
	if !c.expanded {
		return false
	}
	c.expanded = false
	c.popup.Unfocus()
	if c.selects() {
		if text := c.CommittedText(); text != "" {
			c.setText(text)
		}
	}
	c.collapseSelection()
	debug.Log("combobox: close")
	return true
}

// Next moves to the next popup item.
func (c *Combobox[V]) Next() bool { return c.navigate(c.popup.Next) }

// Prev moves to the previous popup item.
func (c *Combobox[V]) Prev() bool { return c.navigate(c.popup.Prev) }

// First moves to the first popup item.
func (c *Combobox[V]) First() bool { return c.navigate(c.popup.First) }

// Last moves to the last popup item.
func (c *Combobox[V]) Last() bool { return c.navigate(c.popup.Last) }

func (c *Combobox[V]) navigate(op func() bool) bool {
	if c.inert() {
		return false
	}
	moved := op()
	if moved && c.selects() {
		if a, ok := c.popup.ActiveItem(); ok {
			c.popup.Select(a)
			if c.opts.FilterMode == Highlight {
				c.highlight(a, c.typedPrefix())
			}
		}
	}
	return moved
}

// Select focuses and selects item. It does not close the popup.
func (c *Combobox[V]) Select(item behavior.Item[V]) bool {
	if c.inert() || c.opts.Readonly {
		return false
	}
	c.popup.Focus(item)
	return c.popup.Select(item)
}

// Commit writes the selected item's text into the input.
func (c *Combobox[V]) Commit() {
	if c.inert() {
		return
	}
	if text := c.CommittedText(); text != "" {
		c.setText(text)
	}
}

// OnInput handles an edit of the text field. deleting reports a
// Backspace/Delete edit, which never inserts a completion.
func (c *Combobox[V]) OnInput(text string, deleting bool) {
	if c.inert() || c.opts.Readonly {
		return
	}
	c.setText(text)
	c.Open()
	matches := c.popup.Filter(text)

	if text == "" {
		c.popup.ClearSelection()
		c.popup.Unfocus()
		return
	}
	if !c.selects() {
		return
	}
	first, ok := firstSelectable(matches)
	if !ok {
		return
	}
	c.popup.Focus(first)
	c.popup.Select(first)
	if c.opts.FilterMode == Highlight && !deleting {
		c.highlight(first, text)
	}
}

// OnFocusIn records that focus entered the combobox.
func (c *Combobox[V]) OnFocusIn() { c.focused = true }

// OnFocusOut handles focus moving away from the input. Focus that stays
// inside the combobox container keeps the popup open.
func (c *Combobox[V]) OnFocusOut(insideContainer bool) {
	if insideContainer {
		return
	}
	c.focused = false
	if c.inert() {
		return
	}
	if c.opts.FilterMode == Manual && !c.opts.Readonly {
		for _, it := range c.popup.Items() {
			if exactMatch(it, c.input.Text) && !it.Disabled() {
				c.popup.Select(it)
				c.Commit()
				break
			}
		}
	}
	c.Close()
}

// OnPointerup handles a click on the input or a popup item.
func (c *Combobox[V]) OnPointerup(e keys.PointerEvent) bool {
	if c.inert() {
		return false
	}
	if e.Target != nil && e.Target == c.inputEl {
		if c.expanded {
			return c.Close()
		}
		return c.Open()
	}
	if !c.expanded {
		return false
	}
	item, ok := c.popup.GetItem(e.Target)
	if !ok {
		return false
	}
	if c.tree != nil && c.tree.IsItemExpandable(item) {
		c.popup.Focus(item)
		return c.tree.ToggleItem(item)
	}
	if c.opts.Readonly {
		c.popup.Focus(item)
		return true
	}
	c.Select(item)
	c.Commit()
	c.Close()
	return true
}

// OnKeydown handles a key press in the input and reports whether the
// combobox consumed it.
func (c *Combobox[V]) OnKeydown(e keys.KeyEvent) bool {
	if c.inert() {
		return false
	}
	action, ok := c.Keymap().Handle(e)
	debug.LogIf(ok, "combobox: %s -> %s", e, action)
	return ok
}

// Keymap returns the dispatch table for the current options and open state.
func (c *Combobox[V]) Keymap() *keys.Keymap {
	k := keymapKey{opts: c.opts, expanded: c.expanded, tree: c.tree != nil}
	if c.keymap == nil || c.keymapKey != k {
		c.keymap = c.buildKeymap()
		c.keymapKey = k
	}
	return c.keymap
}

func (c *Combobox[V]) buildKeymap() *keys.Keymap {
	km := keys.NewKeymap()
	if !c.expanded {
		km.On(keys.Key(keys.ArrowDown), "open-first", func(keys.KeyEvent) {
			c.Open()
			c.First()
		}).Describe("open")
		km.On(keys.Key(keys.ArrowUp), "open-last", func(keys.KeyEvent) {
			c.Open()
			c.Last()
		})
		if !c.opts.Readonly {
			km.On(keys.Key(keys.Escape), "clear", func(keys.KeyEvent) { c.clear() }).Describe("clear")
		}
		return km
	}

	km.On(keys.Key(keys.ArrowDown), "next", func(keys.KeyEvent) { c.Next() }).Describe("next")
	km.On(keys.Key(keys.ArrowUp), "prev", func(keys.KeyEvent) { c.Prev() }).Describe("previous")
	km.On(keys.Key(keys.Home), "first", func(keys.KeyEvent) { c.First() })
	km.On(keys.Key(keys.End), "last", func(keys.KeyEvent) { c.Last() })
	km.On(keys.Key(keys.Escape), "close", func(keys.KeyEvent) { c.Close() }).Describe("close")
	km.On(keys.Key(keys.Enter), "commit", func(keys.KeyEvent) { c.enter() }).Describe("choose")
	if c.tree != nil {
		expand, collapse := keys.ArrowRight, keys.ArrowLeft
		if c.opts.Direction == behavior.RTL {
			expand, collapse = collapse, expand
		}
		km.On(keys.Key(expand), "expand", func(keys.KeyEvent) { c.tree.ExpandItem() }).Describe("expand")
		km.On(keys.Key(collapse), "collapse", func(keys.KeyEvent) { c.tree.CollapseItem() }).Describe("collapse")
	}
	return km
}

func (c *Combobox[V]) enter() {
	a, ok := c.popup.ActiveItem()
	if ok && c.tree != nil && c.tree.IsItemExpandable(a) {
		c.tree.ToggleItem(a)
		return
	}
	if ok && !c.opts.Readonly {
		c.popup.Select(a)
		c.Commit()
	}
	c.Close()
}

func (c *Combobox[V]) clear() {
	c.setText("")
	c.popup.Filter("")
	c.popup.ClearSelection()
	c.popup.Unfocus()
}

// highlight shows item's search term in the input with the part after
// typed pre-selected, when the term extends typed.
func (c *Combobox[V]) highlight(item behavior.Item[V], typed string) {
	term := item.SearchTerm()
	if !hasPrefixFold(term, typed) {
		c.setText(term)
		return
	}
	n := len([]rune(typed))
	c.input = Input{
		Text:           typed + string([]rune(term)[n:]),
		SelectionStart: n,
		SelectionEnd:   len([]rune(term)),
	}
}

// typedPrefix is the input text without a pending completion.
func (c *Combobox[V]) typedPrefix() string {
	r := []rune(c.input.Text)
	if c.input.SelectionStart < c.input.SelectionEnd && c.input.SelectionStart <= len(r) {
		return string(r[:c.input.SelectionStart])
	}
	return c.input.Text
}

func (c *Combobox[V]) setText(text string) {
	n := len([]rune(text))
	c.input = Input{Text: text, SelectionStart: n, SelectionEnd: n}
}

func (c *Combobox[V]) collapseSelection() {
	c.input.SelectionStart = c.input.SelectionEnd
}

func firstSelectable[V comparable](items []behavior.Item[V]) (behavior.Item[V], bool) {
	for _, it := range items {
		if !it.Disabled() {
			return it, true
		}
	}
	return nil, false
}

// exactMatch reports whether text names item, ignoring case.
func exactMatch[V comparable](item behavior.Item[V], text string) bool {
	return strings.EqualFold(item.SearchTerm(), text)
}
