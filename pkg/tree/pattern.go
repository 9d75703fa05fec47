package tree

import (
	"github.com/vanderheijden86/ariapatterns/pkg/behavior"
	"github.com/vanderheijden86/ariapatterns/pkg/debug"
	"github.com/vanderheijden86/ariapatterns/pkg/keys"
	"github.com/vanderheijden86/ariapatterns/pkg/listbox"
)

// Keymap returns the dispatch table for the current options, rebuilt only
// when the options changed.
func (t *Tree[V]) Keymap() *keys.Keymap {
	if t.keymap == nil || t.keymapOpts != t.opts {
		t.keymap = t.buildKeymap()
		t.keymapOpts = t.opts
	}
	return t.keymap
}

// OnKeydown handles one key press and reports whether a binding handled it.
// A disabled tree ignores every event.
func (t *Tree[V]) OnKeydown(e keys.KeyEvent) bool {
	if t.opts.Disabled {
		debug.Log("tree: disabled, ignoring %s", e)
		return false
	}
	if e.Key == keys.Space && (e.Mods == keys.None || e.Mods == keys.Shift) && t.list.Typeahead.IsTyping() {
		t.list.Search(keys.Space, listbox.MoveOpts(t.opts.Options))
		return true
	}
	action, ok := t.Keymap().Handle(e)
	debug.LogIf(ok, "tree: %s -> %s", e, action)
	t.checkActiveVisible()
	return ok
}

// OnPointerdown focuses the pressed row, applies the pointer selection
// effect and toggles its expansion.
func (t *Tree[V]) OnPointerdown(e keys.PointerEvent) bool {
	if t.opts.Disabled {
		return false
	}
	item, ok := listbox.ItemFor[*TreeItem[V], V](t.VisibleItems(), e.Target)
	if !ok {
		return false
	}
	opts := listbox.PointerSelection(t.opts.Multi, t.opts.FollowFocus(), t.opts.Readonly, e.Mods)
	t.list.Goto(item, opts)
	t.ToggleExpansion(item)
	debug.Log("tree: pointer on %s", item.ID())
	t.checkActiveVisible()
	return true
}

// Expand opens the active item, or moves into its first focusable child when
// it is already open. opts is applied if focus moves.
func (t *Tree[V]) Expand(opts behavior.SelectOpts) bool {
	item := t.list.ActiveItem()
	if !t.list.Focus.IsFocusable(item) {
		return false
	}
	if item.Expandable() && !item.Expanded() {
		return item.control().Open()
	}
	if !item.Expanded() {
		return false
	}
	for _, c := range item.children {
		if t.list.Focus.IsFocusable(c) {
			return t.list.Goto(c, opts)
		}
	}
	return false
}

// Collapse closes the active item, or moves to its parent when it is closed.
func (t *Tree[V]) Collapse(opts behavior.SelectOpts) bool {
	item := t.list.ActiveItem()
	if !t.list.Focus.IsFocusable(item) {
		return false
	}
	if item.Expandable() && item.Expanded() {
		return item.control().Close()
	}
	if p, ok := item.Parent(); ok && t.list.Focus.IsFocusable(p) {
		return t.list.Goto(p, opts)
	}
	return false
}

// ExpandSiblings opens item and every expandable sibling. A nil item means
// the active item.
func (t *Tree[V]) ExpandSiblings(item *TreeItem[V]) bool {
	if item == nil {
		item = t.list.ActiveItem()
	}
	if !t.list.Focus.IsFocusable(item) {
		return false
	}
	group := expandables(t.siblings(item.owner))
	before := len(t.manager(item.owner).ExpandedIDs())
	t.manager(item.owner).OpenAll(group)
	return len(t.manager(item.owner).ExpandedIDs()) != before
}

// ToggleExpansion flips item open or closed. A nil item means the active
// item. Closing an ancestor of the active item moves focus onto item.
func (t *Tree[V]) ToggleExpansion(item *TreeItem[V]) bool {
	if item == nil {
		item = t.list.ActiveItem()
	}
	if !t.list.Focus.IsFocusable(item) || !item.Expandable() {
		return false
	}
	changed := item.control().Toggle()
	t.rehome()
	return changed
}

// ExpandAll opens every expandable item. In a single-expandable tree only
// the path to the active item is opened.
func (t *Tree[V]) ExpandAll() {
	defer t.rehome()
	if !t.opts.MultiExpandable {
		if a := t.list.ActiveItem(); a != nil {
			t.ExpandPath(a)
			a.control().Open()
		}
		return
	}
	for _, n := range t.all {
		t.manager(n.owner).Open(n, nil)
	}
}

// CollapseAll closes every item and moves focus to the top-level ancestor of
// the active item.
func (t *Tree[V]) CollapseAll() {
	for _, n := range t.all {
		t.manager(n.owner).Close(n)
	}
	t.rehome()
}

// ExpandPath opens every ancestor of item so that it becomes visible. It
// reports whether item is visible afterwards. In a single-expandable tree
// opening the path closes sibling branches; an active item inside one of them
// moves to its nearest visible ancestor.
func (t *Tree[V]) ExpandPath(item *TreeItem[V]) bool {
	if item == nil {
		return false
	}
	var path []*TreeItem[V]
	for p, ok := item.Parent(); ok; p, ok = p.Parent() {
		path = append(path, p)
	}
	for i := len(path) - 1; i >= 0; i-- {
		path[i].control().Open()
	}
	visible := item.Visible()
	t.rehome()
	return visible
}

// rehome moves focus off an item that became hidden, onto its nearest
// visible focusable ancestor.
func (t *Tree[V]) rehome() {
	a := t.list.ActiveItem()
	if a == nil || a.Visible() {
		return
	}
	for p, ok := a.Parent(); ok; p, ok = p.Parent() {
		if p.Visible() && t.list.Focus.Focus(p) {
			debug.Log("tree: focus moved from hidden %s to %s", a.ID(), p.ID())
			return
		}
	}
	t.list.Focus.Unfocus()
	t.list.SetDefaultState()
}

func (t *Tree[V]) checkActiveVisible() {
	a := t.list.ActiveItem()
	debug.Assert(a == nil || a.Visible(), "tree: active item is hidden")
}

func (t *Tree[V]) buildKeymap() *keys.Keymap {
	o := t.opts
	km := keys.NewKeymap()
	listbox.AddBindings(km, t.list, o.Options)

	move := listbox.MoveOpts(o.Options)
	km.On(keys.Key(o.ExpandKey()), "expand", func(keys.KeyEvent) { t.Expand(move) }).Describe("expand")
	km.On(keys.Key(o.CollapseKey()), "collapse", func(keys.KeyEvent) { t.Collapse(move) }).Describe("collapse")
	if o.Multi && o.FollowFocus() && !o.Readonly {
		none := behavior.SelectOpts{}
		ctrl := []keys.Modifier{keys.Ctrl, keys.Meta}
		km.On(keys.Key(o.ExpandKey()).With(ctrl...), "expand", func(keys.KeyEvent) { t.Expand(none) })
		km.On(keys.Key(o.CollapseKey()).With(ctrl...), "collapse", func(keys.KeyEvent) { t.Collapse(none) })
	}
	// Terminals do not report Shift for "*".
	km.On(keys.Key("*").With(keys.None, keys.Shift), "expand-siblings", func(keys.KeyEvent) { t.ExpandSiblings(nil) }).Describe("expand siblings")

	listbox.AddTypeahead(km, t.list, o.Options)
	return km
}

func expandables[V comparable](items []*TreeItem[V]) []behavior.Expandable {
	out := make([]behavior.Expandable, len(items))
	for i, n := range items {
		out[i] = n
	}
	return out
}
