package combobox

import (
	"github.com/vanderheijden86/ariapatterns/pkg/behavior"
	"github.com/vanderheijden86/ariapatterns/pkg/listbox"
	"github.com/vanderheijden86/ariapatterns/pkg/tree"
)

// ListboxControls is what a combobox needs from its popup. Items are passed
// as behavior.Item values and matched by id.
type ListboxControls[V comparable] interface {
	// Items returns the items currently shown in the popup.
	Items() []behavior.Item[V]
	ActiveItem() (behavior.Item[V], bool)
	ActiveID() (string, bool)

	Next() bool
	Prev() bool
	First() bool
	Last() bool
	Focus(item behavior.Item[V]) bool
	Unfocus()

	Select(item behavior.Item[V]) bool
	ClearSelection()
	SelectedItem() (behavior.Item[V], bool)
	SetValue(v V)

	// Filter narrows the shown items to those matching text and returns the
	// matches, best first. An empty text shows every item and returns nil.
	Filter(text string) []behavior.Item[V]
	// GetItem resolves a pointer target to a shown item.
	GetItem(target any) (behavior.Item[V], bool)
}

// TreeControls adds the expansion operations of a tree-shaped popup.
type TreeControls[V comparable] interface {
	ListboxControls[V]
	ExpandItem() bool
	CollapseItem() bool
	ToggleItem(item behavior.Item[V]) bool
	IsItemExpandable(item behavior.Item[V]) bool
}

// PopupOptions returns the listbox settings a combobox popup uses: focus
// stays in the input, and the combobox decides when to select.
func PopupOptions() listbox.Options {
	o := listbox.DefaultOptions()
	o.FocusMode = behavior.ActiveDescendant
	o.SelectionMode = behavior.Explicit
	o.Multi = false
	return o
}

// ListboxPopup adapts a listbox over a filterable item set.
type ListboxPopup[T behavior.Entry[V], V comparable] struct {
	lb       *listbox.Listbox[T, V]
	all      func() []T
	shown    []T
	filtered bool
	filter   Filter
}

// NewListboxPopup creates a popup over all. A nil filter means PrefixFilter.
func NewListboxPopup[T behavior.Entry[V], V comparable](all func() []T, opts listbox.Options, filter Filter, options ...listbox.Option[T, V]) *ListboxPopup[T, V] {
	if filter == nil {
		filter = PrefixFilter
	}
	p := &ListboxPopup[T, V]{all: all, filter: filter}
	options = append([]listbox.Option[T, V]{listbox.WithAllItems[T, V](all)}, options...)
	p.lb = listbox.New(p.items, opts, options...)
	return p
}

// Listbox returns the underlying listbox for rendering.
func (p *ListboxPopup[T, V]) Listbox() *listbox.Listbox[T, V] { return p.lb }

func (p *ListboxPopup[T, V]) items() []T {
	if !p.filtered {
		return p.all()
	}
	return p.shown
}

func (p *ListboxPopup[T, V]) find(item behavior.Item[V]) (T, bool) {
	var zero T
	if item == nil {
		return zero, false
	}
	for _, it := range p.items() {
		if it.ID() == item.ID() {
			return it, true
		}
	}
	return zero, false
}

func (p *ListboxPopup[T, V]) Items() []behavior.Item[V] {
	items := p.items()
	out := make([]behavior.Item[V], len(items))
	for i, it := range items {
		out[i] = it
	}
	return out
}

func (p *ListboxPopup[T, V]) ActiveItem() (behavior.Item[V], bool) {
	var zero T
	a := p.lb.ActiveItem()
	if a == zero {
		return nil, false
	}
	return a, true
}

func (p *ListboxPopup[T, V]) ActiveID() (string, bool) {
	if a, ok := p.ActiveItem(); ok {
		return a.ID(), true
	}
	return "", false
}

func (p *ListboxPopup[T, V]) Next() bool  { return p.lb.List().Next(behavior.SelectOpts{}) }
func (p *ListboxPopup[T, V]) Prev() bool  { return p.lb.List().Prev(behavior.SelectOpts{}) }
func (p *ListboxPopup[T, V]) First() bool { return p.lb.List().First(behavior.SelectOpts{}) }
func (p *ListboxPopup[T, V]) Last() bool  { return p.lb.List().Last(behavior.SelectOpts{}) }

func (p *ListboxPopup[T, V]) Focus(item behavior.Item[V]) bool {
	t, ok := p.find(item)
	return ok && p.lb.List().Focus.Focus(t)
}

func (p *ListboxPopup[T, V]) Unfocus() { p.lb.List().Focus.Unfocus() }

func (p *ListboxPopup[T, V]) Select(item behavior.Item[V]) bool {
	t, ok := p.find(item)
	if !ok {
		return false
	}
	p.lb.List().Selection.SelectOne(t)
	return p.lb.ItemSelected(t)
}

func (p *ListboxPopup[T, V]) ClearSelection() { p.lb.SetValue(nil) }

func (p *ListboxPopup[T, V]) SelectedItem() (behavior.Item[V], bool) {
	for _, it := range p.all() {
		if p.lb.ItemSelected(it) {
			return it, true
		}
	}
	return nil, false
}

func (p *ListboxPopup[T, V]) SetValue(v V) { p.lb.SetValue([]V{v}) }

func (p *ListboxPopup[T, V]) Filter(text string) []behavior.Item[V] {
	var matches []behavior.Item[V]
	if text == "" {
		p.filtered, p.shown = false, nil
	} else {
		all := p.all()
		terms := make([]string, len(all))
		for i, it := range all {
			terms[i] = it.SearchTerm()
		}
		p.shown = p.shown[:0]
		for _, i := range p.filter(text, terms) {
			p.shown = append(p.shown, all[i])
			matches = append(matches, all[i])
		}
		p.filtered = true
	}
	var zero T
	if a := p.lb.ActiveItem(); a != zero && !p.lb.List().Focus.IsFocusable(a) {
		p.Unfocus()
	}
	return matches
}

func (p *ListboxPopup[T, V]) GetItem(target any) (behavior.Item[V], bool) {
	it, ok := listbox.ItemFor[T, V](p.items(), target)
	if !ok {
		return nil, false
	}
	return it, true
}

// TreePopup adapts a tree. Filtering keeps matching items and their
// ancestors, and expands the ancestors so that matches are reachable. A
// single-expandable tree opens only the branch of the best match, and Filter
// returns just the matches that are reachable.
type TreePopup[V comparable] struct {
	t      *tree.Tree[V]
	filter Filter
}

// NewTreePopup wraps t. A nil filter means PrefixFilter.
func NewTreePopup[V comparable](t *tree.Tree[V], filter Filter) *TreePopup[V] {
	if filter == nil {
		filter = PrefixFilter
	}
	return &TreePopup[V]{t: t, filter: filter}
}

// Tree returns the underlying tree for rendering.
func (p *TreePopup[V]) Tree() *tree.Tree[V] { return p.t }

func (p *TreePopup[V]) find(item behavior.Item[V]) (*tree.TreeItem[V], bool) {
	if item == nil {
		return nil, false
	}
	return p.t.Item(item.ID())
}

func (p *TreePopup[V]) Items() []behavior.Item[V] {
	items := p.t.VisibleItems()
	out := make([]behavior.Item[V], len(items))
	for i, it := range items {
		out[i] = it
	}
	return out
}

func (p *TreePopup[V]) ActiveItem() (behavior.Item[V], bool) {
	a := p.t.ActiveItem()
	if a == nil {
		return nil, false
	}
	return a, true
}

func (p *TreePopup[V]) ActiveID() (string, bool) {
	if a := p.t.ActiveItem(); a != nil {
		return a.ID(), true
	}
	return "", false
}

func (p *TreePopup[V]) Next() bool  { return p.t.List().Next(behavior.SelectOpts{}) }
func (p *TreePopup[V]) Prev() bool  { return p.t.List().Prev(behavior.SelectOpts{}) }
func (p *TreePopup[V]) First() bool { return p.t.List().First(behavior.SelectOpts{}) }
func (p *TreePopup[V]) Last() bool  { return p.t.List().Last(behavior.SelectOpts{}) }

func (p *TreePopup[V]) Focus(item behavior.Item[V]) bool {
	n, ok := p.find(item)
	return ok && p.t.List().Focus.Focus(n)
}

func (p *TreePopup[V]) Unfocus() { p.t.List().Focus.Unfocus() }

func (p *TreePopup[V]) Select(item behavior.Item[V]) bool {
	n, ok := p.find(item)
	if !ok {
		return false
	}
	p.t.List().Selection.SelectOne(n)
	return p.t.List().Selection.IsSelected(n)
}

func (p *TreePopup[V]) ClearSelection() { p.t.SetValue(nil) }

func (p *TreePopup[V]) SelectedItem() (behavior.Item[V], bool) {
	for _, n := range p.t.AllItems() {
		if p.t.List().Selection.IsSelected(n) {
			return n, true
		}
	}
	return nil, false
}

func (p *TreePopup[V]) SetValue(v V) { p.t.SetValue([]V{v}) }

func (p *TreePopup[V]) Filter(text string) []behavior.Item[V] {
	if text == "" {
		p.t.SetFilter(nil)
		return nil
	}
	all := p.t.AllItems()
	terms := make([]string, len(all))
	for i, n := range all {
		terms[i] = n.SearchTerm()
	}
	keep := make(map[string]bool)
	var matches []behavior.Item[V]
	for _, i := range p.filter(text, terms) {
		n := all[i]
		matches = append(matches, n)
		keep[n.ID()] = true
		for a, ok := n.Parent(); ok; a, ok = a.Parent() {
			keep[a.ID()] = true
		}
	}
	if a := p.t.ActiveItem(); a != nil && !keep[a.ID()] {
		p.Unfocus()
	}
	p.t.SetFilter(func(n *tree.TreeItem[V]) bool { return keep[n.ID()] })
	if len(matches) == 0 {
		return nil
	}
	if p.t.Options().MultiExpandable {
		for _, n := range all {
			if keep[n.ID()] {
				p.t.ExpandPath(n)
			}
		}
		return matches
	}

	// Only one branch per level can be open: reveal the best enabled match
	// and report the matches that ended up reachable.
	target := matches[0]
	if first, ok := firstSelectable(matches); ok {
		target = first
	}
	p.t.ExpandPath(target.(*tree.TreeItem[V]))
	reachable := matches[:0]
	for _, m := range matches {
		if m.(*tree.TreeItem[V]).Visible() {
			reachable = append(reachable, m)
		}
	}
	return reachable
}

func (p *TreePopup[V]) GetItem(target any) (behavior.Item[V], bool) {
	n, ok := listbox.ItemFor[*tree.TreeItem[V], V](p.t.VisibleItems(), target)
	if !ok {
		return nil, false
	}
	return n, true
}

func (p *TreePopup[V]) ExpandItem() bool   { return p.t.Expand(behavior.SelectOpts{}) }
func (p *TreePopup[V]) CollapseItem() bool { return p.t.Collapse(behavior.SelectOpts{}) }

func (p *TreePopup[V]) ToggleItem(item behavior.Item[V]) bool {
	n, ok := p.find(item)
	return ok && p.t.ToggleExpansion(n)
}

func (p *TreePopup[V]) IsItemExpandable(item behavior.Item[V]) bool {
	n, ok := p.find(item)
	return ok && n.Expandable()
}
