// Package tree implements the tree interaction pattern: hierarchical items
// whose visibility follows the expansion state of their ancestors.
package tree

import (
	"errors"
	"fmt"
	"time"

	"github.com/vanderheijden86/ariapatterns/pkg/behavior"
	"github.com/vanderheijden86/ariapatterns/pkg/keys"
)

// ErrDuplicateID is returned when two sources share an id, which includes a
// source listed as its own descendant.
var ErrDuplicateID = errors.New("duplicate item id")

// ErrEmptyID is returned for a source whose id is empty.
var ErrEmptyID = errors.New("empty item id")

// Option customizes a Tree at construction.
type Option[V comparable] func(*Tree[V])

// WithClock replaces the typeahead clock.
func WithClock[V comparable](now func() time.Time) Option[V] {
	return func(t *Tree[V]) { t.now = now }
}

// Tree is one mounted tree widget.
type Tree[V comparable] struct {
	list     *behavior.List[*TreeItem[V], V]
	opts     Options
	now      func() time.Time
	roots    []*TreeItem[V]
	all      []*TreeItem[V]
	byID     map[string]*TreeItem[V]
	managers map[string]*behavior.ExpansionManager
	filter   func(*TreeItem[V]) bool

	keymap     *keys.Keymap
	keymapOpts Options
}

// New builds a tree over the top-level sources. It fails with
// ErrChildrenUnknown, ErrDuplicateID or ErrEmptyID when the sources are
// miswired.
func New[V comparable](sources []Source[V], opts Options, options ...Option[V]) (*Tree[V], error) {
	t := &Tree[V]{
		opts:     opts,
		now:      time.Now,
		byID:     make(map[string]*TreeItem[V]),
		managers: make(map[string]*behavior.ExpansionManager),
	}
	for _, o := range options {
		o(t)
	}
	t.list = behavior.NewList(behavior.ListInputs[*TreeItem[V], V]{
		Items:          t.VisibleItems,
		AllItems:       t.AllItems,
		FocusMode:      func() behavior.FocusMode { return t.opts.FocusMode },
		Disabled:       func() bool { return t.opts.Disabled },
		SkipDisabled:   func() bool { return t.opts.SkipDisabled },
		Wrap:           func() bool { return t.opts.Wrap },
		Multi:          func() bool { return t.opts.Multi },
		TypeaheadDelay: func() time.Duration { return t.opts.TypeaheadDelay },
		Now:            func() time.Time { return t.now() },
	})
	if err := t.SetSources(sources); err != nil {
		return nil, err
	}
	return t, nil
}

// MustNew is like New but panics on a wiring error.
func MustNew[V comparable](sources []Source[V], opts Options, options ...Option[V]) *Tree[V] {
	t, err := New(sources, opts, options...)
	if err != nil {
		panic(err)
	}
	return t
}

// SetSources replaces the tree's items after the host's data changed.
// Expansion state, the active item, the range anchor and the value set carry
// over by item id; values whose item disappeared are dropped. On error the
// previous items stay in place.
func (t *Tree[V]) SetSources(sources []Source[V]) error {
	byID := make(map[string]*TreeItem[V])
	var all []*TreeItem[V]

	var build func(srcs []Source[V], owner Owner[V]) ([]*TreeItem[V], error)
	build = func(srcs []Source[V], owner Owner[V]) ([]*TreeItem[V], error) {
		out := make([]*TreeItem[V], 0, len(srcs))
		for i, s := range srcs {
			lister, isLister := s.(ChildLister[V])
			reporter, isReporter := s.(ExpandableReporter)
			if s.ID() == "" {
				return nil, fmt.Errorf("tree item at position %d: %w", i, ErrEmptyID)
			}
			if !isLister && !isReporter {
				return nil, fmt.Errorf("tree item %q: %w", s.ID(), ErrChildrenUnknown)
			}
			if _, dup := byID[s.ID()]; dup {
				return nil, fmt.Errorf("tree item %q: %w", s.ID(), ErrDuplicateID)
			}
			n := &TreeItem[V]{src: s, tree: t, owner: owner, index: i}
			byID[s.ID()] = n
			all = append(all, n)

			var kids []Source[V]
			if isLister {
				kids = lister.Children()
			}
			n.hasChildren = len(kids) > 0 || (isReporter && reporter.Expandable())
			children, err := build(kids, NodeOwner(n))
			if err != nil {
				return nil, err
			}
			n.children = children
			out = append(out, n)
		}
		return out, nil
	}

	roots, err := build(sources, RootOwner[V]())
	if err != nil {
		return err
	}

	prevActive := t.list.ActiveItem()
	prevAnchor, hadAnchor := t.list.Selection.Anchor()
	values := t.list.Selection.Value()

	t.roots, t.all, t.byID = roots, all, byID

	t.list.Selection.SetValue(values)
	if hadAnchor {
		if n, ok := byID[prevAnchor.ID()]; ok {
			t.list.Selection.SetAnchor(n)
		} else {
			t.list.Selection.ClearAnchor()
		}
	}
	if prevActive != nil {
		n, ok := byID[prevActive.ID()]
		if !ok || !t.list.Focus.Focus(n) {
			t.list.Focus.Unfocus()
			t.list.SetDefaultState()
		}
	}
	return nil
}

// Options returns the current configuration.
func (t *Tree[V]) Options() Options { return t.opts }

// SetOptions replaces the configuration.
func (t *Tree[V]) SetOptions(opts Options) {
	t.opts = opts
	if !opts.Multi {
		t.list.Selection.SetValue(t.list.Selection.Value())
	}
}

// List exposes the composed behaviors.
func (t *Tree[V]) List() *behavior.List[*TreeItem[V], V] { return t.list }

// Roots returns the top-level items.
func (t *Tree[V]) Roots() []*TreeItem[V] { return append([]*TreeItem[V](nil), t.roots...) }

// AllItems returns every item in document order.
func (t *Tree[V]) AllItems() []*TreeItem[V] { return t.all }

// Item returns the item with the given id.
func (t *Tree[V]) Item(id string) (*TreeItem[V], bool) {
	n, ok := t.byID[id]
	return n, ok
}

// VisibleItems returns the items whose ancestors are all expanded, in
// document order. It is recomputed on every call in one walk from the roots;
// a filtered-out item hides its subtree.
func (t *Tree[V]) VisibleItems() []*TreeItem[V] {
	out := make([]*TreeItem[V], 0, len(t.all))
	var walk func(level []*TreeItem[V])
	walk = func(level []*TreeItem[V]) {
		for _, n := range level {
			if t.filter != nil && !t.filter(n) {
				continue
			}
			out = append(out, n)
			if len(n.children) > 0 && t.manager(n.owner).IsExpanded(n) {
				walk(n.children)
			}
		}
	}
	walk(t.roots)
	return out
}

// ActiveItem returns the active item, or nil.
func (t *Tree[V]) ActiveItem() *TreeItem[V] { return t.list.ActiveItem() }

// Value returns the selected values in selection order.
func (t *Tree[V]) Value() []V { return t.list.Selection.Value() }

// SetValue replaces the selected values.
func (t *Tree[V]) SetValue(v []V) { t.list.Selection.SetValue(v) }

// Tabindex returns the tabindex of the tree element.
func (t *Tree[V]) Tabindex() int { return t.list.Focus.ListTabindex() }

// ActiveDescendant returns the aria-activedescendant id, if any.
func (t *Tree[V]) ActiveDescendant() (string, bool) { return t.list.Focus.ActiveDescendant() }

// SetDefaultState picks the initial active item.
func (t *Tree[V]) SetDefaultState() { t.list.SetDefaultState() }

// SetFilter hides every item for which keep returns false, on top of the
// expansion state. A nil keep shows everything again. When the active item is
// hidden focus moves to its nearest visible ancestor, or to the first visible
// item when the filter hides the whole branch.
func (t *Tree[V]) SetFilter(keep func(*TreeItem[V]) bool) {
	t.filter = keep
	t.rehome()
}

func (t *Tree[V]) siblings(o Owner[V]) []*TreeItem[V] {
	if n, ok := o.Node(); ok {
		return n.children
	}
	return t.roots
}

func (t *Tree[V]) manager(o Owner[V]) *behavior.ExpansionManager {
	id := o.id()
	m, ok := t.managers[id]
	if !ok {
		m = behavior.NewExpansionManager(behavior.ExpansionInputs{
			MultiExpandable: func() bool { return t.opts.MultiExpandable },
			Disabled:        func() bool { return t.opts.Disabled },
		})
		t.managers[id] = m
	}
	return m
}
