package tree

import (
	"errors"

	"github.com/vanderheijden86/ariapatterns/pkg/behavior"
)

// ErrChildrenUnknown is returned when a source implements neither
// ChildLister nor ExpandableReporter, so the tree cannot tell whether it has
// children. It is a host wiring bug, not a runtime condition.
var ErrChildrenUnknown = errors.New("cannot determine children")

// Source is the host's item for one tree row. Every source must also
// implement ChildLister, ExpandableReporter, or both.
type Source[V comparable] interface {
	behavior.Item[V]
}

// ChildLister is implemented by sources that expose their children.
type ChildLister[V comparable] interface {
	Children() []Source[V]
}

// ExpandableReporter is implemented by sources that know whether they can be
// expanded without listing children, such as lazily loaded nodes.
type ExpandableReporter interface {
	Expandable() bool
}

// Owner is the parent of a tree item: either the tree root or another item.
// The zero Owner is the root.
type Owner[V comparable] struct {
	node *TreeItem[V]
}

// RootOwner returns the root owner.
func RootOwner[V comparable]() Owner[V] { return Owner[V]{} }

// NodeOwner returns the owner for items whose parent is n.
func NodeOwner[V comparable](n *TreeItem[V]) Owner[V] { return Owner[V]{node: n} }

// IsRoot reports whether the owner is the tree root.
func (o Owner[V]) IsRoot() bool { return o.node == nil }

// Node returns the parent item. ok is false for the root.
func (o Owner[V]) Node() (*TreeItem[V], bool) { return o.node, o.node != nil }

func (o Owner[V]) id() string {
	if o.node == nil {
		return ""
	}
	return o.node.ID()
}

// TreeItem wraps a Source with its position in the tree. Everything except
// the structure captured at build time is derived on read.
type TreeItem[V comparable] struct {
	src         Source[V]
	tree        *Tree[V]
	owner       Owner[V]
	children    []*TreeItem[V]
	hasChildren bool
	index       int
}

// Source returns the host item.
func (n *TreeItem[V]) Source() Source[V] { return n.src }

func (n *TreeItem[V]) ID() string         { return n.src.ID() }
func (n *TreeItem[V]) Value() V           { return n.src.Value() }
func (n *TreeItem[V]) Disabled() bool     { return n.src.Disabled() }
func (n *TreeItem[V]) SearchTerm() string { return n.src.SearchTerm() }
func (n *TreeItem[V]) Element() any       { return n.src.Element() }

// HasChildren reports whether the item is a parent, even if its children
// have not been loaded.
func (n *TreeItem[V]) HasChildren() bool { return n.hasChildren }

// Owner returns the item's parent.
func (n *TreeItem[V]) Owner() Owner[V] { return n.owner }

// Parent returns the parent item; ok is false for top-level items.
func (n *TreeItem[V]) Parent() (*TreeItem[V], bool) { return n.owner.Node() }

// Children returns the child items in order.
func (n *TreeItem[V]) Children() []*TreeItem[V] {
	return append([]*TreeItem[V](nil), n.children...)
}

// Level is the aria-level: 1 for top-level items.
func (n *TreeItem[V]) Level() int {
	level := 1
	for p, ok := n.Parent(); ok; p, ok = p.Parent() {
		level++
	}
	return level
}

// SetSize is the number of siblings including the item.
func (n *TreeItem[V]) SetSize() int { return len(n.tree.siblings(n.owner)) }

// PosInSet is the 1-based position among siblings.
func (n *TreeItem[V]) PosInSet() int { return n.index + 1 }

// Expandable reports whether the item can be expanded or collapsed now.
func (n *TreeItem[V]) Expandable() bool { return n.control().IsExpandable() }

// Expanded reports whether the item is open.
func (n *TreeItem[V]) Expanded() bool { return n.control().IsExpanded() }

// Visible reports whether every ancestor is expanded and no filter hides
// the item.
func (n *TreeItem[V]) Visible() bool {
	if n.tree.filter != nil && !n.tree.filter(n) {
		return false
	}
	p, ok := n.Parent()
	if !ok {
		return true
	}
	return p.Expanded() && p.Visible()
}

// Selected reports aria-selected. ok is false in navigation mode, where the
// selection is expressed through Current instead.
func (n *TreeItem[V]) Selected() (selected, ok bool) {
	if n.tree.opts.Nav {
		return false, false
	}
	return n.tree.list.Selection.IsSelected(n), true
}

// Current returns the aria-current token of a selected item in navigation
// mode, and "" otherwise.
func (n *TreeItem[V]) Current() string {
	if !n.tree.opts.Nav || !n.tree.list.Selection.IsSelected(n) {
		return ""
	}
	if n.tree.opts.CurrentType == "" {
		return "page"
	}
	return n.tree.opts.CurrentType
}

// Active reports whether the item is the tree's active item.
func (n *TreeItem[V]) Active() bool { return n.tree.list.ActiveItem() == n }

// Tabindex returns the item's tabindex.
func (n *TreeItem[V]) Tabindex() int { return n.tree.list.Focus.ItemTabindex(n) }

// IsDescendantOf reports whether a is an ancestor of n.
func (n *TreeItem[V]) IsDescendantOf(a *TreeItem[V]) bool {
	for p, ok := n.Parent(); ok; p, ok = p.Parent() {
		if p == a {
			return true
		}
	}
	return false
}

func (n *TreeItem[V]) control() *behavior.ExpansionControl {
	return behavior.NewExpansionControl(n, n.tree.manager(n.owner), func() []behavior.Expandable {
		return expandables(n.tree.siblings(n.owner))
	})
}
