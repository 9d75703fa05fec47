package behavior

// NavigationInputs are the accessors a Navigation controller reads.
type NavigationInputs[T Entry[V], V comparable] struct {
	Focus *Focus[T, V]
	// Wrap reports whether stepping past either end cycles around.
	Wrap func() bool
}

// Navigation moves the active item through the visible sequence. It only
// knows "next" and "prev"; mapping physical keys to those steps is the
// pattern's job.
type Navigation[T Entry[V], V comparable] struct {
	in NavigationInputs[T, V]
}

// NewNavigation creates a navigation controller over focus.
func NewNavigation[T Entry[V], V comparable](in NavigationInputs[T, V]) *Navigation[T, V] {
	if in.Wrap == nil {
		in.Wrap = Static(true)
	}
	return &Navigation[T, V]{in: in}
}

// Goto makes item active. It returns whether the active item changed.
func (n *Navigation[T, V]) Goto(item T) bool {
	if !n.in.Focus.IsFocusable(item) {
		return false
	}
	if n.in.Focus.ActiveItem() == item {
		return false
	}
	return n.in.Focus.Focus(item)
}

// Next moves to the next focusable item.
func (n *Navigation[T, V]) Next() bool {
	item, ok := n.PeekNext()
	if !ok {
		return false
	}
	return n.Goto(item)
}

// Prev moves to the previous focusable item.
func (n *Navigation[T, V]) Prev() bool {
	item, ok := n.PeekPrev()
	if !ok {
		return false
	}
	return n.Goto(item)
}

// First moves to the first focusable item.
func (n *Navigation[T, V]) First() bool {
	for _, it := range n.in.Focus.Items() {
		if n.in.Focus.focusableMember(it) {
			return n.Goto(it)
		}
	}
	return false
}

// Last moves to the last focusable item.
func (n *Navigation[T, V]) Last() bool {
	items := n.in.Focus.Items()
	for i := len(items) - 1; i >= 0; i-- {
		if n.in.Focus.focusableMember(items[i]) {
			return n.Goto(items[i])
		}
	}
	return false
}

// PeekNext returns the item Next would move to without moving.
func (n *Navigation[T, V]) PeekNext() (T, bool) {
	return n.peek(1)
}

// PeekPrev returns the item Prev would move to without moving.
func (n *Navigation[T, V]) PeekPrev() (T, bool) {
	return n.peek(-1)
}

// peek walks from the active position in steps of delta, skipping items
// that cannot take focus. Without wrap the walk stops at the boundary; with
// wrap it visits every other position at most once.
func (n *Navigation[T, V]) peek(delta int) (T, bool) {
	var zero T
	items := n.in.Focus.Items()
	count := len(items)
	if count == 0 {
		return zero, false
	}
	start := n.in.Focus.ActiveIndex()
	wrap := n.in.Wrap()

	i := start
	if start < 0 && delta < 0 {
		i = count
	}
	for steps := 0; steps < count; steps++ {
		i += delta
		if wrap {
			i = ((i % count) + count) % count
		} else if i < 0 || i >= count {
			return zero, false
		}
		if i == start {
			break
		}
		if n.in.Focus.focusableMember(items[i]) {
			return items[i], true
		}
	}
	return zero, false
}
