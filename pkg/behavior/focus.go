package behavior

// FocusInputs are the accessors a Focus controller reads.
type FocusInputs[T Entry[V], V comparable] struct {
	// Items is the ordered sequence of visible items.
	Items func() []T
	// Mode is the focus strategy (roving or activedescendant).
	Mode func() FocusMode
	// Disabled reports whether the whole widget is disabled.
	Disabled func() bool
	// SkipDisabled reports whether disabled items are skipped by focus.
	SkipDisabled func() bool
}

// Focus tracks the active item of a widget and derives the tabindex and
// activedescendant values the host renders.
type Focus[T Entry[V], V comparable] struct {
	in         FocusInputs[T, V]
	active     T
	prevActive T
}

// NewFocus creates a focus controller. Nil accessors default to an empty
// item sequence, roving focus, an enabled widget and skip-disabled behavior.
func NewFocus[T Entry[V], V comparable](in FocusInputs[T, V]) *Focus[T, V] {
	if in.Items == nil {
		in.Items = func() []T { return nil }
	}
	if in.Mode == nil {
		in.Mode = Static(Roving)
	}
	if in.Disabled == nil {
		in.Disabled = Static(false)
	}
	if in.SkipDisabled == nil {
		in.SkipDisabled = Static(true)
	}
	return &Focus[T, V]{in: in}
}

// Items returns the current visible item sequence.
func (f *Focus[T, V]) Items() []T {
	return f.in.Items()
}

// ActiveItem returns the active item, or the zero T when there is none.
func (f *Focus[T, V]) ActiveItem() T {
	return f.active
}

// HasActive reports whether an active item is set.
func (f *Focus[T, V]) HasActive() bool {
	var zero T
	return f.active != zero
}

// ActiveIndex returns the position of the active item in the visible
// sequence, or -1 when it is unset or not visible.
func (f *Focus[T, V]) ActiveIndex() int {
	if !f.HasActive() {
		return -1
	}
	return indexOf(f.in.Items(), f.active)
}

// PrevActiveItem returns the item that was active before the last focus move.
func (f *Focus[T, V]) PrevActiveItem() T {
	return f.prevActive
}

// PrevActiveIndex returns the visible position of the previously active item.
func (f *Focus[T, V]) PrevActiveIndex() int {
	var zero T
	if f.prevActive == zero {
		return -1
	}
	return indexOf(f.in.Items(), f.prevActive)
}

// IsListDisabled reports whether the widget as a whole cannot take focus:
// either it is disabled or every visible item is disabled.
func (f *Focus[T, V]) IsListDisabled() bool {
	if f.in.Disabled() {
		return true
	}
	for _, it := range f.in.Items() {
		if !it.Disabled() {
			return false
		}
	}
	return true
}

// IsFocusable reports whether item may become the active item. Disabled items
// are focusable only when skip-disabled is off, and items outside the visible
// sequence never are.
func (f *Focus[T, V]) IsFocusable(item T) bool {
	return f.focusableMember(item) && indexOf(f.in.Items(), item) >= 0
}

// focusableMember is IsFocusable for an item already taken from Items, so
// loops over the visible sequence do not rebuild it per item.
func (f *Focus[T, V]) focusableMember(item T) bool {
	var zero T
	if item == zero {
		return false
	}
	return !item.Disabled() || !f.in.SkipDisabled()
}

// Focus makes item the active item. It returns false without changing state
// when the widget is disabled or item is not focusable.
func (f *Focus[T, V]) Focus(item T) bool {
	if f.IsListDisabled() || !f.IsFocusable(item) {
		return false
	}
	f.prevActive = f.active
	f.active = item
	return true
}

// Unfocus clears the active item.
func (f *Focus[T, V]) Unfocus() {
	var zero T
	f.prevActive = f.active
	f.active = zero
}

// ItemTabindex returns the tabindex of item: 0 for the active item in roving
// mode, -1 otherwise.
func (f *Focus[T, V]) ItemTabindex(item T) int {
	if f.IsListDisabled() || f.in.Mode() == ActiveDescendant {
		return -1
	}
	if f.active == item {
		return 0
	}
	return -1
}

// ListTabindex returns the tabindex of the widget root. The root is the tab
// stop in activedescendant mode, and also in roving mode when the widget is
// disabled so that it stays reachable.
func (f *Focus[T, V]) ListTabindex() int {
	if f.IsListDisabled() {
		return 0
	}
	if f.in.Mode() == ActiveDescendant {
		return 0
	}
	return -1
}

// ActiveDescendant returns the id of the active item in activedescendant
// mode. ok is false in roving mode, on a disabled widget, or when nothing is
// active.
func (f *Focus[T, V]) ActiveDescendant() (id string, ok bool) {
	if f.IsListDisabled() || f.in.Mode() != ActiveDescendant || !f.HasActive() {
		return "", false
	}
	return f.active.ID(), true
}
