package behavior

import "time"

// ListInputs configure a List. Every field is an accessor re-read on use;
// nil accessors take the defaults of the individual controllers.
type ListInputs[T Entry[V], V comparable] struct {
	Items          func() []T
	AllItems       func() []T
	FocusMode      func() FocusMode
	Disabled       func() bool
	SkipDisabled   func() bool
	Wrap           func() bool
	Multi          func() bool
	TypeaheadDelay func() time.Duration
	Now            func() time.Time
}

// SelectOpts names the selection side effect that accompanies a focus move.
type SelectOpts struct {
	Toggle      bool
	ToggleOne   bool
	Select      bool
	SelectOne   bool
	SelectRange bool
}

// List composes focus, navigation, selection and typeahead over one visible
// item sequence. Patterns map input events onto its methods.
type List[T Entry[V], V comparable] struct {
	Focus      *Focus[T, V]
	Navigation *Navigation[T, V]
	Selection  *Selection[T, V]
	Typeahead  *Typeahead[T, V]

	in          ListInputs[T, V]
	inSelection bool
}

// NewList wires the four controllers together.
func NewList[T Entry[V], V comparable](in ListInputs[T, V]) *List[T, V] {
	if in.Wrap == nil {
		in.Wrap = Static(true)
	}
	l := &List[T, V]{in: in}
	l.Focus = NewFocus(FocusInputs[T, V]{
		Items:        in.Items,
		Mode:         in.FocusMode,
		Disabled:     in.Disabled,
		SkipDisabled: in.SkipDisabled,
	})
	l.Navigation = NewNavigation(NavigationInputs[T, V]{
		Focus: l.Focus,
		Wrap:  func() bool { return in.Wrap() && !l.inSelection },
	})
	l.Selection = NewSelection(SelectionInputs[T, V]{
		Focus:    l.Focus,
		Multi:    in.Multi,
		Disabled: in.Disabled,
		AllItems: in.AllItems,
	})
	l.Typeahead = NewTypeahead(TypeaheadInputs[T, V]{
		Focus: l.Focus,
		Delay: in.TypeaheadDelay,
		Now:   in.Now,
	})
	return l
}

// InSelection reports whether a range selection is being extended. Wrapping
// is suspended while it is.
func (l *List[T, V]) InSelection() bool {
	return l.inSelection
}

// ActiveItem returns the active item.
func (l *List[T, V]) ActiveItem() T {
	return l.Focus.ActiveItem()
}

// Next moves focus forward and applies opts when it moved.
func (l *List[T, V]) Next(opts SelectOpts) bool {
	return l.navigate(opts, l.Navigation.Next)
}

// Prev moves focus backward and applies opts when it moved.
func (l *List[T, V]) Prev(opts SelectOpts) bool {
	return l.navigate(opts, l.Navigation.Prev)
}

// First moves focus to the first focusable item.
func (l *List[T, V]) First(opts SelectOpts) bool {
	return l.navigate(opts, l.Navigation.First)
}

// Last moves focus to the last focusable item.
func (l *List[T, V]) Last(opts SelectOpts) bool {
	return l.navigate(opts, l.Navigation.Last)
}

// Goto focuses item and applies opts even when item was already active, so a
// click on the active item still toggles it. It returns whether focus moved.
func (l *List[T, V]) Goto(item T, opts SelectOpts) bool {
	if !l.Focus.IsFocusable(item) {
		return false
	}
	if opts.SelectRange {
		l.ensureAnchor()
	}
	moved := l.Navigation.Goto(item)
	l.UpdateSelection(opts)
	return moved
}

// Search feeds one character to typeahead and applies opts when the active
// item changed.
func (l *List[T, V]) Search(char string, opts SelectOpts) bool {
	moved := l.Typeahead.Search(char)
	if moved {
		l.UpdateSelection(opts)
	}
	return moved
}

// Anchor re-anchors range selection at the active item.
func (l *List[T, V]) Anchor() {
	l.Selection.BeginRangeSelection()
}

// UpdateSelection applies opts to the active item.
func (l *List[T, V]) UpdateSelection(opts SelectOpts) {
	var zero T
	switch {
	case opts.Toggle:
		l.Selection.Toggle(zero)
	case opts.ToggleOne:
		l.Selection.ToggleOne(zero)
	case opts.Select:
		l.Selection.Select(zero, true)
	case opts.SelectOne:
		l.Selection.SelectOne(zero)
	case opts.SelectRange:
		l.Selection.SelectRange()
	}
}

// SetDefaultState picks the initial active item when none is set: the first
// visible focusable selected item, else the first visible focusable item.
func (l *List[T, V]) SetDefaultState() {
	if l.Focus.ActiveIndex() >= 0 {
		return
	}
	var fallback T
	var zero T
	for _, it := range l.Focus.Items() {
		if !l.Focus.focusableMember(it) {
			continue
		}
		if l.Selection.IsSelected(it) {
			l.Focus.Focus(it)
			return
		}
		if fallback == zero {
			fallback = it
		}
	}
	if fallback != zero {
		l.Focus.Focus(fallback)
	}
}

func (l *List[T, V]) navigate(opts SelectOpts, op func() bool) bool {
	if opts.SelectRange {
		l.ensureAnchor()
		l.inSelection = true
		defer func() { l.inSelection = false }()
	}
	moved := op()
	if moved {
		l.UpdateSelection(opts)
	}
	return moved
}

// ensureAnchor anchors range selection at the active item unless a visible
// anchor already exists.
func (l *List[T, V]) ensureAnchor() {
	anchor, ok := l.Selection.Anchor()
	if !ok || indexOf(l.Focus.Items(), anchor) < 0 {
		l.Selection.BeginRangeSelection()
	}
}
