// Package behavior implements the composable interaction controllers shared by
// composite widgets: focus, navigation, selection, typeahead and expansion.
//
// Controllers never store derived state. Every input is a pull-based accessor
// (a closure) that is re-read on each call, so a controller always sees the
// host's current item sequence and configuration. Nothing in this package
// blocks, schedules work or spawns goroutines; one call is one complete state
// transition.
package behavior

// Item is the capability contract every displayable item satisfies.
//
// Element returns the opaque handle of the item's rendered surface. Pointer
// events are resolved back to items by comparing handles with ==, so handles
// must be comparable (pointers, ints, strings).
type Item[V comparable] interface {
	ID() string
	Value() V
	Disabled() bool
	SearchTerm() string
	Element() any
}

// Entry constrains the item type parameter of the controllers. Items are
// compared by identity and the zero value means "no item".
type Entry[V comparable] interface {
	comparable
	Item[V]
}

// FocusMode selects the DOM focus strategy of a widget.
type FocusMode int

const (
	// Roving moves the tab stop between items (tabindex 0 on the active item).
	Roving FocusMode = iota
	// ActiveDescendant keeps focus on the container and points at the active
	// item through aria-activedescendant.
	ActiveDescendant
)

func (m FocusMode) String() string {
	switch m {
	case ActiveDescendant:
		return "activedescendant"
	default:
		return "roving"
	}
}

// SelectionMode controls whether moving focus also moves the selection.
type SelectionMode int

const (
	// Follow selects the active item whenever focus moves.
	Follow SelectionMode = iota
	// Explicit changes the selection only on explicit toggles.
	Explicit
)

func (m SelectionMode) String() string {
	switch m {
	case Explicit:
		return "explicit"
	default:
		return "follow"
	}
}

// Orientation is the main axis of a widget.
type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Direction is the text direction of a widget.
type Direction int

const (
	LTR Direction = iota
	RTL
)

func (d Direction) String() string {
	if d == RTL {
		return "rtl"
	}
	return "ltr"
}

// indexOf returns the position of item in items, or -1.
func indexOf[T comparable](items []T, item T) int {
	for i, it := range items {
		if it == item {
			return i
		}
	}
	return -1
}

// Static returns an accessor that always yields v. It is a convenience for
// callers that wire constant configuration into a controller.
func Static[X any](v X) func() X {
	return func() X { return v }
}
