package tree

import (
	"github.com/vanderheijden86/ariapatterns/pkg/behavior"
	"github.com/vanderheijden86/ariapatterns/pkg/keys"
	"github.com/vanderheijden86/ariapatterns/pkg/listbox"
)

// Options configures a tree. The list settings behave as they do for a
// listbox.
type Options struct {
	listbox.Options

	// Nav turns the tree into a navigation tree: selection is reported
	// through aria-current rather than aria-selected.
	Nav bool
	// CurrentType is the aria-current token used in navigation mode.
	CurrentType string
	// MultiExpandable lets siblings stay open at the same time.
	MultiExpandable bool
}

// DefaultOptions returns a vertical, single-select, follow-focus tree whose
// siblings expand independently.
func DefaultOptions() Options {
	return Options{
		Options:         listbox.DefaultOptions(),
		CurrentType:     "page",
		MultiExpandable: true,
	}
}

// ExpandKey opens the active item or moves into it.
func (o Options) ExpandKey() string {
	if o.Orientation == behavior.Horizontal {
		return keys.ArrowDown
	}
	if o.Direction == behavior.RTL {
		return keys.ArrowLeft
	}
	return keys.ArrowRight
}

// CollapseKey closes the active item or moves to its parent.
func (o Options) CollapseKey() string {
	if o.Orientation == behavior.Horizontal {
		return keys.ArrowUp
	}
	if o.Direction == behavior.RTL {
		return keys.ArrowRight
	}
	return keys.ArrowLeft
}
