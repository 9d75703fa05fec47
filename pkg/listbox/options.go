package listbox

import (
	"time"

	"github.com/vanderheijden86/ariapatterns/pkg/behavior"
	"github.com/vanderheijden86/ariapatterns/pkg/keys"
)

// Options is the configuration of a listbox. It is a plain comparable value:
// the listbox rebuilds its keymap only when the options change.
type Options struct {
	Orientation    behavior.Orientation
	Direction      behavior.Direction
	Multi          bool
	Wrap           bool
	SkipDisabled   bool
	FocusMode      behavior.FocusMode
	SelectionMode  behavior.SelectionMode
	TypeaheadDelay time.Duration
	Disabled       bool
	Readonly       bool
}

// DefaultOptions returns a vertical, single-select, follow-focus listbox that
// wraps and skips disabled items.
func DefaultOptions() Options {
	return Options{
		Orientation:    behavior.Vertical,
		Direction:      behavior.LTR,
		Wrap:           true,
		SkipDisabled:   true,
		FocusMode:      behavior.Roving,
		SelectionMode:  behavior.Follow,
		TypeaheadDelay: behavior.DefaultTypeaheadDelay,
	}
}

// FollowFocus reports whether selection follows focus.
func (o Options) FollowFocus() bool {
	return o.SelectionMode == behavior.Follow
}

// PrevKey is the key that moves focus backward.
func (o Options) PrevKey() string {
	if o.Orientation == behavior.Vertical {
		return keys.ArrowUp
	}
	if o.Direction == behavior.RTL {
		return keys.ArrowRight
	}
	return keys.ArrowLeft
}

// NextKey is the key that moves focus forward.
func (o Options) NextKey() string {
	if o.Orientation == behavior.Vertical {
		return keys.ArrowDown
	}
	if o.Direction == behavior.RTL {
		return keys.ArrowLeft
	}
	return keys.ArrowRight
}
