package listbox

import (
	json "github.com/goccy/go-json"
)

// ItemState is the derived state of one option as a host would bind it.
type ItemState struct {
	ID       string `json:"id"`
	Tabindex int    `json:"tabindex"`
	Selected bool   `json:"selected"`
	Active   bool   `json:"active,omitempty"`
	Disabled bool   `json:"disabled,omitempty"`
}

// Snapshot is the derived state of the whole listbox at one instant.
type Snapshot[V comparable] struct {
	Tabindex         int         `json:"tabindex"`
	ActiveDescendant string      `json:"activedescendant,omitempty"`
	Active           string      `json:"active,omitempty"`
	Anchor           string      `json:"anchor,omitempty"`
	Typing           bool        `json:"typing,omitempty"`
	Value            []V         `json:"value"`
	Items            []ItemState `json:"items"`
}

// JSON encodes the snapshot with indentation.
func (s Snapshot[V]) JSON() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// Snapshot captures the listbox's derived state.
func (l *Listbox[T, V]) Snapshot() Snapshot[V] {
	var zero T
	s := Snapshot[V]{
		Tabindex: l.Tabindex(),
		Typing:   l.list.Typeahead.IsTyping(),
		Value:    l.Value(),
	}
	s.ActiveDescendant, _ = l.ActiveDescendant()
	if a := l.ActiveItem(); a != zero {
		s.Active = a.ID()
	}
	if a, ok := l.list.Selection.Anchor(); ok {
		s.Anchor = a.ID()
	}
	for _, it := range l.items() {
		s.Items = append(s.Items, ItemState{
			ID:       it.ID(),
			Tabindex: l.ItemTabindex(it),
			Selected: l.ItemSelected(it),
			Active:   l.ItemActive(it),
			Disabled: it.Disabled(),
		})
	}
	return s
}
