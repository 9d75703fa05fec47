package combobox

import (
	json "github.com/goccy/go-json"
)

// Snapshot is the derived state of a combobox at one instant.
type Snapshot[V comparable] struct {
	Expanded         bool     `json:"expanded"`
	Autocomplete     string   `json:"autocomplete"`
	ActiveDescendant string   `json:"activedescendant,omitempty"`
	Input            Input    `json:"input"`
	Value            *V       `json:"value,omitempty"`
	Options          []string `json:"options,omitempty"` // Ids shown while expanded
}

// JSON encodes the snapshot with indentation.
func (s Snapshot[V]) JSON() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// Snapshot captures the combobox's derived state.
func (c *Combobox[V]) Snapshot() Snapshot[V] {
	s := Snapshot[V]{
		Expanded:     c.expanded,
		Autocomplete: c.Autocomplete(),
		Input:        c.input,
	}
	s.ActiveDescendant, _ = c.ActiveDescendant()
	if v, ok := c.Value(); ok {
		s.Value = &v
	}
	if c.expanded && c.popup != nil {
		for _, it := range c.popup.Items() {
			s.Options = append(s.Options, it.ID())
		}
	}
	return s
}
