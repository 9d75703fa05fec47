package tree

import (
	json "github.com/goccy/go-json"
)

// ItemState is the derived state of one visible row.
type ItemState struct {
	ID       string `json:"id"`
	Level    int    `json:"level"`
	SetSize  int    `json:"setsize"`
	PosInSet int    `json:"posinset"`
	Tabindex int    `json:"tabindex"`
	// Selected is omitted in navigation mode.
	Selected   *bool  `json:"selected,omitempty"`
	Current    string `json:"current,omitempty"`
	Expandable bool   `json:"expandable,omitempty"`
	Expanded   bool   `json:"expanded,omitempty"`
	Active     bool   `json:"active,omitempty"`
	Disabled   bool   `json:"disabled,omitempty"`
}

// Snapshot is the derived state of the tree at one instant. Only visible rows
// are listed.
type Snapshot[V comparable] struct {
	Tabindex         int         `json:"tabindex"`
	ActiveDescendant string      `json:"activedescendant,omitempty"`
	Active           string      `json:"active,omitempty"`
	Anchor           string      `json:"anchor,omitempty"`
	Value            []V         `json:"value"`
	Items            []ItemState `json:"items"`
}

// JSON encodes the snapshot with indentation.
func (s Snapshot[V]) JSON() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// Snapshot captures the tree's derived state.
func (t *Tree[V]) Snapshot() Snapshot[V] {
	s := Snapshot[V]{
		Tabindex: t.Tabindex(),
		Value:    t.Value(),
	}
	s.ActiveDescendant, _ = t.ActiveDescendant()
	if a := t.ActiveItem(); a != nil {
		s.Active = a.ID()
	}
	if a, ok := t.list.Selection.Anchor(); ok {
		s.Anchor = a.ID()
	}
	for _, n := range t.VisibleItems() {
		st := ItemState{
			ID:         n.ID(),
			Level:      n.Level(),
			SetSize:    n.SetSize(),
			PosInSet:   n.PosInSet(),
			Tabindex:   n.Tabindex(),
			Current:    n.Current(),
			Expandable: n.HasChildren(),
			Expanded:   n.Expanded(),
			Active:     n.Active(),
			Disabled:   n.Disabled(),
		}
		if sel, ok := n.Selected(); ok {
			st.Selected = &sel
		}
		s.Items = append(s.Items, st)
	}
	return s
}
