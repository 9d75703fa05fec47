package behavior

import "testing"

type node struct {
	id       string
	disabled bool
	parent   bool
}

func (n *node) ID() string        { return n.id }
func (n *node) Disabled() bool    { return n.disabled }
func (n *node) HasChildren() bool { return n.parent }

func group(ns ...*node) []Expandable {
	out := make([]Expandable, len(ns))
	for i, n := range ns {
		out[i] = n
	}
	return out
}

func TestExpansionMulti(t *testing.T) {
	a, b := &node{id: "a", parent: true}, &node{id: "b", parent: true}
	m := NewExpansionManager(ExpansionInputs{})
	g := group(a, b)

	m.Open(a, g)
	m.Open(b, g)
	if got := m.ExpandedIDs(); !equal(got, []string{"a", "b"}) {
		t.Errorf("ExpandedIDs = %v, want [a b]", got)
	}
	if !m.Toggle(a, g) || m.IsExpanded(a) {
		t.Error("Toggle did not close a")
	}
}

func TestExpansionSingle(t *testing.T) {
	a, b := &node{id: "a", parent: true}, &node{id: "b", parent: true}
	m := NewExpansionManager(ExpansionInputs{MultiExpandable: Static(false)})
	g := group(a, b)

	m.Open(a, g)
	m.Open(b, g)
	if got := m.ExpandedIDs(); !equal(got, []string{"b"}) {
		t.Errorf("ExpandedIDs = %v, want [b]", got)
	}
	m.OpenAll(g)
	if got := m.ExpandedIDs(); !equal(got, []string{"b"}) {
		t.Errorf("OpenAll in single mode changed state: %v", got)
	}
}

func TestExpansionNotExpandable(t *testing.T) {
	leaf := &node{id: "leaf"}
	off := &node{id: "off", parent: true, disabled: true}
	disabled := false
	m := NewExpansionManager(ExpansionInputs{Disabled: func() bool { return disabled }})

	if m.Open(leaf, nil) || m.Open(off, nil) {
		t.Error("opened an item that cannot expand")
	}

	p := &node{id: "p", parent: true}
	m.Open(p, nil)
	disabled = true
	if m.Close(p) {
		t.Error("disabled widget closed an item")
	}
	if !m.IsExpanded(p) {
		t.Error("state lost while disabled")
	}
}

func TestExpansionSetExpanded(t *testing.T) {
	m := NewExpansionManager(ExpansionInputs{})
	m.SetExpanded("x", true)
	m.SetExpanded("y", true)
	m.SetExpanded("x", false)
	if got := m.ExpandedIDs(); !equal(got, []string{"y"}) {
		t.Errorf("ExpandedIDs = %v, want [y]", got)
	}
}

func TestExpansionControl(t *testing.T) {
	a, b := &node{id: "a", parent: true}, &node{id: "b", parent: true}
	m := NewExpansionManager(ExpansionInputs{MultiExpandable: Static(false)})
	ca := NewExpansionControl(a, m, func() []Expandable { return group(a, b) })
	cb := NewExpansionControl(b, m, func() []Expandable { return group(a, b) })

	ca.Open()
	cb.Toggle()
	if ca.IsExpanded() || !cb.IsExpanded() {
		t.Error("opening b should close its sibling a")
	}
	if !ca.IsExpandable() {
		t.Error("a should be expandable")
	}
}
