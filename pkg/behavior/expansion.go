package behavior

// Expandable is the view of an item an ExpansionManager needs.
type Expandable interface {
	ID() string
	Disabled() bool
	// HasChildren reports whether the item can be expanded at all.
	HasChildren() bool
}

// ExpansionInputs are the accessors an ExpansionManager reads.
type ExpansionInputs struct {
	// MultiExpandable reports whether siblings expand independently. When
	// false, opening one item closes the others in the group.
	MultiExpandable func() bool
	// Disabled reports whether the owning widget is disabled.
	Disabled func() bool
}

// ExpansionManager holds the open/closed state of one group of sibling
// items, keyed by item id so it survives the host re-creating its items.
type ExpansionManager struct {
	in       ExpansionInputs
	expanded map[string]bool
	order    []string
}

// NewExpansionManager creates an expansion manager with nothing expanded.
func NewExpansionManager(in ExpansionInputs) *ExpansionManager {
	if in.MultiExpandable == nil {
		in.MultiExpandable = Static(true)
	}
	if in.Disabled == nil {
		in.Disabled = Static(false)
	}
	return &ExpansionManager{in: in, expanded: make(map[string]bool)}
}

// IsExpandable reports whether item can change expansion state.
func (m *ExpansionManager) IsExpandable(item Expandable) bool {
	return !m.in.Disabled() && !item.Disabled() && item.HasChildren()
}

// IsExpanded reports whether item is open.
func (m *ExpansionManager) IsExpanded(item Expandable) bool {
	return m.expanded[item.ID()]
}

// ExpandedIDs returns the ids of open items in the order they were opened.
func (m *ExpansionManager) ExpandedIDs() []string {
	out := make([]string, 0, len(m.order))
	for _, id := range m.order {
		if m.expanded[id] {
			out = append(out, id)
		}
	}
	return out
}

// Open expands item. In a single-expandable group the previously open
// siblings in group are closed first. It returns whether state changed.
func (m *ExpansionManager) Open(item Expandable, group []Expandable) bool {
	if !m.IsExpandable(item) || m.IsExpanded(item) {
		return false
	}
	if !m.in.MultiExpandable() {
		m.CloseAll(group)
	}
	m.expanded[item.ID()] = true
	m.order = append(m.order, item.ID())
	return true
}

// Close collapses item. It returns whether state changed.
func (m *ExpansionManager) Close(item Expandable) bool {
	if !m.IsExpandable(item) || !m.IsExpanded(item) {
		return false
	}
	delete(m.expanded, item.ID())
	for i, id := range m.order {
		if id == item.ID() {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return true
}

// Toggle flips the expansion state of item.
func (m *ExpansionManager) Toggle(item Expandable, group []Expandable) bool {
	if m.IsExpanded(item) {
		return m.Close(item)
	}
	return m.Open(item, group)
}

// OpenAll expands every item of group. Single-expandable groups ignore it.
func (m *ExpansionManager) OpenAll(group []Expandable) {
	if !m.in.MultiExpandable() {
		return
	}
	for _, it := range group {
		m.Open(it, group)
	}
}

// CloseAll collapses every item of group.
func (m *ExpansionManager) CloseAll(group []Expandable) {
	for _, it := range group {
		m.Close(it)
	}
}

// SetExpanded forces the stored state of id without expandability checks.
// Hosts use it to restore state after rebuilding their items.
func (m *ExpansionManager) SetExpanded(id string, open bool) {
	if open == m.expanded[id] {
		return
	}
	if open {
		m.expanded[id] = true
		m.order = append(m.order, id)
		return
	}
	delete(m.expanded, id)
	for i, x := range m.order {
		if x == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}

// ExpansionControl binds one item to the manager of its sibling group.
type ExpansionControl struct {
	item    Expandable
	manager *ExpansionManager
	group   func() []Expandable
}

// NewExpansionControl creates the control of item inside manager. group
// returns the item's current siblings, including the item itself.
func NewExpansionControl(item Expandable, manager *ExpansionManager, group func() []Expandable) *ExpansionControl {
	if group == nil {
		group = func() []Expandable { return []Expandable{item} }
	}
	return &ExpansionControl{item: item, manager: manager, group: group}
}

// Open expands the item.
func (c *ExpansionControl) Open() bool { return c.manager.Open(c.item, c.group()) }

// Close collapses the item.
func (c *ExpansionControl) Close() bool { return c.manager.Close(c.item) }

// Toggle flips the item's state.
func (c *ExpansionControl) Toggle() bool { return c.manager.Toggle(c.item, c.group()) }

// IsExpanded reports whether the item is open.
func (c *ExpansionControl) IsExpanded() bool { return c.manager.IsExpanded(c.item) }

// IsExpandable reports whether the item can be opened or closed.
func (c *ExpansionControl) IsExpandable() bool { return c.manager.IsExpandable(c.item) }
