package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// row is one rendered option or treeitem.
type row struct {
	id       string
	label    string
	level    int // 0 outside trees
	branch   bool
	expanded bool
	active   bool
	selected bool
	disabled bool
	element  any
}

func (m Model) listRows() []row {
	items := m.listbox.Items()
	rows := make([]row, 0, len(items))
	for _, it := range items {
		rows = append(rows, row{
			id:       it.ID(),
			label:    it.SearchTerm(),
			active:   m.listbox.ItemActive(it),
			selected: m.listbox.ItemSelected(it),
			disabled: it.Disabled(),
			element:  it.Element(),
		})
	}
	return rows
}

func (m Model) treeRows() []row {
	items := m.tree.VisibleItems()
	rows := make([]row, 0, len(items))
	for _, it := range items {
		selected, ok := it.Selected()
		if !ok {
			selected = it.Current() != ""
		}
		rows = append(rows, row{
			id:       it.ID(),
			label:    it.SearchTerm(),
			level:    it.Level(),
			branch:   it.HasChildren(),
			expanded: it.Expanded(),
			active:   it.Active(),
			selected: selected,
			disabled: it.Disabled(),
			element:  it.Element(),
		})
	}
	return rows
}

func (m Model) popupRows() []row {
	lb := m.popup.Listbox()
	items := lb.Items()
	rows := make([]row, 0, len(items))
	for _, it := range items {
		rows = append(rows, row{
			id:       it.ID(),
			label:    it.SearchTerm(),
			active:   lb.ItemActive(it),
			selected: lb.ItemSelected(it),
			disabled: it.Disabled(),
			element:  it.Element(),
		})
	}
	return rows
}

func activeRow(rows []row) int {
	for i, r := range rows {
		if r.active {
			return i
		}
	}
	return -1
}

func (m Model) renderRows(rows []row, multi bool) string {
	if len(rows) == 0 {
		return m.theme.MutedText.Render("  (no items)")
	}
	start, end := window(len(rows), activeRow(rows), m.bodyHeight())
	lines := make([]string, 0, end-start)
	for _, r := range rows[start:end] {
		lines = append(lines, m.renderRow(r, multi))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderRow(r row, multi bool) string {
	var b strings.Builder
	if r.active {
		b.WriteString(markerActive + " ")
	} else {
		b.WriteString("  ")
	}
	if r.level > 1 {
		b.WriteString(strings.Repeat("  ", r.level-1))
	}
	if r.level > 0 {
		switch {
		case r.branch && r.expanded:
			b.WriteString(markerExpanded + " ")
		case r.branch:
			b.WriteString(markerCollapsed + " ")
		default:
			b.WriteString("  ")
		}
	}
	switch {
	case multi && r.selected:
		b.WriteString(m.theme.Marker.Render(markerChecked) + " ")
	case multi:
		b.WriteString(markerUnchecked + " ")
	case r.selected:
		b.WriteString(m.theme.Marker.Render(markerTick) + " ")
	default:
		b.WriteString("  ")
	}

	prefix := b.String()
	label := r.label
	if m.width > 0 {
		room := m.width - lipgloss.Width(prefix) - 1
		label = truncateRunesHelper(label, room, "…")
		if r.active {
			label = padRight(label, room)
		}
	}

	style := m.theme.Base
	switch {
	case r.disabled:
		style = m.theme.Disabled
	case r.active:
		style = m.theme.Active
	}
	return prefix + style.Render(label)
}
