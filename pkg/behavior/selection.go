package behavior

// SelectionInputs are the accessors a Selection controller reads.
type SelectionInputs[T Entry[V], V comparable] struct {
	Focus *Focus[T, V]
	// Multi reports whether more than one value may be selected.
	Multi func() bool
	// Disabled reports whether the whole widget is disabled. A disabled
	// widget rejects every selection mutation.
	Disabled func() bool
	// AllItems is every item of the widget in document order, visible or
	// not. Values that do not belong to any of them are dropped by SetValue.
	// Defaults to the focus controller's visible items.
	AllItems func() []T
}

// Selection mutates the ordered value set of a widget. Values keep their
// insertion order and never repeat.
type Selection[T Entry[V], V comparable] struct {
	in       SelectionInputs[T, V]
	values   []V
	set      map[V]bool // Mirrors values
	anchor   T
	rangeEnd T
}

// NewSelection creates a selection controller with an empty value set.
func NewSelection[T Entry[V], V comparable](in SelectionInputs[T, V]) *Selection[T, V] {
	if in.Multi == nil {
		in.Multi = Static(false)
	}
	if in.Disabled == nil {
		in.Disabled = Static(false)
	}
	if in.AllItems == nil {
		in.AllItems = in.Focus.Items
	}
	return &Selection[T, V]{in: in, set: make(map[V]bool)}
}

// replace installs out as the value set.
func (s *Selection[T, V]) replace(out []V) {
	s.values = out
	s.set = make(map[V]bool, len(out))
	for _, v := range out {
		s.set[v] = true
	}
}

func (s *Selection[T, V]) add(v V) {
	if s.set == nil {
		s.set = make(map[V]bool)
	}
	s.values = append(s.values, v)
	s.set[v] = true
}

// Value returns a copy of the current value set in selection order.
func (s *Selection[T, V]) Value() []V {
	out := make([]V, len(s.values))
	copy(out, s.values)
	return out
}

// SetValue replaces the value set. Duplicates and values that match no item
// are dropped, and a single-select widget keeps only the first value.
func (s *Selection[T, V]) SetValue(values []V) {
	known := make(map[V]bool)
	for _, it := range s.in.AllItems() {
		known[it.Value()] = true
	}
	seen := make(map[V]bool, len(values))
	out := make([]V, 0, len(values))
	for _, v := range values {
		if seen[v] || !known[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
		if !s.in.Multi() {
			break
		}
	}
	s.replace(out)
}

// Contains reports whether v is in the value set.
func (s *Selection[T, V]) Contains(v V) bool {
	return s.set[v]
}

// IsSelected reports whether item's value is in the value set.
func (s *Selection[T, V]) IsSelected(item T) bool {
	var zero T
	if item == zero {
		return false
	}
	return s.Contains(item.Value())
}

// Anchor returns the fixed endpoint of range selection, if one is set.
func (s *Selection[T, V]) Anchor() (T, bool) {
	var zero T
	return s.anchor, s.anchor != zero
}

// SetAnchor makes item the range anchor and restarts the range there.
func (s *Selection[T, V]) SetAnchor(item T) {
	s.anchor = item
	s.rangeEnd = item
}

// ClearAnchor forgets the range anchor.
func (s *Selection[T, V]) ClearAnchor() {
	var zero T
	s.anchor = zero
	s.rangeEnd = zero
}

// BeginRangeSelection anchors range selection at the active item.
func (s *Selection[T, V]) BeginRangeSelection() {
	s.SetAnchor(s.in.Focus.ActiveItem())
}

func (s *Selection[T, V]) resolve(item T) T {
	var zero T
	if item == zero {
		return s.in.Focus.ActiveItem()
	}
	return item
}

// canAdd reports whether item may enter the value set.
func (s *Selection[T, V]) canAdd(item T) bool {
	var zero T
	if item == zero || s.in.Disabled() || item.Disabled() {
		return false
	}
	return s.in.Focus.IsFocusable(item)
}

// canAddAmong is canAdd against a precomputed visible set, for operations
// that test every visible item.
func (s *Selection[T, V]) canAddAmong(item T, visible map[T]bool) bool {
	var zero T
	if item == zero || s.in.Disabled() || item.Disabled() {
		return false
	}
	return visible[item]
}

func visibleSet[T comparable](items []T) map[T]bool {
	set := make(map[T]bool, len(items))
	for _, it := range items {
		set[it] = true
	}
	return set
}

// Select adds item (the active item when item is the zero T) to the value
// set. A single-select widget drops its previous value first. When anchor is
// true the item also becomes the range anchor.
func (s *Selection[T, V]) Select(item T, anchor bool) {
	item = s.resolve(item)
	if !s.canAdd(item) {
		return
	}
	s.insert(item, anchor)
}

// insert adds an item that already passed the selectability checks.
func (s *Selection[T, V]) insert(item T, anchor bool) {
	if s.Contains(item.Value()) {
		return
	}
	if !s.in.Multi() {
		s.DeselectAll()
		if len(s.values) > 0 {
			return
		}
	}
	if anchor {
		s.SetAnchor(item)
	}
	s.add(item.Value())
}

// Deselect removes item (default: the active item) from the value set.
// Disabled items keep their state.
func (s *Selection[T, V]) Deselect(item T) {
	var zero T
	item = s.resolve(item)
	if item == zero || s.in.Disabled() || item.Disabled() {
		return
	}
	s.remove(item.Value())
}

func (s *Selection[T, V]) remove(v V) {
	if !s.set[v] {
		return
	}
	delete(s.set, v)
	for i, x := range s.values {
		if x == v {
			s.values = append(s.values[:i], s.values[i+1:]...)
			return
		}
	}
}

// Toggle flips the membership of item (default: the active item) and
// re-anchors range selection at it.
func (s *Selection[T, V]) Toggle(item T) {
	var zero T
	item = s.resolve(item)
	if item == zero {
		return
	}
	if s.IsSelected(item) {
		s.Deselect(item)
		if !s.IsSelected(item) && !s.in.Disabled() {
			s.SetAnchor(item)
		}
		return
	}
	s.Select(item, true)
}

// ToggleOne deselects item when it is selected and otherwise makes it the
// only selected item.
func (s *Selection[T, V]) ToggleOne(item T) {
	var zero T
	item = s.resolve(item)
	if item == zero {
		return
	}
	if s.IsSelected(item) {
		s.Deselect(item)
		return
	}
	s.SelectOne(item)
}

// SelectOne makes item (default: the active item) the only selected item.
func (s *Selection[T, V]) SelectOne(item T) {
	item = s.resolve(item)
	if !s.canAdd(item) {
		return
	}
	s.DeselectAll()
	if len(s.values) > 0 && !s.in.Multi() {
		// A disabled item kept its value; single select cannot add another.
		return
	}
	s.Select(item, true)
}

// SelectAll selects every selectable visible item and anchors range
// selection at the active item. Single-select widgets ignore it.
func (s *Selection[T, V]) SelectAll() {
	if !s.in.Multi() || s.in.Disabled() {
		return
	}
	items := s.in.Focus.Items()
	visible := visibleSet(items)
	for _, it := range items {
		if s.canAddAmong(it, visible) && !s.Contains(it.Value()) {
			s.add(it.Value())
		}
	}
	s.BeginRangeSelection()
}

// DeselectAll clears the value set except for values held by disabled items.
// Values whose item is not currently visible are removed as well.
func (s *Selection[T, V]) DeselectAll() {
	if s.in.Disabled() {
		return
	}
	disabled := make(map[V]bool)
	for _, it := range s.in.Focus.Items() {
		if it.Disabled() && s.set[it.Value()] {
			disabled[it.Value()] = true
		}
	}
	var kept []V
	for _, v := range s.values {
		if disabled[v] {
			kept = append(kept, v)
		}
	}
	s.replace(kept)
}

// ToggleAll selects every selectable visible item, or clears the selection
// when all of them are already selected.
func (s *Selection[T, V]) ToggleAll() {
	items := s.in.Focus.Items()
	visible := visibleSet(items)
	selectable := 0
	allSelected := true
	for _, it := range items {
		if !s.canAddAmong(it, visible) {
			continue
		}
		selectable++
		if !s.IsSelected(it) {
			allSelected = false
		}
	}
	if selectable > 0 && allSelected {
		s.DeselectAll()
		return
	}
	s.SelectAll()
}

// SelectRange selects the inclusive range between the anchor and the active
// item over the current visible sequence. Items of the previous range that
// fall outside the new one are deselected, so re-applying the same range is
// a no-op. Disabled items inside the range are never added.
func (s *Selection[T, V]) SelectRange() {
	var zero T
	items := s.in.Focus.Items()
	active := s.in.Focus.ActiveIndex()
	if active < 0 || s.in.Disabled() {
		return
	}
	anchor := indexOf(items, s.anchor)
	if s.anchor == zero || anchor < 0 {
		s.SetAnchor(items[active])
		anchor = active
	}

	next := between(items, anchor, active)
	inNext := visibleSet(next)
	if end := indexOf(items, s.rangeEnd); s.rangeEnd != zero && end >= 0 {
		for _, it := range between(items, anchor, end) {
			if !inNext[it] {
				s.Deselect(it)
			}
		}
	}
	visible := visibleSet(items)
	for _, it := range next {
		if s.canAddAmong(it, visible) {
			s.insert(it, false)
		}
	}
	s.rangeEnd = items[active]
}

// between returns items[from..to] inclusive, ordered from `from` toward `to`.
func between[T any](items []T, from, to int) []T {
	if from < 0 || to < 0 {
		return nil
	}
	var out []T
	if from <= to {
		for i := from; i <= to; i++ {
			out = append(out, items[i])
		}
		return out
	}
	for i := from; i >= to; i-- {
		out = append(out, items[i])
	}
	return out
}
