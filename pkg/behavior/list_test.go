package behavior

import "testing"

func TestListFollowFocus(t *testing.T) {
	its := items("A", "B", "C")
	l := newSettings(its).list()
	l.SetDefaultState()

	l.Next(SelectOpts{SelectOne: true})
	if got := l.Selection.Value(); !equal(got, []string{"b"}) {
		t.Errorf("Value = %v, want [b]", got)
	}
}

func TestListRangeExtension(t *testing.T) {
	its := items("A", "B", "C")
	s := newSettings(its)
	s.multi = true
	l := s.list()
	l.SetDefaultState()

	shift := SelectOpts{SelectRange: true}
	l.Next(shift)
	l.Next(shift)
	if got := l.Selection.Value(); !equal(got, []string{"a", "b", "c"}) {
		t.Fatalf("Value = %v, want [a b c]", got)
	}
	if l.Next(shift) {
		t.Error("range extension wrapped past the end")
	}
	l.Prev(shift)
	if got := l.Selection.Value(); !equal(got, []string{"a", "b"}) {
		t.Errorf("Value after shrinking = %v, want [a b]", got)
	}
	if l.InSelection() {
		t.Error("still in selection after the move")
	}
}

func TestListGotoToggleActive(t *testing.T) {
	its := items("A", "B")
	s := newSettings(its)
	s.multi = true
	l := s.list()

	l.Goto(its[0], SelectOpts{Toggle: true})
	if l.Goto(its[0], SelectOpts{Toggle: true}) {
		t.Error("Goto on the active item reported a move")
	}
	if len(l.Selection.Value()) != 0 {
		t.Errorf("second click should deselect, got %v", l.Selection.Value())
	}
}

func TestListSetDefaultState(t *testing.T) {
	its := items("A", "B", "C")
	its[0].disabled = true
	s := newSettings(its)
	l := s.list()

	l.SetDefaultState()
	if activeID(l) != "b" {
		t.Errorf("default = %q, want b", activeID(l))
	}

	l = s.list()
	l.Selection.SetValue([]string{"c"})
	l.SetDefaultState()
	if activeID(l) != "c" {
		t.Errorf("default with selection = %q, want c", activeID(l))
	}

	l.Focus.Focus(its[1])
	l.SetDefaultState()
	if activeID(l) != "b" {
		t.Error("SetDefaultState replaced an existing active item")
	}
}

func TestListSearchSelects(t *testing.T) {
	its := items("Apple", "Banana")
	l := newSettings(its).list()

	l.Search("b", SelectOpts{SelectOne: true})
	if got := l.Selection.Value(); !equal(got, []string{"banana"}) {
		t.Errorf("Value = %v, want [banana]", got)
	}
}
