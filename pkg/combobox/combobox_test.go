package combobox_test

import (
	"testing"

	"github.com/vanderheijden86/ariapatterns/pkg/combobox"
	"github.com/vanderheijden86/ariapatterns/pkg/keys"
	"github.com/vanderheijden86/ariapatterns/pkg/model"
	"github.com/vanderheijden86/ariapatterns/pkg/testutil"
	"github.com/vanderheijden86/ariapatterns/pkg/tree"
)

const inputEl = "input"

func newListCombobox(mode combobox.FilterMode, labels ...string) (*combobox.Combobox[string], []*model.Node) {
	nodes := testutil.Flat(labels...)
	popup := combobox.NewListboxPopup[*model.Node, string](
		func() []*model.Node { return nodes }, combobox.PopupOptions(), nil)
	cb := combobox.New[string](combobox.Options{FilterMode: mode}, inputEl)
	cb.AttachListbox(popup)
	return cb, nodes
}

func newTreeCombobox(t *testing.T, mode combobox.FilterMode) (*combobox.Combobox[string], *tree.Tree[string]) {
	t.Helper()
	tr, err := tree.New(model.Sources(testutil.Fruits()), tree.Options{
		Options:         combobox.PopupOptions(),
		MultiExpandable: true,
	})
	if err != nil {
		t.Fatalf("tree.New: %v", err)
	}
	cb := combobox.New[string](combobox.Options{FilterMode: mode}, inputEl)
	cb.AttachTree(combobox.NewTreePopup(tr, nil))
	return cb, tr
}

func assertValue(t *testing.T, cb *combobox.Combobox[string], want string) {
	t.Helper()
	v, ok := cb.Value()
	switch {
	case want == "" && ok:
		t.Errorf("expected no value, got %q", v)
	case want != "" && (!ok || v != want):
		t.Errorf("value = %q (%v), want %q", v, ok, want)
	}
}

func assertInput(t *testing.T, cb *combobox.Combobox[string], text string, start, end int) {
	t.Helper()
	want := combobox.Input{Text: text, SelectionStart: start, SelectionEnd: end}
	if got := cb.Input(); got != want {
		t.Errorf("input = %+v, want %+v", got, want)
	}
}

func TestAutoSelectTyping(t *testing.T) {
	cb, _ := newListCombobox(combobox.AutoSelect, "Apple", "Apricot", "Banana")
	cb.OnFocusIn()
	cb.OnInput("Apr", false)

	if !cb.Expanded() {
		t.Error("typing did not open the popup")
	}
	assertValue(t, cb, "apricot")
	if got := cb.CommittedText(); got != "Apricot" {
		t.Errorf("CommittedText = %q, want Apricot", got)
	}
	if id, ok := cb.ActiveDescendant(); !ok || id != "apricot" {
		t.Errorf("ActiveDescendant = %q, %v", id, ok)
	}

	cb.OnFocusOut(false)
	if cb.Expanded() || cb.Focused() {
		t.Error("focus out did not close")
	}
	assertInput(t, cb, "Apricot", 7, 7)
	if _, ok := cb.ActiveDescendant(); ok {
		t.Error("closed combobox reported an activedescendant")
	}
}

func TestAutoSelectNavigationSelects(t *testing.T) {
	cb, _ := newListCombobox(combobox.AutoSelect, "Apple", "Apricot", "Banana")

	cb.OnKeydown(keys.Press(keys.ArrowDown))
	assertValue(t, cb, "apple")
	cb.OnKeydown(keys.Press(keys.ArrowDown))
	assertValue(t, cb, "apricot")
	cb.OnKeydown(keys.Press(keys.Escape))
	assertInput(t, cb, "Apricot", 7, 7)
}

func TestHighlightCompletion(t *testing.T) {
	cb, _ := newListCombobox(combobox.Highlight, "Apple", "Apricot", "Banana")
	if cb.Autocomplete() != "both" {
		t.Errorf("Autocomplete = %q, want both", cb.Autocomplete())
	}

	cb.OnInput("ap", false)
	assertInput(t, cb, "apple", 2, 5)
	assertValue(t, cb, "apple")

	cb.OnKeydown(keys.Press(keys.ArrowDown))
	assertInput(t, cb, "apricot", 2, 7)
	assertValue(t, cb, "apricot")

	cb.OnInput("a", true)
	assertInput(t, cb, "a", 1, 1)
	assertValue(t, cb, "apple")

	cb.OnKeydown(keys.Press(keys.Enter))
	assertInput(t, cb, "Apple", 5, 5)
	if cb.Expanded() {
		t.Error("Enter did not close")
	}
}

func TestManualSelectsOnlyOnCommit(t *testing.T) {
	cb, _ := newListCombobox(combobox.Manual, "Apple", "Apricot", "Banana")
	if cb.Autocomplete() != "list" {
		t.Errorf("Autocomplete = %q, want list", cb.Autocomplete())
	}

	cb.OnInput("ap", false)
	assertValue(t, cb, "")
	cb.OnKeydown(keys.Press(keys.ArrowDown))
	cb.OnKeydown(keys.Press(keys.ArrowDown))
	assertValue(t, cb, "")

	cb.OnKeydown(keys.Press(keys.Enter))
	assertValue(t, cb, "apricot")
	assertInput(t, cb, "Apricot", 7, 7)
	if cb.Expanded() {
		t.Error("Enter did not close")
	}
}

func TestManualExactMatchOnBlur(t *testing.T) {
	cb, _ := newListCombobox(combobox.Manual, "Apple", "Apricot", "Banana")
	cb.OnFocusIn()
	cb.OnInput("apricot", false)

	cb.OnFocusOut(true)
	if !cb.Expanded() {
		t.Error("focus moving inside the container closed the popup")
	}

	cb.OnFocusOut(false)
	assertValue(t, cb, "apricot")
	assertInput(t, cb, "Apricot", 7, 7)
}

func TestManualNoMatchOnBlur(t *testing.T) {
	cb, _ := newListCombobox(combobox.Manual, "Apple", "Banana")
	cb.OnInput("app", false)
	cb.OnFocusOut(false)
	assertValue(t, cb, "")
	assertInput(t, cb, "app", 3, 3)
}

func TestClosedKeys(t *testing.T) {
	cb, _ := newListCombobox(combobox.Manual, "Apple", "Apricot", "Banana")

	cb.OnKeydown(keys.Press(keys.ArrowUp))
	if !cb.Expanded() {
		t.Fatal("ArrowUp did not open")
	}
	if id, _ := cb.ActiveDescendant(); id != "banana" {
		t.Errorf("active = %q, want banana", id)
	}
	cb.OnKeydown(keys.Press(keys.Escape))
	if cb.Expanded() {
		t.Fatal("Escape did not close")
	}

	cb.OnInput("ban", false)
	cb.OnKeydown(keys.Press(keys.Escape))
	cb.OnKeydown(keys.Press(keys.Escape))
	assertInput(t, cb, "", 0, 0)

	cb.OnKeydown(keys.Press(keys.ArrowDown))
	if id, _ := cb.ActiveDescendant(); id != "apple" {
		t.Errorf("active after clearing = %q, want apple", id)
	}
}

func TestFilterNarrowsPopup(t *testing.T) {
	cb, _ := newListCombobox(combobox.Manual, "Apple", "Apricot", "Banana")
	cb.OnInput("b", false)
	if got := len(cb.Popup().Items()); got != 1 {
		t.Errorf("shown items = %d, want 1", got)
	}
	cb.OnInput("", false)
	if got := len(cb.Popup().Items()); got != 3 {
		t.Errorf("shown items after clearing = %d, want 3", got)
	}
}

func TestPointer(t *testing.T) {
	cb, nodes := newListCombobox(combobox.Manual, "Apple", "Apricot", "Banana")

	if cb.OnPointerup(keys.Click(nodes[2])) {
		t.Error("click on a closed popup was handled")
	}
	cb.OnPointerup(keys.Click(inputEl))
	if !cb.Expanded() {
		t.Fatal("click on the input did not open")
	}
	cb.OnPointerup(keys.Click(nodes[2]))
	assertValue(t, cb, "banana")
	assertInput(t, cb, "Banana", 6, 6)
	if cb.Expanded() {
		t.Error("choosing an item did not close")
	}

	cb.OnPointerup(keys.Click(inputEl))
	cb.OnPointerup(keys.Click(inputEl))
	if cb.Expanded() {
		t.Error("second click on the input did not close")
	}
}

func TestReadonly(t *testing.T) {
	cb, nodes := newListCombobox(combobox.AutoSelect, "Apple", "Banana")
	cb.SetOptions(combobox.Options{FilterMode: combobox.AutoSelect, Readonly: true})

	cb.OnInput("b", false)
	assertInput(t, cb, "", 0, 0)
	cb.OnKeydown(keys.Press(keys.ArrowDown))
	cb.OnKeydown(keys.Press(keys.ArrowDown))
	assertValue(t, cb, "")
	cb.OnPointerup(keys.Click(nodes[0]))
	assertValue(t, cb, "")
}

func TestDisabled(t *testing.T) {
	cb, _ := newListCombobox(combobox.AutoSelect, "Apple")
	cb.SetOptions(combobox.Options{Disabled: true})
	if cb.OnKeydown(keys.Press(keys.ArrowDown)) || cb.Open() {
		t.Error("disabled combobox reacted")
	}
	cb.OnInput("a", false)
	assertValue(t, cb, "")
}

func TestNoPopup(t *testing.T) {
	cb := combobox.New[string](combobox.Options{}, inputEl)
	if cb.OnKeydown(keys.Press(keys.ArrowDown)) {
		t.Error("combobox without popup handled a key")
	}
	if _, ok := cb.Value(); ok || cb.CommittedText() != "" {
		t.Error("combobox without popup reported a value")
	}
}

func TestTreePopupFilter(t *testing.T) {
	cb, tr := newTreeCombobox(t, combobox.AutoSelect)
	cb.OnInput("straw", false)

	assertValue(t, cb, "strawberry")
	var ids []string
	for _, n := range tr.VisibleItems() {
		ids = append(ids, n.ID())
	}
	testutil.AssertValues(t, ids, "fruits", "berries", "strawberry")

	cb.OnKeydown(keys.Press(keys.Enter))
	assertInput(t, cb, "Strawberry", 10, 10)

	cb.OnInput("", false)
	if got := len(tr.VisibleItems()); got != 9 {
		t.Errorf("visible after clearing = %d, want 9", got)
	}
}

func TestTreePopupFilterSingleExpandable(t *testing.T) {
	nodes := []*model.Node{
		{NodeID: "a", Label: "A", Kids: []*model.Node{{NodeID: "apple", Label: "Apple"}}},
		{NodeID: "b", Label: "B", Kids: []*model.Node{{NodeID: "apricot", Label: "Apricot"}}},
	}
	tr, err := tree.New(model.Sources(nodes), tree.Options{Options: combobox.PopupOptions()})
	if err != nil {
		t.Fatalf("tree.New: %v", err)
	}
	popup := combobox.NewTreePopup(tr, nil)
	cb := combobox.New[string](combobox.Options{FilterMode: combobox.AutoSelect}, inputEl)
	cb.AttachTree(popup)

	visible := func() []string {
		var ids []string
		for _, n := range tr.VisibleItems() {
			ids = append(ids, n.ID())
		}
		return ids
	}

	cb.OnInput("Ap", false)
	assertValue(t, cb, "apple")
	testutil.AssertValues(t, visible(), "a", "apple", "b")
	if a := tr.ActiveItem(); a == nil || a.ID() != "apple" {
		t.Fatalf("active = %v, want apple", a)
	}

	cb.OnInput("Apr", false)
	assertValue(t, cb, "apricot")
	testutil.AssertValues(t, visible(), "b", "apricot")

	matches := popup.Filter("Ap")
	if len(matches) != 1 || matches[0].Value() != "apple" {
		t.Errorf("Filter returned unreachable matches: %d", len(matches))
	}
}

func TestTreePopupExpansionKeys(t *testing.T) {
	cb, tr := newTreeCombobox(t, combobox.Manual)
	fruits, _ := tr.Item("fruits")

	cb.OnKeydown(keys.Press(keys.ArrowDown))
	cb.OnKeydown(keys.Press(keys.ArrowRight))
	if !fruits.Expanded() {
		t.Fatal("ArrowRight did not expand")
	}
	cb.OnKeydown(keys.Press(keys.ArrowRight))
	if id, _ := cb.ActiveDescendant(); id != "apple" {
		t.Errorf("active = %q, want apple", id)
	}
	cb.OnKeydown(keys.Press(keys.ArrowLeft))
	if id, _ := cb.ActiveDescendant(); id != "fruits" {
		t.Errorf("active = %q, want fruits", id)
	}

	cb.OnKeydown(keys.Press(keys.Enter))
	if fruits.Expanded() || !cb.Expanded() {
		t.Error("Enter on a parent should toggle it and keep the popup open")
	}
	assertValue(t, cb, "")
}

func TestTreePopupPointer(t *testing.T) {
	cb, tr := newTreeCombobox(t, combobox.Manual)
	fruits, _ := tr.Item("fruits")
	cb.Open()

	cb.OnPointerup(keys.Click(fruits.Element()))
	if !fruits.Expanded() || !cb.Expanded() {
		t.Fatal("click on a parent should expand it")
	}
	banana, _ := tr.Item("banana")
	cb.OnPointerup(keys.Click(banana.Element()))
	assertValue(t, cb, "banana")
	if cb.Expanded() {
		t.Error("choosing a leaf did not close")
	}
}
