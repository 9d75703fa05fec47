package listbox_test

import (
	"testing"
	"time"

	"github.com/vanderheijden86/ariapatterns/pkg/behavior"
	"github.com/vanderheijden86/ariapatterns/pkg/keys"
	"github.com/vanderheijden86/ariapatterns/pkg/listbox"
	"github.com/vanderheijden86/ariapatterns/pkg/model"
	"github.com/vanderheijden86/ariapatterns/pkg/testutil"
)

type fixture struct {
	nodes []*model.Node
	now   time.Time
	lb    *listbox.Listbox[*model.Node, string]
}

func newFixture(opts listbox.Options, labels ...string) *fixture {
	f := &fixture{
		nodes: testutil.Flat(labels...),
		now:   time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
	}
	f.lb = listbox.New(func() []*model.Node { return f.nodes }, opts,
		listbox.WithClock[*model.Node, string](func() time.Time { return f.now }))
	return f
}

func (f *fixture) press(key string, mods ...keys.Modifier) bool {
	return f.lb.OnKeydown(keys.Press(key, mods...))
}

func (f *fixture) active(t *testing.T, want string) {
	t.Helper()
	a := f.lb.ActiveItem()
	testutil.AssertActive(t, a, a != nil, want)
}

func opts(mutate func(*listbox.Options)) listbox.Options {
	o := listbox.DefaultOptions()
	if mutate != nil {
		mutate(&o)
	}
	return o
}

func TestFollowFocusSingle(t *testing.T) {
	f := newFixture(opts(nil), "A", "B", "C")
	f.lb.SetDefaultState()

	f.press(keys.ArrowDown)
	f.press(keys.ArrowDown)
	f.active(t, "c")
	testutil.AssertValues(t, f.lb.Value(), "c")

	f.press(keys.ArrowDown)
	f.active(t, "a")
	f.press(keys.End)
	f.active(t, "c")
	f.press(keys.Home)
	testutil.AssertValues(t, f.lb.Value(), "a")
}

func TestExplicitSingleEnterTwice(t *testing.T) {
	f := newFixture(opts(func(o *listbox.Options) { o.SelectionMode = behavior.Explicit }), "A", "B")
	f.lb.SetDefaultState()

	f.press(keys.Enter)
	testutil.AssertValues(t, f.lb.Value(), "a")
	f.press(keys.Enter)
	testutil.AssertValues(t, f.lb.Value())

	f.press(keys.ArrowDown)
	testutil.AssertValues(t, f.lb.Value())
}

func TestTypeahead(t *testing.T) {
	f := newFixture(opts(nil), "Apple", "Apricot", "Banana")

	f.press("A", keys.Shift)
	f.now = f.now.Add(100 * time.Millisecond)
	f.press("p")
	f.active(t, "apple")
	testutil.AssertValues(t, f.lb.Value(), "apple")
}

func TestTypeaheadExpired(t *testing.T) {
	f := newFixture(opts(nil), "Apple", "Apricot", "Banana")

	f.press("A", keys.Shift)
	f.now = f.now.Add(time.Second)
	f.press("p")
	f.active(t, "apple")
}

func TestTypeaheadSpace(t *testing.T) {
	f := newFixture(opts(func(o *listbox.Options) { o.SelectionMode = behavior.Explicit }), "New York", "Newark", "Oslo")
	f.lb.SetDefaultState()

	for _, c := range []string{"n", "e", "w", keys.Space, "y"} {
		f.press(c)
	}
	f.active(t, "new york")
	testutil.AssertValues(t, f.lb.Value())
}

func TestMultiFollowShiftRange(t *testing.T) {
	f := newFixture(opts(func(o *listbox.Options) { o.Multi = true }), "A", "B", "C", "D")
	f.lb.SetDefaultState()
	f.press(keys.Space, keys.Ctrl)
	testutil.AssertValues(t, f.lb.Value(), "a")

	f.press(keys.ArrowDown, keys.Shift)
	f.press(keys.ArrowDown, keys.Shift)
	testutil.AssertValues(t, f.lb.Value(), "a", "b", "c")

	f.press(keys.ArrowUp, keys.Shift)
	testutil.AssertValues(t, f.lb.Value(), "a", "b")

	f.press(keys.End, keys.Ctrl, keys.Shift)
	testutil.AssertValues(t, f.lb.Value(), "a", "b", "c", "d")
}

func TestMultiFollowCtrlMovesWithoutSelecting(t *testing.T) {
	f := newFixture(opts(func(o *listbox.Options) { o.Multi = true }), "A", "B", "C")
	f.lb.SetDefaultState()
	f.press(keys.Space, keys.Ctrl)

	f.press(keys.ArrowDown, keys.Ctrl)
	f.press(keys.ArrowDown, keys.Meta)
	f.active(t, "c")
	testutil.AssertValues(t, f.lb.Value(), "a")

	f.press(keys.Enter, keys.Ctrl)
	testutil.AssertValues(t, f.lb.Value(), "a", "c")

	f.press(keys.ArrowUp)
	testutil.AssertValues(t, f.lb.Value(), "b")
}

func TestMultiFollowCtrlA(t *testing.T) {
	f := newFixture(opts(func(o *listbox.Options) { o.Multi = true }), "A", "B", "C")
	f.lb.SetDefaultState()

	f.press("a", keys.Ctrl)
	testutil.AssertValues(t, f.lb.Value(), "a", "b", "c")

	f.press("a", keys.Ctrl)
	testutil.AssertValues(t, f.lb.Value(), "a")
}

func TestMultiExplicit(t *testing.T) {
	f := newFixture(opts(func(o *listbox.Options) {
		o.Multi = true
		o.SelectionMode = behavior.Explicit
	}), "A", "B", "C")
	f.lb.SetDefaultState()

	f.press(keys.Space)
	f.press(keys.ArrowDown)
	f.press(keys.ArrowDown)
	f.press(keys.Enter)
	testutil.AssertValues(t, f.lb.Value(), "a", "c")

	f.press("a", keys.Ctrl)
	testutil.AssertValues(t, f.lb.Value(), "a", "c", "b")
	f.press("a", keys.Ctrl)
	testutil.AssertValues(t, f.lb.Value())
}

func TestDisabledItemsSkipped(t *testing.T) {
	f := newFixture(opts(nil), "A", "B", "C")
	f.nodes[1].IsDisabled = true
	f.lb.SetDefaultState()

	f.press(keys.ArrowDown)
	f.active(t, "c")
	testutil.AssertValues(t, f.lb.Value(), "c")
}

func TestDisabledListboxIgnoresInput(t *testing.T) {
	f := newFixture(opts(func(o *listbox.Options) { o.Disabled = true }), "A", "B")
	if f.press(keys.ArrowDown) {
		t.Error("disabled listbox handled a key")
	}
	if f.lb.OnPointerdown(keys.Click(f.nodes[1])) {
		t.Error("disabled listbox handled a click")
	}
	if f.lb.Tabindex() != 0 {
		t.Errorf("disabled listbox tabindex = %d, want 0", f.lb.Tabindex())
	}
}

func TestReadonlyMovesWithoutSelecting(t *testing.T) {
	f := newFixture(opts(func(o *listbox.Options) { o.Readonly = true }), "A", "B")
	f.lb.SetDefaultState()
	f.press(keys.ArrowDown)
	f.active(t, "b")
	testutil.AssertValues(t, f.lb.Value())

	f.lb.OnPointerdown(keys.Click(f.nodes[0]))
	f.active(t, "a")
	testutil.AssertValues(t, f.lb.Value())
}

func TestHorizontalRTL(t *testing.T) {
	f := newFixture(opts(func(o *listbox.Options) {
		o.Orientation = behavior.Horizontal
		o.Direction = behavior.RTL
	}), "A", "B")
	f.lb.SetDefaultState()

	if f.press(keys.ArrowDown) {
		t.Error("horizontal listbox handled ArrowDown")
	}
	f.press(keys.ArrowLeft)
	f.active(t, "b")
	f.press(keys.ArrowRight)
	f.active(t, "a")
}

func TestPointer(t *testing.T) {
	f := newFixture(opts(func(o *listbox.Options) { o.Multi = true }), "A", "B", "C", "D")

	f.lb.OnPointerdown(keys.Click(f.nodes[1]))
	testutil.AssertValues(t, f.lb.Value(), "b")
	f.lb.OnPointerdown(keys.Click(f.nodes[3], keys.Ctrl))
	testutil.AssertValues(t, f.lb.Value(), "b", "d")
	f.lb.OnPointerdown(keys.Click(f.nodes[0], keys.Shift))
	testutil.AssertValues(t, f.lb.Value(), "b", "d", "c", "a")

	if f.lb.OnPointerdown(keys.Click(&model.Node{NodeID: "elsewhere"})) {
		t.Error("click outside the options was handled")
	}
}

func TestPointerExplicitSingleToggles(t *testing.T) {
	f := newFixture(opts(func(o *listbox.Options) { o.SelectionMode = behavior.Explicit }), "A", "B")
	f.lb.OnPointerdown(keys.Click(f.nodes[0]))
	f.lb.OnPointerdown(keys.Click(f.nodes[0]))
	testutil.AssertValues(t, f.lb.Value())
}

func TestKeymapMemoized(t *testing.T) {
	f := newFixture(opts(nil), "A")
	km := f.lb.Keymap()
	if f.lb.Keymap() != km {
		t.Error("keymap rebuilt without an options change")
	}
	o := f.lb.Options()
	o.Multi = true
	f.lb.SetOptions(o)
	if f.lb.Keymap() == km {
		t.Error("keymap not rebuilt after an options change")
	}
}

func TestSetOptionsTrimsToSingle(t *testing.T) {
	f := newFixture(opts(func(o *listbox.Options) { o.Multi = true }), "A", "B")
	f.lb.SetValue([]string{"b", "a"})
	o := f.lb.Options()
	o.Multi = false
	f.lb.SetOptions(o)
	testutil.AssertValues(t, f.lb.Value(), "b")
}

func TestSnapshotGolden(t *testing.T) {
	f := newFixture(opts(func(o *listbox.Options) { o.FocusMode = behavior.ActiveDescendant }), "Apple", "Banana")
	f.lb.SetDefaultState()
	f.press(keys.ArrowDown)

	testutil.NewGoldenFile(t, "testdata", "snapshot.golden.json").AssertJSON(f.lb.Snapshot())
}

func TestPointerSelection(t *testing.T) {
	tests := []struct {
		name                    string
		multi, follow, readonly bool
		mods                    keys.Modifier
		want                    behavior.SelectOpts
	}{
		{"readonly", true, true, true, keys.Shift, behavior.SelectOpts{}},
		{"multi shift", true, false, false, keys.Shift, behavior.SelectOpts{SelectRange: true}},
		{"multi meta", true, true, false, keys.Meta, behavior.SelectOpts{Toggle: true}},
		{"multi follow", true, true, false, keys.None, behavior.SelectOpts{SelectOne: true}},
		{"multi explicit", true, false, false, keys.None, behavior.SelectOpts{Toggle: true}},
		{"single follow", false, true, false, keys.Ctrl, behavior.SelectOpts{SelectOne: true}},
		{"single explicit", false, false, false, keys.None, behavior.SelectOpts{ToggleOne: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := listbox.PointerSelection(tt.multi, tt.follow, tt.readonly, tt.mods); got != tt.want {
				t.Errorf("PointerSelection = %+v, want %+v", got, tt.want)
			}
		})
	}
}
