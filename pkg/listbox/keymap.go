package listbox

import (
	"github.com/vanderheijden86/ariapatterns/pkg/behavior"
	"github.com/vanderheijden86/ariapatterns/pkg/keys"
)

var (
	ctrl      = []keys.Modifier{keys.Ctrl, keys.Meta}
	ctrlShift = []keys.Modifier{keys.Ctrl | keys.Shift, keys.Meta | keys.Shift}
)

// MoveOpts is the selection effect of a plain navigation key.
func MoveOpts(o Options) behavior.SelectOpts {
	if o.FollowFocus() && !o.Readonly {
		return behavior.SelectOpts{SelectOne: true}
	}
	return behavior.SelectOpts{}
}

// AddBindings registers the list navigation and selection bindings for o on
// km. Patterns built on a list, such as the tree, add their own bindings
// after these and finish with AddTypeahead.
func AddBindings[T behavior.Entry[V], V comparable](km *keys.Keymap, list *behavior.List[T, V], o Options) {
	move := MoveOpts(o)
	km.On(keys.Key(o.PrevKey()), "prev", func(keys.KeyEvent) { list.Prev(move) }).Describe("previous")
	km.On(keys.Key(o.NextKey()), "next", func(keys.KeyEvent) { list.Next(move) }).Describe("next")
	km.On(keys.Key(keys.Home), "first", func(keys.KeyEvent) { list.First(move) }).Describe("first")
	km.On(keys.Key(keys.End), "last", func(keys.KeyEvent) { list.Last(move) }).Describe("last")

	if o.Readonly {
		return
	}

	if o.Multi {
		extend := behavior.SelectOpts{SelectRange: true}
		km.On(keys.Key(keys.ShiftKey).AnyMods(), "anchor", func(keys.KeyEvent) { list.Anchor() })
		km.On(keys.Key(o.PrevKey()).With(keys.Shift), "select-range-prev", func(keys.KeyEvent) { list.Prev(extend) }).Describe("extend selection")
		km.On(keys.Key(o.NextKey()).With(keys.Shift), "select-range-next", func(keys.KeyEvent) { list.Next(extend) }).Describe("extend selection")
		km.On(keys.Key(keys.Home).With(ctrlShift...), "select-range-first", func(keys.KeyEvent) { list.First(extend) })
		km.On(keys.Key(keys.End).With(ctrlShift...), "select-range-last", func(keys.KeyEvent) { list.Last(extend) })
		km.On(keys.Key(keys.Enter).With(keys.Shift), "select-range", func(keys.KeyEvent) { list.UpdateSelection(extend) })
		km.On(keys.Key(keys.Space).With(keys.Shift), "select-range", func(keys.KeyEvent) { list.UpdateSelection(extend) })
	}

	switch {
	case !o.FollowFocus() && o.Multi:
		toggle := func(keys.KeyEvent) { list.UpdateSelection(behavior.SelectOpts{Toggle: true}) }
		km.On(keys.Key(keys.Space), "toggle", toggle).Describe("toggle")
		km.On(keys.Key(keys.Enter), "toggle", toggle)
		km.On(keys.Key("a").With(ctrl...), "toggle-all", func(keys.KeyEvent) { list.Selection.ToggleAll() }).Describe("toggle all")
	case !o.FollowFocus() && !o.Multi:
		toggleOne := func(keys.KeyEvent) { list.UpdateSelection(behavior.SelectOpts{ToggleOne: true}) }
		km.On(keys.Key(keys.Space), "toggle", toggleOne).Describe("toggle")
		km.On(keys.Key(keys.Enter), "toggle", toggleOne)
	case o.FollowFocus() && !o.Multi:
		toggleOne := func(keys.KeyEvent) { list.UpdateSelection(behavior.SelectOpts{ToggleOne: true}) }
		km.On(keys.Key(keys.Space).With(ctrl...), "toggle", toggleOne).Describe("toggle")
		km.On(keys.Key(keys.Enter).With(ctrl...), "toggle", toggleOne)
	case o.FollowFocus() && o.Multi:
		toggle := func(keys.KeyEvent) { list.UpdateSelection(behavior.SelectOpts{Toggle: true}) }
		none := behavior.SelectOpts{}
		km.On(keys.Key(o.PrevKey()).With(ctrl...), "focus-prev", func(keys.KeyEvent) { list.Prev(none) })
		km.On(keys.Key(o.NextKey()).With(ctrl...), "focus-next", func(keys.KeyEvent) { list.Next(none) })
		km.On(keys.Key(keys.Space).With(ctrl...), "toggle", toggle).Describe("toggle")
		km.On(keys.Key(keys.Enter).With(ctrl...), "toggle", toggle)
		km.On(keys.Key(keys.Home).With(ctrl...), "focus-first", func(keys.KeyEvent) { list.First(none) })
		km.On(keys.Key(keys.End).With(ctrl...), "focus-last", func(keys.KeyEvent) { list.Last(none) })
		km.On(keys.Key("a").With(ctrl...), "toggle-all", func(keys.KeyEvent) {
			list.Selection.ToggleAll()
			// The focused item stays selected in follow-focus mode.
			list.UpdateSelection(behavior.SelectOpts{Select: true})
		}).Describe("toggle all")
	}
}

// AddTypeahead registers the catch-all character binding. It must come last
// since it matches every printable key.
func AddTypeahead[T behavior.Entry[V], V comparable](km *keys.Keymap, list *behavior.List[T, V], o Options) {
	move := MoveOpts(o)
	km.On(keys.Char().With(keys.None, keys.Shift), "typeahead", func(e keys.KeyEvent) { list.Search(e.Key, move) })
}
