package behavior

import (
	"fmt"
	"testing"
	"time"

	"pgregory.net/rapid"
)

// TestListInvariants drives a list with random operations and checks the
// state after each one.
func TestListInvariants(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(0, 8).Draw(rt, "n")
		its := make([]*item, n)
		for i := range its {
			its[i] = &item{
				id:       fmt.Sprintf("i%d", i),
				term:     rapid.SampledFrom([]string{"apple", "apricot", "banana", "cherry"}).Draw(rt, "term"),
				disabled: rapid.Float64Range(0, 1).Draw(rt, "p") < 0.25,
			}
		}
		s := newSettings(its)
		s.multi = rapid.Bool().Draw(rt, "multi")
		s.wrap = rapid.Bool().Draw(rt, "wrap")
		s.skipDisabled = rapid.Bool().Draw(rt, "skip")
		l := s.list()

		opts := []SelectOpts{{}, {Toggle: true}, {ToggleOne: true}, {Select: true}, {SelectOne: true}, {SelectRange: true}}
		ops := rapid.SliceOfN(rapid.IntRange(0, 10), 1, 40).Draw(rt, "ops")
		for _, op := range ops {
			o := opts[rapid.IntRange(0, len(opts)-1).Draw(rt, "opts")]
			switch op {
			case 0:
				l.Next(o)
			case 1:
				l.Prev(o)
			case 2:
				l.First(o)
			case 3:
				l.Last(o)
			case 4:
				if n > 0 {
					l.Goto(its[rapid.IntRange(0, n-1).Draw(rt, "target")], o)
				}
			case 5:
				l.Search(string(rune('a'+rapid.IntRange(0, 3).Draw(rt, "char"))), o)
			case 6:
				l.Selection.ToggleAll()
			case 7:
				l.Selection.DeselectAll()
			case 8:
				l.SetDefaultState()
			case 9:
				s.advance(time.Second)
			case 10:
				l.Anchor()
			}
			check(rt, l, s)
		}
	})
}

func check(rt *rapid.T, l *List[*item, string], s *settings) {
	values := l.Selection.Value()
	seen := make(map[string]bool)
	for _, v := range values {
		if seen[v] {
			rt.Fatalf("duplicate value %q in %v", v, values)
		}
		seen[v] = true
	}
	if !s.multi && len(values) > 1 {
		rt.Fatalf("single-select holds %v", values)
	}
	for _, it := range s.items {
		if it.disabled && seen[it.id] {
			rt.Fatalf("disabled item %q selected", it.id)
		}
	}
	if a := l.ActiveItem(); a != nil && !l.Focus.IsFocusable(a) {
		rt.Fatalf("active item %q is not focusable", a.id)
	}
}
