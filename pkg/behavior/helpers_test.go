package behavior

import (
	"strings"
	"time"
)

type item struct {
	id       string
	term     string
	disabled bool
}

func (i *item) ID() string         { return i.id }
func (i *item) Value() string      { return i.id }
func (i *item) Disabled() bool     { return i.disabled }
func (i *item) SearchTerm() string { return i.term }
func (i *item) Element() any       { return i }

func items(terms ...string) []*item {
	out := make([]*item, len(terms))
	for i, t := range terms {
		out[i] = &item{id: strings.ToLower(t), term: t}
	}
	return out
}

type settings struct {
	items        []*item
	mode         FocusMode
	disabled     bool
	skipDisabled bool
	wrap         bool
	multi        bool
	clock        time.Time
	reads        int // Calls to Items
}

func newSettings(its []*item) *settings {
	return &settings{
		items:        its,
		skipDisabled: true,
		wrap:         true,
		clock:        time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (s *settings) advance(d time.Duration) { s.clock = s.clock.Add(d) }

func (s *settings) list() *List[*item, string] {
	return NewList(ListInputs[*item, string]{
		Items:          func() []*item { s.reads++; return s.items },
		FocusMode:      func() FocusMode { return s.mode },
		Disabled:       func() bool { return s.disabled },
		SkipDisabled:   func() bool { return s.skipDisabled },
		Wrap:           func() bool { return s.wrap },
		Multi:          func() bool { return s.multi },
		TypeaheadDelay: Static(DefaultTypeaheadDelay),
		Now:            func() time.Time { return s.clock },
	})
}

func activeID(l *List[*item, string]) string {
	if a := l.ActiveItem(); a != nil {
		return a.id
	}
	return ""
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
