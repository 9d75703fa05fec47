package behavior

import (
	"strings"
	"time"
	"unicode/utf8"
)

// DefaultTypeaheadDelay is how long the typeahead buffer survives without a
// keystroke.
const DefaultTypeaheadDelay = 500 * time.Millisecond

// TypeaheadInputs are the accessors a Typeahead controller reads.
type TypeaheadInputs[T Entry[V], V comparable] struct {
	Focus *Focus[T, V]
	// Delay is the inactivity window after which the buffer resets.
	Delay func() time.Duration
	// Now is the clock. Defaults to time.Now.
	Now func() time.Time
}

// Typeahead implements character-buffered search-as-you-type navigation.
// The buffer expires lazily: a keystroke arriving after the delay starts a
// fresh search, and IsTyping reports false once the delay has elapsed.
type Typeahead[T Entry[V], V comparable] struct {
	in     TypeaheadInputs[T, V]
	query  string
	start  int
	lastAt time.Time
}

// NewTypeahead creates a typeahead controller.
func NewTypeahead[T Entry[V], V comparable](in TypeaheadInputs[T, V]) *Typeahead[T, V] {
	if in.Delay == nil {
		in.Delay = Static(DefaultTypeaheadDelay)
	}
	if in.Now == nil {
		in.Now = time.Now
	}
	return &Typeahead[T, V]{in: in, start: -1}
}

// IsTyping reports whether a search is in progress.
func (t *Typeahead[T, V]) IsTyping() bool {
	t.expire()
	return t.query != ""
}

// Query returns the current search buffer.
func (t *Typeahead[T, V]) Query() string {
	t.expire()
	return t.query
}

// Reset discards the search buffer.
func (t *Typeahead[T, V]) Reset() {
	t.query = ""
	t.start = -1
}

func (t *Typeahead[T, V]) expire() {
	if t.query != "" && t.in.Now().Sub(t.lastAt) > t.in.Delay() {
		t.Reset()
	}
}

// Search appends char to the buffer and focuses the first visible, focusable
// item after the search origin whose search term starts with the buffer,
// case-insensitively. When the buffer is one character repeated ("bbb") the
// search starts after the current match instead, so repeated presses cycle
// through items sharing that first letter. It returns whether the active
// item changed.
func (t *Typeahead[T, V]) Search(char string) bool {
	if utf8.RuneCountInString(char) != 1 {
		return false
	}
	t.expire()
	if t.query == "" && char == " " {
		return false
	}
	if t.query == "" {
		t.start = t.in.Focus.ActiveIndex()
	}
	t.query += strings.ToLower(char)
	t.lastAt = t.in.Now()

	prefix, from := t.query, t.start
	if r, ok := repeated(t.query); ok && utf8.RuneCountInString(t.query) > 1 {
		prefix, from = string(r), t.in.Focus.ActiveIndex()
	}

	item, ok := t.find(prefix, from)
	if !ok || item == t.in.Focus.ActiveItem() {
		return false
	}
	return t.in.Focus.Focus(item)
}

// find scans the visible items cyclically starting just after index from.
func (t *Typeahead[T, V]) find(prefix string, from int) (T, bool) {
	var zero T
	items := t.in.Focus.Items()
	n := len(items)
	for i := 0; i < n; i++ {
		idx := ((from+1+i)%n + n) % n
		it := items[idx]
		if !t.in.Focus.focusableMember(it) {
			continue
		}
		if strings.HasPrefix(strings.ToLower(it.SearchTerm()), prefix) {
			return it, true
		}
	}
	return zero, false
}

// repeated reports whether s consists of a single rune repeated.
func repeated(s string) (rune, bool) {
	first, _ := utf8.DecodeRuneInString(s)
	for _, r := range s {
		if r != first {
			return 0, false
		}
	}
	return first, s != ""
}
