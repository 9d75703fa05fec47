package behavior

import (
	"testing"
	"time"
)

func TestTypeaheadWithinDelay(t *testing.T) {
	s := newSettings(items("Apple", "Apricot", "Banana"))
	l := s.list()

	l.Typeahead.Search("A")
	s.advance(100 * time.Millisecond)
	l.Typeahead.Search("p")
	if activeID(l) != "apple" {
		t.Errorf("active = %q, want apple", activeID(l))
	}
	if q := l.Typeahead.Query(); q != "ap" {
		t.Errorf("query = %q, want ap", q)
	}
}

func TestTypeaheadAfterDelay(t *testing.T) {
	s := newSettings(items("Apple", "Apricot", "Banana"))
	l := s.list()

	l.Typeahead.Search("A")
	s.advance(DefaultTypeaheadDelay + time.Millisecond)
	if l.Typeahead.IsTyping() {
		t.Error("still typing after the delay")
	}
	if l.Typeahead.Search("p") {
		t.Error("fresh search for p should not match")
	}
	if activeID(l) != "apple" {
		t.Errorf("active = %q, want apple", activeID(l))
	}
}

func TestTypeaheadRepeatedCycles(t *testing.T) {
	s := newSettings(items("Banana", "Blueberry", "Cherry"))
	l := s.list()

	want := []string{"banana", "blueberry", "banana"}
	for i, w := range want {
		l.Typeahead.Search("b")
		if activeID(l) != w {
			t.Fatalf("press %d: active = %q, want %q", i+1, activeID(l), w)
		}
	}
}

func TestTypeaheadSearchesFromActive(t *testing.T) {
	its := items("Apple", "Banana", "Avocado")
	s := newSettings(its)
	l := s.list()
	l.Focus.Focus(its[1])

	l.Typeahead.Search("a")
	if activeID(l) != "avocado" {
		t.Errorf("active = %q, want avocado", activeID(l))
	}
}

func TestTypeaheadSkipsDisabled(t *testing.T) {
	its := items("Apple", "Apricot")
	its[0].disabled = true
	l := newSettings(its).list()

	l.Typeahead.Search("a")
	if activeID(l) != "apricot" {
		t.Errorf("active = %q, want apricot", activeID(l))
	}
}

func TestTypeaheadSpace(t *testing.T) {
	s := newSettings(items("New York", "Newark"))
	l := s.list()

	if l.Typeahead.Search(" ") {
		t.Error("leading space started a search")
	}
	for _, c := range []string{"n", "e", "w", " ", "y"} {
		l.Typeahead.Search(c)
	}
	if activeID(l) != "new york" {
		t.Errorf("active = %q, want new york", activeID(l))
	}
}

func TestTypeaheadRejectsMultiRune(t *testing.T) {
	l := newSettings(items("Enter")).list()
	if l.Typeahead.Search("Enter") {
		t.Error("named key treated as a character")
	}
	if l.Typeahead.IsTyping() {
		t.Error("named key started a search")
	}
}
