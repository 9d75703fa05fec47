package debug

import (
	"bytes"
	"strings"
	"testing"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := enabled
	SetEnabled(true)
	SetOutput(&buf)
	t.Cleanup(func() { SetEnabled(prev) })
	return &buf
}

func TestLog(t *testing.T) {
	buf := capture(t)
	Log("tree: %s -> %s", "down", "next")
	if !strings.Contains(buf.String(), "[PATTERNS] ") || !strings.Contains(buf.String(), "tree: down -> next") {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestLogIf(t *testing.T) {
	buf := capture(t)
	LogIf(false, "hidden")
	LogIf(true, "shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestDisabledIsSilent(t *testing.T) {
	buf := capture(t)
	SetEnabled(false)
	Log("nothing")
	Dump("x", 1)
	Assert(false, "ignored while disabled")
	if buf.Len() != 0 {
		t.Errorf("disabled logger wrote %q", buf.String())
	}
}

func TestDump(t *testing.T) {
	buf := capture(t)
	Dump("opts", struct{ Multi bool }{true})
	if !strings.Contains(buf.String(), "opts: struct { Multi bool } = {Multi:true}") {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestAssertPanics(t *testing.T) {
	capture(t)
	defer func() {
		if recover() == nil {
			t.Error("failed assertion did not panic")
		}
	}()
	Assert(true, "fine")
	Assert(false, "active item hidden")
}
