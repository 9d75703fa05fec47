package watcher

import (
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/vanderheijden86/ariapatterns/pkg/config"
)

func TestDebouncer_CoalescesRapidTriggers(t *testing.T) {
	d := NewDebouncer(50 * time.Millisecond)

	var callCount atomic.Int32
	for i := 0; i < 10; i++ {
		d.Trigger(func() { callCount.Add(1) })
		time.Sleep(10 * time.Millisecond)
	}

	time.Sleep(150 * time.Millisecond)

	if count := callCount.Load(); count != 1 {
		t.Errorf("expected 1 callback invocation, got %d", count)
	}
}

func TestDebouncer_Cancel(t *testing.T) {
	d := NewDebouncer(50 * time.Millisecond)

	var called atomic.Bool
	d.Trigger(func() { called.Store(true) })
	d.Cancel()

	time.Sleep(100 * time.Millisecond)

	if called.Load() {
		t.Error("callback should not have been invoked after cancel")
	}
}

func TestDebouncer_DefaultDuration(t *testing.T) {
	d := NewDebouncer(0)
	if d.Duration() != DefaultDebounceDuration {
		t.Errorf("expected default duration %v, got %v", DefaultDebounceDuration, d.Duration())
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestWatcher_DetectsFileChange(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, tmpFile, "initial")

	var changed atomic.Bool
	w, err := NewWatcher(tmpFile,
		WithDebounceDuration(50*time.Millisecond),
		WithOnChange(func() { changed.Store(true) }),
	)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Start(); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	time.Sleep(100 * time.Millisecond)
	writeFile(t, tmpFile, "modified content")
	time.Sleep(300 * time.Millisecond)

	if !changed.Load() {
		t.Error("expected change to be detected")
	}
}

func TestWatcher_PollingFallback(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, tmpFile, "initial")

	var changed atomic.Bool
	w, err := NewWatcher(tmpFile,
		WithDebounceDuration(20*time.Millisecond),
		WithPollInterval(50*time.Millisecond),
		WithForcePoll(true),
		WithOnChange(func() { changed.Store(true) }),
	)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Start(); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	if !w.IsPolling() {
		t.Fatal("expected polling mode")
	}

	time.Sleep(20 * time.Millisecond)
	writeFile(t, tmpFile, "modified content")
	time.Sleep(300 * time.Millisecond)

	if !changed.Load() {
		t.Error("expected change to be detected via polling")
	}
}

func TestWatcher_ChangedChannel(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "items.json")
	writeFile(t, tmpFile, "initial")

	w, err := NewWatcher(tmpFile,
		WithDebounceDuration(50*time.Millisecond),
		WithPollInterval(100*time.Millisecond),
		WithForcePoll(true),
	)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Start(); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	go func() {
		time.Sleep(50 * time.Millisecond)
		os.WriteFile(tmpFile, []byte("new content"), 0o644)
	}()

	select {
	case <-w.Changed():
	case <-time.After(time.Second):
		t.Error("timeout waiting for change notification")
	}
}

func TestWatcher_EnvForcePoll(t *testing.T) {
	t.Setenv("PATTERNS_FORCE_POLL", "1")

	tmpFile := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, tmpFile, "initial")

	w, err := NewWatcher(tmpFile, WithPollInterval(25*time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Start(); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	if !w.IsPolling() {
		t.Fatal("expected watcher to be in polling mode when PATTERNS_FORCE_POLL is set")
	}
}

func TestWatcher_FileRemoved(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, tmpFile, "initial")

	var (
		errMu    sync.Mutex
		gotError error
	)
	w, err := NewWatcher(tmpFile,
		WithPollInterval(50*time.Millisecond),
		WithForcePoll(true),
		WithOnError(func(err error) {
			errMu.Lock()
			gotError = err
			errMu.Unlock()
		}),
	)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Start(); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	time.Sleep(20 * time.Millisecond)
	if err := os.Remove(tmpFile); err != nil {
		t.Fatal(err)
	}
	time.Sleep(200 * time.Millisecond)

	errMu.Lock()
	defer errMu.Unlock()
	if gotError != ErrFileRemoved {
		t.Errorf("expected ErrFileRemoved, got %v", gotError)
	}
}

func TestWatcher_StartStop(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, tmpFile, "initial")

	w, err := NewWatcher(tmpFile)
	if err != nil {
		t.Fatal(err)
	}
	if w.IsStarted() {
		t.Error("watcher should not be started initially")
	}
	if err := w.Start(); err != nil {
		t.Fatal(err)
	}
	if !w.IsStarted() {
		t.Error("watcher should be started after Start()")
	}
	if err := w.Start(); err != ErrAlreadyStarted {
		t.Errorf("expected ErrAlreadyStarted, got %v", err)
	}

	w.Stop()
	if w.IsStarted() {
		t.Error("watcher should not be started after Stop()")
	}
	// Double stop should be safe
	w.Stop()
}

func TestWatcher_Path(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.yaml")

	w, err := NewWatcher(tmpFile)
	if err != nil {
		t.Fatal(err)
	}
	absPath, _ := filepath.Abs(tmpFile)
	if w.Path() != absPath {
		t.Errorf("expected path %s, got %s", absPath, w.Path())
	}
}

func TestWatchConfig_Reloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, "ui:\n  default_view: tree\n")

	type result struct {
		cfg config.Config
		err error
	}
	results := make(chan result, 4)
	w, err := WatchConfig(path, func(c config.Config, err error) {
		results <- result{c, err}
	}, WithForcePoll(true), WithPollInterval(25*time.Millisecond), WithDebounceDuration(10*time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	time.Sleep(20 * time.Millisecond)
	writeFile(t, path, "ui:\n  default_view: combobox\n")

	select {
	case r := <-results:
		if r.err != nil {
			t.Fatalf("unexpected reload error: %v", r.err)
		}
		if r.cfg.UI.DefaultView != "combobox" {
			t.Errorf("expected reloaded view 'combobox', got %q", r.cfg.UI.DefaultView)
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for reload")
	}

	writeFile(t, path, "listbox:\n  orientation: sideways\n")
	select {
	case r := <-results:
		if r.err == nil {
			t.Error("expected invalid config to be reported")
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for reload")
	}
}

func TestEnvBool(t *testing.T) {
	tests := []struct {
		value    string
		expected bool
	}{
		{"1", true},
		{"true", true},
		{"YES", true},
		{"on", true},
		{"0", false},
		{"false", false},
		{"", false},
		{"invalid", false},
	}

	for _, tc := range tests {
		t.Run(tc.value, func(t *testing.T) {
			t.Setenv("TEST_ENV_BOOL", tc.value)
			if got := envBool("TEST_ENV_BOOL"); got != tc.expected {
				t.Errorf("envBool(%q) = %v, expected %v", tc.value, got, tc.expected)
			}
		})
	}
}
