// Package metrics records timings of pattern event handling.
//
// Collection is on by default and can be disabled with PATTERNS_METRICS=0.
//
//	func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
//	    defer metrics.Timer(metrics.KeyDispatch)()
//	    ...
//	}
package metrics

import (
	"os"
	"sync/atomic"
	"time"
)

var enabled atomic.Bool

func init() {
	enabled.Store(os.Getenv("PATTERNS_METRICS") != "0")
}

// Enabled returns whether metrics collection is enabled.
func Enabled() bool {
	return enabled.Load()
}

// SetEnabled allows programmatic control of metrics collection.
func SetEnabled(e bool) {
	enabled.Store(e)
}

// TimingMetric accumulates durations of one operation. Safe for concurrent use.
type TimingMetric struct {
	name  string
	count atomic.Int64
	total atomic.Int64 // ns
	max   atomic.Int64 // ns
	min   atomic.Int64 // ns, 0 until the first sample
}

func newTimingMetric(name string) *TimingMetric {
	return &TimingMetric{name: name}
}

// Record adds one measurement.
func (m *TimingMetric) Record(d time.Duration) {
	if !Enabled() {
		return
	}
	ns := d.Nanoseconds()
	m.count.Add(1)
	m.total.Add(ns)
	for old := m.max.Load(); ns > old; old = m.max.Load() {
		if m.max.CompareAndSwap(old, ns) {
			break
		}
	}
	for old := m.min.Load(); old == 0 || ns < old; old = m.min.Load() {
		if m.min.CompareAndSwap(old, ns) {
			break
		}
	}
}

func (m *TimingMetric) Name() string { return m.name }
func (m *TimingMetric) Count() int64 { return m.count.Load() }

// Avg returns the mean duration, or 0 without samples.
func (m *TimingMetric) Avg() time.Duration {
	n := m.count.Load()
	if n == 0 {
		return 0
	}
	return time.Duration(m.total.Load() / n)
}

// Stats returns a snapshot of the metric.
func (m *TimingMetric) Stats() TimingStats {
	ms := func(ns int64) float64 { return float64(ns) / 1e6 }
	return TimingStats{
		Name:    m.name,
		Count:   m.count.Load(),
		TotalMs: ms(m.total.Load()),
		AvgMs:   ms(int64(m.Avg())),
		MaxMs:   ms(m.max.Load()),
		MinMs:   ms(m.min.Load()),
	}
}

// Reset clears all recorded measurements.
func (m *TimingMetric) Reset() {
	m.count.Store(0)
	m.total.Store(0)
	m.max.Store(0)
	m.min.Store(0)
}

// TimingStats holds a snapshot of timing statistics.
type TimingStats struct {
	Name    string  `json:"name"`
	Count   int64   `json:"count"`
	TotalMs float64 `json:"total_ms"`
	AvgMs   float64 `json:"avg_ms"`
	MaxMs   float64 `json:"max_ms"`
	MinMs   float64 `json:"min_ms,omitempty"`
}

// Timer starts timing m and returns the function that stops it.
func Timer(m *TimingMetric) func() {
	if !Enabled() || m == nil {
		return func() {}
	}
	start := time.Now()
	return func() { m.Record(time.Since(start)) }
}

// Operations timed by the host.
var (
	KeyDispatch     = newTimingMetric("key_dispatch")
	PointerDispatch = newTimingMetric("pointer_dispatch")
	ComboboxInput   = newTimingMetric("combobox_input")
	DataLoad        = newTimingMetric("data_load")
	UIRender        = newTimingMetric("ui_render")
)

// AllTimingMetrics returns all registered timing metrics.
func AllTimingMetrics() []*TimingMetric {
	return []*TimingMetric{KeyDispatch, PointerDispatch, ComboboxInput, DataLoad, UIRender}
}

// ResetAll resets all timing metrics.
func ResetAll() {
	for _, m := range AllTimingMetrics() {
		m.Reset()
	}
}

// AllTimingStats returns stats for the metrics that have samples.
func AllTimingStats() []TimingStats {
	var stats []TimingStats
	for _, m := range AllTimingMetrics() {
		if m.Count() > 0 {
			stats = append(stats, m.Stats())
		}
	}
	return stats
}
