package monitor

import "procwatch/internal/domain"

// CPUTracker computes machine-wide CPU utilization between consecutive
// calls.
type CPUTracker struct {
	source CPUSource
	last   domain.CPUSample
}

func NewCPUTracker(source CPUSource) *CPUTracker {
	return &CPUTracker{source: source}
}

// Utilization returns the share of non-idle time since the previous call.
// The first call measures against a zero baseline, i.e. since boot. Two
// calls without real time passing in between return NaN. The result is
// not clamped to [0, 1].
func (t *CPUTracker) Utilization() float64 {
	prev := t.last
	curr := t.source.CPUCounters().Sample()
	t.last = curr

	return curr.RatioSince(prev)
}
