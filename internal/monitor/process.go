package monitor

import (
	"math"

	"procwatch/internal/domain"
)

// ProcessTracker computes per-process CPU utilization. It keeps two caches
// keyed by pid: the raw (active, uptime) snapshot used for the next delta,
// and the last computed ratio used for ordering. Only Snapshot and
// Utilization write to them.
//
// Pids are recycled by the kernel. A new process that inherits a cached
// pid gets one meaningless reading before the next call corrects it.
type ProcessTracker struct {
	source    ProcessCPUSource
	snapshots map[int]domain.CPUSample
	ratios    map[int]float64
}

func NewProcessTracker(source ProcessCPUSource) *ProcessTracker {
	return &ProcessTracker{
		source:    source,
		snapshots: make(map[int]domain.CPUSample),
		ratios:    make(map[int]float64),
	}
}

// Snapshot reads the process counters, replaces the cached entry for pid
// and returns it. Active is CPU seconds, Total is seconds since start.
func (t *ProcessTracker) Snapshot(pid int) domain.CPUSample {
	clk := t.source.ClockTicks()

	s := domain.CPUSample{
		Active: t.source.ProcessActiveTicks(pid) / clk,
		Total:  t.source.UptimeSeconds() - t.source.ProcessStartTicks(pid)/clk,
	}
	t.snapshots[pid] = s

	return s
}

// Utilization samples pid and returns its utilization since the previous
// sample. Uptime only advances once per second, so calls closer together
// than that return 0, NaN or +Inf.
func (t *ProcessTracker) Utilization(pid int) float64 {
	prev := t.snapshots[pid]
	curr := t.Snapshot(pid)

	ratio := curr.RatioSince(prev)
	t.ratios[pid] = ratio

	return ratio
}

// LastKnownRatio returns the ratio computed by the latest Utilization call
// for pid without sampling.
func (t *ProcessTracker) LastKnownRatio(pid int) (float64, bool) {
	r, ok := t.ratios[pid]
	return r, ok
}

// AverageUtilization is the lifetime average of pid as of its cached
// snapshot: CPU seconds over seconds alive. NaN if pid was never sampled.
func (t *ProcessTracker) AverageUtilization(pid int) float64 {
	s, ok := t.snapshots[pid]
	if !ok {
		return math.NaN()
	}
	return s.Active / s.Total
}

// Retain drops every cached pid not present in live and reports how many
// were dropped.
func (t *ProcessTracker) Retain(live []int) int {
	keep := make(map[int]struct{}, len(live))
	for _, pid := range live {
		keep[pid] = struct{}{}
	}

	evicted := 0
	for pid := range t.snapshots {
		if _, ok := keep[pid]; !ok {
			delete(t.snapshots, pid)
			delete(t.ratios, pid)
			evicted++
		}
	}
	for pid := range t.ratios {
		if _, ok := keep[pid]; !ok {
			delete(t.ratios, pid)
		}
	}

	return evicted
}

// Len is the number of pids with a cached snapshot.
func (t *ProcessTracker) Len() int {
	return len(t.snapshots)
}
