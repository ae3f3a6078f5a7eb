package monitor

import (
	"math"
	"testing"

	"procwatch/internal/domain"
)

func TestProcessTracker_Snapshot(t *testing.T) {
	src := newFakeSource()
	src.clk = 100
	src.uptime = 100
	src.addProc(42, fakeProc{ticks: 250, start: 1000})
	tracker := NewProcessTracker(src)

	got := tracker.Snapshot(42)

	want := domain.CPUSample{Active: 2.5, Total: 90}
	if got != want {
		t.Errorf("Snapshot(42) = %+v, want %+v", got, want)
	}
	if tracker.Len() != 1 {
		t.Errorf("Len() = %d, want 1", tracker.Len())
	}
	if _, ok := tracker.LastKnownRatio(42); ok {
		t.Error("Snapshot must not record a ratio")
	}
}

func TestProcessTracker_Utilization(t *testing.T) {
	src := newFakeSource()
	src.clk = 100
	src.uptime = 100
	src.addProc(42, fakeProc{ticks: 250, start: 1000})
	tracker := NewProcessTracker(src)

	first := tracker.Utilization(42)
	if !approxEqual(first, 2.5/90) {
		t.Errorf("first Utilization(42) = %v, want %v", first, 2.5/90)
	}

	src.procs[42].ticks = 350
	src.uptime = 102

	second := tracker.Utilization(42)
	if !approxEqual(second, 0.5) {
		t.Errorf("second Utilization(42) = %v, want 0.5", second)
	}

	last, ok := tracker.LastKnownRatio(42)
	if !ok || last != second {
		t.Errorf("LastKnownRatio(42) = %v, %v; want %v, true", last, ok, second)
	}
}

func TestProcessTracker_SubSecondSampling(t *testing.T) {
	tests := []struct {
		name      string
		nextTicks float64
		check     func(float64) bool
		want      string
	}{
		{"no progress at all", 250, math.IsNaN, "NaN"},
		{"cpu time but no uptime", 300, func(r float64) bool { return math.IsInf(r, 1) }, "+Inf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := newFakeSource()
			src.uptime = 100
			src.addProc(7, fakeProc{ticks: 250, start: 1000})
			tracker := NewProcessTracker(src)

			tracker.Utilization(7)
			src.procs[7].ticks = tt.nextTicks

			if got := tracker.Utilization(7); !tt.check(got) {
				t.Errorf("Utilization(7) = %v, want %s", got, tt.want)
			}
		})
	}
}

func TestProcessTracker_UtilizationReadsCacheBeforeSnapshot(t *testing.T) {
	src := newFakeSource()
	src.clk = 1
	src.uptime = 10
	src.addProc(1, fakeProc{ticks: 4, start: 0})
	tracker := NewProcessTracker(src)

	tracker.Snapshot(1)
	src.procs[1].ticks = 6
	src.uptime = 14

	if got := tracker.Utilization(1); !approxEqual(got, 0.5) {
		t.Errorf("Utilization(1) = %v, want 0.5 (delta against the explicit snapshot)", got)
	}
}

func TestProcessTracker_PidReuse(t *testing.T) {
	src := newFakeSource()
	src.clk = 1
	src.uptime = 20
	src.addProc(500, fakeProc{ticks: 10, start: 0})
	tracker := NewProcessTracker(src)

	tracker.Utilization(500)

	// pid 500 now belongs to a process that started 0.1s ago.
	src.uptime = 100.1
	src.procs[500] = &fakeProc{ticks: 0.1, start: 100}

	transient := tracker.Utilization(500)
	want := (0.1 - 10) / ((100.1 - 100) - 20)
	if !approxEqual(transient, want) {
		t.Errorf("Utilization(500) after reuse = %v, want stale-delta %v", transient, want)
	}

	src.uptime = 101.1
	src.procs[500].ticks = 0.6

	if got := tracker.Utilization(500); !approxEqual(got, 0.5) {
		t.Errorf("Utilization(500) one cycle later = %v, want 0.5", got)
	}
}

func TestProcessTracker_AverageUtilization(t *testing.T) {
	src := newFakeSource()
	src.clk = 100
	src.uptime = 100
	src.addProc(42, fakeProc{ticks: 250, start: 1000})
	tracker := NewProcessTracker(src)

	if got := tracker.AverageUtilization(42); !math.IsNaN(got) {
		t.Errorf("AverageUtilization before sampling = %v, want NaN", got)
	}

	tracker.Utilization(42)
	calls := src.activeCalls

	if got := tracker.AverageUtilization(42); !approxEqual(got, 2.5/90) {
		t.Errorf("AverageUtilization(42) = %v, want %v", got, 2.5/90)
	}
	if src.activeCalls != calls {
		t.Error("AverageUtilization must not read the source")
	}
}

func TestProcessTracker_Retain(t *testing.T) {
	src := newFakeSource()
	src.uptime = 100
	for _, pid := range []int{1, 2, 3} {
		src.addProc(pid, fakeProc{ticks: 100, start: 100})
	}
	tracker := NewProcessTracker(src)
	for _, pid := range []int{1, 2, 3} {
		tracker.Utilization(pid)
	}

	evicted := tracker.Retain([]int{2, 4})

	if evicted != 2 {
		t.Errorf("Retain() evicted %d, want 2", evicted)
	}
	if tracker.Len() != 1 {
		t.Errorf("Len() = %d, want 1", tracker.Len())
	}
	for _, pid := range []int{1, 3} {
		if _, ok := tracker.LastKnownRatio(pid); ok {
			t.Errorf("ratio for pid %d should be evicted", pid)
		}
	}
	if _, ok := tracker.LastKnownRatio(2); !ok {
		t.Error("ratio for pid 2 should be kept")
	}
}
