//go:generate mockgen -destination=mocks/mock_source.go -package=mocks procwatch/internal/monitor CounterSource

// Package monitor turns cumulative kernel counters into utilization
// ratios for the whole machine and for each process.
//
// Nothing in this package is safe for concurrent use: every read advances
// a cache. Callers drive it from a single goroutine, and the cadence of
// their calls is the sampling interval.
package monitor

import "procwatch/internal/domain"

// CPUSource supplies machine-wide CPU category counters.
type CPUSource interface {
	CPUCounters() domain.CPUCounters
}

// ProcessCPUSource supplies what is needed to snapshot one process.
type ProcessCPUSource interface {
	// ClockTicks is the number of ticks per second.
	ClockTicks() float64
	// UptimeSeconds is the system uptime, possibly at one second resolution.
	UptimeSeconds() float64
	// ProcessActiveTicks is utime+stime+cutime+cstime of pid.
	ProcessActiveTicks(pid int) float64
	// ProcessStartTicks is the start time of pid in ticks since boot.
	ProcessStartTicks(pid int) float64
}

// ProcessSource enumerates processes and their metadata.
type ProcessSource interface {
	Pids() []int
	ProcessUID(pid int) string
	UserName(uid string) string
	ProcessCommand(pid int) string
	ProcessRAMKB(pid int) int64
	UptimeSeconds() float64
	ClockTicks() float64
	ProcessStartTicks(pid int) float64
}

// HostSource supplies machine facts passed through by the Monitor.
type HostSource interface {
	OperatingSystem() string
	Kernel() string
	MemoryUtilization() float64
	TotalProcesses() int
	RunningProcesses() int
}

// CounterSource is everything the Monitor reads. Implementations never
// fail: unreadable data comes back as zero or empty.
type CounterSource interface {
	CPUSource
	ProcessCPUSource
	ProcessSource
	HostSource
}
