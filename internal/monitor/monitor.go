package monitor

import (
	"math"

	"procwatch/internal/domain"
	"procwatch/internal/logger"
)

// Monitor is the single object a display consumes. Each accessor samples
// whatever it needs when called; there is no separate refresh step.
type Monitor struct {
	source   CounterSource
	cpu      *CPUTracker
	procs    *ProcessTracker
	registry *Registry

	os     string
	kernel string

	log logger.Logger
}

type options struct {
	policy EvictionPolicy
	log    logger.Logger
}

type Option func(*options)

func WithEvictionPolicy(p EvictionPolicy) Option {
	return func(o *options) { o.policy = p }
}

func WithLogger(l logger.Logger) Option {
	return func(o *options) { o.log = l }
}

// New reads the OS name and kernel version once; they do not change while
// the monitor runs.
func New(source CounterSource, opts ...Option) *Monitor {
	o := options{policy: KeepStale, log: logger.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	procs := NewProcessTracker(source)

	m := &Monitor{
		source:   source,
		cpu:      NewCPUTracker(source),
		procs:    procs,
		registry: NewRegistry(source, procs, o.policy, o.log.With("component", "registry")),
		os:       source.OperatingSystem(),
		kernel:   source.Kernel(),
		log:      o.log,
	}

	m.log.Debug("monitor initialized", "os", m.os, "kernel", m.kernel, "eviction", o.policy.String())

	return m
}

func (m *Monitor) OperatingSystem() string { return m.os }

func (m *Monitor) Kernel() string { return m.kernel }

// CPUUtilization is the machine-wide ratio since the previous call.
func (m *Monitor) CPUUtilization() float64 {
	return m.cpu.Utilization()
}

func (m *Monitor) MemoryUtilization() float64 {
	return m.source.MemoryUtilization()
}

// UpTime is the system uptime in whole seconds.
func (m *Monitor) UpTime() int64 {
	return wholeSeconds(math.Floor(m.source.UptimeSeconds()))
}

func (m *Monitor) TotalProcesses() int {
	return m.source.TotalProcesses()
}

func (m *Monitor) RunningProcesses() int {
	return m.source.RunningProcesses()
}

// Processes lists live processes, busiest first by their last reading.
func (m *Monitor) Processes() []domain.ProcessView {
	return m.registry.Listing()
}

// CurrentCPUUtilization samples pid and returns its ratio since the
// previous call for the same pid.
func (m *Monitor) CurrentCPUUtilization(pid int) float64 {
	return m.procs.Utilization(pid)
}

// AverageCPUUtilization is the lifetime average of pid as of its last
// sample. It does not sample.
func (m *Monitor) AverageCPUUtilization(pid int) float64 {
	return m.procs.AverageUtilization(pid)
}

// TrackedProcesses is the number of pids currently held in the caches.
func (m *Monitor) TrackedProcesses() int {
	return m.procs.Len()
}
