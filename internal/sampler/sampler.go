// Package sampler drives a monitor once per refresh and turns its readings
// into plain snapshots.
package sampler

import (
	"context"
	"time"

	"procwatch/internal/domain"
	"procwatch/internal/logger"
)

// RefreshInterval is the sampling clock of every display. It is not
// configurable.
const RefreshInterval = time.Second

// Monitor is the part of monitor.Monitor a sampler drives.
type Monitor interface {
	OperatingSystem() string
	Kernel() string
	CPUUtilization() float64
	MemoryUtilization() float64
	UpTime() int64
	TotalProcesses() int
	RunningProcesses() int
	Processes() []domain.ProcessView
	CurrentCPUUtilization(pid int) float64
	AverageCPUUtilization(pid int) float64
	TrackedProcesses() int
}

// Sampler is not safe for concurrent use; it owns the monitor it drives.
type Sampler struct {
	mon   Monitor
	limit int
	log   logger.Logger
	now   func() time.Time
}

// New returns a sampler keeping the limit busiest rows per snapshot. A
// limit of zero or less keeps every row.
func New(mon Monitor, limit int, log logger.Logger) *Sampler {
	return &Sampler{
		mon:   mon,
		limit: limit,
		log:   log,
		now:   time.Now,
	}
}

// Collect takes one reading of everything. Every listed process is
// sampled, not only the rows kept, so the next listing orders all of them
// by a fresh ratio. The rows keep the order of the listing, which is based
// on the previous refresh.
func (s *Sampler) Collect(ctx context.Context) domain.Snapshot {
	snap := domain.Snapshot{
		OS:               s.mon.OperatingSystem(),
		Kernel:           s.mon.Kernel(),
		CPU:              domain.Ratio(s.mon.CPUUtilization()),
		Memory:           domain.Ratio(s.mon.MemoryUtilization()),
		UptimeSeconds:    s.mon.UpTime(),
		TotalProcesses:   s.mon.TotalProcesses(),
		RunningProcesses: s.mon.RunningProcesses(),
	}

	views := s.mon.Processes()
	snap.ProcessesObserved = len(views)

	keep := len(views)
	if s.limit > 0 && s.limit < keep {
		keep = s.limit
	}
	rows := make([]domain.ProcessRow, 0, keep)

	for i, v := range views {
		if err := ctx.Err(); err != nil {
			s.log.Warn("sampling interrupted", "sampled", i, "listed", len(views), "error", err)
			break
		}

		cpu := s.mon.CurrentCPUUtilization(v.PID)
		if i >= keep {
			continue
		}

		rows = append(rows, domain.ProcessRow{
			ProcessView: v,
			CPU:         domain.Ratio(cpu),
			AverageCPU:  domain.Ratio(s.mon.AverageCPUUtilization(v.PID)),
		})
	}

	snap.Processes = rows
	snap.RecordedAt = s.now()

	s.log.Debug("snapshot collected", "processes", len(views), "rows", len(rows), "tracked", s.mon.TrackedProcesses())

	return snap
}
