package system

import (
	"github.com/tklauser/go-sysconf"

	"procwatch/internal/domain"
	"procwatch/internal/logger"
)

const defaultClockTicks = 100

// CPUCounters returns the aggregate "cpu" line of /proc/stat. procfs
// already converts the ticks to seconds, which leaves ratios unchanged.
func (r *Reader) CPUCounters() domain.CPUCounters {
	stat, err := r.fs.Stat()
	if err != nil {
		r.log.Debug("failed to read /proc/stat", "error", err.Error())
		return domain.CPUCounters{}
	}

	c := stat.CPUTotal
	return domain.CPUCounters{
		User:      c.User,
		Nice:      c.Nice,
		System:    c.System,
		Idle:      c.Idle,
		IOWait:    c.Iowait,
		IRQ:       c.IRQ,
		SoftIRQ:   c.SoftIRQ,
		Steal:     c.Steal,
		Guest:     c.Guest,
		GuestNice: c.GuestNice,
	}
}

// TotalProcesses is the number of forks since boot.
func (r *Reader) TotalProcesses() int {
	stat, err := r.fs.Stat()
	if err != nil {
		r.log.Debug("failed to read /proc/stat", "error", err.Error())
		return 0
	}
	return int(stat.ProcessCreated)
}

func (r *Reader) RunningProcesses() int {
	stat, err := r.fs.Stat()
	if err != nil {
		r.log.Debug("failed to read /proc/stat", "error", err.Error())
		return 0
	}
	return int(stat.ProcessesRunning)
}

func (r *Reader) ClockTicks() float64 {
	return r.clk
}

func clockTicks(log logger.Logger) float64 {
	hz, err := sysconf.Sysconf(sysconf.SC_CLK_TCK)
	if err != nil || hz <= 0 {
		log.Debug("clock ticks unavailable, using default", "default", defaultClockTicks, "error", err)
		return defaultClockTicks
	}
	return float64(hz)
}
