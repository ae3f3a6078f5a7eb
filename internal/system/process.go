package system

import (
	"bufio"
	"os"
	"slices"
	"strconv"
	"strings"
)

// Pids lists the numeric entries of the proc root in ascending order.
func (r *Reader) Pids() []int {
	procs, err := r.fs.AllProcs()
	if err != nil {
		r.log.Debug("failed to enumerate processes", "error", err.Error())
		return nil
	}

	pids := make([]int, 0, len(procs))
	for _, p := range procs {
		pids = append(pids, p.PID)
	}
	slices.Sort(pids)

	return pids
}

// ProcessActiveTicks is utime+stime+cutime+cstime of pid.
func (r *Reader) ProcessActiveTicks(pid int) float64 {
	p, err := r.fs.Proc(pid)
	if err != nil {
		r.log.Debug("process not found", "pid", pid, "error", err.Error())
		return 0
	}

	stat, err := p.Stat()
	if err != nil {
		r.log.Debug("failed to read process stat", "pid", pid, "error", err.Error())
		return 0
	}

	return float64(stat.UTime) + float64(stat.STime) + float64(stat.CUTime) + float64(stat.CSTime)
}

// ProcessStartTicks is the start time of pid in ticks after boot.
func (r *Reader) ProcessStartTicks(pid int) float64 {
	p, err := r.fs.Proc(pid)
	if err != nil {
		r.log.Debug("process not found", "pid", pid, "error", err.Error())
		return 0
	}

	stat, err := p.Stat()
	if err != nil {
		r.log.Debug("failed to read process stat", "pid", pid, "error", err.Error())
		return 0
	}

	return float64(stat.Starttime)
}

// ProcessCommand is the command line of pid with arguments joined by
// spaces. Kernel threads have none and yield "".
func (r *Reader) ProcessCommand(pid int) string {
	p, err := r.fs.Proc(pid)
	if err != nil {
		r.log.Debug("process not found", "pid", pid, "error", err.Error())
		return ""
	}

	args, err := p.CmdLine()
	if err != nil {
		r.log.Debug("failed to read process cmdline", "pid", pid, "error", err.Error())
		return ""
	}

	return strings.Join(args, " ")
}

// ProcessUID is the real uid of pid as written in /proc/<pid>/status.
func (r *Reader) ProcessUID(pid int) string {
	fields := r.statusField(pid, "Uid")
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// ProcessRAMKB is the resident set size of pid in kB.
func (r *Reader) ProcessRAMKB(pid int) int64 {
	fields := r.statusField(pid, "VmRSS")
	if len(fields) == 0 {
		return 0
	}

	kb, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		r.log.Debug("failed to parse VmRSS", "pid", pid, "value", fields[0], "error", err.Error())
		return 0
	}
	return kb
}

// statusField returns the whitespace separated values of key in
// /proc/<pid>/status, or nil when the file or key is missing.
func (r *Reader) statusField(pid int, key string) []string {
	f, err := os.Open(r.path(strconv.Itoa(pid), "status"))
	if err != nil {
		r.log.Debug("failed to open process status", "pid", pid, "error", err.Error())
		return nil
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		name, value, ok := strings.Cut(scanner.Text(), ":")
		if !ok || name != key {
			continue
		}
		return strings.Fields(value)
	}

	return nil
}
