package monitor

import "procwatch/internal/domain"

type fakeProc struct {
	ticks float64
	start float64
	uid   string
	cmd   string
	ramKB int64
}

// fakeSource is an in-memory CounterSource. CPU counters are served in
// order and the last one repeats.
type fakeSource struct {
	cpu      []domain.CPUCounters
	cpuCalls int

	clk    float64
	uptime float64

	pids  []int
	procs map[int]*fakeProc
	users map[string]string

	activeCalls int
	hostCalls   int
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		clk:   100,
		procs: make(map[int]*fakeProc),
		users: map[string]string{"0": "root", "1000": "alice"},
	}
}

func (f *fakeSource) addProc(pid int, p fakeProc) {
	f.pids = append(f.pids, pid)
	f.procs[pid] = &p
}

func (f *fakeSource) CPUCounters() domain.CPUCounters {
	if len(f.cpu) == 0 {
		return domain.CPUCounters{}
	}
	i := min(f.cpuCalls, len(f.cpu)-1)
	f.cpuCalls++
	return f.cpu[i]
}

func (f *fakeSource) ClockTicks() float64    { return f.clk }
func (f *fakeSource) UptimeSeconds() float64 { return f.uptime }

func (f *fakeSource) ProcessActiveTicks(pid int) float64 {
	f.activeCalls++
	if p, ok := f.procs[pid]; ok {
		return p.ticks
	}
	return 0
}

func (f *fakeSource) ProcessStartTicks(pid int) float64 {
	if p, ok := f.procs[pid]; ok {
		return p.start
	}
	return 0
}

func (f *fakeSource) Pids() []int {
	return append([]int(nil), f.pids...)
}

func (f *fakeSource) ProcessUID(pid int) string {
	if p, ok := f.procs[pid]; ok {
		return p.uid
	}
	return ""
}

func (f *fakeSource) UserName(uid string) string { return f.users[uid] }

func (f *fakeSource) ProcessCommand(pid int) string {
	if p, ok := f.procs[pid]; ok {
		return p.cmd
	}
	return ""
}

func (f *fakeSource) ProcessRAMKB(pid int) int64 {
	if p, ok := f.procs[pid]; ok {
		return p.ramKB
	}
	return 0
}

func (f *fakeSource) OperatingSystem() string { f.hostCalls++; return "Test Linux 1.0" }
func (f *fakeSource) Kernel() string          { f.hostCalls++; return "6.1.0-test" }

func (f *fakeSource) MemoryUtilization() float64 { return 0.25 }
func (f *fakeSource) TotalProcesses() int        { return 4242 }
func (f *fakeSource) RunningProcesses() int      { return 3 }

func vec(fields ...float64) domain.CPUCounters {
	return domain.CPUCountersFromFields(fields)
}
