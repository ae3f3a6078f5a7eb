package domain

import "time"

// Snapshot bundles everything a display needs for one refresh. It holds
// plain values only.
type Snapshot struct {
	OS                string       `json:"os"`
	Kernel            string       `json:"kernel"`
	CPU               Ratio        `json:"cpu"`
	Memory            Ratio        `json:"memory"`
	UptimeSeconds     int64        `json:"uptime_seconds"`
	TotalProcesses    int          `json:"total_processes"`
	RunningProcesses  int          `json:"running_processes"`
	Processes         []ProcessRow `json:"processes"`
	ProcessesObserved int          `json:"processes_observed"`
	RecordedAt        time.Time    `json:"recorded_at"`
}
