package domain

// ProcessView is a read-only picture of one process, rebuilt on every
// listing. Missing data degrades to empty strings and zeros.
type ProcessView struct {
	PID           int    `json:"pid"`
	User          string `json:"user"`
	Command       string `json:"command"`
	RAMKB         int64  `json:"ram_kb"`
	UptimeSeconds int64  `json:"uptime_seconds"`
}

// ProcessRow is a ProcessView together with its CPU readings, as handed to
// the presentation layers.
type ProcessRow struct {
	ProcessView
	CPU        Ratio `json:"cpu"`
	AverageCPU Ratio `json:"average_cpu"`
}
