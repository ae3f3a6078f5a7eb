package domain

// CPUCounters holds the cumulative time spent in each /proc/stat category
// since boot, in ticks or seconds depending on the source.
type CPUCounters struct {
	User      float64 `json:"user"`
	Nice      float64 `json:"nice"`
	System    float64 `json:"system"`
	Idle      float64 `json:"idle"`
	IOWait    float64 `json:"iowait"`
	IRQ       float64 `json:"irq"`
	SoftIRQ   float64 `json:"softirq"`
	Steal     float64 `json:"steal"`
	Guest     float64 `json:"guest"`
	GuestNice float64 `json:"guest_nice"`
}

// CPUCountersFromFields maps a category vector in /proc/stat order
// (user, nice, system, idle, iowait, irq, softirq, steal, guest, guest_nice).
// Missing trailing categories are zero, extra ones are ignored.
func CPUCountersFromFields(fields []float64) CPUCounters {
	var v [10]float64
	copy(v[:], fields)

	return CPUCounters{
		User:      v[0],
		Nice:      v[1],
		System:    v[2],
		Idle:      v[3],
		IOWait:    v[4],
		IRQ:       v[5],
		SoftIRQ:   v[6],
		Steal:     v[7],
		Guest:     v[8],
		GuestNice: v[9],
	}
}

// Sample folds the categories into an (active, total) pair. Guest time is
// already included in user and nice by the kernel, so it is not added again.
func (c CPUCounters) Sample() CPUSample {
	active := c.User + c.Nice + c.System + c.IRQ + c.SoftIRQ + c.Steal
	idle := c.Idle + c.IOWait

	return CPUSample{
		Active: active,
		Total:  active + idle,
	}
}

// CPUSample is one captured (active, total) pair for a single entity.
type CPUSample struct {
	Active float64 `json:"active"`
	Total  float64 `json:"total"`
}

// RatioSince returns Δactive/Δtotal against an earlier sample of the same
// entity. Degenerate deltas yield NaN or ±Inf and are returned as is.
func (s CPUSample) RatioSince(prev CPUSample) float64 {
	return (s.Active - prev.Active) / (s.Total - prev.Total)
}
