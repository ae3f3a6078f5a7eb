package snapshot

import "procwatch/internal/domain"

// MonitorStore keeps the most recent monitor snapshot. Snapshots are plain
// values, but the process slice is shared, so readers must not modify it.
type MonitorStore struct {
	Store[domain.Snapshot]
}

func NewMonitorStore() *MonitorStore {
	return &MonitorStore{}
}
