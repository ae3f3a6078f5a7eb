package domain

const (
	WsEventSnapshotUpdated = "snapshot.updated"
)

type WsEvent struct {
	Event   string `json:"event"`
	Payload any    `json:"payload,omitempty"`
}
