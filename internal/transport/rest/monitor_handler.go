package rest

import (
	"net/http"

	"procwatch/internal/domain"
)

// SnapshotReader is satisfied by snapshot.MonitorStore.
type SnapshotReader interface {
	Get() (domain.Snapshot, bool)
}

type MonitorHandler struct {
	store        SnapshotReader
	defaultLimit int
}

func NewMonitorHandler(store SnapshotReader, defaultLimit int) *MonitorHandler {
	return &MonitorHandler{
		store:        store,
		defaultLimit: defaultLimit,
	}
}

func (h *MonitorHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("OK"))
}

func (h *MonitorHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.store.Get()
	if !ok {
		JSONError(w, http.StatusServiceUnavailable, "No snapshot taken yet")
		return
	}

	JSONSuccess(w, http.StatusOK, APIResponse{Data: snap})
}

// Processes pages through the rows of the latest snapshot, busiest first.
func (h *MonitorHandler) Processes(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.store.Get()
	if !ok {
		JSONError(w, http.StatusServiceUnavailable, "No snapshot taken yet")
		return
	}

	q := r.URL.Query()
	opts := domain.ListOptions{
		Page:  getInt(q, "page", 1),
		Limit: getInt(q, "limit", h.defaultLimit),
	}

	res := domain.Paginate(snap.Processes, opts)

	JSONSuccess(w, http.StatusOK, APIResponse{
		Data: res.Data,
		Meta: res.Meta,
	})
}
