package websocket

import (
	"net/http"
	"slices"

	"github.com/gorilla/websocket"

	"procwatch/internal/domain"
	"procwatch/internal/logger"
	"procwatch/internal/transport/rest/middleware"
)

// SnapshotReader is satisfied by snapshot.MonitorStore.
type SnapshotReader interface {
	Get() (domain.Snapshot, bool)
}

// Handler upgrades requests to websocket connections. Authentication is
// left to the router middleware.
type Handler struct {
	hub      *Hub
	store    SnapshotReader
	upgrader websocket.Upgrader
	log      logger.Logger
}

func NewHandler(hub *Hub, store SnapshotReader, allowedOrigins []string, log logger.Logger) *Handler {
	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if origin == "" {
				return true
			}

			if !slices.Contains(allowedOrigins, "*") && !slices.Contains(allowedOrigins, origin) {
				log.Warn("websocket origin rejected", "origin", origin)
				return false
			}
			return true
		},
	}

	return &Handler{
		hub:      hub,
		store:    store,
		upgrader: upgrader,
		log:      log,
	}
}

func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Error("upgrade failed", "error", err)
		return
	}

	client := NewClient(h.hub, conn, h.log)

	// A new client starts from the latest snapshot instead of waiting for
	// the next tick.
	if snap, ok := h.store.Get(); ok {
		if message, err := Encode(domain.WsEventSnapshotUpdated, snap); err == nil {
			client.send <- message
		}
	}

	if !h.hub.Register(client) {
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()

	subject, _ := middleware.GetSubject(r.Context())
	h.log.Info("client connected", "remote_addr", conn.RemoteAddr().String(), "subject", subject)
}
