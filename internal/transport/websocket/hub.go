// Package websocket pushes every new snapshot to connected clients.
package websocket

import (
	"context"
	"encoding/json"

	"procwatch/internal/domain"
	"procwatch/internal/logger"
)

type Hub struct {
	clients map[*Client]bool

	register   chan *Client
	unregister chan *Client
	events     chan []byte
	done       chan struct{}

	log logger.Logger
}

func NewHub(log logger.Logger) *Hub {
	return &Hub{
		clients: make(map[*Client]bool),

		register:   make(chan *Client),
		unregister: make(chan *Client),
		events:     make(chan []byte, 16),
		done:       make(chan struct{}),

		log: log,
	}
}

// Run owns the client set until ctx is done, then disconnects everyone.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			h.log.Info("ws: client registered", "remote_addr", client.remoteAddr(), "total_clients", len(h.clients))

		case client := <-h.unregister:
			h.remove(client)

		case message := <-h.events:
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					h.log.Warn("ws: client channel full, dropping client", "remote_addr", client.remoteAddr())
					h.remove(client)
				}
			}

		case <-ctx.Done():
			for client := range h.clients {
				h.remove(client)
			}
			return
		}
	}
}

// Register hands a client to the hub. It reports false once the hub has
// stopped.
func (h *Hub) Register(c *Client) bool {
	select {
	case h.register <- c:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) Unregister(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

func (h *Hub) remove(client *Client) {
	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)
	close(client.send)
	h.log.Info("ws: client unregistered", "remote_addr", client.remoteAddr(), "total_clients", len(h.clients))
}

// Publish queues a snapshot for every client. It never blocks the caller:
// when the hub lags behind, the snapshot is dropped.
func (h *Hub) Publish(s domain.Snapshot) {
	message, err := Encode(domain.WsEventSnapshotUpdated, s)
	if err != nil {
		h.log.Error("ws: failed to marshal snapshot", "error", err)
		return
	}

	select {
	case h.events <- message:
	default:
		h.log.Warn("ws: event queue full, snapshot dropped")
	}
}

func Encode(event string, payload any) ([]byte, error) {
	return json.Marshal(domain.WsEvent{Event: event, Payload: payload})
}
