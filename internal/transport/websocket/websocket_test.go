package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"procwatch/internal/domain"
	"procwatch/internal/logger"
)

type stubStore struct {
	snap domain.Snapshot
	ok   bool
}

func (s stubStore) Get() (domain.Snapshot, bool) { return s.snap, s.ok }

type received struct {
	Event   string `json:"event"`
	Payload struct {
		TotalProcesses int `json:"total_processes"`
	} `json:"payload"`
}

func startServer(t *testing.T, store SnapshotReader) (*Hub, string) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	log := logger.NewNop()
	hub := NewHub(log)
	go hub.Run(ctx)

	h := NewHandler(hub, store, []string{"http://allowed.example"}, log)
	srv := httptest.NewServer(http.HandlerFunc(h.Serve))
	t.Cleanup(srv.Close)

	return hub, "ws" + strings.TrimPrefix(srv.URL, "http")
}

func readEvent(t *testing.T, conn *websocket.Conn) received {
	t.Helper()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	var ev received
	if err := json.Unmarshal(data, &ev); err != nil {
		t.Fatalf("decode %s: %v", data, err)
	}
	return ev
}

func TestHandler_SendsLatestThenPublished(t *testing.T) {
	hub, url := startServer(t, stubStore{snap: domain.Snapshot{TotalProcesses: 1}, ok: true})

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	first := readEvent(t, conn)
	if first.Event != domain.WsEventSnapshotUpdated || first.Payload.TotalProcesses != 1 {
		t.Errorf("first event = %+v, want latest snapshot", first)
	}

	hub.Publish(domain.Snapshot{TotalProcesses: 2})

	second := readEvent(t, conn)
	if second.Event != domain.WsEventSnapshotUpdated || second.Payload.TotalProcesses != 2 {
		t.Errorf("second event = %+v, want published snapshot", second)
	}
}

func TestHandler_RejectsUnknownOrigin(t *testing.T) {
	_, url := startServer(t, stubStore{})

	tests := []struct {
		name   string
		origin string
		ok     bool
	}{
		{"allowed", "http://allowed.example", true},
		{"rejected", "http://evil.example", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := http.Header{"Origin": []string{tt.origin}}
			conn, resp, err := websocket.DefaultDialer.Dial(url, header)
			if conn != nil {
				defer conn.Close()
			}

			if tt.ok && err != nil {
				t.Fatalf("dial: %v", err)
			}
			if !tt.ok {
				if err == nil {
					t.Fatal("dial succeeded, want rejection")
				}
				if resp == nil || resp.StatusCode != http.StatusForbidden {
					t.Errorf("response = %v, want 403", resp)
				}
			}
		})
	}
}

func TestHandler_WildcardOrigin(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	log := logger.NewNop()
	hub := NewHub(log)
	go hub.Run(ctx)

	h := NewHandler(hub, stubStore{}, []string{"*"}, log)
	srv := httptest.NewServer(http.HandlerFunc(h.Serve))
	defer srv.Close()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")

	for _, origin := range []string{"http://anything.example", "https://dash.internal:8443"} {
		t.Run(origin, func(t *testing.T) {
			conn, _, err := websocket.DefaultDialer.Dial(url, http.Header{"Origin": []string{origin}})
			if err != nil {
				t.Fatalf("dial with origin %s: %v", origin, err)
			}
			conn.Close()
		})
	}
}

func TestEncode(t *testing.T) {
	data, err := Encode(domain.WsEventSnapshotUpdated, domain.Snapshot{CPU: 0.5})
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	s := string(data)
	if !strings.Contains(s, `"event":"snapshot.updated"`) || !strings.Contains(s, `"cpu":0.5`) {
		t.Errorf("Encode() = %s", s)
	}
}

func TestHub_PublishWithoutClients(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub(logger.NewNop())

	done := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(done)
	}()

	hub.Publish(domain.Snapshot{})
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("hub did not stop")
	}

	if hub.Register(&Client{send: make(chan []byte, 1)}) {
		t.Error("Register() after stop = true, want false")
	}
}
