package ws

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/emberhollow/realmd/internal/protocol"
)

const writeTimeout = 5 * time.Second

// conn wraps a websocket connection with a write lock. Gorilla permits
// one concurrent writer; broadcasts and the session's own replies can
// race without it.
type conn struct {
	ws *websocket.Conn
	mu sync.Mutex
}

func (c *conn) send(data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.ws.SetWriteDeadline(time.Now().Add(writeTimeout))
	return c.ws.WriteMessage(websocket.TextMessage, data)
}

// Hub tracks live connections by session id and fans events out to
// them. It implements the notifier interfaces of the session core and
// the world registry. A failed write only logs; the reader loop owns
// connection teardown.
type Hub struct {
	mu    sync.RWMutex
	conns map[string]*conn
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{conns: make(map[string]*conn)}
}

// Register adds a connection under its session id.
func (h *Hub) Register(sessionID string, ws *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[sessionID] = &conn{ws: ws}
}

// Unregister drops the connection for a session id.
func (h *Hub) Unregister(sessionID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns, sessionID)
}

// Len returns the number of registered connections.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}

// Unicast sends an event to one session. Unknown session ids are
// ignored; the session may have closed between the event and delivery.
func (h *Hub) Unicast(sessionID, event string, payload any) {
	data, ok := h.encode(event, payload)
	if !ok {
		return
	}

	h.mu.RLock()
	c := h.conns[sessionID]
	h.mu.RUnlock()
	if c == nil {
		return
	}

	if err := c.send(data); err != nil {
		slog.Warn("unicast failed", "session_id", sessionID, "event", event, "error", err.Error())
	}
}

// Broadcast sends an event to every registered session.
func (h *Hub) Broadcast(event string, payload any) {
	h.BroadcastExcept("", event, payload)
}

// BroadcastExcept sends an event to every session but the named one.
func (h *Hub) BroadcastExcept(sessionID, event string, payload any) {
	data, ok := h.encode(event, payload)
	if !ok {
		return
	}

	h.mu.RLock()
	targets := make(map[string]*conn, len(h.conns))
	for id, c := range h.conns {
		if id != sessionID {
			targets[id] = c
		}
	}
	h.mu.RUnlock()

	for id, c := range targets {
		if err := c.send(data); err != nil {
			slog.Warn("broadcast failed", "session_id", id, "event", event, "error", err.Error())
		}
	}
}

func (h *Hub) encode(event string, payload any) ([]byte, bool) {
	data, err := json.Marshal(protocol.ServerEnvelope{Type: event, Payload: payload})
	if err != nil {
		slog.Error("failed to encode event", "event", event, "error", err.Error())
		return nil, false
	}
	return data, true
}
