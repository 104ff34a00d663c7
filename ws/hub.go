package ws

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Hub keeps track of active chat websocket sessions and fans messages out to
// all of them. Delivery is best effort: a failed write drops that session's
// copy of the message, nothing is retried.
type Hub struct {
	mu       sync.RWMutex
	sessions map[string]*websocket.Conn // sessionID -> conn
}

func NewHub() *Hub {
	return &Hub{sessions: make(map[string]*websocket.Conn)}
}

// Register adds a session, replacing any existing one with the same id.
func (h *Hub) Register(sessionID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if old, ok := h.sessions[sessionID]; ok && old != conn {
		// close old connection to avoid leaks
		_ = old.Close()
	}
	h.sessions[sessionID] = conn
}

// Unregister removes a session and closes its connection.
func (h *Hub) Unregister(sessionID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if conn, ok := h.sessions[sessionID]; ok {
		_ = conn.Close()
		delete(h.sessions, sessionID)
	}
}

// Broadcast sends a text message to every connected session, including the
// sender. Returns the number of sessions the write succeeded for.
// Broadcasts are serialized under the write lock; gorilla connections do not
// support concurrent writers.
func (h *Hub) Broadcast(payload []byte) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	delivered := 0
	for _, conn := range h.sessions {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err == nil {
			delivered++
		}
	}
	return delivered
}

// Count returns the number of connected sessions.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}
