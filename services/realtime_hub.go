package services

import (
	"encoding/json"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// WSClient is one websocket connection belonging to a user. A user may hold
// several (dashboard open in two tabs).
type WSClient struct {
	ID     uuid.UUID
	UserID uint
	Conn   *websocket.Conn
}

// NewWSClient wraps an upgraded connection for the hub.
func NewWSClient(userID uint, conn *websocket.Conn) *WSClient {
	return &WSClient{ID: uuid.New(), UserID: userID, Conn: conn}
}

// RealtimeHub fans day-update events out to a user's open dashboard
// connections so they refetch without polling.
type RealtimeHub struct {
	mu      sync.RWMutex
	clients map[uint]map[*WSClient]struct{}
}

func NewRealtimeHub() *RealtimeHub {
	return &RealtimeHub{clients: make(map[uint]map[*WSClient]struct{})}
}

func (h *RealtimeHub) Register(c *WSClient) {
	h.mu.Lock()
	if h.clients[c.UserID] == nil {
		h.clients[c.UserID] = make(map[*WSClient]struct{})
	}
	h.clients[c.UserID][c] = struct{}{}
	h.mu.Unlock()
}

func (h *RealtimeHub) Unregister(c *WSClient) {
	h.mu.Lock()
	if set := h.clients[c.UserID]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.UserID)
		}
	}
	h.mu.Unlock()
	_ = c.Conn.Close()
}

// BroadcastDayUpdated tells every connection of userID that the given date's
// records changed. Write errors are ignored; a dead connection is cleaned up
// by its own read loop.
func (h *RealtimeHub) BroadcastDayUpdated(userID uint, date string) {
	msg, _ := json.Marshal(map[string]string{
		"type": "day.updated",
		"date": date,
	})
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[userID] {
		_ = c.Conn.WriteMessage(websocket.TextMessage, msg)
	}
}
