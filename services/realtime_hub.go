package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

// ChangeEvent tells an open view to re-read and redraw. Date is set for log
// edits so the view can skip redraws of other days.
type ChangeEvent struct {
	Type string `json:"type"`
	User string `json:"user"`
	Date string `json:"date,omitempty"`
}

const EventProfileChanged = "profile_changed"

type WSClient struct {
	User string
	Conn *websocket.Conn
}

// RealtimeHub fans ChangeEvents out to every websocket watching a username.
type RealtimeHub struct {
	mu      sync.RWMutex
	clients map[string]map[*WSClient]struct{}
}

func NewRealtimeHub() *RealtimeHub {
	return &RealtimeHub{clients: make(map[string]map[*WSClient]struct{})}
}

func (h *RealtimeHub) Register(c *WSClient) {
	h.mu.Lock()
	if h.clients[c.User] == nil {
		h.clients[c.User] = make(map[*WSClient]struct{})
	}
	h.clients[c.User][c] = struct{}{}
	h.mu.Unlock()
}

func (h *RealtimeHub) Unregister(c *WSClient) {
	h.mu.Lock()
	if set := h.clients[c.User]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.User)
		}
	}
	h.mu.Unlock()
	_ = c.Conn.Close()
}

// NotifyChanged broadcasts a profile_changed event for user. Pass date for
// log edits, "" for goal/key changes that affect every day.
func (h *RealtimeHub) NotifyChanged(user, date string) {
	msg, _ := json.Marshal(ChangeEvent{Type: EventProfileChanged, User: user, Date: date})
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[user] {
		_ = c.Conn.WriteMessage(websocket.TextMessage, msg)
	}
}
