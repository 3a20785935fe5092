package services

import (
	"encoding/json"
	"log"
	"sync"

	"backend/config"
	"backend/models"

	"github.com/gorilla/websocket"
)

type WSClient struct {
	UserID uint
	Conn   *websocket.Conn
}

// RealtimeHub fans each user's tracker snapshot out to their open websocket
// connections whenever a delta or reset lands.
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

func (h *RealtimeHub) BroadcastProgress(userID uint, snapshot *models.CurrentProgress) {
	msg, _ := json.Marshal(snapshot)
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[userID] {
		_ = c.Conn.WriteMessage(websocket.TextMessage, msg)
	}
}

var progressHub *RealtimeHub

func InitProgressHub(h *RealtimeHub) {
	progressHub = h
}

// publishProgress pushes the current snapshot to the user's live
// connections. Called after the mutating transaction commits; a nil hub
// (tests) makes it a no-op.
func publishProgress(userID uint) {
	if progressHub == nil {
		return
	}
	var p models.CurrentProgress
	if err := config.DB.Where("user_id = ?", userID).First(&p).Error; err != nil {
		log.Printf("progress snapshot load failed for user %d: %v", userID, err)
		return
	}
	progressHub.BroadcastProgress(userID, &p)
}
