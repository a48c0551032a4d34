package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"gallery-backend/internal/models"
)

// Gallery event types pushed to connected clients.
const (
	EventPhotoCreated    = "photo.created"
	EventPhotoUpdated    = "photo.updated"
	EventPhotoDeleted    = "photo.deleted"
	EventPhotosReordered = "photos.reordered"
)

// WSMessage is a gallery-change event sent over a WebSocket connection.
type WSMessage struct {
	Type   string         `json:"type"`
	Photo  *models.Photo  `json:"photo,omitempty"`
	Photos []models.Photo `json:"photos,omitempty"`
}

// WSHub fans gallery-change events out to every connected client. An admin
// UI holding a connection sees edits made from other sessions without
// polling.
type WSHub struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
}

// NewWSHub creates an empty hub.
func NewWSHub() *WSHub {
	return &WSHub{conns: make(map[*websocket.Conn]struct{})}
}

// Register adds a connection to the hub.
func (h *WSHub) Register(conn *websocket.Conn) {
	h.mu.Lock()
	h.conns[conn] = struct{}{}
	n := len(h.conns)
	h.mu.Unlock()

	log.Info().Int("connections", n).Msg("WebSocket client connected")
}

// Unregister removes and closes a connection.
func (h *WSHub) Unregister(conn *websocket.Conn) {
	h.mu.Lock()
	if _, ok := h.conns[conn]; ok {
		conn.Close()
		delete(h.conns, conn)
	}
	n := len(h.conns)
	h.mu.Unlock()

	log.Info().Int("connections", n).Msg("WebSocket client disconnected")
}

// Broadcast sends an event to every connected client. A connection that
// fails to accept the write is dropped.
func (h *WSHub) Broadcast(msg WSMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Error().Err(err).Str("type", msg.Type).Msg("Failed to marshal event")
		return
	}

	h.mu.Lock()
	var dead []*websocket.Conn
	for conn := range h.conns {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			dead = append(dead, conn)
		}
	}
	for _, conn := range dead {
		conn.Close()
		delete(h.conns, conn)
	}
	h.mu.Unlock()

	if len(dead) > 0 {
		log.Warn().Int("dropped", len(dead)).Msg("Dropped unresponsive WebSocket clients")
	}
}
