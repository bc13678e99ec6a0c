package services

import (
	"deskgauge/internal/models"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// WebSocketMessage represents a message sent over WebSocket
type WebSocketMessage struct {
	Type      string      `json:"type"` // "frame", "pong", "error" out; shell event types in
	Timestamp time.Time   `json:"timestamp"`
	Data      interface{} `json:"data,omitempty"`
	Error     string      `json:"error,omitempty"`
	X         int         `json:"x,omitempty"` // pointer position for press/drag
	Y         int         `json:"y,omitempty"`
}

// ClientConnection represents a connected widget page
type ClientConnection struct {
	ID    string
	Conn  *websocket.Conn
	Send  chan WebSocketMessage
	Close chan bool
}

// WebSocketHub fans rendered frames out to every connected widget page.
// It implements Surface.
type WebSocketHub struct {
	clients    map[string]*ClientConnection
	broadcast  chan WebSocketMessage
	register   chan *ClientConnection
	unregister chan string
	mu         sync.RWMutex
	last       *WebSocketMessage
	done       chan bool
}

var wsHub *WebSocketHub

// InitWebSocketHub initializes the WebSocket hub
func InitWebSocketHub() *WebSocketHub {
	wsHub = NewWebSocketHub()
	go wsHub.run()
	return wsHub
}

// NewWebSocketHub creates a hub without starting it
func NewWebSocketHub() *WebSocketHub {
	return &WebSocketHub{
		clients:    make(map[string]*ClientConnection),
		broadcast:  make(chan WebSocketMessage, 256),
		register:   make(chan *ClientConnection),
		unregister: make(chan string),
		done:       make(chan bool),
	}
}

// run manages the hub's event loop
func (h *WebSocketHub) run() {
	for {
		select {
		case <-h.done:
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ID] = client
			last := h.last
			total := len(h.clients)
			h.mu.Unlock()
			log.Printf("[WS] Client connected: %s (total: %d)", client.ID, total)

			// A fresh page draws the current frame without waiting a tick
			if last != nil {
				select {
				case client.Send <- *last:
				default:
				}
			}

		case clientID := <-h.unregister:
			h.mu.Lock()
			if client, exists := h.clients[clientID]; exists {
				delete(h.clients, clientID)
				close(client.Send)
			}
			total := len(h.clients)
			h.mu.Unlock()
			log.Printf("[WS] Client disconnected: %s (total: %d)", clientID, total)

		case msg := <-h.broadcast:
			h.mu.RLock()
			for _, client := range h.clients {
				select {
				case client.Send <- msg:
				default:
					// Client's send channel is full, skip this message
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Render queues a frame for every client. It never blocks the display loop.
func (h *WebSocketHub) Render(frame models.Frame) {
	data, err := json.Marshal(frame)
	if err != nil {
		log.Printf("[WS] Error marshaling frame: %v", err)
		return
	}

	msg := WebSocketMessage{
		Type:      "frame",
		Timestamp: frame.RenderedAt,
		Data:      json.RawMessage(data),
	}

	h.mu.Lock()
	h.last = &msg
	h.mu.Unlock()

	select {
	case h.broadcast <- msg:
	default:
		// Channel full, skip this frame
	}
}

// Register adds a new client to the hub. It is a no-op once the hub stopped.
func (h *WebSocketHub) Register(client *ClientConnection) {
	select {
	case h.register <- client:
	case <-h.done:
	}
}

// Unregister removes a client from the hub. It is a no-op once the hub stopped.
func (h *WebSocketHub) Unregister(clientID string) {
	select {
	case h.unregister <- clientID:
	case <-h.done:
	}
}

// ClientCount returns the number of connected pages
func (h *WebSocketHub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// GetWebSocketHub returns the WebSocket hub
func GetWebSocketHub() *WebSocketHub {
	return wsHub
}

// StopWebSocketHub gracefully stops the hub
func StopWebSocketHub() {
	if wsHub != nil {
		close(wsHub.done)
	}
}

// ToShellEvent converts an inbound message to a shell event
func (m WebSocketMessage) ToShellEvent() (ShellEvent, bool) {
	switch EventType(m.Type) {
	case EventPress, EventDrag, EventRelease, EventToggleTheme,
		EventMinimize, EventRestore, EventClose, EventExit:
		return ShellEvent{Type: EventType(m.Type), X: m.X, Y: m.Y}, true
	default:
		return ShellEvent{}, false
	}
}
