package controllers

import (
	"deskgauge/internal/middleware"
	"deskgauge/internal/services"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Only the widget page served by this process connects
		origin := r.Header.Get("Origin")
		return origin == "" || origin == "http://"+r.Host || origin == "https://"+r.Host
	},
}

// HandleWebSocket connects a widget page: frames go out, shell events come in
func HandleWebSocket(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		if middleware.GlobalSecurityLogger != nil {
			middleware.GlobalSecurityLogger.LogFailedAuth(c.ClientIP(), "missing token")
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}

	claims, err := services.ValidateToken(token)
	if err != nil {
		if middleware.GlobalSecurityLogger != nil {
			middleware.GlobalSecurityLogger.LogFailedAuth(c.ClientIP(), "invalid token: "+err.Error())
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	hub := services.GetWebSocketHub()
	loop := services.GetDisplayLoop()
	if hub == nil || loop == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "widget not running"})
		return
	}

	if middleware.GlobalSecurityLogger != nil {
		middleware.GlobalSecurityLogger.LogWebSocketConnected(c.ClientIP(), claims.Session)
	}

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[WS] Upgrade error: %v", err)
		return
	}

	client := &services.ClientConnection{
		ID:    claims.Session,
		Conn:  ws,
		Send:  make(chan services.WebSocketMessage, 256),
		Close: make(chan bool),
	}

	hub.Register(client)

	go readPump(client, hub, loop)
	go writePump(client)
}

// readPump forwards shell events from the page to the display loop
func readPump(client *services.ClientConnection, hub *services.WebSocketHub, sink services.EventSink) {
	defer func() {
		hub.Unregister(client.ID)
		client.Conn.Close()
	}()

	validator := middleware.NewInputValidator()

	for {
		var msg services.WebSocketMessage
		err := client.Conn.ReadJSON(&msg)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("[WS] WebSocket error: %v", err)
			}
			return
		}

		if msg.Type == "ping" {
			select {
			case client.Send <- services.WebSocketMessage{Type: "pong", Timestamp: time.Now()}:
			default:
			}
			continue
		}

		ev, ok := msg.ToShellEvent()
		if !ok {
			log.Printf("[WS] Unknown message type: %s", msg.Type)
			select {
			case client.Send <- services.WebSocketMessage{Type: "error", Timestamp: time.Now(), Error: "unknown message type"}:
			default:
			}
			continue
		}

		if !validator.ValidatePointer(ev.X, ev.Y) {
			log.Printf("[WS] Dropping %s with out-of-range pointer (%d, %d)", ev.Type, ev.X, ev.Y)
			continue
		}

		if !sink.Send(ev) {
			// The widget closed; let the page see the connection drop
			return
		}
	}
}

// writePump writes messages to the WebSocket client
func writePump(client *services.ClientConnection) {
	defer func() {
		client.Conn.Close()
	}()

	for {
		select {
		case msg, ok := <-client.Send:
			if !ok {
				// Channel closed, close connection
				client.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			err := client.Conn.WriteJSON(msg)
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
					log.Printf("[WS] Write error: %v", err)
				}
				return
			}

		case <-client.Close:
			client.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}
	}
}
