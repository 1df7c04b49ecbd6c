package handlers

import (
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"betblitz-backend/internal/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type wsMessage struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// WebSocketHandler fans the live-match ticker out to connected clients.
// It implements services.Broadcaster.
type WebSocketHandler struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

func NewWebSocketHandler() *WebSocketHandler {
	return &WebSocketHandler{
		clients: make(map[*websocket.Conn]bool),
	}
}

func (h *WebSocketHandler) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	// Drain reads so pings and close frames are processed; the feed is
	// one-way.
	go func() {
		defer h.drop(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (h *WebSocketHandler) drop(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
	conn.Close()
}

// BroadcastMatches pushes a board snapshot to every client. Dead
// connections are dropped on write failure.
func (h *WebSocketHandler) BroadcastMatches(matches []models.Match) {
	msg := wsMessage{Type: "matches", Data: matches}

	h.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(h.clients))
	for conn := range h.clients {
		conns = append(conns, conn)
	}
	h.mu.Unlock()

	for _, conn := range conns {
		if err := conn.WriteJSON(msg); err != nil {
			h.drop(conn)
		}
	}
}

// MatchesHandler serves the REST snapshot of the board.
type MatchesHandler struct {
	simulator interface{ Snapshot() []models.Match }
}

func NewMatchesHandler(sim interface{ Snapshot() []models.Match }) *MatchesHandler {
	return &MatchesHandler{simulator: sim}
}

func (h *MatchesHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.simulator.Snapshot())
}
