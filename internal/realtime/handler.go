package realtime

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/jukebox/internal/repositories"
	"github.com/desertthunder/jukebox/internal/shared"
	"github.com/gorilla/websocket"
)

// WSHandler upgrades HTTP requests to WebSocket connections and attaches
// them to the hub. Implements the server Handler interface.
type WSHandler struct {
	hub      *Hub
	songs    *repositories.SongRepository
	cfg      shared.RealtimeConfig
	upgrader websocket.Upgrader
	logger   *log.Logger
}

// NewWSHandler creates the upgrade handler. allowedOrigins follows the CORS
// configuration: an entry of "*" admits every origin.
func NewWSHandler(hub *Hub, songs *repositories.SongRepository, cfg shared.RealtimeConfig, allowedOrigins []string, logger *log.Logger) *WSHandler {
	return &WSHandler{
		hub:   hub,
		songs: songs,
		cfg:   cfg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return shared.OriginAllowed(allowedOrigins, r.Header.Get("Origin"))
			},
		},
		logger: logger,
	}
}

// Routes returns the HTTP routes this handler serves.
func (h *WSHandler) Routes() []string {
	return []string{"GET /ws"}
}

// ServeHTTP completes the WebSocket handshake, registers the client, and
// starts its pumps. The connection is handed off entirely; this request
// goroutine becomes the write pump's peer via the read pump.
func (h *WSHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	c, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	client := newClient(h.hub, c, h.songs, h.cfg, h.logger)
	h.hub.Register(client)

	go client.writePump()
	client.readPump(h.cfg.MaxMessageBytes)
}
