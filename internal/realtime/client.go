package realtime

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/jukebox/internal/models"
	"github.com/desertthunder/jukebox/internal/repositories"
	"github.com/desertthunder/jukebox/internal/shared"
	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"
)

const (
	// writeWait is the deadline for a single outbound write.
	writeWait = 10 * time.Second
	// pongWait is how long a connection may stay silent before it is
	// considered dead.
	pongWait = 60 * time.Second
	// pingPeriod must be shorter than pongWait.
	pingPeriod = (pongWait * 9) / 10
)

// Inbound event names understood by the read pump.
const eventAddSong = "add_song"

// conn is the subset of *websocket.Conn the pumps use.
type conn interface {
	ReadMessage() (int, []byte, error)
	WriteMessage(messageType int, data []byte) error
	SetReadLimit(limit int64)
	SetReadDeadline(t time.Time) error
	SetWriteDeadline(t time.Time) error
	SetPongHandler(h func(appData string) error)
	Close() error
}

// Client is one WebSocket connection registered with a [Hub].
type Client struct {
	// ID identifies the connection in logs only.
	ID string

	hub     *Hub
	conn    conn
	send    chan []byte
	songs   *repositories.SongRepository
	limiter *rate.Limiter
	logger  *log.Logger
}

// newClient wraps an upgraded connection. The send buffer and message rate
// come from the realtime config section.
func newClient(hub *Hub, c conn, songs *repositories.SongRepository, cfg shared.RealtimeConfig, logger *log.Logger) *Client {
	id := shared.GenerateID()
	return &Client{
		ID:      id,
		hub:     hub,
		conn:    c,
		send:    make(chan []byte, cfg.SendBuffer),
		songs:   songs,
		limiter: rate.NewLimiter(rate.Limit(cfg.MessageRate), cfg.MessageBurst),
		logger:  shared.WithLogger(logger, "client", id),
	}
}

// readPump consumes inbound messages until the connection closes, then
// removes the client from the hub.
func (c *Client) readPump(maxMessageBytes int64) {
	defer func() {
		c.hub.Unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageBytes)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Warn("connection closed unexpectedly", "error", err)
			}
			return
		}

		if !c.limiter.Allow() {
			c.logger.Warn("message rate exceeded, dropping")
			continue
		}

		if err := c.handleMessage(raw); err != nil {
			c.logger.Warn("inbound message rejected", "error", err)
		}
	}
}

// handleMessage dispatches one inbound envelope.
//
// add_song validates both fields before any store call; a missing field is a
// validation error, logged and dropped with no reply. The triggered new_song
// broadcast reaches the sender through the hub like any other client.
func (c *Client) handleMessage(raw []byte) error {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("%w: malformed envelope: %v", shared.ErrInvalidInput, err)
	}

	switch env.Event {
	case eventAddSong:
		var song models.Song
		if len(env.Data) > 0 {
			if err := json.Unmarshal(env.Data, &song); err != nil {
				return fmt.Errorf("%w: malformed add_song data: %v", shared.ErrInvalidInput, err)
			}
		}
		if _, err := c.songs.Create(song); err != nil {
			return fmt.Errorf("add_song failed: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown event %q", shared.ErrInvalidInput, env.Event)
	}
}

// writePump drains the send channel onto the connection and keeps it alive
// with periodic pings. Exits when the hub closes the channel or a write
// fails.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case frame, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				c.logger.Warn("write failed", "error", err)
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
