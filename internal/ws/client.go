package ws

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/Vasu1712/chatter-backend/internal/models"
	"github.com/gorilla/websocket"
)

const sendQueueSize = 256

// Client is one websocket connection. It reads inbound events off the wire
// and hands them to the hub; outbound frames arrive on Send and are drained
// by the write pump. rooms and closed are guarded by the hub's mutex.
type Client struct {
	UserID string
	Send   chan []byte

	hub  *Hub
	conn *websocket.Conn

	rooms  map[string]bool
	closed bool
}

func NewClient(hub *Hub, conn *websocket.Conn, userID string) *Client {
	return &Client{
		UserID: userID,
		Send:   make(chan []byte, sendQueueSize),
		hub:    hub,
		conn:   conn,
		rooms:  make(map[string]bool),
	}
}

// ReadPump consumes frames until the connection drops, then unregisters
// the client from the hub. Connection close is the only disconnect path.
func (c *Client) ReadPump(ctx context.Context) {
	defer func() {
		c.hub.Unregister(c)
		c.conn.Close()
	}()

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			return
		}
		c.handleEvent(ctx, data)
	}
}

func (c *Client) handleEvent(ctx context.Context, data []byte) {
	var event models.Event
	if err := json.Unmarshal(data, &event); err != nil {
		slog.Warn("dropping malformed frame", "user", c.UserID, "error", err)
		return
	}

	switch event.Event {
	case models.EventJoin:
		// The room id is taken from the payload as-is, with no check
		// against the connection's authenticated identity. This mirrors
		// the behavior of the system this was built against.
		var roomID string
		if err := json.Unmarshal(event.Data, &roomID); err != nil || roomID == "" {
			slog.Warn("dropping join with bad room id", "user", c.UserID, "error", err)
			return
		}
		c.hub.Join(c, roomID)

	case models.EventSendMessage:
		var payload models.SendMessagePayload
		if err := json.Unmarshal(event.Data, &payload); err != nil {
			slog.Warn("dropping malformed sendMessage", "user", c.UserID, "error", err)
			return
		}
		c.hub.SendMessage(ctx, payload.SenderID, payload.ReceiverID, payload.Body)

	default:
		slog.Warn("ignoring unknown event", "user", c.UserID, "event", event.Event)
	}
}

// WritePump drains the outbound queue onto the wire. It exits when the hub
// closes Send, taking the connection down with it.
func (c *Client) WritePump() {
	defer c.conn.Close()

	for data := range c.Send {
		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			return
		}
	}
}
