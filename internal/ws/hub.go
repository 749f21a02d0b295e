package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/Vasu1712/chatter-backend/internal/models"
	"github.com/Vasu1712/chatter-backend/internal/storage"
)

// Hub owns the room registry: roomID -> member connections. Rooms are keyed
// by user id, created on first join and dropped when their last member
// leaves. All membership changes and broadcasts go through the hub's mutex,
// so a join racing a disconnect cannot lose an update.
type Hub struct {
	store storage.MessageStore

	mu    sync.Mutex
	rooms map[string]map[*Client]bool
}

func NewHub(store storage.MessageStore) *Hub {
	return &Hub{
		store: store,
		rooms: make(map[string]map[*Client]bool),
	}
}

// Run blocks until the context is cancelled, then disconnects every
// remaining client. The registry lives and dies with this call.
func (h *Hub) Run(ctx context.Context) error {
	<-ctx.Done()

	h.mu.Lock()
	defer h.mu.Unlock()
	for _, members := range h.rooms {
		for client := range members {
			h.removeLocked(client)
		}
	}

	return ctx.Err()
}

// Join adds the client to a room. Joining a room the client is already a
// member of is a no-op.
func (h *Hub) Join(client *Client, roomID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if client.closed || client.rooms[roomID] {
		return
	}

	if h.rooms[roomID] == nil {
		h.rooms[roomID] = make(map[*Client]bool)
	}
	h.rooms[roomID][client] = true
	client.rooms[roomID] = true
}

// Unregister removes the client from every room it joined and closes its
// outbound queue. Safe to call more than once.
func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(client)
}

func (h *Hub) removeLocked(client *Client) {
	if client.closed {
		return
	}

	for roomID := range client.rooms {
		delete(h.rooms[roomID], client)
		if len(h.rooms[roomID]) == 0 {
			delete(h.rooms, roomID)
		}
	}
	client.rooms = make(map[string]bool)
	client.closed = true
	close(client.Send)
}

// SendMessage persists a message and fans it out to the receiver's and the
// sender's rooms. On a store failure nothing is emitted and no error
// reaches the client; the write is logged and the connection stays open.
func (h *Hub) SendMessage(ctx context.Context, senderID, receiverID, body string) {
	msg, err := h.store.Create(ctx, senderID, receiverID, body)
	if err != nil {
		slog.Error("error sending message", "sender", senderID, "receiver", receiverID, "error", err)
		return
	}

	data, err := encodeEvent(models.EventMessage, msg)
	if err != nil {
		slog.Error("error encoding message event", "error", err)
		return
	}

	h.Broadcast(data, msg.ReceiverID, msg.SenderID)
}

// Broadcast delivers a frame once to every connection that is currently a
// member of any of the named rooms. Membership is snapshotted at call time;
// late joiners catch up through the history API. A client whose queue is
// full is dropped from the hub.
func (h *Hub) Broadcast(data []byte, roomIDs ...string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delivered := make(map[*Client]bool)
	for _, roomID := range roomIDs {
		for client := range h.rooms[roomID] {
			if delivered[client] {
				continue
			}
			delivered[client] = true

			select {
			case client.Send <- data:
			default:
				h.removeLocked(client)
			}
		}
	}
}

func encodeEvent(event string, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(models.Event{Event: event, Data: data})
}
