package models

import "encoding/json"

// Websocket event names, client->server and server->client.
const (
	EventJoin        = "join"
	EventSendMessage = "sendMessage"
	EventMessage     = "message"
)

// Event is the envelope every websocket frame carries. Data is decoded
// per event: a plain user id string for "join", a SendMessagePayload for
// "sendMessage", a Message for "message".
type Event struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// SendMessagePayload is the client payload of a "sendMessage" event.
type SendMessagePayload struct {
	SenderID   string `json:"senderId"`
	ReceiverID string `json:"receiverId"`
	Body       string `json:"message"`
}
