package chat

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Vasu1712/chatter-backend/internal/auth"
	"github.com/Vasu1712/chatter-backend/internal/middleware"
	"github.com/Vasu1712/chatter-backend/internal/storage"
	"github.com/Vasu1712/chatter-backend/internal/ws"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
)

// Handler serves the send/history endpoints and the websocket upgrade.
type Handler struct {
	Store storage.MessageStore
	Hub   *ws.Hub
	Gate  *auth.Gate
}

type sendRequest struct {
	ReceiverID string `json:"receiverId"`
	Body       string `json:"message"`
}

// SendMessage creates a message from the authenticated caller. This path
// only persists; realtime delivery happens on the websocket path.
func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	senderID := middleware.UserID(r.Context())

	var req sendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ReceiverID == "" || req.Body == "" {
		respondJSON(w, http.StatusBadRequest, map[string]string{"message": "Receiver ID and message are required"})
		return
	}

	msg, err := h.Store.Create(r.Context(), senderID, req.ReceiverID, req.Body)
	if err != nil {
		slog.Error("error creating message", "sender", senderID, "error", err)
		respondJSON(w, http.StatusInternalServerError, map[string]string{"message": "Failed to send message"})
		return
	}

	respondJSON(w, http.StatusCreated, msg)
}

// GetMessages returns the full message log between the caller and the user
// named in the path, newest first.
func (h *Handler) GetMessages(w http.ResponseWriter, r *http.Request) {
	callerID := middleware.UserID(r.Context())
	peerID := mux.Vars(r)["userId"]

	msgs, err := h.Store.ListBetween(r.Context(), callerID, peerID)
	if err != nil {
		slog.Error("error listing messages", "caller", callerID, "peer", peerID, "error", err)
		respondJSON(w, http.StatusInternalServerError, map[string]string{"message": "Error retrieving messages"})
		return
	}

	respondJSON(w, http.StatusOK, msgs)
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// ServeWS authenticates the caller and upgrades the connection. The client
// joins no room until it sends a join event.
func (h *Handler) ServeWS(w http.ResponseWriter, r *http.Request) {
	userID, err := h.Gate.Authenticate(middleware.BearerToken(r))
	if err != nil {
		respondJSON(w, http.StatusUnauthorized, map[string]string{"message": "Not authorized"})
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("error upgrading connection", "user", userID, "error", err)
		return
	}

	client := ws.NewClient(h.Hub, conn, userID)
	go client.WritePump()
	// The request context dies when this handler returns; the pump outlives
	// it for as long as the connection stays open.
	go client.ReadPump(context.WithoutCancel(r.Context()))
}

// Health is an unauthenticated liveness probe.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("error encoding response", "error", err)
	}
}
