package chat

import (
	"net/http"

	"github.com/Vasu1712/chatter-backend/internal/middleware"
	"github.com/gorilla/mux"
)

// RegisterRoutes wires the chat endpoints onto the router. The REST surface
// sits behind the auth middleware; the websocket endpoint authenticates
// during the upgrade; health is open.
func RegisterRoutes(r *mux.Router, handler *Handler) {
	authed := r.PathPrefix("/api/chat").Subrouter()
	authed.Use(middleware.Auth(handler.Gate))
	authed.HandleFunc("", handler.SendMessage).Methods(http.MethodPost)
	authed.HandleFunc("/message/{userId}", handler.GetMessages).Methods(http.MethodGet)

	r.HandleFunc("/ws/chat", handler.ServeWS)
	r.HandleFunc("/healthz", handler.Health).Methods(http.MethodGet)
}
