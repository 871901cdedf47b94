package server

import (
	"chat-core/contract"
	"chat-core/sink"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WebSocketHandler registers every upgraded connection as a client of the
// hub for as long as it stays open.
type WebSocketHandler struct {
	log        *slog.Logger
	registry   contract.IRegistry
	bufferSize int
}

func NewWebSocketHandler(log *slog.Logger, registry contract.IRegistry, bufferSize int) *WebSocketHandler {
	return &WebSocketHandler{log: log, registry: registry, bufferSize: bufferSize}
}

func (h *WebSocketHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID, err := caller(r)
	if err != nil {
		writeError(h.log, w, err)
		return
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("Websocket upgrade failed", "error", err)
		return
	}

	clientID := uuid.NewString()
	client := sink.NewWebSocketSink(h.log, clientID, userID, conn, h.bufferSize)
	h.registry.Subscribe(clientID, client)
	client.Start()
	h.log.Info("Client connected", "client_id", clientID, "user_id", userID)

	go func() {
		defer func() {
			h.registry.Unsubscribe(clientID)
			h.log.Info("Client disconnected", "client_id", clientID, "user_id", userID)
		}()
		client.ReadLoop()
	}()
}
