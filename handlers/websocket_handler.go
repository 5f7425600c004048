package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lucaferrario/tournament-manager/live"
)

type WebSocketHandler struct {
	hub *live.Hub
}

func NewWebSocketHandler(hub *live.Hub) *WebSocketHandler {
	return &WebSocketHandler{hub: hub}
}

func (h *WebSocketHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	topic := chi.URLParam(r, "topic")
	if !live.ValidTopic(topic) {
		badRequestResponse(w, r, errors.New("unknown topic"))
		return
	}

	if err := h.hub.ServeWS(w, r, topic); err != nil {
		// The upgrader has already written its own error response.
		slog.Warn("websocket upgrade failed",
			slog.String("topic", topic), slog.Any("error", err))
	}
}
