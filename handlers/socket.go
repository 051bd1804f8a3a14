// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/vibepoll/vibepoll/engine"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Browser clients connect from the poll frontend's origin; CORS-style
	// origin restrictions are handled at the deployment edge.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type SocketHandler struct {
	engine *engine.Engine
}

func NewSocketHandler(eng *engine.Engine) *SocketHandler {
	return &SocketHandler{engine: eng}
}

// Socket handles GET /poll/socket
// WebSocket equivalent of the SSE stream: one JSON event per message, in
// the same shapes and order. The socket is push-only; votes go through
// POST /vote so every transport shares one vote path.
func (h *SocketHandler) Socket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error.
		slog.Warn("websocket upgrade failed", "error", err, "remote", r.RemoteAddr)
		return
	}
	defer conn.Close()

	sub := h.engine.Subscribe()
	defer sub.Close()

	slog.Info("socket opened", "remote", r.RemoteAddr, "subscribers", h.engine.SubscriberCount())

	// Inbound frames are discarded; reading only detects disconnect.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-done:
			slog.Info("socket closed", "remote", r.RemoteAddr)
			return

		case event, ok := <-sub.C():
			if !ok {
				// Evicted for not keeping up.
				msg := websocket.FormatCloseMessage(websocket.CloseTryAgainLater, "event buffer overflow")
				conn.WriteMessage(websocket.CloseMessage, msg)
				slog.Warn("socket evicted", "remote", r.RemoteAddr)
				return
			}
			if err := conn.WriteJSON(event); err != nil {
				slog.Warn("socket write failed", "error", err, "remote", r.RemoteAddr)
				return
			}
		}
	}
}
