// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/vibepoll/vibepoll/engine"
	"github.com/vibepoll/vibepoll/middleware"
)

type StreamHandler struct {
	engine *engine.Engine
}

func NewStreamHandler(eng *engine.Engine) *StreamHandler {
	return &StreamHandler{engine: eng}
}

// Updates handles GET /poll/updates
// Server-Sent Events stream: the first event is a snapshot of the current
// state, then one event per committed mutation plus remaining-time ticks.
// The stream ends on client disconnect or when the subscriber is evicted.
func (h *StreamHandler) Updates(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Streaming unsupported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	sub := h.engine.Subscribe()
	defer sub.Close()

	slog.Info("stream opened", "remote", r.RemoteAddr, "subscribers", h.engine.SubscriberCount())

	for {
		select {
		case <-r.Context().Done():
			slog.Info("stream closed", "remote", r.RemoteAddr)
			return

		case event, ok := <-sub.C():
			if !ok {
				// Evicted: the client fell too far behind.
				slog.Warn("stream evicted", "remote", r.RemoteAddr)
				return
			}

			data, err := json.Marshal(event)
			if err != nil {
				slog.Error("failed to encode event", "error", err)
				continue
			}
			if _, err := fmt.Fprintf(w, "data: %s\n\n", data); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}
