// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/vibepoll/vibepoll/auth"
	"github.com/vibepoll/vibepoll/cliparse"
	"github.com/vibepoll/vibepoll/engine"
	"github.com/vibepoll/vibepoll/middleware"
	"github.com/vibepoll/vibepoll/models"
)

type PollHandler struct {
	engine *engine.Engine
	cfg    cliparse.Config
}

func NewPollHandler(eng *engine.Engine, cfg cliparse.Config) *PollHandler {
	return &PollHandler{engine: eng, cfg: cfg}
}

// GetPoll handles GET /poll
// Returns the current poll, or null when none exists. Public.
func (h *PollHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.PollResponse{
		Poll: h.engine.CurrentPoll(),
	})
}

// CreatePoll handles POST /poll (admin only)
func (h *PollHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	if err := auth.ValidateAPIKey(r.Header.Get("Authorization"), h.cfg.AdminAPIKey); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin API key")
		return
	}

	var req models.CreatePollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	poll, err := h.engine.Create(req.Title, req.Options, req.DurationSeconds)
	if err != nil {
		var verr *engine.ValidationError
		if errors.As(err, &verr) {
			middleware.ErrorResponse(w, http.StatusBadRequest, verr.Msg)
			return
		}
		slog.Error("failed to create poll", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create poll")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.PollResponse{Poll: poll})
}

// UpdateLifecycle handles PATCH /poll (admin only)
// Accepts {"action": "start"} or {"action": "end"}.
func (h *PollHandler) UpdateLifecycle(w http.ResponseWriter, r *http.Request) {
	if err := auth.ValidateAPIKey(r.Header.Get("Authorization"), h.cfg.AdminAPIKey); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin API key")
		return
	}

	var req models.LifecycleRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	switch req.Action {
	case "start":
		poll, err := h.engine.Start()
		if err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "No poll available to start")
			return
		}
		middleware.JSONResponse(w, http.StatusOK, models.PollResponse{Poll: poll})

	case "end":
		poll, err := h.engine.End()
		if err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "No active poll to end")
			return
		}
		middleware.JSONResponse(w, http.StatusOK, models.PollResponse{Poll: poll})

	default:
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid action. Use 'start' or 'end'.")
	}
}
