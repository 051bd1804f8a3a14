// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/vibepoll/vibepoll/auth"
	"github.com/vibepoll/vibepoll/cliparse"
	"github.com/vibepoll/vibepoll/engine"
	"github.com/vibepoll/vibepoll/middleware"
	"github.com/vibepoll/vibepoll/models"
)

type VotingHandler struct {
	engine *engine.Engine
	cfg    cliparse.Config
}

func NewVotingHandler(eng *engine.Engine, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{engine: eng, cfg: cfg}
}

// Vote handles POST /vote
// Business rejections (duplicate, no active poll, unknown option) are not
// errors: the response is 200 with accepted=false and a reason.
func (h *VotingHandler) Vote(w http.ResponseWriter, r *http.Request) {
	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.OptionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "option_id is required")
		return
	}

	voterKey, err := h.voterKey(r)
	if err != nil {
		slog.Error("failed to derive voter key", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record vote")
		return
	}

	_, err = h.engine.Vote(req.OptionID, voterKey)
	if err != nil {
		reason, ok := engine.RejectionReason(err)
		if !ok {
			slog.Error("failed to record vote", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record vote")
			return
		}
		middleware.JSONResponse(w, http.StatusOK, models.VoteResponse{
			Accepted: false,
			Reason:   reason,
		})
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.VoteResponse{Accepted: true})
}

// HasVoted handles GET /vote
// Reports whether the caller's voter key already voted in the current poll.
func (h *VotingHandler) HasVoted(w http.ResponseWriter, r *http.Request) {
	voterKey := auth.HashVoterKey(middleware.GetClientIP(r), h.cfg.VoterKeySalt)
	middleware.JSONResponse(w, http.StatusOK, models.HasVotedResponse{
		HasVoted: h.engine.HasVoted(voterKey),
	})
}

// voterKey derives the duplicate-prevention key for this request. Regular
// voters are keyed by a salted hash of their client IP. Admins holding a
// valid API key may set X-Admin-Simulation to get a unique throwaway key
// per request, which lets the admin panel generate demo votes.
func (h *VotingHandler) voterKey(r *http.Request) (string, error) {
	if r.Header.Get("X-Admin-Simulation") == "true" {
		if err := auth.ValidateAPIKey(r.Header.Get("Authorization"), h.cfg.AdminAPIKey); err == nil {
			return auth.GenerateSimulationKey()
		}
		// Without a valid admin key the header is ignored.
	}
	return auth.HashVoterKey(middleware.GetClientIP(r), h.cfg.VoterKeySalt), nil
}
