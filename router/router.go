// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/vibepoll/vibepoll/cliparse"
	"github.com/vibepoll/vibepoll/engine"
	"github.com/vibepoll/vibepoll/handlers"
	"github.com/vibepoll/vibepoll/middleware"
)

func NewRouter(eng *engine.Engine, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	pollHandler := handlers.NewPollHandler(eng, cfg)
	votingHandler := handlers.NewVotingHandler(eng, cfg)
	streamHandler := handlers.NewStreamHandler(eng)
	socketHandler := handlers.NewSocketHandler(eng)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Poll lifecycle (admin operations) and current state
	mux.HandleFunc("GET /poll", middleware.WithLogging(pollHandler.GetPoll))
	mux.HandleFunc("POST /poll", middleware.WithLogging(pollHandler.CreatePoll))
	mux.HandleFunc("PATCH /poll", middleware.WithLogging(pollHandler.UpdateLifecycle))

	// Voting (public)
	mux.HandleFunc("POST /vote", middleware.WithLogging(votingHandler.Vote))
	mux.HandleFunc("GET /vote", middleware.WithLogging(votingHandler.HasVoted))

	// Real-time transports
	mux.HandleFunc("GET /poll/updates", middleware.WithLogging(streamHandler.Updates))
	mux.HandleFunc("GET /poll/socket", socketHandler.Socket)

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("vibepoll API v1"))
	})

	return middleware.CORS(mux)
}
