// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the vibepoll API.

# Handler Types

Each handler is a struct with engine and config dependencies:

  - PollHandler: current poll retrieval and lifecycle (create, start, end)
  - VotingHandler: vote submission and has-voted checks
  - StreamHandler: SSE push stream of poll events
  - SocketHandler: WebSocket push stream of poll events

Handlers are created via constructor functions that accept *engine.Engine
and Config:

	pollHandler := handlers.NewPollHandler(eng, cfg)

# Poll Lifecycle

Polls progress through three states: draft → active → ended

	POST  /poll                    → CreatePoll (admin)
	PATCH /poll {"action":"start"} → UpdateLifecycle (admin)
	PATCH /poll {"action":"end"}   → UpdateLifecycle (admin)
	GET   /poll                    → GetPoll (public)

Admin operations require an Authorization: Bearer header matching the
configured ADMIN_API_KEY.

# Voting

	POST /vote {"option_id": "..."} → Vote
	GET  /vote                      → HasVoted

Voters are keyed by a salted hash of their client IP. Business rejections
come back as 200 {accepted:false, reason}; only malformed requests are 400.
With a valid admin key, the X-Admin-Simulation header makes each vote use a
fresh throwaway key so the admin panel can generate demo traffic.

# Real-Time Transports

	GET /poll/updates → SSE stream
	GET /poll/socket  → WebSocket

Both deliver the same JSON events in commit order: an immediate snapshot,
then one snapshot per mutation and a remaining-time tick each second while
a bounded poll is active.
*/
package handlers
