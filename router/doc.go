// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP route table.

# Routes

Uses Go 1.22+ method routing on http.ServeMux:

	GET   /health       → liveness check
	GET   /poll         → current poll (or null)
	POST  /poll         → create poll (admin)
	PATCH /poll         → start/end poll (admin)
	POST  /vote         → submit vote
	GET   /vote         → has the caller voted
	GET   /poll/updates → SSE event stream
	GET   /poll/socket  → WebSocket event stream

All routes except the WebSocket upgrade are wrapped with request logging;
the whole mux is wrapped with CORS for the browser frontends.
*/
package router
