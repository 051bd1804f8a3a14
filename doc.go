// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the vibepoll API server.

Vibepoll is a live-polling service: one poll at a time, lifecycle-driven
(draft → active → ended), with every state change pushed to all connected
viewers over SSE or WebSocket within a second.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	ADMIN_API_KEY=... VOTER_KEY_SALT=... go run main.go

Or with flags:

	go run main.go -p 3000 -admin-key secret -voter-salt salt

A .env file in the working directory is loaded first.

# Configuration

Required settings:

  - ADMIN_API_KEY (--admin-key): Bearer token for poll lifecycle commands
  - VOTER_KEY_SALT (--voter-salt): Secret for hashing client IPs into
    voter keys

Optional settings:

  - PORT (-p): Server port (default: 3000)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - engine: the poll state machine (store, voter ledger, lifecycle timer)
  - broadcast: subscriber registry and event fan-out
  - handlers: HTTP request handlers (polls, voting, stream, socket)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Domain and request/response types
  - auth: Admin key validation and voter key derivation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
