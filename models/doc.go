// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreatePollRequest: title, options, duration_seconds
  - LifecycleRequest: action ("start" or "end")
  - VoteRequest: option_id

# Response Types

Types for JSON responses:

  - PollResponse: poll (null when none exists)
  - VoteResponse: accepted, reason
  - HasVotedResponse: has_voted
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - Poll: the single current poll with its options and lifecycle state
  - Option: one selectable choice with its running tally
  - VoteRecord: one recorded vote, keyed by voter
  - Event: a snapshot or tick message delivered to subscribers

# Constants

Status values:

	StatusDraft  = "draft"
	StatusActive = "active"
	StatusEnded  = "ended"

Event kinds:

	EventSnapshot = "snapshot"
	EventTick     = "tick"

# Duration

Duration is seconds with an explicit sentinel for unlimited polls. The JSON
encoding accepts either a positive number or the string "unlimited":

	{"duration_seconds": 60}
	{"duration_seconds": "unlimited"}
*/
package models
