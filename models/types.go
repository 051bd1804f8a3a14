// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Poll status constants
const (
	StatusDraft  = "draft"
	StatusActive = "active"
	StatusEnded  = "ended"
)

// DurationUnlimited marks a poll with no automatic end. It is a distinct
// sentinel, never derived from a numeric threshold: any positive number of
// seconds is a bounded duration, everything else is rejected at creation.
const DurationUnlimited Duration = -1

// Duration is a poll length in whole seconds, or DurationUnlimited.
//
// On the wire it is either a positive JSON number or the literal string
// "unlimited".
type Duration int

// Unlimited reports whether the duration disables the automatic end.
func (d Duration) Unlimited() bool {
	return d == DurationUnlimited
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s != "unlimited" {
			return fmt.Errorf("invalid duration %q", s)
		}
		*d = DurationUnlimited
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid duration: %w", err)
	}
	// The sentinel is never selectable through a number; "unlimited" is the
	// only wire encoding that disables the automatic end.
	if n <= 0 {
		return fmt.Errorf("invalid duration %d", n)
	}
	*d = Duration(n)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	if d == DurationUnlimited {
		return json.Marshal("unlimited")
	}
	return json.Marshal(int(d))
}

// Request types

type CreatePollRequest struct {
	Title           string   `json:"title"`
	Options         []string `json:"options"`
	DurationSeconds Duration `json:"duration_seconds"`
}

type LifecycleRequest struct {
	Action string `json:"action"` // "start" or "end"
}

type VoteRequest struct {
	OptionID string `json:"option_id"`
}

// Response types

type PollResponse struct {
	Poll *Poll `json:"poll"`
}

type VoteResponse struct {
	Accepted bool   `json:"accepted"`
	Reason   string `json:"reason,omitempty"`
}

type HasVotedResponse struct {
	HasVoted bool `json:"has_voted"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Domain types

type Poll struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Options         []Option   `json:"options"`
	Status          string     `json:"status"`
	DurationSeconds Duration   `json:"duration_seconds"`
	StartedAt       *time.Time `json:"started_at,omitempty"`
	EndsAt          *time.Time `json:"ends_at,omitempty"`
	EndedAt         *time.Time `json:"ended_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// Clone returns a deep copy safe to hand to callers and subscribers.
func (p *Poll) Clone() *Poll {
	if p == nil {
		return nil
	}
	cp := *p
	cp.Options = make([]Option, len(p.Options))
	copy(cp.Options, p.Options)
	return &cp
}

type Option struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Votes int    `json:"votes"`
}

// VoteRecord tracks one voter's vote within the current poll.
type VoteRecord struct {
	VoterKey   string    `json:"-"` // Never expose in JSON
	OptionID   string    `json:"option_id"`
	RecordedAt time.Time `json:"recorded_at"`
}

// Event kinds pushed to subscribers
const (
	EventSnapshot = "snapshot"
	EventTick     = "tick"
)

// Event is one message delivered to a subscriber. Snapshot events carry a
// full poll copy; tick events carry only the remaining seconds.
type Event struct {
	Kind             string `json:"kind"`
	Poll             *Poll  `json:"poll,omitempty"`
	RemainingSeconds *int   `json:"remaining_seconds,omitempty"`
}

// MarshalJSON keeps the two event shapes exact: a snapshot always carries a
// poll field, explicitly null when no poll exists, and a tick always carries
// remaining_seconds and never a poll.
func (e Event) MarshalJSON() ([]byte, error) {
	if e.Kind == EventTick {
		type tickEvent struct {
			Kind             string `json:"kind"`
			RemainingSeconds *int   `json:"remaining_seconds"`
		}
		return json.Marshal(tickEvent{Kind: e.Kind, RemainingSeconds: e.RemainingSeconds})
	}
	type snapshotEvent struct {
		Kind string `json:"kind"`
		Poll *Poll  `json:"poll"`
	}
	return json.Marshal(snapshotEvent{Kind: e.Kind, Poll: e.Poll})
}

// SnapshotEvent wraps a poll copy in a snapshot event.
func SnapshotEvent(poll *Poll) Event {
	return Event{Kind: EventSnapshot, Poll: poll}
}

// TickEvent builds a tick event for the given remaining time.
func TickEvent(remainingSeconds int) Event {
	return Event{Kind: EventTick, RemainingSeconds: &remainingSeconds}
}
