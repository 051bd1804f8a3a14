// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import "errors"

// Vote rejections. These are business outcomes, not faults: the HTTP layer
// reports them as {accepted: false, reason} rather than an error status.
var (
	ErrNoActivePoll  = errors.New("no active poll")
	ErrDuplicateVote = errors.New("voter has already voted in this poll")
	ErrUnknownOption = errors.New("unknown option")
)

// ValidationError reports malformed poll-creation input. No state changes.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// InvalidStateError reports a lifecycle command issued in the wrong state,
// such as starting a non-draft poll. No state changes.
type InvalidStateError struct {
	Msg string
}

func (e *InvalidStateError) Error() string {
	return e.Msg
}

// RejectionReason maps a vote error to its caller-facing reason string.
// The second return is false for errors that are not vote rejections.
func RejectionReason(err error) (string, bool) {
	switch {
	case errors.Is(err, ErrNoActivePoll):
		return "No active poll", true
	case errors.Is(err, ErrDuplicateVote):
		return "You have already voted in this poll", true
	case errors.Is(err, ErrUnknownOption):
		return "Invalid option", true
	}
	return "", false
}
