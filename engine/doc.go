// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package engine implements the live-polling state machine: the single
current poll, its vote counters, duplicate-vote prevention, and the
timer-driven lifecycle.

# Lifecycle

Polls progress through three states: draft → active → ended

	engine.Create(title, options, duration) → draft poll (ledger reset)
	engine.Start()                          → active, timer armed
	engine.End()                            → ended, timer disarmed

Transitions are monotonic; a command issued in the wrong state returns
InvalidStateError without mutating anything. Creating over a still-active
poll force-ends it first.

# Voting

	poll, err := engine.Vote(optionID, voterKey)

The duplicate check and the counter increment run as one atomic unit under
the engine's mutex. Rejections are the sentinel errors ErrNoActivePoll,
ErrDuplicateVote, and ErrUnknownOption; RejectionReason maps them to their
caller-facing wording.

# Timer

Bounded polls arm a lifecycle timer at start: one auto-end firing at the
configured deadline, plus a remaining-time tick every second. The auto-end
invokes the same end transition an admin command uses; if the state already
changed, the firing is a no-op. Unlimited polls (models.DurationUnlimited)
never arm the timer.

# Subscribers

Subscribe returns a broadcast.Subscription whose first event is the current
snapshot. Every committed mutation then broadcasts exactly one further
snapshot; ticks broadcast a lighter remaining-time event.
*/
package engine
