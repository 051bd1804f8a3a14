// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vibepoll/vibepoll/broadcast"
	"github.com/vibepoll/vibepoll/models"
)

// Engine is the single source of truth for the current poll. All mutations
// are serialized through one mutex covering the poll and the voter ledger,
// so the vote path's duplicate-check-then-increment can never interleave
// with another vote or a lifecycle transition.
//
// Every successful mutation broadcasts exactly one snapshot to subscribers
// before the mutex is released; delivery is non-blocking, so no subscriber
// can stall the mutation path. Failure paths never broadcast.
type Engine struct {
	mu       sync.Mutex
	poll     *models.Poll
	voters   *ledger
	timer    *lifecycleTimer
	registry *broadcast.Registry

	// Test hooks; production values set by New.
	now       func() time.Time
	tickEvery time.Duration
}

func New() *Engine {
	return &Engine{
		voters:    newLedger(),
		timer:     &lifecycleTimer{},
		registry:  broadcast.NewRegistry(),
		now:       time.Now,
		tickEvery: time.Second,
	}
}

// Create replaces the current poll with a new draft poll. A still-active
// poll is force-ended first, through the same path an explicit end takes,
// and that final snapshot is broadcast before the replacement appears.
// The voter ledger is reset for the new poll.
func (e *Engine) Create(title string, optionTexts []string, duration models.Duration) (*models.Poll, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, &ValidationError{Msg: "title is required"}
	}

	options := make([]models.Option, 0, len(optionTexts))
	for _, text := range optionTexts {
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		options = append(options, models.Option{
			ID:   uuid.NewString(),
			Text: text,
		})
	}
	if len(options) < 2 {
		return nil, &ValidationError{Msg: "at least 2 options are required"}
	}

	if duration <= 0 && !duration.Unlimited() {
		return nil, &ValidationError{Msg: "duration must be a positive number of seconds or \"unlimited\""}
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.poll != nil && e.poll.Status == models.StatusActive {
		e.endLocked()
	}

	e.poll = &models.Poll{
		ID:              uuid.NewString(),
		Title:           title,
		Options:         options,
		Status:          models.StatusDraft,
		DurationSeconds: duration,
		CreatedAt:       e.now(),
	}
	e.voters.resetFor(e.poll.ID)
	e.broadcastSnapshotLocked()

	slog.Info("poll created", "poll_id", e.poll.ID, "title", title, "options", len(options))
	return e.poll.Clone(), nil
}

// Start transitions the current draft poll to active and arms the
// lifecycle timer for bounded polls.
func (e *Engine) Start() (*models.Poll, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.poll == nil || e.poll.Status != models.StatusDraft {
		return nil, &InvalidStateError{Msg: "no draft poll to start"}
	}

	now := e.now()
	e.poll.Status = models.StatusActive
	e.poll.StartedAt = &now

	if !e.poll.DurationSeconds.Unlimited() {
		endsAt := now.Add(time.Duration(e.poll.DurationSeconds) * time.Second)
		e.poll.EndsAt = &endsAt

		pollID := e.poll.ID
		e.timer.arm(endsAt.Sub(now), e.tickEvery,
			func() { e.autoEnd(pollID) },
			func() { e.tick(pollID) },
		)
	}

	e.broadcastSnapshotLocked()

	slog.Info("poll started", "poll_id", e.poll.ID, "duration_seconds", e.poll.DurationSeconds)
	return e.poll.Clone(), nil
}

// End transitions the current active poll to ended. The timer-driven
// automatic end goes through this same mutation under the same lock.
func (e *Engine) End() (*models.Poll, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.poll == nil || e.poll.Status != models.StatusActive {
		return nil, &InvalidStateError{Msg: "no active poll to end"}
	}

	e.endLocked()
	return e.poll.Clone(), nil
}

// Vote records one vote for optionID by voterKey. The duplicate check,
// option lookup, counter increment, and ledger insert form one atomic
// unit: of two concurrent votes with the same key, exactly one succeeds.
func (e *Engine) Vote(optionID, voterKey string) (*models.Poll, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.poll == nil || e.poll.Status != models.StatusActive {
		return nil, ErrNoActivePoll
	}

	if e.voters.hasVoted(e.poll.ID, voterKey) {
		return nil, ErrDuplicateVote
	}

	var option *models.Option
	for i := range e.poll.Options {
		if e.poll.Options[i].ID == optionID {
			option = &e.poll.Options[i]
			break
		}
	}
	if option == nil {
		return nil, ErrUnknownOption
	}

	option.Votes++
	e.voters.record(e.poll.ID, voterKey, optionID, e.now())
	e.broadcastSnapshotLocked()

	slog.Info("vote recorded", "poll_id", e.poll.ID, "option_id", optionID)
	return e.poll.Clone(), nil
}

// HasVoted reports whether voterKey already voted in the current poll.
func (e *Engine) HasVoted(voterKey string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.poll == nil {
		return false
	}
	return e.voters.hasVoted(e.poll.ID, voterKey)
}

// CurrentPoll returns a copy of the current poll, or nil when none exists.
func (e *Engine) CurrentPoll() *models.Poll {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.poll.Clone()
}

// Subscribe registers a listener. Its first event is a snapshot of the
// state at subscription time, taken under the same lock that registers it,
// so no committed mutation is missed or seen twice.
func (e *Engine) Subscribe() *broadcast.Subscription {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.registry.Add(models.SnapshotEvent(e.poll.Clone()))
}

// SubscriberCount returns the number of live subscribers.
func (e *Engine) SubscriberCount() int {
	return e.registry.Count()
}

// Close disarms the timer and drops every subscriber. Used on shutdown.
func (e *Engine) Close() {
	e.timer.disarm()
	e.registry.CloseAll()
}

// autoEnd is the timer's end callback. It re-checks poll identity and
// state under the lock: if an explicit end or a newer poll won the race,
// this is a defined no-op.
func (e *Engine) autoEnd(pollID string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.poll == nil || e.poll.ID != pollID || e.poll.Status != models.StatusActive {
		return
	}
	e.endLocked()
}

// tick broadcasts the remaining time while the armed poll is still active.
// It never mutates poll state.
func (e *Engine) tick(pollID string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.poll == nil || e.poll.ID != pollID || e.poll.Status != models.StatusActive || e.poll.EndsAt == nil {
		return
	}

	remaining := int(e.poll.EndsAt.Sub(e.now()) / time.Second)
	if remaining < 0 {
		remaining = 0
	}
	e.registry.Broadcast(models.TickEvent(remaining))
}

// endLocked performs the Active → Ended transition. Caller holds e.mu and
// has verified the poll is active.
func (e *Engine) endLocked() {
	now := e.now()
	e.poll.Status = models.StatusEnded
	e.poll.EndedAt = &now
	e.timer.disarm()
	e.broadcastSnapshotLocked()

	slog.Info("poll ended", "poll_id", e.poll.ID)
}

func (e *Engine) broadcastSnapshotLocked() {
	e.registry.Broadcast(models.SnapshotEvent(e.poll.Clone()))
}
