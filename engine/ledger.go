// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import (
	"time"

	"github.com/vibepoll/vibepoll/models"
)

// ledger records which voter keys have voted in the current poll. It is
// scoped to one poll identity: resetFor drops every prior record, so votes
// never carry over between polls.
//
// The ledger does no locking of its own. The engine's mutex guards it
// together with the poll, which is what makes the duplicate check and the
// counter increment one atomic unit.
type ledger struct {
	pollID string
	votes  map[string]models.VoteRecord
}

func newLedger() *ledger {
	return &ledger{votes: make(map[string]models.VoteRecord)}
}

func (l *ledger) hasVoted(pollID, voterKey string) bool {
	if l.pollID != pollID {
		return false
	}
	_, ok := l.votes[voterKey]
	return ok
}

// record inserts a vote record. The caller guarantees the duplicate check
// already ran under the same critical section.
func (l *ledger) record(pollID, voterKey, optionID string, at time.Time) {
	l.pollID = pollID
	l.votes[voterKey] = models.VoteRecord{
		VoterKey:   voterKey,
		OptionID:   optionID,
		RecordedAt: at,
	}
}

func (l *ledger) resetFor(newPollID string) {
	l.pollID = newPollID
	l.votes = make(map[string]models.VoteRecord)
}

func (l *ledger) count() int {
	return len(l.votes)
}
