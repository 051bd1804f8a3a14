// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bufio"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/vibepoll/vibepoll/models"
	"github.com/vibepoll/vibepoll/testutil"
)

// readSSEEvent reads lines until one data: payload has been decoded.
func readSSEEvent(t *testing.T, reader *bufio.Reader) models.Event {
	t.Helper()

	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			t.Fatalf("Failed to read SSE line: %v", err)
		}
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "data: ") {
			continue
		}

		var event models.Event
		if err := json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &event); err != nil {
			t.Fatalf("Failed to decode SSE event: %v", err)
		}
		return event
	}
}

func TestStreamInitialSnapshot(t *testing.T) {
	e := testutil.NewTestEngine(t)
	h := NewStreamHandler(e)

	poll := testutil.CreateTestPoll(t, e, models.StatusDraft, 60)

	srv := httptest.NewServer(http.HandlerFunc(h.Updates))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	if err != nil {
		t.Fatalf("Failed to connect: %v", err)
	}
	defer resp.Body.Close()

	if ct := resp.Header.Get("Content-Type"); ct != "text/event-stream" {
		t.Errorf("Expected text/event-stream, got %s", ct)
	}

	event := readSSEEvent(t, bufio.NewReader(resp.Body))
	if event.Kind != models.EventSnapshot {
		t.Errorf("Expected snapshot first, got %s", event.Kind)
	}
	if event.Poll == nil || event.Poll.ID != poll.ID {
		t.Errorf("Initial snapshot carries wrong poll: %+v", event.Poll)
	}
	for _, opt := range event.Poll.Options {
		if opt.Votes != 0 {
			t.Errorf("New stream saw non-zero tally: %d", opt.Votes)
		}
	}
}

func TestStreamNullSnapshotWithoutPoll(t *testing.T) {
	e := testutil.NewTestEngine(t)
	h := NewStreamHandler(e)

	srv := httptest.NewServer(http.HandlerFunc(h.Updates))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	if err != nil {
		t.Fatalf("Failed to connect: %v", err)
	}
	defer resp.Body.Close()

	event := readSSEEvent(t, bufio.NewReader(resp.Body))
	if event.Kind != models.EventSnapshot || event.Poll != nil {
		t.Errorf("Expected snapshot with null poll, got %+v", event)
	}
}

func TestStreamDeliversVoteSnapshots(t *testing.T) {
	e := testutil.NewTestEngine(t)
	h := NewStreamHandler(e)

	poll := testutil.CreateTestPoll(t, e, models.StatusActive, 60)

	srv := httptest.NewServer(http.HandlerFunc(h.Updates))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	if err != nil {
		t.Fatalf("Failed to connect: %v", err)
	}
	defer resp.Body.Close()
	reader := bufio.NewReader(resp.Body)

	readSSEEvent(t, reader) // initial snapshot

	if _, err := e.Vote(poll.Options[0].ID, "voter-1"); err != nil {
		t.Fatalf("Vote failed: %v", err)
	}

	event := readSSEEvent(t, reader)
	if event.Kind != models.EventSnapshot {
		t.Fatalf("Expected snapshot after vote, got %s", event.Kind)
	}
	if event.Poll.Options[0].Votes != 1 {
		t.Errorf("Expected 1 vote in pushed snapshot, got %d", event.Poll.Options[0].Votes)
	}
}

func TestStreamUnsubscribesOnDisconnect(t *testing.T) {
	e := testutil.NewTestEngine(t)
	h := NewStreamHandler(e)

	srv := httptest.NewServer(http.HandlerFunc(h.Updates))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	if err != nil {
		t.Fatalf("Failed to connect: %v", err)
	}
	readSSEEvent(t, bufio.NewReader(resp.Body))

	if e.SubscriberCount() != 1 {
		t.Fatalf("Expected 1 subscriber, got %d", e.SubscriberCount())
	}

	resp.Body.Close()

	deadline := time.Now().Add(2 * time.Second)
	for e.SubscriberCount() != 0 {
		if time.Now().After(deadline) {
			t.Fatalf("Subscriber not removed after disconnect: %d", e.SubscriberCount())
		}
		time.Sleep(10 * time.Millisecond)
	}
}
