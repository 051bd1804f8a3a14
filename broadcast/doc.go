// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package broadcast maintains the set of live subscribers and delivers poll
events to each of them.

# Usage

The engine owns a Registry and pushes every committed state change through
it:

	registry := broadcast.NewRegistry()
	sub := registry.Add(models.SnapshotEvent(current))
	defer sub.Close()

	for event := range sub.C() {
		// write event to the transport
	}

# Delivery Semantics

Delivery is at-most-once per event per subscriber, in commit order. Sends
never block: each subscription has a fixed buffer, and a subscriber that
stops draining it is evicted after a single failed delivery attempt. A
subscriber that reconnects resynchronizes from the initial snapshot Add
queues, not from replay.
*/
package broadcast
