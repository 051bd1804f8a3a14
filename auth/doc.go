// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides admin API key validation and voter key derivation.

# Admin Key

Lifecycle commands (create, start, end) require a bearer token matching the
configured ADMIN_API_KEY:

	Authorization: Bearer <key>

Validation is a constant-time compare via ValidateAPIKey.

# Voter Keys

Voter identity is an opaque key used only for duplicate-vote prevention.
Regular voters are keyed by a salted one-way hash of their client IP
(HashVoterKey), so raw addresses never reach the engine or its logs.
Admin-simulated votes use GenerateSimulationKey for a unique throwaway key
per simulated vote.
*/
package auth
