// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3000)
  - AdminAPIKey: Bearer token for poll lifecycle commands (required)
  - VoterKeySalt: Secret for hashing client IPs into voter keys (required)

# CLI Flags

	-p           Server port
	--admin-key  Admin API key
	--voter-salt Voter key salt

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	ADMIN_API_KEY  → --admin-key
	VOTER_KEY_SALT → --voter-salt

CLI flags take precedence over environment variables. main loads a .env
file first (via godotenv), so a local .env can supply any of these.

# Validation

ParseFlags returns an error if required values are missing:

  - ADMIN_API_KEY must be provided
  - VOTER_KEY_SALT must be provided
*/
package cliparse
