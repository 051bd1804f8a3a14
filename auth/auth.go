// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidAPIKey = errors.New("invalid admin API key")
	ErrMissingBearer = errors.New("missing bearer token")
)

// ValidateAPIKey checks an Authorization header against the configured
// admin API key using a constant-time compare.
func ValidateAPIKey(authHeader, apiKey string) error {
	const prefix = "Bearer "
	if !strings.HasPrefix(authHeader, prefix) {
		return ErrMissingBearer
	}

	token := strings.TrimPrefix(authHeader, prefix)
	if !hmac.Equal([]byte(token), []byte(apiKey)) {
		return ErrInvalidAPIKey
	}
	return nil
}

// HashVoterKey creates a one-way salted hash of a client address for use
// as a voter key. The engine only ever sees the hash, never the raw IP.
func HashVoterKey(clientIP, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(clientIP))
	sum := h.Sum(nil)
	// First 16 hex chars (64 bits) is plenty for deduplication
	return hex.EncodeToString(sum[:8])
}

// GenerateSimulationKey creates a unique throwaway voter key for
// admin-simulated votes, which bypass the one-vote-per-address check.
func GenerateSimulationKey() (string, error) {
	b := make([]byte, 12)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate simulation key: %w", err)
	}
	return "admin-sim-" + hex.EncodeToString(b), nil
}
