// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/vibepoll/vibepoll/cliparse"
	"github.com/vibepoll/vibepoll/engine"
	"github.com/vibepoll/vibepoll/models"
)

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3000,
		AdminAPIKey:  "test-admin-key",
		VoterKeySalt: "test-voter-salt",
	}
}

// NewTestEngine creates an engine and registers cleanup
func NewTestEngine(t *testing.T) *engine.Engine {
	t.Helper()

	e := engine.New()
	t.Cleanup(e.Close)
	return e
}

// CreateTestPoll creates a poll in the engine and returns it.
// status should be "draft", "active", or "ended".
func CreateTestPoll(t *testing.T, e *engine.Engine, status string, duration models.Duration) *models.Poll {
	t.Helper()

	poll, err := e.Create("Test Poll", []string{"Option A", "Option B"}, duration)
	if err != nil {
		t.Fatalf("Failed to create test poll: %v", err)
	}

	if status == models.StatusActive || status == models.StatusEnded {
		if poll, err = e.Start(); err != nil {
			t.Fatalf("Failed to start test poll: %v", err)
		}
	}
	if status == models.StatusEnded {
		if poll, err = e.End(); err != nil {
			t.Fatalf("Failed to end test poll: %v", err)
		}
	}

	return poll
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AdminHeaders returns the Authorization header for admin requests
func AdminHeaders(cfg cliparse.Config) map[string]string {
	return map[string]string{"Authorization": "Bearer " + cfg.AdminAPIKey}
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
