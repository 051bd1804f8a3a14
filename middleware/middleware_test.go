// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/vibepoll/vibepoll/models"
)

func TestJSONResponse(t *testing.T) {
	w := httptest.NewRecorder()
	JSONResponse(w, http.StatusCreated, map[string]string{"hello": "world"})

	if w.Code != http.StatusCreated {
		t.Errorf("Expected 201, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected application/json, got %s", ct)
	}
	if !strings.Contains(w.Body.String(), `"hello":"world"`) {
		t.Errorf("Unexpected body: %s", w.Body.String())
	}
}

func TestErrorResponse(t *testing.T) {
	w := httptest.NewRecorder()
	ErrorResponse(w, http.StatusBadRequest, "title is required")

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "title is required") {
		t.Errorf("Missing message in body: %s", w.Body.String())
	}
	if !strings.Contains(w.Body.String(), http.StatusText(http.StatusBadRequest)) {
		t.Errorf("Missing status text in body: %s", w.Body.String())
	}
}

func TestParseJSONBody(t *testing.T) {
	req := httptest.NewRequest("POST", "/vote", strings.NewReader(`{"option_id":"abc"}`))

	var parsed models.VoteRequest
	if err := ParseJSONBody(req, &parsed); err != nil {
		t.Fatalf("ParseJSONBody failed: %v", err)
	}
	if parsed.OptionID != "abc" {
		t.Errorf("Expected option_id abc, got %s", parsed.OptionID)
	}

	req = httptest.NewRequest("POST", "/vote", strings.NewReader("not json"))
	if err := ParseJSONBody(req, &parsed); err == nil {
		t.Error("Expected error for invalid JSON")
	}
}

func TestCORSPreflight(t *testing.T) {
	handler := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("Preflight should not reach the next handler")
	}))

	req := httptest.NewRequest("OPTIONS", "/poll", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected 200 for preflight, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("Expected origin echoed, got %q", got)
	}
	if !strings.Contains(w.Header().Get("Access-Control-Allow-Headers"), "X-Admin-Simulation") {
		t.Error("Simulation header missing from allow list")
	}
}

func TestCORSPassesThrough(t *testing.T) {
	called := false
	handler := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest("GET", "/poll", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if !called {
		t.Error("Next handler was not called")
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Errorf("Expected wildcard origin when none sent, got %q", w.Header().Get("Access-Control-Allow-Origin"))
	}
}

func TestGetClientIP(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = "192.0.2.1:4321"
	if ip := GetClientIP(req); ip != "192.0.2.1" {
		t.Errorf("RemoteAddr: expected 192.0.2.1, got %s", ip)
	}

	req.Header.Set("X-Real-IP", "198.51.100.2")
	if ip := GetClientIP(req); ip != "198.51.100.2" {
		t.Errorf("X-Real-IP: expected 198.51.100.2, got %s", ip)
	}

	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	if ip := GetClientIP(req); ip != "203.0.113.7" {
		t.Errorf("X-Forwarded-For: expected first hop, got %s", ip)
	}

	req.Header.Set("X-Forwarded-For", "203.0.113.9")
	if ip := GetClientIP(req); ip != "203.0.113.9" {
		t.Errorf("Single X-Forwarded-For: expected 203.0.113.9, got %s", ip)
	}
}

func TestWithLoggingCallsNext(t *testing.T) {
	called := false
	handler := WithLogging(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest("GET", "/poll", nil)
	w := httptest.NewRecorder()
	handler(w, req)

	if !called {
		t.Error("Wrapped handler was not called")
	}
	if w.Code != http.StatusTeapot {
		t.Errorf("Expected status passthrough, got %d", w.Code)
	}
}
