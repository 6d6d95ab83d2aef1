// Copyright (c) 2025 Weaseltime420.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/Weaseltime420/Vote-Bot/cliparse"
	"github.com/Weaseltime420/Vote-Bot/db"
	"github.com/Weaseltime420/Vote-Bot/models"
)

// SetupTestDB creates an isolated in-memory SQLite database with the full
// schema. Each call gets its own database, so tests never see each other's
// state.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_time_format=sqlite&_pragma=foreign_keys(1)",
		uuid.NewString())
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// SQLite allows a single writer; one connection keeps concurrent test
	// requests serialized instead of failing with SQLITE_BUSY. It also
	// keeps the in-memory database alive for the test's duration.
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() { conn.Close() })
	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:           3320,
		DatabaseType:   "sqlite",
		DatabaseURL:    ":memory:",
		AdminTokenSalt: "test-admin-salt",
	}
}

// SeedRound inserts a vote round with the given labels and makes it
// current, returning the round ID.
func SeedRound(t *testing.T, conn *sql.DB, labels ...string) string {
	t.Helper()

	roundID := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO vote_round (id, created_at) VALUES ($1, $2)
	`, roundID, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test round: %v", err)
	}

	for i, label := range labels {
		_, err := conn.Exec(`
			INSERT INTO vote_option (round_id, option_id, label) VALUES ($1, $2, $3)
		`, roundID, i+1, label)
		if err != nil {
			t.Fatalf("Failed to create test option: %v", err)
		}
	}

	_, err = conn.Exec(`
		INSERT INTO current_round (id, round_id) VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE SET round_id = excluded.round_id
	`, roundID)
	if err != nil {
		t.Fatalf("Failed to set current round: %v", err)
	}

	return roundID
}

// CastTestBallot records a ballot directly in storage
func CastTestBallot(t *testing.T, conn *sql.DB, roundID, voterID string, choice int) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO ballot (round_id, voter_id, option_id, cast_at) VALUES ($1, $2, $3, $4)
	`, roundID, voterID, choice, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test ballot: %v", err)
	}
}

// CountBallots returns the number of ballots stored for a round
func CountBallots(t *testing.T, conn *sql.DB, roundID string) int {
	t.Helper()

	var count int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM ballot WHERE round_id = $1`, roundID).Scan(&count); err != nil {
		t.Fatalf("Failed to count ballots: %v", err)
	}
	return count
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

// DecodeReply decodes the response body as a CommandReply
func DecodeReply(t *testing.T, w *httptest.ResponseRecorder) models.CommandReply {
	t.Helper()
	var reply models.CommandReply
	AssertJSON(t, w, &reply)
	return reply
}
