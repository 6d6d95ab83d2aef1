// Copyright (c) 2025 Weaseltime420.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Weaseltime420/Vote-Bot/models"
	"github.com/Weaseltime420/Vote-Bot/testutil"
	"github.com/Weaseltime420/Vote-Bot/vote"
)

func TestSetvote_Success(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	h := NewAdminHandler(db, cfg)

	req := testutil.MakeRequest("POST", "/commands/setvote",
		models.SetvoteRequest{Options: []string{"Pizza", "Tacos", "Sushi"}}, nil)
	w := httptest.NewRecorder()
	h.Setvote(w, req)

	testutil.AssertStatus(t, w, http.StatusCreated)
	reply := testutil.DecodeReply(t, w)

	if !reply.Ephemeral {
		t.Error("setvote confirmation should be ephemeral")
	}
	if !strings.Contains(reply.Content, "Vote options set (3)") {
		t.Errorf("unexpected confirmation: %q", reply.Content)
	}
	for _, line := range []string{"1. Pizza", "2. Tacos", "3. Sushi"} {
		if !strings.Contains(reply.Content, line) {
			t.Errorf("confirmation missing %q: %q", line, reply.Content)
		}
	}
}

func TestSetvote_OptionCountViolations(t *testing.T) {
	tests := []struct {
		name    string
		options []string
	}{
		{"none", []string{}},
		{"one", []string{"A"}},
		{"eleven", []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K"}},
		{"only blanks", []string{"  ", "", "\t"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := testutil.SetupTestDB(t)
			h := NewAdminHandler(db, testutil.GetTestConfig())

			req := testutil.MakeRequest("POST", "/commands/setvote",
				models.SetvoteRequest{Options: tt.options}, nil)
			w := httptest.NewRecorder()
			h.Setvote(w, req)

			testutil.AssertStatus(t, w, http.StatusBadRequest)
			reply := testutil.DecodeReply(t, w)
			if !strings.Contains(reply.Content, "Between 2 and 10") {
				t.Errorf("expected the violated constraint in reply, got %q", reply.Content)
			}
			if !reply.Ephemeral {
				t.Error("validation errors should be ephemeral")
			}
		})
	}
}

func TestSetvote_InvalidJSON(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := NewAdminHandler(db, testutil.GetTestConfig())

	req := httptest.NewRequest("POST", "/commands/setvote", strings.NewReader("{not json"))
	w := httptest.NewRecorder()
	h.Setvote(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestSetvote_ReplacesRoundAndClearsBallots(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	h := NewAdminHandler(db, cfg)

	roundID := testutil.SeedRound(t, db, "X", "Y")
	testutil.CastTestBallot(t, db, roundID, "voter-1", 1)

	req := testutil.MakeRequest("POST", "/commands/setvote",
		models.SetvoteRequest{Options: []string{"A", "B"}}, nil)
	w := httptest.NewRecorder()
	h.Setvote(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)

	tally, err := vote.NewStore(db).Tally()
	if err != nil {
		t.Fatalf("Tally failed: %v", err)
	}
	if tally.Total != 0 {
		t.Errorf("new round should have 0 ballots, got %d", tally.Total)
	}
	if tally.RoundID == roundID {
		t.Error("setvote did not start a new round")
	}
}

func TestClearvotes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := NewAdminHandler(db, testutil.GetTestConfig())

	roundID := testutil.SeedRound(t, db, "A", "B")
	testutil.CastTestBallot(t, db, roundID, "voter-1", 1)
	testutil.CastTestBallot(t, db, roundID, "voter-2", 2)

	req := testutil.MakeRequest("POST", "/commands/clearvotes", nil,
		map[string]string{"X-Member-ID": "admin-1"})
	w := httptest.NewRecorder()
	h.Clearvotes(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	reply := testutil.DecodeReply(t, w)
	if reply.Content != "Votes cleared. (Vote options were kept.)" {
		t.Errorf("unexpected reply: %q", reply.Content)
	}
	if !reply.Ephemeral {
		t.Error("clearvotes confirmation should be ephemeral")
	}

	if got := testutil.CountBallots(t, db, roundID); got != 0 {
		t.Errorf("expected 0 ballots after clear, got %d", got)
	}
}

func TestClearvotes_NoActiveRound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := NewAdminHandler(db, testutil.GetTestConfig())

	req := testutil.MakeRequest("POST", "/commands/clearvotes", nil, nil)
	w := httptest.NewRecorder()
	h.Clearvotes(w, req)

	// Idempotent: clearing an empty store succeeds silently
	testutil.AssertStatus(t, w, http.StatusOK)
}
