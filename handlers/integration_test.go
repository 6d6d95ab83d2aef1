// Copyright (c) 2025 Weaseltime420.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Weaseltime420/Vote-Bot/models"
	"github.com/Weaseltime420/Vote-Bot/testutil"
)

// TestFullVotingWorkflow tests the complete end-to-end workflow:
// 1. Admin sets the options
// 2. Members vote (one duplicate rejected)
// 3. Admin checks standings privately
// 4. Admin publishes the result
// 5. Admin opens a new round and the slate is fresh
func TestFullVotingWorkflow(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()

	adminHandler := NewAdminHandler(db, cfg)
	votingHandler := NewVotingHandler(db, cfg)
	resultsHandler := NewResultsHandler(db, cfg)

	// Step 1: Set the vote options
	w := httptest.NewRecorder()
	adminHandler.Setvote(w, testutil.MakeRequest("POST", "/commands/setvote",
		models.SetvoteRequest{Options: []string{"Pizza", "Tacos", "Sushi"}},
		map[string]string{"X-Member-ID": "admin-1"}))
	if w.Code != 201 {
		t.Fatalf("Step 1 - setvote failed: %d - %s", w.Code, w.Body.String())
	}
	t.Log("Step 1 - options set")

	// Step 2: Three members vote; one tries twice
	for _, v := range []struct {
		member string
		choice int
		status int
	}{
		{"alice", 1, 201},
		{"bob", 2, 201},
		{"alice", 3, 409}, // duplicate, rejected
		{"carol", 1, 201},
	} {
		w = httptest.NewRecorder()
		votingHandler.Vote(w, voteRequest(v.choice, v.member))
		if w.Code != v.status {
			t.Fatalf("Step 2 - vote by %s: expected %d, got %d - %s",
				v.member, v.status, w.Code, w.Body.String())
		}
	}
	t.Log("Step 2 - ballots cast")

	// Step 3: Private standings
	w = httptest.NewRecorder()
	resultsHandler.Checkvote(w, testutil.MakeRequest("POST", "/commands/checkvote", nil, nil))
	reply := testutil.DecodeReply(t, w)
	if !reply.Ephemeral {
		t.Fatal("Step 3 - checkvote must be ephemeral")
	}
	for _, line := range []string{"1. Pizza — 2", "2. Tacos — 1", "3. Sushi — 0", "Total votes: 3"} {
		if !strings.Contains(reply.Content, line) {
			t.Fatalf("Step 3 - standings missing %q:\n%s", line, reply.Content)
		}
	}
	t.Log("Step 3 - standings verified")

	// Step 4: Publish the result
	w = httptest.NewRecorder()
	resultsHandler.Publishvote(w, testutil.MakeRequest("POST", "/commands/publishvote", nil, nil))
	reply = testutil.DecodeReply(t, w)
	if reply.Ephemeral {
		t.Fatal("Step 4 - publishvote must be public")
	}
	if !strings.Contains(reply.Content, "Winner: Pizza (2 votes).") {
		t.Fatalf("Step 4 - expected winner line:\n%s", reply.Content)
	}
	t.Log("Step 4 - result published")

	// Step 5: New round starts clean, and everyone may vote again
	w = httptest.NewRecorder()
	adminHandler.Setvote(w, testutil.MakeRequest("POST", "/commands/setvote",
		models.SetvoteRequest{Options: []string{"Monday", "Friday"}}, nil))
	if w.Code != 201 {
		t.Fatalf("Step 5 - second setvote failed: %d", w.Code)
	}

	w = httptest.NewRecorder()
	votingHandler.Vote(w, voteRequest(2, "alice"))
	if w.Code != 201 {
		t.Fatalf("Step 5 - alice should vote fresh in the new round: %d - %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	resultsHandler.Checkvote(w, testutil.MakeRequest("POST", "/commands/checkvote", nil, nil))
	reply = testutil.DecodeReply(t, w)
	for _, line := range []string{"1. Monday — 0", "2. Friday — 1", "Total votes: 1"} {
		if !strings.Contains(reply.Content, line) {
			t.Fatalf("Step 5 - new round standings missing %q:\n%s", line, reply.Content)
		}
	}
	t.Log("Step 5 - new round verified")
}

// TestClearvotesMidRound verifies clearing keeps the slate but wipes ballots.
func TestClearvotesMidRound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()

	adminHandler := NewAdminHandler(db, cfg)
	votingHandler := NewVotingHandler(db, cfg)
	resultsHandler := NewResultsHandler(db, cfg)

	w := httptest.NewRecorder()
	adminHandler.Setvote(w, testutil.MakeRequest("POST", "/commands/setvote",
		models.SetvoteRequest{Options: []string{"Yes", "No"}}, nil))
	testutil.AssertStatus(t, w, 201)

	w = httptest.NewRecorder()
	votingHandler.Vote(w, voteRequest(1, "alice"))
	testutil.AssertStatus(t, w, 201)

	w = httptest.NewRecorder()
	adminHandler.Clearvotes(w, testutil.MakeRequest("POST", "/commands/clearvotes", nil, nil))
	testutil.AssertStatus(t, w, 200)

	// Options kept, ballots gone, and alice may vote again
	w = httptest.NewRecorder()
	resultsHandler.Checkvote(w, testutil.MakeRequest("POST", "/commands/checkvote", nil, nil))
	reply := testutil.DecodeReply(t, w)
	if !strings.Contains(reply.Content, "Total votes: 0") {
		t.Fatalf("expected empty tally after clear:\n%s", reply.Content)
	}

	w = httptest.NewRecorder()
	votingHandler.Vote(w, voteRequest(2, "alice"))
	testutil.AssertStatus(t, w, 201)
}
