// Copyright (c) 2025 Weaseltime420.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Weaseltime420/Vote-Bot/cliparse"
	"github.com/Weaseltime420/Vote-Bot/middleware"
	"github.com/Weaseltime420/Vote-Bot/models"
	"github.com/Weaseltime420/Vote-Bot/vote"
)

const noActiveVoteMessage = "No vote options have been set yet. An admin must run `/setvote` first."

type VotingHandler struct {
	votes *vote.Store
	cfg   cliparse.Config
}

func NewVotingHandler(db *sql.DB, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{votes: vote.NewStore(db), cfg: cfg}
}

// Vote handles POST /commands/vote
// Records the member's one hidden ballot. Every reply is ephemeral so the
// channel never learns who voted for what.
func (h *VotingHandler) Vote(w http.ResponseWriter, r *http.Request) {
	memberID := r.Header.Get("X-Member-ID")

	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	err := h.votes.Cast(memberID, req.Choice)
	switch {
	case errors.Is(err, vote.ErrNoActiveVote):
		middleware.JSONResponse(w, http.StatusConflict, models.CommandReply{
			Content:   noActiveVoteMessage,
			Ephemeral: true,
		})
		return

	case errors.Is(err, vote.ErrInvalidChoice):
		round, curErr := h.votes.Current()
		if curErr != nil {
			slog.Error("failed to load options for choice hint", "error", curErr)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		middleware.JSONResponse(w, http.StatusBadRequest, models.CommandReply{
			Content:   "Invalid choice. Please vote using one of these numbers:\n\n" + renderOptions(round.Options),
			Ephemeral: true,
		})
		return

	case errors.Is(err, vote.ErrDuplicateVote):
		middleware.JSONResponse(w, http.StatusConflict, models.CommandReply{
			Content:   "User has already voted",
			Ephemeral: true,
		})
		return

	case err != nil:
		slog.Error("failed to cast ballot", "error", err, "member", memberID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Sorry, something went wrong recording your vote.")
		return
	}

	slog.Info("ballot cast", "member", memberID, "choice", req.Choice)

	middleware.JSONResponse(w, http.StatusCreated, models.CommandReply{
		Content:   "Thank you for voting",
		Ephemeral: true,
	})
}

// Showpoll handles GET /commands/showpoll
// Lists the available options publicly so members know the valid numbers.
func (h *VotingHandler) Showpoll(w http.ResponseWriter, r *http.Request) {
	round, err := h.votes.Current()
	if errors.Is(err, vote.ErrNoActiveVote) {
		middleware.JSONResponse(w, http.StatusOK, models.CommandReply{
			Content:   noActiveVoteMessage,
			Ephemeral: false,
		})
		return
	}
	if err != nil {
		slog.Error("failed to load current round", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.CommandReply{
		Content:   "Vote options:\n\n" + renderOptions(round.Options),
		Ephemeral: false,
	})
}
