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

type ResultsHandler struct {
	votes *vote.Store
	cfg   cliparse.Config
}

func NewResultsHandler(db *sql.DB, cfg cliparse.Config) *ResultsHandler {
	return &ResultsHandler{votes: vote.NewStore(db), cfg: cfg}
}

// Checkvote handles POST /commands/checkvote
// Ephemeral running standings, for admins only while the vote is live.
func (h *ResultsHandler) Checkvote(w http.ResponseWriter, r *http.Request) {
	tally, err := h.votes.Tally()
	if errors.Is(err, vote.ErrNoActiveVote) {
		middleware.JSONResponse(w, http.StatusOK, models.CommandReply{
			Content:   "No vote options have been set yet. Use `/setvote` first.",
			Ephemeral: true,
		})
		return
	}
	if err != nil {
		slog.Error("failed to tally votes", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.CommandReply{
		Content:   renderStandings(tally, true),
		Ephemeral: true,
	})
}

// Publishvote handles POST /commands/publishvote
// Posts the final standings publicly, with the winner called out. Ties are
// reported as ties, never broken silently.
func (h *ResultsHandler) Publishvote(w http.ResponseWriter, r *http.Request) {
	tally, err := h.votes.Tally()
	if errors.Is(err, vote.ErrNoActiveVote) {
		middleware.JSONResponse(w, http.StatusOK, models.CommandReply{
			Content:   "No vote options have been set yet. Use `/setvote` first.",
			Ephemeral: true,
		})
		return
	}
	if err != nil {
		slog.Error("failed to tally votes", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("vote results published", "round_id", tally.RoundID, "total", tally.Total)

	middleware.JSONResponse(w, http.StatusOK, models.CommandReply{
		Content:   renderStandings(tally, false) + "\n" + renderOutcome(tally),
		Ephemeral: false,
	})
}
