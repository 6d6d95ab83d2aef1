// Copyright (c) 2025 Weaseltime420.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/Weaseltime420/Vote-Bot/cliparse"
	"github.com/Weaseltime420/Vote-Bot/middleware"
	"github.com/Weaseltime420/Vote-Bot/models"
	"github.com/Weaseltime420/Vote-Bot/vote"
)

type AdminHandler struct {
	votes *vote.Store
	cfg   cliparse.Config
}

func NewAdminHandler(db *sql.DB, cfg cliparse.Config) *AdminHandler {
	return &AdminHandler{votes: vote.NewStore(db), cfg: cfg}
}

// Setvote handles POST /commands/setvote
// Replaces the option slate and starts a fresh round; existing votes are gone.
func (h *AdminHandler) Setvote(w http.ResponseWriter, r *http.Request) {
	var req models.SetvoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	round, err := h.votes.SetOptions(req.Options)
	if errors.Is(err, vote.ErrInvalidOptions) {
		middleware.JSONResponse(w, http.StatusBadRequest, models.CommandReply{
			Content: fmt.Sprintf("Between %d and %d non-empty vote options are required.",
				vote.MinOptions, vote.MaxOptions),
			Ephemeral: true,
		})
		return
	}
	if err != nil {
		slog.Error("failed to set vote options", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to set vote options")
		return
	}

	slog.Info("vote options set", "round_id", round.ID, "options", len(round.Options))

	middleware.JSONResponse(w, http.StatusCreated, models.CommandReply{
		Content: fmt.Sprintf("Vote options set (%d). Existing votes were cleared.\n\n%s",
			len(round.Options), renderOptions(round.Options)),
		Ephemeral: true,
	})
}

// Clearvotes handles POST /commands/clearvotes
// Deletes all ballots of the current round, keeping the options.
func (h *AdminHandler) Clearvotes(w http.ResponseWriter, r *http.Request) {
	if err := h.votes.Clear(); err != nil {
		slog.Error("failed to clear votes", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to clear votes")
		return
	}

	slog.Info("votes cleared", "member", r.Header.Get("X-Member-ID"))

	middleware.JSONResponse(w, http.StatusOK, models.CommandReply{
		Content:   "Votes cleared. (Vote options were kept.)",
		Ephemeral: true,
	})
}
