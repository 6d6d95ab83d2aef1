// Copyright (c) 2025 Weaseltime420.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/Weaseltime420/Vote-Bot/auth"
	"github.com/Weaseltime420/Vote-Bot/cliparse"
	"github.com/Weaseltime420/Vote-Bot/handlers"
	"github.com/Weaseltime420/Vote-Bot/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	adminHandler := handlers.NewAdminHandler(db, cfg)
	votingHandler := handlers.NewVotingHandler(db, cfg)
	resultsHandler := handlers.NewResultsHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Each command declares the capability it requires; WithAuth enforces
	// it before the handler runs.
	command := func(pattern string, access auth.Access, h http.HandlerFunc) {
		mux.HandleFunc(pattern, middleware.WithLogging(middleware.WithAuth(access, cfg, h)))
	}

	command("POST /commands/setvote", auth.Admin, adminHandler.Setvote)
	command("POST /commands/vote", auth.None, votingHandler.Vote)
	command("POST /commands/clearvotes", auth.Admin, adminHandler.Clearvotes)
	command("POST /commands/checkvote", auth.Admin, resultsHandler.Checkvote)
	command("POST /commands/publishvote", auth.Admin, resultsHandler.Publishvote)
	command("GET /commands/showpoll", auth.None, votingHandler.Showpoll)

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Vote-Bot API v1"))
	})

	return mux
}
