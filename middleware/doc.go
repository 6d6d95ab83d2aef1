// Copyright (c) 2025 Weaseltime420.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and JSON helpers.

# Middleware

  - WithLogging: structured request/completion logging via slog
  - WithAuth: capability gate; admin commands require a valid
    X-Admin-Token for the X-Member-ID presenting it

WithAuth runs before the handler, so a handler never sees a request whose
capability check failed:

	mux.HandleFunc("POST /commands/setvote",
		middleware.WithLogging(middleware.WithAuth(auth.Admin, cfg, h.Setvote)))

# JSON Helpers

  - JSONResponse: write any value as a JSON response
  - ErrorResponse: write a standard error payload
  - ParseJSONBody: decode a request body into a struct
*/
package middleware
