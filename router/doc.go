// Copyright (c) 2025 Weaseltime420.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the route table using Go 1.22+ ServeMux patterns.

# Routes

Each command route pairs a pattern with the capability it requires:

	POST /commands/setvote     admin
	POST /commands/vote        member
	POST /commands/clearvotes  admin
	POST /commands/checkvote   admin
	POST /commands/publishvote admin
	GET  /commands/showpoll    member

Plus GET /health and a root endpoint.

# Middleware

Every command route is wrapped in WithLogging and WithAuth, so the
capability gate and request logging are uniform across commands.
*/
package router
