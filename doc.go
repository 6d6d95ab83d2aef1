// Copyright (c) 2025 Weaseltime420.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Vote-Bot command server.

Vote-Bot runs a simple blind vote for a chat community: an admin sets a
slate of 2-10 numbered options, members cast one hidden vote each, and
admins can check standings privately or publish the final result to the
channel.

# Starting the Server

The server reads environment variables, a .env file, or CLI flags:

	ADMIN_TOKEN_SALT=secret go run .

Or with flags:

	go run . -p 3320 -d votes.db -t sqlite -admin-salt secret

# Configuration

Required settings:

  - ADMIN_TOKEN_SALT (-admin-salt): secret for admin token HMAC

Optional settings:

  - PORT (-p): server port (default: 3320)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): PostgreSQL URL or SQLite path (default: votes.db)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - vote: the vote-round and ballot store (the data model core)
  - handlers: command handlers (setvote, vote, clearvotes, checkvote,
    publishvote, showpoll)
  - router: route definitions using Go 1.22+ routing
  - middleware: capability gate, logging, JSON helpers
  - models: request/response types
  - auth: admin token generation and validation
  - db: schema creation
  - cliparse: configuration parsing

The chat-platform adapter is a separate process: it authenticates members,
forwards their slash commands here, and posts each CommandReply back to
the platform, honoring the Ephemeral flag.

See package documentation for each component.
*/
package main
