// Copyright (c) 2025 Weaseltime420.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration from CLI flags and environment
variables.

# Precedence

CLI flags override environment variables, which override defaults:

	vote-bot -p 3320 -d votes.db -t sqlite -admin-salt secret

# Settings

  - PORT (-p): server port (default 3320)
  - DATABASE_URL (-d): PostgreSQL URL or SQLite path; DB_PATH is honored
    as a legacy alias for the SQLite path (default votes.db)
  - DATABASE_TYPE (-t): sqlite or postgres (default sqlite)
  - ADMIN_TOKEN_SALT (-admin-salt): required secret for admin token HMAC

Secrets should come from the environment; a .env file is loaded by the
main package before parsing.
*/
package cliparse
