// Copyright (c) 2025 Weaseltime420.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

The schema includes:

  - vote_round: one row per /setvote invocation
  - current_round: singleton pointer to the round open for voting
  - vote_option: numbered option labels per round
  - ballot: one ballot per voter per round

# Relationships

	vote_round 1──* vote_option
	vote_round 1──* ballot
	current_round 1──1 vote_round

Replacing the vote configuration inserts a fresh round and repoints
current_round in a single transaction; ballots of superseded rounds stay
in place as history but are invisible to every command.

# Constraints

The correctness-critical pieces live in the schema itself:

  - ballot PRIMARY KEY (round_id, voter_id): duplicate votes are rejected
    by the storage engine, so concurrent double-submits are race-free
  - current_round CHECK (id = 1): at most one active round pointer

The same SQL works on SQLite and PostgreSQL; see the main package for
driver selection.
*/
package db
