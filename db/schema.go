// Copyright (c) 2025 Weaseltime420.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Vote rounds (one row per /setvote)
CREATE TABLE IF NOT EXISTS vote_round (
    id TEXT PRIMARY KEY,
    created_at TIMESTAMP NOT NULL
);

-- Singleton pointer to the round currently open for voting.
-- No row means no vote has been configured yet.
CREATE TABLE IF NOT EXISTS current_round (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    round_id TEXT NOT NULL REFERENCES vote_round(id)
);

-- Options (1-based option_id, insertion order = display order)
CREATE TABLE IF NOT EXISTS vote_option (
    round_id TEXT NOT NULL REFERENCES vote_round(id) ON DELETE CASCADE,
    option_id INTEGER NOT NULL,
    label TEXT NOT NULL,
    PRIMARY KEY (round_id, option_id)
);

-- Ballots: at most one per voter per round, enforced by the primary key
CREATE TABLE IF NOT EXISTS ballot (
    round_id TEXT NOT NULL REFERENCES vote_round(id) ON DELETE CASCADE,
    voter_id TEXT NOT NULL,
    option_id INTEGER NOT NULL,
    cast_at TIMESTAMP NOT NULL,
    PRIMARY KEY (round_id, voter_id)
);

CREATE INDEX IF NOT EXISTS idx_ballot_option ON ballot(round_id, option_id);
`
