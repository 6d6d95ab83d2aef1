// Copyright (c) 2025 Weaseltime420.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package vote

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Option count bounds for a vote round.
const (
	MinOptions = 2
	MaxOptions = 10
)

var (
	// ErrNoActiveVote means no vote round has been configured yet.
	ErrNoActiveVote = errors.New("no active vote")

	// ErrInvalidOptions means the option list is outside [MinOptions, MaxOptions]
	// after empty labels are dropped.
	ErrInvalidOptions = errors.New("invalid option count")

	// ErrInvalidChoice means the choice number does not name an option of the
	// current round.
	ErrInvalidChoice = errors.New("invalid choice")

	// ErrDuplicateVote means the voter already has a ballot in the current round.
	ErrDuplicateVote = errors.New("voter has already voted")
)

// Store persists vote rounds and ballots. The database is the only source of
// truth: every operation reads current state from storage, so the store is
// safe across process restarts and concurrent commands.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Option is one numbered entry of a vote round. Numbers are 1-based and
// follow insertion order.
type Option struct {
	Number int    `json:"number"`
	Label  string `json:"label"`
}

// Round is one vote configuration: the slate of options opened by a single
// setvote command.
type Round struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Options   []Option  `json:"options"`
}

// Standing is one option's running count.
type Standing struct {
	Number int    `json:"number"`
	Label  string `json:"label"`
	Votes  int    `json:"votes"`
}

// Tally is the full breakdown for the current round. Every option of the
// round appears, zero counts included, and Total equals the number of
// stored ballots.
type Tally struct {
	RoundID   string     `json:"round_id"`
	OpenedAt  time.Time  `json:"opened_at"`
	Standings []Standing `json:"standings"`
	Total     int        `json:"total"`
}

// SetOptions starts a new vote round with the given labels, replacing the
// current configuration. Labels are trimmed and empty entries dropped; the
// remainder must number between MinOptions and MaxOptions or ErrInvalidOptions
// is returned and nothing changes.
//
// The round insert, its options, and the current-round switch happen in one
// transaction: a concurrent Cast sees the old round fully or the new round
// fully, never a half-applied state. Ballots of the replaced round become
// invisible immediately (a new round starts with zero ballots).
func (s *Store) SetOptions(labels []string) (Round, error) {
	cleaned := make([]string, 0, len(labels))
	for _, label := range labels {
		if trimmed := strings.TrimSpace(label); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	if len(cleaned) < MinOptions || len(cleaned) > MaxOptions {
		return Round{}, ErrInvalidOptions
	}

	round := Round{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
		Options:   make([]Option, 0, len(cleaned)),
	}

	tx, err := s.db.Begin()
	if err != nil {
		return Round{}, fmt.Errorf("failed to begin round switch: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO vote_round (id, created_at) VALUES ($1, $2)
	`, round.ID, round.CreatedAt)
	if err != nil {
		return Round{}, fmt.Errorf("failed to insert round: %w", err)
	}

	for i, label := range cleaned {
		_, err = tx.Exec(`
			INSERT INTO vote_option (round_id, option_id, label) VALUES ($1, $2, $3)
		`, round.ID, i+1, label)
		if err != nil {
			return Round{}, fmt.Errorf("failed to insert option %d: %w", i+1, err)
		}
		round.Options = append(round.Options, Option{Number: i + 1, Label: label})
	}

	_, err = tx.Exec(`
		INSERT INTO current_round (id, round_id) VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE SET round_id = excluded.round_id
	`, round.ID)
	if err != nil {
		return Round{}, fmt.Errorf("failed to switch current round: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return Round{}, fmt.Errorf("failed to commit round switch: %w", err)
	}

	return round, nil
}

// Current returns the active round, or ErrNoActiveVote when no setvote has
// run yet.
func (s *Store) Current() (Round, error) {
	var round Round
	err := s.db.QueryRow(`
		SELECT r.id, r.created_at
		FROM current_round c
		JOIN vote_round r ON r.id = c.round_id
		WHERE c.id = 1
	`).Scan(&round.ID, &round.CreatedAt)

	if err == sql.ErrNoRows {
		return Round{}, ErrNoActiveVote
	}
	if err != nil {
		return Round{}, fmt.Errorf("failed to query current round: %w", err)
	}

	rows, err := s.db.Query(`
		SELECT option_id, label
		FROM vote_option
		WHERE round_id = $1
		ORDER BY option_id
	`, round.ID)
	if err != nil {
		return Round{}, fmt.Errorf("failed to query options: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var opt Option
		if err := rows.Scan(&opt.Number, &opt.Label); err != nil {
			return Round{}, fmt.Errorf("failed to scan option: %w", err)
		}
		round.Options = append(round.Options, opt)
	}
	if err := rows.Err(); err != nil {
		return Round{}, fmt.Errorf("failed to read options: %w", err)
	}

	return round, nil
}

// Cast records one ballot for the voter in the current round. Duplicate
// detection rides on the ballot primary key, so two concurrent casts from
// the same voter resolve in storage: exactly one insert wins, the other
// gets ErrDuplicateVote. No error path leaves a row behind.
func (s *Store) Cast(voterID string, choice int) error {
	round, err := s.Current()
	if err != nil {
		return err
	}

	if choice < 1 || choice > len(round.Options) {
		return ErrInvalidChoice
	}

	_, err = s.db.Exec(`
		INSERT INTO ballot (round_id, voter_id, option_id, cast_at)
		VALUES ($1, $2, $3, $4)
	`, round.ID, voterID, choice, time.Now())
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateVote
		}
		return fmt.Errorf("failed to insert ballot: %w", err)
	}

	return nil
}

// Clear deletes all ballots of the current round, keeping the options.
// Idempotent: clearing with no ballots, or with no round at all, succeeds
// silently.
func (s *Store) Clear() error {
	round, err := s.Current()
	if errors.Is(err, ErrNoActiveVote) {
		return nil
	}
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`DELETE FROM ballot WHERE round_id = $1`, round.ID)
	if err != nil {
		return fmt.Errorf("failed to clear ballots: %w", err)
	}

	return nil
}

// Tally counts ballots grouped by option for the current round. Options
// with zero votes are included.
func (s *Store) Tally() (Tally, error) {
	round, err := s.Current()
	if err != nil {
		return Tally{}, err
	}

	rows, err := s.db.Query(`
		SELECT o.option_id, o.label, COUNT(b.voter_id)
		FROM vote_option o
		LEFT JOIN ballot b ON b.round_id = o.round_id AND b.option_id = o.option_id
		WHERE o.round_id = $1
		GROUP BY o.option_id, o.label
		ORDER BY o.option_id
	`, round.ID)
	if err != nil {
		return Tally{}, fmt.Errorf("failed to query standings: %w", err)
	}
	defer rows.Close()

	tally := Tally{RoundID: round.ID, OpenedAt: round.CreatedAt}
	for rows.Next() {
		var st Standing
		if err := rows.Scan(&st.Number, &st.Label, &st.Votes); err != nil {
			return Tally{}, fmt.Errorf("failed to scan standing: %w", err)
		}
		tally.Standings = append(tally.Standings, st)
		tally.Total += st.Votes
	}
	if err := rows.Err(); err != nil {
		return Tally{}, fmt.Errorf("failed to read standings: %w", err)
	}

	return tally, nil
}

// Winners returns the standings holding the highest count. More than one
// entry means a tie; ties are reported as the full set, never broken
// arbitrarily. An empty result means no ballots have been cast.
func (t Tally) Winners() []Standing {
	if t.Total == 0 {
		return nil
	}

	best := 0
	for _, st := range t.Standings {
		if st.Votes > best {
			best = st.Votes
		}
	}

	var winners []Standing
	for _, st := range t.Standings {
		if st.Votes == best {
			winners = append(winners, st)
		}
	}
	return winners
}

// isUniqueViolation reports whether err is a primary-key or unique-constraint
// conflict. Neither driver exposes a typed error for this, so both are
// matched on message text.
func isUniqueViolation(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || // modernc.org/sqlite
		strings.Contains(msg, "duplicate key value violates unique constraint") // lib/pq
}
