// Copyright (c) 2025 Weaseltime420.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package vote implements the blind-vote data model: numbered option slates
(rounds) and one hidden ballot per voter.

# Model

A round is the slate of options opened by one setvote command. Exactly one
round is current at a time; replacing it starts a new round with zero
ballots. Choices are 1-based numbers into the round's option list.

# Operations

	store := vote.NewStore(db)

	round, err := store.SetOptions([]string{"Pizza", "Tacos", "Sushi"})
	err = store.Cast("member-123", 2)
	tally, err := store.Tally()
	err = store.Clear()

# Errors

Operations fail with sentinel errors the command layer maps to user-facing
messages:

  - ErrNoActiveVote: no setvote has run yet
  - ErrInvalidOptions: fewer than 2 or more than 10 non-empty options
  - ErrInvalidChoice: choice outside the current option numbers
  - ErrDuplicateVote: the voter already holds a ballot this round

Anything else is a storage failure, wrapped with context.

# Concurrency

The store holds no in-memory state. Duplicate-vote detection and
configuration replacement both lean on the storage engine: the ballot
primary key makes concurrent double-submits lose cleanly, and SetOptions
switches rounds in one transaction so a concurrent Cast never observes a
half-applied configuration.
*/
package vote
