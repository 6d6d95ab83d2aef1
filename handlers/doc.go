// Copyright (c) 2025 Weaseltime420.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP handlers for the bot's commands.

# Handler Types

Each handler is a struct holding the vote store and config:

  - AdminHandler: Setvote and Clearvotes (round lifecycle)
  - VotingHandler: Vote and Showpoll (member-facing)
  - ResultsHandler: Checkvote and Publishvote (tallies)

Handlers are created via constructor functions that accept *sql.DB and Config:

	adminHandler := handlers.NewAdminHandler(db, cfg)

# Command Flow

The platform adapter forwards authenticated command invocations:

	POST /commands/setvote     → Setvote (admin, starts a new round)
	POST /commands/vote        → Vote (member, one hidden ballot)
	POST /commands/clearvotes  → Clearvotes (admin)
	POST /commands/checkvote   → Checkvote (admin, ephemeral standings)
	POST /commands/publishvote → Publishvote (admin, public result)
	GET  /commands/showpoll    → Showpoll (member, public option list)

Capability checks happen in middleware.WithAuth before a handler runs;
handlers only read X-Member-ID for voter identity.

# Replies

Every command outcome, including vote rejections such as a duplicate
ballot, is rendered as a models.CommandReply so the adapter can post it.
The Ephemeral flag keeps ballots blind: vote replies and admin standings
are visible only to the invoking member, while publishvote and showpoll
address the whole channel.

# Outcome Determination

Publishvote appends the winner to the standings. When several options
share the highest count the reply names all of them as a tie; the bot
never picks one arbitrarily.
*/
package handlers
