// Copyright (c) 2025 Weaseltime420.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the JSON wire types of the command API.

# Request Types

Commands taking input have a matching request struct:

  - SetvoteRequest: the option labels for a new round
  - VoteRequest: the 1-based choice number

# Response Types

Every command resolves to a CommandReply: the message text plus an
Ephemeral flag telling the platform adapter whether the reply is visible
to the whole channel or only to the invoking member.

Failures that are not command outcomes (bad JSON, missing headers,
storage errors) use ErrorResponse.
*/
package models
