// Copyright (c) 2025 Weaseltime420.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Request types

type SetvoteRequest struct {
	Options []string `json:"options"`
}

type VoteRequest struct {
	Choice int `json:"choice"`
}

// Response types

// CommandReply is the rendered outcome of a command. The platform adapter
// posts Content to the channel; Ephemeral marks replies only the invoking
// member may see.
type CommandReply struct {
	Content   string `json:"content"`
	Ephemeral bool   `json:"ephemeral"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
