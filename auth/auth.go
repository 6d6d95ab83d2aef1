// Copyright (c) 2025 Weaseltime420.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strings"
)

// Access is the capability a command requires.
type Access int

const (
	// None: any authenticated member may invoke the command.
	None Access = iota
	// Admin: the member must present a valid admin token.
	Admin
)

var ErrInvalidAdminToken = errors.New("invalid admin token")

// GenerateAdminToken creates an HMAC-based admin token for a member.
// This is deterministic and verifiable, so tokens can be issued out of
// band (e.g. by the operator) without storing them.
func GenerateAdminToken(memberID, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(memberID))
	sum := h.Sum(nil)
	// Use URL-safe base64 and trim padding for cleaner tokens
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// ValidateAdminToken checks that the provided token grants the member
// admin capability.
func ValidateAdminToken(memberID, token, salt string) error {
	expected := GenerateAdminToken(memberID, salt)
	if !hmac.Equal([]byte(token), []byte(expected)) {
		return ErrInvalidAdminToken
	}
	return nil
}
