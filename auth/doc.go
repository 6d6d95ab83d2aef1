// Copyright (c) 2025 Weaseltime420.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides the capability model for commands and admin token
generation.

# Capability Levels

Commands declare the access they require:

  - None: any platform-authenticated member
  - Admin: member must hold an admin token

# Admin Tokens

Admin tokens are HMAC-SHA256 over the member ID with a server-side salt:

	token := auth.GenerateAdminToken(memberID, salt)

Tokens are deterministic, so the operator can issue one to each
administrator without the server storing anything. Validation is a
constant-time comparison:

	if err := auth.ValidateAdminToken(memberID, token, salt); err != nil {
		// reject
	}

Rotating the salt invalidates every outstanding token at once.
*/
package auth
