// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth handles caller identity and the admin capability check.

# Caller Identity

Voters are identified by an integer user ID supplied by the front end
in the X-User-ID header:

	userID, err := auth.UserID(r)

# Admin Capability

The voting core never authorizes; handlers receive an injected
predicate instead:

	adminIDs, _ := auth.ParseAdminIDs(cfg.AdminUserIDs)
	isAdmin := auth.NewAdminChecker(adminIDs, cfg.AdminKeySalt)

A request passes the check when either:

  - its X-User-ID is in the configured ADMIN_USER_IDS allow-set
    (the deployment's stand-in for a chat platform's admin roster), or
  - it carries a valid X-Admin-Key.

# Admin Keys

The admin key is an HMAC-SHA256 over a fixed scope, derived from
ADMIN_KEY_SALT. It is deterministic, so the operator can regenerate it
from the salt at any time:

	key := auth.GenerateAdminKey(salt)
	err := auth.ValidateAdminKey(key, salt)

Validation uses a constant-time compare.
*/
package auth
