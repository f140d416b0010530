// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"net/http"
	"strconv"
	"strings"
)

var (
	ErrInvalidAdminKey = errors.New("invalid admin key")
	ErrMissingUserID   = errors.New("missing or malformed X-User-ID header")
)

// adminKeyScope is the fixed message signed into the service admin key.
const adminKeyScope = "filmvote-admin"

// AdminFunc decides whether a request may perform admin operations
// (add/delete films, start rounds). The voting core never authorizes;
// the capability check is injected at the HTTP layer.
type AdminFunc func(r *http.Request) bool

// UserID extracts the caller identity from the X-User-ID header. The
// front end (chat bot, CLI, web form) is responsible for putting a
// stable integer identity there.
func UserID(r *http.Request) (int64, error) {
	raw := r.Header.Get("X-User-ID")
	if raw == "" {
		return 0, ErrMissingUserID
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, ErrMissingUserID
	}
	return id, nil
}

// GenerateAdminKey derives the service admin key from the configured salt.
// This is deterministic and verifiable.
func GenerateAdminKey(salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(adminKeyScope))
	sum := h.Sum(nil)
	// Use URL-safe base64 and trim padding for cleaner keys
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// ValidateAdminKey checks the provided admin key against the salt.
func ValidateAdminKey(adminKey, salt string) error {
	expected := GenerateAdminKey(salt)
	if !hmac.Equal([]byte(adminKey), []byte(expected)) {
		return ErrInvalidAdminKey
	}
	return nil
}

// ParseAdminIDs parses a comma-separated list of admin user IDs, the
// deployment's stand-in for a chat platform's admin roster.
func ParseAdminIDs(raw string) (map[int64]bool, error) {
	ids := make(map[int64]bool)
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, errors.New("invalid admin user id: " + part)
		}
		ids[id] = true
	}
	return ids, nil
}

// NewAdminChecker builds the admin predicate: a request is admin when
// it carries a valid X-Admin-Key, or when its X-User-ID is in the
// configured allow-set.
func NewAdminChecker(adminIDs map[int64]bool, salt string) AdminFunc {
	return func(r *http.Request) bool {
		if key := r.Header.Get("X-Admin-Key"); key != "" {
			if ValidateAdminKey(key, salt) == nil {
				return true
			}
		}
		id, err := UserID(r)
		if err != nil {
			return false
		}
		return adminIDs[id]
	}
}
