// Package authz implements the ownership check gating every mutating
// operation in the marketplace core.
package authz

import (
	"strings"

	apperrors "github.com/hirewire/hirewire/internal/errors"
)

// Authorize compares the acting identity against the resource owner. A
// mismatch always returns an authorization error; it never silently no-ops.
func Authorize(actorID, ownerID string) error {
	actor := strings.TrimSpace(actorID)
	owner := strings.TrimSpace(ownerID)
	if actor == "" {
		return apperrors.Validation("actor id is required")
	}
	if actor != owner {
		return apperrors.Authorization("actor is not the resource owner")
	}
	return nil
}
