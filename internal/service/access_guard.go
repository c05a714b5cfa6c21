package service

import (
	"github.com/google/uuid"
	"github.com/qtcyy/practice-system/internal/apperr"
)

// RequireOwner is the single ownership check used before every set-scoped
// read or mutation. A nil owner means a legacy/shared resource and is
// accessible to any authenticated caller.
func RequireOwner(resource string, ownerID *uuid.UUID, caller uuid.UUID) error {
	if ownerID == nil {
		return nil
	}
	if *ownerID != caller {
		return apperr.Forbidden("Unauthorized access to " + resource)
	}
	return nil
}
