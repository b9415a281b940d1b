package service

import "github.com/google/uuid"

// IsOwner reports whether the requesting user owns the resource.
func IsOwner(resourceOwnerID, requestingUserID uuid.UUID) bool {
	return resourceOwnerID == requestingUserID
}
