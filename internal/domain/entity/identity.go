package entity

import "github.com/google/uuid"

// Identity is the authenticated caller, as decoded from a verified bearer token.
type Identity struct {
	UserID uuid.UUID
	Email  string
}
