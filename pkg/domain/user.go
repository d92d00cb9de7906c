package domain

import "github.com/google/uuid"

// UserID identifies an authenticated API caller. It is taken from the
// subject of the bearer token.
type UserID uuid.UUID

func (id UserID) String() string { return uuid.UUID(id).String() }
