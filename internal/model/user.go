package model

import "github.com/google/uuid"

// Principal is the authenticated caller of an operation.
type Principal struct {
	UserID uuid.UUID
	Name   string
}

func (p Principal) Valid() bool {
	return p.UserID != uuid.Nil
}
