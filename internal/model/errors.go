package model

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthorized         = errors.New("unauthorized")
	ErrForbidden            = errors.New("forbidden")
	ErrNotFound             = errors.New("no such resource")
	ErrInvalidMove          = errors.New("invalid move")
	ErrInvalidTile          = errors.New("invalid tile")
	ErrAlreadyAnswered      = errors.New("already answered")
	ErrInventoryFull        = errors.New("powerup inventory full")
	ErrConcurrencyConflict  = errors.New("concurrency conflict")
	ErrGameAlreadyCompleted = errors.New("game already completed")
	ErrGameNotStarted       = errors.New("game not started")
	ErrNotYourTurn          = errors.New("not your turn")
	ErrQuestionClosed       = errors.New("question closed")
	ErrWrongPhase           = errors.New("not allowed in the current phase")
	ErrCodeConflict         = errors.New("code conflict")
	ErrRoomsUnavailable     = errors.New("no available rooms")
	ErrInternal             = errors.New("internal error")

	// Returned by stores for failures worth retrying (serialization
	// failures, deadlocks, lost connections).
	ErrTransient = errors.New("transient storage failure")
)

// InvalidMoveError carries the attempted distance for a corrective message.
type InvalidMoveError struct {
	From     int
	To       int
	Distance int
}

func (e *InvalidMoveError) Error() string {
	return fmt.Sprintf("invalid move: you can only move 1-6 spaces from your current position (%d), tried to move to %d (%+d spaces)",
		e.From, e.To, e.Distance)
}

func (e *InvalidMoveError) Is(target error) bool {
	return target == ErrInvalidMove
}
