package model

import (
	"time"

	"github.com/google/uuid"
)

type RoomStatus = string

const (
	StatusWaiting    RoomStatus = "waiting"
	StatusInProgress RoomStatus = "in_progress"
	StatusCompleted  RoomStatus = "completed"
)

const (
	// Ten full rounds is the fixed game length.
	RoundCeiling = 10
	BoardSize    = 36
	RoomCodeLen  = 6
)

type Room struct {
	ID                 uuid.UUID
	Code               string
	HostID             uuid.UUID
	Active             bool
	Status             RoomStatus
	CurrentRound       int
	CurrentPlayerIndex int
	Phase              Phase
	// Bumped on every write of turn state.
	Version   int64
	CreatedAt time.Time
}

func (r Room) IsHost(userID uuid.UUID) bool {
	return r.HostID == userID
}

type PhaseKind string

const (
	PhaseAwaitingMove    PhaseKind = "awaiting_move"
	PhaseAwaitingAnswers PhaseKind = "awaiting_answers"
	PhaseShowingResults  PhaseKind = "showing_results"
	PhaseCompleted       PhaseKind = "completed"
)

// Phase is the per-turn sub-state of a room. QuestionID is set for
// AwaitingAnswers and ShowingResults only.
type Phase struct {
	Kind       PhaseKind  `json:"kind"`
	QuestionID *uuid.UUID `json:"question_id,omitempty"`
}

func AwaitingMove() Phase {
	return Phase{Kind: PhaseAwaitingMove}
}

func AwaitingAnswers(questionID uuid.UUID) Phase {
	return Phase{Kind: PhaseAwaitingAnswers, QuestionID: &questionID}
}

func ShowingResults(questionID uuid.UUID) Phase {
	return Phase{Kind: PhaseShowingResults, QuestionID: &questionID}
}

func Completed() Phase {
	return Phase{Kind: PhaseCompleted}
}

func (p Phase) AcceptsMove() bool {
	return p.Kind == PhaseAwaitingMove || p.Kind == PhaseShowingResults
}

// IsOpenFor reports whether answers for the given question instance are
// currently being collected.
func (p Phase) IsOpenFor(questionID uuid.UUID) bool {
	return p.Kind == PhaseAwaitingAnswers && p.QuestionID != nil && *p.QuestionID == questionID
}
