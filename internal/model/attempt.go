package model

import (
	"time"

	"github.com/google/uuid"
)

type AnswerAttempt struct {
	ID                 uuid.UUID
	QuestionInstanceID uuid.UUID
	PlayerID           uuid.UUID
	Answer             string
	IsCorrect          bool
	TimedOut           bool
	Skipped            bool
	// Seconds.
	TimeTaken float64
	// 0 until the counting step assigns it.
	Rank      int
	Points    int
	CreatedAt time.Time
}

func (a AnswerAttempt) Ranked() bool {
	return a.Rank > 0
}

// AnswerCount is the question instance counter as observed by one counting step.
type AnswerCount struct {
	Rank     int
	Points   int
	Answered int
	Total    int
	// True only for the step that assigned Rank.
	Assigned bool
}

type Receipt struct {
	Attempt     AnswerAttempt
	Answered    int
	Total       int
	AllAnswered bool
	// True for exactly one attempt per question instance: the one whose
	// counting step made Answered reach Total.
	Completed bool
}

// ScoreFunc prices an attempt once its rank is known.
type ScoreFunc = func(rank int) int
