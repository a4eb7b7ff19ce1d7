package model

import (
	"time"

	"github.com/google/uuid"
)

type Difficulty = string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

type Question struct {
	ID            uuid.UUID
	Text          string
	Options       []string
	CorrectAnswer string
	Difficulty    Difficulty
	Explanation   string
}

// QuestionInstance is one question asked during one round in one room.
type QuestionInstance struct {
	ID       uuid.UUID
	RoomID   uuid.UUID
	Question Question
	Round    int
	// Seconds.
	TimeLimit int
	// Snapshot of the room's player count when the instance was created.
	TotalEligible   int
	PlayersAnswered int
	AllAnswered     bool
	TurnAdvanced    bool
	AskedAt         time.Time
}

func (q QuestionInstance) Deadline() time.Time {
	return q.AskedAt.Add(time.Duration(q.TimeLimit) * time.Second)
}
