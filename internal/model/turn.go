package model

import "github.com/google/uuid"

// TurnState is the slice of a room owned by the turn controller.
type TurnState struct {
	Status      RoomStatus `json:"status"`
	Round       int        `json:"round"`
	PlayerIndex int        `json:"player_index"`
	Phase       Phase      `json:"phase"`
	Version     int64      `json:"version"`
}

func TurnStateOf(r Room) TurnState {
	return TurnState{
		Status:      r.Status,
		Round:       r.CurrentRound,
		PlayerIndex: r.CurrentPlayerIndex,
		Phase:       r.Phase,
		Version:     r.Version,
	}
}

// TurnTransition is written atomically: the trigger claim (when Trigger is
// not nil) and the room update guarded by ExpectedVersion either both apply
// or neither does.
type TurnTransition struct {
	RoomID          uuid.UUID
	Trigger         uuid.UUID
	ExpectedVersion int64
	Next            TurnState
}

type Standing struct {
	PlayerID uuid.UUID `json:"player_id"`
	UserID   uuid.UUID `json:"user_id"`
	Score    int       `json:"score"`
	JoinSeq  int64     `json:"join_seq"`
	Place    int       `json:"place"`
}

type TurnResult struct {
	State     TurnState  `json:"state"`
	Advanced  bool       `json:"advanced"`
	Completed bool       `json:"completed"`
	Winner    *Standing  `json:"winner,omitempty"`
	Standings []Standing `json:"standings"`
}
