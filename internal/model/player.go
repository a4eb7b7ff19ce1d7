package model

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

type Player struct {
	ID       uuid.UUID
	RoomID   uuid.UUID
	UserID   uuid.UUID
	Score    int
	Position int
	// Monotonic join order. Turn order and the winner tie-break use it.
	JoinSeq  int64
	JoinedAt time.Time
}

// SortByJoinOrder orders players the way turns are taken.
func SortByJoinOrder(players []Player) {
	sort.SliceStable(players, func(i, j int) bool {
		return players[i].JoinSeq < players[j].JoinSeq
	})
}

// SortByStanding orders players by score descending, earliest join first on ties.
func SortByStanding(players []Player) {
	sort.SliceStable(players, func(i, j int) bool {
		if players[i].Score != players[j].Score {
			return players[i].Score > players[j].Score
		}
		return players[i].JoinSeq < players[j].JoinSeq
	})
}
