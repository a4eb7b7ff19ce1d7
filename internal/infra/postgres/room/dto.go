package infra_postgres_room

import (
	"time"

	"github.com/google/uuid"
	"github.com/humanbelnik/flowquest/core/internal/model"
)

type roomDTO struct {
	ID                 uuid.UUID     `db:"id"`
	Code               string        `db:"code"`
	HostID             uuid.UUID     `db:"host_id"`
	Active             bool          `db:"active"`
	Status             string        `db:"status"`
	CurrentRound       int           `db:"current_round"`
	CurrentPlayerIndex int           `db:"current_player_index"`
	Phase              string        `db:"phase"`
	PhaseQuestionID    uuid.NullUUID `db:"phase_question_id"`
	Version            int64         `db:"version"`
	CreatedAt          time.Time     `db:"created_at"`
}

func (r roomDTO) model() model.Room {
	phase := model.Phase{Kind: model.PhaseKind(r.Phase)}
	if r.PhaseQuestionID.Valid {
		id := r.PhaseQuestionID.UUID
		phase.QuestionID = &id
	}
	return model.Room{
		ID:                 r.ID,
		Code:               r.Code,
		HostID:             r.HostID,
		Active:             r.Active,
		Status:             r.Status,
		CurrentRound:       r.CurrentRound,
		CurrentPlayerIndex: r.CurrentPlayerIndex,
		Phase:              phase,
		Version:            r.Version,
		CreatedAt:          r.CreatedAt,
	}
}

func phaseQuestion(p model.Phase) uuid.NullUUID {
	if p.QuestionID == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: *p.QuestionID, Valid: true}
}

type playerDTO struct {
	ID       uuid.UUID `db:"id"`
	RoomID   uuid.UUID `db:"room_id"`
	UserID   uuid.UUID `db:"user_id"`
	Score    int       `db:"score"`
	Position int       `db:"position"`
	JoinSeq  int64     `db:"join_seq"`
	JoinedAt time.Time `db:"joined_at"`
}

func (p playerDTO) model() model.Player {
	return model.Player{
		ID:       p.ID,
		RoomID:   p.RoomID,
		UserID:   p.UserID,
		Score:    p.Score,
		Position: p.Position,
		JoinSeq:  p.JoinSeq,
		JoinedAt: p.JoinedAt,
	}
}

const (
	roomColumns   = `id, code, host_id, active, status, current_round, current_player_index, phase, phase_question_id, version, created_at`
	playerColumns = `id, room_id, user_id, score, position, join_seq, joined_at`
)
