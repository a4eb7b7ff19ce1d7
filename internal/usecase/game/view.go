package usecase_game

import (
	"time"

	"github.com/google/uuid"
	"github.com/humanbelnik/flowquest/core/internal/model"
)

// QuestionView is a question instance as shown to players. The correct
// answer is only revealed once answers are closed.
type QuestionView struct {
	ID            uuid.UUID        `json:"id"`
	Text          string           `json:"text"`
	Options       []string         `json:"options"`
	Difficulty    model.Difficulty `json:"difficulty"`
	Round         int              `json:"round"`
	TimeLimit     int              `json:"time_limit"`
	AskedAt       time.Time        `json:"asked_at"`
	Deadline      time.Time        `json:"deadline"`
	Answered      int              `json:"answered"`
	Total         int              `json:"total"`
	CorrectAnswer string           `json:"correct_answer,omitempty"`
	Explanation   string           `json:"explanation,omitempty"`
}

func NewQuestionView(inst model.QuestionInstance, reveal bool) QuestionView {
	v := QuestionView{
		ID:         inst.ID,
		Text:       inst.Question.Text,
		Options:    inst.Question.Options,
		Difficulty: inst.Question.Difficulty,
		Round:      inst.Round,
		TimeLimit:  inst.TimeLimit,
		AskedAt:    inst.AskedAt,
		Deadline:   inst.Deadline(),
		Answered:   inst.PlayersAnswered,
		Total:      inst.TotalEligible,
	}
	if reveal {
		v.CorrectAnswer = inst.Question.CorrectAnswer
		v.Explanation = inst.Question.Explanation
	}
	return v
}

type PlayerView struct {
	ID       uuid.UUID `json:"id"`
	UserID   uuid.UUID `json:"user_id"`
	Score    int       `json:"score"`
	Position int       `json:"position"`
	JoinSeq  int64     `json:"join_seq"`
}

func NewPlayerView(p model.Player) PlayerView {
	return PlayerView{
		ID:       p.ID,
		UserID:   p.UserID,
		Score:    p.Score,
		Position: p.Position,
		JoinSeq:  p.JoinSeq,
	}
}

type MoveResult struct {
	Player   PlayerView           `json:"player"`
	Distance int                  `json:"distance"`
	Tile     model.Tile           `json:"tile"`
	Question *QuestionView        `json:"question,omitempty"`
	PowerUp  *model.PlayerPowerUp `json:"powerup,omitempty"`
	Turn     *model.TurnResult    `json:"turn,omitempty"`
}

type AnswerRequest struct {
	PlayerID   uuid.UUID
	QuestionID uuid.UUID
	Answer     string
	TimeTaken  float64
	PowerUpIDs []uuid.UUID
}

type AnswerResult struct {
	IsCorrect       bool              `json:"is_correct"`
	TimedOut        bool              `json:"timed_out"`
	Points          int               `json:"points"`
	Rank            int               `json:"rank"`
	Answered        int               `json:"answered"`
	Total           int               `json:"total"`
	AllAnswered     bool              `json:"all_answered"`
	AlreadyAnswered bool              `json:"already_answered,omitempty"`
	CorrectAnswer   string            `json:"correct_answer"`
	Explanation     string            `json:"explanation,omitempty"`
	Modifiers       model.Modifiers   `json:"modifiers"`
	Turn            *model.TurnResult `json:"turn,omitempty"`
}

type HintResult struct {
	QuestionID uuid.UUID `json:"question_id"`
	Options    []string  `json:"options"`
}

type GameOver struct {
	Winner    *model.Standing  `json:"winner"`
	Standings []model.Standing `json:"standings"`
}

type RoomView struct {
	ID                 uuid.UUID        `json:"id"`
	Code               string           `json:"code"`
	HostID             uuid.UUID        `json:"host_id"`
	Active             bool             `json:"active"`
	Status             model.RoomStatus `json:"status"`
	CurrentRound       int              `json:"current_round"`
	CurrentPlayerIndex int              `json:"current_player_index"`
	Phase              model.Phase      `json:"phase"`
	Version            int64            `json:"version"`
	CreatedAt          time.Time        `json:"created_at"`
}

func NewRoomView(r model.Room) RoomView {
	return RoomView{
		ID:                 r.ID,
		Code:               r.Code,
		HostID:             r.HostID,
		Active:             r.Active,
		Status:             r.Status,
		CurrentRound:       r.CurrentRound,
		CurrentPlayerIndex: r.CurrentPlayerIndex,
		Phase:              r.Phase,
		Version:            r.Version,
		CreatedAt:          r.CreatedAt,
	}
}

func NewPlayerViews(players []model.Player) []PlayerView {
	out := make([]PlayerView, len(players))
	for i, p := range players {
		out[i] = NewPlayerView(p)
	}
	return out
}

type GameState struct {
	Room          RoomView         `json:"room"`
	Players       []PlayerView     `json:"players"`
	CurrentPlayer *PlayerView      `json:"current_player,omitempty"`
	Question      *QuestionView    `json:"question,omitempty"`
	Standings     []model.Standing `json:"standings"`
}
