package infra_postgres_question

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/humanbelnik/flowquest/core/internal/model"
	infra_pg_err "github.com/humanbelnik/flowquest/core/internal/infra/postgres/pgerr"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type Driver struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Driver {
	return &Driver{db: db}
}

type questionDTO struct {
	ID            uuid.UUID      `db:"id"`
	Text          string         `db:"text"`
	Options       pq.StringArray `db:"options"`
	CorrectAnswer string         `db:"correct_answer"`
	Difficulty    string         `db:"difficulty"`
	Explanation   string         `db:"explanation"`
}

func (q questionDTO) model() model.Question {
	return model.Question{
		ID:            q.ID,
		Text:          q.Text,
		Options:       []string(q.Options),
		CorrectAnswer: q.CorrectAnswer,
		Difficulty:    q.Difficulty,
		Explanation:   q.Explanation,
	}
}

type instanceDTO struct {
	ID              uuid.UUID   `db:"id"`
	RoomID          uuid.UUID   `db:"room_id"`
	Round           int         `db:"round"`
	TimeLimit       int         `db:"time_limit"`
	TotalEligible   int         `db:"total_eligible"`
	PlayersAnswered int         `db:"players_answered"`
	AllAnswered     bool        `db:"all_answered"`
	TurnAdvanced    bool        `db:"turn_advanced"`
	AskedAt         time.Time   `db:"asked_at"`
	Question        questionDTO `db:"q"`
}

const questionColumns = `q.id, q.text, q.options, q.correct_answer, q.difficulty, q.explanation`

// PickQuestion draws a random question. Unless allowRepeat is set, questions
// already asked in the room are excluded.
func (d *Driver) PickQuestion(ctx context.Context, roomID uuid.UUID, allowRepeat bool) (model.Question, error) {
	var (
		dto questionDTO
		err error
	)
	if allowRepeat {
		query := `SELECT ` + questionColumns + ` FROM questions q ORDER BY random() LIMIT 1`
		err = d.db.GetContext(ctx, &dto, query)
	} else {
		query := `
			SELECT ` + questionColumns + `
			FROM questions q
			WHERE NOT EXISTS (
				SELECT 1 FROM question_instances qi
				WHERE qi.room_id = $1 AND qi.question_id = q.id
			)
			ORDER BY random()
			LIMIT 1
		`
		err = d.db.GetContext(ctx, &dto, query, roomID)
	}
	if err != nil {
		return model.Question{}, infra_pg_err.Map(err, nil)
	}
	return dto.model(), nil
}

func (d *Driver) CreateInstance(ctx context.Context, inst model.QuestionInstance) error {
	query := `
		INSERT INTO question_instances (id, room_id, question_id, round, time_limit, total_eligible, asked_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := d.db.ExecContext(ctx, query,
		inst.ID, inst.RoomID, inst.Question.ID, inst.Round, inst.TimeLimit, inst.TotalEligible, inst.AskedAt)
	return infra_pg_err.Map(err, model.ErrCodeConflict)
}

func (d *Driver) InstanceByID(ctx context.Context, instanceID uuid.UUID) (model.QuestionInstance, error) {
	var dto instanceDTO
	query := `
		SELECT qi.id, qi.room_id, qi.round, qi.time_limit, qi.total_eligible,
		       qi.players_answered, qi.all_answered, qi.turn_advanced, qi.asked_at,
		       q.id AS "q.id", q.text AS "q.text", q.options AS "q.options",
		       q.correct_answer AS "q.correct_answer", q.difficulty AS "q.difficulty",
		       q.explanation AS "q.explanation"
		FROM question_instances qi
		JOIN questions q ON q.id = qi.question_id
		WHERE qi.id = $1
	`
	if err := d.db.GetContext(ctx, &dto, query, instanceID); err != nil {
		return model.QuestionInstance{}, infra_pg_err.Map(err, nil)
	}
	return model.QuestionInstance{
		ID:              dto.ID,
		RoomID:          dto.RoomID,
		Question:        dto.Question.model(),
		Round:           dto.Round,
		TimeLimit:       dto.TimeLimit,
		TotalEligible:   dto.TotalEligible,
		PlayersAnswered: dto.PlayersAnswered,
		AllAnswered:     dto.AllAnswered,
		TurnAdvanced:    dto.TurnAdvanced,
		AskedAt:         dto.AskedAt,
	}, nil
}
