package infra_postgres_attempt

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/humanbelnik/flowquest/core/internal/model"
	infra_pg_err "github.com/humanbelnik/flowquest/core/internal/infra/postgres/pgerr"
	"github.com/jmoiron/sqlx"
)

type Driver struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Driver {
	return &Driver{db: db}
}

type attemptDTO struct {
	ID                 uuid.UUID `db:"id"`
	QuestionInstanceID uuid.UUID `db:"question_instance_id"`
	PlayerID           uuid.UUID `db:"player_id"`
	Answer             string    `db:"answer"`
	IsCorrect          bool      `db:"is_correct"`
	TimedOut           bool      `db:"timed_out"`
	Skipped            bool      `db:"skipped"`
	TimeTaken          float64   `db:"time_taken"`
	Rank               int       `db:"rank"`
	Points             int       `db:"points"`
	CreatedAt          time.Time `db:"created_at"`
}

func (a attemptDTO) model() model.AnswerAttempt {
	return model.AnswerAttempt{
		ID:                 a.ID,
		QuestionInstanceID: a.QuestionInstanceID,
		PlayerID:           a.PlayerID,
		Answer:             a.Answer,
		IsCorrect:          a.IsCorrect,
		TimedOut:           a.TimedOut,
		Skipped:            a.Skipped,
		TimeTaken:          a.TimeTaken,
		Rank:               a.Rank,
		Points:             a.Points,
		CreatedAt:          a.CreatedAt,
	}
}

const attemptColumns = `id, question_instance_id, player_id, answer, is_correct, timed_out, skipped, time_taken, rank, points, created_at`

func (d *Driver) InsertAttempt(ctx context.Context, a model.AnswerAttempt) error {
	query := `
		INSERT INTO answer_attempts (id, question_instance_id, player_id, answer, is_correct, timed_out, skipped, time_taken, created_at)
		VALUES (:id, :question_instance_id, :player_id, :answer, :is_correct, :timed_out, :skipped, :time_taken, :created_at)
	`
	dto := attemptDTO{
		ID:                 a.ID,
		QuestionInstanceID: a.QuestionInstanceID,
		PlayerID:           a.PlayerID,
		Answer:             a.Answer,
		IsCorrect:          a.IsCorrect,
		TimedOut:           a.TimedOut,
		Skipped:            a.Skipped,
		TimeTaken:          a.TimeTaken,
		CreatedAt:          a.CreatedAt,
	}
	_, err := d.db.NamedExecContext(ctx, query, dto)
	return infra_pg_err.Map(err, model.ErrAlreadyAnswered)
}

func (d *Driver) AttemptByPlayer(ctx context.Context, instanceID, playerID uuid.UUID) (model.AnswerAttempt, error) {
	var dto attemptDTO
	query := `SELECT ` + attemptColumns + ` FROM answer_attempts WHERE question_instance_id = $1 AND player_id = $2`

	if err := d.db.GetContext(ctx, &dto, query, instanceID, playerID); err != nil {
		return model.AnswerAttempt{}, infra_pg_err.Map(err, nil)
	}
	return dto.model(), nil
}

type counterDTO struct {
	Answered int `db:"players_answered"`
	Total    int `db:"total_eligible"`
}

// CountAttempt ranks the attempt inside one transaction. The attempt row is
// locked first, then the instance row, so concurrent counts for the same
// question queue on the instance counter.
func (d *Driver) CountAttempt(ctx context.Context, attemptID uuid.UUID, score model.ScoreFunc) (model.AnswerCount, error) {
	tx, err := d.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.AnswerCount{}, infra_pg_err.Map(err, nil)
	}
	defer tx.Rollback()

	var a attemptDTO
	query := `SELECT ` + attemptColumns + ` FROM answer_attempts WHERE id = $1 FOR UPDATE`
	if err := tx.GetContext(ctx, &a, query, attemptID); err != nil {
		return model.AnswerCount{}, infra_pg_err.Map(err, nil)
	}

	var counter counterDTO
	if a.Rank > 0 {
		query := `SELECT players_answered, total_eligible FROM question_instances WHERE id = $1`
		if err := tx.GetContext(ctx, &counter, query, a.QuestionInstanceID); err != nil {
			return model.AnswerCount{}, infra_pg_err.Map(err, nil)
		}
		return model.AnswerCount{
			Rank:     a.Rank,
			Points:   a.Points,
			Answered: counter.Answered,
			Total:    counter.Total,
		}, nil
	}

	query = `
		UPDATE question_instances
		SET players_answered = players_answered + 1,
		    all_answered = players_answered + 1 >= total_eligible
		WHERE id = $1
		RETURNING players_answered, total_eligible
	`
	if err := tx.GetContext(ctx, &counter, query, a.QuestionInstanceID); err != nil {
		return model.AnswerCount{}, infra_pg_err.Map(err, nil)
	}

	rank := counter.Answered
	points := score(rank)
	if _, err := tx.ExecContext(ctx, `UPDATE answer_attempts SET rank = $1, points = $2 WHERE id = $3`, rank, points, a.ID); err != nil {
		return model.AnswerCount{}, infra_pg_err.Map(err, nil)
	}
	if _, err := tx.ExecContext(ctx, `UPDATE players SET score = score + $1 WHERE id = $2`, points, a.PlayerID); err != nil {
		return model.AnswerCount{}, infra_pg_err.Map(err, nil)
	}
	if err := tx.Commit(); err != nil {
		return model.AnswerCount{}, infra_pg_err.Map(err, nil)
	}

	return model.AnswerCount{
		Rank:     rank,
		Points:   points,
		Answered: counter.Answered,
		Total:    counter.Total,
		Assigned: true,
	}, nil
}
