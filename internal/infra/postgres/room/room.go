package infra_postgres_room

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/humanbelnik/flowquest/core/internal/model"
	infra_pg_err "github.com/humanbelnik/flowquest/core/internal/infra/postgres/pgerr"
	"github.com/jmoiron/sqlx"
)

// Driver stores rooms, their players and the turn state.
type Driver struct {
	db *sqlx.DB
}

func New(
	db *sqlx.DB,
) *Driver {
	return &Driver{db: db}
}

func (d *Driver) CreateRoom(ctx context.Context, room model.Room, host model.Player) (model.Player, error) {
	tx, err := d.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.Player{}, err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO rooms (id, code, host_id, active, status, current_round, current_player_index, phase, version)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err = tx.ExecContext(ctx, query,
		room.ID, room.Code, room.HostID, room.Active, room.Status,
		room.CurrentRound, room.CurrentPlayerIndex, string(room.Phase.Kind), room.Version,
	)
	if err != nil {
		return model.Player{}, infra_pg_err.Map(err, model.ErrCodeConflict)
	}

	player, err := insertPlayer(ctx, tx, host)
	if err != nil {
		return model.Player{}, err
	}
	if err := tx.Commit(); err != nil {
		return model.Player{}, err
	}
	return player, nil
}

func insertPlayer(ctx context.Context, q sqlx.QueryerContext, p model.Player) (model.Player, error) {
	var dto playerDTO
	query := `
		INSERT INTO players (id, room_id, user_id, score, position)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (room_id, user_id) DO NOTHING
		RETURNING ` + playerColumns

	err := sqlx.GetContext(ctx, q, &dto, query, p.ID, p.RoomID, p.UserID, p.Score, p.Position)
	if err != nil {
		return model.Player{}, infra_pg_err.Map(err, nil)
	}
	return dto.model(), nil
}

func (d *Driver) RoomByID(ctx context.Context, roomID uuid.UUID) (model.Room, error) {
	var dto roomDTO
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE id = $1`

	if err := d.db.GetContext(ctx, &dto, query, roomID); err != nil {
		return model.Room{}, infra_pg_err.Map(err, nil)
	}
	return dto.model(), nil
}

func (d *Driver) RoomByCode(ctx context.Context, code string) (model.Room, error) {
	var dto roomDTO
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE code = $1 AND active`

	if err := d.db.GetContext(ctx, &dto, query, code); err != nil {
		return model.Room{}, infra_pg_err.Map(err, nil)
	}
	return dto.model(), nil
}

func (d *Driver) DeactivateRoom(ctx context.Context, roomID uuid.UUID) error {
	query := `UPDATE rooms SET active = FALSE, version = version + 1 WHERE id = $1`

	return expectRow(d.db.ExecContext(ctx, query, roomID))
}

// AddPlayer returns the existing membership when the user already joined.
func (d *Driver) AddPlayer(ctx context.Context, p model.Player) (model.Player, error) {
	player, err := insertPlayer(ctx, d.db, p)
	if errors.Is(err, model.ErrNotFound) {
		// ON CONFLICT DO NOTHING returns no row.
		return d.PlayerByUser(ctx, p.RoomID, p.UserID)
	}
	return player, err
}

func (d *Driver) PlayerByID(ctx context.Context, playerID uuid.UUID) (model.Player, error) {
	var dto playerDTO
	query := `SELECT ` + playerColumns + ` FROM players WHERE id = $1`

	if err := d.db.GetContext(ctx, &dto, query, playerID); err != nil {
		return model.Player{}, infra_pg_err.Map(err, nil)
	}
	return dto.model(), nil
}

func (d *Driver) PlayerByUser(ctx context.Context, roomID, userID uuid.UUID) (model.Player, error) {
	var dto playerDTO
	query := `SELECT ` + playerColumns + ` FROM players WHERE room_id = $1 AND user_id = $2`

	if err := d.db.GetContext(ctx, &dto, query, roomID, userID); err != nil {
		return model.Player{}, infra_pg_err.Map(err, nil)
	}
	return dto.model(), nil
}

func (d *Driver) PlayersByRoom(ctx context.Context, roomID uuid.UUID) ([]model.Player, error) {
	var dtos []playerDTO
	query := `SELECT ` + playerColumns + ` FROM players WHERE room_id = $1 ORDER BY join_seq`

	if err := d.db.SelectContext(ctx, &dtos, query, roomID); err != nil {
		return nil, err
	}
	players := make([]model.Player, 0, len(dtos))
	for _, dto := range dtos {
		players = append(players, dto.model())
	}
	return players, nil
}

func (d *Driver) RemovePlayer(ctx context.Context, roomID, userID uuid.UUID) (int, error) {
	tx, err := d.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	err = expectRow(tx.ExecContext(ctx, `DELETE FROM players WHERE room_id = $1 AND user_id = $2`, roomID, userID))
	if err != nil {
		return 0, err
	}
	var remaining int
	if err := tx.GetContext(ctx, &remaining, `SELECT count(*) FROM players WHERE room_id = $1`, roomID); err != nil {
		return 0, err
	}
	return remaining, tx.Commit()
}

func (d *Driver) UpdatePosition(ctx context.Context, playerID uuid.UUID, position int) error {
	query := `UPDATE players SET position = $1 WHERE id = $2`

	return expectRow(d.db.ExecContext(ctx, query, position, playerID))
}

func (d *Driver) ApplyTurn(ctx context.Context, tr model.TurnTransition) (bool, error) {
	return d.transition(ctx, tr, nil)
}

// ResetRoom also forgets the questions asked so far.
func (d *Driver) ResetRoom(ctx context.Context, tr model.TurnTransition) (bool, error) {
	return d.transition(ctx, tr, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `UPDATE players SET score = 0, position = 0 WHERE room_id = $1`, tr.RoomID); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `DELETE FROM question_instances WHERE room_id = $1`, tr.RoomID)
		return err
	})
}

func (d *Driver) transition(ctx context.Context, tr model.TurnTransition, also func(tx *sqlx.Tx) error) (bool, error) {
	tx, err := d.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	if tr.Trigger != uuid.Nil {
		res, err := tx.ExecContext(ctx, `
			INSERT INTO turn_claims (trigger_id, room_id) VALUES ($1, $2)
			ON CONFLICT (trigger_id) DO NOTHING
		`, tr.Trigger, tr.RoomID)
		if err != nil {
			return false, infra_pg_err.Map(err, nil)
		}
		if n, err := res.RowsAffected(); err != nil || n == 0 {
			return false, err
		}
		if _, err := tx.ExecContext(ctx, `UPDATE question_instances SET turn_advanced = TRUE WHERE id = $1`, tr.Trigger); err != nil {
			return false, err
		}
	}

	next := tr.Next
	res, err := tx.ExecContext(ctx, `
		UPDATE rooms
		SET status = $1, current_round = $2, current_player_index = $3,
		    phase = $4, phase_question_id = $5, version = $6
		WHERE id = $7 AND version = $8
	`, next.Status, next.Round, next.PlayerIndex, string(next.Phase.Kind), phaseQuestion(next.Phase), next.Version,
		tr.RoomID, tr.ExpectedVersion)
	if err != nil {
		return false, infra_pg_err.Map(err, nil)
	}
	if n, err := res.RowsAffected(); err != nil || n == 0 {
		return false, err
	}

	if also != nil {
		if err := also(tx); err != nil {
			return false, err
		}
	}
	if err := tx.Commit(); err != nil {
		return false, infra_pg_err.Map(err, nil)
	}
	return true, nil
}

func expectRow(res sql.Result, err error) error {
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return model.ErrNotFound
	}
	return nil
}
