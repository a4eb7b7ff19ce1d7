package infra_postgres_powerup

import (
	"context"
	"database/sql"
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

type powerUpDTO struct {
	ID          uuid.UUID `db:"id"`
	Kind        string    `db:"kind"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	EffectValue int       `db:"effect_value"`
}

func (p powerUpDTO) model() model.PowerUp {
	return model.PowerUp{
		ID:          p.ID,
		Kind:        p.Kind,
		Name:        p.Name,
		Description: p.Description,
		EffectValue: p.EffectValue,
	}
}

type playerPowerUpDTO struct {
	ID         uuid.UUID     `db:"id"`
	PlayerID   uuid.UUID     `db:"player_id"`
	Used       bool          `db:"used"`
	AttemptID  uuid.NullUUID `db:"attempt_id"`
	ObtainedAt time.Time     `db:"obtained_at"`
	UsedAt     sql.NullTime  `db:"used_at"`
	PowerUp    powerUpDTO    `db:"p"`
}

func (pp playerPowerUpDTO) model() model.PlayerPowerUp {
	out := model.PlayerPowerUp{
		ID:         pp.ID,
		PlayerID:   pp.PlayerID,
		PowerUp:    pp.PowerUp.model(),
		Used:       pp.Used,
		ObtainedAt: pp.ObtainedAt,
	}
	if pp.AttemptID.Valid {
		id := pp.AttemptID.UUID
		out.AttemptID = &id
	}
	if pp.UsedAt.Valid {
		at := pp.UsedAt.Time
		out.UsedAt = &at
	}
	return out
}

const inventorySelect = `
	SELECT pp.id, pp.player_id, pp.used, pp.attempt_id, pp.obtained_at, pp.used_at,
	       p.id AS "p.id", p.kind AS "p.kind", p.name AS "p.name",
	       p.description AS "p.description", p.effect_value AS "p.effect_value"
	FROM player_powerups pp
	JOIN powerups p ON p.id = pp.powerup_id
`

func (d *Driver) Catalog(ctx context.Context) ([]model.PowerUp, error) {
	var dtos []powerUpDTO
	query := `SELECT id, kind, name, description, effect_value FROM powerups ORDER BY kind`

	if err := d.db.SelectContext(ctx, &dtos, query); err != nil {
		return nil, err
	}
	out := make([]model.PowerUp, 0, len(dtos))
	for _, dto := range dtos {
		out = append(out, dto.model())
	}
	return out, nil
}

func (d *Driver) Inventory(ctx context.Context, playerID uuid.UUID) ([]model.PlayerPowerUp, error) {
	return d.inventory(ctx, d.db, `WHERE pp.player_id = $1`, playerID)
}

func (d *Driver) inventory(ctx context.Context, q sqlx.QueryerContext, where string, args ...any) ([]model.PlayerPowerUp, error) {
	var dtos []playerPowerUpDTO
	query := inventorySelect + where + ` ORDER BY pp.obtained_at, pp.id`

	if err := sqlx.SelectContext(ctx, q, &dtos, query, args...); err != nil {
		return nil, err
	}
	out := make([]model.PlayerPowerUp, 0, len(dtos))
	for _, dto := range dtos {
		out = append(out, dto.model())
	}
	return out, nil
}

// GrantPowerUp locks the player row so concurrent grants see each other.
func (d *Driver) GrantPowerUp(ctx context.Context, pp model.PlayerPowerUp, limit int) error {
	tx, err := d.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var playerID uuid.UUID
	if err := tx.GetContext(ctx, &playerID, `SELECT id FROM players WHERE id = $1 FOR UPDATE`, pp.PlayerID); err != nil {
		return infra_pg_err.Map(err, nil)
	}

	var unused int
	query := `SELECT count(*) FROM player_powerups WHERE player_id = $1 AND NOT used`
	if err := tx.GetContext(ctx, &unused, query, pp.PlayerID); err != nil {
		return err
	}
	if unused >= limit {
		return model.ErrInventoryFull
	}

	query = `
		INSERT INTO player_powerups (id, player_id, powerup_id, obtained_at)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := tx.ExecContext(ctx, query, pp.ID, pp.PlayerID, pp.PowerUp.ID, pp.ObtainedAt); err != nil {
		return infra_pg_err.Map(err, nil)
	}
	return tx.Commit()
}

func (d *Driver) ConsumePowerUps(ctx context.Context, playerID, attemptID uuid.UUID, ids []uuid.UUID, at time.Time) ([]model.PlayerPowerUp, error) {
	tx, err := d.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if len(ids) > 0 {
		query := `
			UPDATE player_powerups
			SET used = TRUE, used_at = $1, attempt_id = $2
			WHERE player_id = $3 AND id = ANY($4::uuid[]) AND NOT used
		`
		if _, err := tx.ExecContext(ctx, query, at, attemptID, playerID, pq.Array(idStrings(ids))); err != nil {
			return nil, infra_pg_err.Map(err, nil)
		}
	}

	spent, err := d.inventory(ctx, tx, `WHERE pp.player_id = $1 AND pp.attempt_id = $2`, playerID, attemptID)
	if err != nil {
		return nil, err
	}
	return spent, tx.Commit()
}

func idStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
