package usecase_powerup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/humanbelnik/flowquest/core/internal/model"
)

//go:generate mockery --name=PowerUpRepository --output=./mocks/repository --filename=repository.go
type PowerUpRepository interface {
	Catalog(ctx context.Context) ([]model.PowerUp, error)
	// All powerups the player ever obtained, oldest first.
	Inventory(ctx context.Context, playerID uuid.UUID) ([]model.PlayerPowerUp, error)
	// Inserts pp unless the player already holds limit unused powerups, in
	// which case model.ErrInventoryFull is returned. Check and insert are atomic.
	GrantPowerUp(ctx context.Context, pp model.PlayerPowerUp, limit int) error
	// Marks the still unused powerups among ids as spent on attemptID and
	// returns every powerup bound to attemptID.
	ConsumePowerUps(ctx context.Context, playerID, attemptID uuid.UUID, ids []uuid.UUID, at time.Time) ([]model.PlayerPowerUp, error)
}

type Usecase struct {
	repo   PowerUpRepository
	logger *slog.Logger
	now    func() time.Time
	pick   func(n int) int
}

func New(repo PowerUpRepository) *Usecase {
	return &Usecase{
		repo:   repo,
		logger: slog.Default(),
		now:    time.Now,
		pick:   rand.Intn,
	}
}

// Grant hands the player a random powerup from the catalog.
func (u *Usecase) Grant(ctx context.Context, playerID uuid.UUID) (model.PlayerPowerUp, error) {
	catalog, err := u.repo.Catalog(ctx)
	if err != nil {
		return model.PlayerPowerUp{}, errors.Join(model.ErrInternal, err)
	}
	if len(catalog) == 0 {
		return model.PlayerPowerUp{}, fmt.Errorf("%w: empty powerup catalog", model.ErrNotFound)
	}

	pp := model.PlayerPowerUp{
		ID:         uuid.New(),
		PlayerID:   playerID,
		PowerUp:    catalog[u.pick(len(catalog))],
		ObtainedAt: u.now(),
	}
	if err := u.repo.GrantPowerUp(ctx, pp, model.InventoryCap); err != nil {
		if errors.Is(err, model.ErrInventoryFull) {
			return model.PlayerPowerUp{}, model.ErrInventoryFull
		}
		return model.PlayerPowerUp{}, errors.Join(model.ErrInternal, err)
	}
	return pp, nil
}

func (u *Usecase) List(ctx context.Context, playerID uuid.UUID, includeUsed bool) ([]model.PlayerPowerUp, error) {
	all, err := u.repo.Inventory(ctx, playerID)
	if err != nil {
		return nil, errors.Join(model.ErrInternal, err)
	}
	if includeUsed {
		return all, nil
	}
	unused := make([]model.PlayerPowerUp, 0, len(all))
	for _, pp := range all {
		if !pp.Used {
			unused = append(unused, pp)
		}
	}
	return unused, nil
}

// Validate checks that every id belongs to the player and returns the
// modifiers the still unused ones would apply. Spent ids are ignored.
func (u *Usecase) Validate(ctx context.Context, playerID uuid.UUID, ids []uuid.UUID) (model.Modifiers, error) {
	if len(ids) == 0 {
		return model.Modifiers{}, nil
	}
	all, err := u.repo.Inventory(ctx, playerID)
	if err != nil {
		return model.Modifiers{}, errors.Join(model.ErrInternal, err)
	}

	owned := make(map[uuid.UUID]model.PlayerPowerUp, len(all))
	for _, pp := range all {
		owned[pp.ID] = pp
	}

	var pending []model.PlayerPowerUp
	for _, id := range ids {
		pp, ok := owned[id]
		if !ok {
			return model.Modifiers{}, fmt.Errorf("%w: powerup %s", model.ErrNotFound, id)
		}
		if pp.Used {
			u.logger.Debug("ignoring spent powerup", "player_id", playerID, "powerup_id", id)
			continue
		}
		pending = append(pending, pp)
	}
	return model.ModifiersOf(pending), nil
}

// Consume spends the given powerups on an attempt. Replays for the same
// attempt yield the same modifiers.
func (u *Usecase) Consume(ctx context.Context, playerID, attemptID uuid.UUID, ids []uuid.UUID) (model.Modifiers, error) {
	spent, err := u.repo.ConsumePowerUps(ctx, playerID, attemptID, ids, u.now())
	if err != nil {
		return model.Modifiers{}, errors.Join(model.ErrInternal, err)
	}
	return model.ModifiersOf(spent), nil
}

// Take spends a single powerup of the given kind outside of an answer.
func (u *Usecase) Take(ctx context.Context, playerID, powerupID uuid.UUID, kind model.PowerUpKind) (model.PlayerPowerUp, error) {
	all, err := u.repo.Inventory(ctx, playerID)
	if err != nil {
		return model.PlayerPowerUp{}, errors.Join(model.ErrInternal, err)
	}
	var target *model.PlayerPowerUp
	for i := range all {
		if all[i].ID == powerupID {
			target = &all[i]
			break
		}
	}
	if target == nil || target.Used {
		return model.PlayerPowerUp{}, fmt.Errorf("%w: powerup %s", model.ErrNotFound, powerupID)
	}
	if target.PowerUp.Kind != kind {
		return model.PlayerPowerUp{}, fmt.Errorf("%w: powerup %s is %s", model.ErrForbidden, powerupID, target.PowerUp.Kind)
	}

	// A standalone use is bound to a fresh id so it never counts toward an answer.
	spent, err := u.repo.ConsumePowerUps(ctx, playerID, uuid.New(), []uuid.UUID{powerupID}, u.now())
	if err != nil {
		return model.PlayerPowerUp{}, errors.Join(model.ErrInternal, err)
	}
	if len(spent) == 0 {
		return model.PlayerPowerUp{}, fmt.Errorf("%w: powerup %s", model.ErrNotFound, powerupID)
	}
	return spent[0], nil
}
