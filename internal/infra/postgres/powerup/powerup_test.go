package infra_postgres_powerup

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/humanbelnik/flowquest/core/internal/model"
	"github.com/jmoiron/sqlx"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type PowerUpInfraUnitSuite struct {
	suite.Suite
}

type resources struct {
	mock   sqlmock.Sqlmock
	driver *Driver
	ctx    context.Context
}

func initResources(t provider.T) *resources {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	return &resources{
		mock:   mock,
		driver: New(sqlx.NewDb(db, "sqlmock")),
		ctx:    context.Background(),
	}
}

var inventoryHeader = []string{"id", "player_id", "used", "attempt_id", "obtained_at", "used_at",
	"p.id", "p.kind", "p.name", "p.description", "p.effect_value"}

func validGrant() model.PlayerPowerUp {
	return model.PlayerPowerUp{
		ID:         uuid.New(),
		PlayerID:   uuid.New(),
		PowerUp:    model.PowerUp{ID: uuid.New(), Kind: model.PowerUpShield},
		ObtainedAt: time.Now(),
	}
}

func (s *PowerUpInfraUnitSuite) TestGrantPowerUp(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		unused        int
		expectedError error
	}{
		{name: "Should grant below cap", unused: 2},
		{name: "Should refuse at cap", unused: 3, expectedError: model.ErrInventoryFull},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			pp := validGrant()
			r.mock.ExpectBegin()
			r.mock.ExpectQuery("SELECT id FROM players WHERE id = (.+) FOR UPDATE").
				WithArgs(pp.PlayerID).
				WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(pp.PlayerID.String()))
			r.mock.ExpectQuery("SELECT count").
				WithArgs(pp.PlayerID).
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(tc.unused))
			if tc.expectedError == nil {
				r.mock.ExpectExec("INSERT INTO player_powerups").
					WithArgs(pp.ID, pp.PlayerID, pp.PowerUp.ID, sqlmock.AnyArg()).
					WillReturnResult(sqlmock.NewResult(0, 1))
				r.mock.ExpectCommit()
			} else {
				r.mock.ExpectRollback()
			}

			err := r.driver.GrantPowerUp(r.ctx, pp, model.InventoryCap)

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, r.mock.ExpectationsWereMet())
		})
	}
}

func (s *PowerUpInfraUnitSuite) TestConsumePowerUps(t provider.T) {
	r := initResources(t)
	playerID, attemptID, ppID := uuid.New(), uuid.New(), uuid.New()
	at := time.Date(2026, 4, 2, 18, 0, 0, 0, time.UTC)
	r.mock.ExpectBegin()
	r.mock.ExpectExec("UPDATE player_powerups").
		WithArgs(at, attemptID, playerID, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	r.mock.ExpectQuery("FROM player_powerups pp").
		WithArgs(playerID, attemptID).
		WillReturnRows(sqlmock.NewRows(inventoryHeader).
			AddRow(ppID.String(), playerID.String(), true, attemptID.String(), at.Add(-time.Hour), at,
				uuid.NewString(), "double_points", "Double Points", "x2", 2))
	r.mock.ExpectCommit()

	spent, err := r.driver.ConsumePowerUps(r.ctx, playerID, attemptID, []uuid.UUID{ppID}, at)

	require.NoError(t, err)
	require.Len(t, spent, 1)
	assert.True(t, spent[0].Used)
	require.NotNil(t, spent[0].AttemptID)
	assert.Equal(t, attemptID, *spent[0].AttemptID)
	require.NotNil(t, spent[0].UsedAt)
	assert.Equal(t, model.Modifiers{DoublePoints: true}, model.ModifiersOf(spent))
	assert.NoError(t, r.mock.ExpectationsWereMet())
}

func (s *PowerUpInfraUnitSuite) TestInventoryMapsUnusedRows(t provider.T) {
	r := initResources(t)
	playerID := uuid.New()
	r.mock.ExpectQuery("FROM player_powerups pp").
		WithArgs(playerID).
		WillReturnRows(sqlmock.NewRows(inventoryHeader).
			AddRow(uuid.NewString(), playerID.String(), false, nil, time.Now(), nil,
				uuid.NewString(), "hint", "Hint", "strike two", 2))

	inv, err := r.driver.Inventory(r.ctx, playerID)

	require.NoError(t, err)
	require.Len(t, inv, 1)
	assert.Nil(t, inv[0].AttemptID)
	assert.Nil(t, inv[0].UsedAt)
	assert.Equal(t, model.PowerUpHint, inv[0].PowerUp.Kind)
}

func TestPowerUpInfraUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(PowerUpInfraUnitSuite))
}
