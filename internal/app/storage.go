package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-redis/redis"
	"github.com/humanbelnik/flowquest/core/internal/config"
	infra_memory "github.com/humanbelnik/flowquest/core/internal/infra/memory"
	infra_postgres_attempt "github.com/humanbelnik/flowquest/core/internal/infra/postgres/attempt"
	infra_pg_init "github.com/humanbelnik/flowquest/core/internal/infra/postgres/init"
	infra_postgres_powerup "github.com/humanbelnik/flowquest/core/internal/infra/postgres/powerup"
	infra_postgres_question "github.com/humanbelnik/flowquest/core/internal/infra/postgres/question"
	infra_postgres_room "github.com/humanbelnik/flowquest/core/internal/infra/postgres/room"
	infra_redis_session "github.com/humanbelnik/flowquest/core/internal/infra/redis/session"
	service_simple_auth "github.com/humanbelnik/flowquest/core/internal/service/auth/simple"
	usecase_game "github.com/humanbelnik/flowquest/core/internal/usecase/game"
	usecase_ledger "github.com/humanbelnik/flowquest/core/internal/usecase/ledger"
	usecase_powerup "github.com/humanbelnik/flowquest/core/internal/usecase/powerup"
	usecase_room "github.com/humanbelnik/flowquest/core/internal/usecase/room"
	usecase_turn "github.com/humanbelnik/flowquest/core/internal/usecase/turn"
	"github.com/humanbelnik/flowquest/core/migrations"
)

type storage struct {
	rooms     usecase_room.RoomRepository
	game      usecase_game.GameRepository
	turns     usecase_turn.TurnRepository
	questions usecase_game.QuestionRepository
	attempts  usecase_ledger.AttemptRepository
	powerups  usecase_powerup.PowerUpRepository
	sessions  service_simple_auth.SessionCache
	close     func()
}

// The memory driver keeps sessions in process too. Postgres deployments
// run several instances, so their sessions live in redis.
func newStorage(ctx context.Context, cfg *config.Config, redisConn func() *redis.Client) (storage, error) {
	if cfg.Storage.Driver == config.DriverMemory {
		slog.Info("using in-memory storage")
		store := infra_memory.New()
		return storage{
			rooms:     store,
			game:      store,
			turns:     store,
			questions: store,
			attempts:  store,
			powerups:  store,
			sessions:  store,
			close:     func() {},
		}, nil
	}

	db := infra_pg_init.MustEstablishConn(cfg.Postgres)
	if err := infra_pg_init.Migrate(ctx, db, migrations.FS); err != nil {
		db.Close()
		return storage{}, fmt.Errorf("migrate: %w", err)
	}

	room := infra_postgres_room.New(db)
	client := redisConn()
	return storage{
		rooms:     room,
		game:      room,
		turns:     room,
		questions: infra_postgres_question.New(db),
		attempts:  infra_postgres_attempt.New(db),
		powerups:  infra_postgres_powerup.New(db),
		sessions:  infra_redis_session.New(client, "session"),
		close: func() {
			db.Close()
			client.Close()
		},
	}, nil
}
