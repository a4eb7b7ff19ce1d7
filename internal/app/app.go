package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/go-redis/redis"
	"github.com/humanbelnik/flowquest/core/internal/config"
	http_auth "github.com/humanbelnik/flowquest/core/internal/delivery/http/auth"
	http_game "github.com/humanbelnik/flowquest/core/internal/delivery/http/game"
	http_init "github.com/humanbelnik/flowquest/core/internal/delivery/http/init"
	http_auth_middleware "github.com/humanbelnik/flowquest/core/internal/delivery/http/middleware/auth"
	http_ratelimit_middleware "github.com/humanbelnik/flowquest/core/internal/delivery/http/middleware/ratelimit"
	http_room "github.com/humanbelnik/flowquest/core/internal/delivery/http/room"
	http_swagger "github.com/humanbelnik/flowquest/core/internal/delivery/http/swagger"
	http_tiles "github.com/humanbelnik/flowquest/core/internal/delivery/http/tiles"
	ws_room "github.com/humanbelnik/flowquest/core/internal/delivery/ws/room"
	infra_redis_init "github.com/humanbelnik/flowquest/core/internal/infra/redis/init"
	infra_redis_pubsub "github.com/humanbelnik/flowquest/core/internal/infra/redis/pubsub"
	"github.com/humanbelnik/flowquest/core/internal/logger"
	"github.com/humanbelnik/flowquest/core/internal/metrics"
	service_simple_auth "github.com/humanbelnik/flowquest/core/internal/service/auth/simple"
	usecase_game "github.com/humanbelnik/flowquest/core/internal/usecase/game"
	usecase_ledger "github.com/humanbelnik/flowquest/core/internal/usecase/ledger"
	usecase_powerup "github.com/humanbelnik/flowquest/core/internal/usecase/powerup"
	usecase_room "github.com/humanbelnik/flowquest/core/internal/usecase/room"
	usecase_turn "github.com/humanbelnik/flowquest/core/internal/usecase/turn"
)

type App struct {
	pool    *http_init.ControllerPool
	hub     *ws_room.Hub
	fanout  *infra_redis_pubsub.Fanout
	limiter *http_ratelimit_middleware.Limiter
	metrics *metrics.Metrics
	close   func()
	logger  *slog.Logger
}

func Go(cfg *config.Config) {
	logger.Setup(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := New(ctx, cfg)
	if err != nil {
		slog.Error("failed to build app", "err", err)
		os.Exit(1)
	}
	err = a.Run(ctx)
	a.Close()
	if err != nil {
		slog.Error("app stopped", "err", err)
		os.Exit(1)
	}
}

func New(ctx context.Context, cfg *config.Config) (*App, error) {
	a := &App{
		hub:     ws_room.New(slog.Default()),
		limiter: http_ratelimit_middleware.New(cfg.RateLimit),
		metrics: metrics.New(),
		logger:  slog.Default(),
	}

	var redisOnce sync.Once
	var redisClient *redis.Client
	redisConn := func() *redis.Client {
		redisOnce.Do(func() {
			redisClient = infra_redis_init.MustEstablishConn(cfg.Redis)
		})
		return redisClient
	}

	st, err := newStorage(ctx, cfg, redisConn)
	if err != nil {
		return nil, err
	}

	var notifier usecase_game.Notifier = a.hub
	if cfg.Notify.Fanout == config.FanoutRedis {
		a.fanout = infra_redis_pubsub.New(redisConn(), cfg.Notify.Channel)
		notifier = a.fanout
	}

	turns := usecase_turn.New(st.turns, usecase_turn.WithMetrics(a.metrics))
	ledger := usecase_ledger.New(st.attempts,
		usecase_ledger.WithRetries(cfg.Game.LedgerRetries, cfg.Game.LedgerBackoff),
		usecase_ledger.WithGrace(cfg.Game.TimeoutGrace),
		usecase_ledger.WithMetrics(a.metrics),
	)
	roomUC := usecase_room.New(st.rooms, turns, notifier)
	gameUC := usecase_game.New(
		st.game,
		st.questions,
		ledger,
		usecase_powerup.New(st.powerups),
		turns,
		notifier,
		usecase_game.WithMetrics(a.metrics),
	)

	authService := service_simple_auth.New(cfg.Auth.Secret, st.sessions, cfg.Auth.SessionTTL)
	auth := http_auth_middleware.New(authService).AuthRequired()

	a.pool = http_init.NewControllerPool(cfg.HTTP, a.metrics.Middleware())
	a.pool.Engine().GET("/metrics", a.metrics.Handler())
	a.pool.Add(http_swagger.New())
	a.pool.Add(http_auth.New(authService))
	a.pool.Add(http_room.New(roomUC, auth))
	a.pool.Add(http_game.New(gameUC, auth, http_game.WithRateLimit(a.limiter.Middleware())))
	a.pool.Add(http_tiles.New())
	a.pool.Add(ws_room.NewController(a.hub, roomUC, auth))
	a.pool.Register()

	a.close = st.close
	return a, nil
}

func (a *App) Handler() http.Handler {
	return a.pool.Engine()
}

// Run serves HTTP and the background loops until ctx is done.
func (a *App) Run(ctx context.Context) error {
	go a.limiter.Run(ctx)

	if a.fanout != nil {
		go func() {
			if err := a.fanout.Run(ctx, a.hub.Broadcast); err != nil && !errors.Is(err, context.Canceled) {
				a.logger.Error("event fan-out stopped", "err", err)
			}
		}()
	}

	if err := a.pool.RunAll(ctx); err != nil {
		return fmt.Errorf("http: %w", err)
	}
	return nil
}

func (a *App) Close() {
	if a.close != nil {
		a.close()
	}
}

