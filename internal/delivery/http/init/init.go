package http_init

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/humanbelnik/flowquest/core/internal/config"
)

const (
	apiPrefix       = "/api/v1"
	shutdownTimeout = 5 * time.Second
)

type Controller interface {
	RegisterRoutes(router *gin.RouterGroup)
}

type ControllerPool struct {
	pool   []Controller
	rg     *gin.RouterGroup
	engine *gin.Engine
	cfg    config.HTTPServer
	logger *slog.Logger
}

// NewControllerPool applies mw to every route, the /api/v1 group included.
func NewControllerPool(cfg config.HTTPServer, mw ...gin.HandlerFunc) *ControllerPool {
	logger := slog.Default()

	engine := gin.New()
	engine.Use(gin.Recovery(), accessLog(logger), cors.New(corsConfig(cfg.CORSOrigins)))
	engine.Use(mw...)

	return &ControllerPool{
		pool:   make([]Controller, 0, 10),
		rg:     engine.Group(apiPrefix),
		engine: engine,
		cfg:    cfg,
		logger: logger,
	}
}

func (pool *ControllerPool) Add(c Controller) {
	pool.pool = append(pool.pool, c)
}

func (pool *ControllerPool) Register() {
	for _, c := range pool.pool {
		c.RegisterRoutes(pool.rg)
	}
}

// Engine exposes the router for routes outside /api/v1 such as /metrics.
func (pool *ControllerPool) Engine() *gin.Engine {
	return pool.engine
}

// RunAll serves until ctx is cancelled, then drains in-flight requests.
func (pool *ControllerPool) RunAll(ctx context.Context) error {
	srv := &http.Server{
		Addr:              net.JoinHostPort(pool.cfg.Host, pool.cfg.Port),
		Handler:           pool.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		pool.logger.Info("http server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	pool.logger.Info("http server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "X-user-token"},
		ExposeHeaders: []string{"X-user-token"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		c.AllowAllOrigins = true
		return c
	}
	c.AllowOrigins = origins
	return c
}

func accessLog(logger *slog.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		logger.Debug("http request",
			"method", ctx.Request.Method,
			"path", ctx.Request.URL.Path,
			"status", ctx.Writer.Status(),
			"duration", time.Since(start),
			"client_ip", ctx.ClientIP())
	}
}
