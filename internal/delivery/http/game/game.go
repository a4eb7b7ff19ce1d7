package http_game

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	http_common "github.com/humanbelnik/flowquest/core/internal/delivery/http/common"
	http_auth_middleware "github.com/humanbelnik/flowquest/core/internal/delivery/http/middleware/auth"
	"github.com/humanbelnik/flowquest/core/internal/model"
	usecase_game "github.com/humanbelnik/flowquest/core/internal/usecase/game"
)

// Scanned tile payloads are a few dozen bytes.
const maxTileBody = 4 << 10

//go:generate mockery --name=Game --output=./mocks --filename=game.go
type Game interface {
	State(ctx context.Context, principal model.Principal, roomID uuid.UUID) (usecase_game.GameState, error)
	Advance(ctx context.Context, principal model.Principal, roomID uuid.UUID, expectedVersion int64) (model.TurnResult, error)
	Move(ctx context.Context, principal model.Principal, playerID uuid.UUID, tile model.Tile) (usecase_game.MoveResult, error)
	SubmitAnswer(ctx context.Context, principal model.Principal, req usecase_game.AnswerRequest) (usecase_game.AnswerResult, error)
	UseHint(ctx context.Context, principal model.Principal, playerID, powerupID uuid.UUID) (usecase_game.HintResult, error)
	Inventory(ctx context.Context, principal model.Principal, playerID uuid.UUID) ([]model.PlayerPowerUp, error)
}

type Controller struct {
	usecase Game
	auth    gin.HandlerFunc
	limit   gin.HandlerFunc
	logger  *slog.Logger
}

type ControllerOption func(*Controller)

// WithRateLimit throttles moves and answers.
func WithRateLimit(limit gin.HandlerFunc) ControllerOption {
	return func(c *Controller) {
		c.limit = limit
	}
}

func New(usecase Game, auth gin.HandlerFunc, opts ...ControllerOption) *Controller {
	c := &Controller{
		usecase: usecase,
		auth:    auth,
		limit:   func(ctx *gin.Context) { ctx.Next() },
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	rooms := router.Group("/rooms/:room_id", c.auth)
	rooms.GET("/state", c.state)
	rooms.POST("/turn/advance", c.advance)

	players := router.Group("/players/:player_id", c.auth)
	players.POST("/moves", c.limit, c.move)
	players.GET("/powerups", c.inventory)
	players.POST("/powerups/:powerup_id/hint", c.hint)

	router.POST("/questions/:question_id/answers", c.auth, c.limit, c.answer)
}

// State возвращает состояние игры
// @Summary Состояние комнаты
// @Description Комната, игроки по очкам, текущий игрок и открытый вопрос. Правильный ответ скрыт, пока принимаются ответы
// @Tags Game
// @Produce json
// @Param room_id path string true "ID комнаты"
// @Success 200 {object} usecase_game.GameState
// @Failure 403 {object} http_common.ErrorResponse "Не участник комнаты"
// @Failure 404 {object} http_common.ErrorResponse "Комната не найдена"
// @Security UserToken
// @Router /rooms/{room_id}/state [get]
func (c *Controller) state(ctx *gin.Context) {
	roomID, ok := uuidParam(ctx, "room_id")
	if !ok {
		return
	}
	state, err := c.usecase.State(ctx, http_auth_middleware.PrincipalFrom(ctx), roomID)
	if err != nil {
		http_common.WriteError(ctx, c.logger, err)
		return
	}
	ctx.JSON(http.StatusOK, state)
}

// AdvanceRequestDTO DTO ручного перехода хода
type AdvanceRequestDTO struct {
	ExpectedVersion *int64 `json:"expected_version" binding:"required" example:"12"`
}

// Advance передает ход вручную
// @Summary Ручной переход хода
// @Description Только ведущий. Завершает зависший ход, если версия комнаты совпадает с ожидаемой
// @Tags Game
// @Accept json
// @Produce json
// @Param room_id path string true "ID комнаты"
// @Param request body AdvanceRequestDTO true "Ожидаемая версия"
// @Success 200 {object} model.TurnResult
// @Failure 403 {object} http_common.ErrorResponse "Не ведущий"
// @Failure 409 {object} http_common.ErrorResponse "Версия устарела"
// @Security UserToken
// @Router /rooms/{room_id}/turn/advance [post]
func (c *Controller) advance(ctx *gin.Context) {
	roomID, ok := uuidParam(ctx, "room_id")
	if !ok {
		return
	}
	var req AdvanceRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		http_common.BadRequest(ctx, "expected_version is required")
		return
	}
	res, err := c.usecase.Advance(ctx, http_auth_middleware.PrincipalFrom(ctx), roomID, *req.ExpectedVersion)
	if err != nil {
		http_common.WriteError(ctx, c.logger, err)
		return
	}
	ctx.JSON(http.StatusOK, res)
}

// Move обрабатывает отсканированную клетку
// @Summary Ход игрока
// @Description Тело запроса это JSON из QR-кода клетки. Клетка вопроса открывает вопрос для всей комнаты, клетка усиления выдает усиление и передает ход
// @Tags Game
// @Accept json
// @Produce json
// @Param player_id path string true "ID игрока"
// @Param request body model.Tile true "Данные клетки"
// @Success 200 {object} usecase_game.MoveResult
// @Failure 409 {object} http_common.ErrorResponse "Не ваш ход"
// @Failure 422 {object} http_common.ErrorResponse "Недопустимый ход или клетка"
// @Failure 429 {object} http_common.ErrorResponse "Слишком много запросов"
// @Security UserToken
// @Router /players/{player_id}/moves [post]
func (c *Controller) move(ctx *gin.Context) {
	playerID, ok := uuidParam(ctx, "player_id")
	if !ok {
		return
	}
	raw, err := io.ReadAll(io.LimitReader(ctx.Request.Body, maxTileBody))
	if err != nil {
		http_common.BadRequest(ctx, "unreadable body")
		return
	}
	tile, err := model.ParseTile(raw)
	if err != nil {
		http_common.WriteError(ctx, c.logger, err)
		return
	}

	res, err := c.usecase.Move(ctx, http_auth_middleware.PrincipalFrom(ctx), playerID, tile)
	if err != nil {
		http_common.WriteError(ctx, c.logger, err)
		return
	}
	ctx.JSON(http.StatusOK, res)
}

// AnswerRequestDTO DTO ответа на вопрос
type AnswerRequestDTO struct {
	PlayerID   uuid.UUID   `json:"player_id" binding:"required" swaggertype:"string"`
	Answer     string      `json:"answer" example:"Paris"`
	TimeTaken  float64     `json:"time_taken" example:"7.5"`
	PowerUpIDs []uuid.UUID `json:"powerup_ids" swaggertype:"array,string"`
}

// Answer принимает ответ игрока
// @Summary Ответ на вопрос
// @Description Записывает ответ один раз. Ответ, завершающий вопрос, передает ход
// @Tags Game
// @Accept json
// @Produce json
// @Param question_id path string true "ID вопроса"
// @Param request body AnswerRequestDTO true "Ответ"
// @Success 200 {object} usecase_game.AnswerResult
// @Failure 409 {object} http_common.ErrorResponse "Вопрос закрыт или ответ уже принят"
// @Failure 429 {object} http_common.ErrorResponse "Слишком много запросов"
// @Security UserToken
// @Router /questions/{question_id}/answers [post]
func (c *Controller) answer(ctx *gin.Context) {
	questionID, ok := uuidParam(ctx, "question_id")
	if !ok {
		return
	}
	var req AnswerRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		http_common.BadRequest(ctx, "invalid request format")
		return
	}

	res, err := c.usecase.SubmitAnswer(ctx, http_auth_middleware.PrincipalFrom(ctx), usecase_game.AnswerRequest{
		PlayerID:   req.PlayerID,
		QuestionID: questionID,
		Answer:     req.Answer,
		TimeTaken:  req.TimeTaken,
		PowerUpIDs: req.PowerUpIDs,
	})
	if err != nil {
		http_common.WriteError(ctx, c.logger, err)
		return
	}
	ctx.JSON(http.StatusOK, res)
}

// Inventory возвращает усиления игрока
// @Summary Инвентарь усилений
// @Tags Powerups
// @Produce json
// @Param player_id path string true "ID игрока"
// @Success 200 {array} model.PlayerPowerUp
// @Failure 403 {object} http_common.ErrorResponse "Чужой игрок"
// @Security UserToken
// @Router /players/{player_id}/powerups [get]
func (c *Controller) inventory(ctx *gin.Context) {
	playerID, ok := uuidParam(ctx, "player_id")
	if !ok {
		return
	}
	items, err := c.usecase.Inventory(ctx, http_auth_middleware.PrincipalFrom(ctx), playerID)
	if err != nil {
		http_common.WriteError(ctx, c.logger, err)
		return
	}
	if items == nil {
		items = []model.PlayerPowerUp{}
	}
	ctx.JSON(http.StatusOK, items)
}

// Hint тратит подсказку
// @Summary Подсказка
// @Description Тратит усиление hint на открытый вопрос и возвращает варианты без части неверных
// @Tags Powerups
// @Produce json
// @Param player_id path string true "ID игрока"
// @Param powerup_id path string true "ID усиления"
// @Success 200 {object} usecase_game.HintResult
// @Failure 409 {object} http_common.ErrorResponse "Нет открытого вопроса"
// @Security UserToken
// @Router /players/{player_id}/powerups/{powerup_id}/hint [post]
func (c *Controller) hint(ctx *gin.Context) {
	playerID, ok := uuidParam(ctx, "player_id")
	if !ok {
		return
	}
	powerupID, ok := uuidParam(ctx, "powerup_id")
	if !ok {
		return
	}
	res, err := c.usecase.UseHint(ctx, http_auth_middleware.PrincipalFrom(ctx), playerID, powerupID)
	if err != nil {
		http_common.WriteError(ctx, c.logger, err)
		return
	}
	ctx.JSON(http.StatusOK, res)
}

func uuidParam(ctx *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		http_common.BadRequest(ctx, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}
