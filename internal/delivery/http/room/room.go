package http_room

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	http_common "github.com/humanbelnik/flowquest/core/internal/delivery/http/common"
	http_auth_middleware "github.com/humanbelnik/flowquest/core/internal/delivery/http/middleware/auth"
	"github.com/humanbelnik/flowquest/core/internal/model"
	usecase_game "github.com/humanbelnik/flowquest/core/internal/usecase/game"
	usecase_room "github.com/humanbelnik/flowquest/core/internal/usecase/room"
)

//go:generate mockery --name=Rooms --output=./mocks --filename=rooms.go
type Rooms interface {
	Create(ctx context.Context, principal model.Principal) (usecase_room.Lobby, error)
	Join(ctx context.Context, principal model.Principal, code string) (usecase_room.Lobby, error)
	Start(ctx context.Context, principal model.Principal, roomID uuid.UUID) (model.TurnState, error)
	Reset(ctx context.Context, principal model.Principal, roomID uuid.UUID) (model.TurnState, error)
	Leave(ctx context.Context, principal model.Principal, roomID uuid.UUID) (bool, error)
}

type Controller struct {
	usecase Rooms
	auth    gin.HandlerFunc
	logger  *slog.Logger
}

func New(usecase Rooms, auth gin.HandlerFunc) *Controller {
	return &Controller{
		usecase: usecase,
		auth:    auth,
		logger:  slog.Default(),
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	rooms := router.Group("/rooms", c.auth)
	{
		rooms.POST("", c.create)
		rooms.POST("/join", c.join)
		rooms.POST("/:room_id/start", c.start)
		rooms.POST("/:room_id/leave", c.leave)
		rooms.POST("/:room_id/reset", c.reset)
	}
}

// LobbyResponseDTO DTO комнаты и ее участников
type LobbyResponseDTO struct {
	Room    usecase_game.RoomView     `json:"room"`
	Player  usecase_game.PlayerView   `json:"player"`
	Players []usecase_game.PlayerView `json:"players"`
}

func newLobbyResponse(l usecase_room.Lobby) LobbyResponseDTO {
	return LobbyResponseDTO{
		Room:    usecase_game.NewRoomView(l.Room),
		Player:  usecase_game.NewPlayerView(l.Player),
		Players: usecase_game.NewPlayerViews(l.Players),
	}
}

// Create создает новую комнату
// @Summary Создание комнаты
// @Description Создает комнату в статусе waiting, создатель становится ведущим и первым игроком
// @Tags Rooms
// @Produce json
// @Success 201 {object} LobbyResponseDTO "Комната успешно создана"
// @Failure 401 {object} http_common.ErrorResponse "Не авторизован"
// @Failure 503 {object} http_common.ErrorResponse "Не удалось подобрать свободный код"
// @Failure 500 {object} http_common.ErrorResponse "Внутренняя ошибка сервера"
// @Security UserToken
// @Router /rooms [post]
func (c *Controller) create(ctx *gin.Context) {
	lobby, err := c.usecase.Create(ctx, http_auth_middleware.PrincipalFrom(ctx))
	if err != nil {
		http_common.WriteError(ctx, c.logger, err)
		return
	}
	ctx.JSON(http.StatusCreated, newLobbyResponse(lobby))
}

// JoinRequestDTO DTO для входа в комнату
type JoinRequestDTO struct {
	Code string `json:"code" binding:"required" example:"483920"`
}

// Join добавляет игрока в комнату
// @Summary Вход в комнату по коду
// @Description Добавляет вызывающего в ожидающую комнату. Повторный вход возвращает существующее участие
// @Tags Rooms
// @Accept json
// @Produce json
// @Param request body JoinRequestDTO true "Код комнаты"
// @Success 200 {object} LobbyResponseDTO
// @Failure 403 {object} http_common.ErrorResponse "Игра уже началась"
// @Failure 404 {object} http_common.ErrorResponse "Комната не найдена"
// @Security UserToken
// @Router /rooms/join [post]
func (c *Controller) join(ctx *gin.Context) {
	var req JoinRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		http_common.BadRequest(ctx, "invalid request format")
		return
	}
	lobby, err := c.usecase.Join(ctx, http_auth_middleware.PrincipalFrom(ctx), req.Code)
	if err != nil {
		http_common.WriteError(ctx, c.logger, err)
		return
	}
	ctx.JSON(http.StatusOK, newLobbyResponse(lobby))
}

// Start запускает игру
// @Summary Старт игры
// @Description Только ведущий. Переводит комнату в in_progress, раунд 1, ход первого игрока
// @Tags Rooms
// @Produce json
// @Param room_id path string true "ID комнаты"
// @Success 200 {object} model.TurnState
// @Failure 403 {object} http_common.ErrorResponse "Не ведущий"
// @Failure 409 {object} http_common.ErrorResponse "Игра уже идет"
// @Security UserToken
// @Router /rooms/{room_id}/start [post]
func (c *Controller) start(ctx *gin.Context) {
	c.turn(ctx, c.usecase.Start)
}

// Reset сбрасывает игру
// @Summary Сброс игры
// @Description Только ведущий. Комната возвращается в waiting, очки и позиции обнуляются
// @Tags Rooms
// @Produce json
// @Param room_id path string true "ID комнаты"
// @Success 200 {object} model.TurnState
// @Failure 403 {object} http_common.ErrorResponse "Не ведущий"
// @Security UserToken
// @Router /rooms/{room_id}/reset [post]
func (c *Controller) reset(ctx *gin.Context) {
	c.turn(ctx, c.usecase.Reset)
}

func (c *Controller) turn(ctx *gin.Context, op func(context.Context, model.Principal, uuid.UUID) (model.TurnState, error)) {
	roomID, ok := roomParam(ctx)
	if !ok {
		return
	}
	state, err := op(ctx, http_auth_middleware.PrincipalFrom(ctx), roomID)
	if err != nil {
		http_common.WriteError(ctx, c.logger, err)
		return
	}
	ctx.JSON(http.StatusOK, state)
}

// LeaveResponseDTO DTO ответа выхода
type LeaveResponseDTO struct {
	Closed bool `json:"closed"`
}

// Leave удаляет игрока из комнаты
// @Summary Выход из комнаты
// @Description Удаляет участие вызывающего. Когда выходит последний игрок, комната закрывается
// @Tags Rooms
// @Produce json
// @Param room_id path string true "ID комнаты"
// @Success 200 {object} LeaveResponseDTO
// @Failure 404 {object} http_common.ErrorResponse "Не участник комнаты"
// @Security UserToken
// @Router /rooms/{room_id}/leave [post]
func (c *Controller) leave(ctx *gin.Context) {
	roomID, ok := roomParam(ctx)
	if !ok {
		return
	}
	closed, err := c.usecase.Leave(ctx, http_auth_middleware.PrincipalFrom(ctx), roomID)
	if err != nil {
		http_common.WriteError(ctx, c.logger, err)
		return
	}
	ctx.JSON(http.StatusOK, LeaveResponseDTO{Closed: closed})
}

func roomParam(ctx *gin.Context) (uuid.UUID, bool) {
	roomID, err := uuid.Parse(ctx.Param("room_id"))
	if err != nil {
		http_common.BadRequest(ctx, "invalid room_id")
		return uuid.Nil, false
	}
	return roomID, true
}
