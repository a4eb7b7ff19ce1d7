package http_auth

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	http_common "github.com/humanbelnik/flowquest/core/internal/delivery/http/common"
	http_auth_middleware "github.com/humanbelnik/flowquest/core/internal/delivery/http/middleware/auth"
	"github.com/humanbelnik/flowquest/core/internal/model"
)

//go:generate mockery --name=GuestService --output=./mocks --filename=guest.go
type GuestService interface {
	Guest(name string) (string, model.Principal, error)
	Revoke(token string) error
}

type Controller struct {
	service GuestService
	logger  *slog.Logger
}

func New(
	service GuestService,
) *Controller {
	return &Controller{
		service: service,
		logger:  slog.Default(),
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	auth.POST("/guest", c.guest)
	auth.DELETE("/session", c.logout)
}

// GuestRequestDTO DTO для входа гостем
type GuestRequestDTO struct {
	Name string `json:"name" example:"Ada"`
}

// GuestResponseDTO DTO для ответа входа гостем
type GuestResponseDTO struct {
	UserID uuid.UUID `json:"user_id" swaggertype:"string"`
	Name   string    `json:"name"`
	Token  string    `json:"token"`
}

// Guest выдает гостевой токен
// @Summary Вход гостем
// @Description Создает гостевого пользователя и возвращает токен в заголовке X-user-token
// @Tags Auth operations
// @Accept json
// @Produce json
// @Param request body GuestRequestDTO false "Отображаемое имя"
// @Success 201 {object} GuestResponseDTO
// @Header 201 {string} X-user-token "Токен пользователя"
// @Failure 500 {object} http_common.ErrorResponse "Внутренняя ошибка сервера"
// @Router /auth/guest [post]
func (c *Controller) guest(ctx *gin.Context) {
	var req GuestRequestDTO
	if ctx.Request.ContentLength != 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			http_common.BadRequest(ctx, "invalid request format")
			return
		}
	}

	token, principal, err := c.service.Guest(req.Name)
	if err != nil {
		http_common.WriteError(ctx, c.logger, err)
		return
	}

	c.logger.Info("guest issued", "user_id", principal.UserID)
	ctx.Header(http_auth_middleware.Header, token)
	ctx.JSON(http.StatusCreated, GuestResponseDTO{
		UserID: principal.UserID,
		Name:   principal.Name,
		Token:  token,
	})
}

// Logout отзывает токен
// @Summary Выход
// @Description Отзывает сессию, привязанную к токену
// @Tags Auth operations
// @Success 204
// @Failure 401 {object} http_common.ErrorResponse "Не авторизован"
// @Security UserToken
// @Router /auth/session [delete]
func (c *Controller) logout(ctx *gin.Context) {
	token := ctx.GetHeader(http_auth_middleware.Header)
	if token == "" {
		http_common.WriteError(ctx, c.logger, model.ErrUnauthorized)
		return
	}
	if err := c.service.Revoke(token); err != nil {
		http_common.WriteError(ctx, c.logger, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
