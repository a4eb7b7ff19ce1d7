package ws_room

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	http_common "github.com/humanbelnik/flowquest/core/internal/delivery/http/common"
	http_auth_middleware "github.com/humanbelnik/flowquest/core/internal/delivery/http/middleware/auth"
	"github.com/humanbelnik/flowquest/core/internal/model"
)

type Members interface {
	Membership(ctx context.Context, principal model.Principal, roomID uuid.UUID) (model.Player, error)
}

type Controller struct {
	hub      *Hub
	members  Members
	auth     gin.HandlerFunc
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

func NewController(hub *Hub, members Members, auth gin.HandlerFunc) *Controller {
	return &Controller{
		hub:     hub,
		members: members,
		auth:    auth,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Origins are enforced by the CORS policy of the HTTP API.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		logger: slog.Default(),
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/ws/rooms/:room_id", c.auth, c.serve)
}

// Serve подписывает участника на события комнаты
// @Summary Подписка на события комнаты
// @Description Открывает websocket, по которому приходят события игры (LOBBY_UPDATE, QUESTION_ASKED, TURN_ADVANCED, ...)
// @Tags Realtime
// @Param room_id path string true "ID комнаты"
// @Param token query string false "Токен, если заголовок X-user-token недоступен"
// @Success 101
// @Failure 403 {object} http_common.ErrorResponse "Не участник комнаты"
// @Failure 404 {object} http_common.ErrorResponse "Комната не найдена"
// @Security UserToken
// @Router /ws/rooms/{room_id} [get]
func (c *Controller) serve(ctx *gin.Context) {
	roomID, err := uuid.Parse(ctx.Param("room_id"))
	if err != nil {
		http_common.BadRequest(ctx, "invalid room_id")
		return
	}
	principal := http_auth_middleware.PrincipalFrom(ctx)
	if _, err := c.members.Membership(ctx, principal, roomID); err != nil {
		http_common.WriteError(ctx, c.logger, err)
		return
	}

	conn, err := c.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		c.logger.Warn("websocket upgrade failed", "room_id", roomID, "err", err)
		return
	}

	client := NewClient(conn, roomID, principal.UserID)
	c.hub.RegisterClient(client)
	go c.hub.StartClientWriting(client)
	go c.hub.StartClientReading(client)
}
