package http_tiles

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	http_common "github.com/humanbelnik/flowquest/core/internal/delivery/http/common"
	"github.com/humanbelnik/flowquest/core/internal/model"
	"github.com/humanbelnik/flowquest/core/internal/service/tile_printer"
)

const maxSize = 1024

type Controller struct {
	logger *slog.Logger
}

func New() *Controller {
	return &Controller{
		logger: slog.Default(),
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	tiles := router.Group("/tiles")
	tiles.GET("", c.board)
	tiles.GET("/:position/qr", c.qr)
}

// Board возвращает раскладку доски
// @Summary Раскладка доски
// @Description Тип клетки на каждой из 36 позиций
// @Tags Tiles
// @Produce json
// @Success 200 {array} model.Tile
// @Router /tiles [get]
func (c *Controller) board(ctx *gin.Context) {
	tiles := make([]model.Tile, 0, model.BoardSize)
	for pos := 1; pos <= model.BoardSize; pos++ {
		tiles = append(tiles, model.BoardTile(pos))
	}
	ctx.JSON(http.StatusOK, tiles)
}

// QR возвращает QR-код клетки
// @Summary QR-код клетки
// @Description PNG с JSON клетки для печати
// @Tags Tiles
// @Produce png
// @Param position path int true "Позиция 1-36"
// @Param size query int false "Размер в пикселях"
// @Success 200 {file} binary
// @Failure 422 {object} http_common.ErrorResponse "Нет такой клетки"
// @Router /tiles/{position}/qr [get]
func (c *Controller) qr(ctx *gin.Context) {
	pos, err := strconv.Atoi(ctx.Param("position"))
	if err != nil || pos < 1 || pos > model.BoardSize {
		http_common.WriteError(ctx, c.logger, fmt.Errorf("%w: position %q", model.ErrInvalidTile, ctx.Param("position")))
		return
	}
	size, err := strconv.Atoi(ctx.DefaultQuery("size", strconv.Itoa(tile_printer.DefaultSize)))
	if err != nil || size < 1 || size > maxSize {
		http_common.BadRequest(ctx, "invalid size")
		return
	}

	tile := model.BoardTile(pos)
	png, err := tile_printer.PNG(tile, size)
	if err != nil {
		http_common.WriteError(ctx, c.logger, err)
		return
	}
	ctx.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", tile_printer.FileName(tile)))
	ctx.Data(http.StatusOK, "image/png", png)
}
