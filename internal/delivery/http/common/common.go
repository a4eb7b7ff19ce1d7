package http_common

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/humanbelnik/flowquest/core/internal/model"
)

type ErrorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

type mapping struct {
	err    error
	status int
	code   string
}

// Order matters: the first sentinel err matches decides the response.
var mappings = []mapping{
	{model.ErrUnauthorized, http.StatusUnauthorized, "UNAUTHORIZED"},
	{model.ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
	{model.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
	{model.ErrInvalidMove, http.StatusUnprocessableEntity, "INVALID_MOVE"},
	{model.ErrInvalidTile, http.StatusUnprocessableEntity, "INVALID_TILE"},
	{model.ErrInventoryFull, http.StatusUnprocessableEntity, "INVENTORY_FULL"},
	{model.ErrGameNotStarted, http.StatusConflict, "GAME_NOT_STARTED"},
	{model.ErrGameAlreadyCompleted, http.StatusConflict, "GAME_ALREADY_COMPLETED"},
	{model.ErrAlreadyAnswered, http.StatusConflict, "ALREADY_ANSWERED"},
	{model.ErrNotYourTurn, http.StatusConflict, "NOT_YOUR_TURN"},
	{model.ErrQuestionClosed, http.StatusConflict, "QUESTION_CLOSED"},
	{model.ErrWrongPhase, http.StatusConflict, "WRONG_PHASE"},
	{model.ErrConcurrencyConflict, http.StatusConflict, "CONCURRENCY_CONFLICT"},
	{model.ErrCodeConflict, http.StatusConflict, "CODE_CONFLICT"},
	{model.ErrRoomsUnavailable, http.StatusServiceUnavailable, "UNAVAILABLE"},
	{model.ErrTransient, http.StatusServiceUnavailable, "UNAVAILABLE"},
}

// Status maps a domain error to its HTTP status and machine readable code.
func Status(err error) (int, string) {
	for _, m := range mappings {
		if errors.Is(err, m.err) {
			return m.status, m.code
		}
	}
	return http.StatusInternalServerError, "INTERNAL"
}

func WriteError(ctx *gin.Context, logger *slog.Logger, err error) {
	status, code := Status(err)
	resp := ErrorResponse{Message: err.Error(), Code: code}

	var moveErr *model.InvalidMoveError
	if errors.As(err, &moveErr) {
		resp.Details = map[string]int{
			"from":     moveErr.From,
			"to":       moveErr.To,
			"distance": moveErr.Distance,
		}
	}

	if status >= http.StatusInternalServerError {
		logger.Error("request failed", "path", ctx.FullPath(), "status", status, "err", err)
		if status == http.StatusInternalServerError {
			resp.Message = "internal error"
		}
	} else {
		logger.Warn("request rejected", "path", ctx.FullPath(), "status", status, "err", err)
	}
	ctx.AbortWithStatusJSON(status, resp)
}

func BadRequest(ctx *gin.Context, message string) {
	ctx.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{
		Message: message,
		Code:    "BAD_REQUEST",
	})
}
