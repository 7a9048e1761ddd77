package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openex/ordergate/internal/core/domain"
	"go.uber.org/zap"
)

var errorStatusMap = map[error]int{
	domain.ErrInternal:        http.StatusInternalServerError,
	domain.ErrDataNotFound:    http.StatusNotFound,
	domain.ErrConflictingData: http.StatusConflict,

	domain.ErrBadRequest: http.StatusBadRequest,

	domain.ErrInsufficientBalance:   http.StatusUnprocessableEntity,
	domain.ErrInsufficientLiquidity: http.StatusUnprocessableEntity,
	domain.ErrInvalidOrder:          http.StatusUnprocessableEntity,
	domain.ErrOrderCreate:           http.StatusUnprocessableEntity,
}

type Handler struct {
	logger *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

// handleValidationError sends an error response for some specific request validation error
func (h *Handler) handleValidationError(ctx *gin.Context, err error) {
	ctx.Status(http.StatusBadRequest)
}

func (h *Handler) handleError(ctx *gin.Context, err error) {
	statusCode, ok := errorStatusMap[err]
	if !ok {
		statusCode = http.StatusInternalServerError
		h.logger.Error("error processing request", zap.Error(err))
	}
	ctx.Status(statusCode)
}

// handleSubmitError renders the fixed caller-facing error payload for
// submission failures: {"errors": [<message key>]} with 422 semantics.
func (h *Handler) handleSubmitError(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusUnprocessableEntity, gin.H{
		"errors": []string{domain.MessageKey(err)},
	})
}

// handleSuccess sends a success response with the specified status code and optional data
func (h *Handler) handleSuccessWithStatus(ctx *gin.Context, data any, status int) {
	if data != nil {
		ctx.JSON(status, data)
	} else {
		ctx.Status(status)
	}
}

func (h *Handler) handleSuccess(ctx *gin.Context, data any) {
	h.handleSuccessWithStatus(ctx, data, http.StatusOK)
}
