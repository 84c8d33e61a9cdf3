package transport

import (
	"errors"
	"net/http"

	"craftlink-be/internal/logger"
	"craftlink-be/internal/notification"
	"craftlink-be/internal/order"
	"craftlink-be/internal/product"
	"craftlink-be/internal/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// writeError translates domain sentinels into HTTP status codes. Unrecognized
// errors are logged and masked as 500s.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	msg := err.Error()

	switch {
	case errors.Is(err, order.ErrValidation),
		errors.Is(err, product.ErrValidation),
		errors.Is(err, notification.ErrValidation),
		errors.Is(err, user.ErrInvalidStatus):
		status = http.StatusBadRequest

	case errors.Is(err, order.ErrForbidden),
		errors.Is(err, user.ErrForbidden),
		errors.Is(err, notification.ErrForbidden):
		status = http.StatusForbidden

	case errors.Is(err, order.ErrOrderNotFound),
		errors.Is(err, user.ErrUserNotFound),
		errors.Is(err, product.ErrProductNotFound),
		errors.Is(err, notification.ErrNotificationNotFound):
		status = http.StatusNotFound

	case errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrInvalidOperation):
		status = http.StatusConflict

	default:
		logger.FromCtx(c.Request.Context()).Error("unhandled service error", zap.Error(err))
		msg = "internal server error"
	}

	c.JSON(status, gin.H{"error": msg})
}
