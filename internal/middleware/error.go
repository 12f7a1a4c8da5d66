package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "debenture/internal/errors"
	"debenture/internal/logger"
)

// ErrorHandler converts the last error attached to the Gin context into the
// standard JSON error body. Handlers that already wrote a response are left
// alone.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err

		var appErr *apperrors.AppError
		if !errors.As(err, &appErr) {
			logger.Get().Errorw("unexpected error",
				"error", err.Error(),
				"path", c.Request.URL.Path,
				"method", c.Request.Method,
			)
			appErr = apperrors.ErrInternalServer
		} else if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"message", appErr.Message,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		abortWithError(c, appErr)
	}
}
