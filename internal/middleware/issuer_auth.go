package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	apperrors "debenture/internal/errors"
)

// IssuerAuth guards state-changing routes with the X-API-Key header. An empty
// configured key disables those routes entirely.
func IssuerAuth(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey == "" {
			abortWithError(c, apperrors.ErrIssuerDisabled)
			return
		}
		key := c.GetHeader("X-API-Key")
		if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) != 1 {
			abortWithError(c, apperrors.ErrUnauthorized)
			return
		}
		c.Next()
	}
}

func abortWithError(c *gin.Context, appErr *apperrors.AppError) {
	c.AbortWithStatusJSON(appErr.StatusCode, gin.H{
		"error": gin.H{
			"code":    appErr.Code,
			"message": appErr.Message,
		},
	})
}
