package handlers

import (
	"errors"
	"math/big"

	"github.com/gin-gonic/gin"

	apperrors "debenture/internal/errors"
	"debenture/internal/logger"
)

// ErrorDetail represents the inner error object in an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

func newErrorResponse(e *apperrors.AppError) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: e.Code, Message: e.Message}}
}

// contractURI binds the :id path parameter.
type contractURI struct {
	ID string `uri:"id" binding:"required,contract_id"`
}

// bindContractID returns the validated contract ID from the path.
func bindContractID(c *gin.Context) (string, error) {
	var uri contractURI
	if err := c.ShouldBindUri(&uri); err != nil {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid contract id")
	}
	return uri.ID, nil
}

// intString renders an integer for JSON; amounts travel as strings so no
// precision is lost in clients that decode numbers as floats.
func intString(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return v.String()
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, and message. Otherwise it
// logs the unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, newErrorResponse(appErr))
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, newErrorResponse(apperrors.ErrInternalServer))
}
