package response

import (
	"errors"
	"net/http"

	custom_error "stockroom/pkg/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const msgInternal = "Internal server error"

// JSON writes the {status, ...} envelope with a matching HTTP status.
func JSON(c *gin.Context, status int, body gin.H) {
	if body == nil {
		body = gin.H{}
	}
	body["status"] = status
	c.JSON(status, body)
}

func OK(c *gin.Context, body gin.H) {
	JSON(c, http.StatusOK, body)
}

func Message(c *gin.Context, status int, message string) {
	JSON(c, status, gin.H{"message": message})
}

// ValidationFailed renders a 422 with field errors, or with a message when
// the failure is not tied to a field.
func ValidationFailed(c *gin.Context, verr *custom_error.ValidationError) {
	if len(verr.Fields) == 0 {
		Message(c, http.StatusUnprocessableEntity, verr.Message)
		return
	}
	JSON(c, http.StatusUnprocessableEntity, gin.H{"errors": verr.Fields})
}

// Error maps service errors to the envelope. Unknown errors are logged and
// hidden behind a generic 500.
func Error(c *gin.Context, logger *zap.Logger, err error) {
	var validationErr *custom_error.ValidationError
	var notFoundErr *custom_error.NotFoundError
	var conflictErr *custom_error.ConflictError

	switch {
	case errors.As(err, &validationErr):
		ValidationFailed(c, validationErr)
	case errors.As(err, &notFoundErr):
		Message(c, http.StatusNotFound, notFoundErr.Message)
	case errors.As(err, &conflictErr):
		Message(c, http.StatusUnprocessableEntity, conflictErr.Message)
	default:
		logger.Error("Request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		Message(c, http.StatusInternalServerError, msgInternal)
	}
}
