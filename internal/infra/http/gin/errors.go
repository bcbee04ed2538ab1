package ginserver

import (
	"log/slog"
	"net/http"

	gin "github.com/gin-gonic/gin"

	"smarthost/internal/domain/shared/domainerr"
)

// statusFor maps domain error kinds to HTTP codes. A missing parent entity
// is the client's fault, so NotFound becomes 400 like a validation failure.
func statusFor(err error) int {
	switch {
	case domainerr.IsValidation(err), domainerr.IsNotFound(err):
		return http.StatusBadRequest
	case domainerr.IsConflict(err):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c *gin.Context, logger *slog.Logger, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		if logger != nil {
			logger.ErrorContext(c.Request.Context(), "request failed", "path", c.FullPath(), "error", err)
		}
		c.JSON(status, gin.H{"error": "internal error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error(), "kind": domainerr.Kind(err)})
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "kind": "validation"})
}
