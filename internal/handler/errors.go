package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskboard/internal/service/auth"
	"taskboard/internal/service/directory"
	"taskboard/internal/service/task"
)

// writeError maps a service error to its HTTP status with the service's
// fixed message. Anything unrecognized is a 500.
func writeError(c *gin.Context, logger *zap.Logger, err error) {
	var unknown *task.UnknownAssigneesError

	switch {
	case errors.Is(err, task.ErrNotFound),
		errors.Is(err, task.ErrAssigneeNotFound),
		errors.Is(err, directory.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	case errors.Is(err, task.ErrFieldsRequired),
		errors.Is(err, directory.ErrNameRequired),
		errors.Is(err, auth.ErrMissingFields),
		errors.Is(err, auth.ErrInvalidCredentials),
		errors.As(err, &unknown):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	case errors.Is(err, directory.ErrAlreadyExists),
		errors.Is(err, auth.ErrUsernameTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})

	default:
		logger.Error("request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
