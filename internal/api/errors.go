package api

import (
	"errors"
	"fitmanager/routine-service/internal/repository"
	"fitmanager/routine-service/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	internalErrorMessage    = "Internal server error"
	unavailableErrorMessage = "Service temporarily unavailable"
)

// respondWithServiceError maps service and repository errors onto the HTTP error body.
// Anything unexpected is logged and reported as a generic 500.
func respondWithServiceError(c *gin.Context, log logrus.FieldLogger, err error) {
	var (
		bulkErr     *service.BulkValidationError
		validErr    *service.ValidationError
		conflictErr *service.SeedConflictError
	)

	switch {
	case errors.As(err, &bulkErr):
		abortWithError(c, http.StatusBadRequest, bulkErr.Error())
	case errors.As(err, &validErr):
		abortWithError(c, http.StatusBadRequest, validErr.Message)
	case errors.As(err, &conflictErr):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": conflictErr.Error(), "count": conflictErr.Count})
	case errors.Is(err, service.ErrValidationFailed):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrExerciseNotFound):
		abortWithError(c, http.StatusNotFound, "Exercise not found")
	case errors.Is(err, service.ErrRoutineNotFound):
		abortWithError(c, http.StatusNotFound, "Routine not found")
	case errors.Is(err, service.ErrMediaUploadDisabled):
		abortWithError(c, http.StatusNotFound, "Media uploads are not configured")
	case errors.Is(err, repository.ErrUnavailable):
		requestLog(c, log).WithError(err).Warn("Store unavailable")
		abortWithError(c, http.StatusServiceUnavailable, unavailableErrorMessage)
	default:
		requestLog(c, log).WithError(err).Error("Unhandled service error")
		abortWithError(c, http.StatusInternalServerError, internalErrorMessage)
	}
}

// bindJSON decodes the request body. Malformed JSON is a 400.
func bindJSON(c *gin.Context, target interface{}) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return false
	}
	return true
}

func requestLog(c *gin.Context, log logrus.FieldLogger) logrus.FieldLogger {
	return log.WithFields(logrus.Fields{
		"request_id": c.GetString(ContextRequestID),
		"method":     c.Request.Method,
		"path":       c.FullPath(),
	})
}

// Recovery turns panics into the generic 500 body.
func Recovery(log logrus.FieldLogger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered interface{}) {
		requestLog(c, log).WithField("panic", recovered).Error("Recovered from panic")
		abortWithError(c, http.StatusInternalServerError, internalErrorMessage)
	})
}
