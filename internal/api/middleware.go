package api

import (
	"errors"
	"fitmanager/routine-service/internal/auth"
	"fitmanager/routine-service/internal/domain"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Constants for context keys
const (
	ContextUserIDKey   = "userID"
	ContextUserRoleKey = "userRole"
	ContextRequestID   = "requestID"
)

const requestIDHeader = "X-Request-ID"

// AuthMiddleware creates a Gin middleware that verifies the bearer token issued by the
// auth service.
func AuthMiddleware(verifier *auth.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := auth.TokenFromHeader(c.GetHeader("Authorization"))
		if err != nil {
			abortWithError(c, http.StatusUnauthorized, "Access token required")
			return
		}

		identity, err := verifier.Verify(tokenString)
		if err != nil {
			if errors.Is(err, auth.ErrMissingToken) {
				abortWithError(c, http.StatusUnauthorized, "Access token required")
				return
			}
			abortWithError(c, http.StatusForbidden, "Invalid token")
			return
		}

		c.Set(ContextUserIDKey, identity.SubjectID)
		c.Set(ContextUserRoleKey, identity.Role)
		c.Next()
	}
}

// RequestLogger logs one line per request with its outcome.
func RequestLogger(log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(ContextRequestID, requestID)
		c.Header(requestIDHeader, requestID)

		c.Next()

		status := c.Writer.Status()
		entry := log.WithFields(logrus.Fields{
			"request_id": requestID,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     status,
			"latency_ms": time.Since(start).Milliseconds(),
			"client_ip":  c.ClientIP(),
		})
		if userID, err := getUserIDFromContext(c); err == nil {
			role, _ := getUserRoleFromContext(c)
			entry = entry.WithFields(logrus.Fields{"user_id": userID, "role": role})
		}
		switch {
		case status >= http.StatusInternalServerError:
			entry.Error("Request failed")
		case status >= http.StatusBadRequest:
			entry.Warn("Request rejected")
		default:
			entry.Info("Request handled")
		}
	}
}

// Helper to return JSON error response and abort request
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// Helper function to get User ID from context (used by handlers)
func getUserIDFromContext(c *gin.Context) (string, error) {
	idRaw, exists := c.Get(ContextUserIDKey)
	if !exists {
		return "", errors.New("user ID not found in context")
	}
	idStr, ok := idRaw.(string)
	if !ok || idStr == "" {
		return "", errors.New("invalid user ID type in context")
	}
	return idStr, nil
}

// Helper function to get User Role from context (used by handlers)
func getUserRoleFromContext(c *gin.Context) (domain.Role, error) {
	roleRaw, exists := c.Get(ContextUserRoleKey)
	if !exists {
		return "", errors.New("user role not found in context")
	}
	role, ok := roleRaw.(domain.Role)
	if !ok {
		return "", errors.New("invalid user role type in context")
	}
	return role, nil
}

// requireUserID is the handler-side guard for routes mounted behind AuthMiddleware.
func requireUserID(c *gin.Context) (string, bool) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Access token required")
		return "", false
	}
	return userID, true
}
