package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"charforge/internal/domain"
	"charforge/internal/service"
)

const userContextKey = "charforge.user"

// authRequired validates the bearer token and resolves its subject to a live,
// enabled user. Every failure mode responds with the same 401 body so a
// caller cannot probe which part failed.
func (h *Handler) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			unauthorized(c)
			return
		}

		subject, err := h.tokens.Validate(strings.TrimSpace(parts[1]))
		if err != nil {
			unauthorized(c)
			return
		}

		user, err := h.users.GetByUsername(c.Request.Context(), subject)
		if err != nil || user.Disabled {
			unauthorized(c)
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

func unauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "could not validate credentials"})
}

// currentUser returns the user resolved by authRequired.
func currentUser(c *gin.Context) *domain.User {
	user, _ := c.MustGet(userContextKey).(*domain.User)
	return user
}

// requestLogger tags every request with an id and writes one structured line
// on completion.
func requestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.NewString()
		c.Header("X-Request-ID", requestID)

		start := time.Now()
		c.Next()

		logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"method":     c.Request.Method,
			"path":       c.FullPath(),
			"status":     c.Writer.Status(),
			"latency":    time.Since(start).String(),
		}).Info("request")
	}
}

// respondError maps domain failures to API statuses. Ownership misses arrive
// here as domain.ErrNotFound already, so "forbidden" never leaks.
func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, domain.ErrConflict):
		c.JSON(http.StatusBadRequest, gin.H{"error": "username already registered"})
	case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, service.ErrInvalidToken):
		unauthorized(c)
	case errors.Is(err, domain.ErrMissingSeedData):
		h.logger.WithError(err).Error("seed data integrity problem")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "generation data unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
