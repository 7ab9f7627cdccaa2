package handlers

import (
	"errors"
	"net/http"
	"strings"

	"movie-manager/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Keys under which the middlewares store values in the Gin context.
const (
	ctxUserID    = "userId"
	ctxUsername  = "username"
	ctxRequestID = "requestId"
)

const requestIDHeader = "X-Request-Id"

// requestIDMiddleware tags every request with an id for log correlation and
// echoes it back in the response headers. Caller-supplied ids are kept.
func (h *Handler) requestIDMiddleware(c *gin.Context) {
	id := c.GetHeader(requestIDHeader)
	if id == "" {
		id = uuid.NewString()
	}
	c.Set(ctxRequestID, id)
	c.Writer.Header().Set(requestIDHeader, id)
	c.Next()
}

// requestID returns the id assigned by requestIDMiddleware.
func requestID(c *gin.Context) string {
	return c.GetString(ctxRequestID)
}

// identityMiddleware validates the bearer token and resolves it to a stored
// user before any catalog route runs.
func (h *Handler) identityMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"kind":  kindUnauthorized,
			"error": "missing Authorization header",
		})
		return
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"kind":  kindUnauthorized,
			"error": "invalid Authorization header format",
		})
		return
	}

	user, err := h.services.Authenticate(parts[1])
	if err != nil {
		if !errors.Is(err, service.ErrInvalidToken) {
			// Lookup failure, not a bad token.
			h.logAndJSONError(c, http.StatusInternalServerError, kindInternal,
				"internal error", "identity_lookup_failed", err)
			c.Abort()
			return
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"kind":  kindUnauthorized,
			"error": "invalid or expired token",
		})
		return
	}

	// store identity in Gin context
	c.Set(ctxUserID, user.ID)
	c.Set(ctxUsername, user.Username)
	c.Next()
}

// callerID returns the authenticated user id stored by identityMiddleware.
func callerID(c *gin.Context) (int, bool) {
	v, ok := c.Get(ctxUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(int)
	return id, ok
}
