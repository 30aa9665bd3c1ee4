package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// userIDHeader carries the authenticated user's id, set by the fronting
// auth layer. This service never authenticates credentials itself.
const userIDHeader = "X-User-ID"

// RequestLogger tags every request with a generated request id and logs it
// on completion.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.NewString()
		c.Header("X-Request-ID", requestID)

		start := time.Now()
		c.Next()

		log.Info().
			Str("request_id", requestID).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	}
}

// currentUserID reads the authenticated user id from the identity header.
func currentUserID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.GetHeader(userIDHeader), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// RequireUser aborts with 401 unless the identity header carries a valid
// user id.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := currentUserID(c); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid " + userIDHeader + " header"})
			return
		}
		c.Next()
	}
}
