package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sidd-coder1/Fullstack-LMS/pkg/response"
)

// MustGetUserID extracts the authenticated user id from the Gin context.
// Returns false (after writing a 401) when the JWT middleware did not
// inject it; callers should return immediately in that case.
func MustGetUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", false
	}
	return s, true
}

// MustGetRole extracts the caller's role from the Gin context.
func MustGetRole(c *gin.Context) (string, bool) {
	v, exists := c.Get("role")
	if !exists {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", false
	}
	return s, true
}

// GetTokenMeta extracts the token id and expiry injected by the JWT
// middleware. Used by logout to blacklist the current token.
func GetTokenMeta(c *gin.Context) (jti string, expiresAt time.Time) {
	if v, ok := c.Get("jti"); ok {
		jti, _ = v.(string)
	}
	if v, ok := c.Get("token_exp"); ok {
		expiresAt, _ = v.(time.Time)
	}
	return jti, expiresAt
}
