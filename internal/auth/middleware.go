package auth

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mmyatt91/message.ly/internal/apperr"
)

const contextKeyUsername = "auth_username"

// CurrentUsername returns the username set by RequireAuth. Empty if not set.
func CurrentUsername(c *gin.Context) string {
	v, ok := c.Get(contextKeyUsername)
	if !ok {
		return ""
	}
	username, ok := v.(string)
	if !ok {
		return ""
	}
	return username
}

// RequireAuth returns a middleware that verifies the bearer token and sets
// the authenticated username in the request context. Missing, malformed or
// invalid tokens get 401.
func RequireAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			apperr.Respond(c, apperr.ErrUnauthorized)
			return
		}
		username, err := VerifyToken(token, secret)
		if err != nil || username == "" {
			apperr.Respond(c, apperr.ErrUnauthorized)
			return
		}
		c.Set(contextKeyUsername, username)
		c.Next()
	}
}

// RequireSameUser returns a middleware that compares the authenticated
// username against the named path parameter and responds 403 on mismatch.
// Must run after RequireAuth.
func RequireSameUser(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := CurrentUsername(c)
		if username == "" {
			apperr.Respond(c, apperr.ErrUnauthorized)
			return
		}
		if c.Param(param) != username {
			apperr.Respond(c, apperr.ErrForbidden)
			return
		}
		c.Next()
	}
}
