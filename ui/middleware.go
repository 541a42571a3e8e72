package ui

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"mathwiz/models"
)

const userContextKey = "currentUser"

// RequireAuth validates the bearer token and loads the user into the
// request context.
func (s *Server) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Not authenticated"})
			return
		}

		user, err := s.auth.Authenticate(c.Request.Context(), strings.TrimSpace(token))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Could not validate credentials"})
			return
		}
		c.Set(userContextKey, user)
		c.Next()
	}
}

// currentUser returns the authenticated user, or nil on routes that ran
// without the middleware.
func currentUser(c *gin.Context) *models.User {
	if v, ok := c.Get(userContextKey); ok {
		if user, ok := v.(*models.User); ok {
			return user
		}
	}
	return nil
}
