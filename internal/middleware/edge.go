package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"adminpanel/api/internal/session"
)

// EdgeAccessFilter is the first gate every request crosses: a path-only
// check that keeps anonymous browsers out of page routes. It looks at
// cookie presence alone and never validates the token; forged cookies
// are caught downstream by the auth gate.
func EdgeAccessFilter() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path

		// Login page and API routes pass through; API handlers carry
		// their own auth checks.
		if path == "/login" || strings.HasPrefix(path, "/api/") {
			c.Next()
			return
		}

		// Asset paths are out of scope for auth decisions.
		if path == "/favicon.ico" || strings.HasPrefix(path, "/static/") {
			c.Next()
			return
		}

		if _, err := c.Cookie(session.CookieName); err != nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Next()
	}
}
