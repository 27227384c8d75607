package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"adminpanel/api/internal/authgate"
	"adminpanel/api/internal/models"
	"adminpanel/api/internal/session"
)

// CurrentUserKey is where gate middleware stores the resolved user.
const CurrentUserKey = "current_user"

// RequireUserPage guards page routes that need any signed-in user.
// Anonymous requests are sent to the login page.
func RequireUserPage(gate *authgate.Gate, cookies *session.CookieTransport) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := cookies.Read(c)
		outcome := gate.Authenticate(c.Request.Context(), token)
		if outcome.Decision != authgate.DecisionAuthorized {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set(CurrentUserKey, outcome.User)
		c.Next()
	}
}

// RequireAdminPage guards admin page routes. The two failure modes land
// on different pages on purpose: anonymous goes to /login, a signed-in
// non-admin goes back to the dashboard home.
func RequireAdminPage(gate *authgate.Gate, cookies *session.CookieTransport) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := cookies.Read(c)
		outcome := gate.Authorize(c.Request.Context(), token, models.UserRoleAdmin)

		switch outcome.Decision {
		case authgate.DecisionUnauthenticated:
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
		case authgate.DecisionForbidden:
			c.Redirect(http.StatusFound, "/")
			c.Abort()
		default:
			c.Set(CurrentUserKey, outcome.User)
			c.Next()
		}
	}
}

// RequireAdminAPI is the non-redirecting variant for JSON routes.
func RequireAdminAPI(gate *authgate.Gate, cookies *session.CookieTransport) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := cookies.Read(c)
		outcome := gate.Authorize(c.Request.Context(), token, models.UserRoleAdmin)

		switch outcome.Decision {
		case authgate.DecisionUnauthenticated:
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		case authgate.DecisionForbidden:
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		default:
			c.Set(CurrentUserKey, outcome.User)
			c.Next()
		}
	}
}

// CurrentUser pulls the gate-resolved user out of the request context.
func CurrentUser(c *gin.Context) (models.User, bool) {
	val, exists := c.Get(CurrentUserKey)
	if !exists {
		return models.User{}, false
	}
	user, ok := val.(models.User)
	return user, ok
}
