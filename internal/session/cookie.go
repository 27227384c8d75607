// Package session maps session tokens to and from the browser cookie.
// Revocation happens here too: there is no server-side session table,
// so logout is exactly a cookie deletion.
package session

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const CookieName = "session"

type CookieTransport struct {
	secure bool
	maxAge time.Duration
}

// NewCookieTransport builds the transport. The Secure flag is only set
// outside development so the panel stays usable over plain http locally.
func NewCookieTransport(environment string, maxAge time.Duration) *CookieTransport {
	return &CookieTransport{
		secure: environment != "development",
		maxAge: maxAge,
	}
}

func (t *CookieTransport) Write(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, token, int(t.maxAge.Seconds()), "/", "", t.secure, true)
}

func (t *CookieTransport) Read(c *gin.Context) (string, bool) {
	token, err := c.Cookie(CookieName)
	if err != nil || token == "" {
		return "", false
	}
	return token, true
}

func (t *CookieTransport) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, "", -1, "/", "", t.secure, true)
}
