package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cookieFromRecorder(t *testing.T, resp *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	cookies := resp.Result().Cookies()
	require.Len(t, cookies, 1)
	return cookies[0]
}

func TestWriteSetsSecurityAttributes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	resp := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(resp)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	transport := NewCookieTransport("production", 7*24*time.Hour)
	transport.Write(c, "token-value")

	cookie := cookieFromRecorder(t, resp)
	assert.Equal(t, CookieName, cookie.Name)
	assert.Equal(t, "token-value", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, 604800, cookie.MaxAge)
}

func TestWriteInsecureInDevelopment(t *testing.T) {
	gin.SetMode(gin.TestMode)
	resp := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(resp)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	transport := NewCookieTransport("development", time.Hour)
	transport.Write(c, "token-value")

	cookie := cookieFromRecorder(t, resp)
	assert.False(t, cookie.Secure)
	assert.True(t, cookie.HttpOnly)
}

func TestReadAndClear(t *testing.T) {
	gin.SetMode(gin.TestMode)
	transport := NewCookieTransport("development", time.Hour)

	resp := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(resp)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	_, ok := transport.Read(c)
	assert.False(t, ok)

	c.Request.AddCookie(&http.Cookie{Name: CookieName, Value: "abc"})
	token, ok := transport.Read(c)
	require.True(t, ok)
	assert.Equal(t, "abc", token)

	transport.Clear(c)
	cookie := cookieFromRecorder(t, resp)
	assert.Equal(t, CookieName, cookie.Name)
	assert.Less(t, cookie.MaxAge, 0)
}
