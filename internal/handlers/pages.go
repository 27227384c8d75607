package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"adminpanel/api/internal/middleware"
)

// Page handlers render the minimal HTML shell of the panel. The real UI
// work happens client-side against the JSON API; these exist so the
// redirect flows have somewhere to land.

const loginPageHTML = `<!DOCTYPE html>
<html>
<head><title>Sign in</title></head>
<body>
<h1>Sign in</h1>
<form method="post" action="/api/auth/login">
  <label>Email <input type="email" name="email" required></label>
  <label>Password <input type="password" name="password" required></label>
  <button type="submit">Sign in</button>
</form>
</body>
</html>`

func (h HandlerSet) LoginPage(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(loginPageHTML))
}

func (h HandlerSet) Home(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	name := user.Email
	if user.Name != nil && *user.Name != "" {
		name = *user.Name
	}

	page := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><title>Dashboard</title></head>
<body>
<h1>Dashboard</h1>
<p>Signed in as %s (%s)</p>
<nav><a href="/dashboard/users">Users</a></nav>
<form method="post" action="/api/auth/logout"><button type="submit">Sign out</button></form>
</body>
</html>`, name, user.Role)

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}

func (h HandlerSet) UsersPage(c *gin.Context) {
	page := `<!DOCTYPE html>
<html>
<head><title>Users</title></head>
<body>
<h1>Users</h1>
<div id="users" data-endpoint="/api/users"></div>
</body>
</html>`

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}
