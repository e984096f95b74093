package middleware

import (
	"net/http"

	"computer-aid/session"
	"computer-aid/utils"

	"github.com/gin-gonic/gin"
)

// AdminTokenCookie carries the signed admin session token.
const AdminTokenCookie = "admin_token"

// AdminRequired guards the admin panel. Anonymous or stale sessions are sent
// to the login page.
func AdminRequired(jwtSecret string, sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(AdminTokenCookie)
		if err != nil || token == "" {
			sessions.Flash(c, "info", "Please log in to access the admin area")
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}

		claims, err := utils.ParseAdminToken(jwtSecret, token)
		if err != nil {
			sessions.Flash(c, "info", "Session expired, please log in again")
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}

		c.Set("admin_id", claims.AdminID)
		c.Set("admin_username", claims.Username)
		c.Next()
	}
}
