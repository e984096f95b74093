package controllers

import (
	"context"
	"net/http"

	"computer-aid/middleware"
	"computer-aid/models"
	"computer-aid/session"
	"computer-aid/utils"

	"github.com/gin-gonic/gin"
)

// Authenticator narrows the auth service to what the login flow calls.
type Authenticator interface {
	Login(ctx context.Context, username, password string) (string, error)
}

type AuthController struct {
	auth        Authenticator
	sessions    *session.Manager
	jwtSecret   string
	tokenMaxAge int
}

func NewAuthController(auth Authenticator, sessions *session.Manager, jwtSecret string, tokenMaxAge int) *AuthController {
	return &AuthController{auth: auth, sessions: sessions, jwtSecret: jwtSecret, tokenMaxAge: tokenMaxAge}
}

func (ctrl *AuthController) LoginForm(c *gin.Context) {
	if token, err := c.Cookie(middleware.AdminTokenCookie); err == nil && token != "" {
		if _, err := utils.ParseAdminToken(ctrl.jwtSecret, token); err == nil {
			c.Redirect(http.StatusFound, "/admin")
			return
		}
	}
	c.HTML(http.StatusOK, "admin_login.html", gin.H{
		"Title":      "Admin login",
		"Categories": models.Categories,
		"Flashes":    ctrl.sessions.TakeFlashes(c),
	})
}

func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		ctrl.sessions.Flash(c, "danger", "Invalid username or password")
		c.Redirect(http.StatusFound, "/admin/login")
		return
	}

	token, err := ctrl.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		// Same message for unknown username and wrong password.
		ctrl.sessions.Flash(c, "danger", "Invalid username or password")
		c.Redirect(http.StatusFound, "/admin/login")
		return
	}

	c.SetCookie(middleware.AdminTokenCookie, token, ctrl.tokenMaxAge, "/", "", false, true)
	ctrl.sessions.Flash(c, "success", "Welcome back!")
	c.Redirect(http.StatusFound, "/admin")
}

func (ctrl *AuthController) Logout(c *gin.Context) {
	c.SetCookie(middleware.AdminTokenCookie, "", -1, "/", "", false, true)
	ctrl.sessions.Flash(c, "info", "Logged out successfully.")
	c.Redirect(http.StatusFound, "/")
}
