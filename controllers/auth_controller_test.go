package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"computer-aid/middleware"
	"computer-aid/services"
	"computer-aid/session"
	"computer-aid/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuthenticator struct {
	token string
}

func (s *stubAuthenticator) Login(ctx context.Context, username, password string) (string, error) {
	if username == "admin" && password == "hunter2" {
		return s.token, nil
	}
	return "", services.ErrInvalidCredentials
}

func newAuthFixture(t *testing.T) *client {
	t.Helper()
	router := newTestRouter(t)
	sessions := session.NewManager("test-secret")
	token, err := utils.GenerateAdminToken("jwt-secret", time.Hour, 1, "admin")
	require.NoError(t, err)

	ctrl := NewAuthController(&stubAuthenticator{token: token}, sessions, "jwt-secret", 3600)
	router.GET("/admin/login", ctrl.LoginForm)
	router.POST("/admin/login", ctrl.Login)
	router.GET("/admin/logout", ctrl.Logout)

	return newClient(router)
}

func postForm(cl *client, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, ck := range cl.cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	cl.router.ServeHTTP(w, req)
	for _, ck := range w.Result().Cookies() {
		cl.cookies[ck.Name] = ck
	}
	return w
}

func TestLoginSetsTokenCookie(t *testing.T) {
	cl := newAuthFixture(t)

	w := postForm(cl, "/admin/login", url.Values{"username": {"admin"}, "password": {"hunter2"}})
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin", w.Header().Get("Location"))

	ck, ok := cl.cookies[middleware.AdminTokenCookie]
	require.True(t, ok)
	assert.NotEmpty(t, ck.Value)
}

func TestLoginFailureStaysAnonymous(t *testing.T) {
	cl := newAuthFixture(t)

	for _, form := range []url.Values{
		{"username": {"admin"}, "password": {"wrong"}},
		{"username": {"nobody"}, "password": {"hunter2"}},
	} {
		w := postForm(cl, "/admin/login", form)
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/admin/login", w.Header().Get("Location"))
		_, ok := cl.cookies[middleware.AdminTokenCookie]
		assert.False(t, ok, "no session token must be issued")
	}
}

func TestLogoutClearsTokenCookie(t *testing.T) {
	cl := newAuthFixture(t)
	postForm(cl, "/admin/login", url.Values{"username": {"admin"}, "password": {"hunter2"}})

	w := cl.do(http.MethodGet, "/admin/logout", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	ck := cl.cookies[middleware.AdminTokenCookie]
	require.NotNil(t, ck)
	assert.Empty(t, ck.Value)
}

func TestLoginFormRedirectsAuthenticatedAdmin(t *testing.T) {
	cl := newAuthFixture(t)
	postForm(cl, "/admin/login", url.Values{"username": {"admin"}, "password": {"hunter2"}})

	w := cl.do(http.MethodGet, "/admin/login", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin", w.Header().Get("Location"))
}
