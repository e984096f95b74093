package controllers

import (
	"context"
	"html/template"
	"net/http"
	"net/http/httptest"
	"testing"

	"computer-aid/models"
	"computer-aid/services"
	"computer-aid/utils"

	"github.com/gin-gonic/gin"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.SetFuncMap(template.FuncMap{
		"mwk":      utils.FormatMWK,
		"imageURL": func(ref string) string { return ref },
	})
	r.LoadHTMLGlob("../templates/*.html")
	return r
}

// client replays response cookies on subsequent requests, like a browser.
type client struct {
	router  *gin.Engine
	cookies map[string]*http.Cookie
}

func newClient(router *gin.Engine) *client {
	return &client{router: router, cookies: map[string]*http.Cookie{}}
}

func (cl *client) do(method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for _, ck := range cl.cookies {
		req.AddCookie(ck)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	cl.router.ServeHTTP(w, req)
	for _, ck := range w.Result().Cookies() {
		cl.cookies[ck.Name] = ck
	}
	return w
}

type stubCatalog struct {
	products map[int]*models.Product
	listed   []models.Product
}

func (s *stubCatalog) ListAll(ctx context.Context) ([]models.Product, error) {
	return s.listed, nil
}

func (s *stubCatalog) ListByCategory(ctx context.Context, category string) ([]models.Product, error) {
	out := []models.Product{}
	for _, p := range s.listed {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *stubCatalog) Search(ctx context.Context, q string) ([]models.Product, error) {
	return s.listed, nil
}

func (s *stubCatalog) GetByID(ctx context.Context, id int) (*models.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, services.ErrNotFound
	}
	cp := *p
	return &cp, nil
}
