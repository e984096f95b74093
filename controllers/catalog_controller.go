package controllers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"computer-aid/models"
	"computer-aid/services"
	"computer-aid/session"
	"computer-aid/utils"

	"github.com/gin-gonic/gin"
)

// CatalogBrowser is the read-only slice of the catalog service the public
// pages need.
type CatalogBrowser interface {
	ListAll(ctx context.Context) ([]models.Product, error)
	ListByCategory(ctx context.Context, category string) ([]models.Product, error)
	Search(ctx context.Context, q string) ([]models.Product, error)
	GetByID(ctx context.Context, id int) (*models.Product, error)
}

type CatalogController struct {
	catalog        CatalogBrowser
	sessions       *session.Manager
	whatsappNumber string
}

func NewCatalogController(catalog CatalogBrowser, sessions *session.Manager, whatsappNumber string) *CatalogController {
	return &CatalogController{catalog: catalog, sessions: sessions, whatsappNumber: whatsappNumber}
}

func (ctrl *CatalogController) Home(c *gin.Context) {
	products, err := ctrl.catalog.ListAll(c.Request.Context())
	if err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Message": "Failed to load products"})
		return
	}
	c.HTML(http.StatusOK, "home.html", gin.H{
		"Title":      "Computer Aid",
		"Products":   products,
		"Categories": models.Categories,
		"CartCount":  len(ctrl.sessions.Cart(c)),
		"Flashes":    ctrl.sessions.TakeFlashes(c),
	})
}

func (ctrl *CatalogController) Category(c *gin.Context) {
	key := c.Param("key")
	info, ok := models.CategoryByKey(key)
	if !ok {
		ctrl.sessions.Flash(c, "danger", "Category not found")
		c.Redirect(http.StatusFound, "/")
		return
	}

	products, err := ctrl.catalog.ListByCategory(c.Request.Context(), key)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Message": "Failed to load products"})
		return
	}
	c.HTML(http.StatusOK, "category.html", gin.H{
		"Title":      info.Name,
		"Products":   products,
		"Category":   info,
		"Categories": models.Categories,
		"CartCount":  len(ctrl.sessions.Cart(c)),
		"Flashes":    ctrl.sessions.TakeFlashes(c),
	})
}

// Search redirects empty queries to the unfiltered listing instead of
// returning every row.
func (ctrl *CatalogController) Search(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		c.Redirect(http.StatusFound, "/")
		return
	}

	products, err := ctrl.catalog.Search(c.Request.Context(), q)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Message": "Search failed"})
		return
	}
	c.HTML(http.StatusOK, "search.html", gin.H{
		"Title":      "Search results",
		"Query":      q,
		"Products":   products,
		"Categories": models.Categories,
		"CartCount":  len(ctrl.sessions.Cart(c)),
		"Flashes":    ctrl.sessions.TakeFlashes(c),
	})
}

func (ctrl *CatalogController) ProductDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.HTML(http.StatusNotFound, "not_found.html", gin.H{"Categories": models.Categories})
		return
	}

	p, err := ctrl.catalog.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.HTML(http.StatusNotFound, "not_found.html", gin.H{"Categories": models.Categories})
			return
		}
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Message": "Failed to load product"})
		return
	}

	link := utils.WhatsAppLink(ctrl.whatsappNumber, utils.InquiryMessage(p.Name, p.Price))

	c.HTML(http.StatusOK, "product_detail.html", gin.H{
		"Title":        p.Name,
		"Product":      p,
		"WhatsAppLink": link,
		"Categories":   models.Categories,
		"CartCount":    len(ctrl.sessions.Cart(c)),
		"Flashes":      ctrl.sessions.TakeFlashes(c),
	})
}
