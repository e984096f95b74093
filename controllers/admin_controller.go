package controllers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"computer-aid/models"
	"computer-aid/services"
	"computer-aid/session"

	"github.com/gin-gonic/gin"
)

// CatalogManager is the mutating slice of the catalog service used by the
// admin panel.
type CatalogManager interface {
	ListAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id int) (*models.Product, error)
	Create(ctx context.Context, in models.CreateProductInput) (*models.Product, error)
	Update(ctx context.Context, id int, in models.UpdateProductInput) (*models.Product, error)
	Delete(ctx context.Context, id int) error
}

type AdminController struct {
	catalog  CatalogManager
	sessions *session.Manager
}

func NewAdminController(catalog CatalogManager, sessions *session.Manager) *AdminController {
	return &AdminController{catalog: catalog, sessions: sessions}
}

func (ctrl *AdminController) Dashboard(c *gin.Context) {
	products, err := ctrl.catalog.ListAll(c.Request.Context())
	if err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Message": "Failed to load products"})
		return
	}
	c.HTML(http.StatusOK, "admin_dashboard.html", gin.H{
		"Title":      "Dashboard",
		"Products":   products,
		"Categories": models.Categories,
		"Username":   c.GetString("admin_username"),
		"Flashes":    ctrl.sessions.TakeFlashes(c),
	})
}

func (ctrl *AdminController) AddForm(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_product_form.html", gin.H{
		"Title":      "Add product",
		"Action":     "Add",
		"Categories": models.Categories,
		"Flashes":    ctrl.sessions.TakeFlashes(c),
	})
}

func (ctrl *AdminController) Create(c *gin.Context) {
	in := models.CreateProductInput{
		Name:        c.PostForm("name"),
		Price:       c.PostForm("price"),
		Description: c.PostForm("description"),
		Category:    c.PostForm("category"),
	}
	if file, err := c.FormFile("image"); err == nil {
		in.Image = file
	}

	if _, err := ctrl.catalog.Create(c.Request.Context(), in); err != nil {
		ctrl.sessions.Flash(c, "danger", mutationMessage(err))
		c.Redirect(http.StatusFound, "/admin/product/add")
		return
	}

	ctrl.sessions.Flash(c, "success", "Product added successfully!")
	c.Redirect(http.StatusFound, "/admin")
}

func (ctrl *AdminController) EditForm(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	p, err := ctrl.catalog.GetByID(c.Request.Context(), id)
	if err != nil {
		ctrl.sessions.Flash(c, "danger", "Product not found")
		c.Redirect(http.StatusFound, "/admin")
		return
	}
	c.HTML(http.StatusOK, "admin_product_form.html", gin.H{
		"Title":      "Edit product",
		"Action":     "Edit",
		"Product":    p,
		"Categories": models.Categories,
		"Flashes":    ctrl.sessions.TakeFlashes(c),
	})
}

func (ctrl *AdminController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var in models.UpdateProductInput
	if v, ok := c.GetPostForm("name"); ok {
		in.Name = &v
	}
	if v, ok := c.GetPostForm("price"); ok {
		in.Price = &v
	}
	if v, ok := c.GetPostForm("description"); ok {
		in.Description = &v
	}
	if v, ok := c.GetPostForm("category"); ok {
		in.Category = &v
	}
	if file, err := c.FormFile("image"); err == nil {
		in.Image = file
	}

	if _, err := ctrl.catalog.Update(c.Request.Context(), id, in); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			ctrl.sessions.Flash(c, "danger", "Product not found")
			c.Redirect(http.StatusFound, "/admin")
			return
		}
		ctrl.sessions.Flash(c, "danger", mutationMessage(err))
		c.Redirect(http.StatusFound, "/admin/product/edit/"+strconv.Itoa(id))
		return
	}

	ctrl.sessions.Flash(c, "success", "Product updated successfully!")
	c.Redirect(http.StatusFound, "/admin")
}

func (ctrl *AdminController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := ctrl.catalog.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			ctrl.sessions.Flash(c, "danger", "Product not found")
		} else {
			ctrl.sessions.Flash(c, "danger", "Failed to delete product")
		}
		c.Redirect(http.StatusFound, "/admin")
		return
	}
	ctrl.sessions.Flash(c, "success", "Product deleted successfully!")
	c.Redirect(http.StatusFound, "/admin")
}

// mutationMessage keeps validation and upload messages user readable and
// hides everything else behind a generic line.
func mutationMessage(err error) string {
	var vErr *services.ValidationError
	if errors.As(err, &vErr) {
		return vErr.Message
	}
	var uErr *services.UploadError
	if errors.As(err, &uErr) {
		return uErr.Error()
	}
	return "Something went wrong, please try again"
}
