package controllers

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"strconv"

	"computer-aid/models"
	"computer-aid/services"
	"computer-aid/session"
	"computer-aid/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ProductFinder is the single catalog lookup the cart needs.
type ProductFinder interface {
	GetByID(ctx context.Context, id int) (*models.Product, error)
}

type CartController struct {
	catalog        ProductFinder
	sessions       *session.Manager
	whatsappNumber string
}

func NewCartController(catalog ProductFinder, sessions *session.Manager, whatsappNumber string) *CartController {
	return &CartController{catalog: catalog, sessions: sessions, whatsappNumber: whatsappNumber}
}

type cartLine struct {
	ID string
	models.CartItem
}

// cartLines flattens the session map into a stable, id-ordered slice.
func cartLines(cart map[string]models.CartItem) []cartLine {
	lines := make([]cartLine, 0, len(cart))
	for id, item := range cart {
		lines = append(lines, cartLine{ID: id, CartItem: item})
	}
	sort.Slice(lines, func(i, j int) bool {
		a, _ := strconv.Atoi(lines[i].ID)
		b, _ := strconv.Atoi(lines[j].ID)
		return a < b
	})
	return lines
}

func cartTotal(cart map[string]models.CartItem) float64 {
	total := decimal.Zero
	for _, item := range cart {
		total = total.Add(decimal.NewFromFloat(item.Price))
	}
	return total.InexactFloat64()
}

func isXHR(c *gin.Context) bool {
	return c.GetHeader("X-Requested-With") == "XMLHttpRequest"
}

func (ctrl *CartController) View(c *gin.Context) {
	cart := ctrl.sessions.Cart(c)
	c.HTML(http.StatusOK, "cart.html", gin.H{
		"Title":       "Your cart",
		"Lines":       cartLines(cart),
		"Total":       cartTotal(cart),
		"CanCheckout": ctrl.whatsappNumber != "" && len(cart) > 0,
		"Categories":  models.Categories,
		"CartCount":   len(cart),
		"Flashes":     ctrl.sessions.TakeFlashes(c),
	})
}

// Add snapshots the live product into the session. XHR callers get a small
// JSON payload so the page can update its counter without reloading.
func (ctrl *CartController) Add(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		ctrl.addFailed(c, http.StatusNotFound, "Product not found")
		return
	}

	p, err := ctrl.catalog.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			ctrl.addFailed(c, http.StatusNotFound, "Product not found")
			return
		}
		ctrl.addFailed(c, http.StatusInternalServerError, "Failed to add to cart")
		return
	}

	cart := ctrl.sessions.Cart(c)
	cart[strconv.Itoa(p.ID)] = models.CartItem{Name: p.Name, Price: p.Price, Image: p.Image}
	if err := ctrl.sessions.SaveCart(c, cart); err != nil {
		ctrl.addFailed(c, http.StatusInternalServerError, "Failed to add to cart")
		return
	}

	if isXHR(c) {
		c.JSON(http.StatusOK, gin.H{"success": true, "cart_count": len(cart)})
		return
	}
	ctrl.sessions.Flash(c, "success", p.Name+" added to cart")
	c.Redirect(http.StatusFound, "/cart")
}

func (ctrl *CartController) addFailed(c *gin.Context, status int, message string) {
	if isXHR(c) {
		c.JSON(status, gin.H{"success": false, "message": message})
		return
	}
	ctrl.sessions.Flash(c, "danger", message)
	c.Redirect(http.StatusFound, "/")
}

// Remove is idempotent: removing an id that is not in the cart is a no-op.
func (ctrl *CartController) Remove(c *gin.Context) {
	cart := ctrl.sessions.Cart(c)
	if _, ok := cart[c.Param("id")]; ok {
		delete(cart, c.Param("id"))
		if err := ctrl.sessions.SaveCart(c, cart); err != nil {
			ctrl.sessions.Flash(c, "danger", "Failed to update cart")
			c.Redirect(http.StatusFound, "/cart")
			return
		}
		ctrl.sessions.Flash(c, "info", "Item removed from cart")
	}
	c.Redirect(http.StatusFound, "/cart")
}

// Checkout composes the WhatsApp order message, clears the cart and redirects
// to the deep link. With no configured number or an empty cart it bails out
// to the home page leaving the cart untouched.
func (ctrl *CartController) Checkout(c *gin.Context) {
	cart := ctrl.sessions.Cart(c)
	if ctrl.whatsappNumber == "" || len(cart) == 0 {
		ctrl.sessions.Flash(c, "info", "Nothing to check out yet")
		c.Redirect(http.StatusFound, "/")
		return
	}

	items := make([]models.CartItem, 0, len(cart))
	for _, line := range cartLines(cart) {
		items = append(items, line.CartItem)
	}
	link := utils.WhatsAppLink(ctrl.whatsappNumber, utils.CheckoutMessage(items))

	if err := ctrl.sessions.ClearCart(c); err != nil {
		ctrl.sessions.Flash(c, "danger", "Checkout failed, please try again")
		c.Redirect(http.StatusFound, "/cart")
		return
	}
	c.Redirect(http.StatusFound, link)
}
