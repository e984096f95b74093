package controllers

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"computer-aid/models"
	"computer-aid/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var xhr = map[string]string{"X-Requested-With": "XMLHttpRequest"}

func newCartFixture(t *testing.T, whatsappNumber string) (*client, *stubCatalog) {
	t.Helper()
	router := newTestRouter(t)
	sessions := session.NewManager("test-secret")
	catalog := &stubCatalog{products: map[int]*models.Product{
		1: {ID: 1, Name: "ThinkPad X1", Price: 100, Image: "x1.png"},
		2: {ID: 2, Name: "USB-C Hub", Price: 50, Image: "hub.png"},
	}}

	ctrl := NewCartController(catalog, sessions, whatsappNumber)
	router.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "home") })
	router.GET("/cart", ctrl.View)
	router.POST("/cart/add/:id", ctrl.Add)
	router.POST("/cart/remove/:id", ctrl.Remove)
	router.GET("/cart/checkout", ctrl.Checkout)

	return newClient(router), catalog
}

func addXHR(t *testing.T, cl *client, id string) int {
	t.Helper()
	w := cl.do(http.MethodPost, "/cart/add/"+id, xhr)
	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Success   bool `json:"success"`
		CartCount int  `json:"cart_count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.True(t, body.Success)
	return body.CartCount
}

func TestCartAddCountsDistinctProducts(t *testing.T) {
	cl, _ := newCartFixture(t, "265991234567")

	assert.Equal(t, 1, addXHR(t, cl, "1"))
	// re-adding the same product upserts, it does not grow the cart
	assert.Equal(t, 1, addXHR(t, cl, "1"))
	assert.Equal(t, 2, addXHR(t, cl, "2"))
}

func TestCartAddUnknownProduct(t *testing.T) {
	cl, _ := newCartFixture(t, "265991234567")

	w := cl.do(http.MethodPost, "/cart/add/99", xhr)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCartAddWithoutXHRRedirects(t *testing.T) {
	cl, _ := newCartFixture(t, "265991234567")

	w := cl.do(http.MethodPost, "/cart/add/1", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/cart", w.Header().Get("Location"))
}

func TestCartRemoveIsIdempotent(t *testing.T) {
	cl, _ := newCartFixture(t, "265991234567")
	addXHR(t, cl, "1")

	// removing an id that is not in the cart is a quiet no-op
	w := cl.do(http.MethodPost, "/cart/remove/42", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	w = cl.do(http.MethodPost, "/cart/remove/42", nil)
	assert.Equal(t, http.StatusFound, w.Code)

	// the real entry is still there
	assert.Equal(t, 1, addXHR(t, cl, "1"))

	w = cl.do(http.MethodPost, "/cart/remove/1", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, 1, addXHR(t, cl, "2"))
}

func TestCartSnapshotSurvivesProductEdit(t *testing.T) {
	cl, catalog := newCartFixture(t, "265991234567")
	addXHR(t, cl, "1")

	// price change after the item was added must not leak into the quote
	catalog.products[1].Price = 200

	w := cl.do(http.MethodGet, "/cart/checkout", nil)
	require.Equal(t, http.StatusFound, w.Code)

	loc, err := url.Parse(w.Header().Get("Location"))
	require.NoError(t, err)
	text := loc.Query().Get("text")
	assert.Contains(t, text, "ThinkPad X1 (MWK 100)")
	assert.Contains(t, text, "Total: MWK 100")
	assert.NotContains(t, text, "200")
}

func TestCheckoutComposesItemizedMessage(t *testing.T) {
	cl, _ := newCartFixture(t, "265991234567")
	addXHR(t, cl, "1")
	addXHR(t, cl, "2")

	w := cl.do(http.MethodGet, "/cart/checkout", nil)
	require.Equal(t, http.StatusFound, w.Code)

	loc, err := url.Parse(w.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "wa.me", loc.Host)
	assert.Equal(t, "/265991234567", loc.Path)

	text := loc.Query().Get("text")
	assert.Contains(t, text, "- ThinkPad X1 (MWK 100)")
	assert.Contains(t, text, "- USB-C Hub (MWK 50)")
	assert.Contains(t, text, "Total: MWK 150")
}

func TestCheckoutClearsCart(t *testing.T) {
	cl, _ := newCartFixture(t, "265991234567")
	addXHR(t, cl, "1")

	w := cl.do(http.MethodGet, "/cart/checkout", nil)
	require.Equal(t, http.StatusFound, w.Code)

	// cart is gone, so a second checkout bails out to home
	w = cl.do(http.MethodGet, "/cart/checkout", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestCheckoutEmptyCartRedirectsHome(t *testing.T) {
	cl, _ := newCartFixture(t, "265991234567")

	w := cl.do(http.MethodGet, "/cart/checkout", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestCheckoutWithoutRecipientLeavesCartAlone(t *testing.T) {
	cl, _ := newCartFixture(t, "")
	addXHR(t, cl, "1")

	w := cl.do(http.MethodGet, "/cart/checkout", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	// the cart was not cleared by the failed checkout
	assert.Equal(t, 2, addXHR(t, cl, "2"))
}

func TestCartViewRenders(t *testing.T) {
	cl, _ := newCartFixture(t, "265991234567")
	addXHR(t, cl, "1")

	w := cl.do(http.MethodGet, "/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ThinkPad X1")
	assert.Contains(t, w.Body.String(), "100")
}
