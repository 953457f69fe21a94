package http

import (
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHomePage(t *testing.T) {
	ts := setupServer(t)

	rec := ts.do(http.MethodGet, "/", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.Contains(t, body, "Memorial Rose Coaster Set")
	assert.Contains(t, body, "Geode Serving Bowl")
	assert.Contains(t, body, "₹3735")
}

func TestHomePage_CategoryFilter(t *testing.T) {
	ts := setupServer(t)

	rec := ts.do(http.MethodGet, "/?category=Bowls", "", "")

	body := rec.Body.String()
	assert.Contains(t, body, "Floral Trinket Bowl")
	assert.NotContains(t, body, `<h3><a href="/products/1">`)
}

func TestProductPage(t *testing.T) {
	ts := setupServer(t)

	rec := ts.do(http.MethodGet, "/products/1?img=2", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `src="rose-3.jpg" alt="Memorial Rose Coaster Set" class="main-image"`)
}

func TestProductPage_NotFound(t *testing.T) {
	ts := setupServer(t)

	rec := ts.do(http.MethodGet, "/products/99", "", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Product not found")
	assert.Contains(t, body, `href="/back?section=products"`)
}

func TestAddToCartForm(t *testing.T) {
	ts := setupServer(t)

	rec := ts.form("/products/2/cart", url.Values{"quantity": {"2"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/products/2", rec.Header().Get("Location"))

	rec = ts.do(http.MethodGet, "/cart", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Geode Serving Bowl")
	assert.Contains(t, body, "2 items, total ₹10790")

	rec = ts.form("/cart/items/2", url.Values{"quantity": {"0"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	rec = ts.do(http.MethodGet, "/cart", "", "")
	assert.Contains(t, rec.Body.String(), "Your cart is empty.")
}

func TestCheckoutPage(t *testing.T) {
	ts := setupServer(t)

	rec := ts.do(http.MethodGet, "/checkout", "", "")
	assert.Equal(t, http.StatusSeeOther, rec.Code)

	ts.form("/products/3/cart", nil)
	rec = ts.do(http.MethodGet, "/checkout", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `src="/checkout/qr.png"`)

	rec = ts.form("/checkout/handoff", nil)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Location"), "https://wa.me/1234567890?text="))
}

func TestHandOffForm_EmptyCartRedirectsToCart(t *testing.T) {
	ts := setupServer(t)

	rec := ts.form("/checkout/handoff", nil)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/cart", rec.Header().Get("Location"))
	assert.Empty(t, ts.pub.published())
}

func TestAddToCartForm_RejectsOverflow(t *testing.T) {
	ts := setupServer(t)

	rec := ts.form("/cart/items/2", url.Values{"quantity": {strconv.Itoa(math.MaxInt)}})
	require.Equal(t, http.StatusSeeOther, rec.Code)

	rec = ts.form("/products/2/cart", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.do(http.MethodGet, "/cart", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), strconv.Itoa(math.MaxInt)+" items")
}

func TestCustomOrderForm(t *testing.T) {
	ts := setupServer(t)

	rec := ts.form("/custom-orders", url.Values{"name": {"Asha"}, "size": {"12 inch"}})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Please fill in: Email, Phone")
	assert.Contains(t, body, `value="12 inch"`)
	assert.Empty(t, ts.pub.published())

	rec = ts.form("/custom-orders", url.Values{"name": {"Asha"}, "email": {"a@example.com"}, "phone": {"555"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Location"), "https://wa.me/1234567890?text=New%20Custom%20Order%20Request"))
	assert.Len(t, ts.pub.published(), 1)
}

func TestBackForm_ScrollsOnce(t *testing.T) {
	ts := setupServer(t)
	ts.do(http.MethodGet, "/products/1", "", "")

	rec := ts.do(http.MethodGet, "/back?section=contact", "", "")
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	rec = ts.do(http.MethodGet, "/", "", "")
	assert.Contains(t, rec.Body.String(), "scrollIntoView")

	rec = ts.do(http.MethodGet, "/", "", "")
	assert.NotContains(t, rec.Body.String(), "scrollIntoView")
}
