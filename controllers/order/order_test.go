package orderControllers_test

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Its-aman09/ecommerce/auth"
	cartControllers "github.com/Its-aman09/ecommerce/controllers/cart"
	orderControllers "github.com/Its-aman09/ecommerce/controllers/order"
	"github.com/Its-aman09/ecommerce/models"
	"github.com/Its-aman09/ecommerce/routes"
)

type noopSender struct{}

func (noopSender) Send(from, to, body string) error { return nil }

const checkoutBody = `{
	"first_name": "Aman", "last_name": "Kumar",
	"email": "aman@example.com", "phone": "9999999999",
	"address": "42 Main St", "city": "Delhi",
	"state": "DL", "zip_code": "110001"
}`

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")

	dbName := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := gorm.Open(sqlite.Open("file:"+dbName+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Category{}, &models.Product{},
		&models.Cart{}, &models.CartItem{},
		&models.Order{}, &models.OrderItem{},
		&models.Review{}, &models.OTP{},
	))

	r := gin.New()
	routes.SetupRoutes(r, db, noopSender{})
	return r, db
}

func seedUser(t *testing.T, db *gorm.DB) (models.User, string) {
	t.Helper()
	user := models.User{Username: "buyer", PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)
	token, err := auth.IssueUserToken(user.ID)
	require.NoError(t, err)
	return user, token
}

func seedProduct(t *testing.T, db *gorm.DB, name, price string, stock int) models.Product {
	t.Helper()
	category := models.Category{Name: "Books " + t.Name()}
	require.NoError(t, db.FirstOrCreate(&category, models.Category{Name: category.Name}).Error)
	product := models.Product{
		Name:       name,
		Slug:       slug.Make(name),
		CategoryID: category.ID,
		Price:      decimal.RequireFromString(price),
		Stock:      stock,
		Available:  true,
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func addItem(t *testing.T, db *gorm.DB, user models.User, product models.Product, qty int) {
	t.Helper()
	cart, err := cartControllers.GetOrCreateCart(db, auth.UserIdentity(user.ID))
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.CartItem{
		CartID: cart.ID, ProductID: product.ID, Quantity: qty,
	}).Error)
}

func doAuthed(r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCheckoutRequiresAuth(t *testing.T) {
	r, _ := setupRouter(t)
	req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(checkoutBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCheckoutEmptyCart(t *testing.T) {
	r, db := setupRouter(t)
	_, token := seedUser(t, db)

	w := doAuthed(r, http.MethodPost, "/checkout", checkoutBody, token)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Your cart is empty!")

	var orders int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orders).Error)
	assert.EqualValues(t, 0, orders, "empty-cart checkout must not write anything")
}

func TestCheckoutCreatesOrderAndClearsCart(t *testing.T) {
	r, db := setupRouter(t)
	user, token := seedUser(t, db)
	book := seedProduct(t, db, "Novel", "12.50", 10)
	pen := seedProduct(t, db, "Pen", "1.25", 100)
	addItem(t, db, user, book, 2)
	addItem(t, db, user, pen, 4)

	w := doAuthed(r, http.MethodPost, "/checkout", checkoutBody, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var order models.Order
	require.NoError(t, db.Preload("Items").First(&order).Error)

	// total = 2*12.50 + 4*1.25 = 30.00
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("30.00")),
		"got total %s", order.TotalAmount)
	assert.True(t, orderControllers.OrderTotal(order).Equal(order.TotalAmount))
	assert.Len(t, order.Items, 2)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, "cod", order.PaymentMethod)
	assert.False(t, order.Paid)

	// item prices pinned from the product's current price
	for _, item := range order.Items {
		switch item.ProductID {
		case book.ID:
			assert.True(t, item.Price.Equal(book.Price))
			assert.Equal(t, 2, item.Quantity)
		case pen.ID:
			assert.True(t, item.Price.Equal(pen.Price))
			assert.Equal(t, 4, item.Quantity)
		default:
			t.Fatalf("unexpected order item for product %d", item.ProductID)
		}
	}

	// stock decremented by purchased quantities
	var gotBook, gotPen models.Product
	require.NoError(t, db.First(&gotBook, book.ID).Error)
	require.NoError(t, db.First(&gotPen, pen.ID).Error)
	assert.Equal(t, 8, gotBook.Stock)
	assert.Equal(t, 96, gotPen.Stock)

	// cart emptied
	var items int64
	require.NoError(t, db.Model(&models.CartItem{}).Count(&items).Error)
	assert.EqualValues(t, 0, items)
}

func TestCheckoutStockMayGoNegative(t *testing.T) {
	r, db := setupRouter(t)
	user, token := seedUser(t, db)
	product := seedProduct(t, db, "Rare item", "99.00", 1)
	addItem(t, db, user, product, 3)

	w := doAuthed(r, http.MethodPost, "/checkout", checkoutBody, token)
	require.Equal(t, http.StatusCreated, w.Code)

	var got models.Product
	require.NoError(t, db.First(&got, product.ID).Error)
	assert.Equal(t, -2, got.Stock, "decrement has no floor check")
}

func TestOrderSuccessOwnerOnly(t *testing.T) {
	r, db := setupRouter(t)
	user, token := seedUser(t, db)
	product := seedProduct(t, db, "Lamp", "20.00", 5)
	addItem(t, db, user, product, 1)

	w := doAuthed(r, http.MethodPost, "/checkout", checkoutBody, token)
	require.Equal(t, http.StatusCreated, w.Code)

	var order models.Order
	require.NoError(t, db.First(&order).Error)
	path := "/order/" + strconv.Itoa(int(order.ID)) + "/success"

	w = doAuthed(r, http.MethodGet, path, "", token)
	assert.Equal(t, http.StatusOK, w.Code)

	// another user sees not-found, not someone else's order
	other := models.User{Username: "other", PasswordHash: "x"}
	require.NoError(t, db.Create(&other).Error)
	otherToken, err := auth.IssueUserToken(other.ID)
	require.NoError(t, err)
	w = doAuthed(r, http.MethodGet, path, "", otherToken)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateOrderStatusValidatesVocabulary(t *testing.T) {
	r, db := setupRouter(t)
	t.Setenv("ADMIN_API_KEY", "admin-key")
	user, token := seedUser(t, db)
	product := seedProduct(t, db, "Desk", "80.00", 2)
	addItem(t, db, user, product, 1)
	require.Equal(t, http.StatusCreated,
		doAuthed(r, http.MethodPost, "/checkout", checkoutBody, token).Code)

	var order models.Order
	require.NoError(t, db.First(&order).Error)
	path := "/admin/orders/" + strconv.Itoa(int(order.ID)) + "/status"

	req := httptest.NewRequest(http.MethodPut, path, strings.NewReader(`{"status":"shipped"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-KEY", "admin-key")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, db.First(&order, order.ID).Error)
	assert.Equal(t, models.OrderStatusShipped, order.Status)

	req = httptest.NewRequest(http.MethodPut, path, strings.NewReader(`{"status":"vaporized"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-KEY", "admin-key")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
