package accountControllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Its-aman09/ecommerce/models"
	"github.com/Its-aman09/ecommerce/routes"
)

type noopSender struct{}

func (noopSender) Send(from, to, body string) error { return nil }

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

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterThenLogin(t *testing.T) {
	r, db := setupRouter(t)

	w := postJSON(r, "/auth/register", `{"username":"amank","password":"sup3rsecret"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "Account created for amank!")
	assert.Contains(t, w.Body.String(), "token")

	var user models.User
	require.NoError(t, db.First(&user).Error)
	assert.NotEqual(t, "sup3rsecret", user.PasswordHash, "password must be hashed")

	w = postJSON(r, "/auth/login", `{"username":"amank","password":"sup3rsecret"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Welcome back, amank!")
}

func TestRegisterDuplicateUsername(t *testing.T) {
	r, _ := setupRouter(t)

	require.Equal(t, http.StatusCreated,
		postJSON(r, "/auth/register", `{"username":"amank","password":"sup3rsecret"}`).Code)
	w := postJSON(r, "/auth/register", `{"username":"amank","password":"0therpassw0rd"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Username is already taken")
}

func TestLoginWrongPassword(t *testing.T) {
	r, _ := setupRouter(t)

	require.Equal(t, http.StatusCreated,
		postJSON(r, "/auth/register", `{"username":"amank","password":"sup3rsecret"}`).Code)

	w := postJSON(r, "/auth/login", `{"username":"amank","password":"wrong-password"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = postJSON(r, "/auth/login", `{"username":"ghost","password":"sup3rsecret"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMyOrdersRequiresAuth(t *testing.T) {
	r, _ := setupRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/user/orders", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMyOrdersListsOwnOrders(t *testing.T) {
	r, db := setupRouter(t)

	w := postJSON(r, "/auth/register", `{"username":"amank","password":"sup3rsecret"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var payload struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))

	var user models.User
	require.NoError(t, db.First(&user).Error)
	require.NoError(t, db.Create(&models.Order{UserID: user.ID, Status: models.OrderStatusPending}).Error)

	req := httptest.NewRequest(http.MethodGet, "/user/orders", nil)
	req.Header.Set("Authorization", "Bearer "+payload.Token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"pending"`)
}
