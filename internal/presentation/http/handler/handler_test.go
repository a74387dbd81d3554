package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vendify/salesflow-web/internal/application/pos"
	"github.com/vendify/salesflow-web/internal/application/service"
	"github.com/vendify/salesflow-web/internal/config"
	"github.com/vendify/salesflow-web/internal/infrastructure/gateway"
	"github.com/vendify/salesflow-web/pkg/utils"
)

func apiStub(t *testing.T, handler http.Handler) *gateway.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := gateway.NewClient(config.APIConfig{BaseURL: server.URL, Timeout: 5 * time.Second})
	require.NoError(t, err)
	return client
}

func postForm(router *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCustomerEditFetchFailureRedirectsToList(t *testing.T) {
	gin.SetMode(gin.TestMode)
	client := apiStub(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail": "Not found."}`))
	}))

	h := NewCustomerHandler(gateway.NewCustomerGateway(client))
	router := gin.New()
	router.GET("/customers/:id/edit", h.Edit)

	req := httptest.NewRequest(http.MethodGet, "/customers/999/edit", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	location := w.Header().Get("Location")
	assert.True(t, strings.HasPrefix(location, "/customers?error="), "got %q", location)
}

func TestCustomerDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var deletedPath string
	client := apiStub(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		deletedPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))

	h := NewCustomerHandler(gateway.NewCustomerGateway(client))
	router := gin.New()
	router.POST("/customers/:id/delete", h.Delete)

	w := postForm(router, "/customers/7/delete", url.Values{})

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/clientes/7/", deletedPath)
	assert.True(t, strings.HasPrefix(w.Header().Get("Location"), "/customers?notice="))
}

func TestCustomerCreateRedirectsOnSuccess(t *testing.T) {
	gin.SetMode(gin.TestMode)
	client := apiStub(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": 10, "nome": "Ana"}`))
	}))

	h := NewCustomerHandler(gateway.NewCustomerGateway(client))
	router := gin.New()
	router.POST("/customers", h.Create)

	w := postForm(router, "/customers", url.Values{"name": {"Ana"}})

	assert.Equal(t, http.StatusFound, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Location"), "/customers?notice="))
}

func TestPOSAddItemRedirects(t *testing.T) {
	gin.SetMode(gin.TestMode)
	carts := pos.NewStore()
	h := NewPOSHandler(carts, nil, "salesflow_session")

	router := gin.New()
	router.POST("/pos/items", h.AddItem)

	w := postForm(router, "/pos/items", url.Values{
		"customer_id":   {"7"},
		"customer_name": {"Maria"},
		"product_code":  {"100"},
		"product_name":  {"Freezer"},
		"unit_price":    {"2800,00"},
		"quantity":      {"1"},
	})

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/pos", w.Header().Get("Location"))

	cart := carts.Cart("")
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "2800.00", cart.Items[0].Subtotal.StringFixed(2))
	assert.Equal(t, "Maria", cart.CustomerName)
}

func TestPOSCheckoutAndCancelFlow(t *testing.T) {
	gin.SetMode(gin.TestMode)
	carts := pos.NewStore()
	h := NewPOSHandler(carts, nil, "salesflow_session")

	router := gin.New()
	router.POST("/pos/items", h.AddItem)
	router.POST("/pos/checkout", h.Checkout)
	router.POST("/pos/back", h.Back)
	router.POST("/pos/cancel", h.Cancel)

	postForm(router, "/pos/items", url.Values{
		"customer_id":   {"7"},
		"customer_name": {"Maria"},
		"product_code":  {"100"},
		"product_name":  {"Freezer"},
		"unit_price":    {"2800,00"},
		"quantity":      {"1"},
	})

	w := postForm(router, "/pos/checkout", url.Values{
		"customer_id":   {"7"},
		"customer_name": {"Maria"},
	})
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, pos.StatePayment, carts.Cart("").State)

	postForm(router, "/pos/back", url.Values{})
	assert.Equal(t, pos.StateBuilding, carts.Cart("").State)
	assert.Len(t, carts.Cart("").Items, 1)

	postForm(router, "/pos/cancel", url.Values{})
	assert.Empty(t, carts.Cart("").Items)
}

func TestLoginSetsSessionCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	client := apiStub(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/login/", r.URL.Path)
		w.Write([]byte(`{"name": "Maria", "access_level": "admin"}`))
	}))

	sessions := utils.NewSessionManager("test-secret", time.Hour)
	authService := service.NewAuthService(gateway.NewAuthGateway(client), sessions)
	cfg := config.SessionConfig{
		Secret:      "test-secret",
		ExpiryHours: time.Hour,
		CookieName:  "salesflow_session",
	}
	h := NewAuthHandler(authService, pos.NewStore(), cfg)

	router := gin.New()
	router.POST("/login", h.Login)

	w := postForm(router, "/login", url.Values{"name": {"Maria"}, "password": {"secret"}})

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))

	var token string
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == cfg.CookieName {
			token = cookie.Value
		}
	}
	require.NotEmpty(t, token, "session cookie must be set")

	claims, err := sessions.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "Maria", claims.Name)
	assert.Equal(t, "admin", claims.AccessLevel)
}

func decimalOne() decimal.Decimal {
	return decimal.NewFromInt(1)
}

func TestLogoutClearsCookieAndCart(t *testing.T) {
	gin.SetMode(gin.TestMode)
	carts := pos.NewStore()
	cfg := config.SessionConfig{CookieName: "salesflow_session"}
	h := NewAuthHandler(nil, carts, cfg)

	cart := carts.Cart("some-token")
	require.NoError(t, cart.AddItem("1", "Item", decimalOne(), decimalOne()))

	router := gin.New()
	router.POST("/logout", h.Logout)

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: cfg.CookieName, Value: "some-token"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
	assert.Empty(t, carts.Cart("some-token").Items)

	cleared := false
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == cfg.CookieName && cookie.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared, "session cookie must be expired")
}
