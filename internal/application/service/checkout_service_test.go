package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vendify/salesflow-web/internal/application/pos"
	"github.com/vendify/salesflow-web/internal/config"
	"github.com/vendify/salesflow-web/internal/infrastructure/gateway"
)

func paidCart(t *testing.T) *pos.Cart {
	t.Helper()
	cart := pos.NewCart()
	cart.SetCustomer("7", "Maria")
	require.NoError(t, cart.AddItem("100", "Freezer", decimal.RequireFromString("2800.00"), decimal.NewFromInt(1)))
	require.NoError(t, cart.AddItem("200", "Fan", decimal.RequireFromString("89.90"), decimal.NewFromInt(2)))
	require.NoError(t, cart.BeginPayment())
	cart.SetTender(decimal.RequireFromString("3000"), decimal.Zero, decimal.Zero)
	return cart
}

func checkoutAgainst(t *testing.T, handler http.Handler) *CheckoutService {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := gateway.NewClient(config.APIConfig{BaseURL: server.URL, Timeout: 5 * time.Second})
	require.NoError(t, err)
	return NewCheckoutService(gateway.NewSaleGateway(client))
}

func TestCheckoutFinalize(t *testing.T) {
	var posted map[string]interface{}
	svc := checkoutAgainst(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/vendas/", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&posted))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": 42}`))
	}))

	cart := paidCart(t)
	summary, err := svc.Finalize(context.Background(), cart)
	require.NoError(t, err)

	assert.Equal(t, "2979.80", summary.Total.StringFixed(2))
	assert.Equal(t, "20.20", summary.Change.StringFixed(2))

	// the wire record carries the Portuguese field names
	assert.Equal(t, "7", posted["cliente_id"])
	assert.Equal(t, "Maria", posted["cliente_nome"])
	assert.InDelta(t, 2979.80, posted["total"].(float64), 0.001)
	assert.Len(t, posted["itens"], 2)

	// a persisted sale wipes the cart
	assert.Empty(t, cart.Items)
	assert.Equal(t, pos.StateBuilding, cart.State)
}

func TestCheckoutFinalizeBackendFailure(t *testing.T) {
	svc := checkoutAgainst(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"detail": "database is on fire"}`))
	}))

	cart := paidCart(t)
	_, err := svc.Finalize(context.Background(), cart)
	require.Error(t, err)

	// the cart survives so the operator can retry
	assert.Equal(t, pos.StatePayment, cart.State)
	assert.Len(t, cart.Items, 2)
}

func TestCheckoutFinalizeRejectsUnpaidCart(t *testing.T) {
	called := false
	svc := checkoutAgainst(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	cart := pos.NewCart()
	_, err := svc.Finalize(context.Background(), cart)
	assert.ErrorIs(t, err, pos.ErrNotInPayment)
	assert.False(t, called, "no request should reach the backend")
}
