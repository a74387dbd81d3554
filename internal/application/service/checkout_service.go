package service

import (
	"context"

	"github.com/vendify/salesflow-web/internal/application/pos"
	"github.com/vendify/salesflow-web/internal/infrastructure/gateway"
	"github.com/vendify/salesflow-web/pkg/utils"
)

// CheckoutService finalizes a sale: validate the tender, persist the sale
// through the gateway, and only then reset the cart. A persist failure
// leaves the cart in the Payment state so the operator can retry — the
// confirmation summary is never shown for a sale the backend rejected.
type CheckoutService struct {
	saleGateway *gateway.SaleGateway
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(saleGateway *gateway.SaleGateway) *CheckoutService {
	return &CheckoutService{saleGateway: saleGateway}
}

// Finalize completes the sale for the given cart
func (s *CheckoutService) Finalize(ctx context.Context, cart *pos.Cart) (pos.Summary, error) {
	summary, err := cart.Finalize()
	if err != nil {
		return pos.Summary{}, err
	}

	sale := cart.Snapshot(utils.GenerateSaleReference())
	if _, err := s.saleGateway.Create(ctx, sale); err != nil {
		return pos.Summary{}, err
	}

	cart.Reset()
	return summary, nil
}
