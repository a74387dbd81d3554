package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is the record posted to the backend when a checkout is finalized.
type Sale struct {
	ID            int             `json:"id"`
	Reference     string          `json:"reference"`
	CustomerID    string          `json:"customer_id"`
	CustomerName  string          `json:"customer_name"`
	Items         []SaleItem      `json:"items"`
	Total         decimal.Decimal `json:"total"`
	TenderedCash  decimal.Decimal `json:"tendered_cash"`
	TenderedCard  decimal.Decimal `json:"tendered_card"`
	TenderedCheck decimal.Decimal `json:"tendered_check"`
	Change        decimal.Decimal `json:"change"`
	CreatedAt     time.Time       `json:"created_at"`
}

// SaleItem snapshots one cart line at the moment of sale.
type SaleItem struct {
	ProductCode string          `json:"product_code"`
	ProductName string          `json:"product_name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    decimal.Decimal `json:"quantity"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}
