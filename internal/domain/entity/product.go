package entity

import "github.com/shopspring/decimal"

// Product is a transient copy of a product record. DiscountedPrice is
// computed by the backend and never written from this side.
type Product struct {
	ID              int             `json:"id"`
	Description     string          `json:"description"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	Stock           int             `json:"stock"`
	Discount        decimal.Decimal `json:"discount"`
	Barcode         string          `json:"barcode"`
	Active          bool            `json:"active"`
	DiscountedPrice decimal.Decimal `json:"discounted_price"`
}
