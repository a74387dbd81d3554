// Package pos holds the point-of-sale cart and checkout workflow. The
// cart is session-local state; nothing here touches the network. The
// checkout service persists the sale and resets the cart afterwards.
package pos

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vendify/salesflow-web/internal/domain/entity"
)

// State is the checkout phase. A cart starts Building, moves to Payment
// when checkout is initiated and returns to Building after a finalize or
// cancel.
type State string

const (
	StateBuilding State = "building"
	StatePayment  State = "payment"
)

var (
	ErrItemFieldsMissing  = errors.New("product code, name, price and quantity are all required")
	ErrItemIndexOutOfRange = errors.New("no line item at that position")
	ErrEmptyCart          = errors.New("the cart has no items")
	ErrCustomerMissing    = errors.New("customer identifier and name are required")
	ErrNotInPayment       = errors.New("checkout has not been initiated")
	ErrAlreadyInPayment   = errors.New("checkout is already in progress")
	ErrInsufficientTender = errors.New("tendered amount is less than the total due")
)

// LineItem is one cart line. Subtotal is fixed at add time.
type LineItem struct {
	ProductCode string
	ProductName string
	UnitPrice   decimal.Decimal
	Quantity    decimal.Decimal
	Subtotal    decimal.Decimal
}

// Tender is the three-way payment split entered during checkout. Blank
// or unparseable inputs have already been coerced to zero by the form
// layer.
type Tender struct {
	Cash  decimal.Decimal
	Card  decimal.Decimal
	Check decimal.Decimal
}

// Sum returns cash + card + check
func (t Tender) Sum() decimal.Decimal {
	return t.Cash.Add(t.Card).Add(t.Check)
}

// Summary is what the confirmation dialog shows after a finalized sale
type Summary struct {
	Total  decimal.Decimal
	Change decimal.Decimal
}

// Cart is the transient POS state for one operator session.
type Cart struct {
	State        State
	CustomerID   string
	CustomerName string
	Items        []LineItem
	Total        decimal.Decimal
	Tender       Tender
}

// NewCart returns an empty cart in the Building state
func NewCart() *Cart {
	return &Cart{
		State: StateBuilding,
		Total: decimal.Zero,
	}
}

// AddItem appends a line with subtotal = price x quantity and recomputes
// the total. All four item fields are required; the caller has already
// parsed price and quantity.
func (c *Cart) AddItem(code, name string, price, quantity decimal.Decimal) error {
	if c.State != StateBuilding {
		return ErrAlreadyInPayment
	}
	if strings.TrimSpace(code) == "" || strings.TrimSpace(name) == "" {
		return ErrItemFieldsMissing
	}
	if price.IsZero() || quantity.IsZero() {
		return ErrItemFieldsMissing
	}

	c.Items = append(c.Items, LineItem{
		ProductCode: strings.TrimSpace(code),
		ProductName: strings.TrimSpace(name),
		UnitPrice:   price,
		Quantity:    quantity,
		Subtotal:    price.Mul(quantity).Round(2),
	})
	c.recompute()
	return nil
}

// RemoveItem deletes the line at the given position, preserving the
// relative order of the remaining lines.
func (c *Cart) RemoveItem(index int) error {
	if index < 0 || index >= len(c.Items) {
		return ErrItemIndexOutOfRange
	}
	c.Items = append(c.Items[:index], c.Items[index+1:]...)
	c.recompute()
	return nil
}

// SetCustomer records the customer fields typed on the POS screen
func (c *Cart) SetCustomer(id, name string) {
	c.CustomerID = strings.TrimSpace(id)
	c.CustomerName = strings.TrimSpace(name)
}

// BeginPayment transitions Building -> Payment. Rejected while the cart
// is empty or the customer fields are blank; the cart stays in Building.
func (c *Cart) BeginPayment() error {
	if c.State == StatePayment {
		return ErrAlreadyInPayment
	}
	if len(c.Items) == 0 {
		return ErrEmptyCart
	}
	if c.CustomerID == "" || c.CustomerName == "" {
		return ErrCustomerMissing
	}
	c.State = StatePayment
	return nil
}

// SetTender stores the three tendered amounts
func (c *Cart) SetTender(cash, card, check decimal.Decimal) {
	c.Tender = Tender{Cash: cash, Card: card, Check: check}
}

// Change returns (cash + card + check) - total, at two decimal places.
// It can be negative while the operator is still typing amounts.
func (c *Cart) Change() decimal.Decimal {
	return c.Tender.Sum().Sub(c.Total).Round(2)
}

// Finalize validates the tender against the total and returns the
// confirmation summary. It does NOT reset the cart: the caller must
// first persist the sale, and only a successful persist may wipe state.
func (c *Cart) Finalize() (Summary, error) {
	if c.State != StatePayment {
		return Summary{}, ErrNotInPayment
	}
	if c.Tender.Sum().LessThan(c.Total) {
		return Summary{}, ErrInsufficientTender
	}
	return Summary{
		Total:  c.Total.Round(2),
		Change: c.Change(),
	}, nil
}

// Cancel returns to Building without touching the cart; the full reset is
// a separate, confirmed step.
func (c *Cart) Cancel() {
	c.State = StateBuilding
}

// Reset wipes the cart, the customer fields and the tendered amounts.
// Both a successful finalize and a confirmed cancel land here.
func (c *Cart) Reset() {
	*c = *NewCart()
}

// Snapshot captures the cart as the sale record to persist
func (c *Cart) Snapshot(reference string) entity.Sale {
	items := make([]entity.SaleItem, 0, len(c.Items))
	for _, it := range c.Items {
		items = append(items, entity.SaleItem{
			ProductCode: it.ProductCode,
			ProductName: it.ProductName,
			UnitPrice:   it.UnitPrice,
			Quantity:    it.Quantity,
			Subtotal:    it.Subtotal,
		})
	}
	return entity.Sale{
		Reference:     reference,
		CustomerID:    c.CustomerID,
		CustomerName:  c.CustomerName,
		Items:         items,
		Total:         c.Total.Round(2),
		TenderedCash:  c.Tender.Cash,
		TenderedCard:  c.Tender.Card,
		TenderedCheck: c.Tender.Check,
		Change:        c.Change(),
	}
}

func (c *Cart) recompute() {
	total := decimal.Zero
	for _, it := range c.Items {
		total = total.Add(it.Subtotal)
	}
	c.Total = total
}
