package pos

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestCartAddItem(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		itemName string
		price    string
		quantity string
		wantErr  error
	}{
		{
			name:     "valid item",
			code:     "7891000100103",
			itemName: "Condensed milk",
			price:    "5.99",
			quantity: "2",
		},
		{
			name:     "missing code",
			code:     "",
			itemName: "Condensed milk",
			price:    "5.99",
			quantity: "2",
			wantErr:  ErrItemFieldsMissing,
		},
		{
			name:     "missing name",
			code:     "7891000100103",
			itemName: "   ",
			price:    "5.99",
			quantity: "2",
			wantErr:  ErrItemFieldsMissing,
		},
		{
			name:     "zero price",
			code:     "7891000100103",
			itemName: "Condensed milk",
			price:    "0",
			quantity: "2",
			wantErr:  ErrItemFieldsMissing,
		},
		{
			name:     "zero quantity",
			code:     "7891000100103",
			itemName: "Condensed milk",
			price:    "5.99",
			quantity: "0",
			wantErr:  ErrItemFieldsMissing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := NewCart()
			err := cart.AddItem(tt.code, tt.itemName, dec(tt.price), dec(tt.quantity))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, cart.Items)
				return
			}
			require.NoError(t, err)
			require.Len(t, cart.Items, 1)
			assert.True(t, cart.Items[0].Subtotal.Equal(dec("11.98")))
			assert.True(t, cart.Total.Equal(dec("11.98")))
		})
	}
}

func TestCartSubtotalRounding(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.AddItem("333", "Loose grain", dec("0.335"), dec("3")))
	// 0.335 * 3 = 1.005, rounded half away from zero at two places
	assert.Equal(t, "1.01", cart.Items[0].Subtotal.StringFixed(2))
}

func TestCartRemoveItem(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.AddItem("1", "First", dec("10"), dec("1")))
	require.NoError(t, cart.AddItem("2", "Second", dec("20"), dec("1")))
	require.NoError(t, cart.AddItem("3", "Third", dec("30"), dec("1")))

	require.NoError(t, cart.RemoveItem(1))

	require.Len(t, cart.Items, 2)
	assert.Equal(t, "First", cart.Items[0].ProductName)
	assert.Equal(t, "Third", cart.Items[1].ProductName)
	assert.True(t, cart.Total.Equal(dec("40")))

	assert.ErrorIs(t, cart.RemoveItem(5), ErrItemIndexOutOfRange)
	assert.ErrorIs(t, cart.RemoveItem(-1), ErrItemIndexOutOfRange)
}

func TestCartBeginPayment(t *testing.T) {
	t.Run("rejects empty cart", func(t *testing.T) {
		cart := NewCart()
		cart.SetCustomer("7", "Maria")
		assert.ErrorIs(t, cart.BeginPayment(), ErrEmptyCart)
		assert.Equal(t, StateBuilding, cart.State)
	})

	t.Run("rejects blank customer", func(t *testing.T) {
		cart := NewCart()
		require.NoError(t, cart.AddItem("1", "Item", dec("10"), dec("1")))
		assert.ErrorIs(t, cart.BeginPayment(), ErrCustomerMissing)
		assert.Equal(t, StateBuilding, cart.State)
	})

	t.Run("transitions to payment", func(t *testing.T) {
		cart := NewCart()
		cart.SetCustomer("7", "Maria")
		require.NoError(t, cart.AddItem("1", "Item", dec("10"), dec("1")))
		require.NoError(t, cart.BeginPayment())
		assert.Equal(t, StatePayment, cart.State)

		assert.ErrorIs(t, cart.BeginPayment(), ErrAlreadyInPayment)
		assert.ErrorIs(t, cart.AddItem("2", "Other", dec("5"), dec("1")), ErrAlreadyInPayment)
	})
}

func TestCartChangeAndFinalize(t *testing.T) {
	cart := NewCart()
	cart.SetCustomer("7", "Maria")
	require.NoError(t, cart.AddItem("100", "Freezer", dec("2800.00"), dec("1")))
	require.NoError(t, cart.AddItem("200", "Fan", dec("89.90"), dec("2")))
	require.NoError(t, cart.BeginPayment())

	assert.Equal(t, "2979.80", cart.Total.StringFixed(2))

	cart.SetTender(dec("1000"), dec("2000"), dec("0"))
	assert.Equal(t, "20.20", cart.Change().StringFixed(2))

	summary, err := cart.Finalize()
	require.NoError(t, err)
	assert.Equal(t, "2979.80", summary.Total.StringFixed(2))
	assert.Equal(t, "20.20", summary.Change.StringFixed(2))

	// Finalize leaves the cart intact until the sale is persisted
	assert.Equal(t, StatePayment, cart.State)
	assert.Len(t, cart.Items, 2)
}

func TestCartFinalizeRejections(t *testing.T) {
	t.Run("outside payment", func(t *testing.T) {
		cart := NewCart()
		_, err := cart.Finalize()
		assert.ErrorIs(t, err, ErrNotInPayment)
	})

	t.Run("insufficient tender", func(t *testing.T) {
		cart := NewCart()
		cart.SetCustomer("7", "Maria")
		require.NoError(t, cart.AddItem("1", "Item", dec("100"), dec("1")))
		require.NoError(t, cart.BeginPayment())
		cart.SetTender(dec("99.99"), decimal.Zero, decimal.Zero)

		_, err := cart.Finalize()
		assert.ErrorIs(t, err, ErrInsufficientTender)
		assert.Equal(t, StatePayment, cart.State)
	})

	t.Run("exact tender passes", func(t *testing.T) {
		cart := NewCart()
		cart.SetCustomer("7", "Maria")
		require.NoError(t, cart.AddItem("1", "Item", dec("100"), dec("1")))
		require.NoError(t, cart.BeginPayment())
		cart.SetTender(dec("100"), decimal.Zero, decimal.Zero)

		summary, err := cart.Finalize()
		require.NoError(t, err)
		assert.True(t, summary.Change.IsZero())
	})
}

func TestCartCancelAndReset(t *testing.T) {
	cart := NewCart()
	cart.SetCustomer("7", "Maria")
	require.NoError(t, cart.AddItem("1", "Item", dec("10"), dec("2")))
	require.NoError(t, cart.BeginPayment())
	cart.SetTender(dec("50"), decimal.Zero, decimal.Zero)

	// Cancel only leaves the payment phase
	cart.Cancel()
	assert.Equal(t, StateBuilding, cart.State)
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, "Maria", cart.CustomerName)

	// Reset wipes everything
	cart.Reset()
	assert.Equal(t, StateBuilding, cart.State)
	assert.Empty(t, cart.Items)
	assert.Empty(t, cart.CustomerID)
	assert.Empty(t, cart.CustomerName)
	assert.True(t, cart.Total.IsZero())
	assert.True(t, cart.Tender.Sum().IsZero())
}

func TestCartSnapshot(t *testing.T) {
	cart := NewCart()
	cart.SetCustomer("7", "Maria")
	require.NoError(t, cart.AddItem("100", "Freezer", dec("2800.00"), dec("1")))
	require.NoError(t, cart.BeginPayment())
	cart.SetTender(dec("2800"), decimal.Zero, decimal.Zero)

	sale := cart.Snapshot("SALE-ab12cd34")

	assert.Equal(t, "SALE-ab12cd34", sale.Reference)
	assert.Equal(t, "7", sale.CustomerID)
	assert.Equal(t, "Maria", sale.CustomerName)
	require.Len(t, sale.Items, 1)
	assert.Equal(t, "100", sale.Items[0].ProductCode)
	assert.Equal(t, "2800.00", sale.Total.StringFixed(2))
	assert.True(t, sale.Change.IsZero())
}

func TestStore(t *testing.T) {
	store := NewStore()

	a := store.Cart("session-a")
	b := store.Cart("session-b")
	assert.NotSame(t, a, b)

	require.NoError(t, a.AddItem("1", "Item", dec("10"), dec("1")))
	assert.Same(t, a, store.Cart("session-a"))
	assert.Len(t, store.Cart("session-a").Items, 1)

	store.Drop("session-a")
	assert.Empty(t, store.Cart("session-a").Items)
}
