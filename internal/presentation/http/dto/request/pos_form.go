package request

// LoginForm is the login screen draft
type LoginForm struct {
	Name     string `form:"name" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// AddItemForm carries one product line plus the customer fields, which
// ride along on every POS post so they survive re-renders.
type AddItemForm struct {
	CustomerID   string `form:"customer_id"`
	CustomerName string `form:"customer_name"`
	ProductCode  string `form:"product_code"`
	ProductName  string `form:"product_name"`
	UnitPrice    string `form:"unit_price"`
	Quantity     string `form:"quantity"`
}

// CheckoutForm carries the customer fields when payment is initiated
type CheckoutForm struct {
	CustomerID   string `form:"customer_id"`
	CustomerName string `form:"customer_name"`
}

// TenderForm is the three-way payment split; blank fields count as zero
type TenderForm struct {
	Cash  string `form:"cash"`
	Card  string `form:"card"`
	Check string `form:"check"`
}
