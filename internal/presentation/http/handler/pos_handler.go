package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vendify/salesflow-web/internal/application/pos"
	"github.com/vendify/salesflow-web/internal/application/service"
	"github.com/vendify/salesflow-web/internal/presentation/http/dto/request"
	"github.com/vendify/salesflow-web/internal/presentation/http/dto/view"
	"github.com/vendify/salesflow-web/pkg/apperror"
	"github.com/vendify/salesflow-web/pkg/numfmt"
)

// POSHandler drives the point-of-sale screen. The cart lives server-side
// keyed by the session token, so a page reload never loses the sale in
// progress.
type POSHandler struct {
	carts      *pos.Store
	checkout   *service.CheckoutService
	cookieName string
}

// NewPOSHandler creates a new POS handler
func NewPOSHandler(carts *pos.Store, checkout *service.CheckoutService, cookieName string) *POSHandler {
	return &POSHandler{
		carts:      carts,
		checkout:   checkout,
		cookieName: cookieName,
	}
}

func (h *POSHandler) cart(c *gin.Context) *pos.Cart {
	token, _ := c.Cookie(h.cookieName)
	return h.carts.Cart(token)
}

// Show renders the POS screen in whatever state the cart is in
func (h *POSHandler) Show(c *gin.Context) {
	h.render(c, h.cart(c), http.StatusOK, nil)
}

// AddItem appends a line to the cart. The customer fields ride along on
// the same post so they are never lost between line entries.
func (h *POSHandler) AddItem(c *gin.Context) {
	var form request.AddItemForm
	_ = c.ShouldBind(&form)

	cart := h.cart(c)
	cart.SetCustomer(form.CustomerID, form.CustomerName)

	price := numfmt.ParseDecimal(form.UnitPrice)
	quantity := numfmt.ParseDecimal(form.Quantity)
	if err := cart.AddItem(form.ProductCode, form.ProductName, price, quantity); err != nil {
		h.render(c, cart, http.StatusUnprocessableEntity, alertError(errorMessage(err)))
		return
	}
	c.Redirect(http.StatusFound, "/pos")
}

// RemoveItem deletes the line at the posted position
func (h *POSHandler) RemoveItem(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		index = -1
	}

	cart := h.cart(c)
	if err := cart.RemoveItem(index); err != nil {
		h.render(c, cart, http.StatusUnprocessableEntity, alertError(errorMessage(err)))
		return
	}
	c.Redirect(http.StatusFound, "/pos")
}

// Checkout moves the cart into the payment phase
func (h *POSHandler) Checkout(c *gin.Context) {
	var form request.CheckoutForm
	_ = c.ShouldBind(&form)

	cart := h.cart(c)
	cart.SetCustomer(form.CustomerID, form.CustomerName)

	if err := cart.BeginPayment(); err != nil {
		h.render(c, cart, http.StatusUnprocessableEntity, alertError(errorMessage(err)))
		return
	}
	c.Redirect(http.StatusFound, "/pos")
}

// Tender records the three payment amounts and re-renders so the
// operator sees the computed change before confirming.
func (h *POSHandler) Tender(c *gin.Context) {
	var form request.TenderForm
	_ = c.ShouldBind(&form)

	cart := h.cart(c)
	cart.SetTender(
		numfmt.ParseDecimal(form.Cash),
		numfmt.ParseDecimal(form.Card),
		numfmt.ParseDecimal(form.Check),
	)
	c.Redirect(http.StatusFound, "/pos")
}

// Finalize persists the sale and, on success, shows the confirmation
// summary over a fresh cart. On failure the cart keeps its payment state
// so the operator can correct and retry.
func (h *POSHandler) Finalize(c *gin.Context) {
	var form request.TenderForm
	_ = c.ShouldBind(&form)

	cart := h.cart(c)
	cart.SetTender(
		numfmt.ParseDecimal(form.Cash),
		numfmt.ParseDecimal(form.Card),
		numfmt.ParseDecimal(form.Check),
	)

	summary, err := h.checkout.Finalize(c.Request.Context(), cart)
	if err != nil {
		status := http.StatusUnprocessableEntity
		if apperror.IsAppError(err) {
			status = apperror.GetAppError(err).Code
		}
		h.render(c, cart, status, alertError(errorMessage(err)))
		return
	}

	data := h.posData(c, cart)
	data["Alert"] = &view.Alert{Kind: "success", Message: "Sale completed. Change due: " + numfmt.FormatMoney(summary.Change)}
	data["Summary"] = summary
	c.HTML(http.StatusOK, "pos.html", data)
}

// Back leaves the payment phase keeping every line intact
func (h *POSHandler) Back(c *gin.Context) {
	h.cart(c).Cancel()
	c.Redirect(http.StatusFound, "/pos")
}

// Cancel wipes the whole sale after the browser-side confirmation
func (h *POSHandler) Cancel(c *gin.Context) {
	h.cart(c).Reset()
	redirectWithNotice(c, "/pos", "Sale cancelled")
}

func (h *POSHandler) posData(c *gin.Context, cart *pos.Cart) gin.H {
	data := pageData(c, "Point of Sale", "/pos")
	data["Cart"] = cart
	data["InPayment"] = cart.State == pos.StatePayment
	data["Change"] = cart.Change()
	return data
}

func (h *POSHandler) render(c *gin.Context, cart *pos.Cart, status int, alert interface{}) {
	data := h.posData(c, cart)
	if alert != nil {
		data["Alert"] = alert
	}
	c.HTML(status, "pos.html", data)
}

// errorMessage flattens cart sentinels and gateway errors into the text
// the alert shows
func errorMessage(err error) string {
	switch {
	case errors.Is(err, pos.ErrItemFieldsMissing),
		errors.Is(err, pos.ErrItemIndexOutOfRange),
		errors.Is(err, pos.ErrEmptyCart),
		errors.Is(err, pos.ErrCustomerMissing),
		errors.Is(err, pos.ErrNotInPayment),
		errors.Is(err, pos.ErrAlreadyInPayment),
		errors.Is(err, pos.ErrInsufficientTender):
		return err.Error()
	default:
		return apperror.GetAppError(err).Message
	}
}
