package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vendify/salesflow-web/internal/infrastructure/postal"
)

// PostalHandler answers the address-autofill fetches the forms issue
// when the postal code field loses focus. It is the one JSON endpoint
// behind the session gate.
type PostalHandler struct {
	postal *postal.Client
}

// NewPostalHandler creates a new postal handler
func NewPostalHandler(client *postal.Client) *PostalHandler {
	return &PostalHandler{postal: client}
}

// Lookup resolves the code into address fields. Failures are soft: the
// form shows a notice and the operator types the address by hand.
func (h *PostalHandler) Lookup(c *gin.Context) {
	address, err := h.postal.Lookup(c.Request.Context(), c.Param("code"))
	if err != nil {
		status := http.StatusBadGateway
		switch {
		case errors.Is(err, postal.ErrInvalidCode):
			status = http.StatusBadRequest
		case errors.Is(err, postal.ErrCodeNotFound):
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"postal_code": address.PostalCode,
		"street":      address.Street,
		"district":    address.District,
		"city":        address.City,
		"region":      address.Region,
		"complement":  address.Complement,
	})
}
