package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vendify/salesflow-web/internal/domain/entity"
	"github.com/vendify/salesflow-web/internal/infrastructure/gateway"
	"github.com/vendify/salesflow-web/internal/presentation/http/dto/request"
	"github.com/vendify/salesflow-web/pkg/apperror"
)

// customerFieldNames translates the API's field keys onto the form's
var customerFieldNames = map[string]string{
	"nome":        "name",
	"cpf":         "national_id",
	"rg":          "document_id",
	"email":       "email",
	"celular":     "mobile",
	"telefone":    "landline",
	"cep":         "postal_code",
	"rua":         "street",
	"numero":      "number",
	"bairro":      "district",
	"cidade":      "city",
	"uf":          "region",
	"complemento": "complement",
}

// CustomerHandler serves the customer list and form screens
type CustomerHandler struct {
	customers *gateway.CustomerGateway
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customers *gateway.CustomerGateway) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

// List renders the customer table, filtered client-side by ?q= over
// name, national id, email and city.
func (h *CustomerHandler) List(c *gin.Context) {
	all, err := h.customers.List(c.Request.Context())
	data := pageData(c, "Customers", "/customers")
	if err != nil {
		data["Alert"] = alertError(apperror.GetAppError(err).Message)
		data["Customers"] = []entity.Customer{}
		c.HTML(http.StatusOK, "customer_list.html", data)
		return
	}

	q := c.Query("q")
	filtered := make([]entity.Customer, 0, len(all))
	for _, cu := range all {
		if matchesQuery(q, cu.Name, cu.NationalID, cu.Email, cu.Address.City) {
			filtered = append(filtered, cu)
		}
	}

	data["Customers"] = filtered
	data["Query"] = q
	c.HTML(http.StatusOK, "customer_list.html", data)
}

// New renders the blank customer form
func (h *CustomerHandler) New(c *gin.Context) {
	data := pageData(c, "New customer", "/customers")
	data["Form"] = request.CustomerForm{}
	data["FieldErrors"] = map[string]string{}
	data["Action"] = "/customers"
	c.HTML(http.StatusOK, "customer_form.html", data)
}

// Edit fetches the current record and renders the pre-filled form. A
// fetch failure lands back on the list with the error, never on a form
// holding stale data.
func (h *CustomerHandler) Edit(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		redirectWithError(c, "/customers", "Customer not found")
		return
	}

	customer, err := h.customers.Get(c.Request.Context(), id)
	if err != nil {
		redirectWithError(c, "/customers", apperror.GetAppError(err).Message)
		return
	}

	data := pageData(c, "Edit customer", "/customers")
	data["Form"] = request.CustomerFormFromEntity(customer)
	data["FieldErrors"] = map[string]string{}
	data["Action"] = "/customers/" + strconv.Itoa(id)
	c.HTML(http.StatusOK, "customer_form.html", data)
}

// Create posts the draft to the API. Field errors re-render the form
// with the draft intact and the messages next to their fields.
func (h *CustomerHandler) Create(c *gin.Context) {
	var form request.CustomerForm
	_ = c.ShouldBind(&form)

	if _, err := h.customers.Create(c.Request.Context(), form.ToEntity(0)); err != nil {
		h.renderFormError(c, "New customer", "/customers", form, err)
		return
	}
	redirectWithNotice(c, "/customers", "Customer saved")
}

// Update puts the edited draft over the existing record
func (h *CustomerHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		redirectWithError(c, "/customers", "Customer not found")
		return
	}

	var form request.CustomerForm
	_ = c.ShouldBind(&form)

	if _, err := h.customers.Update(c.Request.Context(), form.ToEntity(id)); err != nil {
		h.renderFormError(c, "Edit customer", "/customers/"+strconv.Itoa(id), form, err)
		return
	}
	redirectWithNotice(c, "/customers", "Customer updated")
}

// Delete removes the record after the browser-side confirmation
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		redirectWithError(c, "/customers", "Customer not found")
		return
	}

	if err := h.customers.Delete(c.Request.Context(), id); err != nil {
		redirectWithError(c, "/customers", apperror.GetAppError(err).Message)
		return
	}
	redirectWithNotice(c, "/customers", "Customer removed")
}

func (h *CustomerHandler) renderFormError(c *gin.Context, title, action string, form request.CustomerForm, err error) {
	data := pageData(c, title, "/customers")
	data["Form"] = form
	data["Action"] = action
	appErr := apperror.GetAppError(err)
	data["Alert"] = alertError(appErr.Message)
	data["FieldErrors"] = fieldErrors(err, customerFieldNames)
	c.HTML(appErr.Code, "customer_form.html", data)
}
