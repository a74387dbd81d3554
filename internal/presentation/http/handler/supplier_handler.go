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

var supplierFieldNames = map[string]string{
	"nome":               "name",
	"cnpj":               "tax_id",
	"email":              "email",
	"celular":            "mobile",
	"telefone":           "landline",
	"nome_contato":       "contact_name",
	"email_secundario":   "secondary_email",
	"telefone_secundario": "secondary_phone",
	"cep":                "postal_code",
	"rua":                "street",
	"numero":             "number",
	"bairro":             "district",
	"cidade":             "city",
	"uf":                 "region",
	"complemento":        "complement",
}

// SupplierHandler serves the supplier list and form screens
type SupplierHandler struct {
	suppliers *gateway.SupplierGateway
}

// NewSupplierHandler creates a new supplier handler
func NewSupplierHandler(suppliers *gateway.SupplierGateway) *SupplierHandler {
	return &SupplierHandler{suppliers: suppliers}
}

// List renders the supplier table, filtered by ?q= over name, tax id,
// email and city.
func (h *SupplierHandler) List(c *gin.Context) {
	all, err := h.suppliers.List(c.Request.Context())
	data := pageData(c, "Suppliers", "/suppliers")
	if err != nil {
		data["Alert"] = alertError(apperror.GetAppError(err).Message)
		data["Suppliers"] = []entity.Supplier{}
		c.HTML(http.StatusOK, "supplier_list.html", data)
		return
	}

	q := c.Query("q")
	filtered := make([]entity.Supplier, 0, len(all))
	for _, s := range all {
		if matchesQuery(q, s.Name, s.TaxID, s.Email, s.Address.City) {
			filtered = append(filtered, s)
		}
	}

	data["Suppliers"] = filtered
	data["Query"] = q
	c.HTML(http.StatusOK, "supplier_list.html", data)
}

// New renders the blank supplier form
func (h *SupplierHandler) New(c *gin.Context) {
	data := pageData(c, "New supplier", "/suppliers")
	data["Form"] = request.SupplierForm{}
	data["FieldErrors"] = map[string]string{}
	data["Action"] = "/suppliers"
	c.HTML(http.StatusOK, "supplier_form.html", data)
}

// Edit fetches the record and renders the pre-filled form
func (h *SupplierHandler) Edit(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		redirectWithError(c, "/suppliers", "Supplier not found")
		return
	}

	supplier, err := h.suppliers.Get(c.Request.Context(), id)
	if err != nil {
		redirectWithError(c, "/suppliers", apperror.GetAppError(err).Message)
		return
	}

	data := pageData(c, "Edit supplier", "/suppliers")
	data["Form"] = request.SupplierFormFromEntity(supplier)
	data["FieldErrors"] = map[string]string{}
	data["Action"] = "/suppliers/" + strconv.Itoa(id)
	c.HTML(http.StatusOK, "supplier_form.html", data)
}

// Create posts the draft to the API
func (h *SupplierHandler) Create(c *gin.Context) {
	var form request.SupplierForm
	_ = c.ShouldBind(&form)

	if _, err := h.suppliers.Create(c.Request.Context(), form.ToEntity(0)); err != nil {
		h.renderFormError(c, "New supplier", "/suppliers", form, err)
		return
	}
	redirectWithNotice(c, "/suppliers", "Supplier saved")
}

// Update puts the edited draft over the existing record
func (h *SupplierHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		redirectWithError(c, "/suppliers", "Supplier not found")
		return
	}

	var form request.SupplierForm
	_ = c.ShouldBind(&form)

	if _, err := h.suppliers.Update(c.Request.Context(), form.ToEntity(id)); err != nil {
		h.renderFormError(c, "Edit supplier", "/suppliers/"+strconv.Itoa(id), form, err)
		return
	}
	redirectWithNotice(c, "/suppliers", "Supplier updated")
}

// Delete removes the record
func (h *SupplierHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		redirectWithError(c, "/suppliers", "Supplier not found")
		return
	}

	if err := h.suppliers.Delete(c.Request.Context(), id); err != nil {
		redirectWithError(c, "/suppliers", apperror.GetAppError(err).Message)
		return
	}
	redirectWithNotice(c, "/suppliers", "Supplier removed")
}

func (h *SupplierHandler) renderFormError(c *gin.Context, title, action string, form request.SupplierForm, err error) {
	data := pageData(c, title, "/suppliers")
	data["Form"] = form
	data["Action"] = action
	appErr := apperror.GetAppError(err)
	data["Alert"] = alertError(appErr.Message)
	data["FieldErrors"] = fieldErrors(err, supplierFieldNames)
	c.HTML(appErr.Code, "supplier_form.html", data)
}
