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

var productFieldNames = map[string]string{
	"descricao":    "description",
	"preco":        "unit_price",
	"estoque":      "stock",
	"desconto":     "discount",
	"codigo_barra": "barcode",
	"ativo":        "active",
}

// ProductHandler serves the product list and form screens
type ProductHandler struct {
	products *gateway.ProductGateway
}

// NewProductHandler creates a new product handler
func NewProductHandler(products *gateway.ProductGateway) *ProductHandler {
	return &ProductHandler{products: products}
}

// List renders the product table, filtered by ?q= over description and
// barcode.
func (h *ProductHandler) List(c *gin.Context) {
	all, err := h.products.List(c.Request.Context())
	data := pageData(c, "Products", "/products")
	if err != nil {
		data["Alert"] = alertError(apperror.GetAppError(err).Message)
		data["Products"] = []entity.Product{}
		c.HTML(http.StatusOK, "product_list.html", data)
		return
	}

	q := c.Query("q")
	filtered := make([]entity.Product, 0, len(all))
	for _, p := range all {
		if matchesQuery(q, p.Description, p.Barcode) {
			filtered = append(filtered, p)
		}
	}

	data["Products"] = filtered
	data["Query"] = q
	c.HTML(http.StatusOK, "product_list.html", data)
}

// New renders the blank product form
func (h *ProductHandler) New(c *gin.Context) {
	data := pageData(c, "New product", "/products")
	data["Form"] = request.ProductForm{Active: "on"}
	data["FieldErrors"] = map[string]string{}
	data["Action"] = "/products"
	c.HTML(http.StatusOK, "product_form.html", data)
}

// Edit fetches the record and renders the pre-filled form
func (h *ProductHandler) Edit(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		redirectWithError(c, "/products", "Product not found")
		return
	}

	product, err := h.products.Get(c.Request.Context(), id)
	if err != nil {
		redirectWithError(c, "/products", apperror.GetAppError(err).Message)
		return
	}

	data := pageData(c, "Edit product", "/products")
	data["Form"] = request.ProductFormFromEntity(product)
	data["FieldErrors"] = map[string]string{}
	data["Action"] = "/products/" + strconv.Itoa(id)
	c.HTML(http.StatusOK, "product_form.html", data)
}

// Create posts the draft to the API
func (h *ProductHandler) Create(c *gin.Context) {
	var form request.ProductForm
	_ = c.ShouldBind(&form)

	if _, err := h.products.Create(c.Request.Context(), form.ToEntity(0)); err != nil {
		h.renderFormError(c, "New product", "/products", form, err)
		return
	}
	redirectWithNotice(c, "/products", "Product saved")
}

// Update puts the edited draft over the existing record
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		redirectWithError(c, "/products", "Product not found")
		return
	}

	var form request.ProductForm
	_ = c.ShouldBind(&form)

	if _, err := h.products.Update(c.Request.Context(), form.ToEntity(id)); err != nil {
		h.renderFormError(c, "Edit product", "/products/"+strconv.Itoa(id), form, err)
		return
	}
	redirectWithNotice(c, "/products", "Product updated")
}

// Delete removes the record
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		redirectWithError(c, "/products", "Product not found")
		return
	}

	if err := h.products.Delete(c.Request.Context(), id); err != nil {
		redirectWithError(c, "/products", apperror.GetAppError(err).Message)
		return
	}
	redirectWithNotice(c, "/products", "Product removed")
}

func (h *ProductHandler) renderFormError(c *gin.Context, title, action string, form request.ProductForm, err error) {
	data := pageData(c, title, "/products")
	data["Form"] = form
	data["Action"] = action
	appErr := apperror.GetAppError(err)
	data["Alert"] = alertError(appErr.Message)
	data["FieldErrors"] = fieldErrors(err, productFieldNames)
	c.HTML(appErr.Code, "product_form.html", data)
}
