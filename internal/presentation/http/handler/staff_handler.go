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

var staffFieldNames = map[string]string{
	"nome":         "name",
	"cpf":          "national_id",
	"rg":           "document_id",
	"email":        "email",
	"celular":      "mobile",
	"telefone":     "landline",
	"funcao":       "role",
	"nivel_acesso": "access_level",
	"senha":        "password",
	"cep":          "postal_code",
	"rua":          "street",
	"numero":       "number",
	"bairro":       "district",
	"cidade":       "city",
	"uf":           "region",
	"complemento":  "complement",
}

// StaffHandler serves the operator-account screens. Every route through
// it sits behind the admin gate.
type StaffHandler struct {
	staff *gateway.StaffGateway
}

// NewStaffHandler creates a new staff handler
func NewStaffHandler(staff *gateway.StaffGateway) *StaffHandler {
	return &StaffHandler{staff: staff}
}

// List renders the staff table, filtered by ?q= over name, role and
// email.
func (h *StaffHandler) List(c *gin.Context) {
	all, err := h.staff.List(c.Request.Context())
	data := pageData(c, "Staff", "/staff")
	if err != nil {
		data["Alert"] = alertError(apperror.GetAppError(err).Message)
		data["Staff"] = []entity.Staff{}
		c.HTML(http.StatusOK, "staff_list.html", data)
		return
	}

	q := c.Query("q")
	filtered := make([]entity.Staff, 0, len(all))
	for _, s := range all {
		if matchesQuery(q, s.Name, s.Role, s.Email) {
			filtered = append(filtered, s)
		}
	}

	data["Staff"] = filtered
	data["Query"] = q
	c.HTML(http.StatusOK, "staff_list.html", data)
}

// New renders the blank account form
func (h *StaffHandler) New(c *gin.Context) {
	data := pageData(c, "New staff member", "/staff")
	data["Form"] = request.StaffForm{AccessLevel: "user"}
	data["FieldErrors"] = map[string]string{}
	data["Action"] = "/staff"
	data["IsNew"] = true
	c.HTML(http.StatusOK, "staff_form.html", data)
}

// Edit fetches the account and renders the pre-filled form. The password
// field comes back blank; leaving it blank on save keeps the stored one.
func (h *StaffHandler) Edit(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		redirectWithError(c, "/staff", "Staff member not found")
		return
	}

	member, err := h.staff.Get(c.Request.Context(), id)
	if err != nil {
		redirectWithError(c, "/staff", apperror.GetAppError(err).Message)
		return
	}

	data := pageData(c, "Edit staff member", "/staff")
	data["Form"] = request.StaffFormFromEntity(member)
	data["FieldErrors"] = map[string]string{}
	data["Action"] = "/staff/" + strconv.Itoa(id)
	c.HTML(http.StatusOK, "staff_form.html", data)
}

// Create posts the new account to the API
func (h *StaffHandler) Create(c *gin.Context) {
	var form request.StaffForm
	_ = c.ShouldBind(&form)

	if _, err := h.staff.Create(c.Request.Context(), form.ToEntity(0)); err != nil {
		h.renderFormError(c, "New staff member", "/staff", form, true, err)
		return
	}
	redirectWithNotice(c, "/staff", "Staff member saved")
}

// Update puts the edited account over the existing one
func (h *StaffHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		redirectWithError(c, "/staff", "Staff member not found")
		return
	}

	var form request.StaffForm
	_ = c.ShouldBind(&form)

	if _, err := h.staff.Update(c.Request.Context(), form.ToEntity(id)); err != nil {
		h.renderFormError(c, "Edit staff member", "/staff/"+strconv.Itoa(id), form, false, err)
		return
	}
	redirectWithNotice(c, "/staff", "Staff member updated")
}

// Delete removes the account
func (h *StaffHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		redirectWithError(c, "/staff", "Staff member not found")
		return
	}

	if err := h.staff.Delete(c.Request.Context(), id); err != nil {
		redirectWithError(c, "/staff", apperror.GetAppError(err).Message)
		return
	}
	redirectWithNotice(c, "/staff", "Staff member removed")
}

func (h *StaffHandler) renderFormError(c *gin.Context, title, action string, form request.StaffForm, isNew bool, err error) {
	data := pageData(c, title, "/staff")
	data["Form"] = form
	data["Action"] = action
	data["IsNew"] = isNew
	appErr := apperror.GetAppError(err)
	data["Alert"] = alertError(appErr.Message)
	data["FieldErrors"] = fieldErrors(err, staffFieldNames)
	c.HTML(appErr.Code, "staff_form.html", data)
}
