package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vendify/salesflow-web/internal/infrastructure/gateway"
	"github.com/vendify/salesflow-web/pkg/apperror"
)

// ReportHandler serves the reporting screen; admin-gated
type ReportHandler struct {
	reports *gateway.ReportGateway
}

// NewReportHandler creates a new report handler
func NewReportHandler(reports *gateway.ReportGateway) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// General renders the backend-computed aggregate
func (h *ReportHandler) General(c *gin.Context) {
	data := pageData(c, "Reports", "/reports")

	report, err := h.reports.General(c.Request.Context())
	if err != nil {
		data["Alert"] = alertError(apperror.GetAppError(err).Message)
		c.HTML(http.StatusOK, "reports.html", data)
		return
	}

	data["Report"] = report
	c.HTML(http.StatusOK, "reports.html", data)
}
