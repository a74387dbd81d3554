package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the landing screen after login
type DashboardHandler struct{}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler() *DashboardHandler {
	return &DashboardHandler{}
}

// Show renders the dashboard. The screen is a navigation hub; the
// figures live on the reports screen, so no gateway call happens here.
func (h *DashboardHandler) Show(c *gin.Context) {
	c.HTML(http.StatusOK, "dashboard.html", pageData(c, "Dashboard", "/dashboard"))
}
