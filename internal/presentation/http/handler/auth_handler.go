package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vendify/salesflow-web/internal/application/pos"
	"github.com/vendify/salesflow-web/internal/application/service"
	"github.com/vendify/salesflow-web/internal/config"
	"github.com/vendify/salesflow-web/internal/presentation/http/dto/request"
	"github.com/vendify/salesflow-web/pkg/apperror"
)

// AuthHandler serves the login screen and manages the session cookie
type AuthHandler struct {
	authService *service.AuthService
	carts       *pos.Store
	cfg         config.SessionConfig
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService, carts *pos.Store, cfg config.SessionConfig) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		carts:       carts,
		cfg:         cfg,
	}
}

// ShowLogin renders the login screen
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"Title": "Sign in",
		"Name":  "",
		"Alert": flashAlert(c),
	})
}

// Login validates the credentials against the sales API, sets the
// session cookie and lands on the dashboard. Failures re-render the
// screen with a blocking alert and the typed name preserved.
func (h *AuthHandler) Login(c *gin.Context) {
	var form request.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "login.html", gin.H{
			"Title": "Sign in",
			"Name":  c.PostForm("name"),
			"Alert": alertError("Name and password are required"),
		})
		return
	}

	out, err := h.authService.Login(c.Request.Context(), form.Name, form.Password)
	if err != nil {
		status := http.StatusUnauthorized
		message := "Invalid name or password"
		if errors.Is(err, apperror.ErrUnavailable) || apperror.GetAppError(err).Code == http.StatusBadGateway {
			status = http.StatusBadGateway
			message = "Could not reach the sales API, try again"
		}
		c.HTML(status, "login.html", gin.H{
			"Title": "Sign in",
			"Name":  form.Name,
			"Alert": alertError(message),
		})
		return
	}

	maxAge := int(h.cfg.ExpiryHours.Seconds())
	c.SetCookie(h.cfg.CookieName, out.Token, maxAge, "/", "", h.cfg.Secure, true)
	c.Redirect(http.StatusFound, "/dashboard")
}

// Logout clears the cookie and drops the session's cart
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(h.cfg.CookieName); err == nil && token != "" {
		h.carts.Drop(token)
	}
	c.SetCookie(h.cfg.CookieName, "", -1, "/", "", h.cfg.Secure, true)
	c.Redirect(http.StatusFound, "/login")
}
