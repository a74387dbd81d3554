package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vendify/salesflow-web/internal/domain/enum"
	"github.com/vendify/salesflow-web/pkg/utils"
)

// Context keys set by the session middleware
const (
	ContextOperatorName = "operator_name"
	ContextAccessLevel  = "access_level"
)

// SessionMiddleware gates the protected screens on the session cookie.
// A missing or invalid cookie redirects to the login screen rather than
// returning 401: this is a navigation gate for a browser, and it is only
// a display gate — the sales API independently authorizes every
// state-changing request.
func SessionMiddleware(sessions *utils.SessionManager, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		claims, err := sessions.Validate(token)
		if err != nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set(ContextOperatorName, claims.Name)
		c.Set(ContextAccessLevel, enum.AccessLevel(claims.AccessLevel).Normalize())

		c.Next()
	}
}

// RequireAdmin hides admin-only screens from standard operators. The
// "error" is a silent redirect to the dashboard, matching how the menu
// simply omits those entries.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		level, exists := c.Get(ContextAccessLevel)
		if !exists {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		if al, ok := level.(enum.AccessLevel); !ok || !al.IsAdmin() {
			c.Redirect(http.StatusFound, "/dashboard")
			c.Abort()
			return
		}
		c.Next()
	}
}
