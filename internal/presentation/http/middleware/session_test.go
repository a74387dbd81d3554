package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vendify/salesflow-web/pkg/utils"
)

const testCookie = "salesflow_session"

func sessionRouter(sessions *utils.SessionManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	protected := router.Group("")
	protected.Use(SessionMiddleware(sessions, testCookie))
	protected.GET("/dashboard", func(c *gin.Context) {
		c.String(http.StatusOK, "operator: %s", c.MustGet(ContextOperatorName))
	})

	admin := protected.Group("")
	admin.Use(RequireAdmin())
	admin.GET("/staff", func(c *gin.Context) {
		c.String(http.StatusOK, "staff")
	})

	return router
}

func requestWithToken(router *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: testCookie, Value: token})
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSessionMiddleware(t *testing.T) {
	sessions := utils.NewSessionManager("test-secret", time.Hour)
	router := sessionRouter(sessions)

	t.Run("no cookie redirects to login", func(t *testing.T) {
		w := requestWithToken(router, "/dashboard", "")
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))
	})

	t.Run("invalid token redirects to login", func(t *testing.T) {
		w := requestWithToken(router, "/dashboard", "garbage")
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))
	})

	t.Run("valid token passes through", func(t *testing.T) {
		token, err := sessions.Issue("Maria", "user")
		require.NoError(t, err)

		w := requestWithToken(router, "/dashboard", token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "operator: Maria", w.Body.String())
	})
}

func TestRequireAdmin(t *testing.T) {
	sessions := utils.NewSessionManager("test-secret", time.Hour)
	router := sessionRouter(sessions)

	t.Run("standard operator is bounced to dashboard", func(t *testing.T) {
		token, err := sessions.Issue("Maria", "user")
		require.NoError(t, err)

		w := requestWithToken(router, "/staff", token)
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/dashboard", w.Header().Get("Location"))
	})

	t.Run("admin passes through", func(t *testing.T) {
		token, err := sessions.Issue("Admin", "admin")
		require.NoError(t, err)

		w := requestWithToken(router, "/staff", token)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
