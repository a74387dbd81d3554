package handler

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/vendify/salesflow-web/internal/domain/enum"
	"github.com/vendify/salesflow-web/internal/presentation/http/dto/view"
	"github.com/vendify/salesflow-web/internal/presentation/http/middleware"
	"github.com/vendify/salesflow-web/pkg/apperror"
)

// OperatorName extracts the logged-in operator's name from the context
func OperatorName(c *gin.Context) string {
	name, exists := c.Get(middleware.ContextOperatorName)
	if !exists {
		return ""
	}
	s, _ := name.(string)
	return s
}

// AccessLevel extracts the operator's access level from the context
func AccessLevel(c *gin.Context) enum.AccessLevel {
	level, exists := c.Get(middleware.ContextAccessLevel)
	if !exists {
		return enum.AccessLevelUser
	}
	al, ok := level.(enum.AccessLevel)
	if !ok {
		return enum.AccessLevelUser
	}
	return al
}

// IsAdmin reports whether the current operator is an administrator
func IsAdmin(c *gin.Context) bool {
	return AccessLevel(c).IsAdmin()
}

// pageData builds the fields every screen template expects: the operator,
// the filtered sidebar and any flash alert carried over a redirect.
func pageData(c *gin.Context, title, active string) gin.H {
	isAdmin := IsAdmin(c)
	data := gin.H{
		"Title":    title,
		"Active":   active,
		"Operator": OperatorName(c),
		"IsAdmin":  isAdmin,
		"Menu":     view.VisibleMenu(isAdmin),
	}
	if alert := flashAlert(c); alert != nil {
		data["Alert"] = alert
	}
	return data
}

// flashAlert reads the notice/error carried in the query string after a
// redirect
func flashAlert(c *gin.Context) *view.Alert {
	if msg := c.Query("notice"); msg != "" {
		return &view.Alert{Kind: "success", Message: msg}
	}
	if msg := c.Query("error"); msg != "" {
		return &view.Alert{Kind: "error", Message: msg}
	}
	return nil
}

func alertError(message string) *view.Alert {
	return &view.Alert{Kind: "error", Message: message}
}

// redirectWithNotice sends the browser to path with a success flash
func redirectWithNotice(c *gin.Context, path, message string) {
	c.Redirect(http.StatusFound, path+"?notice="+url.QueryEscape(message))
}

// redirectWithError sends the browser to path with an error flash
func redirectWithError(c *gin.Context, path, message string) {
	c.Redirect(http.StatusFound, path+"?error="+url.QueryEscape(message))
}

// matchesQuery performs the case-insensitive substring search the list
// screens use. An empty query matches everything.
func matchesQuery(q string, fields ...string) bool {
	if q == "" {
		return true
	}
	q = strings.ToLower(q)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// fieldErrors maps the API's field-specific messages onto form field
// names. Fields the translation table does not know stay under their API
// name so the message is not lost.
func fieldErrors(err error, translate map[string]string) map[string]string {
	appErr := apperror.GetAppError(err)
	if len(appErr.Errors) == 0 {
		return nil
	}
	out := make(map[string]string, len(appErr.Errors))
	for _, fe := range appErr.Errors {
		field := fe.Field
		if mapped, ok := translate[field]; ok {
			field = mapped
		}
		out[field] = fe.Message
	}
	return out
}
