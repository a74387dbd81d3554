// Package view holds the models shared by the HTML templates.
package view

// MenuEntry is one sidebar item. AdminOnly entries disappear for
// standard operators; the routes themselves are additionally gated by
// middleware.
type MenuEntry struct {
	Label     string
	Path      string
	AdminOnly bool
}

// Menu is the fixed, ordered sidebar
var Menu = []MenuEntry{
	{Label: "Dashboard", Path: "/dashboard"},
	{Label: "Point of Sale", Path: "/pos"},
	{Label: "Customers", Path: "/customers"},
	{Label: "Suppliers", Path: "/suppliers"},
	{Label: "Products", Path: "/products"},
	{Label: "Staff", Path: "/staff", AdminOnly: true},
	{Label: "Reports", Path: "/reports", AdminOnly: true},
}

// VisibleMenu filters the sidebar for the current access level
func VisibleMenu(isAdmin bool) []MenuEntry {
	if isAdmin {
		return Menu
	}
	visible := make([]MenuEntry, 0, len(Menu))
	for _, entry := range Menu {
		if !entry.AdminOnly {
			visible = append(visible, entry)
		}
	}
	return visible
}

// Alert is a screen-level notice. Blocking mirrors the original's modal
// alerts; non-blocking ones render as a dismissible toast.
type Alert struct {
	Kind    string // "error", "success", "info"
	Message string
}
