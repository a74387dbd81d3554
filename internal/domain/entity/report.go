package entity

import "github.com/shopspring/decimal"

// GeneralReport is the aggregate the backend exposes for the reporting
// dashboard. All values are computed server-side.
type GeneralReport struct {
	TotalCustomers int             `json:"total_customers"`
	TotalSuppliers int             `json:"total_suppliers"`
	TotalProducts  int             `json:"total_products"`
	TotalStaff     int             `json:"total_staff"`
	TotalSales     int             `json:"total_sales"`
	SalesRevenue   decimal.Decimal `json:"sales_revenue"`
	LowStockItems  int             `json:"low_stock_items"`
}
