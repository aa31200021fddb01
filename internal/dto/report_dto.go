package dto

import "github.com/shopspring/decimal"

// Read-only aggregate report rows. All four queries are pure SELECTs.

// CashierCategoriesRow: distinct categories and total units each cashier sold.
type CashierCategoriesRow struct {
	EmployeeID     string `json:"employee_id"`
	Surname        string `json:"surname"`
	Name           string `json:"name"`
	CategoriesSold int    `json:"categories_sold"`
	UnitsSold      int    `json:"units_sold"`
}

// CategoryPriceStatsRow: min/avg/max price and stock per category, restricted
// to categories whose total stock exceeds a threshold.
type CategoryPriceStatsRow struct {
	CategoryName string          `json:"category_name"`
	MinPrice     decimal.Decimal `json:"min_price"`
	AvgPrice     decimal.Decimal `json:"avg_price"`
	MaxPrice     decimal.Decimal `json:"max_price"`
	TotalUnits   int             `json:"total_units"`
}

// CashierRow identifies a cashier in the "every receipt contains the given
// category" report.
type CashierRow struct {
	EmployeeID string `json:"employee_id"`
	Surname    string `json:"surname"`
	Name       string `json:"name"`
}

// CategoryNameRow is a bare category name (categories with no promotional
// items and no over-stocked item).
type CategoryNameRow struct {
	CategoryName string `json:"category_name"`
}

// PreviewResponse is the generic table preview: column names plus rows keyed
// by column. Restricted to the handler's table allow-list.
type PreviewResponse struct {
	Table string                   `json:"table"`
	Rows  []map[string]interface{} `json:"rows"`
}
