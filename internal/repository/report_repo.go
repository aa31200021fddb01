package repository

import (
	"context"

	"github.com/AndreHordd/Zlagoda/internal/dto"

	"gorm.io/gorm"
)

// ReportRepository runs the read-only analytic queries. All four are raw
// SELECTs with bound parameters and no mutation.
type ReportRepository interface {
	CategoriesByCashier(ctx context.Context) ([]dto.CashierCategoriesRow, error)
	CategoryPriceStats(ctx context.Context, minUnits int) ([]dto.CategoryPriceStatsRow, error)
	CashiersEveryReceiptHasCategory(ctx context.Context, categoryName string) ([]dto.CashierRow, error)
	CategoriesWithoutPromos(ctx context.Context, bigStock int) ([]dto.CategoryNameRow, error)

	// Preview dumps up to limit rows of one table. Callers must validate
	// the table name against an allow-list before passing it in.
	Preview(ctx context.Context, table string, limit int) ([]map[string]interface{}, error)
}

type reportRepo struct{ db *gorm.DB }

func NewReportRepository(db *gorm.DB) ReportRepository { return &reportRepo{db: db} }

// CategoriesByCashier: distinct categories and total units each cashier ever
// sold, busiest cashiers first.
func (r *reportRepo) CategoriesByCashier(ctx context.Context) ([]dto.CashierCategoriesRow, error) {
	var rows []struct {
		EmployeeID     string `gorm:"column:id_employee"`
		Surname        string `gorm:"column:empl_surname"`
		Name           string `gorm:"column:empl_name"`
		CategoriesSold int    `gorm:"column:categories_sold"`
		UnitsSold      int    `gorm:"column:units_sold"`
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT e.id_employee,
		       e.empl_surname,
		       e.empl_name,
		       COUNT(DISTINCT cat.category_name) AS categories_sold,
		       COALESCE(SUM(s.product_number), 0) AS units_sold
		  FROM employee e
		  JOIN receipt r        ON r.id_employee = e.id_employee
		  JOIN sale s           ON s.check_number = r.check_number
		  JOIN store_product sp ON sp.upc = s.upc
		  JOIN product p        ON p.id_product = sp.id_product
		  JOIN category cat     ON cat.category_number = p.category_number
		 WHERE e.empl_role = 'cashier'
		 GROUP BY e.id_employee, e.empl_surname, e.empl_name
		 ORDER BY categories_sold DESC, units_sold DESC`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]dto.CashierCategoriesRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.CashierCategoriesRow(row))
	}
	return out, nil
}

// CategoryPriceStats: min/avg/max price and total stock per category whose
// total stock exceeds minUnits.
func (r *reportRepo) CategoryPriceStats(ctx context.Context, minUnits int) ([]dto.CategoryPriceStatsRow, error) {
	var rows []dto.CategoryPriceStatsRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT c.category_name,
		       MIN(sp.selling_price)          AS min_price,
		       ROUND(AVG(sp.selling_price),2) AS avg_price,
		       MAX(sp.selling_price)          AS max_price,
		       SUM(sp.products_number)        AS total_units
		  FROM category c
		  JOIN product p        ON p.category_number = c.category_number
		  JOIN store_product sp ON sp.id_product = p.id_product
		 GROUP BY c.category_name
		HAVING SUM(sp.products_number) > ?
		 ORDER BY avg_price DESC`, minUnits).Scan(&rows).Error
	return rows, err
}

// CashiersEveryReceiptHasCategory: cashiers for whom no receipt exists that
// lacks an item of the given category (double NOT EXISTS).
func (r *reportRepo) CashiersEveryReceiptHasCategory(ctx context.Context, categoryName string) ([]dto.CashierRow, error) {
	var rows []struct {
		EmployeeID string `gorm:"column:id_employee"`
		Surname    string `gorm:"column:empl_surname"`
		Name       string `gorm:"column:empl_name"`
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT e.id_employee, e.empl_surname, e.empl_name
		  FROM employee e
		 WHERE e.empl_role = 'cashier'
		   AND NOT EXISTS (
		         SELECT 1
		           FROM receipt r
		          WHERE r.id_employee = e.id_employee
		            AND NOT EXISTS (
		                  SELECT 1
		                    FROM sale s
		                    JOIN store_product sp ON sp.upc = s.upc
		                    JOIN product p        ON p.id_product = sp.id_product
		                    JOIN category cat     ON cat.category_number = p.category_number
		                   WHERE s.check_number = r.check_number
		                     AND cat.category_name = ?))
		 ORDER BY e.empl_surname`, categoryName).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]dto.CashierRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.CashierRow(row))
	}
	return out, nil
}

// CategoriesWithoutPromos: categories with no promotional items and no item
// stocked above bigStock.
func (r *reportRepo) CategoriesWithoutPromos(ctx context.Context, bigStock int) ([]dto.CategoryNameRow, error) {
	var rows []dto.CategoryNameRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT c.category_name
		  FROM category c
		 WHERE NOT EXISTS (
		         SELECT 1
		           FROM product p
		           JOIN store_product sp ON sp.id_product = p.id_product
		          WHERE p.category_number = c.category_number
		            AND sp.promotional_product = true)
		   AND NOT EXISTS (
		         SELECT 1
		           FROM product p
		           JOIN store_product sp ON sp.id_product = p.id_product
		          WHERE p.category_number = c.category_number
		            AND sp.products_number > ?)
		 ORDER BY c.category_name`, bigStock).Scan(&rows).Error
	return rows, err
}

func (r *reportRepo) Preview(ctx context.Context, table string, limit int) ([]map[string]interface{}, error) {
	var rows []map[string]interface{}
	err := r.db.WithContext(ctx).Table(table).Limit(limit).Find(&rows).Error
	return rows, err
}
