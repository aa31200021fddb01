package repository

import (
	"context"
	"time"

	"github.com/AndreHordd/Zlagoda/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var receiptSortCols = map[string]string{
	"number": "r.check_number",
	"date":   "r.print_date",
	"total":  "r.sum_total",
}

// ReceiptQuery is the repo-level receipt list filter with parsed dates.
type ReceiptQuery struct {
	SortBy     string
	Order      string
	EmployeeID string
	From       *time.Time // inclusive on DATE(print_date)
	To         *time.Time // inclusive
}

// ReceiptListRow is a receipt header joined with its cashier's name.
type ReceiptListRow struct {
	Number      string          `gorm:"column:check_number"`
	PrintDate   time.Time       `gorm:"column:print_date"`
	EmployeeID  string          `gorm:"column:id_employee"`
	CashierName string          `gorm:"column:cashier_name"`
	Total       decimal.Decimal `gorm:"column:sum_total"`
}

// ReceiptRepository is the data access contract for receipts and sale lines.
type ReceiptRepository interface {
	// CreateTx inserts the header and all lines inside the caller's
	// transaction (checkout owns the transaction boundary).
	CreateTx(tx *gorm.DB, rec *model.Receipt) error

	FindByNumber(ctx context.Context, number string) (*model.Receipt, error)
	List(ctx context.Context, q ReceiptQuery) ([]ReceiptListRow, error)
	Delete(ctx context.Context, number string) (bool, error)
	DeleteSale(ctx context.Context, number, upc string) (bool, error)
	ExistsNumber(ctx context.Context, number string) (bool, error)

	TotalForPeriod(ctx context.Context, employeeID string, from, to *time.Time) (decimal.Decimal, error)
	UnitsSold(ctx context.Context, upc string, from, to *time.Time) (int, error)

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type receiptRepo struct{ db *gorm.DB }

func NewReceiptRepository(db *gorm.DB) ReceiptRepository { return &receiptRepo{db: db} }

func (r *receiptRepo) CreateTx(tx *gorm.DB, rec *model.Receipt) error {
	return tx.Create(rec).Error
}

func (r *receiptRepo) FindByNumber(ctx context.Context, number string) (*model.Receipt, error) {
	var rec model.Receipt
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Preload("Card").
		Preload("Items").
		Preload("Items.StoreProduct.Product").
		First(&rec, "check_number = ?", number).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *receiptRepo) List(ctx context.Context, q ReceiptQuery) ([]ReceiptListRow, error) {
	query := r.db.WithContext(ctx).
		Table("receipt AS r").
		Select("r.check_number, r.print_date, r.id_employee, e.empl_surname || ' ' || e.empl_name AS cashier_name, r.sum_total").
		Joins("JOIN employee e ON e.id_employee = r.id_employee")

	if q.EmployeeID != "" {
		query = query.Where("r.id_employee = ?", q.EmployeeID)
	}
	if q.From != nil {
		query = query.Where("DATE(r.print_date) >= ?", q.From.Format("2006-01-02"))
	}
	if q.To != nil {
		query = query.Where("DATE(r.print_date) <= ?", q.To.Format("2006-01-02"))
	}

	var rows []ReceiptListRow
	err := query.Order(orderBy(receiptSortCols, q.SortBy, "date", q.Order)).Scan(&rows).Error
	return rows, err
}

// Delete removes the header; the FK cascade removes its sale lines.
func (r *receiptRepo) Delete(ctx context.Context, number string) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&model.Receipt{}, "check_number = ?", number)
	return res.RowsAffected > 0, res.Error
}

func (r *receiptRepo) DeleteSale(ctx context.Context, number, upc string) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&model.Sale{}, "check_number = ? AND upc = ?", number, upc)
	return res.RowsAffected > 0, res.Error
}

func (r *receiptRepo) ExistsNumber(ctx context.Context, number string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Receipt{}).Where("check_number = ?", number).Count(&n).Error
	return n > 0, err
}

func (r *receiptRepo) TotalForPeriod(ctx context.Context, employeeID string, from, to *time.Time) (decimal.Decimal, error) {
	q := r.db.WithContext(ctx).Model(&model.Receipt{}).
		Select("COALESCE(SUM(sum_total), 0)")
	if employeeID != "" {
		q = q.Where("id_employee = ?", employeeID)
	}
	if from != nil {
		q = q.Where("DATE(print_date) >= ?", from.Format("2006-01-02"))
	}
	if to != nil {
		q = q.Where("DATE(print_date) <= ?", to.Format("2006-01-02"))
	}
	var total decimal.Decimal
	err := q.Scan(&total).Error
	return total, err
}

func (r *receiptRepo) UnitsSold(ctx context.Context, upc string, from, to *time.Time) (int, error) {
	q := r.db.WithContext(ctx).
		Table("sale AS s").
		Select("COALESCE(SUM(s.product_number), 0)").
		Joins("JOIN receipt r ON r.check_number = s.check_number").
		Where("s.upc = ?", upc)
	if from != nil {
		q = q.Where("DATE(r.print_date) >= ?", from.Format("2006-01-02"))
	}
	if to != nil {
		q = q.Where("DATE(r.print_date) <= ?", to.Format("2006-01-02"))
	}
	var units int
	err := q.Scan(&units).Error
	return units, err
}

func (r *receiptRepo) DB() *gorm.DB { return r.db }
