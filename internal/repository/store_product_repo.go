package repository

import (
	"context"
	"errors"
	"time"

	"github.com/AndreHordd/Zlagoda/internal/dto"
	"github.com/AndreHordd/Zlagoda/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ErrInsufficientStock is returned by DecrementStockTx when the guarded
// UPDATE matches no row, meaning stock would have gone negative.
var ErrInsufficientStock = errors.New("insufficient stock")

var storeProductSortCols = map[string]string{
	"upc":             "sp.upc",
	"name":            "p.product_name",
	"characteristics": "p.characteristics",
	"category":        "c.category_name",
	"price":           "sp.selling_price",
	"quantity":        "sp.products_number",
	"promotional":     "sp.promotional_product",
	"expiry":          "sp.expiry_date",
}

// StoreProductRow is a shelf item joined with catalog and category names.
type StoreProductRow struct {
	UPC             string          `gorm:"column:upc"`
	PromoUPC        *string         `gorm:"column:upc_prom"`
	ProductID       int             `gorm:"column:id_product"`
	Name            string          `gorm:"column:product_name"`
	Characteristics string          `gorm:"column:characteristics"`
	CategoryName    string          `gorm:"column:category_name"`
	Price           decimal.Decimal `gorm:"column:selling_price"`
	Quantity        int             `gorm:"column:products_number"`
	Promotional     bool            `gorm:"column:promotional_product"`
	ExpiryDate      time.Time       `gorm:"column:expiry_date"`
	PromoThreshold  int             `gorm:"column:promo_threshold"`
}

// StoreProductRepository is the data access contract for shelf items.
type StoreProductRepository interface {
	Create(ctx context.Context, sp *model.StoreProduct) error
	FindByUPC(ctx context.Context, upc string) (*model.StoreProduct, error)
	List(ctx context.Context, filter dto.StoreProductFilter) ([]StoreProductRow, error)
	Update(ctx context.Context, sp *model.StoreProduct) (bool, error)
	Delete(ctx context.Context, upc string) (bool, error)
	ExistsUPC(ctx context.Context, upc string) (bool, error)

	// Used inside the checkout transaction — callers must pass the tx instance.
	FindByUPCTx(tx *gorm.DB, upc string) (*model.StoreProduct, error)
	DecrementStockTx(tx *gorm.DB, upc string, qty int) error

	// Promotion sweep support.
	ListActivatable(ctx context.Context, cutoff time.Time) ([]model.StoreProduct, error)
	ListDeactivatable(ctx context.Context, cutoff time.Time) ([]model.StoreProduct, error)
	ApplyPromo(ctx context.Context, upc string, price decimal.Decimal, at time.Time) error
	ClearPromoFlag(ctx context.Context, upc string) error
}

type storeProductRepo struct{ db *gorm.DB }

func NewStoreProductRepository(db *gorm.DB) StoreProductRepository {
	return &storeProductRepo{db: db}
}

func (r *storeProductRepo) Create(ctx context.Context, sp *model.StoreProduct) error {
	return r.db.WithContext(ctx).Create(sp).Error
}

func (r *storeProductRepo) FindByUPC(ctx context.Context, upc string) (*model.StoreProduct, error) {
	var sp model.StoreProduct
	err := r.db.WithContext(ctx).Preload("Product").Preload("Product.Category").
		First(&sp, "upc = ?", upc).Error
	if err != nil {
		return nil, err
	}
	return &sp, nil
}

func (r *storeProductRepo) List(ctx context.Context, filter dto.StoreProductFilter) ([]StoreProductRow, error) {
	q := r.db.WithContext(ctx).
		Table("store_product AS sp").
		Select("sp.upc, sp.upc_prom, sp.id_product, p.product_name, p.characteristics, c.category_name, "+
			"sp.selling_price, sp.products_number, sp.promotional_product, sp.expiry_date, sp.promo_threshold").
		Joins("JOIN product p ON p.id_product = sp.id_product").
		Joins("JOIN category c ON c.category_number = p.category_number")

	if filter.Category != "" {
		q = q.Where("c.category_name = ?", filter.Category)
	}
	if filter.Promotional != nil {
		q = q.Where("sp.promotional_product = ?", *filter.Promotional)
	}
	if filter.Search != "" {
		switch filter.SearchField {
		case "upc":
			q = q.Where("sp.upc = ?", filter.Search)
		case "category":
			q = q.Where("c.category_name ILIKE ?", "%"+filter.Search+"%")
		case "characteristics":
			q = q.Where("p.characteristics ILIKE ?", "%"+filter.Search+"%")
		default:
			q = q.Where("p.product_name ILIKE ?", "%"+filter.Search+"%")
		}
	}

	var rows []StoreProductRow
	err := q.Order(orderBy(storeProductSortCols, filter.SortBy, "name", filter.Order)).Scan(&rows).Error
	return rows, err
}

func (r *storeProductRepo) Update(ctx context.Context, sp *model.StoreProduct) (bool, error) {
	res := r.db.WithContext(ctx).Save(sp)
	return res.RowsAffected > 0, res.Error
}

func (r *storeProductRepo) Delete(ctx context.Context, upc string) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&model.StoreProduct{}, "upc = ?", upc)
	return res.RowsAffected > 0, res.Error
}

func (r *storeProductRepo) ExistsUPC(ctx context.Context, upc string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.StoreProduct{}).Where("upc = ?", upc).Count(&n).Error
	return n > 0, err
}

func (r *storeProductRepo) FindByUPCTx(tx *gorm.DB, upc string) (*model.StoreProduct, error) {
	var sp model.StoreProduct
	err := tx.First(&sp, "upc = ?", upc).Error
	if err != nil {
		return nil, err
	}
	return &sp, nil
}

// DecrementStockTx subtracts qty inside the checkout transaction. The WHERE
// guard keeps quantity from going negative even under concurrent checkouts:
// zero rows affected means another transaction won the stock.
func (r *storeProductRepo) DecrementStockTx(tx *gorm.DB, upc string, qty int) error {
	res := tx.Model(&model.StoreProduct{}).
		Where("upc = ? AND products_number >= ?", upc, qty).
		Update("products_number", gorm.Expr("products_number - ?", qty))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInsufficientStock
	}
	return nil
}

// ListActivatable returns rows the sweep should mark down: close to expiry,
// adequately stocked, not currently flagged, and never discounted before.
func (r *storeProductRepo) ListActivatable(ctx context.Context, cutoff time.Time) ([]model.StoreProduct, error) {
	var list []model.StoreProduct
	err := r.db.WithContext(ctx).
		Where("expiry_date <= ? AND products_number >= promo_threshold AND promotional_product = false AND promo_applied_at IS NULL", cutoff).
		Find(&list).Error
	return list, err
}

// ListDeactivatable returns flagged rows that no longer qualify.
func (r *storeProductRepo) ListDeactivatable(ctx context.Context, cutoff time.Time) ([]model.StoreProduct, error) {
	var list []model.StoreProduct
	err := r.db.WithContext(ctx).
		Where("promotional_product = true AND (expiry_date > ? OR products_number < promo_threshold)", cutoff).
		Find(&list).Error
	return list, err
}

func (r *storeProductRepo) ApplyPromo(ctx context.Context, upc string, price decimal.Decimal, at time.Time) error {
	return r.db.WithContext(ctx).Model(&model.StoreProduct{}).Where("upc = ?", upc).
		Updates(map[string]interface{}{
			"promotional_product": true,
			"selling_price":       price,
			"promo_applied_at":    at,
		}).Error
}

// ClearPromoFlag drops the flag only; the marked-down price stays.
func (r *storeProductRepo) ClearPromoFlag(ctx context.Context, upc string) error {
	return r.db.WithContext(ctx).Model(&model.StoreProduct{}).Where("upc = ?", upc).
		Update("promotional_product", false).Error
}
