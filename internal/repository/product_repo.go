package repository

import (
	"context"

	"github.com/AndreHordd/Zlagoda/internal/dto"
	"github.com/AndreHordd/Zlagoda/internal/model"

	"gorm.io/gorm"
)

var productSortCols = map[string]string{
	"id":              "p.id_product",
	"name":            "p.product_name",
	"characteristics": "p.characteristics",
	"manufacturer":    "p.manufacturer",
	"category":        "c.category_name",
}

// ProductRow is a catalog entry joined with its category name.
type ProductRow struct {
	ID              int     `gorm:"column:id_product"`
	CategoryNumber  int     `gorm:"column:category_number"`
	CategoryName    string  `gorm:"column:category_name"`
	Name            string  `gorm:"column:product_name"`
	Characteristics string  `gorm:"column:characteristics"`
	Manufacturer    *string `gorm:"column:manufacturer"`
}

// ProductRepository is the data access contract for catalog products.
type ProductRepository interface {
	Create(ctx context.Context, p *model.Product) error
	FindByID(ctx context.Context, id int) (*model.Product, error)
	List(ctx context.Context, filter dto.ProductFilter) ([]ProductRow, error)
	Update(ctx context.Context, p *model.Product) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
	CountStoreProducts(ctx context.Context, id int) (int64, error)
}

type productRepo struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) ProductRepository { return &productRepo{db: db} }

func (r *productRepo) Create(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productRepo) FindByID(ctx context.Context, id int) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).Preload("Category").First(&p, "id_product = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) List(ctx context.Context, filter dto.ProductFilter) ([]ProductRow, error) {
	q := r.db.WithContext(ctx).
		Table("product AS p").
		Select("p.id_product, p.category_number, c.category_name, p.product_name, p.characteristics, p.manufacturer").
		Joins("JOIN category c ON c.category_number = p.category_number")

	if filter.Category != "" {
		q = q.Where("c.category_name = ?", filter.Category)
	}
	if filter.Search != "" {
		q = q.Where("p.product_name ILIKE ?", "%"+filter.Search+"%")
	}

	var rows []ProductRow
	err := q.Order(orderBy(productSortCols, filter.SortBy, "name", filter.Order)).Scan(&rows).Error
	return rows, err
}

func (r *productRepo) Update(ctx context.Context, p *model.Product) (bool, error) {
	res := r.db.WithContext(ctx).Save(p)
	return res.RowsAffected > 0, res.Error
}

func (r *productRepo) Delete(ctx context.Context, id int) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&model.Product{}, "id_product = ?", id)
	return res.RowsAffected > 0, res.Error
}

// CountStoreProducts reports how many shelf items still reference the catalog
// entry. A non-zero count blocks deletion.
func (r *productRepo) CountStoreProducts(ctx context.Context, id int) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.StoreProduct{}).Where("id_product = ?", id).Count(&n).Error
	return n, err
}
