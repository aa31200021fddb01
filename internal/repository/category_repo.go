package repository

import (
	"context"

	"github.com/AndreHordd/Zlagoda/internal/dto"
	"github.com/AndreHordd/Zlagoda/internal/model"

	"gorm.io/gorm"
)

var categorySortCols = map[string]string{
	"id":   "category_number",
	"name": "category_name",
}

// CategoryRepository is the data access contract for product categories.
type CategoryRepository interface {
	Create(ctx context.Context, c *model.Category) error
	FindByNumber(ctx context.Context, number int) (*model.Category, error)
	List(ctx context.Context, filter dto.CategoryFilter) ([]model.Category, error)
	Update(ctx context.Context, c *model.Category) (bool, error)
	Delete(ctx context.Context, number int) (bool, error)
	CountProducts(ctx context.Context, number int) (int64, error)
}

type categoryRepo struct{ db *gorm.DB }

func NewCategoryRepository(db *gorm.DB) CategoryRepository { return &categoryRepo{db: db} }

func (r *categoryRepo) Create(ctx context.Context, c *model.Category) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *categoryRepo) FindByNumber(ctx context.Context, number int) (*model.Category, error) {
	var c model.Category
	err := r.db.WithContext(ctx).First(&c, "category_number = ?", number).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoryRepo) List(ctx context.Context, filter dto.CategoryFilter) ([]model.Category, error) {
	var list []model.Category
	err := r.db.WithContext(ctx).
		Order(orderBy(categorySortCols, filter.SortBy, "name", filter.Order)).
		Find(&list).Error
	return list, err
}

func (r *categoryRepo) Update(ctx context.Context, c *model.Category) (bool, error) {
	res := r.db.WithContext(ctx).Save(c)
	return res.RowsAffected > 0, res.Error
}

func (r *categoryRepo) Delete(ctx context.Context, number int) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&model.Category{}, "category_number = ?", number)
	return res.RowsAffected > 0, res.Error
}

// CountProducts reports how many catalog products still reference the
// category. A non-zero count blocks deletion.
func (r *categoryRepo) CountProducts(ctx context.Context, number int) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Product{}).Where("category_number = ?", number).Count(&n).Error
	return n, err
}
