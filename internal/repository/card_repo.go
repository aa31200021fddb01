package repository

import (
	"context"

	"github.com/AndreHordd/Zlagoda/internal/dto"
	"github.com/AndreHordd/Zlagoda/internal/model"

	"gorm.io/gorm"
)

var cardSortCols = map[string]string{
	"number":     "card_number",
	"surname":    "cust_surname",
	"name":       "cust_name",
	"patronymic": "cust_patronymic",
	"phone":      "phone_number",
	"city":       "city",
	"street":     "street",
	"zip":        "zip_code",
	"percent":    "percent",
}

// CardRepository is the data access contract for loyalty cards.
type CardRepository interface {
	Create(ctx context.Context, c *model.CustomerCard) error
	FindByNumber(ctx context.Context, number string) (*model.CustomerCard, error)
	List(ctx context.Context, filter dto.CardFilter) ([]model.CustomerCard, error)
	Update(ctx context.Context, c *model.CustomerCard) (bool, error)
	Delete(ctx context.Context, number string) (bool, error)
	ExistsNumber(ctx context.Context, number string) (bool, error)
}

type cardRepo struct{ db *gorm.DB }

func NewCardRepository(db *gorm.DB) CardRepository { return &cardRepo{db: db} }

func (r *cardRepo) Create(ctx context.Context, c *model.CustomerCard) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *cardRepo) FindByNumber(ctx context.Context, number string) (*model.CustomerCard, error) {
	var c model.CustomerCard
	err := r.db.WithContext(ctx).First(&c, "card_number = ?", number).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *cardRepo) List(ctx context.Context, filter dto.CardFilter) ([]model.CustomerCard, error) {
	q := r.db.WithContext(ctx).Model(&model.CustomerCard{})

	if filter.Search != "" {
		q = q.Where("cust_surname ILIKE ?", "%"+filter.Search+"%")
	}
	if filter.MinPercent != nil {
		q = q.Where("percent >= ?", *filter.MinPercent)
	}
	if filter.MaxPercent != nil {
		q = q.Where("percent <= ?", *filter.MaxPercent)
	}

	var list []model.CustomerCard
	err := q.Order(orderBy(cardSortCols, filter.SortBy, "surname", filter.Order)).Find(&list).Error
	return list, err
}

func (r *cardRepo) Update(ctx context.Context, c *model.CustomerCard) (bool, error) {
	res := r.db.WithContext(ctx).Save(c)
	return res.RowsAffected > 0, res.Error
}

func (r *cardRepo) Delete(ctx context.Context, number string) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&model.CustomerCard{}, "card_number = ?", number)
	return res.RowsAffected > 0, res.Error
}

func (r *cardRepo) ExistsNumber(ctx context.Context, number string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.CustomerCard{}).Where("card_number = ?", number).Count(&n).Error
	return n > 0, err
}
