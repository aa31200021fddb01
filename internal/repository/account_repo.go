package repository

import (
	"context"

	"github.com/AndreHordd/Zlagoda/internal/model"

	"gorm.io/gorm"
)

// AccountRepository is the data access contract for login accounts.
type AccountRepository interface {
	Create(ctx context.Context, a *model.Account) error
	FindByUsername(ctx context.Context, username string) (*model.Account, error)
	FindByID(ctx context.Context, id uint) (*model.Account, error)

	// DeleteByEmployeeTx removes any account linked to an employee inside the
	// caller's transaction (employee deletion cascades to its account).
	DeleteByEmployeeTx(tx *gorm.DB, employeeID string) error
}

type accountRepo struct{ db *gorm.DB }

func NewAccountRepository(db *gorm.DB) AccountRepository { return &accountRepo{db: db} }

func (r *accountRepo) Create(ctx context.Context, a *model.Account) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *accountRepo) FindByUsername(ctx context.Context, username string) (*model.Account, error) {
	var a model.Account
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *accountRepo) FindByID(ctx context.Context, id uint) (*model.Account, error) {
	var a model.Account
	err := r.db.WithContext(ctx).First(&a, id).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *accountRepo) DeleteByEmployeeTx(tx *gorm.DB, employeeID string) error {
	return tx.Where("employee_id = ?", employeeID).Delete(&model.Account{}).Error
}
