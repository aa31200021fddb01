package repository

import (
	"context"

	"github.com/AndreHordd/Zlagoda/internal/dto"
	"github.com/AndreHordd/Zlagoda/internal/model"

	"gorm.io/gorm"
)

// employeeSortCols maps list sort keys to fixed column identifiers.
var employeeSortCols = map[string]string{
	"id":         "id_employee",
	"surname":    "empl_surname",
	"name":       "empl_name",
	"patronymic": "empl_patronymic",
	"role":       "empl_role",
	"salary":     "salary",
	"dob":        "date_of_birth",
	"start":      "date_of_start",
	"phone":      "phone_number",
	"city":       "city",
	"street":     "street",
	"zip":        "zip_code",
}

// EmployeeRepository is the data access contract for store workers.
type EmployeeRepository interface {
	Create(ctx context.Context, e *model.Employee) error
	FindByID(ctx context.Context, id string) (*model.Employee, error)
	List(ctx context.Context, filter dto.EmployeeFilter) ([]model.Employee, error)
	Update(ctx context.Context, e *model.Employee) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	ExistsID(ctx context.Context, id string) (bool, error)
}

type employeeRepo struct {
	db       *gorm.DB
	accounts AccountRepository
}

func NewEmployeeRepository(db *gorm.DB, accounts AccountRepository) EmployeeRepository {
	return &employeeRepo{db: db, accounts: accounts}
}

func (r *employeeRepo) Create(ctx context.Context, e *model.Employee) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *employeeRepo) FindByID(ctx context.Context, id string) (*model.Employee, error) {
	var e model.Employee
	err := r.db.WithContext(ctx).First(&e, "id_employee = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *employeeRepo) List(ctx context.Context, filter dto.EmployeeFilter) ([]model.Employee, error) {
	q := r.db.WithContext(ctx).Model(&model.Employee{})

	if filter.Role == model.RoleManager || filter.Role == model.RoleCashier {
		q = q.Where("empl_role = ?", filter.Role)
	}
	if filter.Search != "" {
		q = q.Where("empl_surname ILIKE ?", "%"+filter.Search+"%")
	}

	var list []model.Employee
	err := q.Order(orderBy(employeeSortCols, filter.SortBy, "surname", filter.Order)).Find(&list).Error
	return list, err
}

func (r *employeeRepo) Update(ctx context.Context, e *model.Employee) (bool, error) {
	res := r.db.WithContext(ctx).Save(e)
	return res.RowsAffected > 0, res.Error
}

// Delete removes the employee and any linked account in one transaction.
// Employees referenced by receipts surface gorm.ErrForeignKeyViolated.
func (r *employeeRepo) Delete(ctx context.Context, id string) (bool, error) {
	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.accounts.DeleteByEmployeeTx(tx, id); err != nil {
			return err
		}
		res := tx.Delete(&model.Employee{}, "id_employee = ?", id)
		affected = res.RowsAffected
		return res.Error
	})
	return affected > 0, err
}

func (r *employeeRepo) ExistsID(ctx context.Context, id string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Employee{}).Where("id_employee = ?", id).Count(&n).Error
	return n > 0, err
}
