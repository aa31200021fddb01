package service

import (
	"context"
	"errors"
	"time"

	"github.com/AndreHordd/Zlagoda/internal/dto"
	"github.com/AndreHordd/Zlagoda/internal/model"
	"github.com/AndreHordd/Zlagoda/internal/repository"

	"gorm.io/gorm"
)

type EmployeeService interface {
	Create(ctx context.Context, req dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error)
	Get(ctx context.Context, id string) (*dto.EmployeeResponse, error)
	List(ctx context.Context, filter dto.EmployeeFilter) ([]dto.EmployeeResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}

type employeeService struct {
	repo repository.EmployeeRepository
}

func NewEmployeeService(repo repository.EmployeeRepository) EmployeeService {
	return &employeeService{repo: repo}
}

const dateLayout = "2006-01-02"

func employeeToResponse(e *model.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		ID:          e.ID,
		Surname:     e.Surname,
		Name:        e.Name,
		Patronymic:  e.Patronymic,
		Role:        e.Role,
		Salary:      e.Salary,
		DateOfBirth: e.DateOfBirth.Format(dateLayout),
		DateOfStart: e.DateOfStart.Format(dateLayout),
		Phone:       e.Phone,
		City:        e.City,
		Street:      e.Street,
		ZipCode:     e.ZipCode,
	}
}

func employeeFromRequest(id string, req dto.CreateEmployeeRequest) (*model.Employee, error) {
	dob, err := time.Parse(dateLayout, req.DateOfBirth)
	if err != nil {
		return nil, err
	}
	start, err := time.Parse(dateLayout, req.DateOfStart)
	if err != nil {
		return nil, err
	}
	return &model.Employee{
		ID:          id,
		Surname:     req.Surname,
		Name:        req.Name,
		Patronymic:  req.Patronymic,
		Role:        req.Role,
		Salary:      req.Salary,
		DateOfBirth: dob,
		DateOfStart: start,
		Phone:       req.Phone,
		City:        req.City,
		Street:      req.Street,
		ZipCode:     req.ZipCode,
	}, nil
}

func (s *employeeService) Create(ctx context.Context, req dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	id, err := generateUnique(ctx, newEntityID, s.repo.ExistsID)
	if err != nil {
		return nil, err
	}
	e, err := employeeFromRequest(id, req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	resp := employeeToResponse(e)
	return &resp, nil
}

func (s *employeeService) Get(ctx context.Context, id string) (*dto.EmployeeResponse, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	resp := employeeToResponse(e)
	return &resp, nil
}

func (s *employeeService) List(ctx context.Context, filter dto.EmployeeFilter) ([]dto.EmployeeResponse, error) {
	list, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmployeeResponse, 0, len(list))
	for i := range list {
		out = append(out, employeeToResponse(&list[i]))
	}
	return out, nil
}

// Update is a full-row replace keyed by id.
func (s *employeeService) Update(ctx context.Context, id string, req dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	e, err := employeeFromRequest(id, req)
	if err != nil {
		return nil, err
	}
	affected, err := s.repo.Update(ctx, e)
	if err != nil {
		return nil, err
	}
	if !affected {
		return nil, ErrNotFound
	}
	resp := employeeToResponse(e)
	return &resp, nil
}

// Delete removes the employee and its linked account. Employees that issued
// receipts are protected by the FK and surface a referential conflict.
func (s *employeeService) Delete(ctx context.Context, id string) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return ErrReferenced
		}
		return err
	}
	if !affected {
		return ErrNotFound
	}
	return nil
}
