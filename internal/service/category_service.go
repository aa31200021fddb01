package service

import (
	"context"
	"errors"

	"github.com/AndreHordd/Zlagoda/internal/dto"
	"github.com/AndreHordd/Zlagoda/internal/model"
	"github.com/AndreHordd/Zlagoda/internal/repository"

	"gorm.io/gorm"
)

type CategoryService interface {
	Create(ctx context.Context, req dto.CreateCategoryRequest) (*dto.CategoryResponse, error)
	Get(ctx context.Context, number int) (*dto.CategoryResponse, error)
	List(ctx context.Context, filter dto.CategoryFilter) ([]dto.CategoryResponse, error)
	Update(ctx context.Context, number int, req dto.UpdateCategoryRequest) (*dto.CategoryResponse, error)
	Delete(ctx context.Context, number int) error
}

type categoryService struct {
	repo repository.CategoryRepository
}

func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

func categoryToResponse(c *model.Category) dto.CategoryResponse {
	return dto.CategoryResponse{Number: c.Number, Name: c.Name}
}

func (s *categoryService) Create(ctx context.Context, req dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	c := &model.Category{Name: req.Name}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	resp := categoryToResponse(c)
	return &resp, nil
}

func (s *categoryService) Get(ctx context.Context, number int) (*dto.CategoryResponse, error) {
	c, err := s.repo.FindByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	resp := categoryToResponse(c)
	return &resp, nil
}

func (s *categoryService) List(ctx context.Context, filter dto.CategoryFilter) ([]dto.CategoryResponse, error) {
	list, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(list))
	for i := range list {
		out = append(out, categoryToResponse(&list[i]))
	}
	return out, nil
}

func (s *categoryService) Update(ctx context.Context, number int, req dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	c, err := s.repo.FindByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	c.Name = req.Name
	affected, err := s.repo.Update(ctx, c)
	if err != nil {
		return nil, err
	}
	if !affected {
		return nil, ErrNotFound
	}
	resp := categoryToResponse(c)
	return &resp, nil
}

func (s *categoryService) Delete(ctx context.Context, number int) error {
	n, err := s.repo.CountProducts(ctx, number)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrReferenced
	}
	affected, err := s.repo.Delete(ctx, number)
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
