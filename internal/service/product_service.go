package service

import (
	"context"
	"errors"

	"github.com/AndreHordd/Zlagoda/internal/dto"
	"github.com/AndreHordd/Zlagoda/internal/model"
	"github.com/AndreHordd/Zlagoda/internal/repository"

	"gorm.io/gorm"
)

type ProductService interface {
	Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error)
	Get(ctx context.Context, id int) (*dto.ProductResponse, error)
	List(ctx context.Context, filter dto.ProductFilter) ([]dto.ProductResponse, error)
	Update(ctx context.Context, id int, req dto.UpdateProductRequest) (*dto.ProductResponse, error)
	Delete(ctx context.Context, id int) error
}

type productService struct {
	repo repository.ProductRepository
}

func NewProductService(repo repository.ProductRepository) ProductService {
	return &productService{repo: repo}
}

func productToResponse(p *model.Product) dto.ProductResponse {
	resp := dto.ProductResponse{
		ID:              p.ID,
		CategoryNumber:  p.CategoryNumber,
		Name:            p.Name,
		Characteristics: p.Characteristics,
		Manufacturer:    p.Manufacturer,
	}
	if p.Category != nil {
		resp.CategoryName = p.Category.Name
	}
	return resp
}

func (s *productService) Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	p := &model.Product{
		CategoryNumber:  req.CategoryNumber,
		Name:            req.Name,
		Characteristics: req.Characteristics,
		Manufacturer:    req.Manufacturer,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.Get(ctx, p.ID)
}

func (s *productService) Get(ctx context.Context, id int) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	resp := productToResponse(p)
	return &resp, nil
}

func (s *productService) List(ctx context.Context, filter dto.ProductFilter) ([]dto.ProductResponse, error) {
	rows, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ProductResponse{
			ID:              r.ID,
			CategoryNumber:  r.CategoryNumber,
			CategoryName:    r.CategoryName,
			Name:            r.Name,
			Characteristics: r.Characteristics,
			Manufacturer:    r.Manufacturer,
		})
	}
	return out, nil
}

func (s *productService) Update(ctx context.Context, id int, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	p := &model.Product{
		ID:              id,
		CategoryNumber:  req.CategoryNumber,
		Name:            req.Name,
		Characteristics: req.Characteristics,
		Manufacturer:    req.Manufacturer,
	}
	affected, err := s.repo.Update(ctx, p)
	if err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !affected {
		return nil, ErrNotFound
	}
	return s.Get(ctx, id)
}

// Delete refuses to remove a catalog entry that still has shelf items.
func (s *productService) Delete(ctx context.Context, id int) error {
	n, err := s.repo.CountStoreProducts(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrReferenced
	}
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
