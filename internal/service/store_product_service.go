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

type StoreProductService interface {
	Create(ctx context.Context, req dto.CreateStoreProductRequest) (*dto.StoreProductResponse, error)
	Get(ctx context.Context, upc string) (*dto.StoreProductResponse, error)
	List(ctx context.Context, filter dto.StoreProductFilter) ([]dto.StoreProductResponse, error)
	Update(ctx context.Context, upc string, req dto.UpdateStoreProductRequest) (*dto.StoreProductResponse, error)
	Delete(ctx context.Context, upc string) error
	PriceCheck(ctx context.Context, upc string) (*dto.PriceCheckResponse, error)
}

type storeProductService struct {
	repo repository.StoreProductRepository
}

func NewStoreProductService(repo repository.StoreProductRepository) StoreProductService {
	return &storeProductService{repo: repo}
}

func storeProductToResponse(sp *model.StoreProduct) dto.StoreProductResponse {
	resp := dto.StoreProductResponse{
		UPC:            sp.UPC,
		PromoUPC:       sp.PromoUPC,
		ProductID:      sp.ProductID,
		Price:          sp.Price,
		Quantity:       sp.Quantity,
		Promotional:    sp.Promotional,
		ExpiryDate:     sp.ExpiryDate.Format(dateLayout),
		PromoThreshold: sp.PromoThreshold,
	}
	if sp.Product != nil {
		resp.ProductID = sp.Product.ID
		resp.Name = sp.Product.Name
		resp.Characteristics = sp.Product.Characteristics
		if sp.Product.Category != nil {
			resp.Category = sp.Product.Category.Name
		}
	}
	return resp
}

func (s *storeProductService) Create(ctx context.Context, req dto.CreateStoreProductRequest) (*dto.StoreProductResponse, error) {
	upc := req.UPC
	if upc == "" {
		var err error
		upc, err = generateUnique(ctx, func() string { return randomDigits(12) }, s.repo.ExistsUPC)
		if err != nil {
			return nil, err
		}
	} else {
		taken, err := s.repo.ExistsUPC(ctx, upc)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrConflict
		}
	}
	expiry, err := time.Parse(dateLayout, req.ExpiryDate)
	if err != nil {
		return nil, err
	}
	sp := &model.StoreProduct{
		UPC:            upc,
		PromoUPC:       req.PromoUPC,
		ProductID:      req.ProductID,
		Price:          req.Price,
		Quantity:       req.Quantity,
		Promotional:    req.Promotional,
		ExpiryDate:     expiry,
		PromoThreshold: req.PromoThreshold,
	}
	if err := s.repo.Create(ctx, sp); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.Get(ctx, upc)
}

func (s *storeProductService) Get(ctx context.Context, upc string) (*dto.StoreProductResponse, error) {
	sp, err := s.repo.FindByUPC(ctx, upc)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	resp := storeProductToResponse(sp)
	return &resp, nil
}

func (s *storeProductService) List(ctx context.Context, filter dto.StoreProductFilter) ([]dto.StoreProductResponse, error) {
	rows, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StoreProductResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.StoreProductResponse{
			UPC:             r.UPC,
			PromoUPC:        r.PromoUPC,
			ProductID:       r.ProductID,
			Name:            r.Name,
			Characteristics: r.Characteristics,
			Category:        r.CategoryName,
			Price:           r.Price,
			Quantity:        r.Quantity,
			Promotional:     r.Promotional,
			ExpiryDate:      r.ExpiryDate.Format(dateLayout),
			PromoThreshold:  r.PromoThreshold,
		})
	}
	return out, nil
}

// Update replaces every editable column. PromoAppliedAt is preserved so a
// manual edit cannot re-arm the one-time markdown.
func (s *storeProductService) Update(ctx context.Context, upc string, req dto.UpdateStoreProductRequest) (*dto.StoreProductResponse, error) {
	cur, err := s.repo.FindByUPC(ctx, upc)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	expiry, err := time.Parse(dateLayout, req.ExpiryDate)
	if err != nil {
		return nil, err
	}
	sp := &model.StoreProduct{
		UPC:            upc,
		PromoUPC:       req.PromoUPC,
		ProductID:      req.ProductID,
		Price:          req.Price,
		Quantity:       req.Quantity,
		Promotional:    req.Promotional,
		ExpiryDate:     expiry,
		PromoThreshold: req.PromoThreshold,
		PromoAppliedAt: cur.PromoAppliedAt,
	}
	affected, err := s.repo.Update(ctx, sp)
	if err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !affected {
		return nil, ErrNotFound
	}
	return s.Get(ctx, upc)
}

// Delete fails with a referential conflict once the item appears on any sale.
func (s *storeProductService) Delete(ctx context.Context, upc string) error {
	affected, err := s.repo.Delete(ctx, upc)
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

// PriceCheck is the public lookup behind the cached price endpoint.
func (s *storeProductService) PriceCheck(ctx context.Context, upc string) (*dto.PriceCheckResponse, error) {
	sp, err := s.repo.FindByUPC(ctx, upc)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	resp := &dto.PriceCheckResponse{
		UPC:         sp.UPC,
		Price:       sp.Price,
		Quantity:    sp.Quantity,
		Promotional: sp.Promotional,
	}
	if sp.Product != nil {
		resp.Name = sp.Product.Name
	}
	return resp, nil
}
