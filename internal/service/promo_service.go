package service

import (
	"context"
	"time"

	"github.com/AndreHordd/Zlagoda/internal/repository"

	"github.com/rs/zerolog/log"
)

// SweepResult reports what one promotion sweep changed.
type SweepResult struct {
	Activated   int `json:"activated"`
	Deactivated int `json:"deactivated"`
}

type PromoService interface {
	// RunSweep marks down shelf items nearing expiry and clears the flag on
	// items that no longer qualify. The markdown is applied at most once per
	// item; clearing the flag never restores the price.
	RunSweep(ctx context.Context, now time.Time) (*SweepResult, error)
}

type promoService struct {
	stock      repository.StoreProductRepository
	windowDays int
}

func NewPromoService(stock repository.StoreProductRepository, windowDays int) PromoService {
	return &promoService{stock: stock, windowDays: windowDays}
}

func (s *promoService) RunSweep(ctx context.Context, now time.Time) (*SweepResult, error) {
	cutoff := now.AddDate(0, 0, s.windowDays)
	res := &SweepResult{}

	activatable, err := s.stock.ListActivatable(ctx, cutoff)
	if err != nil {
		return nil, err
	}
	for i := range activatable {
		sp := &activatable[i]
		if err := s.stock.ApplyPromo(ctx, sp.UPC, promoPrice(sp.Price), now); err != nil {
			return res, err
		}
		log.Info().Str("upc", sp.UPC).
			Str("old_price", sp.Price.String()).
			Str("new_price", promoPrice(sp.Price).String()).
			Msg("promotion activated")
		res.Activated++
	}

	deactivatable, err := s.stock.ListDeactivatable(ctx, cutoff)
	if err != nil {
		return res, err
	}
	for i := range deactivatable {
		sp := &deactivatable[i]
		if err := s.stock.ClearPromoFlag(ctx, sp.UPC); err != nil {
			return res, err
		}
		log.Info().Str("upc", sp.UPC).Msg("promotion deactivated")
		res.Deactivated++
	}

	return res, nil
}
