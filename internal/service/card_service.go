package service

import (
	"context"
	"errors"

	"github.com/AndreHordd/Zlagoda/internal/dto"
	"github.com/AndreHordd/Zlagoda/internal/model"
	"github.com/AndreHordd/Zlagoda/internal/repository"

	"gorm.io/gorm"
)

type CardService interface {
	Create(ctx context.Context, req dto.CreateCardRequest) (*dto.CardResponse, error)
	Get(ctx context.Context, number string) (*dto.CardResponse, error)
	List(ctx context.Context, filter dto.CardFilter) ([]dto.CardResponse, error)
	Update(ctx context.Context, number string, req dto.UpdateCardRequest) (*dto.CardResponse, error)
	Delete(ctx context.Context, number string) error
}

type cardService struct {
	repo repository.CardRepository
}

func NewCardService(repo repository.CardRepository) CardService {
	return &cardService{repo: repo}
}

func cardToResponse(c *model.CustomerCard) dto.CardResponse {
	return dto.CardResponse{
		Number:     c.Number,
		Surname:    c.Surname,
		Name:       c.Name,
		Patronymic: c.Patronymic,
		Phone:      c.Phone,
		City:       c.City,
		Street:     c.Street,
		ZipCode:    c.ZipCode,
		Percent:    c.Percent,
	}
}

func cardFromRequest(number string, req dto.CreateCardRequest) *model.CustomerCard {
	return &model.CustomerCard{
		Number:     number,
		Surname:    req.Surname,
		Name:       req.Name,
		Patronymic: req.Patronymic,
		Phone:      req.Phone,
		City:       req.City,
		Street:     req.Street,
		ZipCode:    req.ZipCode,
		Percent:    req.Percent,
	}
}

func (s *cardService) Create(ctx context.Context, req dto.CreateCardRequest) (*dto.CardResponse, error) {
	number, err := generateUnique(ctx, func() string { return "C" + randomDigits(12) }, s.repo.ExistsNumber)
	if err != nil {
		return nil, err
	}
	c := cardFromRequest(number, req)
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	resp := cardToResponse(c)
	return &resp, nil
}

func (s *cardService) Get(ctx context.Context, number string) (*dto.CardResponse, error) {
	c, err := s.repo.FindByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	resp := cardToResponse(c)
	return &resp, nil
}

func (s *cardService) List(ctx context.Context, filter dto.CardFilter) ([]dto.CardResponse, error) {
	list, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CardResponse, 0, len(list))
	for i := range list {
		out = append(out, cardToResponse(&list[i]))
	}
	return out, nil
}

func (s *cardService) Update(ctx context.Context, number string, req dto.UpdateCardRequest) (*dto.CardResponse, error) {
	if _, err := s.repo.FindByNumber(ctx, number); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	c := cardFromRequest(number, req)
	affected, err := s.repo.Update(ctx, c)
	if err != nil {
		return nil, err
	}
	if !affected {
		return nil, ErrNotFound
	}
	resp := cardToResponse(c)
	return &resp, nil
}

// Delete keeps historical receipts intact: receipt.card_number is nulled by
// the FK, so the card row itself can always go.
func (s *cardService) Delete(ctx context.Context, number string) error {
	affected, err := s.repo.Delete(ctx, number)
	if err != nil {
		return err
	}
	if !affected {
		return ErrNotFound
	}
	return nil
}
