package service

import (
	"context"
	"errors"

	"github.com/AndreHordd/Zlagoda/internal/dto"
	"github.com/AndreHordd/Zlagoda/internal/repository"
)

// ErrUnknownTable is returned by Preview for names outside the allow-list.
var ErrUnknownTable = errors.New("unknown table")

const previewLimit = 100

// previewTables is the allow-list for the raw table preview endpoint. Account
// is deliberately absent: password hashes never leave the database.
var previewTables = map[string]bool{
	"employee":      true,
	"category":      true,
	"product":       true,
	"store_product": true,
	"customer_card": true,
	"receipt":       true,
	"sale":          true,
}

type ReportService interface {
	CategoriesByCashier(ctx context.Context) ([]dto.CashierCategoriesRow, error)
	CategoryPriceStats(ctx context.Context, minUnits int) ([]dto.CategoryPriceStatsRow, error)
	CashiersEveryReceiptHasCategory(ctx context.Context, categoryName string) ([]dto.CashierRow, error)
	CategoriesWithoutPromos(ctx context.Context, bigStock int) ([]dto.CategoryNameRow, error)
	Preview(ctx context.Context, table string) (*dto.PreviewResponse, error)
}

type reportService struct {
	repo repository.ReportRepository
}

func NewReportService(repo repository.ReportRepository) ReportService {
	return &reportService{repo: repo}
}

func (s *reportService) CategoriesByCashier(ctx context.Context) ([]dto.CashierCategoriesRow, error) {
	return s.repo.CategoriesByCashier(ctx)
}

func (s *reportService) CategoryPriceStats(ctx context.Context, minUnits int) ([]dto.CategoryPriceStatsRow, error) {
	return s.repo.CategoryPriceStats(ctx, minUnits)
}

func (s *reportService) CashiersEveryReceiptHasCategory(ctx context.Context, categoryName string) ([]dto.CashierRow, error) {
	return s.repo.CashiersEveryReceiptHasCategory(ctx, categoryName)
}

func (s *reportService) CategoriesWithoutPromos(ctx context.Context, bigStock int) ([]dto.CategoryNameRow, error) {
	return s.repo.CategoriesWithoutPromos(ctx, bigStock)
}

func (s *reportService) Preview(ctx context.Context, table string) (*dto.PreviewResponse, error) {
	if !previewTables[table] {
		return nil, ErrUnknownTable
	}
	rows, err := s.repo.Preview(ctx, table, previewLimit)
	if err != nil {
		return nil, err
	}
	return &dto.PreviewResponse{Table: table, Rows: rows}, nil
}
