package service

import (
	"context"
	"time"

	"github.com/AndreHordd/Zlagoda/internal/dto"
	"github.com/AndreHordd/Zlagoda/internal/model"
	"github.com/AndreHordd/Zlagoda/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ── In-memory stubs ──────────────────────────────────────────────────────────
// The transactional services run their callbacks with a nil *gorm.DB when the
// repository's DB() returns nil, so these stubs never touch a database.

type stubStockRepo struct {
	items map[string]*model.StoreProduct

	decremented map[string]int
	applied     map[string]decimal.Decimal
	cleared     []string
}

func newStubStockRepo(items ...*model.StoreProduct) *stubStockRepo {
	r := &stubStockRepo{
		items:       make(map[string]*model.StoreProduct),
		decremented: make(map[string]int),
		applied:     make(map[string]decimal.Decimal),
	}
	for _, sp := range items {
		r.items[sp.UPC] = sp
	}
	return r
}

func (r *stubStockRepo) Create(_ context.Context, sp *model.StoreProduct) error {
	r.items[sp.UPC] = sp
	return nil
}

func (r *stubStockRepo) FindByUPC(_ context.Context, upc string) (*model.StoreProduct, error) {
	sp, ok := r.items[upc]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return sp, nil
}

func (r *stubStockRepo) List(_ context.Context, _ dto.StoreProductFilter) ([]repository.StoreProductRow, error) {
	return nil, nil
}

func (r *stubStockRepo) Update(_ context.Context, sp *model.StoreProduct) (bool, error) {
	_, ok := r.items[sp.UPC]
	r.items[sp.UPC] = sp
	return ok, nil
}

func (r *stubStockRepo) Delete(_ context.Context, upc string) (bool, error) {
	_, ok := r.items[upc]
	delete(r.items, upc)
	return ok, nil
}

func (r *stubStockRepo) ExistsUPC(_ context.Context, upc string) (bool, error) {
	_, ok := r.items[upc]
	return ok, nil
}

func (r *stubStockRepo) FindByUPCTx(_ *gorm.DB, upc string) (*model.StoreProduct, error) {
	return r.FindByUPC(context.Background(), upc)
}

func (r *stubStockRepo) DecrementStockTx(_ *gorm.DB, upc string, qty int) error {
	sp, ok := r.items[upc]
	if !ok || sp.Quantity < qty {
		return repository.ErrInsufficientStock
	}
	sp.Quantity -= qty
	r.decremented[upc] += qty
	return nil
}

func (r *stubStockRepo) ListActivatable(_ context.Context, cutoff time.Time) ([]model.StoreProduct, error) {
	var out []model.StoreProduct
	for _, sp := range r.items {
		if !sp.ExpiryDate.After(cutoff) && sp.Quantity >= sp.PromoThreshold &&
			!sp.Promotional && sp.PromoAppliedAt == nil {
			out = append(out, *sp)
		}
	}
	return out, nil
}

func (r *stubStockRepo) ListDeactivatable(_ context.Context, cutoff time.Time) ([]model.StoreProduct, error) {
	var out []model.StoreProduct
	for _, sp := range r.items {
		if sp.Promotional && (sp.ExpiryDate.After(cutoff) || sp.Quantity < sp.PromoThreshold) {
			out = append(out, *sp)
		}
	}
	return out, nil
}

func (r *stubStockRepo) ApplyPromo(_ context.Context, upc string, price decimal.Decimal, at time.Time) error {
	sp := r.items[upc]
	sp.Promotional = true
	sp.Price = price
	sp.PromoAppliedAt = &at
	r.applied[upc] = price
	return nil
}

func (r *stubStockRepo) ClearPromoFlag(_ context.Context, upc string) error {
	r.items[upc].Promotional = false
	r.cleared = append(r.cleared, upc)
	return nil
}

type stubReceiptRepo struct {
	receipts map[string]*model.Receipt
}

func newStubReceiptRepo() *stubReceiptRepo {
	return &stubReceiptRepo{receipts: make(map[string]*model.Receipt)}
}

func (r *stubReceiptRepo) CreateTx(_ *gorm.DB, rec *model.Receipt) error {
	r.receipts[rec.Number] = rec
	return nil
}

func (r *stubReceiptRepo) FindByNumber(_ context.Context, number string) (*model.Receipt, error) {
	rec, ok := r.receipts[number]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return rec, nil
}

func (r *stubReceiptRepo) List(_ context.Context, _ repository.ReceiptQuery) ([]repository.ReceiptListRow, error) {
	return nil, nil
}

func (r *stubReceiptRepo) Delete(_ context.Context, number string) (bool, error) {
	_, ok := r.receipts[number]
	delete(r.receipts, number)
	return ok, nil
}

func (r *stubReceiptRepo) DeleteSale(_ context.Context, number, upc string) (bool, error) {
	rec, ok := r.receipts[number]
	if !ok {
		return false, nil
	}
	for i, line := range rec.Items {
		if line.UPC == upc {
			rec.Items = append(rec.Items[:i], rec.Items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *stubReceiptRepo) ExistsNumber(_ context.Context, number string) (bool, error) {
	_, ok := r.receipts[number]
	return ok, nil
}

func (r *stubReceiptRepo) TotalForPeriod(_ context.Context, employeeID string, _, _ *time.Time) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, rec := range r.receipts {
		if employeeID == "" || rec.EmployeeID == employeeID {
			total = total.Add(rec.Total)
		}
	}
	return total, nil
}

func (r *stubReceiptRepo) UnitsSold(_ context.Context, upc string, _, _ *time.Time) (int, error) {
	units := 0
	for _, rec := range r.receipts {
		for _, line := range rec.Items {
			if line.UPC == upc {
				units += line.Quantity
			}
		}
	}
	return units, nil
}

func (r *stubReceiptRepo) DB() *gorm.DB { return nil }

type stubCardRepo struct {
	cards map[string]*model.CustomerCard
}

func newStubCardRepo(cards ...*model.CustomerCard) *stubCardRepo {
	r := &stubCardRepo{cards: make(map[string]*model.CustomerCard)}
	for _, c := range cards {
		r.cards[c.Number] = c
	}
	return r
}

func (r *stubCardRepo) Create(_ context.Context, c *model.CustomerCard) error {
	r.cards[c.Number] = c
	return nil
}

func (r *stubCardRepo) FindByNumber(_ context.Context, number string) (*model.CustomerCard, error) {
	c, ok := r.cards[number]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubCardRepo) List(_ context.Context, _ dto.CardFilter) ([]model.CustomerCard, error) {
	return nil, nil
}

func (r *stubCardRepo) Update(_ context.Context, c *model.CustomerCard) (bool, error) {
	_, ok := r.cards[c.Number]
	r.cards[c.Number] = c
	return ok, nil
}

func (r *stubCardRepo) Delete(_ context.Context, number string) (bool, error) {
	_, ok := r.cards[number]
	delete(r.cards, number)
	return ok, nil
}

func (r *stubCardRepo) ExistsNumber(_ context.Context, number string) (bool, error) {
	_, ok := r.cards[number]
	return ok, nil
}
