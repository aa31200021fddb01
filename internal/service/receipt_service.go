package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AndreHordd/Zlagoda/internal/dto"
	"github.com/AndreHordd/Zlagoda/internal/model"
	"github.com/AndreHordd/Zlagoda/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const printDateLayout = "2006-01-02 15:04:05"

type ReceiptService interface {
	// Checkout validates and persists a sale atomically: either the receipt,
	// all its lines, and every stock decrement commit together, or nothing
	// is written and every problem is reported at once.
	Checkout(ctx context.Context, employeeID string, req dto.CheckoutRequest) (*dto.ReceiptResponse, error)

	Get(ctx context.Context, number string) (*dto.ReceiptResponse, error)
	List(ctx context.Context, filter dto.ReceiptFilter) ([]dto.ReceiptListItem, error)
	Delete(ctx context.Context, number string) error
	DeleteSale(ctx context.Context, number, upc string) error

	TotalForPeriod(ctx context.Context, employeeID, from, to string) (*dto.PeriodTotalResponse, error)
	UnitsSold(ctx context.Context, upc, from, to string) (*dto.UnitsSoldResponse, error)
}

type receiptService struct {
	receipts repository.ReceiptRepository
	stock    repository.StoreProductRepository
	cards    repository.CardRepository
}

func NewReceiptService(receipts repository.ReceiptRepository, stock repository.StoreProductRepository, cards repository.CardRepository) ReceiptService {
	return &receiptService{receipts: receipts, stock: stock, cards: cards}
}

// checkoutLine is an aggregated request line in first-seen order.
type checkoutLine struct {
	upc string
	qty int
}

func aggregateItems(items []dto.CheckoutItem) []checkoutLine {
	byUPC := make(map[string]int, len(items))
	order := make([]string, 0, len(items))
	for _, it := range items {
		if _, seen := byUPC[it.UPC]; !seen {
			order = append(order, it.UPC)
		}
		byUPC[it.UPC] += it.Quantity
	}
	lines := make([]checkoutLine, 0, len(order))
	for _, upc := range order {
		lines = append(lines, checkoutLine{upc: upc, qty: byUPC[upc]})
	}
	return lines
}

func (s *receiptService) Checkout(ctx context.Context, employeeID string, req dto.CheckoutRequest) (*dto.ReceiptResponse, error) {
	number := req.ReceiptNumber
	if number == "" {
		var err error
		number, err = generateUnique(ctx, newEntityID, s.receipts.ExistsNumber)
		if err != nil {
			return nil, err
		}
	} else {
		taken, err := s.receipts.ExistsNumber(ctx, number)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrConflict
		}
	}

	// An unknown or absent card means no discount; the receipt stores no
	// card reference in that case.
	percent := 0
	var cardNumber *string
	if req.CardNumber != nil && *req.CardNumber != "" {
		card, err := s.cards.FindByNumber(ctx, *req.CardNumber)
		switch {
		case err == nil:
			percent = card.Percent
			cardNumber = &card.Number
		case errors.Is(err, gorm.ErrRecordNotFound):
			// fall through with 0 %
		default:
			return nil, err
		}
	}

	lines := aggregateItems(req.Items)

	rec := &model.Receipt{
		Number:     number,
		EmployeeID: employeeID,
		CardNumber: cardNumber,
		PrintDate:  time.Now(),
	}

	var resp dto.ReceiptResponse
	err := runTx(ctx, s.receipts.DB(), func(tx *gorm.DB) error {
		var problems []string
		fetched := make([]*model.StoreProduct, 0, len(lines))
		for _, l := range lines {
			sp, err := s.stock.FindByUPCTx(tx, l.upc)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					problems = append(problems, fmt.Sprintf("product %s does not exist", l.upc))
					fetched = append(fetched, nil)
					continue
				}
				return err
			}
			if sp.Quantity < l.qty {
				problems = append(problems, fmt.Sprintf("%s: available %d, requested %d", l.upc, sp.Quantity, l.qty))
			}
			fetched = append(fetched, sp)
		}
		if len(problems) > 0 {
			return &CheckoutValidationError{Problems: problems}
		}

		subtotal := decimal.Zero
		items := make([]dto.SaleLineResponse, 0, len(lines))
		for i, l := range lines {
			sp := fetched[i]
			lt := lineTotal(sp.Price, l.qty)
			subtotal = subtotal.Add(lt)
			rec.Items = append(rec.Items, model.Sale{
				UPC:           sp.UPC,
				ReceiptNumber: number,
				Quantity:      l.qty,
				Price:         sp.Price,
			})
			items = append(items, dto.SaleLineResponse{
				UPC:      sp.UPC,
				Quantity: l.qty,
				Price:    sp.Price,
				Total:    lt,
			})
		}

		discount := discountAmount(subtotal, percent)
		taxable := subtotal.Sub(discount)
		vat := vatAmount(taxable)
		rec.Total = payableAmount(taxable, vat)

		if err := s.receipts.CreateTx(tx, rec); err != nil {
			return err
		}
		for _, l := range lines {
			if err := s.stock.DecrementStockTx(tx, l.upc, l.qty); err != nil {
				return err
			}
		}

		resp = dto.ReceiptResponse{
			Number:      number,
			EmployeeID:  employeeID,
			CardNumber:  cardNumber,
			PrintDate:   rec.PrintDate.Format(printDateLayout),
			Subtotal:    subtotal,
			Discount:    discount,
			Percent:     percent,
			VAT:         vat,
			Total:       rec.Total,
			Items:       items,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *receiptService) Get(ctx context.Context, number string) (*dto.ReceiptResponse, error) {
	rec, err := s.receipts.FindByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	resp := receiptToResponse(rec)
	return &resp, nil
}

// receiptToResponse rebuilds the money breakdown from the stored lines. The
// discount percent comes from the card as it is now; only the payable total
// is stored on the header.
func receiptToResponse(rec *model.Receipt) dto.ReceiptResponse {
	percent := 0
	if rec.Card != nil {
		percent = rec.Card.Percent
	}
	subtotal := decimal.Zero
	items := make([]dto.SaleLineResponse, 0, len(rec.Items))
	for _, line := range rec.Items {
		lt := lineTotal(line.Price, line.Quantity)
		subtotal = subtotal.Add(lt)
		item := dto.SaleLineResponse{
			UPC:      line.UPC,
			Quantity: line.Quantity,
			Price:    line.Price,
			Total:    lt,
		}
		if line.StoreProduct != nil && line.StoreProduct.Product != nil {
			item.Name = line.StoreProduct.Product.Name
		}
		items = append(items, item)
	}
	discount := discountAmount(subtotal, percent)
	taxable := subtotal.Sub(discount)

	resp := dto.ReceiptResponse{
		Number:     rec.Number,
		EmployeeID: rec.EmployeeID,
		CardNumber: rec.CardNumber,
		PrintDate:  rec.PrintDate.Format(printDateLayout),
		Subtotal:   subtotal,
		Discount:   discount,
		Percent:    percent,
		VAT:        vatAmount(taxable),
		Total:      rec.Total,
		Items:      items,
	}
	if rec.Employee != nil {
		resp.CashierName = rec.Employee.Surname + " " + rec.Employee.Name
	}
	return resp
}

func parseDatePtr(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *receiptService) List(ctx context.Context, filter dto.ReceiptFilter) ([]dto.ReceiptListItem, error) {
	from, err := parseDatePtr(filter.DateFrom)
	if err != nil {
		return nil, err
	}
	to, err := parseDatePtr(filter.DateTo)
	if err != nil {
		return nil, err
	}
	rows, err := s.receipts.List(ctx, repository.ReceiptQuery{
		SortBy:     filter.SortBy,
		Order:      filter.Order,
		EmployeeID: filter.EmployeeID,
		From:       from,
		To:         to,
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.ReceiptListItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ReceiptListItem{
			Number:      r.Number,
			PrintDate:   r.PrintDate.Format(printDateLayout),
			EmployeeID:  r.EmployeeID,
			CashierName: r.CashierName,
			Total:       r.Total,
		})
	}
	return out, nil
}

// Delete removes a receipt with its lines. Stock is not restored; voiding a
// sale is an accounting action, not a return.
func (s *receiptService) Delete(ctx context.Context, number string) error {
	affected, err := s.receipts.Delete(ctx, number)
	if err != nil {
		return err
	}
	if !affected {
		return ErrNotFound
	}
	return nil
}

// DeleteSale removes one line. The header total is left as issued.
func (s *receiptService) DeleteSale(ctx context.Context, number, upc string) error {
	affected, err := s.receipts.DeleteSale(ctx, number, upc)
	if err != nil {
		return err
	}
	if !affected {
		return ErrNotFound
	}
	return nil
}

func (s *receiptService) TotalForPeriod(ctx context.Context, employeeID, from, to string) (*dto.PeriodTotalResponse, error) {
	fromT, err := parseDatePtr(from)
	if err != nil {
		return nil, err
	}
	toT, err := parseDatePtr(to)
	if err != nil {
		return nil, err
	}
	total, err := s.receipts.TotalForPeriod(ctx, employeeID, fromT, toT)
	if err != nil {
		return nil, err
	}
	return &dto.PeriodTotalResponse{
		EmployeeID: employeeID,
		DateFrom:   from,
		DateTo:     to,
		Total:      total,
	}, nil
}

func (s *receiptService) UnitsSold(ctx context.Context, upc, from, to string) (*dto.UnitsSoldResponse, error) {
	fromT, err := parseDatePtr(from)
	if err != nil {
		return nil, err
	}
	toT, err := parseDatePtr(to)
	if err != nil {
		return nil, err
	}
	units, err := s.receipts.UnitsSold(ctx, upc, fromT, toT)
	if err != nil {
		return nil, err
	}
	return &dto.UnitsSoldResponse{
		UPC:      upc,
		DateFrom: from,
		DateTo:   to,
		Units:    units,
	}, nil
}
