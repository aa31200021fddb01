package service

import (
	"context"
	"testing"
	"time"

	"github.com/AndreHordd/Zlagoda/internal/dto"
	"github.com/AndreHordd/Zlagoda/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shelfItem(upc, price string, qty int) *model.StoreProduct {
	return &model.StoreProduct{
		UPC:        upc,
		ProductID:  1,
		Price:      dec(price),
		Quantity:   qty,
		ExpiryDate: time.Now().AddDate(0, 6, 0),
	}
}

func TestCheckoutHappyPathWithCard(t *testing.T) {
	stock := newStubStockRepo(
		shelfItem("111111111111", "50.00", 10),
		shelfItem("222222222222", "25.00", 4),
	)
	cardNo := "C123456789012"
	cards := newStubCardRepo(&model.CustomerCard{Number: cardNo, Percent: 10})
	receipts := newStubReceiptRepo()
	svc := NewReceiptService(receipts, stock, cards)

	resp, err := svc.Checkout(context.Background(), "emp0000001", dto.CheckoutRequest{
		CardNumber: &cardNo,
		Items: []dto.CheckoutItem{
			{UPC: "111111111111", Quantity: 1},
			{UPC: "222222222222", Quantity: 2},
		},
	})
	require.NoError(t, err)

	// 50 + 2×25 = 100; 10 % card → 90 taxable; VAT 18; payable 108.
	assert.True(t, dec("100.00").Equal(resp.Subtotal))
	assert.True(t, dec("10.00").Equal(resp.Discount))
	assert.True(t, dec("18.00").Equal(resp.VAT))
	assert.True(t, dec("108.00").Equal(resp.Total))
	assert.Equal(t, 10, resp.Percent)
	assert.Len(t, resp.Items, 2)

	// Stock moved and the receipt was persisted with its lines.
	assert.Equal(t, 9, stock.items["111111111111"].Quantity)
	assert.Equal(t, 2, stock.items["222222222222"].Quantity)
	rec, err := receipts.FindByNumber(context.Background(), resp.Number)
	require.NoError(t, err)
	assert.Len(t, rec.Items, 2)
	assert.True(t, dec("108.00").Equal(rec.Total))
}

func TestCheckoutAggregatesDuplicateLines(t *testing.T) {
	stock := newStubStockRepo(shelfItem("111111111111", "10.00", 5))
	svc := NewReceiptService(newStubReceiptRepo(), stock, newStubCardRepo())

	resp, err := svc.Checkout(context.Background(), "emp0000001", dto.CheckoutRequest{
		Items: []dto.CheckoutItem{
			{UPC: "111111111111", Quantity: 2},
			{UPC: "111111111111", Quantity: 3},
		},
	})
	require.NoError(t, err)

	require.Len(t, resp.Items, 1)
	assert.Equal(t, 5, resp.Items[0].Quantity)
	assert.Equal(t, 0, stock.items["111111111111"].Quantity)
}

func TestCheckoutUnknownCardMeansNoDiscount(t *testing.T) {
	stock := newStubStockRepo(shelfItem("111111111111", "33.33", 5))
	svc := NewReceiptService(newStubReceiptRepo(), stock, newStubCardRepo())

	ghost := "C999999999999"
	resp, err := svc.Checkout(context.Background(), "emp0000001", dto.CheckoutRequest{
		CardNumber: &ghost,
		Items:      []dto.CheckoutItem{{UPC: "111111111111", Quantity: 1}},
	})
	require.NoError(t, err)

	assert.Equal(t, 0, resp.Percent)
	assert.Nil(t, resp.CardNumber)
	// 33.33 → VAT 6.67 → 40.00
	assert.True(t, dec("6.67").Equal(resp.VAT))
	assert.True(t, dec("40.00").Equal(resp.Total))
}

func TestCheckoutCollectsEveryProblemAndWritesNothing(t *testing.T) {
	stock := newStubStockRepo(shelfItem("111111111111", "10.00", 1))
	receipts := newStubReceiptRepo()
	svc := NewReceiptService(receipts, stock, newStubCardRepo())

	_, err := svc.Checkout(context.Background(), "emp0000001", dto.CheckoutRequest{
		Items: []dto.CheckoutItem{
			{UPC: "111111111111", Quantity: 5},
			{UPC: "000000000000", Quantity: 1},
		},
	})
	require.Error(t, err)

	var cve *CheckoutValidationError
	require.ErrorAs(t, err, &cve)
	assert.Len(t, cve.Problems, 2)
	assert.Contains(t, cve.Problems[0], "available 1, requested 5")
	assert.Contains(t, cve.Problems[1], "000000000000 does not exist")

	// Nothing committed: stock untouched, no receipt stored.
	assert.Equal(t, 1, stock.items["111111111111"].Quantity)
	assert.Empty(t, stock.decremented)
	assert.Empty(t, receipts.receipts)
}

func TestCheckoutRejectsDuplicateReceiptNumber(t *testing.T) {
	receipts := newStubReceiptRepo()
	receipts.receipts["RECEIPT001"] = &model.Receipt{Number: "RECEIPT001"}
	svc := NewReceiptService(receipts, newStubStockRepo(), newStubCardRepo())

	_, err := svc.Checkout(context.Background(), "emp0000001", dto.CheckoutRequest{
		ReceiptNumber: "RECEIPT001",
		Items:         []dto.CheckoutItem{{UPC: "111111111111", Quantity: 1}},
	})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestAggregateItemsKeepsFirstSeenOrder(t *testing.T) {
	lines := aggregateItems([]dto.CheckoutItem{
		{UPC: "b", Quantity: 1},
		{UPC: "a", Quantity: 2},
		{UPC: "b", Quantity: 4},
	})
	require.Len(t, lines, 2)
	assert.Equal(t, checkoutLine{upc: "b", qty: 5}, lines[0])
	assert.Equal(t, checkoutLine{upc: "a", qty: 2}, lines[1])
}

func TestTotalForPeriodSumsStoredTotals(t *testing.T) {
	receipts := newStubReceiptRepo()
	receipts.receipts["r1"] = &model.Receipt{Number: "r1", EmployeeID: "e1", Total: dec("10.00")}
	receipts.receipts["r2"] = &model.Receipt{Number: "r2", EmployeeID: "e2", Total: dec("5.50")}
	svc := NewReceiptService(receipts, newStubStockRepo(), newStubCardRepo())

	all, err := svc.TotalForPeriod(context.Background(), "", "", "")
	require.NoError(t, err)
	assert.True(t, dec("15.50").Equal(all.Total))

	one, err := svc.TotalForPeriod(context.Background(), "e1", "", "")
	require.NoError(t, err)
	assert.True(t, dec("10.00").Equal(one.Total))
}

func TestReceiptToResponseRebuildsBreakdown(t *testing.T) {
	rec := &model.Receipt{
		Number:     "r1",
		EmployeeID: "e1",
		PrintDate:  time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		Total:      dec("108.00"),
		Card:       &model.CustomerCard{Number: "C1", Percent: 10},
		Employee:   &model.Employee{Surname: "Shevchenko", Name: "Taras"},
		Items: []model.Sale{
			{UPC: "111111111111", Quantity: 2, Price: dec("50.00")},
		},
	}
	resp := receiptToResponse(rec)

	assert.Equal(t, "Shevchenko Taras", resp.CashierName)
	assert.True(t, dec("100.00").Equal(resp.Subtotal))
	assert.True(t, dec("10.00").Equal(resp.Discount))
	assert.True(t, dec("18.00").Equal(resp.VAT))
	assert.Equal(t, 10, resp.Percent)
}
