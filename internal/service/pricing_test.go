package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestLineTotalRounds(t *testing.T) {
	assert.True(t, dec("33.33").Equal(lineTotal(dec("33.33"), 1)))
	assert.True(t, dec("99.99").Equal(lineTotal(dec("33.33"), 3)))
	// 3 × 9.995 = 29.985 → half-up → 29.99
	assert.True(t, dec("29.99").Equal(lineTotal(dec("9.995"), 3)))
}

func TestMoneyPipelineWithDiscount(t *testing.T) {
	// 100.00 subtotal, 10 % card: discount 10.00, taxable 90.00,
	// VAT 18.00, payable 108.00.
	subtotal := dec("100.00")
	discount := discountAmount(subtotal, 10)
	assert.True(t, dec("10.00").Equal(discount))

	taxable := subtotal.Sub(discount)
	vat := vatAmount(taxable)
	assert.True(t, dec("18.00").Equal(vat))
	assert.True(t, dec("108.00").Equal(payableAmount(taxable, vat)))
}

func TestMoneyPipelineNoCard(t *testing.T) {
	// 33.33 with no card: VAT 6.666 → 6.67, payable 40.00.
	subtotal := dec("33.33")
	discount := discountAmount(subtotal, 0)
	assert.True(t, discount.IsZero())

	vat := vatAmount(subtotal)
	assert.True(t, dec("6.67").Equal(vat))
	assert.True(t, dec("40.00").Equal(payableAmount(subtotal, vat)))
}

func TestDiscountRounding(t *testing.T) {
	// 33.33 at 10 % = 3.333 → 3.33
	assert.True(t, dec("3.33").Equal(discountAmount(dec("33.33"), 10)))
	// 12.45 at 50 % = 6.225 → half-up → 6.23
	assert.True(t, dec("6.23").Equal(discountAmount(dec("12.45"), 50)))
}

func TestPromoPrice(t *testing.T) {
	assert.True(t, dec("80.00").Equal(promoPrice(dec("100.00"))))
	// 9.99 × 0.8 = 7.992 → 7.99
	assert.True(t, dec("7.99").Equal(promoPrice(dec("9.99"))))
	// 0.06 × 0.8 = 0.048 → half-up → 0.05
	assert.True(t, dec("0.05").Equal(promoPrice(dec("0.06"))))
}
