package service

import "github.com/shopspring/decimal"

// Money pipeline. All intermediate amounts are rounded to 2 decimals with
// round-half-up (decimal.Round is half away from zero, which is half-up for
// the non-negative amounts handled here).
var (
	vatRate       = decimal.NewFromFloat(0.20) // 20 % VAT on the discounted subtotal
	promoDiscount = decimal.NewFromFloat(0.20) // promotional markdown: price × 0.8
)

// lineTotal is unit price × quantity, rounded per line before summing.
func lineTotal(price decimal.Decimal, qty int) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(qty))).Round(2)
}

// discountAmount applies a whole-percent loyalty discount to the subtotal.
func discountAmount(subtotal decimal.Decimal, percent int) decimal.Decimal {
	return subtotal.Mul(decimal.NewFromInt(int64(percent))).Div(decimal.NewFromInt(100)).Round(2)
}

func vatAmount(taxable decimal.Decimal) decimal.Decimal {
	return taxable.Mul(vatRate).Round(2)
}

func payableAmount(taxable, vat decimal.Decimal) decimal.Decimal {
	return taxable.Add(vat).Round(2)
}

// promoPrice is the one-time promotional markdown.
func promoPrice(price decimal.Decimal) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(1).Sub(promoDiscount)).Round(2)
}
