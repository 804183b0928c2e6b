package pricing

import "github.com/shopspring/decimal"

// Scale is the number of decimal places kept for money amounts.
const Scale = 2

type Totals struct {
	SubTotal   decimal.Decimal
	GrandTotal decimal.Decimal
}

// ComputeTotals derives the subtotal and grand total of an order line.
// It never fails: a negative quantity counts as zero.
func ComputeTotals(unitPrice decimal.Decimal, quantity int, discount decimal.Decimal) Totals {
	if quantity < 0 {
		quantity = 0
	}

	subTotal := unitPrice.Mul(decimal.NewFromInt(int64(quantity))).Round(Scale)
	return Totals{
		SubTotal:   subTotal,
		GrandTotal: subTotal.Sub(discount).Round(Scale),
	}
}
