package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// PromoCode is a reusable flat discount.
type PromoCode struct {
	ID             int64
	Code           string
	DiscountAmount decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
