package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is a product transaction: one product, one size, a quantity and the
// pricing snapshot taken while the order was filled in.
type Order struct {
	ID           int64
	BookingTrxID string

	ProductID int64
	SizeID    int64
	Quantity  int

	Price       decimal.Decimal
	SubTotal    decimal.Decimal
	Discount    decimal.Decimal
	GrandTotal  decimal.Decimal
	PromoCodeID *int64

	// тут без указателей, потому что предполагается что эти данные всегда присутствуют
	Customer Customer
	Payment  Payment

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OrderSummary is a row of the admin orders table.
type OrderSummary struct {
	ID               int64
	BookingTrxID     string
	Name             string
	ProductID        int64
	ProductName      string
	ProductThumbnail string
	GrandTotal       decimal.Decimal
	IsPaid           bool
	CreatedAt        time.Time
}

type OrderFilter struct {
	ProductID *int64
	// Search matches customer name or booking id.
	Search string
}
