package intake

import (
	"fmt"

	"github.com/SergeyBogomolovv/shoe-backoffice/internal/entities"
	"github.com/shopspring/decimal"
)

type Step string

const (
	StepProduct   Step = "product"
	StepCustomer  Step = "customer"
	StepPayment   Step = "payment"
	StepSubmitted Step = "submitted"
)

var steps = []Step{StepProduct, StepCustomer, StepPayment}

func ParseStep(s string) (Step, error) {
	for _, step := range steps {
		if string(step) == s {
			return step, nil
		}
	}
	return "", fmt.Errorf("unknown step %q", s)
}

type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

// Draft is the state of the order form between field changes. It is never
// persisted as an order until Submit.
type Draft struct {
	Mode    Mode  `json:"mode"`
	Step    Step  `json:"step"`
	OrderID int64 `json:"order_id,omitempty"`

	BookingTrxID string `json:"booking_trx_id"`

	ProductID int64           `json:"product_id"`
	Sizes     []entities.Size `json:"sizes"`
	SizeID    int64           `json:"size_id"`
	// nil until the quantity field is touched
	Quantity *int `json:"quantity,omitempty"`

	Price       decimal.Decimal `json:"price"`
	SubTotal    decimal.Decimal `json:"sub_total"`
	Discount    decimal.Decimal `json:"discount"`
	GrandTotal  decimal.Decimal `json:"grand_total"`
	PromoCodeID *int64          `json:"promo_code_id,omitempty"`

	Customer entities.Customer `json:"customer"`
	Payment  entities.Payment  `json:"payment"`
}

// NewDraft starts an empty draft for a new order.
func NewDraft() Draft {
	return Draft{
		Mode: ModeCreate,
		Step: StepProduct,
	}
}

// quantity returns the quantity used for pricing, 1 when the field is empty.
func (d Draft) quantity() int {
	if d.Quantity == nil {
		return 1
	}
	return *d.Quantity
}

// clone copies the reference fields so handlers never share state with
// the draft they were given.
func (d Draft) clone() Draft {
	if d.Sizes != nil {
		d.Sizes = append([]entities.Size(nil), d.Sizes...)
	}
	if d.Quantity != nil {
		q := *d.Quantity
		d.Quantity = &q
	}
	if d.PromoCodeID != nil {
		id := *d.PromoCodeID
		d.PromoCodeID = &id
	}
	return d
}

// Form is a complete submission of the three steps, as sent by the admin UI
// or by the storefront checkout.
type Form struct {
	ProductID   int64
	SizeID      int64
	Quantity    int
	PromoCodeID *int64
	// Discount overrides the promo discount when set.
	Discount *decimal.Decimal

	Customer entities.Customer
	Payment  entities.Payment
}

// Change is a partial update of the draft; nil fields are left untouched.
type Change struct {
	ProductID *int64
	SizeID    *int64
	Quantity  *int
	// PromoCodeID 0 removes the promo code.
	PromoCodeID *int64
	Discount    *decimal.Decimal

	Name     *string
	Phone    *string
	Email    *string
	Address  *string
	City     *string
	PostCode *string

	IsPaid *bool
	Proof  *string
}
