package intake

import (
	"context"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/shoe-backoffice/internal/entities"
	"github.com/SergeyBogomolovv/shoe-backoffice/internal/pricing"
	"github.com/shopspring/decimal"
)

type Catalog interface {
	GetProduct(ctx context.Context, id int64) (entities.Product, error)
	GetSizes(ctx context.Context, productID int64) ([]entities.Size, error)
}

type Promos interface {
	GetPromo(ctx context.Context, id int64) (entities.PromoCode, error)
}

type IDGenerator interface {
	Generate() string
}

// Workflow drives a Draft through the product, customer and payment steps.
// Every handler returns a new Draft and leaves its argument untouched.
type Workflow struct {
	catalog Catalog
	promos  Promos
	ids     IDGenerator
	rules   *rules
}

func New(catalog Catalog, promos Promos, ids IDGenerator) *Workflow {
	return &Workflow{
		catalog: catalog,
		promos:  promos,
		ids:     ids,
		rules:   newRules(),
	}
}

// Hydrate opens an edit-mode draft for a stored order. The price snapshot and
// booking id are kept as stored; only the size options are reloaded.
func (w *Workflow) Hydrate(ctx context.Context, o entities.Order) (Draft, error) {
	sizes, err := w.sizes(ctx, o.ProductID)
	if err != nil {
		return Draft{}, err
	}

	quantity := o.Quantity
	d := Draft{
		Mode:         ModeEdit,
		Step:         StepProduct,
		OrderID:      o.ID,
		BookingTrxID: o.BookingTrxID,
		ProductID:    o.ProductID,
		Sizes:        sizes,
		SizeID:       o.SizeID,
		Quantity:     &quantity,
		Price:        o.Price,
		Discount:     o.Discount,
		PromoCodeID:  o.PromoCodeID,
		Customer:     o.Customer,
		Payment:      o.Payment,
	}
	return recompute(d), nil
}

// SelectProduct loads the product price and sizes. An unknown product leaves
// the draft with no price and no sizes. The booking id is generated the first
// time a product is picked for a new order.
func (w *Workflow) SelectProduct(ctx context.Context, d Draft, productID int64) (Draft, error) {
	d = d.clone()
	d.ProductID = productID
	d.Price = decimal.Zero
	d.Sizes = nil

	// Пустой выбор только сбрасывает товар, номер брони не выдаём.
	if productID == 0 {
		d.SizeID = 0
		return recompute(d), nil
	}

	product, err := w.catalog.GetProduct(ctx, productID)
	switch {
	case errors.Is(err, entities.ErrProductNotFound):
	case err != nil:
		return Draft{}, fmt.Errorf("failed to get product: %w", err)
	default:
		d.Price = product.Price
		if d.Sizes, err = w.sizes(ctx, productID); err != nil {
			return Draft{}, err
		}
	}

	if !entities.HasSize(d.Sizes, d.SizeID) {
		d.SizeID = 0
	}

	if d.Mode == ModeCreate && d.BookingTrxID == "" {
		d.BookingTrxID = w.ids.Generate()
	}

	return recompute(d), nil
}

// SelectPromo applies the discount of a promo code. nil or an unknown code
// means no discount.
func (w *Workflow) SelectPromo(ctx context.Context, d Draft, promoID *int64) (Draft, error) {
	d = d.clone()
	d.PromoCodeID = nil
	d.Discount = decimal.Zero

	if promoID == nil || *promoID == 0 {
		return recompute(d), nil
	}

	id := *promoID
	d.PromoCodeID = &id

	promo, err := w.promos.GetPromo(ctx, id)
	switch {
	case errors.Is(err, entities.ErrPromoNotFound):
	case err != nil:
		return Draft{}, fmt.Errorf("failed to get promo code: %w", err)
	default:
		d.Discount = promo.DiscountAmount
	}

	return recompute(d), nil
}

func SelectSize(d Draft, sizeID int64) Draft {
	d = d.clone()
	d.SizeID = sizeID
	return d
}

func ChangeQuantity(d Draft, quantity int) Draft {
	d = d.clone()
	d.Quantity = &quantity
	return recompute(d)
}

// OverrideDiscount replaces the discount by a manually entered amount.
func OverrideDiscount(d Draft, amount decimal.Decimal) Draft {
	d = d.clone()
	d.Discount = amount
	return recompute(d)
}

func SetCustomer(d Draft, c entities.Customer) Draft {
	d = d.clone()
	d.Customer = c
	return d
}

func SetPayment(d Draft, p entities.Payment) Draft {
	d = d.clone()
	d.Payment = p
	return d
}

// Apply runs the handlers for every field present in c, in form order.
func (w *Workflow) Apply(ctx context.Context, d Draft, c Change) (Draft, error) {
	var err error

	if c.ProductID != nil {
		if d, err = w.SelectProduct(ctx, d, *c.ProductID); err != nil {
			return Draft{}, err
		}
	}
	if c.SizeID != nil {
		d = SelectSize(d, *c.SizeID)
	}
	if c.Quantity != nil {
		d = ChangeQuantity(d, *c.Quantity)
	}
	if c.PromoCodeID != nil {
		if d, err = w.SelectPromo(ctx, d, c.PromoCodeID); err != nil {
			return Draft{}, err
		}
	}
	if c.Discount != nil {
		d = OverrideDiscount(d, *c.Discount)
	}

	customer := d.Customer
	setIf(&customer.Name, c.Name)
	setIf(&customer.Phone, c.Phone)
	setIf(&customer.Email, c.Email)
	setIf(&customer.Address, c.Address)
	setIf(&customer.City, c.City)
	setIf(&customer.PostCode, c.PostCode)
	d = SetCustomer(d, customer)

	payment := d.Payment
	if c.IsPaid != nil {
		payment.IsPaid = *c.IsPaid
	}
	setIf(&payment.Proof, c.Proof)
	d = SetPayment(d, payment)

	return d, nil
}

// ApplyForm applies a complete form. The product and promo handlers only run
// when their value differs from the draft, so editing an order keeps its
// price snapshot unless the product itself is changed.
func (w *Workflow) ApplyForm(ctx context.Context, d Draft, f Form) (Draft, error) {
	quantity := f.Quantity
	c := Change{
		SizeID:   &f.SizeID,
		Quantity: &quantity,
		Discount: f.Discount,
		Name:     &f.Customer.Name,
		Phone:    &f.Customer.Phone,
		Email:    &f.Customer.Email,
		Address:  &f.Customer.Address,
		City:     &f.Customer.City,
		PostCode: &f.Customer.PostCode,
		IsPaid:   &f.Payment.IsPaid,
		Proof:    &f.Payment.Proof,
	}

	if d.BookingTrxID == "" || f.ProductID != d.ProductID {
		c.ProductID = &f.ProductID
	}
	if !samePromo(d.PromoCodeID, f.PromoCodeID) {
		var promoID int64
		if f.PromoCodeID != nil {
			promoID = *f.PromoCodeID
		}
		c.PromoCodeID = &promoID
	}

	return w.Apply(ctx, d, c)
}

// Next validates the active step and moves to the following one.
func (w *Workflow) Next(d Draft) (Draft, error) {
	if err := w.ValidateStep(d, d.Step); err != nil {
		return Draft{}, err
	}

	d = d.clone()
	switch d.Step {
	case StepProduct:
		d.Step = StepCustomer
	case StepCustomer:
		d.Step = StepPayment
	}
	return d, nil
}

// GoTo switches the active step without validation.
func GoTo(d Draft, step Step) (Draft, error) {
	if _, err := ParseStep(string(step)); err != nil {
		return Draft{}, err
	}
	d = d.clone()
	d.Step = step
	return d, nil
}

// Submit validates all steps and returns the order to persist.
func (w *Workflow) Submit(d Draft) (entities.Order, error) {
	for _, step := range steps {
		if err := w.ValidateStep(d, step); err != nil {
			return entities.Order{}, err
		}
	}

	var promoID *int64
	if d.PromoCodeID != nil {
		id := *d.PromoCodeID
		promoID = &id
	}

	return entities.Order{
		ID:           d.OrderID,
		BookingTrxID: d.BookingTrxID,
		ProductID:    d.ProductID,
		SizeID:       d.SizeID,
		Quantity:     d.quantity(),
		Price:        d.Price,
		SubTotal:     d.SubTotal,
		Discount:     d.Discount,
		GrandTotal:   d.GrandTotal,
		PromoCodeID:  promoID,
		Customer:     d.Customer,
		Payment:      d.Payment,
	}, nil
}

func (w *Workflow) sizes(ctx context.Context, productID int64) ([]entities.Size, error) {
	sizes, err := w.catalog.GetSizes(ctx, productID)
	if errors.Is(err, entities.ErrProductNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get sizes: %w", err)
	}
	return sizes, nil
}

func recompute(d Draft) Draft {
	totals := pricing.ComputeTotals(d.Price, d.quantity(), d.Discount)
	d.SubTotal = totals.SubTotal
	d.GrandTotal = totals.GrandTotal
	return d
}

func samePromo(a, b *int64) bool {
	if a == nil || b == nil {
		return a == nil && (b == nil || *b == 0)
	}
	return *a == *b
}

func setIf(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
