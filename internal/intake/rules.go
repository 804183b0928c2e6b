package intake

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/SergeyBogomolovv/shoe-backoffice/internal/entities"
	"github.com/go-playground/validator/v10"
)

type productFields struct {
	ProductID int64 `json:"product_id" validate:"required"`
	SizeID    int64 `json:"size_id" validate:"required"`
	Quantity  int   `json:"quantity" validate:"required,gte=1"`
}

type customerFields struct {
	Name     string `json:"name" validate:"required,max=255"`
	Phone    string `json:"phone" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,max=255,email"`
	Address  string `json:"address" validate:"required,max=255"`
	City     string `json:"city" validate:"required,max=255"`
	PostCode string `json:"post_code" validate:"required,max=255"`
}

type paymentFields struct {
	BookingTrxID string `json:"booking_trx_id" validate:"required,max=255"`
	Proof        string `json:"proof" validate:"required,max=255"`
}

type rules struct {
	validate *validator.Validate
}

func newRules() *rules {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &rules{validate: validate}
}

// ValidateStep checks the fields of one step. It returns a *ValidationError
// when a field is invalid.
func (w *Workflow) ValidateStep(d Draft, step Step) error {
	fields := make(map[string]string)

	var err error
	switch step {
	case StepProduct:
		err = w.rules.validate.Struct(productFields{
			ProductID: d.ProductID,
			SizeID:    d.SizeID,
			Quantity:  d.quantity(),
		})
		checkProductStep(d, fields)
	case StepCustomer:
		err = w.rules.validate.Struct(customerFields(d.Customer))
	case StepPayment:
		err = w.rules.validate.Struct(paymentFields{
			BookingTrxID: d.BookingTrxID,
			Proof:        d.Payment.Proof,
		})
	case StepSubmitted:
		return nil
	default:
		return fmt.Errorf("unknown step %q", step)
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			fields[fe.Field()] = fe.Tag()
		}
	} else if err != nil {
		return fmt.Errorf("failed to validate %s step: %w", step, err)
	}

	if len(fields) > 0 {
		return &ValidationError{Step: step, Fields: fields}
	}
	return nil
}

// checkProductStep covers the rules the struct tags cannot express: money
// amounts and size membership.
func checkProductStep(d Draft, fields map[string]string) {
	if d.SizeID != 0 && !entities.HasSize(d.Sizes, d.SizeID) {
		fields["size_id"] = "oneof"
	}
	if d.ProductID != 0 && !d.Price.IsPositive() {
		fields["price"] = "gt"
	}
	if d.Discount.IsNegative() {
		fields["discount"] = "gte"
	} else if d.Discount.GreaterThan(d.SubTotal) {
		fields["discount"] = "ltefield"
	}
}
