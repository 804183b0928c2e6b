package entities

import "errors"

var (
	ErrOrderNotFound        = errors.New("order not found")
	ErrOrderAlreadyApproved = errors.New("order already approved")
	ErrDuplicateBookingID   = errors.New("booking transaction id already exists")

	ErrProductNotFound = errors.New("product not found")

	ErrPromoNotFound  = errors.New("promo code not found")
	ErrPromoCodeTaken = errors.New("promo code already exists")

	ErrDraftNotFound = errors.New("draft not found")
)
