package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/shoe-backoffice/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

const bookingTrxIDUnique = "product_transactions_booking_trx_id_key"

var orderColumns = []string{
	"id", "booking_trx_id", "shoe_id", "shoe_size", "quantity", "price",
	"sub_total_amount", "discount_amount", "grand_total_amount", "promo_code_id",
	"name", "phone", "email", "address", "city", "post_code",
	"is_paid", "proof", "created_at", "updated_at",
}

func (r *postgresRepo) GetOrderByID(ctx context.Context, id int64) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("product_transactions").
		Where(sq.Eq{"id": id}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}
	return OrderToEntity(order), nil
}

// ListOrders returns order summaries, newest first. Search matches the
// customer name or the booking id.
func (r *postgresRepo) ListOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.OrderSummary, error) {
	q := r.qb.Select(
		"t.id", "t.booking_trx_id", "t.name", "t.shoe_id",
		"s.name AS shoe_name", "s.thumbnail AS shoe_thumbnail",
		"t.grand_total_amount", "t.is_paid", "t.created_at",
	).
		From("product_transactions t").
		Join("shoes s ON s.id = t.shoe_id").
		OrderBy("t.created_at DESC", "t.id DESC")

	if filter.ProductID != nil {
		q = q.Where(sq.Eq{"t.shoe_id": *filter.ProductID})
	}
	if filter.Search != "" {
		pattern := containsPattern(filter.Search)
		q = q.Where(sq.Or{
			sq.ILike{"t.booking_trx_id": pattern},
			sq.ILike{"t.name": pattern},
		})
	}

	query, args := q.MustSql()

	var orders []OrderSummary
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	result := make([]entities.OrderSummary, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderSummaryToEntity(o))
	}
	return result, nil
}

func (r *postgresRepo) CreateOrder(ctx context.Context, o entities.Order) (entities.Order, error) {
	values := orderValues(o)
	values["booking_trx_id"] = o.BookingTrxID
	values["is_paid"] = o.Payment.IsPaid

	query, args := r.qb.Insert("product_transactions").
		SetMap(values).
		Suffix("RETURNING " + joinColumns(orderColumns)).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if isUniqueViolation(err, bookingTrxIDUnique) {
		return entities.Order{}, entities.ErrDuplicateBookingID
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to insert order: %w", err)
	}
	return OrderToEntity(order), nil
}

// UpdateOrder overwrites the editable columns of an order. The booking id is
// fixed at creation and is never updated.
func (r *postgresRepo) UpdateOrder(ctx context.Context, o entities.Order) (entities.Order, error) {
	values := orderValues(o)
	values["is_paid"] = o.Payment.IsPaid
	values["updated_at"] = sq.Expr("now()")

	query, args := r.qb.Update("product_transactions").
		SetMap(values).
		Where(sq.Eq{"id": o.ID}).
		Suffix("RETURNING " + joinColumns(orderColumns)).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to update order: %w", err)
	}
	return OrderToEntity(order), nil
}

// MarkOrderPaid flips is_paid for an unpaid order and returns the updated row.
// A missing or already paid order gives ErrOrderAlreadyApproved.
func (r *postgresRepo) MarkOrderPaid(ctx context.Context, id int64) (entities.Order, error) {
	query, args := r.qb.Update("product_transactions").
		Set("is_paid", true).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "is_paid": false}).
		Suffix("RETURNING " + joinColumns(orderColumns)).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderAlreadyApproved
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to mark order paid: %w", err)
	}
	return OrderToEntity(order), nil
}

func (r *postgresRepo) DeleteOrders(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	query, args := r.qb.Delete("product_transactions").
		Where(sq.Eq{"id": ids}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to delete orders: %w", err)
	}
	return res.RowsAffected()
}

func orderValues(o entities.Order) map[string]any {
	return map[string]any{
		"shoe_id":            o.ProductID,
		"shoe_size":          o.SizeID,
		"quantity":           o.Quantity,
		"price":              o.Price,
		"sub_total_amount":   o.SubTotal,
		"discount_amount":    o.Discount,
		"grand_total_amount": o.GrandTotal,
		"promo_code_id":      ptrToNullInt64(o.PromoCodeID),
		"name":               o.Customer.Name,
		"phone":              o.Customer.Phone,
		"email":              o.Customer.Email,
		"address":            o.Customer.Address,
		"city":               o.Customer.City,
		"post_code":          o.Customer.PostCode,
		"proof":              o.Payment.Proof,
	}
}
