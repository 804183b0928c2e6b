package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/shoe-backoffice/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

const promoCodeUnique = "promo_codes_code_key"

var promoColumns = []string{"id", "code", "discount_amount", "created_at", "updated_at"}

func (r *postgresRepo) GetPromo(ctx context.Context, id int64) (entities.PromoCode, error) {
	query, args := r.qb.Select(promoColumns...).
		From("promo_codes").
		Where(sq.Eq{"id": id}).
		MustSql()

	var promo PromoCode
	err := r.getContext(ctx, &promo, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.PromoCode{}, entities.ErrPromoNotFound
	}
	if err != nil {
		return entities.PromoCode{}, fmt.Errorf("failed to get promo code: %w", err)
	}
	return PromoCodeToEntity(promo), nil
}

// ListPromoCodes returns promo codes ordered by code, optionally filtered by a
// case-insensitive substring of the code.
func (r *postgresRepo) ListPromoCodes(ctx context.Context, search string) ([]entities.PromoCode, error) {
	q := r.qb.Select(promoColumns...).
		From("promo_codes").
		OrderBy("code")
	if search != "" {
		q = q.Where(sq.ILike{"code": containsPattern(search)})
	}

	query, args := q.MustSql()

	var promos []PromoCode
	if err := r.selectContext(ctx, &promos, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select promo codes: %w", err)
	}

	result := make([]entities.PromoCode, 0, len(promos))
	for _, p := range promos {
		result = append(result, PromoCodeToEntity(p))
	}
	return result, nil
}

func (r *postgresRepo) CreatePromoCode(ctx context.Context, p entities.PromoCode) (entities.PromoCode, error) {
	query, args := r.qb.Insert("promo_codes").
		SetMap(map[string]any{
			"code":            p.Code,
			"discount_amount": p.DiscountAmount,
		}).
		Suffix("RETURNING " + joinColumns(promoColumns)).
		MustSql()

	var promo PromoCode
	err := r.getContext(ctx, &promo, query, args...)
	if isUniqueViolation(err, promoCodeUnique) {
		return entities.PromoCode{}, entities.ErrPromoCodeTaken
	}
	if err != nil {
		return entities.PromoCode{}, fmt.Errorf("failed to insert promo code: %w", err)
	}
	return PromoCodeToEntity(promo), nil
}

func (r *postgresRepo) UpdatePromoCode(ctx context.Context, p entities.PromoCode) (entities.PromoCode, error) {
	query, args := r.qb.Update("promo_codes").
		SetMap(map[string]any{
			"code":            p.Code,
			"discount_amount": p.DiscountAmount,
			"updated_at":      sq.Expr("now()"),
		}).
		Where(sq.Eq{"id": p.ID}).
		Suffix("RETURNING " + joinColumns(promoColumns)).
		MustSql()

	var promo PromoCode
	err := r.getContext(ctx, &promo, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.PromoCode{}, entities.ErrPromoNotFound
	}
	if isUniqueViolation(err, promoCodeUnique) {
		return entities.PromoCode{}, entities.ErrPromoCodeTaken
	}
	if err != nil {
		return entities.PromoCode{}, fmt.Errorf("failed to update promo code: %w", err)
	}
	return PromoCodeToEntity(promo), nil
}

func (r *postgresRepo) DeletePromoCodes(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	query, args := r.qb.Delete("promo_codes").
		Where(sq.Eq{"id": ids}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to delete promo codes: %w", err)
	}
	return res.RowsAffected()
}
