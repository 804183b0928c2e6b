package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/shoe-backoffice/internal/entities"
	"github.com/SergeyBogomolovv/shoe-backoffice/pkg/utils"
)

type PromoRepo interface {
	GetPromo(ctx context.Context, id int64) (entities.PromoCode, error)
	ListPromoCodes(ctx context.Context, search string) ([]entities.PromoCode, error)
	CreatePromoCode(ctx context.Context, p entities.PromoCode) (entities.PromoCode, error)
	UpdatePromoCode(ctx context.Context, p entities.PromoCode) (entities.PromoCode, error)
	DeletePromoCodes(ctx context.Context, ids []int64) (int64, error)
}

type promoService struct {
	logger *slog.Logger
	repo   PromoRepo
	retry  utils.RetryConfig
}

func NewPromoService(logger *slog.Logger, repo PromoRepo) *promoService {
	return &promoService{
		logger: logger.With(slog.String("service", "promo")),
		repo:   repo,
		retry:  utils.DefaultRetry,
	}
}

func (s *promoService) ListPromoCodes(ctx context.Context, search string) ([]entities.PromoCode, error) {
	var promos []entities.PromoCode
	fn := func() error {
		var err error
		promos, err = s.repo.ListPromoCodes(ctx, search)
		return err
	}
	if err := utils.Retry(ctx, s.retry, fn); err != nil {
		return nil, err
	}
	return promos, nil
}

func (s *promoService) GetPromoCode(ctx context.Context, id int64) (entities.PromoCode, error) {
	var promo entities.PromoCode
	fn := func() error {
		var err error
		promo, err = s.repo.GetPromo(ctx, id)
		return err
	}
	if err := utils.Retry(ctx, s.retry, fn, entities.ErrPromoNotFound); err != nil {
		return entities.PromoCode{}, err
	}
	return promo, nil
}

func (s *promoService) CreatePromoCode(ctx context.Context, p entities.PromoCode) (entities.PromoCode, error) {
	created, err := s.repo.CreatePromoCode(ctx, p)
	if err != nil {
		return entities.PromoCode{}, err
	}
	s.logger.DebugContext(ctx, "promo code created", slog.String("code", created.Code))
	return created, nil
}

func (s *promoService) UpdatePromoCode(ctx context.Context, p entities.PromoCode) (entities.PromoCode, error) {
	return s.repo.UpdatePromoCode(ctx, p)
}

func (s *promoService) DeletePromoCode(ctx context.Context, id int64) error {
	n, err := s.repo.DeletePromoCodes(ctx, []int64{id})
	if err != nil {
		return fmt.Errorf("failed to delete promo code: %w", err)
	}
	if n == 0 {
		return entities.ErrPromoNotFound
	}
	return nil
}

func (s *promoService) DeletePromoCodes(ctx context.Context, ids []int64) (int64, error) {
	n, err := s.repo.DeletePromoCodes(ctx, ids)
	if err != nil {
		return 0, fmt.Errorf("failed to delete promo codes: %w", err)
	}
	return n, nil
}
