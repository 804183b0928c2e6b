package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/SergeyBogomolovv/shoe-backoffice/internal/entities"
	"github.com/SergeyBogomolovv/shoe-backoffice/internal/service"
	mocks "github.com/SergeyBogomolovv/shoe-backoffice/internal/service/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPromoService(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	promo := entities.PromoCode{Code: "HEMAT50", DiscountAmount: decimal.NewFromInt(50000)}

	t.Run("create duplicate", func(t *testing.T) {
		repo := mocks.NewMockPromoRepo(t)
		svc := service.NewPromoService(logger, repo)

		repo.EXPECT().CreatePromoCode(mock.Anything, promo).Return(entities.PromoCode{}, entities.ErrPromoCodeTaken).Once()

		_, err := svc.CreatePromoCode(ctx, promo)
		assert.ErrorIs(t, err, entities.ErrPromoCodeTaken)
	})

	t.Run("get is retried except not found", func(t *testing.T) {
		repo := mocks.NewMockPromoRepo(t)
		svc := service.NewPromoService(logger, repo)

		repo.EXPECT().GetPromo(mock.Anything, int64(1)).Return(entities.PromoCode{}, errors.New("timeout")).Once()
		repo.EXPECT().GetPromo(mock.Anything, int64(1)).Return(promo, nil).Once()
		repo.EXPECT().GetPromo(mock.Anything, int64(2)).Return(entities.PromoCode{}, entities.ErrPromoNotFound).Once()

		got, err := svc.GetPromoCode(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "HEMAT50", got.Code)

		_, err = svc.GetPromoCode(ctx, 2)
		assert.ErrorIs(t, err, entities.ErrPromoNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		repo := mocks.NewMockPromoRepo(t)
		svc := service.NewPromoService(logger, repo)

		repo.EXPECT().DeletePromoCodes(mock.Anything, []int64{1}).Return(int64(1), nil).Once()
		repo.EXPECT().DeletePromoCodes(mock.Anything, []int64{2}).Return(int64(0), nil).Once()

		require.NoError(t, svc.DeletePromoCode(ctx, 1))
		assert.ErrorIs(t, svc.DeletePromoCode(ctx, 2), entities.ErrPromoNotFound)
	})

	t.Run("list", func(t *testing.T) {
		repo := mocks.NewMockPromoRepo(t)
		svc := service.NewPromoService(logger, repo)

		repo.EXPECT().ListPromoCodes(mock.Anything, "hemat").Return([]entities.PromoCode{promo}, nil).Once()

		got, err := svc.ListPromoCodes(ctx, "hemat")
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})
}
