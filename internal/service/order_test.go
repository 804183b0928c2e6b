package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/SergeyBogomolovv/shoe-backoffice/internal/entities"
	"github.com/SergeyBogomolovv/shoe-backoffice/internal/intake"
	intakeMocks "github.com/SergeyBogomolovv/shoe-backoffice/internal/intake/mocks"
	"github.com/SergeyBogomolovv/shoe-backoffice/internal/service"
	mocks "github.com/SergeyBogomolovv/shoe-backoffice/internal/service/mocks"
	txMocks "github.com/SergeyBogomolovv/shoe-backoffice/pkg/trm/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	airMax      = entities.Product{ID: 1, Name: "Nike Air Max", Price: decimal.NewFromInt(500000)}
	airMaxSizes = []entities.Size{{ID: 10, Label: "41"}, {ID: 11, Label: "42"}}
	promo50k    = entities.PromoCode{ID: 7, Code: "HEMAT50", DiscountAmount: decimal.NewFromInt(50000)}

	customer = entities.Customer{
		Name:     "Budi Santoso",
		Phone:    "+6281234567890",
		Email:    "budi@example.com",
		Address:  "Jl. Merdeka 1",
		City:     "Jakarta",
		PostCode: "10110",
	}
)

func validForm() intake.Form {
	promoID := promo50k.ID
	return intake.Form{
		ProductID:   airMax.ID,
		SizeID:      11,
		Quantity:    2,
		PromoCodeID: &promoID,
		Customer:    customer,
		Payment:     entities.Payment{Proof: "proofs/a.png"},
	}
}

type orderDeps struct {
	repo     *mocks.MockOrderRepo
	notifier *mocks.MockNotifier
	tx       *txMocks.MockManager
	catalog  *intakeMocks.MockCatalog
	promos   *intakeMocks.MockPromos
	ids      *intakeMocks.MockIDGenerator
}

type orderService interface {
	CreateOrder(ctx context.Context, form intake.Form) (entities.Order, error)
	UpdateOrder(ctx context.Context, id int64, form intake.Form) (entities.Order, error)
	ApproveOrder(ctx context.Context, id int64, actor string) (entities.Order, error)
	GetOrder(ctx context.Context, id int64) (entities.Order, error)
	DeleteOrder(ctx context.Context, id int64) error
	DeleteOrders(ctx context.Context, ids []int64) (int64, error)
}

func newOrderService(t *testing.T) (orderService, orderDeps) {
	d := orderDeps{
		repo:     mocks.NewMockOrderRepo(t),
		notifier: mocks.NewMockNotifier(t),
		tx:       txMocks.NewMockManager(t),
		catalog:  intakeMocks.NewMockCatalog(t),
		promos:   intakeMocks.NewMockPromos(t),
		ids:      intakeMocks.NewMockIDGenerator(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	workflow := intake.New(d.catalog, d.promos, d.ids)
	return service.NewOrderService(logger, d.tx, d.repo, workflow, d.ids, d.notifier), d
}

func expectTx(tx *txMocks.MockManager) {
	tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(
			func(ctx context.Context, cb func(ctx context.Context) error) error {
				return cb(ctx)
			})
}

func TestOrderService_CreateOrder(t *testing.T) {
	type MockBehavior func(d orderDeps)

	dbError := errors.New("db error")

	testCases := []struct {
		name         string
		form         func() intake.Form
		mockBehavior MockBehavior
		wantErr      error
		wantBooking  string
	}{
		{
			name: "OK",
			form: validForm,
			mockBehavior: func(d orderDeps) {
				d.catalog.EXPECT().GetProduct(mock.Anything, airMax.ID).Return(airMax, nil).Once()
				d.catalog.EXPECT().GetSizes(mock.Anything, airMax.ID).Return(airMaxSizes, nil).Once()
				d.promos.EXPECT().GetPromo(mock.Anything, promo50k.ID).Return(promo50k, nil).Once()
				d.ids.EXPECT().Generate().Return("SHOE1").Once()
				d.repo.EXPECT().
					CreateOrder(mock.Anything, mock.MatchedBy(func(o entities.Order) bool {
						return o.BookingTrxID == "SHOE1" &&
							o.SubTotal.Equal(decimal.NewFromInt(1000000)) &&
							o.Discount.Equal(decimal.NewFromInt(50000)) &&
							o.GrandTotal.Equal(decimal.NewFromInt(950000)) &&
							!o.Payment.IsPaid
					})).
					RunAndReturn(func(_ context.Context, o entities.Order) (entities.Order, error) {
						o.ID = 1
						return o, nil
					}).Once()
			},
			wantBooking: "SHOE1",
		},
		{
			name: "booking id collision regenerates once",
			form: validForm,
			mockBehavior: func(d orderDeps) {
				d.catalog.EXPECT().GetProduct(mock.Anything, airMax.ID).Return(airMax, nil).Once()
				d.catalog.EXPECT().GetSizes(mock.Anything, airMax.ID).Return(airMaxSizes, nil).Once()
				d.promos.EXPECT().GetPromo(mock.Anything, promo50k.ID).Return(promo50k, nil).Once()
				d.ids.EXPECT().Generate().Return("SHOE1").Once()
				d.ids.EXPECT().Generate().Return("SHOE2").Once()
				d.repo.EXPECT().
					CreateOrder(mock.Anything, mock.MatchedBy(func(o entities.Order) bool { return o.BookingTrxID == "SHOE1" })).
					Return(entities.Order{}, entities.ErrDuplicateBookingID).Once()
				d.repo.EXPECT().
					CreateOrder(mock.Anything, mock.MatchedBy(func(o entities.Order) bool { return o.BookingTrxID == "SHOE2" })).
					RunAndReturn(func(_ context.Context, o entities.Order) (entities.Order, error) {
						o.ID = 1
						return o, nil
					}).Once()
			},
			wantBooking: "SHOE2",
		},
		{
			name: "invalid customer is not persisted",
			form: func() intake.Form {
				f := validForm()
				f.Customer.Email = "not-an-email"
				return f
			},
			mockBehavior: func(d orderDeps) {
				d.catalog.EXPECT().GetProduct(mock.Anything, airMax.ID).Return(airMax, nil).Once()
				d.catalog.EXPECT().GetSizes(mock.Anything, airMax.ID).Return(airMaxSizes, nil).Once()
				d.promos.EXPECT().GetPromo(mock.Anything, promo50k.ID).Return(promo50k, nil).Once()
				d.ids.EXPECT().Generate().Return("SHOE1").Once()
			},
			wantErr: &intake.ValidationError{},
		},
		{
			name: "repo fails",
			form: validForm,
			mockBehavior: func(d orderDeps) {
				d.catalog.EXPECT().GetProduct(mock.Anything, airMax.ID).Return(airMax, nil).Once()
				d.catalog.EXPECT().GetSizes(mock.Anything, airMax.ID).Return(airMaxSizes, nil).Once()
				d.promos.EXPECT().GetPromo(mock.Anything, promo50k.ID).Return(promo50k, nil).Once()
				d.ids.EXPECT().Generate().Return("SHOE1").Once()
				d.repo.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(entities.Order{}, dbError).Once()
			},
			wantErr: dbError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, d := newOrderService(t)
			tc.mockBehavior(d)

			order, err := svc.CreateOrder(context.Background(), tc.form())

			var ve *intake.ValidationError
			if errors.As(tc.wantErr, &ve) {
				require.ErrorAs(t, err, &ve)
				assert.Equal(t, intake.StepCustomer, ve.Step)
				assert.Equal(t, "email", ve.Fields["email"])
				return
			}
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(1), order.ID)
			assert.Equal(t, tc.wantBooking, order.BookingTrxID)
		})
	}
}

func TestOrderService_UpdateOrder(t *testing.T) {
	promoID := promo50k.ID
	stored := entities.Order{
		ID:           5,
		BookingTrxID: "SHOE5",
		ProductID:    airMax.ID,
		SizeID:       10,
		Quantity:     1,
		// цена на момент оформления заказа
		Price:       decimal.NewFromInt(450000),
		SubTotal:    decimal.NewFromInt(450000),
		Discount:    decimal.NewFromInt(50000),
		GrandTotal:  decimal.NewFromInt(400000),
		PromoCodeID: &promoID,
		Customer:    customer,
		Payment:     entities.Payment{Proof: "proofs/a.png"},
	}

	t.Run("keeps price snapshot and booking id", func(t *testing.T) {
		svc, d := newOrderService(t)

		d.repo.EXPECT().GetOrderByID(mock.Anything, int64(5)).Return(stored, nil).Once()
		d.catalog.EXPECT().GetSizes(mock.Anything, airMax.ID).Return(airMaxSizes, nil).Once()
		d.repo.EXPECT().
			UpdateOrder(mock.Anything, mock.MatchedBy(func(o entities.Order) bool {
				return o.ID == 5 &&
					o.BookingTrxID == "SHOE5" &&
					o.Quantity == 2 &&
					o.Price.Equal(decimal.NewFromInt(450000)) &&
					o.GrandTotal.Equal(decimal.NewFromInt(850000))
			})).
			RunAndReturn(func(_ context.Context, o entities.Order) (entities.Order, error) {
				return o, nil
			}).Once()

		updated, err := svc.UpdateOrder(context.Background(), 5, validForm())
		require.NoError(t, err)
		assert.Equal(t, int64(11), updated.SizeID)
	})

	t.Run("not found", func(t *testing.T) {
		svc, d := newOrderService(t)

		d.repo.EXPECT().GetOrderByID(mock.Anything, int64(5)).Return(entities.Order{}, entities.ErrOrderNotFound).Once()

		_, err := svc.UpdateOrder(context.Background(), 5, validForm())
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	})
}

func TestOrderService_ApproveOrder(t *testing.T) {
	type MockBehavior func(d orderDeps)

	unpaid := entities.Order{ID: 3, BookingTrxID: "SHOE3"}
	paid := entities.Order{ID: 3, BookingTrxID: "SHOE3", Payment: entities.Payment{IsPaid: true}}

	testCases := []struct {
		name         string
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name: "OK",
			mockBehavior: func(d orderDeps) {
				d.repo.EXPECT().GetOrderByID(mock.Anything, int64(3)).Return(unpaid, nil).Once()
				d.repo.EXPECT().MarkOrderPaid(mock.Anything, int64(3)).Return(paid, nil).Once()
				d.notifier.EXPECT().
					Notify(mock.Anything, mock.MatchedBy(func(n entities.Notification) bool {
						return n.Recipient == "siti" &&
							n.Title == "Order Approved" &&
							n.Severity == entities.SeveritySuccess &&
							n.Body == "The order has been successfully approved."
					})).
					Return(nil).Once()
			},
		},
		{
			name: "not found",
			mockBehavior: func(d orderDeps) {
				d.repo.EXPECT().GetOrderByID(mock.Anything, int64(3)).Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name: "already approved",
			mockBehavior: func(d orderDeps) {
				d.repo.EXPECT().GetOrderByID(mock.Anything, int64(3)).Return(paid, nil).Once()
			},
			wantErr: entities.ErrOrderAlreadyApproved,
		},
		{
			name: "approved concurrently",
			mockBehavior: func(d orderDeps) {
				d.repo.EXPECT().GetOrderByID(mock.Anything, int64(3)).Return(unpaid, nil).Once()
				d.repo.EXPECT().MarkOrderPaid(mock.Anything, int64(3)).Return(entities.Order{}, entities.ErrOrderAlreadyApproved).Once()
			},
			wantErr: entities.ErrOrderAlreadyApproved,
		},
		{
			name: "notification failure does not fail approval",
			mockBehavior: func(d orderDeps) {
				d.repo.EXPECT().GetOrderByID(mock.Anything, int64(3)).Return(unpaid, nil).Once()
				d.repo.EXPECT().MarkOrderPaid(mock.Anything, int64(3)).Return(paid, nil).Once()
				d.notifier.EXPECT().Notify(mock.Anything, mock.Anything).Return(errors.New("kafka down")).Once()
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, d := newOrderService(t)
			expectTx(d.tx)
			tc.mockBehavior(d)

			order, err := svc.ApproveOrder(context.Background(), 3, "siti")

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Zero(t, order)
				return
			}
			assert.NoError(t, err)
			assert.True(t, order.Payment.IsPaid)
			assert.Equal(t, "SHOE3", order.BookingTrxID)
		})
	}
}

func TestOrderService_GetOrder(t *testing.T) {
	validOrder := entities.Order{ID: 1, BookingTrxID: "SHOE1"}

	testCases := []struct {
		name         string
		mockBehavior func(repo *mocks.MockOrderRepo)
		wantErr      error
		want         entities.Order
	}{
		{
			name: "success",
			mockBehavior: func(repo *mocks.MockOrderRepo) {
				repo.EXPECT().GetOrderByID(mock.Anything, int64(1)).Return(validOrder, nil).Once()
			},
			want: validOrder,
		},
		{
			name: "not found is not retried",
			mockBehavior: func(repo *mocks.MockOrderRepo) {
				repo.EXPECT().GetOrderByID(mock.Anything, int64(1)).Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name: "second attempt from repo",
			mockBehavior: func(repo *mocks.MockOrderRepo) {
				repo.EXPECT().GetOrderByID(mock.Anything, int64(1)).Return(entities.Order{}, errors.New("some error")).Once()
				repo.EXPECT().GetOrderByID(mock.Anything, int64(1)).Return(validOrder, nil).Once()
			},
			want: validOrder,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, d := newOrderService(t)
			tc.mockBehavior(d.repo)

			got, err := svc.GetOrder(context.Background(), 1)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestOrderService_DeleteOrder(t *testing.T) {
	svc, d := newOrderService(t)

	d.repo.EXPECT().DeleteOrders(mock.Anything, []int64{1}).Return(int64(1), nil).Once()
	d.repo.EXPECT().DeleteOrders(mock.Anything, []int64{2}).Return(int64(0), nil).Once()
	d.repo.EXPECT().DeleteOrders(mock.Anything, []int64{1, 2, 3}).Return(int64(2), nil).Once()

	require.NoError(t, svc.DeleteOrder(context.Background(), 1))
	assert.ErrorIs(t, svc.DeleteOrder(context.Background(), 2), entities.ErrOrderNotFound)

	n, err := svc.DeleteOrders(context.Background(), []int64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}
