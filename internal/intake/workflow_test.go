package intake_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SergeyBogomolovv/shoe-backoffice/internal/entities"
	"github.com/SergeyBogomolovv/shoe-backoffice/internal/intake"
	mocks "github.com/SergeyBogomolovv/shoe-backoffice/internal/intake/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	airMax = entities.Product{ID: 1, Name: "Nike Air Max", Price: decimal.NewFromInt(500000)}
	ultra  = entities.Product{ID: 2, Name: "Adidas Ultraboost", Price: decimal.NewFromInt(750000)}

	airMaxSizes = []entities.Size{{ID: 10, Label: "40"}, {ID: 11, Label: "41"}, {ID: 12, Label: "42"}}
	ultraSizes  = []entities.Size{{ID: 20, Label: "41"}, {ID: 21, Label: "43"}}

	promo50k = entities.PromoCode{ID: 7, Code: "HEMAT50", DiscountAmount: decimal.NewFromInt(50000)}

	validCustomer = entities.Customer{
		Name:     "Budi Santoso",
		Phone:    "+6281234567890",
		Email:    "budi@example.com",
		Address:  "Jl. Merdeka 1",
		City:     "Jakarta",
		PostCode: "10110",
	}
)

type deps struct {
	catalog *mocks.MockCatalog
	promos  *mocks.MockPromos
	ids     *mocks.MockIDGenerator
}

func newWorkflow(t *testing.T) (*intake.Workflow, deps) {
	d := deps{
		catalog: mocks.NewMockCatalog(t),
		promos:  mocks.NewMockPromos(t),
		ids:     mocks.NewMockIDGenerator(t),
	}
	return intake.New(d.catalog, d.promos, d.ids), d
}

func expectProduct(d deps, p entities.Product, sizes []entities.Size) {
	d.catalog.EXPECT().GetProduct(mock.Anything, p.ID).Return(p, nil)
	d.catalog.EXPECT().GetSizes(mock.Anything, p.ID).Return(sizes, nil)
}

func assertMoney(t *testing.T, want int64, got decimal.Decimal, field string) {
	t.Helper()
	assert.True(t, decimal.NewFromInt(want).Equal(got), "%s: want %d, got %s", field, want, got)
}

func TestWorkflow_PricingExample(t *testing.T) {
	ctx := context.Background()
	w, d := newWorkflow(t)

	expectProduct(d, airMax, airMaxSizes)
	d.ids.EXPECT().Generate().Return("SHOE01").Once()
	d.promos.EXPECT().GetPromo(mock.Anything, promo50k.ID).Return(promo50k, nil).Once()

	draft, err := w.SelectProduct(ctx, intake.NewDraft(), airMax.ID)
	require.NoError(t, err)
	draft = intake.ChangeQuantity(draft, 2)
	assertMoney(t, 1000000, draft.SubTotal, "subtotal")
	assertMoney(t, 1000000, draft.GrandTotal, "grand total")

	promoID := promo50k.ID
	draft, err = w.SelectPromo(ctx, draft, &promoID)
	require.NoError(t, err)
	assertMoney(t, 50000, draft.Discount, "discount")
	assertMoney(t, 950000, draft.GrandTotal, "grand total")

	draft, err = w.SelectPromo(ctx, draft, nil)
	require.NoError(t, err)
	assert.Nil(t, draft.PromoCodeID)
	assertMoney(t, 0, draft.Discount, "discount")
	assertMoney(t, 1000000, draft.GrandTotal, "grand total")
}

func TestWorkflow_SelectProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("reprices with the existing quantity", func(t *testing.T) {
		w, d := newWorkflow(t)
		expectProduct(d, airMax, airMaxSizes)
		expectProduct(d, ultra, ultraSizes)
		d.ids.EXPECT().Generate().Return("SHOE01").Once()

		draft, err := w.SelectProduct(ctx, intake.NewDraft(), airMax.ID)
		require.NoError(t, err)
		draft = intake.ChangeQuantity(draft, 3)
		draft = intake.OverrideDiscount(draft, decimal.NewFromInt(100000))

		draft, err = w.SelectProduct(ctx, draft, ultra.ID)
		require.NoError(t, err)

		assertMoney(t, 750000, draft.Price, "price")
		assertMoney(t, 2250000, draft.SubTotal, "subtotal")
		assertMoney(t, 2150000, draft.GrandTotal, "grand total")
		assert.Equal(t, ultraSizes, draft.Sizes)
	})

	t.Run("missing quantity defaults to one", func(t *testing.T) {
		w, d := newWorkflow(t)
		expectProduct(d, airMax, airMaxSizes)
		d.ids.EXPECT().Generate().Return("SHOE01").Once()

		draft, err := w.SelectProduct(ctx, intake.NewDraft(), airMax.ID)
		require.NoError(t, err)

		assert.Nil(t, draft.Quantity)
		assertMoney(t, 500000, draft.SubTotal, "subtotal")
	})

	t.Run("unknown product degrades to no price and no sizes", func(t *testing.T) {
		w, d := newWorkflow(t)
		d.catalog.EXPECT().GetProduct(mock.Anything, int64(99)).
			Return(entities.Product{}, entities.ErrProductNotFound).Once()
		d.ids.EXPECT().Generate().Return("SHOE01").Once()

		draft, err := w.SelectProduct(ctx, intake.NewDraft(), 99)
		require.NoError(t, err)

		assert.Equal(t, int64(99), draft.ProductID)
		assert.Empty(t, draft.Sizes)
		assertMoney(t, 0, draft.Price, "price")
		assertMoney(t, 0, draft.GrandTotal, "grand total")
	})

	t.Run("size no longer offered is cleared", func(t *testing.T) {
		w, d := newWorkflow(t)
		expectProduct(d, airMax, airMaxSizes)
		expectProduct(d, ultra, ultraSizes)
		d.ids.EXPECT().Generate().Return("SHOE01").Once()

		draft, err := w.SelectProduct(ctx, intake.NewDraft(), airMax.ID)
		require.NoError(t, err)
		draft = intake.SelectSize(draft, 12)

		draft, err = w.SelectProduct(ctx, draft, ultra.ID)
		require.NoError(t, err)
		assert.Zero(t, draft.SizeID)
	})

	t.Run("lookup failure is returned", func(t *testing.T) {
		w, d := newWorkflow(t)
		dbErr := errors.New("connection refused")
		d.catalog.EXPECT().GetProduct(mock.Anything, airMax.ID).
			Return(entities.Product{}, dbErr).Once()

		_, err := w.SelectProduct(ctx, intake.NewDraft(), airMax.ID)
		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("input draft is not modified", func(t *testing.T) {
		w, d := newWorkflow(t)
		expectProduct(d, airMax, airMaxSizes)
		expectProduct(d, ultra, ultraSizes)
		d.ids.EXPECT().Generate().Return("SHOE01").Once()

		first, err := w.SelectProduct(ctx, intake.NewDraft(), airMax.ID)
		require.NoError(t, err)

		_, err = w.SelectProduct(ctx, first, ultra.ID)
		require.NoError(t, err)

		assert.Equal(t, airMax.ID, first.ProductID)
		assert.Equal(t, airMaxSizes, first.Sizes)
	})
}

func TestWorkflow_BookingID(t *testing.T) {
	ctx := context.Background()

	t.Run("generated once per new order", func(t *testing.T) {
		w, d := newWorkflow(t)
		expectProduct(d, airMax, airMaxSizes)
		expectProduct(d, ultra, ultraSizes)
		d.promos.EXPECT().GetPromo(mock.Anything, promo50k.ID).Return(promo50k, nil)
		d.ids.EXPECT().Generate().Return("SHOE01").Once()

		draft, err := w.SelectProduct(ctx, intake.NewDraft(), airMax.ID)
		require.NoError(t, err)
		require.Equal(t, "SHOE01", draft.BookingTrxID)

		promoID := promo50k.ID
		draft = intake.ChangeQuantity(draft, 4)
		draft, err = w.SelectPromo(ctx, draft, &promoID)
		require.NoError(t, err)
		draft = intake.SetCustomer(draft, validCustomer)
		draft, err = w.SelectProduct(ctx, draft, ultra.ID)
		require.NoError(t, err)

		assert.Equal(t, "SHOE01", draft.BookingTrxID)
	})

	t.Run("never generated when editing", func(t *testing.T) {
		w, d := newWorkflow(t)
		d.catalog.EXPECT().GetSizes(mock.Anything, airMax.ID).Return(airMaxSizes, nil)
		expectProduct(d, ultra, ultraSizes)

		order := entities.Order{
			ID:           5,
			BookingTrxID: "SHOE-EXISTING",
			ProductID:    airMax.ID,
			SizeID:       11,
			Quantity:     2,
			Price:        decimal.NewFromInt(450000),
			Discount:     decimal.NewFromInt(50000),
			Customer:     validCustomer,
		}

		draft, err := w.Hydrate(ctx, order)
		require.NoError(t, err)
		draft, err = w.SelectProduct(ctx, draft, ultra.ID)
		require.NoError(t, err)

		assert.Equal(t, "SHOE-EXISTING", draft.BookingTrxID)
		d.ids.AssertNotCalled(t, "Generate")
	})
}

func TestWorkflow_Hydrate(t *testing.T) {
	ctx := context.Background()
	w, d := newWorkflow(t)
	d.catalog.EXPECT().GetSizes(mock.Anything, airMax.ID).Return(airMaxSizes, nil).Once()

	promoID := int64(7)
	order := entities.Order{
		ID:           5,
		BookingTrxID: "SHOE-EXISTING",
		ProductID:    airMax.ID,
		SizeID:       11,
		Quantity:     2,
		Price:        decimal.NewFromInt(450000),
		SubTotal:     decimal.NewFromInt(900000),
		Discount:     decimal.NewFromInt(50000),
		GrandTotal:   decimal.NewFromInt(850000),
		PromoCodeID:  &promoID,
		Customer:     validCustomer,
		Payment:      entities.Payment{IsPaid: true, Proof: "proofs/a.png"},
	}

	draft, err := w.Hydrate(ctx, order)
	require.NoError(t, err)

	assert.Equal(t, intake.ModeEdit, draft.Mode)
	assert.Equal(t, intake.StepProduct, draft.Step)
	assert.Equal(t, airMaxSizes, draft.Sizes)
	assertMoney(t, 450000, draft.Price, "price snapshot")

	draft = intake.ChangeQuantity(draft, 3)
	assertMoney(t, 1350000, draft.SubTotal, "subtotal")
	assertMoney(t, 1300000, draft.GrandTotal, "grand total")
}

func TestWorkflow_ApplyForm(t *testing.T) {
	ctx := context.Background()

	form := intake.Form{
		ProductID: airMax.ID,
		SizeID:    11,
		Quantity:  2,
		Customer:  validCustomer,
		Payment:   entities.Payment{IsPaid: false, Proof: "proofs/a.png"},
	}

	t.Run("new order", func(t *testing.T) {
		w, d := newWorkflow(t)
		expectProduct(d, airMax, airMaxSizes)
		d.promos.EXPECT().GetPromo(mock.Anything, promo50k.ID).Return(promo50k, nil).Once()
		d.ids.EXPECT().Generate().Return("SHOE01").Once()

		f := form
		promoID := promo50k.ID
		f.PromoCodeID = &promoID

		draft, err := w.ApplyForm(ctx, intake.NewDraft(), f)
		require.NoError(t, err)

		assert.Equal(t, "SHOE01", draft.BookingTrxID)
		assert.Equal(t, int64(11), draft.SizeID)
		assertMoney(t, 950000, draft.GrandTotal, "grand total")
		assert.Equal(t, validCustomer, draft.Customer)
		assert.Equal(t, "proofs/a.png", draft.Payment.Proof)
	})

	t.Run("manual discount overrides promo", func(t *testing.T) {
		w, d := newWorkflow(t)
		expectProduct(d, airMax, airMaxSizes)
		d.promos.EXPECT().GetPromo(mock.Anything, promo50k.ID).Return(promo50k, nil).Once()
		d.ids.EXPECT().Generate().Return("SHOE01").Once()

		f := form
		promoID := promo50k.ID
		f.PromoCodeID = &promoID
		discount := decimal.NewFromInt(75000)
		f.Discount = &discount

		draft, err := w.ApplyForm(ctx, intake.NewDraft(), f)
		require.NoError(t, err)

		assertMoney(t, 75000, draft.Discount, "discount")
		assertMoney(t, 925000, draft.GrandTotal, "grand total")
	})

	t.Run("edit keeps price snapshot when product is unchanged", func(t *testing.T) {
		w, d := newWorkflow(t)
		d.catalog.EXPECT().GetSizes(mock.Anything, airMax.ID).Return(airMaxSizes, nil).Once()

		order := entities.Order{
			ID:           5,
			BookingTrxID: "SHOE-EXISTING",
			ProductID:    airMax.ID,
			SizeID:       10,
			Quantity:     1,
			Price:        decimal.NewFromInt(450000),
			Customer:     validCustomer,
		}
		draft, err := w.Hydrate(ctx, order)
		require.NoError(t, err)

		draft, err = w.ApplyForm(ctx, draft, form)
		require.NoError(t, err)

		assert.Equal(t, "SHOE-EXISTING", draft.BookingTrxID)
		assertMoney(t, 450000, draft.Price, "price")
		assertMoney(t, 900000, draft.SubTotal, "subtotal")
	})

	t.Run("empty product does not reserve a booking id", func(t *testing.T) {
		w, d := newWorkflow(t)

		f := form
		f.ProductID = 0

		draft, err := w.ApplyForm(ctx, intake.NewDraft(), f)
		require.NoError(t, err)

		assert.Empty(t, draft.BookingTrxID)
		assert.Zero(t, draft.ProductID)
		assert.Empty(t, draft.Sizes)
		assertMoney(t, 0, draft.GrandTotal, "grand total")
		d.ids.AssertNotCalled(t, "Generate")
		d.catalog.AssertNotCalled(t, "GetProduct", mock.Anything, mock.Anything)

		_, err = w.Submit(draft)
		var ve *intake.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "required", ve.Fields["product_id"])
	})
}

func TestWorkflow_Steps(t *testing.T) {
	ctx := context.Background()

	t.Run("next validates the active step", func(t *testing.T) {
		w, _ := newWorkflow(t)

		_, err := w.Next(intake.NewDraft())

		var ve *intake.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, intake.StepProduct, ve.Step)
		assert.Equal(t, "required", ve.Fields["product_id"])
		assert.Equal(t, "required", ve.Fields["size_id"])
	})

	t.Run("walk through all steps", func(t *testing.T) {
		w, d := newWorkflow(t)
		expectProduct(d, airMax, airMaxSizes)
		d.ids.EXPECT().Generate().Return("SHOE01").Once()

		draft, err := w.SelectProduct(ctx, intake.NewDraft(), airMax.ID)
		require.NoError(t, err)
		draft = intake.SelectSize(draft, 10)
		draft = intake.ChangeQuantity(draft, 1)

		draft, err = w.Next(draft)
		require.NoError(t, err)
		assert.Equal(t, intake.StepCustomer, draft.Step)

		draft = intake.SetCustomer(draft, validCustomer)
		draft, err = w.Next(draft)
		require.NoError(t, err)
		assert.Equal(t, intake.StepPayment, draft.Step)

		draft = intake.SetPayment(draft, entities.Payment{IsPaid: true, Proof: "proofs/a.png"})
		order, err := w.Submit(draft)
		require.NoError(t, err)

		assert.Equal(t, "SHOE01", order.BookingTrxID)
		assert.Equal(t, 1, order.Quantity)
		assert.True(t, order.Payment.IsPaid)
		assertMoney(t, 500000, order.GrandTotal, "grand total")
	})

	t.Run("goto skips validation", func(t *testing.T) {
		draft, err := intake.GoTo(intake.NewDraft(), intake.StepPayment)
		require.NoError(t, err)
		assert.Equal(t, intake.StepPayment, draft.Step)

		_, err = intake.GoTo(draft, intake.Step("shipping"))
		assert.Error(t, err)
	})

	t.Run("submit rejects incomplete customer step", func(t *testing.T) {
		w, d := newWorkflow(t)
		expectProduct(d, airMax, airMaxSizes)
		d.ids.EXPECT().Generate().Return("SHOE01").Once()

		draft, err := w.SelectProduct(ctx, intake.NewDraft(), airMax.ID)
		require.NoError(t, err)
		draft = intake.SelectSize(draft, 10)
		c := validCustomer
		c.Email = "not-an-email"
		c.City = ""
		draft = intake.SetCustomer(draft, c)
		draft = intake.SetPayment(draft, entities.Payment{Proof: "proofs/a.png"})

		_, err = w.Submit(draft)

		var ve *intake.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, intake.StepCustomer, ve.Step)
		assert.Equal(t, map[string]string{"email": "email", "city": "required"}, ve.Fields)
	})
}

func TestWorkflow_ValidateProductStep(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		change     func(d intake.Draft) intake.Draft
		wantFields map[string]string
	}{
		{
			name:   "valid",
			change: func(d intake.Draft) intake.Draft { return d },
		},
		{
			name: "discount larger than subtotal",
			change: func(d intake.Draft) intake.Draft {
				return intake.OverrideDiscount(d, decimal.NewFromInt(600000))
			},
			wantFields: map[string]string{"discount": "ltefield"},
		},
		{
			name: "discount equal to subtotal",
			change: func(d intake.Draft) intake.Draft {
				return intake.OverrideDiscount(d, decimal.NewFromInt(500000))
			},
		},
		{
			name: "negative discount",
			change: func(d intake.Draft) intake.Draft {
				return intake.OverrideDiscount(d, decimal.NewFromInt(-1))
			},
			wantFields: map[string]string{"discount": "gte"},
		},
		{
			name: "zero quantity",
			change: func(d intake.Draft) intake.Draft {
				return intake.ChangeQuantity(d, 0)
			},
			wantFields: map[string]string{"quantity": "required"},
		},
		{
			name: "size of another product",
			change: func(d intake.Draft) intake.Draft {
				return intake.SelectSize(d, 21)
			},
			wantFields: map[string]string{"size_id": "oneof"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w, d := newWorkflow(t)
			expectProduct(d, airMax, airMaxSizes)
			d.ids.EXPECT().Generate().Return("SHOE01").Once()

			draft, err := w.SelectProduct(ctx, intake.NewDraft(), airMax.ID)
			require.NoError(t, err)
			draft = intake.SelectSize(draft, 10)

			err = w.ValidateStep(tc.change(draft), intake.StepProduct)
			if tc.wantFields == nil {
				assert.NoError(t, err)
				return
			}

			var ve *intake.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tc.wantFields, ve.Fields)
		})
	}
}

func TestWorkflow_ValidateUnknownProduct(t *testing.T) {
	w, d := newWorkflow(t)
	d.catalog.EXPECT().GetProduct(mock.Anything, int64(99)).
		Return(entities.Product{}, entities.ErrProductNotFound).Once()
	d.ids.EXPECT().Generate().Return("SHOE01").Once()

	draft, err := w.SelectProduct(context.Background(), intake.NewDraft(), 99)
	require.NoError(t, err)
	draft = intake.SelectSize(draft, 10)

	err = w.ValidateStep(draft, intake.StepProduct)

	var ve *intake.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "gt", ve.Fields["price"])
	assert.Equal(t, "oneof", ve.Fields["size_id"])
}
