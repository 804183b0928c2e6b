package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SergeyBogomolovv/shoe-backoffice/internal/entities"
	"github.com/SergeyBogomolovv/shoe-backoffice/internal/handler"
	mocks "github.com/SergeyBogomolovv/shoe-backoffice/internal/handler/mocks"
	"github.com/SergeyBogomolovv/shoe-backoffice/internal/intake"
	"github.com/SergeyBogomolovv/shoe-backoffice/internal/service"
	"github.com/SergeyBogomolovv/shoe-backoffice/internal/storage"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type adminDeps struct {
	orders  *mocks.MockOrderManager
	drafts  *mocks.MockDraftManager
	promos  *mocks.MockPromoManager
	catalog *mocks.MockCatalog
	storage *mocks.MockProofStorage
}

func newAdminRouter(t *testing.T) (chi.Router, adminDeps) {
	d := adminDeps{
		orders:  mocks.NewMockOrderManager(t),
		drafts:  mocks.NewMockDraftManager(t),
		promos:  mocks.NewMockPromoManager(t),
		catalog: mocks.NewMockCatalog(t),
		storage: mocks.NewMockProofStorage(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewAdminHandler(logger, d.orders, d.drafts, d.promos, d.catalog, d.storage, 1<<20)

	r := chi.NewRouter()
	h.Init(r)
	return r, d
}

func serve(t *testing.T, r http.Handler, req *http.Request) (int, string) {
	t.Helper()
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	res := rr.Result()
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res.StatusCode, string(body)
}

func TestAdminHandler_CreateOrder(t *testing.T) {
	created := entities.Order{
		ID:           1,
		BookingTrxID: "SHOE01",
		ProductID:    1,
		SizeID:       11,
		Quantity:     2,
		Price:        decimal.NewFromInt(500000),
		SubTotal:     decimal.NewFromInt(1000000),
		Discount:     decimal.NewFromInt(50000),
		GrandTotal:   decimal.NewFromInt(950000),
	}

	validBody := `{"product_id":1,"size_id":11,"quantity":2,"promo_code_id":7,
		"customer":{"name":"Budi","phone":"0812","email":"budi@example.com","address":"Jl. Merdeka 1","city":"Jakarta","post_code":"10110"},
		"proof":"proofs/a.png"}`

	testCases := []struct {
		name         string
		body         string
		mockBehavior func(orders *mocks.MockOrderManager)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "created",
			body: validBody,
			mockBehavior: func(orders *mocks.MockOrderManager) {
				orders.EXPECT().
					CreateOrder(mock.Anything, mock.MatchedBy(func(f intake.Form) bool {
						return f.ProductID == 1 && f.SizeID == 11 && f.Quantity == 2 &&
							f.PromoCodeID != nil && *f.PromoCodeID == 7 &&
							f.Customer.Email == "budi@example.com" && f.Discount == nil
					})).
					Return(created, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"grand_total_amount":"950000"`,
		},
		{
			name: "step validation error",
			body: validBody,
			mockBehavior: func(orders *mocks.MockOrderManager) {
				orders.EXPECT().CreateOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, &intake.ValidationError{
						Step:   intake.StepProduct,
						Fields: map[string]string{"discount": "ltefield"},
					}).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"fields":{"discount":"ltefield"}`,
		},
		{
			name:         "unknown field",
			body:         `{"grand_total_amount":1}`,
			mockBehavior: func(*mocks.MockOrderManager) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid request body"`,
		},
		{
			name:         "too long proof",
			body:         `{"proof":"` + strings.Repeat("a", 256) + `"}`,
			mockBehavior: func(*mocks.MockOrderManager) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"proof":"max"`,
		},
		{
			name: "internal error",
			body: validBody,
			mockBehavior: func(orders *mocks.MockOrderManager) {
				orders.EXPECT().CreateOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, d := newAdminRouter(t)
			tc.mockBehavior(d.orders)

			req := httptest.NewRequest(http.MethodPost, "/admin/orders", strings.NewReader(tc.body))
			status, body := serve(t, r, req)

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestAdminHandler_GetOrder(t *testing.T) {
	testCases := []struct {
		name         string
		id           string
		mockBehavior func(orders *mocks.MockOrderManager)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			id:   "1",
			mockBehavior: func(orders *mocks.MockOrderManager) {
				orders.EXPECT().GetOrder(mock.Anything, int64(1)).
					Return(entities.Order{ID: 1, BookingTrxID: "SHOE01"}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"booking_trx_id":"SHOE01"`,
		},
		{
			name: "not found",
			id:   "2",
			mockBehavior: func(orders *mocks.MockOrderManager) {
				orders.EXPECT().GetOrder(mock.Anything, int64(2)).
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
		{
			name:         "invalid id",
			id:           "abc",
			mockBehavior: func(*mocks.MockOrderManager) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"id":"numeric"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, d := newAdminRouter(t)
			tc.mockBehavior(d.orders)

			status, body := serve(t, r, httptest.NewRequest(http.MethodGet, "/admin/orders/"+tc.id, nil))

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestAdminHandler_ListOrders(t *testing.T) {
	r, d := newAdminRouter(t)

	d.orders.EXPECT().
		ListOrders(mock.Anything, mock.MatchedBy(func(f entities.OrderFilter) bool {
			return f.ProductID != nil && *f.ProductID == 3 && f.Search == "budi"
		})).
		Return([]entities.OrderSummary{{ID: 1, ProductName: "Nike Air Max"}}, nil).Once()

	status, body := serve(t, r, httptest.NewRequest(http.MethodGet, "/admin/orders?product_id=3&search=budi", nil))
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"product_name":"Nike Air Max"`)

	status, _ = serve(t, r, httptest.NewRequest(http.MethodGet, "/admin/orders?product_id=x", nil))
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestAdminHandler_ApproveOrder(t *testing.T) {
	testCases := []struct {
		name       string
		header     string
		wantActor  string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "approved",
			header:     "siti",
			wantActor:  "siti",
			wantStatus: http.StatusOK,
			wantBody:   `"is_paid":true`,
		},
		{
			name:       "default actor",
			wantActor:  "admin",
			wantStatus: http.StatusOK,
			wantBody:   `"booking_trx_id":"SHOE01"`,
		},
		{
			name:       "not found",
			wantActor:  "admin",
			err:        entities.ErrOrderNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "already approved",
			wantActor:  "admin",
			err:        entities.ErrOrderAlreadyApproved,
			wantStatus: http.StatusConflict,
			wantBody:   "order already approved",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, d := newAdminRouter(t)
			var approved entities.Order
			if tc.err == nil {
				approved = entities.Order{
					ID:           5,
					BookingTrxID: "SHOE01",
					Payment:      entities.Payment{IsPaid: true, Proof: "proofs/a.png"},
				}
			}
			d.orders.EXPECT().ApproveOrder(mock.Anything, int64(5), tc.wantActor).Return(approved, tc.err).Once()

			req := httptest.NewRequest(http.MethodPost, "/admin/orders/5/approve", nil)
			if tc.header != "" {
				req.Header.Set("X-Admin-User", tc.header)
			}
			status, body := serve(t, r, req)

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestAdminHandler_BulkDelete(t *testing.T) {
	r, d := newAdminRouter(t)

	d.orders.EXPECT().DeleteOrders(mock.Anything, []int64{1, 2}).Return(int64(2), nil).Once()
	d.promos.EXPECT().DeletePromoCodes(mock.Anything, []int64{3}).Return(int64(1), nil).Once()

	status, body := serve(t, r, httptest.NewRequest(http.MethodPost, "/admin/orders/bulk-delete", strings.NewReader(`{"ids":[1,2]}`)))
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"deleted":2}`, body)

	status, body = serve(t, r, httptest.NewRequest(http.MethodPost, "/admin/promo-codes/bulk-delete", strings.NewReader(`{"ids":[3]}`)))
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"deleted":1}`, body)

	status, body = serve(t, r, httptest.NewRequest(http.MethodPost, "/admin/orders/bulk-delete", strings.NewReader(`{"ids":[]}`)))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body, `"ids":"min"`)
}

func TestAdminHandler_Drafts(t *testing.T) {
	quantity := 2
	draft := service.Draft{
		ID: "d1",
		Draft: intake.Draft{
			Mode:         intake.ModeCreate,
			Step:         intake.StepProduct,
			BookingTrxID: "SHOE01",
			ProductID:    1,
			Sizes:        []entities.Size{{ID: 11, Label: "42"}},
			SizeID:       11,
			Quantity:     &quantity,
			Price:        decimal.NewFromInt(500000),
			SubTotal:     decimal.NewFromInt(1000000),
			GrandTotal:   decimal.NewFromInt(1000000),
		},
	}

	t.Run("start", func(t *testing.T) {
		r, d := newAdminRouter(t)
		d.drafts.EXPECT().StartDraft(mock.Anything).Return(service.Draft{ID: "d1", Draft: intake.NewDraft()}, nil).Once()

		status, body := serve(t, r, httptest.NewRequest(http.MethodPost, "/admin/drafts", nil))
		assert.Equal(t, http.StatusCreated, status)
		assert.Contains(t, body, `"sizes":[]`)
		assert.Contains(t, body, `"step":"product"`)
	})

	t.Run("change", func(t *testing.T) {
		r, d := newAdminRouter(t)
		d.drafts.EXPECT().
			ApplyChange(mock.Anything, "d1", mock.MatchedBy(func(c intake.Change) bool {
				return c.Quantity != nil && *c.Quantity == 2 && c.ProductID == nil
			})).
			Return(draft, nil).Once()

		req := httptest.NewRequest(http.MethodPatch, "/admin/drafts/d1", strings.NewReader(`{"quantity":2}`))
		status, body := serve(t, r, req)
		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, `"sub_total_amount":"1000000"`)
		assert.Contains(t, body, `"sizes":[{"id":11,"size":"42"}]`)
	})

	t.Run("next with invalid step", func(t *testing.T) {
		r, d := newAdminRouter(t)
		d.drafts.EXPECT().Next(mock.Anything, "d1").
			Return(service.Draft{}, &intake.ValidationError{
				Step:   intake.StepCustomer,
				Fields: map[string]string{"email": "email"},
			}).Once()

		status, body := serve(t, r, httptest.NewRequest(http.MethodPost, "/admin/drafts/d1/next", nil))
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Contains(t, body, `"step":"customer"`)
		assert.Contains(t, body, `"email":"email"`)
	})

	t.Run("goto", func(t *testing.T) {
		r, d := newAdminRouter(t)
		d.drafts.EXPECT().GoTo(mock.Anything, "d1", intake.StepPayment).Return(draft, nil).Once()

		status, _ := serve(t, r, httptest.NewRequest(http.MethodPost, "/admin/drafts/d1/goto/payment", nil))
		assert.Equal(t, http.StatusOK, status)

		status, body := serve(t, r, httptest.NewRequest(http.MethodPost, "/admin/drafts/d1/goto/shipping", nil))
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Contains(t, body, `"step":"oneof"`)
	})

	t.Run("submit missing draft", func(t *testing.T) {
		r, d := newAdminRouter(t)
		d.drafts.EXPECT().SubmitDraft(mock.Anything, "gone").Return(entities.Order{}, entities.ErrDraftNotFound).Once()

		status, body := serve(t, r, httptest.NewRequest(http.MethodPost, "/admin/drafts/gone/submit", nil))
		assert.Equal(t, http.StatusNotFound, status)
		assert.Contains(t, body, "draft not found")
	})

	t.Run("edit order", func(t *testing.T) {
		r, d := newAdminRouter(t)
		edit := draft
		edit.Mode = intake.ModeEdit
		edit.OrderID = 4
		d.drafts.EXPECT().EditDraft(mock.Anything, int64(4)).Return(edit, nil).Once()

		status, body := serve(t, r, httptest.NewRequest(http.MethodPost, "/admin/orders/4/draft", nil))
		assert.Equal(t, http.StatusCreated, status)
		assert.Contains(t, body, `"mode":"edit"`)
		assert.Contains(t, body, `"order_id":4`)
	})

	t.Run("discard", func(t *testing.T) {
		r, d := newAdminRouter(t)
		d.drafts.EXPECT().DiscardDraft(mock.Anything, "d1").Return(nil).Once()

		status, _ := serve(t, r, httptest.NewRequest(http.MethodDelete, "/admin/drafts/d1", nil))
		assert.Equal(t, http.StatusNoContent, status)
	})
}

func TestAdminHandler_PromoCodes(t *testing.T) {
	promo := entities.PromoCode{ID: 7, Code: "HEMAT50", DiscountAmount: decimal.NewFromInt(50000)}

	testCases := []struct {
		name         string
		body         string
		mockBehavior func(promos *mocks.MockPromoManager)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "created",
			body: `{"code":"HEMAT50","discount_amount":"50000"}`,
			mockBehavior: func(promos *mocks.MockPromoManager) {
				promos.EXPECT().
					CreatePromoCode(mock.Anything, mock.MatchedBy(func(p entities.PromoCode) bool {
						return p.Code == "HEMAT50" && p.DiscountAmount.Equal(decimal.NewFromInt(50000))
					})).
					Return(promo, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"code":"HEMAT50"`,
		},
		{
			name: "duplicate",
			body: `{"code":"HEMAT50","discount_amount":1}`,
			mockBehavior: func(promos *mocks.MockPromoManager) {
				promos.EXPECT().CreatePromoCode(mock.Anything, mock.Anything).
					Return(entities.PromoCode{}, entities.ErrPromoCodeTaken).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   "promo code already exists",
		},
		{
			name:         "negative discount",
			body:         `{"code":"X","discount_amount":"-1"}`,
			mockBehavior: func(*mocks.MockPromoManager) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"discount_amount":"gte"`,
		},
		{
			name:         "missing code",
			body:         `{"discount_amount":"1"}`,
			mockBehavior: func(*mocks.MockPromoManager) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"code":"required"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, d := newAdminRouter(t)
			tc.mockBehavior(d.promos)

			status, body := serve(t, r, httptest.NewRequest(http.MethodPost, "/admin/promo-codes", strings.NewReader(tc.body)))

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestAdminHandler_GetProduct(t *testing.T) {
	r, d := newAdminRouter(t)

	d.catalog.EXPECT().Product(mock.Anything, int64(1)).Return(entities.Product{
		ID:    1,
		Name:  "Nike Air Max",
		Price: decimal.NewFromInt(500000),
		Sizes: []entities.Size{{ID: 10, Label: "41"}},
	}, nil).Once()
	d.catalog.EXPECT().Product(mock.Anything, int64(2)).Return(entities.Product{}, entities.ErrProductNotFound).Once()

	status, body := serve(t, r, httptest.NewRequest(http.MethodGet, "/admin/products/1", nil))
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"price":"500000"`)
	assert.Contains(t, body, `"sizes":[{"id":10,"size":"41"}]`)

	status, _ = serve(t, r, httptest.NewRequest(http.MethodGet, "/admin/products/2", nil))
	assert.Equal(t, http.StatusNotFound, status)
}

func multipartBody(t *testing.T, field string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, "proof.png")
	require.NoError(t, err)
	_, err = fw.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestAdminHandler_UploadProof(t *testing.T) {
	testCases := []struct {
		name         string
		field        string
		mockBehavior func(s *mocks.MockProofStorage)
		wantStatus   int
		wantBody     string
	}{
		{
			name:  "stored",
			field: "file",
			mockBehavior: func(s *mocks.MockProofStorage) {
				s.EXPECT().SaveProof(mock.Anything, mock.Anything).Return("proofs/abc.png", nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"path":"proofs/abc.png"`,
		},
		{
			name:  "not an image",
			field: "file",
			mockBehavior: func(s *mocks.MockProofStorage) {
				s.EXPECT().SaveProof(mock.Anything, mock.Anything).Return("", storage.ErrUnsupportedFileType).Once()
			},
			wantStatus: http.StatusUnsupportedMediaType,
		},
		{
			name:  "too large",
			field: "file",
			mockBehavior: func(s *mocks.MockProofStorage) {
				s.EXPECT().SaveProof(mock.Anything, mock.Anything).Return("", storage.ErrFileTooLarge).Once()
			},
			wantStatus: http.StatusRequestEntityTooLarge,
		},
		{
			name:         "missing file",
			field:        "other",
			mockBehavior: func(*mocks.MockProofStorage) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     "file is required",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, d := newAdminRouter(t)
			tc.mockBehavior(d.storage)

			body, contentType := multipartBody(t, tc.field, []byte("data"))
			req := httptest.NewRequest(http.MethodPost, "/admin/uploads/proof", body)
			req.Header.Set("Content-Type", contentType)

			status, resp := serve(t, r, req)
			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, resp, tc.wantBody)
		})
	}
}

func TestFrontHandler(t *testing.T) {
	catalog := mocks.NewMockCatalog(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewFrontHandler(logger, catalog)

	r := chi.NewRouter()
	h.Init(r)

	catalog.EXPECT().FrontPage(mock.Anything).Return(entities.FrontPageData{
		Categories:      []entities.Category{{ID: 1, Name: "Running"}},
		PopularProducts: []entities.Product{{ID: 1, Name: "Nike Air Max"}},
	}, nil).Once()
	catalog.EXPECT().SearchProducts(mock.Anything, "air").Return([]entities.Product{{ID: 1, Name: "Nike Air Max"}}, nil).Once()
	catalog.EXPECT().SearchProducts(mock.Anything, "").Return(nil, errors.New("db error")).Once()

	status, body := serve(t, r, httptest.NewRequest(http.MethodGet, "/front", nil))
	require.Equal(t, http.StatusOK, status)

	var page map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(body), &page))
	assert.JSONEq(t, `[]`, string(page["new_products"]))
	assert.Contains(t, string(page["popular_products"]), `"name":"Nike Air Max"`)

	status, body = serve(t, r, httptest.NewRequest(http.MethodGet, "/front/search?keywords=air", nil))
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"id":1`)

	status, _ = serve(t, r, httptest.NewRequest(http.MethodGet, "/front/search", nil))
	assert.Equal(t, http.StatusInternalServerError, status)
}
