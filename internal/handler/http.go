package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/SergeyBogomolovv/shoe-backoffice/internal/entities"
	"github.com/SergeyBogomolovv/shoe-backoffice/internal/intake"
	"github.com/SergeyBogomolovv/shoe-backoffice/internal/middleware"
	"github.com/SergeyBogomolovv/shoe-backoffice/internal/service"
	"github.com/SergeyBogomolovv/shoe-backoffice/internal/storage"
	"github.com/SergeyBogomolovv/shoe-backoffice/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type OrderManager interface {
	ListOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.OrderSummary, error)
	GetOrder(ctx context.Context, id int64) (entities.Order, error)
	CreateOrder(ctx context.Context, form intake.Form) (entities.Order, error)
	UpdateOrder(ctx context.Context, id int64, form intake.Form) (entities.Order, error)
	ApproveOrder(ctx context.Context, id int64, actor string) (entities.Order, error)
	DeleteOrder(ctx context.Context, id int64) error
	DeleteOrders(ctx context.Context, ids []int64) (int64, error)
}

type DraftManager interface {
	StartDraft(ctx context.Context) (service.Draft, error)
	EditDraft(ctx context.Context, orderID int64) (service.Draft, error)
	GetDraft(ctx context.Context, id string) (service.Draft, error)
	ApplyChange(ctx context.Context, id string, change intake.Change) (service.Draft, error)
	Next(ctx context.Context, id string) (service.Draft, error)
	GoTo(ctx context.Context, id string, step intake.Step) (service.Draft, error)
	SubmitDraft(ctx context.Context, id string) (entities.Order, error)
	DiscardDraft(ctx context.Context, id string) error
}

type PromoManager interface {
	ListPromoCodes(ctx context.Context, search string) ([]entities.PromoCode, error)
	GetPromoCode(ctx context.Context, id int64) (entities.PromoCode, error)
	CreatePromoCode(ctx context.Context, p entities.PromoCode) (entities.PromoCode, error)
	UpdatePromoCode(ctx context.Context, p entities.PromoCode) (entities.PromoCode, error)
	DeletePromoCode(ctx context.Context, id int64) error
	DeletePromoCodes(ctx context.Context, ids []int64) (int64, error)
}

type Catalog interface {
	SearchProducts(ctx context.Context, keywords string) ([]entities.Product, error)
	FrontPage(ctx context.Context) (entities.FrontPageData, error)
	Product(ctx context.Context, id int64) (entities.Product, error)
}

type ProofStorage interface {
	SaveProof(ctx context.Context, r io.Reader) (string, error)
}

// AdminHandler serves the back-office API under /admin.
type AdminHandler struct {
	logger    *slog.Logger
	validate  *validator.Validate
	orders    OrderManager
	drafts    DraftManager
	promos    PromoManager
	catalog   Catalog
	storage   ProofStorage
	maxUpload int64
}

func NewAdminHandler(
	logger *slog.Logger,
	orders OrderManager,
	drafts DraftManager,
	promos PromoManager,
	catalog Catalog,
	storage ProofStorage,
	maxUpload int64,
) *AdminHandler {
	return &AdminHandler{
		logger:    logger.With(slog.String("handler", "admin")),
		validate:  newValidator(),
		orders:    orders,
		drafts:    drafts,
		promos:    promos,
		catalog:   catalog,
		storage:   storage,
		maxUpload: maxUpload,
	}
}

func (h *AdminHandler) Init(r chi.Router) {
	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.Actor)

		r.Get("/orders", h.ListOrders)
		r.Post("/orders", h.CreateOrder)
		r.Post("/orders/bulk-delete", h.DeleteOrders)
		r.Get("/orders/{id}", h.GetOrder)
		r.Put("/orders/{id}", h.UpdateOrder)
		r.Delete("/orders/{id}", h.DeleteOrder)
		r.Post("/orders/{id}/approve", h.ApproveOrder)
		r.Post("/orders/{id}/draft", h.EditDraft)

		r.Post("/drafts", h.StartDraft)
		r.Get("/drafts/{draft_id}", h.GetDraft)
		r.Patch("/drafts/{draft_id}", h.ChangeDraft)
		r.Post("/drafts/{draft_id}/next", h.NextStep)
		r.Post("/drafts/{draft_id}/goto/{step}", h.GoToStep)
		r.Post("/drafts/{draft_id}/submit", h.SubmitDraft)
		r.Delete("/drafts/{draft_id}", h.DiscardDraft)

		r.Get("/products/{id}", h.GetProduct)

		r.Get("/promo-codes", h.ListPromoCodes)
		r.Post("/promo-codes", h.CreatePromoCode)
		r.Post("/promo-codes/bulk-delete", h.DeletePromoCodes)
		r.Get("/promo-codes/{id}", h.GetPromoCode)
		r.Put("/promo-codes/{id}", h.UpdatePromoCode)
		r.Delete("/promo-codes/{id}", h.DeletePromoCode)

		r.Post("/uploads/proof", h.UploadProof)
	})
}

// newValidator reports fields by their json names.
func newValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return validate
}

// pathID reads a positive integer path parameter. It writes the 400 response
// itself and reports false when the parameter is invalid.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		utils.WriteFieldErrors(w, "", map[string]string{name: "numeric"})
		return 0, false
	}
	return id, true
}

// writeError maps service errors to responses. Unknown errors are logged and
// reported as 500.
func writeError(ctx context.Context, logger *slog.Logger, w http.ResponseWriter, err error, msg string) {
	var ve *intake.ValidationError
	switch {
	case errors.As(err, &ve):
		utils.WriteFieldErrors(w, string(ve.Step), ve.Fields)
	case errors.Is(err, entities.ErrOrderNotFound),
		errors.Is(err, entities.ErrDraftNotFound),
		errors.Is(err, entities.ErrPromoNotFound),
		errors.Is(err, entities.ErrProductNotFound):
		utils.WriteError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, entities.ErrOrderAlreadyApproved),
		errors.Is(err, entities.ErrPromoCodeTaken):
		utils.WriteError(w, err.Error(), http.StatusConflict)
	case errors.Is(err, storage.ErrFileTooLarge):
		utils.WriteError(w, err.Error(), http.StatusRequestEntityTooLarge)
	case errors.Is(err, storage.ErrUnsupportedFileType):
		utils.WriteError(w, storage.ErrUnsupportedFileType.Error(), http.StatusUnsupportedMediaType)
	default:
		logger.ErrorContext(ctx, msg, slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}
