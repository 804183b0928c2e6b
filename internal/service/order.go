package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/shoe-backoffice/internal/entities"
	"github.com/SergeyBogomolovv/shoe-backoffice/internal/intake"
	"github.com/SergeyBogomolovv/shoe-backoffice/pkg/trm"
	"github.com/SergeyBogomolovv/shoe-backoffice/pkg/utils"
)

const (
	approvedTitle = "Order Approved"
	approvedBody  = "The order has been successfully approved."
)

type OrderRepo interface {
	GetOrderByID(ctx context.Context, id int64) (entities.Order, error)
	ListOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.OrderSummary, error)
	CreateOrder(ctx context.Context, o entities.Order) (entities.Order, error)

	// UpdateOrder не меняет booking_trx_id
	UpdateOrder(ctx context.Context, o entities.Order) (entities.Order, error)
	MarkOrderPaid(ctx context.Context, id int64) (entities.Order, error)
	DeleteOrders(ctx context.Context, ids []int64) (int64, error)
}

type Notifier interface {
	Notify(ctx context.Context, n entities.Notification) error
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo
	workflow  *intake.Workflow
	ids       intake.IDGenerator
	notifier  Notifier
	retry     utils.RetryConfig
}

func NewOrderService(
	logger *slog.Logger,
	txManager trm.Manager,
	repo OrderRepo,
	workflow *intake.Workflow,
	ids intake.IDGenerator,
	notifier Notifier,
) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		repo:      repo,
		workflow:  workflow,
		ids:       ids,
		notifier:  notifier,
		retry:     utils.DefaultRetry,
	}
}

// CreateOrder runs a complete form through the intake workflow and stores the
// resulting order.
func (s *orderService) CreateOrder(ctx context.Context, form intake.Form) (entities.Order, error) {
	d, err := s.workflow.ApplyForm(ctx, intake.NewDraft(), form)
	if err != nil {
		return entities.Order{}, err
	}
	return s.SaveDraft(ctx, d)
}

// UpdateOrder applies a complete form to a stored order. The stored price
// snapshot is kept unless the product changes.
func (s *orderService) UpdateOrder(ctx context.Context, id int64, form intake.Form) (entities.Order, error) {
	order, err := s.GetOrder(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}

	d, err := s.workflow.Hydrate(ctx, order)
	if err != nil {
		return entities.Order{}, err
	}
	d, err = s.workflow.ApplyForm(ctx, d, form)
	if err != nil {
		return entities.Order{}, err
	}
	return s.SaveDraft(ctx, d)
}

// SaveDraft validates every step of the draft and persists it, inserting a
// create-mode draft and overwriting the order of an edit-mode one.
func (s *orderService) SaveDraft(ctx context.Context, d intake.Draft) (entities.Order, error) {
	order, err := s.workflow.Submit(d)
	if err != nil {
		return entities.Order{}, err
	}

	if d.Mode == intake.ModeEdit {
		updated, err := s.repo.UpdateOrder(ctx, order)
		if err != nil {
			return entities.Order{}, fmt.Errorf("failed to update order: %w", err)
		}
		ordersUpdated.Inc()
		s.logger.DebugContext(ctx, "order updated", slog.Int64("id", updated.ID))
		return updated, nil
	}

	created, err := s.repo.CreateOrder(ctx, order)
	if errors.Is(err, entities.ErrDuplicateBookingID) {
		s.logger.WarnContext(ctx, "booking id collision, regenerating", slog.String("booking_trx_id", order.BookingTrxID))
		order.BookingTrxID = s.ids.Generate()
		created, err = s.repo.CreateOrder(ctx, order)
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to create order: %w", err)
	}

	ordersCreated.Inc()
	s.logger.DebugContext(ctx, "order created", slog.Int64("id", created.ID), slog.String("booking_trx_id", created.BookingTrxID))
	return created, nil
}

// ApproveOrder marks an unpaid order as paid and notifies the acting
// administrator. Approval cannot be undone.
func (s *orderService) ApproveOrder(ctx context.Context, id int64, actor string) (entities.Order, error) {
	var approved entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.repo.GetOrderByID(ctx, id)
		if err != nil {
			return err
		}
		if order.Payment.IsPaid {
			return entities.ErrOrderAlreadyApproved
		}

		// Условный UPDATE защищает от параллельного подтверждения
		approved, err = s.repo.MarkOrderPaid(ctx, id)
		return err
	})
	if err != nil {
		return entities.Order{}, err
	}

	ordersApproved.Inc()
	s.logger.InfoContext(ctx, "order approved", slog.Int64("id", id), slog.String("actor", actor))

	notification := entities.Notification{
		Recipient: actor,
		Title:     approvedTitle,
		Severity:  entities.SeveritySuccess,
		Body:      approvedBody,
		CreatedAt: time.Now(),
	}
	if err := s.notifier.Notify(ctx, notification); err != nil {
		s.logger.ErrorContext(ctx, "failed to send notification", slog.Int64("id", id), slog.Any("error", err))
	}
	return approved, nil
}

func (s *orderService) GetOrder(ctx context.Context, id int64) (entities.Order, error) {
	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.repo.GetOrderByID(ctx, id)
		return err
	}
	if err := utils.Retry(ctx, s.retry, fn, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, err
	}
	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.OrderSummary, error) {
	var orders []entities.OrderSummary
	fn := func() error {
		var err error
		orders, err = s.repo.ListOrders(ctx, filter)
		return err
	}
	if err := utils.Retry(ctx, s.retry, fn); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *orderService) DeleteOrder(ctx context.Context, id int64) error {
	n, err := s.repo.DeleteOrders(ctx, []int64{id})
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	if n == 0 {
		return entities.ErrOrderNotFound
	}
	return nil
}

func (s *orderService) DeleteOrders(ctx context.Context, ids []int64) (int64, error) {
	n, err := s.repo.DeleteOrders(ctx, ids)
	if err != nil {
		return 0, fmt.Errorf("failed to delete orders: %w", err)
	}
	return n, nil
}
