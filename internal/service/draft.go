package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/shoe-backoffice/internal/entities"
	"github.com/SergeyBogomolovv/shoe-backoffice/internal/intake"
	"github.com/google/uuid"
)

type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte)
	Delete(ctx context.Context, key string)
}

type DraftSaver interface {
	GetOrder(ctx context.Context, id int64) (entities.Order, error)
	SaveDraft(ctx context.Context, d intake.Draft) (entities.Order, error)
}

// Draft is an intake draft stored under an id.
type Draft struct {
	ID string `json:"id"`
	intake.Draft
}

type draftService struct {
	logger   *slog.Logger
	cache    Cache
	workflow *intake.Workflow
	orders   DraftSaver
}

func NewDraftService(logger *slog.Logger, cache Cache, workflow *intake.Workflow, orders DraftSaver) *draftService {
	return &draftService{
		logger:   logger.With(slog.String("service", "draft")),
		cache:    cache,
		workflow: workflow,
		orders:   orders,
	}
}

// StartDraft opens an empty draft for a new order.
func (s *draftService) StartDraft(ctx context.Context) (Draft, error) {
	return s.store(ctx, Draft{ID: uuid.NewString(), Draft: intake.NewDraft()})
}

// EditDraft opens a draft for a stored order.
func (s *draftService) EditDraft(ctx context.Context, orderID int64) (Draft, error) {
	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return Draft{}, err
	}

	d, err := s.workflow.Hydrate(ctx, order)
	if err != nil {
		return Draft{}, err
	}
	return s.store(ctx, Draft{ID: uuid.NewString(), Draft: d})
}

func (s *draftService) GetDraft(ctx context.Context, id string) (Draft, error) {
	data, ok := s.cache.Get(ctx, id)
	if !ok {
		return Draft{}, entities.ErrDraftNotFound
	}

	var d Draft
	if err := json.Unmarshal(data, &d); err != nil {
		s.logger.ErrorContext(ctx, "failed to unmarshal draft", slog.String("id", id), slog.Any("error", err))
		return Draft{}, fmt.Errorf("failed to unmarshal draft: %w", err)
	}
	return d, nil
}

// ApplyChange applies a field change and stores the recomputed draft.
func (s *draftService) ApplyChange(ctx context.Context, id string, change intake.Change) (Draft, error) {
	return s.update(ctx, id, func(d intake.Draft) (intake.Draft, error) {
		return s.workflow.Apply(ctx, d, change)
	})
}

// Next validates the active step and moves the draft to the following one.
// An invalid step leaves the stored draft as it was.
func (s *draftService) Next(ctx context.Context, id string) (Draft, error) {
	return s.update(ctx, id, s.workflow.Next)
}

func (s *draftService) GoTo(ctx context.Context, id string, step intake.Step) (Draft, error) {
	return s.update(ctx, id, func(d intake.Draft) (intake.Draft, error) {
		return intake.GoTo(d, step)
	})
}

// SubmitDraft persists the draft as an order and discards it.
func (s *draftService) SubmitDraft(ctx context.Context, id string) (entities.Order, error) {
	d, err := s.GetDraft(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}

	order, err := s.orders.SaveDraft(ctx, d.Draft)
	if err != nil {
		return entities.Order{}, err
	}

	s.cache.Delete(ctx, id)
	draftsSubmitted.Inc()
	return order, nil
}

func (s *draftService) DiscardDraft(ctx context.Context, id string) error {
	if _, err := s.GetDraft(ctx, id); err != nil {
		return err
	}
	s.cache.Delete(ctx, id)
	return nil
}

func (s *draftService) update(ctx context.Context, id string, fn func(intake.Draft) (intake.Draft, error)) (Draft, error) {
	d, err := s.GetDraft(ctx, id)
	if err != nil {
		return Draft{}, err
	}

	next, err := fn(d.Draft)
	if err != nil {
		return Draft{}, err
	}
	return s.store(ctx, Draft{ID: id, Draft: next})
}

func (s *draftService) store(ctx context.Context, d Draft) (Draft, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return Draft{}, fmt.Errorf("failed to marshal draft: %w", err)
	}
	s.cache.Set(ctx, d.ID, data)
	return d, nil
}
