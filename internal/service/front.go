package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/shoe-backoffice/internal/entities"
	"github.com/SergeyBogomolovv/shoe-backoffice/pkg/utils"
	"golang.org/x/sync/errgroup"
)

const (
	popularProductsLimit = 4
	frontPageKey         = "front_page"
)

type CatalogRepo interface {
	GetProduct(ctx context.Context, id int64) (entities.Product, error)
	GetSizes(ctx context.Context, productID int64) ([]entities.Size, error)
	SearchProducts(ctx context.Context, keywords string) ([]entities.Product, error)
	PopularProducts(ctx context.Context, limit int) ([]entities.Product, error)
	NewProducts(ctx context.Context, limit int) ([]entities.Product, error)
	AllCategories(ctx context.Context) ([]entities.Category, error)
}

type frontService struct {
	logger *slog.Logger
	repo   CatalogRepo
	cache  Cache
	retry  utils.RetryConfig
}

// NewFrontService creates the read-only catalog service. cache may be nil,
// then the front page is loaded on every request.
func NewFrontService(logger *slog.Logger, repo CatalogRepo, cache Cache) *frontService {
	return &frontService{
		logger: logger.With(slog.String("service", "front")),
		repo:   repo,
		cache:  cache,
		retry:  utils.DefaultRetry,
	}
}

func (s *frontService) SearchProducts(ctx context.Context, keywords string) ([]entities.Product, error) {
	var products []entities.Product
	fn := func() error {
		var err error
		products, err = s.repo.SearchProducts(ctx, keywords)
		return err
	}
	if err := utils.Retry(ctx, s.retry, fn); err != nil {
		return nil, err
	}
	return products, nil
}

// FrontPage loads categories, popular and new products concurrently.
func (s *frontService) FrontPage(ctx context.Context) (entities.FrontPageData, error) {
	if data, ok := s.cached(ctx); ok {
		return data, nil
	}

	var data entities.FrontPageData
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		data.Categories, err = s.repo.AllCategories(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		data.PopularProducts, err = s.repo.PopularProducts(gctx, popularProductsLimit)
		if len(data.PopularProducts) > popularProductsLimit {
			data.PopularProducts = data.PopularProducts[:popularProductsLimit]
		}
		return err
	})
	g.Go(func() error {
		var err error
		data.NewProducts, err = s.repo.NewProducts(gctx, 0)
		return err
	})
	if err := g.Wait(); err != nil {
		return entities.FrontPageData{}, fmt.Errorf("failed to load front page: %w", err)
	}

	s.store(ctx, data)
	return data, nil
}

// Product returns a product with its sizes.
func (s *frontService) Product(ctx context.Context, id int64) (entities.Product, error) {
	var product entities.Product
	fn := func() error {
		var err error
		product, err = s.repo.GetProduct(ctx, id)
		if err != nil {
			return err
		}
		product.Sizes, err = s.repo.GetSizes(ctx, id)
		return err
	}
	if err := utils.Retry(ctx, s.retry, fn, entities.ErrProductNotFound); err != nil {
		return entities.Product{}, err
	}
	return product, nil
}

func (s *frontService) cached(ctx context.Context) (entities.FrontPageData, bool) {
	if s.cache == nil {
		return entities.FrontPageData{}, false
	}

	raw, ok := s.cache.Get(ctx, frontPageKey)
	if !ok {
		return entities.FrontPageData{}, false
	}

	var data entities.FrontPageData
	if err := json.Unmarshal(raw, &data); err != nil {
		s.logger.WarnContext(ctx, "failed to unmarshal front page", slog.Any("error", err))
		return entities.FrontPageData{}, false
	}
	return data, true
}

func (s *frontService) store(ctx context.Context, data entities.FrontPageData) {
	if s.cache == nil {
		return
	}

	raw, err := json.Marshal(data)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to marshal front page", slog.Any("error", err))
		return
	}
	s.cache.Set(ctx, frontPageKey, raw)
}
