package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/shoe-backoffice/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

var productColumns = []string{
	"id", "category_id", "name", "slug", "thumbnail", "about", "price", "is_popular", "created_at",
}

func (r *postgresRepo) GetProduct(ctx context.Context, id int64) (entities.Product, error) {
	query, args := r.qb.Select(productColumns...).
		From("shoes").
		Where(sq.Eq{"id": id}).
		MustSql()

	var product Product
	err := r.getContext(ctx, &product, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Product{}, entities.ErrProductNotFound
	}
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to get product: %w", err)
	}
	return ProductToEntity(product), nil
}

// GetSizes returns the sizes of a product ordered by size id.
func (r *postgresRepo) GetSizes(ctx context.Context, productID int64) ([]entities.Size, error) {
	query, args := r.qb.Select("id", "shoe_id", "size").
		From("shoe_sizes").
		Where(sq.Eq{"shoe_id": productID}).
		OrderBy("id").
		MustSql()

	var sizes []Size
	if err := r.selectContext(ctx, &sizes, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select sizes: %w", err)
	}

	if len(sizes) == 0 {
		// Отличаем товар без размеров от несуществующего товара
		if _, err := r.GetProduct(ctx, productID); err != nil {
			return nil, err
		}
		return []entities.Size{}, nil
	}

	result := make([]entities.Size, 0, len(sizes))
	for _, s := range sizes {
		result = append(result, SizeToEntity(s))
	}
	return result, nil
}

func (r *postgresRepo) SearchProducts(ctx context.Context, keywords string) ([]entities.Product, error) {
	query, args := r.qb.Select(productColumns...).
		From("shoes").
		Where(sq.ILike{"name": containsPattern(keywords)}).
		OrderBy("name", "id").
		MustSql()

	return r.selectProducts(ctx, query, args...)
}

func (r *postgresRepo) PopularProducts(ctx context.Context, limit int) ([]entities.Product, error) {
	query, args := r.qb.Select(productColumns...).
		From("shoes").
		Where(sq.Eq{"is_popular": true}).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		MustSql()

	return r.selectProducts(ctx, query, args...)
}

// NewProducts returns the newest products first. limit 0 means all of them.
func (r *postgresRepo) NewProducts(ctx context.Context, limit int) ([]entities.Product, error) {
	q := r.qb.Select(productColumns...).
		From("shoes").
		OrderBy("created_at DESC", "id DESC")
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}

	query, args := q.MustSql()
	return r.selectProducts(ctx, query, args...)
}

func (r *postgresRepo) AllCategories(ctx context.Context) ([]entities.Category, error) {
	query, args := r.qb.Select("id", "name", "slug", "icon").
		From("categories").
		OrderBy("name").
		MustSql()

	var categories []Category
	if err := r.selectContext(ctx, &categories, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select categories: %w", err)
	}

	result := make([]entities.Category, 0, len(categories))
	for _, c := range categories {
		result = append(result, CategoryToEntity(c))
	}
	return result, nil
}

func (r *postgresRepo) selectProducts(ctx context.Context, query string, args ...any) ([]entities.Product, error) {
	var products []Product
	if err := r.selectContext(ctx, &products, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select products: %w", err)
	}

	result := make([]entities.Product, 0, len(products))
	for _, p := range products {
		result = append(result, ProductToEntity(p))
	}
	return result, nil
}
