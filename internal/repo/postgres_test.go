//go:build integration

package repo_test

import (
	"context"
	"fmt"
	"io"
	"os"
	"testing"

	"github.com/SergeyBogomolovv/shoe-backoffice/internal/config"
	"github.com/SergeyBogomolovv/shoe-backoffice/internal/entities"
	"github.com/SergeyBogomolovv/shoe-backoffice/internal/postgres"
	"github.com/SergeyBogomolovv/shoe-backoffice/internal/repo"
	"github.com/SergeyBogomolovv/shoe-backoffice/pkg/trm"
	embeddedpostgres "github.com/fergusstrange/embedded-postgres"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPort = 54329

var db *sqlx.DB

func TestMain(m *testing.M) {
	pg := embeddedpostgres.NewDatabase(embeddedpostgres.DefaultConfig().
		Port(testPort).
		Database("shoes_test").
		Logger(io.Discard))
	if err := pg.Start(); err != nil {
		fmt.Fprintln(os.Stderr, "failed to start postgres:", err)
		os.Exit(1)
	}

	code := run(m)

	if err := pg.Stop(); err != nil {
		fmt.Fprintln(os.Stderr, "failed to stop postgres:", err)
	}
	os.Exit(code)
}

func run(m *testing.M) int {
	var err error
	db, err = postgres.New(context.Background(), config.Postgres{
		Host:         "localhost",
		Port:         testPort,
		DBName:       "shoes_test",
		User:         "postgres",
		Password:     "postgres",
		SSLMode:      "disable",
		MaxOpenConns: 5,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to connect:", err)
		return 1
	}
	defer db.Close()

	if err := postgres.Migrate(context.Background(), db); err != nil {
		fmt.Fprintln(os.Stderr, "failed to migrate:", err)
		return 1
	}
	return m.Run()
}

type fixture struct {
	productID int64
	sizeID    int64
	promoID   int64
}

func seed(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()

	_, err := db.ExecContext(ctx, `TRUNCATE product_transactions, promo_codes, shoe_sizes, shoes, categories RESTART IDENTITY CASCADE`)
	require.NoError(t, err)

	var f fixture
	var categoryID int64
	require.NoError(t, db.GetContext(ctx, &categoryID,
		`INSERT INTO categories (name, slug) VALUES ('Running', 'running') RETURNING id`))
	require.NoError(t, db.GetContext(ctx, &f.productID,
		`INSERT INTO shoes (category_id, name, slug, price, is_popular) VALUES ($1, 'Air Runner', 'air-runner', 500000, true) RETURNING id`,
		categoryID))
	_, err = db.ExecContext(ctx,
		`INSERT INTO shoes (category_id, name, slug, price) VALUES ($1, 'Trail 100%', 'trail', 300000)`, categoryID)
	require.NoError(t, err)
	require.NoError(t, db.GetContext(ctx, &f.sizeID,
		`INSERT INTO shoe_sizes (shoe_id, size) VALUES ($1, '42') RETURNING id`, f.productID))
	require.NoError(t, db.GetContext(ctx, &f.promoID,
		`INSERT INTO promo_codes (code, discount_amount) VALUES ('HEMAT50', 50000) RETURNING id`))
	return f
}

func newOrder(f fixture, bookingID string) entities.Order {
	promoID := f.promoID
	return entities.Order{
		BookingTrxID: bookingID,
		ProductID:    f.productID,
		SizeID:       f.sizeID,
		Quantity:     2,
		Price:        decimal.NewFromInt(500000),
		SubTotal:     decimal.NewFromInt(1000000),
		Discount:     decimal.NewFromInt(50000),
		GrandTotal:   decimal.NewFromInt(950000),
		PromoCodeID:  &promoID,
		Customer: entities.Customer{
			Name:     "Budi",
			Phone:    "0812",
			Email:    "budi@example.com",
			Address:  "Jl. Merdeka 1",
			City:     "Jakarta",
			PostCode: "10110",
		},
		Payment: entities.Payment{Proof: "proofs/a.png"},
	}
}

func TestCatalog(t *testing.T) {
	f := seed(t)
	r := repo.NewPostgresRepo(db)
	ctx := context.Background()

	product, err := r.GetProduct(ctx, f.productID)
	require.NoError(t, err)
	assert.Equal(t, "Air Runner", product.Name)
	assert.True(t, product.Price.Equal(decimal.NewFromInt(500000)))

	_, err = r.GetProduct(ctx, 999)
	assert.ErrorIs(t, err, entities.ErrProductNotFound)

	sizes, err := r.GetSizes(ctx, f.productID)
	require.NoError(t, err)
	assert.Equal(t, []entities.Size{{ID: f.sizeID, Label: "42"}}, sizes)

	_, err = r.GetSizes(ctx, 999)
	assert.ErrorIs(t, err, entities.ErrProductNotFound)

	found, err := r.SearchProducts(ctx, "runner")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, f.productID, found[0].ID)

	found, err = r.SearchProducts(ctx, "100%")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Trail 100%", found[0].Name)

	popular, err := r.PopularProducts(ctx, 4)
	require.NoError(t, err)
	assert.Len(t, popular, 1)

	newest, err := r.NewProducts(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, newest, 2)

	categories, err := r.AllCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 1)

	for i := range 5 {
		_, err = db.ExecContext(ctx,
			`INSERT INTO shoes (category_id, name, slug, price, is_popular)
			 SELECT category_id, $1, $2, 400000, true FROM shoes WHERE id = $3`,
			fmt.Sprintf("Court %d", i), fmt.Sprintf("court-%d", i), f.productID)
		require.NoError(t, err)
	}

	popular, err = r.PopularProducts(ctx, 4)
	require.NoError(t, err)
	assert.Len(t, popular, 4)
	for _, p := range popular {
		assert.True(t, p.IsPopular)
	}
}

func TestPromoCodes(t *testing.T) {
	f := seed(t)
	r := repo.NewPostgresRepo(db)
	ctx := context.Background()

	_, err := r.CreatePromoCode(ctx, entities.PromoCode{Code: "HEMAT50", DiscountAmount: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, entities.ErrPromoCodeTaken)

	created, err := r.CreatePromoCode(ctx, entities.PromoCode{Code: "DISKON10", DiscountAmount: decimal.NewFromInt(10000)})
	require.NoError(t, err)

	updated, err := r.UpdatePromoCode(ctx, entities.PromoCode{ID: created.ID, Code: "DISKON20", DiscountAmount: decimal.NewFromInt(20000)})
	require.NoError(t, err)
	assert.Equal(t, "DISKON20", updated.Code)

	_, err = r.UpdatePromoCode(ctx, entities.PromoCode{ID: 999, Code: "X", DiscountAmount: decimal.Zero})
	assert.ErrorIs(t, err, entities.ErrPromoNotFound)

	list, err := r.ListPromoCodes(ctx, "diskon")
	require.NoError(t, err)
	require.Len(t, list, 1)

	n, err := r.DeletePromoCodes(ctx, []int64{f.promoID, created.ID})
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	_, err = r.GetPromo(ctx, f.promoID)
	assert.ErrorIs(t, err, entities.ErrPromoNotFound)
}

func TestOrders(t *testing.T) {
	f := seed(t)
	r := repo.NewPostgresRepo(db)
	tx := trm.NewManager(db)
	ctx := context.Background()

	created, err := r.CreateOrder(ctx, newOrder(f, "SHOE1"))
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.True(t, created.GrandTotal.Equal(decimal.NewFromInt(950000)))

	_, err = r.CreateOrder(ctx, newOrder(f, "SHOE1"))
	assert.ErrorIs(t, err, entities.ErrDuplicateBookingID)

	edit := created
	edit.BookingTrxID = "CHANGED"
	edit.Customer.Name = "Siti"
	updated, err := r.UpdateOrder(ctx, edit)
	require.NoError(t, err)
	assert.Equal(t, "Siti", updated.Customer.Name)
	assert.Equal(t, "SHOE1", updated.BookingTrxID)

	list, err := r.ListOrders(ctx, entities.OrderFilter{Search: "siti"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Air Runner", list[0].ProductName)

	list, err = r.ListOrders(ctx, entities.OrderFilter{Search: "shoe1"})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	// Поиск идёт только по имени покупателя и номеру брони
	for _, search := range []string{"0812", "air runner", "jakarta"} {
		list, err = r.ListOrders(ctx, entities.OrderFilter{Search: search})
		require.NoError(t, err)
		assert.Empty(t, list, search)
	}

	err = tx.Do(ctx, func(ctx context.Context) error {
		paid, err := r.MarkOrderPaid(ctx, created.ID)
		require.NoError(t, err)
		assert.True(t, paid.Payment.IsPaid)
		assert.Equal(t, created.ID, paid.ID)
		assert.Equal(t, "SHOE1", paid.BookingTrxID)
		return nil
	})
	require.NoError(t, err)

	_, err = r.MarkOrderPaid(ctx, created.ID)
	assert.ErrorIs(t, err, entities.ErrOrderAlreadyApproved)

	// Удаление промокода не удаляет заказ
	_, err = r.DeletePromoCodes(ctx, []int64{f.promoID})
	require.NoError(t, err)
	got, err := r.GetOrderByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got.PromoCodeID)
	assert.True(t, got.Payment.IsPaid)

	n, err := r.DeleteOrders(ctx, []int64{created.ID})
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	_, err = r.GetOrderByID(ctx, created.ID)
	assert.ErrorIs(t, err, entities.ErrOrderNotFound)
}
