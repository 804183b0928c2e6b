package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/SergeyBogomolovv/shoe-backoffice/internal/app"
	"github.com/SergeyBogomolovv/shoe-backoffice/internal/bookingid"
	"github.com/SergeyBogomolovv/shoe-backoffice/internal/config"
	"github.com/SergeyBogomolovv/shoe-backoffice/internal/handler"
	"github.com/SergeyBogomolovv/shoe-backoffice/internal/intake"
	"github.com/SergeyBogomolovv/shoe-backoffice/internal/notify"
	"github.com/SergeyBogomolovv/shoe-backoffice/internal/postgres"
	"github.com/SergeyBogomolovv/shoe-backoffice/internal/repo"
	"github.com/SergeyBogomolovv/shoe-backoffice/internal/service"
	"github.com/SergeyBogomolovv/shoe-backoffice/internal/storage"
	"github.com/SergeyBogomolovv/shoe-backoffice/pkg/cache"
	"github.com/SergeyBogomolovv/shoe-backoffice/pkg/trm"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
)

// @title           Shoe Back-office API
// @version         1.0
// @description     Документация HTTP API
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(context.Background(), conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	if conf.Postgres.Migrate {
		panicIfErr("failed to migrate db", postgres.Migrate(context.Background(), db))
	}

	store := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db)
	ids := bookingid.New(conf.Booking.IDPrefix)
	workflow := intake.New(store, store, ids)

	a := app.New(logger, conf)

	var drafts, frontPage service.Cache
	switch conf.Cache.Driver {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     conf.Redis.Addr,
			Password: conf.Redis.Password,
			DB:       conf.Redis.DB,
		})
		defer client.Close()
		panicIfErr("failed to connect to redis", client.Ping(context.Background()).Err())
		logger.Info("redis connected")

		drafts = cache.NewRedisCache(logger, client, "draft", conf.Cache.DraftTTL)
		if conf.Cache.FrontPageTTL > 0 {
			frontPage = cache.NewRedisCache(logger, client, "front", conf.Cache.FrontPageTTL)
		}
	default:
		draftCache := cache.NewLRUCache("draft", conf.Cache.Capacity, conf.Cache.DraftTTL)
		drafts = draftCache
		a.SetStarters(draftCache)
		if conf.Cache.FrontPageTTL > 0 {
			// одна запись, janitor не нужен
			frontPage = cache.NewLRUCache("front", 1, conf.Cache.FrontPageTTL)
		}
	}

	var notifier service.Notifier = notify.NewLogNotifier(logger)
	if conf.Kafka.Enabled {
		kafkaNotifier := notify.NewKafkaNotifier(logger, conf.Kafka)
		defer kafkaNotifier.Close()
		notifier = kafkaNotifier
	}

	proofs, err := storage.NewLocal(conf.Storage.Dir, conf.Storage.MaxUploadSize)
	panicIfErr("failed to init storage", err)

	orderService := service.NewOrderService(logger, txManager, store, workflow, ids, notifier)
	draftService := service.NewDraftService(logger, drafts, workflow, orderService)
	promoService := service.NewPromoService(logger, store)
	frontService := service.NewFrontService(logger, store, frontPage)

	handler.RegisterMetrics(prometheus.DefaultRegisterer)

	a.SetHTTPHandlers(
		handler.NewAdminHandler(logger, orderService, draftService, promoService, frontService, proofs, conf.Storage.MaxUploadSize),
		handler.NewFrontHandler(logger, frontService),
	)
	if conf.Kafka.Enabled {
		a.SetConsumers(handler.NewKafkaHandler(logger, conf.Kafka, orderService))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to start app", a.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", a.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	case "stage":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
