package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Product-X-Deepak/EazyDelivery-sub002/internal/application/service"
	"github.com/Product-X-Deepak/EazyDelivery-sub002/internal/bridge"
	"github.com/Product-X-Deepak/EazyDelivery-sub002/internal/cache"
	"github.com/Product-X-Deepak/EazyDelivery-sub002/internal/classifier"
	"github.com/Product-X-Deepak/EazyDelivery-sub002/internal/config"
	"github.com/Product-X-Deepak/EazyDelivery-sub002/internal/database"
	"github.com/Product-X-Deepak/EazyDelivery-sub002/internal/dedup"
	"github.com/Product-X-Deepak/EazyDelivery-sub002/internal/engine"
	"github.com/Product-X-Deepak/EazyDelivery-sub002/internal/httpapi"
	"github.com/Product-X-Deepak/EazyDelivery-sub002/internal/kafka"
	"github.com/Product-X-Deepak/EazyDelivery-sub002/internal/observability"
	"github.com/Product-X-Deepak/EazyDelivery-sub002/internal/pipeline"
	"github.com/Product-X-Deepak/EazyDelivery-sub002/internal/pkg/breaker"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool := database.Connect(ctx, cfg.DSN())
	defer pool.Close()
	repo := database.New(pool, cfg.Tables)

	orderCache, err := cache.New(cfg.CacheCap)
	if err != nil {
		logger.Fatal("cache init failed", zap.Error(err))
	}
	orderCache.Warm(ctx, repo)

	metrics := observability.NewInmem(1000)
	svc := service.NewService(orderCache, repo, logger, metrics)

	bridgeClient := bridge.New(cfg.Bridge, logger)
	executor := engine.NewExecutor(bridgeClient, bridgeClient, svc, cfg.Retry, logger, metrics)

	dedupCache := dedup.New(cfg.Dedup.Window, logger)
	cls := classifier.New(cfg.Weights)
	brk := breaker.New(cfg.Breaker)

	handler := pipeline.NewHandler(executor, repo, repo, dedupCache, cls, brk, logger, metrics)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.Topic,
		GroupID: cfg.Kafka.Group,
	})
	defer func() { _ = reader.Close() }()

	consumer := kafka.NewConsumer(handler, reader, cfg.Kafka.Workers, logger)

	api := httpapi.New(svc, repo, repo, logger, metrics)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		consumer.Start(ctx)
		return nil
	})

	g.Go(func() error {
		dedupCache.Run(ctx, cfg.Dedup.SweepInterval)
		return nil
	})

	g.Go(func() error {
		logger.Info("HTTP API listening", zap.String("addr", cfg.HTTPAddr))
		if err := api.ListenAndServe(ctx, cfg.HTTPAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("service stopped with error", zap.Error(err))
		return
	}
	logger.Info("service stopped")
}
