package service

import (
	"context"
	"time"

	"github.com/Product-X-Deepak/EazyDelivery-sub002/internal/domain"
	"github.com/Product-X-Deepak/EazyDelivery-sub002/internal/observability"
	"go.uber.org/zap"
)

//go:generate mockgen -source internal/application/service/service.go -destination=internal/application/service/service_mock_test.go -package=service

type Cache interface {
	Set(*domain.Order)
	Get(string) (*domain.Order, bool)
}

type Storage interface {
	Insert(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	UpdateDeliveryStatus(ctx context.Context, id, status string) error
}

type Service struct {
	cache   Cache
	storage Storage
	logger  *zap.Logger
	metrics observability.Metrics
}

func NewService(cache Cache, storage Storage, logger *zap.Logger, metrics observability.Metrics) *Service {
	return &Service{
		cache:   cache,
		storage: storage,
		logger:  logger,
		metrics: metrics,
	}
}

func (s *Service) RecordWithStats(ctx context.Context, order *domain.Order) (RecordStats, error) {
	var st RecordStats

	t0 := time.Now()
	if err := s.storage.Insert(ctx, order); err != nil {
		s.logger.Error(
			"Error while inserting order in db",
			zap.Error(err),
		)
		return st, err
	}
	st.DBWriteMs = float64(time.Since(t0).Microseconds()) / 1000.0

	s.cache.Set(order)

	s.metrics.ObserveInsert(st.DBWriteMs)
	s.logger.Info("Order recorded",
		zap.String("order_id", order.ID),
		zap.String("platform", order.Platform),
		zap.Bool("is_accepted", order.IsAccepted),
		zap.Float64("db_write_ms", st.DBWriteMs),
	)

	return st, nil
}

func (s *Service) Record(ctx context.Context, order *domain.Order) error {
	_, err := s.RecordWithStats(ctx, order)
	return err
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	o, _, err := s.GetByIDWithStats(ctx, id)
	return o, err
}

func (s *Service) GetByIDWithStats(ctx context.Context, id string) (*domain.Order, LookupStats, error) {
	var st LookupStats

	// Try cache
	tCacheStart := time.Now()
	if order, ok := s.cache.Get(id); ok {
		st.Source = SourceCache
		st.CacheMs = convertToMs(tCacheStart)
		s.metrics.IncCacheHit()
		s.metrics.ObserveLookup(string(st.Source), st.CacheMs, 0)

		s.logger.Info("Order fetched from cache",
			zap.String("order_id", id),
			zap.Float64("cache_ms", st.CacheMs),
		)

		return order, st, nil
	}

	// Try DB
	s.metrics.IncCacheMiss()
	st.CacheMs = convertToMs(tCacheStart)

	tDbStart := time.Now()
	order, err := s.storage.GetByID(ctx, id)
	if err != nil {
		s.logger.Error(
			"Can't find order",
			zap.String("order_id", id),
			zap.Error(err),
			zap.Float64("cache_ms", st.CacheMs),
		)
		return nil, st, err
	}

	st.Source = SourceDB
	st.DBMs = convertToMs(tDbStart)

	s.cache.Set(order)

	s.metrics.ObserveLookup(string(st.Source), st.CacheMs, st.DBMs)
	s.logger.Info("Order fetched from DB",
		zap.String("order_id", id),
		zap.Float64("cache_ms", st.CacheMs),
		zap.Float64("db_ms", st.DBMs),
	)

	return order, st, nil
}

// UpdateDeliveryStatus persists a status change and refreshes the cached
// copy when it is present.
func (s *Service) UpdateDeliveryStatus(ctx context.Context, id, status string) error {
	if err := s.storage.UpdateDeliveryStatus(ctx, id, status); err != nil {
		return err
	}
	if order, ok := s.cache.Get(id); ok {
		order.DeliveryStatus = status
		s.cache.Set(order)
	}
	s.logger.Info("Delivery status updated",
		zap.String("order_id", id),
		zap.String("status", status),
	)
	return nil
}
