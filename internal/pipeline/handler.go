// Package pipeline is the processing boundary for one raw notification
// event: decode, gate, parse, dedup, classify, decide. Skip-class outcomes
// (unparseable text, duplicate, unsupported app, service off) return nil
// so the consumer commits and moves on; only infrastructure failures
// propagate.
package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/Product-X-Deepak/EazyDelivery-sub002/internal/classifier"
	"github.com/Product-X-Deepak/EazyDelivery-sub002/internal/dedup"
	"github.com/Product-X-Deepak/EazyDelivery-sub002/internal/domain"
	"github.com/Product-X-Deepak/EazyDelivery-sub002/internal/engine"
	"github.com/Product-X-Deepak/EazyDelivery-sub002/internal/observability"
	"github.com/Product-X-Deepak/EazyDelivery-sub002/internal/parser"
	"github.com/Product-X-Deepak/EazyDelivery-sub002/internal/pkg/breaker"
)

//go:generate mockgen -source internal/pipeline/handler.go -destination=internal/pipeline/handler_mock_test.go -package=pipeline

var (
	ErrBadJSON     = errors.New("bad json")
	ErrExecute     = errors.New("execute failed")
	ErrCircuitOpen = errors.New("circuit breaker open")
)

type Executor interface {
	Execute(ctx context.Context, parsed *domain.ParsedOrder, platform *domain.Platform, priority domain.Priority) (*domain.Order, engine.Decision, error)
}

type Platforms interface {
	GetByPackage(ctx context.Context, pkg string) (*domain.Platform, error)
}

type ServiceState interface {
	IsServiceActive(ctx context.Context) (bool, error)
}

type Handler struct {
	executor   Executor
	platforms  Platforms
	state      ServiceState
	dedup      *dedup.Cache
	classifier *classifier.Classifier
	breaker    *breaker.Breaker
	logger     *zap.Logger
	metrics    observability.Metrics
}

func NewHandler(
	executor Executor,
	platforms Platforms,
	state ServiceState,
	dedupCache *dedup.Cache,
	cls *classifier.Classifier,
	brk *breaker.Breaker,
	logger *zap.Logger,
	metrics observability.Metrics,
) *Handler {
	return &Handler{
		executor:   executor,
		platforms:  platforms,
		state:      state,
		dedup:      dedupCache,
		classifier: cls,
		breaker:    brk,
		logger:     logger,
		metrics:    metrics,
	}
}

// Handle — called by the consumer to process a single message.
// The consumer commits the offset itself after successfully returning nil.
func (h *Handler) Handle(ctx context.Context, message kafkago.Message) (err error) {
	start := time.Now()

	// Nothing thrown past this point may kill the consumer loop.
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("panic while processing notification",
				zap.Any("panic", r),
				zap.Int("partition", message.Partition),
				zap.Int64("offset", message.Offset),
			)
			h.metrics.ObserveNotification(observability.OutcomeError, elapsedMs(start))
			err = fmt.Errorf("%w: panic: %v", ErrExecute, r)
		}
	}()

	if err := h.breaker.Allow(); err != nil {
		h.logger.Warn("circuit breaker is open",
			zap.Error(err),
			zap.Int("partition", message.Partition),
			zap.Int64("offset", message.Offset),
		)
		return fmt.Errorf("%w: %v", ErrCircuitOpen, err)
	}

	var event domain.NotificationEvent
	if err := json.Unmarshal(message.Value, &event); err != nil {
		h.logger.Error("bad json format",
			zap.Error(err),
			zap.Int("partition", message.Partition),
			zap.Int64("offset", message.Offset),
		)
		h.breaker.Failure()
		return ErrBadJSON
	}
	if event.Package == "" {
		h.logger.Error("missing package",
			zap.Int("partition", message.Partition),
			zap.Int64("offset", message.Offset),
		)
		h.breaker.Failure()
		return ErrBadJSON
	}

	active, err := h.state.IsServiceActive(ctx)
	if err != nil {
		h.breaker.Failure()
		return fmt.Errorf("%w: service state: %v", ErrExecute, err)
	}
	if !active {
		h.skip(start, "service inactive", &event)
		return nil
	}

	pkg := parser.Remap(event.Package)
	if !parser.Supported(pkg) {
		h.skip(start, "unsupported package", &event)
		return nil
	}

	parsed, ok := parser.Parse(pkg, event.NotificationID, event.PostedAt, event.Title, event.Text)
	if !ok {
		// Expected for chatter notifications (promos, ratings, app
		// updates), so no error-level logging here.
		h.metrics.IncParseMiss()
		h.skip(start, "unparseable text", &event)
		return nil
	}

	fp := dedup.Fingerprint(pkg, event.NotificationID, event.PostedAt, event.Title, event.Text)
	if !h.dedup.CheckAndInsert(fp) {
		h.metrics.IncDuplicate()
		h.metrics.ObserveNotification(observability.OutcomeDuplicate, elapsedMs(start))
		h.logger.Debug("duplicate notification",
			zap.String("package", pkg),
			zap.Int("notification_id", event.NotificationID),
		)
		return nil
	}

	platform, err := h.platforms.GetByPackage(ctx, pkg)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.skip(start, "platform not configured", &event)
			return nil
		}
		h.breaker.Failure()
		return fmt.Errorf("%w: platform lookup: %v", ErrExecute, err)
	}

	priority := h.classifier.Classify(parsed)

	order, decision, err := h.executor.Execute(ctx, parsed, platform, priority)
	if err != nil {
		h.breaker.Failure()
		h.metrics.ObserveNotification(observability.OutcomeError, elapsedMs(start))
		return fmt.Errorf("%w: %v", ErrExecute, err)
	}

	h.breaker.Success()

	outcome := observability.OutcomeRecorded
	if order.IsAccepted {
		outcome = observability.OutcomeAccepted
	}
	h.metrics.ObserveNotification(outcome, elapsedMs(start))
	h.logger.Info("notification processed",
		zap.String("order_id", order.ID),
		zap.String("platform", order.Platform),
		zap.Float64("amount", order.Amount),
		zap.String("priority", string(priority)),
		zap.Bool("accepted", order.IsAccepted),
		zap.String("reason", decision.Reason),
		zap.Int("partition", message.Partition),
		zap.Int64("offset", message.Offset),
	)
	return nil
}

func (h *Handler) skip(start time.Time, reason string, event *domain.NotificationEvent) {
	h.metrics.ObserveNotification(observability.OutcomeSkipped, elapsedMs(start))
	h.logger.Debug("notification skipped",
		zap.String("reason", reason),
		zap.String("package", event.Package),
		zap.Int("notification_id", event.NotificationID),
	)
}

func elapsedMs(t time.Time) float64 {
	return float64(time.Since(t).Microseconds()) / 1000.0
}
