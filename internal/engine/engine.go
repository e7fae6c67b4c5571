// Package engine applies the per-platform acceptance rules to a parsed,
// prioritized order and carries out the resulting side effects: the
// accept gesture, the durable order row, the driver summary.
package engine

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Product-X-Deepak/EazyDelivery-sub002/internal/bridge"
	"github.com/Product-X-Deepak/EazyDelivery-sub002/internal/config"
	"github.com/Product-X-Deepak/EazyDelivery-sub002/internal/domain"
	"github.com/Product-X-Deepak/EazyDelivery-sub002/internal/observability"
	"github.com/Product-X-Deepak/EazyDelivery-sub002/internal/pkg/retry"
)

//go:generate mockgen -source internal/engine/engine.go -destination=internal/engine/engine_mock_test.go -package=engine

type Decision struct {
	Accept bool
	Reason string
}

// Decide applies the acceptance rule: platform enabled, amount within the
// configured band, auto-accept on, and the priority tier high enough.
// Pure function; all side effects live in the Executor.
func Decide(o *domain.ParsedOrder, p *domain.Platform, priority domain.Priority) Decision {
	switch {
	case !p.IsEnabled:
		return Decision{Reason: "platform disabled"}
	case o.Amount < p.MinAmount:
		return Decision{Reason: "below minimum amount"}
	case p.MaxAmount > 0 && o.Amount > p.MaxAmount:
		return Decision{Reason: "above maximum amount"}
	case !p.AutoAccept:
		return Decision{Reason: "auto-accept off"}
	case priority == domain.PriorityHigh:
		return Decision{Accept: true, Reason: "high priority"}
	case priority == domain.PriorityMedium && p.AcceptMedium:
		return Decision{Accept: true, Reason: "medium priority allowed"}
	default:
		return Decision{Reason: "priority below threshold"}
	}
}

type Acceptor interface {
	Accept(ctx context.Context, req bridge.AcceptRequest) error
}

type Notifier interface {
	Notify(ctx context.Context, s bridge.Summary) error
}

type Recorder interface {
	Record(ctx context.Context, order *domain.Order) error
}

type Executor struct {
	acceptor    Acceptor
	notifier    Notifier
	recorder    Recorder
	retryPolicy config.Retry
	logger      *zap.Logger
	metrics     observability.Metrics
}

func NewExecutor(
	acceptor Acceptor,
	notifier Notifier,
	recorder Recorder,
	retryPolicy config.Retry,
	logger *zap.Logger,
	metrics observability.Metrics,
) *Executor {
	return &Executor{
		acceptor:    acceptor,
		notifier:    notifier,
		recorder:    recorder,
		retryPolicy: retryPolicy,
		logger:      logger,
		metrics:     metrics,
	}
}

// Execute decides, performs the accept gesture when warranted, persists
// the order and posts the summary. The gesture runs at most once per call;
// a persistence failure is returned to the caller, who must not re-invoke
// Execute for the same event (the dedup cache enforces that upstream).
func (e *Executor) Execute(ctx context.Context, parsed *domain.ParsedOrder, platform *domain.Platform, priority domain.Priority) (*domain.Order, Decision, error) {
	decision := Decide(parsed, platform, priority)

	order := &domain.Order{
		ID:             uuid.NewString(),
		Platform:       parsed.Platform,
		Package:        parsed.Package,
		Amount:         parsed.Amount,
		DistanceKm:     parsed.DistanceKm,
		TimeMin:        parsed.TimeMin,
		Priority:       priority,
		DeliveryStatus: domain.StatusPending,
		RawTitle:       parsed.Title,
		RawText:        parsed.Text,
		CreatedAt:      time.Now().UTC(),
	}

	if decision.Accept {
		err := e.acceptor.Accept(ctx, bridge.AcceptRequest{
			Package:  parsed.Package,
			Platform: parsed.Platform,
			OrderID:  order.ID,
			Amount:   parsed.Amount,
		})
		if err != nil {
			// The gesture failed on-device; record the order as not
			// accepted rather than failing the whole notification.
			e.logger.Warn("accept gesture failed",
				zap.String("order_id", order.ID),
				zap.String("platform", parsed.Platform),
				zap.Error(err),
			)
			decision = Decision{Reason: "accept gesture failed"}
		} else {
			order.IsAccepted = true
			order.DeliveryStatus = domain.StatusAccepted
			e.metrics.IncAccepted()
		}
	}

	if err := retry.Do(ctx, e.retryPolicy, func() error {
		return e.recorder.Record(ctx, order)
	}); err != nil {
		e.logger.Error("order persist failed after retries",
			zap.String("order_id", order.ID),
			zap.String("platform", parsed.Platform),
			zap.Error(err),
		)
		return nil, decision, err
	}

	if err := e.notifier.Notify(ctx, bridge.Summary{
		OrderID:  order.ID,
		Platform: order.Platform,
		Amount:   order.Amount,
		Priority: priority,
		Accepted: order.IsAccepted,
		Reason:   decision.Reason,
	}); err != nil {
		e.logger.Warn("summary notification failed",
			zap.String("order_id", order.ID),
			zap.Error(err),
		)
	}

	return order, decision, nil
}
