package domain

import (
	"context"
)

type OrderRepository interface {
	Insert(ctx context.Context, order *Order) error
	GetByID(ctx context.Context, id string) (*Order, error)
	RecentOrderIDs(ctx context.Context, limit int) ([]string, error)
	UpdateDeliveryStatus(ctx context.Context, id, status string) error
}

type PlatformRepository interface {
	GetByPackage(ctx context.Context, pkg string) (*Platform, error)
	List(ctx context.Context) ([]Platform, error)
	Upsert(ctx context.Context, p *Platform) error
}

type ServiceRepository interface {
	IsServiceActive(ctx context.Context) (bool, error)
	SetServiceActive(ctx context.Context, active bool) error
}

type Cache interface {
	Get(id string) (Order, bool)
	Set(id string, order Order)
}
