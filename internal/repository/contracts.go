package repository

import (
	"context"

	"github.com/maxviazov/pagination/internal/model"
)

// Pinger represents a minimal readiness probe capability.
// I use it to decouple health checks from storage implementation details.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ItemRepository declares the read/write operations the list endpoint needs.
type ItemRepository interface {
	Pinger
	Add(ctx context.Context, it model.Item) (model.Item, error)
	GetByID(ctx context.Context, id string) (model.Item, error)
	Count(ctx context.Context) (uint64, error)
	List(ctx context.Context, p Page) (PageResult[model.Item], error)
}
