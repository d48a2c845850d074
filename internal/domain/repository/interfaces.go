package repository

import (
	"context"
	"time"

	"GoldPulse/internal/domain/models"
)

type PriceStream interface {
	Connect(ctx context.Context) error
	Subscribe(ctx context.Context) error
	Read(ctx context.Context) (<-chan *models.Tick, <-chan error)
	Reconnect(ctx context.Context) error
	Close() error
	IsConnected() bool
}

type Publisher interface {
	Publish(ctx context.Context, t *models.Tick) error
	PublishBatch(ctx context.Context, ticks []*models.Tick) error
	Close() error
}

type Storage interface {
	Init(ctx context.Context) error // ensure tables, health checks
	Store(ctx context.Context, t *models.Tick) error
	StoreBatch(ctx context.Context, ticks []*models.Tick) error
	Query(ctx context.Context, category string, from, to time.Time, limit int) (models.Series, error)
	Health(ctx context.Context) error // ping
	Close() error
}

type Metrics interface {
	RecordMessageSent(backend, category string)
	RecordError(kind string)
	RecordLastPrice(category string, price float64)
	RecordLatency(op string, seconds float64)
	RecordPayload(category, format string)
	RecordRecordsDropped(category string, n int)
}
