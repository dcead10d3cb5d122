package port

import (
	"context"
	"time"

	"github.com/gameroom/backoffice/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

// SalePort is append-only: sales are never updated or deleted once written.
type SalePort interface {
	// CreateWithOutbox inserts the sale document and an outbox entry for the
	// event. newEvent runs after the insert assigns the sale ID, so the event
	// always carries it. Under a transactional context both writes commit
	// atomically.
	CreateWithOutbox(ctx context.Context, sale *domain.Sale, newEvent func(*domain.Sale) domain.Event) error
	// SaveEvent inserts a standalone outbox entry, used to surface stock
	// drift detected after the sale has committed.
	SaveEvent(ctx context.Context, event domain.Event) error
	GetByID(ctx context.Context, id domain.ID) (*domain.Sale, error)
	GetPage(ctx context.Context, limit, offset int64) ([]*domain.Sale, int64, error)
	GetByDateRange(ctx context.Context, from, to time.Time) ([]*domain.Sale, error)
}
