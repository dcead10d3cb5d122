// Package outbox relays domain events written alongside sales and preorder
// updates to the message broker. Events are stored first, published later, so
// a broker outage never loses a sale.completed or preorder.status_changed
// notification.
package outbox

import "context"

type Entry struct {
	ID         string
	EventName  string
	EntityName string
	EventData  []byte
	Attempts   int
}

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
type Repository interface {
	Insert(ctx context.Context, entry Entry) error
	// FetchPending returns undelivered entries oldest first, skipping entries
	// that have exhausted their publish attempts.
	FetchPending(ctx context.Context, limit int) ([]Entry, error)
	// MarkFailed records a failed publish attempt.
	MarkFailed(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}
