package port

import (
	"context"

	"github.com/gameroom/backoffice/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

// BrokerPort publishes sale and preorder events. PublishRaw is the outbox
// relay path, where the payload was already serialized at write time.
type BrokerPort interface {
	Publish(ctx context.Context, event domain.Event) error
	PublishRaw(ctx context.Context, eventName, entityName string, data []byte) error
	Close() error
}
