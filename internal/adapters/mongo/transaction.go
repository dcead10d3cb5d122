package mongo

import (
	"context"

	"github.com/gameroom/backoffice/internal/core/port"
	"go.mongodb.org/mongo-driver/mongo"
)

// TransactionManager wraps a callback in a Mongo session transaction. It
// requires a replica set; standalone deployments run checkout in saga mode
// instead.
type TransactionManager struct {
	client *mongo.Client
}

func NewTransactionManager(client *mongo.Client) port.TransactionManager {
	return &TransactionManager{client: client}
}

func (tm *TransactionManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := tm.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		return nil, fn(sessCtx)
	})

	return err
}
