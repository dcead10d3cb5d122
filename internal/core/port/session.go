package port

import (
	"context"

	"github.com/gameroom/backoffice/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

type SessionPort interface {
	Create(ctx context.Context, session *domain.PlaySession) error
	GetByID(ctx context.Context, id domain.ID) (*domain.PlaySession, error)
	GetPage(ctx context.Context, limit, offset int64) ([]*domain.PlaySession, int64, error)
	Update(ctx context.Context, session *domain.PlaySession) error
	Delete(ctx context.Context, id domain.ID) error
}
