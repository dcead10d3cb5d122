package port

import (
	"context"

	"github.com/gameroom/backoffice/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

type PreorderPort interface {
	Create(ctx context.Context, preorder *domain.Preorder) error
	GetByID(ctx context.Context, id domain.ID) (*domain.Preorder, error)
	GetPage(ctx context.Context, status domain.PreorderStatus, limit, offset int64) ([]*domain.Preorder, int64, error)
	UpdateStatusWithOutbox(ctx context.Context, id domain.ID, status domain.PreorderStatus, event domain.Event) error
	Delete(ctx context.Context, id domain.ID) error
	CountByStatus(ctx context.Context, status domain.PreorderStatus) (int64, error)
}
