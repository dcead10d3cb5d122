package port

import (
	"context"

	"github.com/gameroom/backoffice/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

type ProductFilter struct {
	ForSale *bool
}

type ProductPort interface {
	Create(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id domain.ID) (*domain.Product, error)
	GetAll(ctx context.Context, filter ProductFilter) ([]*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id domain.ID) error
	// DeductStock atomically decrements stock by quantity, conditioned on at
	// least quantity units still being available. Returns an unprocessable
	// entity error when the condition fails.
	DeductStock(ctx context.Context, id domain.ID, quantity int) error
}
