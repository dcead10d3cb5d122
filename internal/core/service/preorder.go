package service

import (
	"context"
	"time"

	"github.com/gameroom/backoffice/internal/core/domain"
	"github.com/gameroom/backoffice/internal/core/dto"
	"github.com/gameroom/backoffice/internal/core/logger"
	"github.com/gameroom/backoffice/internal/core/port"
	"github.com/gameroom/backoffice/internal/core/serviceerrors"
)

type PreorderService struct {
	preorderRepository port.PreorderPort
	productRepository  port.ProductPort
}

func NewPreorderService(preorderRepository port.PreorderPort, productRepository port.ProductPort) *PreorderService {
	return &PreorderService{
		preorderRepository: preorderRepository,
		productRepository:  productRepository,
	}
}

// CreatePreorder checks the product exists and has enough stock at creation
// time. Stock is not reserved; checkout re-validates when the preorder is
// fulfilled.
func (s *PreorderService) CreatePreorder(ctx context.Context, request *dto.CreatePreorderRequest) (*domain.Preorder, error) {
	product, err := s.productRepository.GetByID(ctx, request.ProductID)
	if err != nil {
		if serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			return nil, serviceerrors.NewNotFoundError("Producto no encontrado")
		}
		return nil, err
	}

	if product.Stock < request.Quantity {
		return nil, serviceerrors.NewInvalidRequestError("Stock insuficiente").WithDetails(map[string]any{
			"disponible": product.Stock,
		})
	}

	preorder := domain.NewPreorder(
		request.ProductID,
		request.ProductName,
		domain.NewAmountFromFloat(request.UnitPrice),
		request.CustomerName,
		request.Phone,
		request.Email,
		request.Quantity,
		domain.NewAmountFromFloat(request.Total),
		request.Notes,
	)

	if err := s.preorderRepository.Create(ctx, preorder); err != nil {
		logger.Error(ctx, "preorder: create failed", err, map[string]any{
			"product_id": request.ProductID,
		})
		return nil, err
	}

	logger.Info(ctx, "Preorder created", map[string]any{"preorder_id": preorder.ID})
	return preorder, nil
}

func (s *PreorderService) GetByID(ctx context.Context, id domain.ID) (*domain.Preorder, error) {
	return s.preorderRepository.GetByID(ctx, id)
}

func (s *PreorderService) GetPage(ctx context.Context, status domain.PreorderStatus, limit, offset int64) ([]*domain.Preorder, int64, error) {
	return s.preorderRepository.GetPage(ctx, status, limit, offset)
}

func (s *PreorderService) UpdateStatus(ctx context.Context, id domain.ID, status domain.PreorderStatus) (*domain.Preorder, error) {
	if !status.IsValid() {
		return nil, serviceerrors.NewInvalidRequestError("Estado inválido").WithDetails(map[string]any{
			"estadosValidos": []domain.PreorderStatus{
				domain.PreorderStatusPending,
				domain.PreorderStatusConfirmed,
				domain.PreorderStatusCompleted,
				domain.PreorderStatusCancelled,
			},
		})
	}

	preorder, err := s.preorderRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if preorder.Status == status {
		return nil, serviceerrors.NewUnprocessableEntityError("El pedido ya tiene este estado")
	}

	event := domain.NewPreorderStatusChangedEvent(id, status, preorder.Status, time.Now())
	if err := s.preorderRepository.UpdateStatusWithOutbox(ctx, id, status, event); err != nil {
		return nil, err
	}

	logger.Info(ctx, "Preorder status updated", map[string]any{
		"preorder_id": id,
		"old_status":  preorder.Status,
		"new_status":  status,
	})

	preorder.Status = status
	preorder.UpdatedAt = time.Now()
	return preorder, nil
}

func (s *PreorderService) DeletePreorder(ctx context.Context, id domain.ID) error {
	if err := s.preorderRepository.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info(ctx, "Preorder deleted", map[string]any{"preorder_id": id})
	return nil
}
