package service

import (
	"context"
	"io"
	"time"

	"github.com/gameroom/backoffice/internal/core/domain"
	"github.com/gameroom/backoffice/internal/core/dto"
	"github.com/gameroom/backoffice/internal/core/logger"
	"github.com/gameroom/backoffice/internal/core/port"
	"github.com/gameroom/backoffice/internal/core/serviceerrors"
)

const purchaseDateLayout = "2006-01-02"

type ProductService struct {
	productRepository port.ProductPort
	uploader          port.UploaderPort
}

func NewProductService(productRepository port.ProductPort, uploader port.UploaderPort) *ProductService {
	return &ProductService{
		productRepository: productRepository,
		uploader:          uploader,
	}
}

func (s *ProductService) uploadImage(ctx context.Context, name string, image io.Reader) (string, error) {
	if image == nil {
		return "", nil
	}
	url, err := s.uploader.Upload(ctx, name, image)
	if err != nil {
		logger.Error(ctx, "product: image upload failed", err, map[string]any{
			"name": name,
		})
		return "", serviceerrors.NewUnprocessableEntityError("No se pudo subir la imagen del producto")
	}
	return url, nil
}

func (s *ProductService) CreateProduct(ctx context.Context, createdBy domain.ID, request *dto.CreateProductRequest, image io.Reader) (*domain.Product, error) {
	purchasedAt, err := time.Parse(purchaseDateLayout, request.PurchasedAt)
	if err != nil {
		return nil, serviceerrors.NewInvalidRequestError("Fecha de compra inválida")
	}

	imageURL, err := s.uploadImage(ctx, request.Name, image)
	if err != nil {
		return nil, err
	}

	product := domain.NewProduct(
		request.Name,
		request.Stock,
		domain.NewAmountFromFloat(request.PurchasePrice),
		domain.NewAmountFromFloat(request.SalePrice),
		purchasedAt,
		imageURL,
		request.ForSale,
		createdBy,
	)

	if err := s.productRepository.Create(ctx, product); err != nil {
		logger.Error(ctx, "product: create failed", err, map[string]any{
			"name": request.Name,
		})
		return nil, err
	}

	logger.Info(ctx, "Product created", map[string]any{"product_id": product.ID})
	return product, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, id domain.ID, request *dto.UpdateProductRequest, image io.Reader) (*domain.Product, error) {
	product, err := s.productRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if request.Name != nil {
		product.Name = *request.Name
	}
	if request.Stock != nil {
		if *request.Stock < 0 {
			return nil, serviceerrors.NewInvalidRequestError("La cantidad no puede ser negativa")
		}
		product.Stock = *request.Stock
	}
	if request.PurchasePrice != nil {
		product.PurchasePrice = domain.NewAmountFromFloat(*request.PurchasePrice)
	}
	if request.SalePrice != nil {
		product.SalePrice = domain.NewAmountFromFloat(*request.SalePrice)
	}
	if request.PurchasedAt != nil {
		purchasedAt, err := time.Parse(purchaseDateLayout, *request.PurchasedAt)
		if err != nil {
			return nil, serviceerrors.NewInvalidRequestError("Fecha de compra inválida")
		}
		product.PurchasedAt = purchasedAt
	}
	if request.ForSale != nil {
		product.ForSale = *request.ForSale
	}

	if image != nil {
		imageURL, err := s.uploadImage(ctx, product.Name, image)
		if err != nil {
			return nil, err
		}
		product.ImageURL = imageURL
	}

	product.UpdatedAt = time.Now()
	if err := s.productRepository.Update(ctx, product); err != nil {
		logger.Error(ctx, "product: update failed", err, map[string]any{
			"product_id": id,
		})
		return nil, err
	}

	logger.Info(ctx, "Product updated", map[string]any{"product_id": id})
	return product, nil
}

func (s *ProductService) GetByID(ctx context.Context, id domain.ID) (*domain.Product, error) {
	return s.productRepository.GetByID(ctx, id)
}

func (s *ProductService) GetAll(ctx context.Context, filter port.ProductFilter) ([]*domain.Product, error) {
	return s.productRepository.GetAll(ctx, filter)
}

func (s *ProductService) DeleteProduct(ctx context.Context, id domain.ID) error {
	if err := s.productRepository.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info(ctx, "Product deleted", map[string]any{"product_id": id})
	return nil
}

func (s *ProductService) DeductStock(ctx context.Context, id domain.ID, quantity int) error {
	return s.productRepository.DeductStock(ctx, id, quantity)
}
