package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gameroom/backoffice/internal/core/domain"
	"github.com/gameroom/backoffice/internal/core/dto"
	"github.com/gameroom/backoffice/internal/core/logger"
	"github.com/gameroom/backoffice/internal/core/port"
	"github.com/gameroom/backoffice/internal/core/serviceerrors"
	"github.com/gameroom/backoffice/internal/core/utils"
)

const CHECKOUT_MAX_LINES = 100

// CheckoutResult is the outcome of a committed checkout. Drifts is non-empty
// only in saga mode, when a stock decrement lost a race after the sale record
// was already durable; the sale stands regardless.
type CheckoutResult struct {
	Sale   *domain.Sale        `json:"sale"`
	Drifts []domain.StockDrift `json:"drifts,omitempty"`
}

// CheckoutService turns a submitted cart into an immutable sale and the
// matching stock decrements. Validation is a pure read-then-decide step; no
// write happens before every check has passed. With transactions enabled the
// sale insert and all decrements commit atomically; without them the sale
// insert is the commit point and decrements follow as compensating actions.
type CheckoutService struct {
	saleRepository    port.SalePort
	productRepository port.ProductPort
	txManager         port.TransactionManager
	idempotency       *IdempotencyService[CheckoutResult]
	useTransactions   bool
}

func NewCheckoutService(
	saleRepository port.SalePort,
	productRepository port.ProductPort,
	txManager port.TransactionManager,
	idempotency *IdempotencyService[CheckoutResult],
	useTransactions bool,
) *CheckoutService {
	return &CheckoutService{
		saleRepository:    saleRepository,
		productRepository: productRepository,
		txManager:         txManager,
		idempotency:       idempotency,
		useTransactions:   useTransactions,
	}
}

// validatedLine is a cart line that passed every check, plus the stock level
// observed during validation. The adjuster re-checks against live stock, the
// baseline is kept for drift reporting only.
type validatedLine struct {
	line        domain.SaleLine
	stockBefore int
}

type validatedCart struct {
	lines       []validatedLine
	total       domain.Amount
	amountPaid  domain.Amount
	changeGiven domain.Amount
	date        time.Time
}

func (s *CheckoutService) validateCart(ctx context.Context, request *dto.CheckoutRequest) (*validatedCart, error) {
	if len(request.Lines) == 0 {
		return nil, serviceerrors.NewInvalidRequestError("Debe incluir productos en la venta")
	}
	if len(request.Lines) > CHECKOUT_MAX_LINES {
		return nil, serviceerrors.NewUnprocessableEntityError("La venta excede el máximo de líneas permitido")
	}

	total := domain.NewAmountFromFloat(request.Total)
	amountPaid := domain.NewAmountFromFloat(request.AmountPaid)
	changeGiven := domain.NewAmountFromFloat(request.ChangeGiven)

	if request.Total == 0 || request.AmountPaid == 0 {
		return nil, serviceerrors.NewInvalidRequestError("Faltan datos de pago")
	}
	if total <= 0 {
		return nil, serviceerrors.NewInvalidRequestError("El total debe ser mayor a 0")
	}
	if amountPaid < total {
		return nil, serviceerrors.NewInvalidRequestError("El monto pagado es insuficiente").WithDetails(map[string]any{
			"total":       total.ToFloat(),
			"montoPagado": amountPaid.ToFloat(),
			"faltante":    total.Sub(amountPaid).ToFloat(),
		})
	}
	expectedChange := amountPaid.Sub(total)
	if !changeGiven.ApproxEqual(expectedChange) {
		return nil, serviceerrors.NewInvalidRequestError("El vuelto calculado no coincide").WithDetails(map[string]any{
			"vueltoRecibido": changeGiven.ToFloat(),
			"vueltoEsperado": expectedChange.ToFloat(),
		})
	}

	lines := make([]validatedLine, 0, len(request.Lines))
	for _, item := range request.Lines {
		unitPrice := domain.NewAmountFromFloat(item.UnitPrice)
		subtotal := domain.NewAmountFromFloat(item.Subtotal)

		if item.ProductID == "" || item.ProductName == "" || item.Quantity <= 0 {
			return nil, serviceerrors.NewInvalidRequestError("Datos de producto inválidos").WithDetails(map[string]any{
				"producto": item,
			})
		}
		if unitPrice <= 0 {
			return nil, serviceerrors.NewInvalidRequestError("Precio de venta inválido").WithDetails(map[string]any{
				"producto": item,
			})
		}

		expectedSubtotal := unitPrice.Multiply(item.Quantity)
		if !subtotal.ApproxEqual(expectedSubtotal) {
			return nil, serviceerrors.NewInvalidRequestError("Subtotal incorrecto para el producto").WithDetails(map[string]any{
				"producto":          item.ProductName,
				"subtotalRecibido": subtotal.ToFloat(),
				"subtotalEsperado": expectedSubtotal.ToFloat(),
			})
		}

		product, err := s.productRepository.GetByID(ctx, item.ProductID)
		if err != nil {
			if serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
				return nil, serviceerrors.NewNotFoundError(fmt.Sprintf("Producto %q no encontrado en el inventario", item.ProductName)).WithDetails(map[string]any{
					"producto": map[string]any{"nombre": item.ProductName, "id": item.ProductID},
				})
			}
			return nil, err
		}

		if !product.ForSale {
			return nil, serviceerrors.NewInvalidRequestError(fmt.Sprintf("El producto %q no está disponible para venta", product.Name)).WithDetails(map[string]any{
				"producto": map[string]any{"nombre": product.Name, "seVende": false},
			})
		}

		if product.Stock < item.Quantity {
			return nil, serviceerrors.NewInvalidRequestError(fmt.Sprintf("Stock insuficiente para %q", product.Name)).WithDetails(map[string]any{
				"producto": map[string]any{
					"nombre":     product.Name,
					"solicitado": item.Quantity,
					"disponible": product.Stock,
				},
			})
		}

		// Optimistic check against price drift between cart-build time and
		// checkout time; the client must refresh on mismatch.
		if !product.SalePrice.ApproxEqual(unitPrice) {
			return nil, serviceerrors.NewInvalidRequestError(fmt.Sprintf("El precio de %q ha cambiado", product.Name)).WithDetails(map[string]any{
				"producto": map[string]any{
					"nombre":          product.Name,
					"precioEnCarrito": unitPrice.ToFloat(),
					"precioActual":    product.SalePrice.ToFloat(),
				},
			})
		}

		lines = append(lines, validatedLine{
			line: domain.SaleLine{
				ProductID:   product.ID,
				ProductName: item.ProductName,
				Quantity:    item.Quantity,
				UnitPrice:   unitPrice,
				Subtotal:    subtotal,
			},
			stockBefore: product.Stock,
		})
	}

	sum := domain.Amount(0)
	for _, vl := range lines {
		sum = sum.Add(vl.line.Subtotal)
	}
	if !total.ApproxEqual(sum) {
		return nil, serviceerrors.NewInvalidRequestError("El total no coincide con la suma de subtotales").WithDetails(map[string]any{
			"totalRecibido":  total.ToFloat(),
			"totalCalculado": sum.ToFloat(),
		})
	}

	date := time.Now()
	if request.Date != nil {
		date = *request.Date
	}

	return &validatedCart{
		lines:       lines,
		total:       total,
		amountPaid:  amountPaid,
		changeGiven: changeGiven,
		date:        date,
	}, nil
}

func (s *CheckoutService) processCheckout(ctx context.Context, cashierID domain.ID, cashierName string, request *dto.CheckoutRequest) (*CheckoutResult, error) {
	cart, err := s.validateCart(ctx, request)
	if err != nil {
		return nil, err
	}

	saleLines := make([]domain.SaleLine, len(cart.lines))
	for i, vl := range cart.lines {
		saleLines[i] = vl.line
	}
	sale := domain.NewSale(saleLines, cart.total, cart.amountPaid, cart.changeGiven, cart.date, cashierID, cashierName)

	// A checkout already past validation must not be abandoned half-written
	// when the client disconnects.
	writeCtx := context.WithoutCancel(ctx)

	if s.useTransactions {
		return s.commitTransactional(writeCtx, sale)
	}
	return s.commitSaga(writeCtx, sale, cart)
}

// commitTransactional writes the sale and every decrement in one
// multi-document transaction. A lost stock race aborts the whole checkout.
func (s *CheckoutService) commitTransactional(ctx context.Context, sale *domain.Sale) (*CheckoutResult, error) {
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.saleRepository.CreateWithOutbox(txCtx, sale, func(sale *domain.Sale) domain.Event { return domain.NewSaleCompletedEvent(sale) }); err != nil {
			return err
		}
		for _, line := range sale.Lines {
			if err := s.productRepository.DeductStock(txCtx, line.ProductID, line.Quantity); err != nil {
				if serviceerrors.IsOfKind(err, serviceerrors.KindUnprocessableEntity) {
					return serviceerrors.NewConflictError(fmt.Sprintf("Stock insuficiente para %q", line.ProductName)).WithDetails(map[string]any{
						"producto": map[string]any{"nombre": line.ProductName, "id": line.ProductID},
					})
				}
				return err
			}
		}
		return nil
	})
	if err != nil {
		logger.Error(ctx, "checkout: transaction failed", err, map[string]any{
			"lines": len(sale.Lines),
		})
		return nil, err
	}

	logger.Info(ctx, "Sale completed", map[string]any{
		"sale_id": sale.ID,
		"total":   sale.Total.ToFloat(),
	})
	return &CheckoutResult{Sale: sale}, nil
}

// commitSaga makes the sale insert the commit point and applies decrements
// afterwards. Decrements that lose the race are collected as stock drift; the
// sale is never rolled back once written.
func (s *CheckoutService) commitSaga(ctx context.Context, sale *domain.Sale, cart *validatedCart) (*CheckoutResult, error) {
	if err := s.saleRepository.CreateWithOutbox(ctx, sale, func(sale *domain.Sale) domain.Event { return domain.NewSaleCompletedEvent(sale) }); err != nil {
		logger.Error(ctx, "checkout: sale insert failed", err, map[string]any{
			"lines": len(sale.Lines),
		})
		return nil, err
	}

	var drifts []domain.StockDrift
	for i, line := range sale.Lines {
		err := s.productRepository.DeductStock(ctx, line.ProductID, line.Quantity)
		if err == nil {
			continue
		}
		logger.Warn(ctx, "checkout: stock decrement conflict after commit", map[string]any{
			"sale_id":      sale.ID,
			"product_id":   line.ProductID,
			"quantity":     line.Quantity,
			"stock_before": cart.lines[i].stockBefore,
			"reason":       err.Error(),
		})
		drifts = append(drifts, domain.StockDrift{
			ProductID:   line.ProductID,
			ProductName: line.ProductName,
			Quantity:    line.Quantity,
		})
	}

	if len(drifts) > 0 {
		if err := s.saleRepository.SaveEvent(ctx, domain.NewStockDriftEvent(sale.ID, drifts)); err != nil {
			logger.Error(ctx, "checkout: failed to record stock drift event", err, map[string]any{
				"sale_id": sale.ID,
			})
		}
	}

	logger.Info(ctx, "Sale completed", map[string]any{
		"sale_id": sale.ID,
		"total":   sale.Total.ToFloat(),
		"drifts":  len(drifts),
	})
	return &CheckoutResult{Sale: sale, Drifts: drifts}, nil
}

// Checkout runs a full checkout, deduplicated by the optional idempotency key
// so a cashier retry after a network failure does not double-sell.
func (s *CheckoutService) Checkout(ctx context.Context, idempotencyKey string, cashierID domain.ID, cashierName string, request *dto.CheckoutRequest) (*CheckoutResult, error) {
	if idempotencyKey == "" {
		return s.processCheckout(ctx, cashierID, cashierName, request)
	}

	payloadHash := utils.HashJSON(request)

	existing, err := s.idempotency.Claim(ctx, idempotencyKey, payloadHash)
	if err != nil {
		logger.Error(ctx, "idempotency: claim failed", err, map[string]any{
			"idempotency_key": idempotencyKey,
		})
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	result, err := s.processCheckout(ctx, cashierID, cashierName, request)
	if err != nil {
		s.idempotency.Release(ctx, idempotencyKey)
		return nil, err
	}

	s.idempotency.Complete(ctx, idempotencyKey, payloadHash, result)

	return result, nil
}
