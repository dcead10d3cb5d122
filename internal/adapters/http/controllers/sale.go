package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gameroom/backoffice/internal/adapters/http/handlers"
	"github.com/gameroom/backoffice/internal/adapters/http/middleware"
	"github.com/gameroom/backoffice/internal/core/domain"
	"github.com/gameroom/backoffice/internal/core/dto"
	"github.com/gameroom/backoffice/internal/core/service"
	"github.com/gameroom/backoffice/internal/core/serviceerrors"
)

type SaleController struct {
	checkoutService *service.CheckoutService
	saleService     *service.SaleService
}

func NewSaleController(checkoutService *service.CheckoutService, saleService *service.SaleService) *SaleController {
	return &SaleController{
		checkoutService: checkoutService,
		saleService:     saleService,
	}
}

type MessageResponse struct {
	Message string `json:"message"`
}

type SaleLineResponse struct {
	ProductID   string  `json:"productoId"`
	ProductName string  `json:"nombre"`
	Quantity    int     `json:"cantidad"`
	UnitPrice   float64 `json:"precioVenta"`
	Subtotal    float64 `json:"subtotal"`
}

type SaleResponse struct {
	ID          string             `json:"id"`
	Lines       []SaleLineResponse `json:"productos"`
	Total       float64            `json:"total"`
	AmountPaid  float64            `json:"montoPagado"`
	ChangeGiven float64            `json:"vuelto"`
	Date        time.Time          `json:"fecha"`
	CashierName string             `json:"cajero,omitempty"`
}

type StockDriftResponse struct {
	ProductID   string `json:"productoId"`
	ProductName string `json:"nombre"`
	Quantity    int    `json:"cantidad"`
}

type CheckoutResponse struct {
	Message  string               `json:"message"`
	Sale     SaleResponse         `json:"venta"`
	Warnings []StockDriftResponse `json:"advertencias,omitempty"`
}

type SalesPagination struct {
	TotalSales  int64 `json:"totalVentas"`
	TotalPages  int64 `json:"totalPages"`
	CurrentPage int64 `json:"currentPage"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

type SalesPageResponse struct {
	Sales      []SaleResponse  `json:"ventas"`
	Pagination SalesPagination `json:"pagination"`
}

func NewSaleResponse(sale *domain.Sale) SaleResponse {
	lines := make([]SaleLineResponse, len(sale.Lines))
	for i, line := range sale.Lines {
		lines[i] = SaleLineResponse{
			ProductID:   string(line.ProductID),
			ProductName: line.ProductName,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice.ToFloat(),
			Subtotal:    line.Subtotal.ToFloat(),
		}
	}
	return SaleResponse{
		ID:          string(sale.ID),
		Lines:       lines,
		Total:       sale.Total.ToFloat(),
		AmountPaid:  sale.AmountPaid.ToFloat(),
		ChangeGiven: sale.ChangeGiven.ToFloat(),
		Date:        sale.Date,
		CashierName: sale.CashierName,
	}
}

// Checkout godoc
// @Summary     Record a sale
// @Description Validates the submitted cart, records the sale and deducts stock
// @Tags        sales
// @Accept      json
// @Produce     json
// @Param       Idempotency-Key header   string              false "Idempotency key"
// @Param       request         body     dto.CheckoutRequest true  "Cart data"
// @Success     201             {object} CheckoutResponse
// @Failure     400             {object} handlers.ErrorResponse
// @Failure     404             {object} handlers.ErrorResponse
// @Failure     409             {object} handlers.ErrorResponse
// @Failure     422             {object} handlers.ErrorResponse
// @Failure     429             {object} handlers.ErrorResponse
// @Failure     500             {object} handlers.ErrorResponse
// @Router      /api/v1/ventas [post]
// @Security    BearerAuth
func (saleController *SaleController) Checkout(c *gin.Context) {
	var request dto.CheckoutRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}

	var cashierID domain.ID
	var cashierName string
	if identity := middleware.IdentityFrom(c); identity != nil {
		cashierID = identity.UserID
		cashierName = identity.Name
	}

	idempotencyKey := c.GetHeader("Idempotency-Key")
	result, err := saleController.checkoutService.Checkout(c.Request.Context(), idempotencyKey, cashierID, cashierName, &request)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	response := CheckoutResponse{
		Message: "Venta registrada exitosamente",
		Sale:    NewSaleResponse(result.Sale),
	}
	for _, drift := range result.Drifts {
		response.Warnings = append(response.Warnings, StockDriftResponse{
			ProductID:   string(drift.ProductID),
			ProductName: drift.ProductName,
			Quantity:    drift.Quantity,
		})
	}

	c.JSON(http.StatusCreated, response)
}

// GetSales godoc
// @Summary     List sales
// @Description Returns a page of recorded sales, newest first
// @Tags        sales
// @Produce     json
// @Param       page  query    int false "Page number (1-based)"
// @Param       limit query    int false "Page size"
// @Success     200   {object} SalesPageResponse
// @Failure     500   {object} handlers.ErrorResponse
// @Router      /api/v1/ventas [get]
// @Security    BearerAuth
func (saleController *SaleController) GetSales(c *gin.Context) {
	page, limit := pageParams(c, 20)

	sales, total, err := saleController.saleService.GetPage(c.Request.Context(), limit, (page-1)*limit)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	responses := make([]SaleResponse, len(sales))
	for i, sale := range sales {
		responses[i] = NewSaleResponse(sale)
	}

	totalPages := (total + limit - 1) / limit
	c.JSON(http.StatusOK, SalesPageResponse{
		Sales: responses,
		Pagination: SalesPagination{
			TotalSales:  total,
			TotalPages:  totalPages,
			CurrentPage: page,
			HasNextPage: page < totalPages,
			HasPrevPage: page > 1,
		},
	})
}

// GetSaleByID godoc
// @Summary     Get sale by ID
// @Description Returns a single recorded sale
// @Tags        sales
// @Produce     json
// @Param       id  path     string true "Sale ID"
// @Success     200 {object} SaleResponse
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/ventas/{id} [get]
// @Security    BearerAuth
func (saleController *SaleController) GetSaleByID(c *gin.Context) {
	saleID := c.Param("id")
	if !domain.ValidateID(saleID) {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("ID de venta inválido"))
		return
	}

	sale, err := saleController.saleService.GetByID(c.Request.Context(), domain.ID(saleID))
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, NewSaleResponse(sale))
}

type SalesStatsResponse struct {
	Today PeriodStatsResponse `json:"hoy"`
	Month PeriodStatsResponse `json:"mes"`
}

type PeriodStatsResponse struct {
	Total float64 `json:"total"`
	Count int     `json:"cantidad"`
}

// GetSalesStats godoc
// @Summary     Sales totals for today and the current month
// @Tags        sales
// @Produce     json
// @Success     200 {object} SalesStatsResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/ventas/stats [get]
// @Security    BearerAuth
func (saleController *SaleController) GetSalesStats(c *gin.Context) {
	stats, err := saleController.saleService.GetStats(c.Request.Context(), time.Now())
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, SalesStatsResponse{
		Today: PeriodStatsResponse{Total: stats.Today.Total.ToFloat(), Count: stats.Today.Count},
		Month: PeriodStatsResponse{Total: stats.Month.Total.ToFloat(), Count: stats.Month.Count},
	})
}
