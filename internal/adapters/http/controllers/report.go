package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gameroom/backoffice/internal/adapters/http/handlers"
	"github.com/gameroom/backoffice/internal/core/service"
)

type ReportController struct {
	reportService *service.ReportService
}

func NewReportController(reportService *service.ReportService) *ReportController {
	return &ReportController{reportService: reportService}
}

func intQuery(c *gin.Context, name string, fallback int) int {
	value, err := strconv.Atoi(c.DefaultQuery(name, strconv.Itoa(fallback)))
	if err != nil || value < 1 {
		return fallback
	}
	return value
}

// GetSummary godoc
// @Summary     Business summary
// @Description Sales, inventory and preorder totals for the dashboard
// @Tags        reports
// @Produce     json
// @Success     200 {object} service.SummaryReport
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/reportes/resumen [get]
// @Security    BearerAuth
func (reportController *ReportController) GetSummary(c *gin.Context) {
	report, err := reportController.reportService.GetSummary(c.Request.Context())
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// GetTopProducts godoc
// @Summary     Best sellers
// @Tags        reports
// @Produce     json
// @Param       dias  query    int false "Window in days"
// @Param       limit query    int false "Max entries"
// @Success     200   {object} service.ProductRankingReport
// @Failure     500   {object} handlers.ErrorResponse
// @Router      /api/v1/reportes/mas-vendidos [get]
// @Security    BearerAuth
func (reportController *ReportController) GetTopProducts(c *gin.Context) {
	days := intQuery(c, "dias", 30)
	limit := intQuery(c, "limit", 10)

	report, err := reportController.reportService.GetTopProducts(c.Request.Context(), days, limit)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// GetLeastSoldProducts godoc
// @Summary     Slow movers
// @Description Products for sale with few or no sales in the window
// @Tags        reports
// @Produce     json
// @Param       dias       query    int false "Window in days"
// @Param       limit      query    int false "Max entries"
// @Param       maxVentas  query    int false "Inclusive sales ceiling"
// @Success     200        {object} service.ProductRankingReport
// @Failure     500        {object} handlers.ErrorResponse
// @Router      /api/v1/reportes/menos-vendidos [get]
// @Security    BearerAuth
func (reportController *ReportController) GetLeastSoldProducts(c *gin.Context) {
	days := intQuery(c, "dias", 30)
	limit := intQuery(c, "limit", 10)
	maxSales := intQuery(c, "maxVentas", 2)

	report, err := reportController.reportService.GetLeastSoldProducts(c.Request.Context(), days, limit, maxSales)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// GetLowStock godoc
// @Summary     Low and exhausted stock
// @Description Always computed from live inventory, never cached
// @Tags        reports
// @Produce     json
// @Param       umbral query    int false "Low stock threshold"
// @Param       limit  query    int false "Max entries per bucket"
// @Success     200    {object} service.LowStockReport
// @Failure     500    {object} handlers.ErrorResponse
// @Router      /api/v1/reportes/stock-bajo [get]
// @Security    BearerAuth
func (reportController *ReportController) GetLowStock(c *gin.Context) {
	threshold := intQuery(c, "umbral", 5)
	limit := intQuery(c, "limit", 20)

	report, err := reportController.reportService.GetLowStock(c.Request.Context(), threshold, limit)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// GetSalesByDay godoc
// @Summary     Daily sales series
// @Tags        reports
// @Produce     json
// @Param       dias query    int false "Window in days"
// @Success     200  {object} service.SalesSeriesReport
// @Failure     500  {object} handlers.ErrorResponse
// @Router      /api/v1/reportes/ventas-por-dia [get]
// @Security    BearerAuth
func (reportController *ReportController) GetSalesByDay(c *gin.Context) {
	days := intQuery(c, "dias", 7)

	report, err := reportController.reportService.GetSalesByDay(c.Request.Context(), days)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// GetPreorderStats godoc
// @Summary     Preorder counts by status
// @Tags        reports
// @Produce     json
// @Success     200 {object} service.PreorderStatsReport
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/reportes/apartados [get]
// @Security    BearerAuth
func (reportController *ReportController) GetPreorderStats(c *gin.Context) {
	report, err := reportController.reportService.GetPreorderStats(c.Request.Context())
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
