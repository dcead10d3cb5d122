package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gameroom/backoffice/internal/adapters/http/handlers"
	"github.com/gameroom/backoffice/internal/core/domain"
	"github.com/gameroom/backoffice/internal/core/dto"
	"github.com/gameroom/backoffice/internal/core/service"
	"github.com/gameroom/backoffice/internal/core/serviceerrors"
)

type PreorderController struct {
	preorderService *service.PreorderService
}

func NewPreorderController(preorderService *service.PreorderService) *PreorderController {
	return &PreorderController{preorderService: preorderService}
}

type PreorderResponse struct {
	ID           string    `json:"id"`
	ProductID    string    `json:"productoId"`
	ProductName  string    `json:"productoNombre"`
	UnitPrice    float64   `json:"precioVenta"`
	CustomerName string    `json:"nombreCliente"`
	Phone        string    `json:"telefono,omitempty"`
	Email        string    `json:"email,omitempty"`
	Quantity     int       `json:"cantidad"`
	Total        float64   `json:"total"`
	Notes        string    `json:"notas,omitempty"`
	Status       string    `json:"estado"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type PreordersPageResponse struct {
	Preorders  []PreorderResponse `json:"apartados"`
	Pagination Pagination         `json:"pagination"`
}

func NewPreorderResponse(preorder *domain.Preorder) PreorderResponse {
	return PreorderResponse{
		ID:           string(preorder.ID),
		ProductID:    string(preorder.ProductID),
		ProductName:  preorder.ProductName,
		UnitPrice:    preorder.UnitPrice.ToFloat(),
		CustomerName: preorder.CustomerName,
		Phone:        preorder.Phone,
		Email:        preorder.Email,
		Quantity:     preorder.Quantity,
		Total:        preorder.Total.ToFloat(),
		Notes:        preorder.Notes,
		Status:       string(preorder.Status),
		CreatedAt:    preorder.CreatedAt,
		UpdatedAt:    preorder.UpdatedAt,
	}
}

// CreatePreorder godoc
// @Summary     Create a preorder
// @Description Reserves a product for a customer without holding stock
// @Tags        preorders
// @Accept      json
// @Produce     json
// @Param       request body     dto.CreatePreorderRequest true "Preorder data"
// @Success     201     {object} PreorderResponse
// @Failure     400     {object} handlers.ErrorResponse
// @Failure     404     {object} handlers.ErrorResponse
// @Failure     422     {object} handlers.ErrorResponse
// @Failure     500     {object} handlers.ErrorResponse
// @Router      /api/v1/apartados [post]
// @Security    BearerAuth
func (preorderController *PreorderController) CreatePreorder(c *gin.Context) {
	var request dto.CreatePreorderRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}

	preorder, err := preorderController.preorderService.CreatePreorder(c.Request.Context(), &request)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewPreorderResponse(preorder))
}

// GetPreorders godoc
// @Summary     List preorders
// @Description Returns a page of preorders, optionally filtered by status
// @Tags        preorders
// @Produce     json
// @Param       estado query    string false "Status filter"
// @Param       page   query    int    false "Page number (1-based)"
// @Param       limit  query    int    false "Page size"
// @Success     200    {object} PreordersPageResponse
// @Failure     400    {object} handlers.ErrorResponse
// @Failure     500    {object} handlers.ErrorResponse
// @Router      /api/v1/apartados [get]
// @Security    BearerAuth
func (preorderController *PreorderController) GetPreorders(c *gin.Context) {
	status := domain.PreorderStatus(c.Query("estado"))
	if status != "" && !status.IsValid() {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("Estado de apartado inválido"))
		return
	}

	page, limit := pageParams(c, 20)

	preorders, total, err := preorderController.preorderService.GetPage(c.Request.Context(), status, limit, (page-1)*limit)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	responses := make([]PreorderResponse, len(preorders))
	for i, preorder := range preorders {
		responses[i] = NewPreorderResponse(preorder)
	}

	c.JSON(http.StatusOK, PreordersPageResponse{
		Preorders:  responses,
		Pagination: newPagination(total, page, limit),
	})
}

// GetPreorderByID godoc
// @Summary     Get preorder by ID
// @Tags        preorders
// @Produce     json
// @Param       id  path     string true "Preorder ID"
// @Success     200 {object} PreorderResponse
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/apartados/{id} [get]
// @Security    BearerAuth
func (preorderController *PreorderController) GetPreorderByID(c *gin.Context) {
	preorderID := c.Param("id")
	if !domain.ValidateID(preorderID) {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("ID de apartado inválido"))
		return
	}

	preorder, err := preorderController.preorderService.GetByID(c.Request.Context(), domain.ID(preorderID))
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, NewPreorderResponse(preorder))
}

// UpdatePreorderStatus godoc
// @Summary     Update preorder status
// @Description Moves a preorder through its lifecycle and publishes the change
// @Tags        preorders
// @Accept      json
// @Produce     json
// @Param       id      path     string                          true "Preorder ID"
// @Param       request body     dto.UpdatePreorderStatusRequest true "New status"
// @Success     200     {object} PreorderResponse
// @Failure     400     {object} handlers.ErrorResponse
// @Failure     404     {object} handlers.ErrorResponse
// @Failure     422     {object} handlers.ErrorResponse
// @Failure     500     {object} handlers.ErrorResponse
// @Router      /api/v1/apartados/{id}/estado [patch]
// @Security    BearerAuth
func (preorderController *PreorderController) UpdatePreorderStatus(c *gin.Context) {
	preorderID := c.Param("id")
	if !domain.ValidateID(preorderID) {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("ID de apartado inválido"))
		return
	}

	var request dto.UpdatePreorderStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}

	preorder, err := preorderController.preorderService.UpdateStatus(c.Request.Context(), domain.ID(preorderID), domain.PreorderStatus(request.Status))
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, NewPreorderResponse(preorder))
}

// DeletePreorder godoc
// @Summary     Delete a preorder
// @Tags        preorders
// @Produce     json
// @Param       id  path     string true "Preorder ID"
// @Success     200 {object} MessageResponse
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/apartados/{id} [delete]
// @Security    BearerAuth
func (preorderController *PreorderController) DeletePreorder(c *gin.Context) {
	preorderID := c.Param("id")
	if !domain.ValidateID(preorderID) {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("ID de apartado inválido"))
		return
	}

	if err := preorderController.preorderService.DeletePreorder(c.Request.Context(), domain.ID(preorderID)); err != nil {
		handlers.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Apartado eliminado exitosamente"})
}
