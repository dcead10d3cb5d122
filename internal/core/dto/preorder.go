package dto

import "github.com/gameroom/backoffice/internal/core/domain"

type CreatePreorderRequest struct {
	ProductID    domain.ID `json:"productoId" binding:"required"`
	ProductName  string    `json:"productoNombre" binding:"required"`
	UnitPrice    float64   `json:"precioVenta" binding:"required,gt=0"`
	CustomerName string    `json:"nombreCliente" binding:"required"`
	Phone        string    `json:"telefono" binding:"required"`
	Email        string    `json:"email" binding:"omitempty,email"`
	Quantity     int       `json:"cantidad" binding:"required,gt=0"`
	Total        float64   `json:"total" binding:"required,gt=0"`
	Notes        string    `json:"notas"`
}

type UpdatePreorderStatusRequest struct {
	Status string `json:"estado" binding:"required"`
}
