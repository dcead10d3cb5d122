package dto

import (
	"time"

	"github.com/gameroom/backoffice/internal/core/domain"
)

// CheckoutLine mirrors the cart line shape the point-of-sale frontend sends.
// Monetary fields are currency-unit floats on the wire.
type CheckoutLine struct {
	ProductID   domain.ID `json:"productoId"`
	ProductName string    `json:"nombre"`
	Quantity    int       `json:"cantidad"`
	UnitPrice   float64   `json:"precioVenta"`
	Subtotal    float64   `json:"subtotal"`
}

type CheckoutRequest struct {
	Lines       []CheckoutLine `json:"productos"`
	Total       float64        `json:"total"`
	AmountPaid  float64        `json:"montoPagado"`
	ChangeGiven float64        `json:"vuelto"`
	Date        *time.Time     `json:"fecha,omitempty"`
}
