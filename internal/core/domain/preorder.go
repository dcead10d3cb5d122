package domain

import "time"

type PreorderStatus string

const (
	PreorderStatusPending   PreorderStatus = "pendiente"
	PreorderStatusConfirmed PreorderStatus = "confirmado"
	PreorderStatusCompleted PreorderStatus = "completado"
	PreorderStatusCancelled PreorderStatus = "cancelado"
)

func (s PreorderStatus) IsValid() bool {
	return s == PreorderStatusPending || s == PreorderStatusConfirmed || s == PreorderStatusCompleted || s == PreorderStatusCancelled
}

// Preorder is a customer reservation for a product. It does not hold stock;
// availability is re-checked when the preorder is fulfilled through checkout.
type Preorder struct {
	ID           ID
	ProductID    ID
	ProductName  string
	UnitPrice    Amount
	CustomerName string
	Phone        string
	Email        string
	Quantity     int
	Total        Amount
	Notes        string
	Status       PreorderStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewPreorder(productID ID, productName string, unitPrice Amount, customerName, phone, email string, quantity int, total Amount, notes string) *Preorder {
	return &Preorder{
		ProductID:    productID,
		ProductName:  productName,
		UnitPrice:    unitPrice,
		CustomerName: customerName,
		Phone:        phone,
		Email:        email,
		Quantity:     quantity,
		Total:        total,
		Notes:        notes,
		Status:       PreorderStatusPending,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
}

type PreorderStatusChangedEvent struct {
	PreorderID ID             `json:"preorder_id"`
	Status     PreorderStatus `json:"status"`
	OldStatus  PreorderStatus `json:"old_status"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

func (e *PreorderStatusChangedEvent) GetName() string {
	return "preorder.status_changed"
}

func (e *PreorderStatusChangedEvent) GetEntityName() string {
	return "preorder"
}

func NewPreorderStatusChangedEvent(preorderID ID, status, oldStatus PreorderStatus, updatedAt time.Time) *PreorderStatusChangedEvent {
	return &PreorderStatusChangedEvent{
		PreorderID: preorderID,
		Status:     status,
		OldStatus:  oldStatus,
		UpdatedAt:  updatedAt,
	}
}
