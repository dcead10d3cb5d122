package document

import (
	"time"

	"github.com/gameroom/backoffice/internal/core/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PreorderDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	ProductID    primitive.ObjectID `bson:"producto_id"`
	ProductName  string             `bson:"producto"`
	UnitPrice    int64              `bson:"precio_venta"`
	CustomerName string             `bson:"cliente"`
	Phone        string             `bson:"telefono,omitempty"`
	Email        string             `bson:"email,omitempty"`
	Quantity     int                `bson:"cantidad"`
	Total        int64              `bson:"total"`
	Notes        string             `bson:"notas,omitempty"`
	Status       string             `bson:"estado"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

func (doc PreorderDocument) GetID() primitive.ObjectID {
	return doc.ID
}

func (doc *PreorderDocument) ToDomain() *domain.Preorder {
	return &domain.Preorder{
		ID:           domain.ID(doc.ID.Hex()),
		ProductID:    domain.ID(doc.ProductID.Hex()),
		ProductName:  doc.ProductName,
		UnitPrice:    domain.Amount(doc.UnitPrice),
		CustomerName: doc.CustomerName,
		Phone:        doc.Phone,
		Email:        doc.Email,
		Quantity:     doc.Quantity,
		Total:        domain.Amount(doc.Total),
		Notes:        doc.Notes,
		Status:       domain.PreorderStatus(doc.Status),
		CreatedAt:    doc.CreatedAt,
		UpdatedAt:    doc.UpdatedAt,
	}
}

func ToPreorderDocument(preorder *domain.Preorder) *PreorderDocument {
	doc := &PreorderDocument{
		ProductName:  preorder.ProductName,
		UnitPrice:    int64(preorder.UnitPrice),
		CustomerName: preorder.CustomerName,
		Phone:        preorder.Phone,
		Email:        preorder.Email,
		Quantity:     preorder.Quantity,
		Total:        int64(preorder.Total),
		Notes:        preorder.Notes,
		Status:       string(preorder.Status),
		CreatedAt:    preorder.CreatedAt,
		UpdatedAt:    preorder.UpdatedAt,
	}

	if preorder.ID != "" {
		objectID, _ := primitive.ObjectIDFromHex(string(preorder.ID))
		doc.ID = objectID
	}

	if preorder.ProductID != "" {
		productID, _ := primitive.ObjectIDFromHex(string(preorder.ProductID))
		doc.ProductID = productID
	}

	return doc
}
