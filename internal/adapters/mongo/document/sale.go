package document

import (
	"time"

	"github.com/gameroom/backoffice/internal/core/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SaleLineDocument struct {
	ProductID   primitive.ObjectID `bson:"producto_id"`
	ProductName string             `bson:"nombre"`
	Quantity    int                `bson:"cantidad"`
	UnitPrice   int64              `bson:"precio_venta"`
	Subtotal    int64              `bson:"subtotal"`
}

type SaleDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Lines       []SaleLineDocument `bson:"productos"`
	Total       int64              `bson:"total"`
	AmountPaid  int64              `bson:"monto_pagado"`
	ChangeGiven int64              `bson:"vuelto"`
	Date        time.Time          `bson:"fecha"`
	CashierID   primitive.ObjectID `bson:"cajero_id,omitempty"`
	CashierName string             `bson:"cajero,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
}

func (doc SaleDocument) GetID() primitive.ObjectID {
	return doc.ID
}

func (doc *SaleDocument) ToDomain() *domain.Sale {
	lines := make([]domain.SaleLine, len(doc.Lines))
	for i, lineDoc := range doc.Lines {
		lines[i] = domain.SaleLine{
			ProductID:   domain.ID(lineDoc.ProductID.Hex()),
			ProductName: lineDoc.ProductName,
			Quantity:    lineDoc.Quantity,
			UnitPrice:   domain.Amount(lineDoc.UnitPrice),
			Subtotal:    domain.Amount(lineDoc.Subtotal),
		}
	}

	sale := &domain.Sale{
		ID:          domain.ID(doc.ID.Hex()),
		Lines:       lines,
		Total:       domain.Amount(doc.Total),
		AmountPaid:  domain.Amount(doc.AmountPaid),
		ChangeGiven: domain.Amount(doc.ChangeGiven),
		Date:        doc.Date,
		CashierName: doc.CashierName,
		CreatedAt:   doc.CreatedAt,
	}

	if !doc.CashierID.IsZero() {
		sale.CashierID = domain.ID(doc.CashierID.Hex())
	}

	return sale
}

func ToSaleDocument(sale *domain.Sale) *SaleDocument {
	lines := make([]SaleLineDocument, len(sale.Lines))
	for i, line := range sale.Lines {
		lineDoc := SaleLineDocument{
			ProductName: line.ProductName,
			Quantity:    line.Quantity,
			UnitPrice:   int64(line.UnitPrice),
			Subtotal:    int64(line.Subtotal),
		}

		if line.ProductID != "" {
			productID, _ := primitive.ObjectIDFromHex(string(line.ProductID))
			lineDoc.ProductID = productID
		}

		lines[i] = lineDoc
	}

	doc := &SaleDocument{
		Lines:       lines,
		Total:       int64(sale.Total),
		AmountPaid:  int64(sale.AmountPaid),
		ChangeGiven: int64(sale.ChangeGiven),
		Date:        sale.Date,
		CashierName: sale.CashierName,
		CreatedAt:   sale.CreatedAt,
	}

	if sale.ID != "" {
		objectID, _ := primitive.ObjectIDFromHex(string(sale.ID))
		doc.ID = objectID
	}

	if sale.CashierID != "" {
		cashierID, _ := primitive.ObjectIDFromHex(string(sale.CashierID))
		doc.CashierID = cashierID
	}

	return doc
}
