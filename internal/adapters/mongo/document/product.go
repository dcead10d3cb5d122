package document

import (
	"time"

	"github.com/gameroom/backoffice/internal/core/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductDocument struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Name          string             `bson:"nombre"`
	Stock         int                `bson:"cantidad"`
	PurchasePrice int64              `bson:"precio_compra"`
	SalePrice     int64              `bson:"precio_venta"`
	PurchasedAt   time.Time          `bson:"fecha_compra"`
	ImageURL      string             `bson:"imagen,omitempty"`
	ForSale       bool               `bson:"se_vende"`
	CreatedBy     primitive.ObjectID `bson:"created_by,omitempty"`
	CreatedAt     time.Time          `bson:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at"`
}

func (doc ProductDocument) GetID() primitive.ObjectID {
	return doc.ID
}

func (doc *ProductDocument) ToDomain() *domain.Product {
	product := &domain.Product{
		ID:            domain.ID(doc.ID.Hex()),
		Name:          doc.Name,
		Stock:         doc.Stock,
		PurchasePrice: domain.Amount(doc.PurchasePrice),
		SalePrice:     domain.Amount(doc.SalePrice),
		PurchasedAt:   doc.PurchasedAt,
		ImageURL:      doc.ImageURL,
		ForSale:       doc.ForSale,
		CreatedAt:     doc.CreatedAt,
		UpdatedAt:     doc.UpdatedAt,
	}
	if !doc.CreatedBy.IsZero() {
		product.CreatedBy = domain.ID(doc.CreatedBy.Hex())
	}
	return product
}

func ToProductDocument(p *domain.Product) *ProductDocument {
	doc := &ProductDocument{
		Name:          p.Name,
		Stock:         p.Stock,
		PurchasePrice: int64(p.PurchasePrice),
		SalePrice:     int64(p.SalePrice),
		PurchasedAt:   p.PurchasedAt,
		ImageURL:      p.ImageURL,
		ForSale:       p.ForSale,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
	if p.ID != "" {
		objectID, _ := primitive.ObjectIDFromHex(string(p.ID))
		doc.ID = objectID
	}

	if p.CreatedBy != "" {
		createdBy, _ := primitive.ObjectIDFromHex(string(p.CreatedBy))
		doc.CreatedBy = createdBy
	}

	return doc
}
