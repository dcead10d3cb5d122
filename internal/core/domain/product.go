package domain

import "time"

type Product struct {
	ID            ID
	Name          string
	Stock         int
	PurchasePrice Amount
	SalePrice     Amount
	PurchasedAt   time.Time
	ImageURL      string
	ForSale       bool
	CreatedBy     ID
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewProduct(name string, stock int, purchasePrice, salePrice Amount, purchasedAt time.Time, imageURL string, forSale bool, createdBy ID) *Product {
	return &Product{
		Name:          name,
		Stock:         stock,
		PurchasePrice: purchasePrice,
		SalePrice:     salePrice,
		PurchasedAt:   purchasedAt,
		ImageURL:      imageURL,
		ForSale:       forSale,
		CreatedBy:     createdBy,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
}

// InventoryValue is the product's stock valued at sale price.
func (p *Product) InventoryValue() Amount {
	return p.SalePrice.Multiply(p.Stock)
}

// UnitProfit is the margin per unit sold at the given price.
func (p *Product) UnitProfit(soldAt Amount) Amount {
	return soldAt.Sub(p.PurchasePrice)
}
