package dto

// Product create/update payloads arrive as multipart form fields alongside an
// optional image file, so everything binds from form values.
type CreateProductRequest struct {
	Name          string  `form:"nombre" binding:"required"`
	Stock         int     `form:"cantidad" binding:"min=0"`
	PurchasePrice float64 `form:"precioCompra" binding:"required,gte=0"`
	SalePrice     float64 `form:"precioVenta" binding:"required,gte=0"`
	PurchasedAt   string  `form:"fechaCompra" binding:"required"`
	ForSale       bool    `form:"seVende"`
}

type UpdateProductRequest struct {
	Name          *string  `form:"nombre"`
	Stock         *int     `form:"cantidad" binding:"omitempty,min=0"`
	PurchasePrice *float64 `form:"precioCompra" binding:"omitempty,gte=0"`
	SalePrice     *float64 `form:"precioVenta" binding:"omitempty,gte=0"`
	PurchasedAt   *string  `form:"fechaCompra"`
	ForSale       *bool    `form:"seVende"`
}
