package controllers

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gameroom/backoffice/internal/adapters/http/handlers"
	"github.com/gameroom/backoffice/internal/adapters/http/middleware"
	"github.com/gameroom/backoffice/internal/core/domain"
	"github.com/gameroom/backoffice/internal/core/dto"
	"github.com/gameroom/backoffice/internal/core/port"
	"github.com/gameroom/backoffice/internal/core/service"
	"github.com/gameroom/backoffice/internal/core/serviceerrors"
)

const maxImageSize = 5 << 20

type ProductController struct {
	productService *service.ProductService
}

func NewProductController(productService *service.ProductService) *ProductController {
	return &ProductController{productService: productService}
}

type ProductResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"nombre"`
	Stock         int       `json:"cantidad"`
	PurchasePrice float64   `json:"precioCompra"`
	SalePrice     float64   `json:"precioVenta"`
	PurchasedAt   time.Time `json:"fechaCompra"`
	ImageURL      string    `json:"imagen,omitempty"`
	ForSale       bool      `json:"seVende"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func NewProductResponse(product *domain.Product) ProductResponse {
	return ProductResponse{
		ID:            string(product.ID),
		Name:          product.Name,
		Stock:         product.Stock,
		PurchasePrice: product.PurchasePrice.ToFloat(),
		SalePrice:     product.SalePrice.ToFloat(),
		PurchasedAt:   product.PurchasedAt,
		ImageURL:      product.ImageURL,
		ForSale:       product.ForSale,
		CreatedAt:     product.CreatedAt,
		UpdatedAt:     product.UpdatedAt,
	}
}

// imageFile opens the optional multipart image, enforcing the size limit and
// accepted formats.
func imageFile(c *gin.Context) (io.ReadCloser, error) {
	header, err := c.FormFile("imagen")
	if err != nil {
		if err == http.ErrMissingFile {
			return nil, nil
		}
		return nil, serviceerrors.NewInvalidRequestError(err.Error())
	}

	if header.Size > maxImageSize {
		return nil, serviceerrors.NewInvalidRequestError("El archivo es demasiado grande. El límite es 5MB.")
	}

	switch header.Header.Get("Content-Type") {
	case "image/jpeg", "image/jpg", "image/png", "image/webp":
	default:
		return nil, serviceerrors.NewInvalidRequestError("Formato de imagen no válido. Solo se permiten JPG, PNG o WebP.")
	}

	file, err := header.Open()
	if err != nil {
		return nil, serviceerrors.NewInvalidRequestError(err.Error())
	}
	return file, nil
}

func closeImage(file io.ReadCloser) {
	if file != nil {
		file.Close()
	}
}

// CreateProduct godoc
// @Summary     Create a product
// @Description Creates an inventory product with an optional image
// @Tags        products
// @Accept      multipart/form-data
// @Produce     json
// @Param       nombre      formData string  true  "Product name"
// @Param       cantidad    formData int     false "Initial stock"
// @Param       precioCompra formData number true  "Purchase price"
// @Param       precioVenta formData number  true  "Sale price"
// @Param       fechaCompra formData string  true  "Purchase date (YYYY-MM-DD)"
// @Param       seVende     formData bool    false "Available for sale"
// @Param       imagen      formData file    false "Product image"
// @Success     201 {object} ProductResponse
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     401 {object} handlers.ErrorResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/inventario [post]
// @Security    BearerAuth
func (productController *ProductController) CreateProduct(c *gin.Context) {
	var request dto.CreateProductRequest
	if err := c.ShouldBind(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}

	image, err := imageFile(c)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	defer closeImage(image)

	var createdBy domain.ID
	if identity := middleware.IdentityFrom(c); identity != nil {
		createdBy = identity.UserID
	}

	var reader io.Reader
	if image != nil {
		reader = image
	}

	product, err := productController.productService.CreateProduct(c.Request.Context(), createdBy, &request, reader)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewProductResponse(product))
}

// GetProducts godoc
// @Summary     List products
// @Description Returns all products, optionally filtered to those for sale
// @Tags        products
// @Produce     json
// @Param       seVende query    bool false "Only products for sale"
// @Success     200     {array}  ProductResponse
// @Failure     500     {object} handlers.ErrorResponse
// @Router      /api/v1/inventario [get]
// @Security    BearerAuth
func (productController *ProductController) GetProducts(c *gin.Context) {
	var filter port.ProductFilter
	if raw, ok := c.GetQuery("seVende"); ok {
		forSale := raw == "true"
		filter.ForSale = &forSale
	}

	products, err := productController.productService.GetAll(c.Request.Context(), filter)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	responses := make([]ProductResponse, len(products))
	for i, product := range products {
		responses[i] = NewProductResponse(product)
	}

	c.JSON(http.StatusOK, responses)
}

// GetProductByID godoc
// @Summary     Get product by ID
// @Tags        products
// @Produce     json
// @Param       id  path     string true "Product ID"
// @Success     200 {object} ProductResponse
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/inventario/{id} [get]
// @Security    BearerAuth
func (productController *ProductController) GetProductByID(c *gin.Context) {
	productID := c.Param("id")
	if !domain.ValidateID(productID) {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("ID de producto inválido"))
		return
	}

	product, err := productController.productService.GetByID(c.Request.Context(), domain.ID(productID))
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, NewProductResponse(product))
}

// UpdateProduct godoc
// @Summary     Update a product
// @Description Partially updates a product; only submitted fields change
// @Tags        products
// @Accept      multipart/form-data
// @Produce     json
// @Param       id  path     string true "Product ID"
// @Success     200 {object} ProductResponse
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/inventario/{id} [put]
// @Security    BearerAuth
func (productController *ProductController) UpdateProduct(c *gin.Context) {
	productID := c.Param("id")
	if !domain.ValidateID(productID) {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("ID de producto inválido"))
		return
	}

	var request dto.UpdateProductRequest
	if err := c.ShouldBind(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}

	image, err := imageFile(c)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	defer closeImage(image)

	var reader io.Reader
	if image != nil {
		reader = image
	}

	product, err := productController.productService.UpdateProduct(c.Request.Context(), domain.ID(productID), &request, reader)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, NewProductResponse(product))
}

// DeleteProduct godoc
// @Summary     Delete a product
// @Tags        products
// @Produce     json
// @Param       id  path     string true "Product ID"
// @Success     200 {object} MessageResponse
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/inventario/{id} [delete]
// @Security    BearerAuth
func (productController *ProductController) DeleteProduct(c *gin.Context) {
	productID := c.Param("id")
	if !domain.ValidateID(productID) {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("ID de producto inválido"))
		return
	}

	if err := productController.productService.DeleteProduct(c.Request.Context(), domain.ID(productID)); err != nil {
		handlers.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Producto eliminado exitosamente"})
}
