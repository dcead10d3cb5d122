package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/gameroom/backoffice/internal/adapters/mongo/document"
	"github.com/gameroom/backoffice/internal/core/domain"
	"github.com/gameroom/backoffice/internal/core/logger"
	"github.com/gameroom/backoffice/internal/core/port"
	"github.com/gameroom/backoffice/internal/core/serviceerrors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProductRepository struct {
	*BaseRepository[document.ProductDocument]
	collection *mongo.Collection
}

func NewProductRepository(db *mongo.Database) port.ProductPort {
	repo := &ProductRepository{
		BaseRepository: NewBaseRepository[document.ProductDocument](db, "products"),
		collection:     db.Collection("products"),
	}

	if err := repo.createIndexes(context.Background()); err != nil {
		logger.Error(context.Background(), "failed to create indexes", err, map[string]any{
			"collection": "products",
		})
	}

	return repo
}

func (r *ProductRepository) createIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "se_vende", Value: 1}},
			Options: options.Index().SetUnique(false),
		},
		{
			Keys:    bson.D{{Key: "nombre", Value: 1}},
			Options: options.Index().SetUnique(false),
		},
	}

	_, err := r.collection.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) error {
	doc := document.ToProductDocument(product)
	doc.CreatedAt = time.Now()
	doc.UpdatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return parseError(err)
	}

	product.ID = domain.ID(result.InsertedID.(primitive.ObjectID).Hex())
	product.CreatedAt = doc.CreatedAt
	product.UpdatedAt = doc.UpdatedAt
	return nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id domain.ID) (*domain.Product, error) {
	doc, err := r.FindByID(ctx, string(id))
	if err != nil {
		return nil, err
	}

	return doc.ToDomain(), nil
}

func (r *ProductRepository) GetAll(ctx context.Context, filter port.ProductFilter) ([]*domain.Product, error) {
	query := bson.M{}
	if filter.ForSale != nil {
		query["se_vende"] = *filter.ForSale
	}

	opts := options.Find().SetSort(bson.D{{Key: "nombre", Value: 1}})

	docs, err := r.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}

	products := make([]*domain.Product, len(docs))
	for i, doc := range docs {
		products[i] = doc.ToDomain()
	}

	return products, nil
}

func (r *ProductRepository) Update(ctx context.Context, product *domain.Product) error {
	product.UpdatedAt = time.Now()

	return r.BaseRepository.Update(ctx, string(product.ID), bson.M{
		"nombre":        product.Name,
		"cantidad":      product.Stock,
		"precio_compra": int64(product.PurchasePrice),
		"precio_venta":  int64(product.SalePrice),
		"fecha_compra":  product.PurchasedAt,
		"imagen":        product.ImageURL,
		"se_vende":      product.ForSale,
		"updated_at":    product.UpdatedAt,
	})
}

func (r *ProductRepository) Delete(ctx context.Context, id domain.ID) error {
	return r.DeleteByID(ctx, string(id))
}

// DeductStock conditionally decrements stock. The filter requires at least
// quantity units, so a concurrent checkout can never drive stock negative.
func (r *ProductRepository) DeductStock(ctx context.Context, id domain.ID, quantity int) error {
	objectID, err := primitive.ObjectIDFromHex(string(id))
	if err != nil {
		return parseError(err)
	}

	result := r.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": objectID, "cantidad": bson.M{"$gte": quantity}},
		bson.M{"$inc": bson.M{"cantidad": -quantity}},
	)
	if result.Err() != nil {
		if result.Err() == mongo.ErrNoDocuments {
			return serviceerrors.NewUnprocessableEntityError(fmt.Sprintf("insufficient stock for product %s", id))
		}
		return result.Err()
	}

	return nil
}
