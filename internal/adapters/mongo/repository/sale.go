package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gameroom/backoffice/internal/adapters/mongo/document"
	"github.com/gameroom/backoffice/internal/adapters/outbox"
	"github.com/gameroom/backoffice/internal/core/domain"
	"github.com/gameroom/backoffice/internal/core/logger"
	"github.com/gameroom/backoffice/internal/core/port"
)

// SaleRepository is append-only. Recorded sales are the financial history of
// the business, so there is no update or delete path.
type SaleRepository struct {
	*BaseRepository[document.SaleDocument]
	db         *mongo.Database
	collection *mongo.Collection
	outbox     outbox.Repository
}

func NewSaleRepository(db *mongo.Database, outbox outbox.Repository) port.SalePort {
	baseRepo := NewBaseRepository[document.SaleDocument](db, "sales")

	repo := &SaleRepository{
		BaseRepository: baseRepo,
		db:             db,
		collection:     db.Collection("sales"),
		outbox:         outbox,
	}

	if err := repo.createIndexes(context.Background()); err != nil {
		logger.Error(context.Background(), "failed to create indexes", err, map[string]any{
			"collection": "sales",
		})
	}

	return repo
}

func (r *SaleRepository) createIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "fecha", Value: -1}},
			Options: options.Index().SetUnique(false),
		},
		{
			Keys:    bson.D{{Key: "productos.producto_id", Value: 1}},
			Options: options.Index().SetUnique(false),
		},
	}

	_, err := r.collection.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *SaleRepository) CreateWithOutbox(ctx context.Context, sale *domain.Sale, newEvent func(*domain.Sale) domain.Event) error {
	if sale.ID != "" {
		return errors.New("cannot create sale with existing ID")
	}

	doc := document.ToSaleDocument(sale)
	doc.CreatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return parseError(err)
	}

	sale.ID = domain.ID(result.InsertedID.(primitive.ObjectID).Hex())
	sale.CreatedAt = doc.CreatedAt

	// The event is built only now, after the insert assigned the sale ID.
	return r.SaveEvent(ctx, newEvent(sale))
}

func (r *SaleRepository) SaveEvent(ctx context.Context, event domain.Event) error {
	eventData, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return r.outbox.Insert(ctx, outbox.Entry{
		EventName:  event.GetName(),
		EntityName: event.GetEntityName(),
		EventData:  eventData,
	})
}

func (r *SaleRepository) GetByID(ctx context.Context, id domain.ID) (*domain.Sale, error) {
	doc, err := r.FindByID(ctx, string(id))
	if err != nil {
		return nil, err
	}

	return doc.ToDomain(), nil
}

func (r *SaleRepository) GetPage(ctx context.Context, limit, offset int64) ([]*domain.Sale, int64, error) {
	total, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, parseError(err)
	}

	opts := options.Find().
		SetLimit(limit).
		SetSkip(offset).
		SetSort(bson.D{{Key: "fecha", Value: -1}})

	docs, err := r.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, err
	}

	sales := make([]*domain.Sale, len(docs))
	for i, doc := range docs {
		sales[i] = doc.ToDomain()
	}

	return sales, total, nil
}

func (r *SaleRepository) GetByDateRange(ctx context.Context, from, to time.Time) ([]*domain.Sale, error) {
	filter := bson.M{"fecha": bson.M{"$gte": from, "$lt": to}}

	opts := options.Find().SetSort(bson.D{{Key: "fecha", Value: 1}})

	docs, err := r.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	sales := make([]*domain.Sale, len(docs))
	for i, doc := range docs {
		sales[i] = doc.ToDomain()
	}

	return sales, nil
}
