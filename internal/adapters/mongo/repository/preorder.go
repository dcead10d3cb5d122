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
	"github.com/gameroom/backoffice/internal/core/serviceerrors"
)

type PreorderRepository struct {
	*BaseRepository[document.PreorderDocument]
	db         *mongo.Database
	collection *mongo.Collection
	outbox     outbox.Repository
}

func NewPreorderRepository(db *mongo.Database, outbox outbox.Repository) port.PreorderPort {
	baseRepo := NewBaseRepository[document.PreorderDocument](db, "preorders")

	repo := &PreorderRepository{
		BaseRepository: baseRepo,
		db:             db,
		collection:     db.Collection("preorders"),
		outbox:         outbox,
	}

	if err := repo.createIndexes(context.Background()); err != nil {
		logger.Error(context.Background(), "failed to create indexes", err, map[string]any{
			"collection": "preorders",
		})
	}

	return repo
}

func (r *PreorderRepository) createIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "estado", Value: 1}},
			Options: options.Index().SetUnique(false),
		},
		{
			Keys:    bson.D{{Key: "producto_id", Value: 1}},
			Options: options.Index().SetUnique(false),
		},
	}

	_, err := r.collection.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *PreorderRepository) Create(ctx context.Context, preorder *domain.Preorder) error {
	if preorder.ID != "" {
		return errors.New("cannot create preorder with existing ID")
	}

	doc := document.ToPreorderDocument(preorder)
	doc.CreatedAt = time.Now()
	doc.UpdatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return parseError(err)
	}

	preorder.ID = domain.ID(result.InsertedID.(primitive.ObjectID).Hex())
	preorder.CreatedAt = doc.CreatedAt
	preorder.UpdatedAt = doc.UpdatedAt

	return nil
}

func (r *PreorderRepository) GetByID(ctx context.Context, id domain.ID) (*domain.Preorder, error) {
	doc, err := r.FindByID(ctx, string(id))
	if err != nil {
		return nil, err
	}

	return doc.ToDomain(), nil
}

func (r *PreorderRepository) GetPage(ctx context.Context, status domain.PreorderStatus, limit, offset int64) ([]*domain.Preorder, int64, error) {
	filter := bson.M{}
	if status != "" {
		filter["estado"] = string(status)
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, parseError(err)
	}

	opts := options.Find().
		SetLimit(limit).
		SetSkip(offset).
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	docs, err := r.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}

	preorders := make([]*domain.Preorder, len(docs))
	for i, doc := range docs {
		preorders[i] = doc.ToDomain()
	}

	return preorders, total, nil
}

func (r *PreorderRepository) UpdateStatusWithOutbox(ctx context.Context, id domain.ID, status domain.PreorderStatus, event domain.Event) error {
	objectID, err := primitive.ObjectIDFromHex(string(id))
	if err != nil {
		return parseError(err)
	}

	eventData, err := json.Marshal(event)
	if err != nil {
		return err
	}

	session, err := r.db.Client().StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		result, err := r.collection.UpdateOne(sessCtx, bson.M{"_id": objectID}, bson.M{
			"$set": bson.M{
				"estado":     string(status),
				"updated_at": time.Now(),
			},
		})
		if err != nil {
			return nil, parseError(err)
		}
		if result.MatchedCount == 0 {
			return nil, serviceerrors.NewNotFoundError("entity not found")
		}

		entry := outbox.Entry{
			EventName:  event.GetName(),
			EntityName: event.GetEntityName(),
			EventData:  eventData,
		}
		if err := r.outbox.Insert(sessCtx, entry); err != nil {
			return nil, err
		}

		return nil, nil
	})

	return err
}

func (r *PreorderRepository) Delete(ctx context.Context, id domain.ID) error {
	return r.DeleteByID(ctx, string(id))
}

func (r *PreorderRepository) CountByStatus(ctx context.Context, status domain.PreorderStatus) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"estado": string(status)})
	if err != nil {
		return 0, parseError(err)
	}

	return count, nil
}
