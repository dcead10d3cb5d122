package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gameroom/backoffice/internal/adapters/mongo/document"
	"github.com/gameroom/backoffice/internal/core/domain"
	"github.com/gameroom/backoffice/internal/core/logger"
	"github.com/gameroom/backoffice/internal/core/port"
)

type SessionRepository struct {
	*BaseRepository[document.PlaySessionDocument]
	collection *mongo.Collection
}

func NewSessionRepository(db *mongo.Database) port.SessionPort {
	repo := &SessionRepository{
		BaseRepository: NewBaseRepository[document.PlaySessionDocument](db, "play_sessions"),
		collection:     db.Collection("play_sessions"),
	}

	if err := repo.createIndexes(context.Background()); err != nil {
		logger.Error(context.Background(), "failed to create indexes", err, map[string]any{
			"collection": "play_sessions",
		})
	}

	return repo
}

func (r *SessionRepository) createIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "fecha", Value: -1}},
			Options: options.Index().SetUnique(false),
		},
		{
			Keys:    bson.D{{Key: "estado_pago", Value: 1}},
			Options: options.Index().SetUnique(false),
		},
	}

	_, err := r.collection.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *SessionRepository) Create(ctx context.Context, session *domain.PlaySession) error {
	if session.ID != "" {
		return errors.New("cannot create session with existing ID")
	}

	doc := document.ToPlaySessionDocument(session)
	doc.CreatedAt = time.Now()
	doc.UpdatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return parseError(err)
	}

	session.ID = domain.ID(result.InsertedID.(primitive.ObjectID).Hex())
	session.CreatedAt = doc.CreatedAt
	session.UpdatedAt = doc.UpdatedAt

	return nil
}

func (r *SessionRepository) GetByID(ctx context.Context, id domain.ID) (*domain.PlaySession, error) {
	doc, err := r.FindByID(ctx, string(id))
	if err != nil {
		return nil, err
	}

	return doc.ToDomain(), nil
}

func (r *SessionRepository) GetPage(ctx context.Context, limit, offset int64) ([]*domain.PlaySession, int64, error) {
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

	sessions := make([]*domain.PlaySession, len(docs))
	for i, doc := range docs {
		sessions[i] = doc.ToDomain()
	}

	return sessions, total, nil
}

func (r *SessionRepository) Update(ctx context.Context, session *domain.PlaySession) error {
	session.UpdatedAt = time.Now()

	return r.BaseRepository.Update(ctx, string(session.ID), bson.M{
		"fecha":             session.Date,
		"cliente":           session.Customer,
		"atendio":           session.AttendedBy,
		"tiempo_pagado":     session.MinutesPaid,
		"tiempo_pendiente":  session.MinutesPending,
		"hora_inicio":       session.StartTime,
		"hora_fin":          session.EndTime,
		"lugar_de_juego":    session.Station,
		"tipo_estacion":     string(session.StationType),
		"juegos":            session.GamesPlayed,
		"control_adicional": session.ExtraControllers,
		"subtotal":          int64(session.Subtotal),
		"monto_controles":   int64(session.ControllerFee),
		"total":             int64(session.Total),
		"estado_pago":       string(session.PaymentStatus),
		"updated_at":        session.UpdatedAt,
	})
}

func (r *SessionRepository) Delete(ctx context.Context, id domain.ID) error {
	return r.DeleteByID(ctx, string(id))
}
