package document

import (
	"time"

	"github.com/gameroom/backoffice/internal/core/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PlaySessionDocument struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	Date             time.Time          `bson:"fecha"`
	Customer         string             `bson:"cliente"`
	AttendedBy       string             `bson:"atendio"`
	MinutesPaid      int                `bson:"tiempo_pagado"`
	MinutesPending   int                `bson:"tiempo_pendiente"`
	StartTime        string             `bson:"hora_inicio,omitempty"`
	EndTime          string             `bson:"hora_fin,omitempty"`
	Station          string             `bson:"lugar_de_juego"`
	StationType      string             `bson:"tipo_estacion"`
	GamesPlayed      []string           `bson:"juegos,omitempty"`
	ExtraControllers int                `bson:"control_adicional"`
	Subtotal         int64              `bson:"subtotal"`
	ControllerFee    int64              `bson:"monto_controles"`
	Total            int64              `bson:"total"`
	PaymentStatus    string             `bson:"estado_pago"`
	CreatedAt        time.Time          `bson:"created_at"`
	UpdatedAt        time.Time          `bson:"updated_at"`
}

func (doc PlaySessionDocument) GetID() primitive.ObjectID {
	return doc.ID
}

func (doc *PlaySessionDocument) ToDomain() *domain.PlaySession {
	return &domain.PlaySession{
		ID:               domain.ID(doc.ID.Hex()),
		Date:             doc.Date,
		Customer:         doc.Customer,
		AttendedBy:       doc.AttendedBy,
		MinutesPaid:      doc.MinutesPaid,
		MinutesPending:   doc.MinutesPending,
		StartTime:        doc.StartTime,
		EndTime:          doc.EndTime,
		Station:          doc.Station,
		StationType:      domain.StationType(doc.StationType),
		GamesPlayed:      doc.GamesPlayed,
		ExtraControllers: doc.ExtraControllers,
		Subtotal:         domain.Amount(doc.Subtotal),
		ControllerFee:    domain.Amount(doc.ControllerFee),
		Total:            domain.Amount(doc.Total),
		PaymentStatus:    domain.PaymentStatus(doc.PaymentStatus),
		CreatedAt:        doc.CreatedAt,
		UpdatedAt:        doc.UpdatedAt,
	}
}

func ToPlaySessionDocument(session *domain.PlaySession) *PlaySessionDocument {
	doc := &PlaySessionDocument{
		Date:             session.Date,
		Customer:         session.Customer,
		AttendedBy:       session.AttendedBy,
		MinutesPaid:      session.MinutesPaid,
		MinutesPending:   session.MinutesPending,
		StartTime:        session.StartTime,
		EndTime:          session.EndTime,
		Station:          session.Station,
		StationType:      string(session.StationType),
		GamesPlayed:      session.GamesPlayed,
		ExtraControllers: session.ExtraControllers,
		Subtotal:         int64(session.Subtotal),
		ControllerFee:    int64(session.ControllerFee),
		Total:            int64(session.Total),
		PaymentStatus:    string(session.PaymentStatus),
		CreatedAt:        session.CreatedAt,
		UpdatedAt:        session.UpdatedAt,
	}

	if session.ID != "" {
		objectID, _ := primitive.ObjectIDFromHex(string(session.ID))
		doc.ID = objectID
	}

	return doc
}
