package dto

import "time"

type CreateSessionRequest struct {
	Date             time.Time `json:"fecha" binding:"required"`
	Customer         string    `json:"cliente" binding:"required"`
	AttendedBy       string    `json:"atendio" binding:"required"`
	MinutesPaid      int       `json:"tiempoPagado" binding:"required,gt=0"`
	MinutesPending   int       `json:"tiempoPendiente" binding:"min=0"`
	StartTime        string    `json:"horaInicio" binding:"required"`
	EndTime          string    `json:"horaFinal"`
	Station          string    `json:"lugarDeJuego" binding:"required"`
	GamesPlayed      []string  `json:"juegosJugados"`
	ExtraControllers int       `json:"controlAdicional" binding:"min=0"`
	PaymentStatus    string    `json:"estadoPago"`
}

type UpdateSessionRequest struct {
	Date             *time.Time `json:"fecha"`
	Customer         *string    `json:"cliente"`
	AttendedBy       *string    `json:"atendio"`
	MinutesPaid      *int       `json:"tiempoPagado" binding:"omitempty,gt=0"`
	MinutesPending   *int       `json:"tiempoPendiente" binding:"omitempty,min=0"`
	StartTime        *string    `json:"horaInicio"`
	EndTime          *string    `json:"horaFinal"`
	Station          *string    `json:"lugarDeJuego"`
	GamesPlayed      *[]string  `json:"juegosJugados"`
	ExtraControllers *int       `json:"controlAdicional" binding:"omitempty,min=0"`
	PaymentStatus    *string    `json:"estadoPago"`
}
