package service

import (
	"context"
	"time"

	"github.com/gameroom/backoffice/internal/core/domain"
	"github.com/gameroom/backoffice/internal/core/dto"
	"github.com/gameroom/backoffice/internal/core/logger"
	"github.com/gameroom/backoffice/internal/core/port"
	"github.com/gameroom/backoffice/internal/core/serviceerrors"
)

type SessionService struct {
	sessionRepository port.SessionPort
}

func NewSessionService(sessionRepository port.SessionPort) *SessionService {
	return &SessionService{sessionRepository: sessionRepository}
}

func (s *SessionService) CreateSession(ctx context.Context, request *dto.CreateSessionRequest) (*domain.PlaySession, error) {
	if domain.StationTypeFor(request.Station) == "" {
		return nil, serviceerrors.NewInvalidRequestError("Lugar de juego inválido")
	}

	paymentStatus := domain.PaymentInProgress
	if request.PaymentStatus != "" {
		paymentStatus = domain.PaymentStatus(request.PaymentStatus)
		if !paymentStatus.IsValid() {
			return nil, serviceerrors.NewInvalidRequestError("Estado de pago inválido")
		}
	}

	session := &domain.PlaySession{
		Date:             request.Date,
		Customer:         request.Customer,
		AttendedBy:       request.AttendedBy,
		MinutesPaid:      request.MinutesPaid,
		MinutesPending:   request.MinutesPending,
		StartTime:        request.StartTime,
		EndTime:          request.EndTime,
		Station:          request.Station,
		GamesPlayed:      request.GamesPlayed,
		ExtraControllers: request.ExtraControllers,
		PaymentStatus:    paymentStatus,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}
	session.Reprice()

	if err := s.sessionRepository.Create(ctx, session); err != nil {
		logger.Error(ctx, "session: create failed", err, map[string]any{
			"station": request.Station,
		})
		return nil, err
	}

	logger.Info(ctx, "Play session created", map[string]any{"session_id": session.ID})
	return session, nil
}

func (s *SessionService) UpdateSession(ctx context.Context, id domain.ID, request *dto.UpdateSessionRequest) (*domain.PlaySession, error) {
	session, err := s.sessionRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if request.Date != nil {
		session.Date = *request.Date
	}
	if request.Customer != nil {
		session.Customer = *request.Customer
	}
	if request.AttendedBy != nil {
		session.AttendedBy = *request.AttendedBy
	}
	if request.MinutesPaid != nil {
		session.MinutesPaid = *request.MinutesPaid
	}
	if request.MinutesPending != nil {
		session.MinutesPending = *request.MinutesPending
	}
	if request.StartTime != nil {
		session.StartTime = *request.StartTime
	}
	if request.EndTime != nil {
		session.EndTime = *request.EndTime
	}
	if request.Station != nil {
		if domain.StationTypeFor(*request.Station) == "" {
			return nil, serviceerrors.NewInvalidRequestError("Lugar de juego inválido")
		}
		session.Station = *request.Station
	}
	if request.GamesPlayed != nil {
		session.GamesPlayed = *request.GamesPlayed
	}
	if request.ExtraControllers != nil {
		session.ExtraControllers = *request.ExtraControllers
	}
	if request.PaymentStatus != nil {
		paymentStatus := domain.PaymentStatus(*request.PaymentStatus)
		if !paymentStatus.IsValid() {
			return nil, serviceerrors.NewInvalidRequestError("Estado de pago inválido")
		}
		session.PaymentStatus = paymentStatus
	}

	// Fees are never taken from the client.
	session.Reprice()
	session.UpdatedAt = time.Now()

	if err := s.sessionRepository.Update(ctx, session); err != nil {
		logger.Error(ctx, "session: update failed", err, map[string]any{
			"session_id": id,
		})
		return nil, err
	}

	logger.Info(ctx, "Play session updated", map[string]any{"session_id": id})
	return session, nil
}

func (s *SessionService) GetByID(ctx context.Context, id domain.ID) (*domain.PlaySession, error) {
	return s.sessionRepository.GetByID(ctx, id)
}

func (s *SessionService) GetPage(ctx context.Context, limit, offset int64) ([]*domain.PlaySession, int64, error) {
	return s.sessionRepository.GetPage(ctx, limit, offset)
}

func (s *SessionService) DeleteSession(ctx context.Context, id domain.ID) error {
	if err := s.sessionRepository.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info(ctx, "Play session deleted", map[string]any{"session_id": id})
	return nil
}
