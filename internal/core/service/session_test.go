package service

import (
	"context"
	"testing"
	"time"

	"github.com/gameroom/backoffice/internal/core/domain"
	"github.com/gameroom/backoffice/internal/core/dto"
	"github.com/gameroom/backoffice/internal/core/port/mock"
	"github.com/gameroom/backoffice/internal/core/serviceerrors"
	"go.uber.org/mock/gomock"
)

func setupSessionService(t *testing.T) (*SessionService, *mock.MockSessionPort) {
	ctrl := gomock.NewController(t)
	sessionRepo := mock.NewMockSessionPort(ctrl)
	return NewSessionService(sessionRepo), sessionRepo
}

func testSessionRequest() *dto.CreateSessionRequest {
	return &dto.CreateSessionRequest{
		Date:             time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
		Customer:         "Kevin Salas",
		AttendedBy:       "Ana",
		MinutesPaid:      60,
		StartTime:        "14:00",
		Station:          "Play 5 #1",
		ExtraControllers: 1,
	}
}

func TestSessionService_CreateSession(t *testing.T) {
	t.Run("prices the session server side", func(t *testing.T) {
		svc, repo := setupSessionService(t)

		repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, session *domain.PlaySession) error {
				session.ID = domain.ID("aabbccddee112233aabbccdd")
				return nil
			})

		session, err := svc.CreateSession(context.Background(), testSessionRequest())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if session.StationType != domain.StationPlay5 {
			t.Fatalf("expected Play 5 station type, got %s", session.StationType)
		}
		if session.Total != domain.NewAmountFromValue(1200) {
			t.Fatalf("expected total 1200, got %v", session.Total)
		}
		if session.PaymentStatus != domain.PaymentInProgress {
			t.Fatalf("expected in-progress payment, got %s", session.PaymentStatus)
		}
	})

	t.Run("unknown station", func(t *testing.T) {
		svc, _ := setupSessionService(t)

		req := testSessionRequest()
		req.Station = "Mesa de pool"

		_, err := svc.CreateSession(context.Background(), req)
		if !serviceerrors.IsOfKind(err, serviceerrors.KindInvalidRequest) {
			t.Fatalf("expected invalid request error, got %v", err)
		}
	})

	t.Run("invalid payment status", func(t *testing.T) {
		svc, _ := setupSessionService(t)

		req := testSessionRequest()
		req.PaymentStatus = "Fiado"

		_, err := svc.CreateSession(context.Background(), req)
		if !serviceerrors.IsOfKind(err, serviceerrors.KindInvalidRequest) {
			t.Fatalf("expected invalid request error, got %v", err)
		}
	})
}

func TestSessionService_UpdateSession(t *testing.T) {
	sessionID := domain.ID("aabbccddee112233aabbccdd")

	existing := func() *domain.PlaySession {
		s := &domain.PlaySession{
			ID:               sessionID,
			Customer:         "Kevin Salas",
			MinutesPaid:      60,
			Station:          "Play 5 #1",
			ExtraControllers: 1,
			PaymentStatus:    domain.PaymentInProgress,
		}
		s.Reprice()
		return s
	}

	t.Run("changing minutes reprices the fees", func(t *testing.T) {
		svc, repo := setupSessionService(t)

		repo.EXPECT().
			GetByID(gomock.Any(), sessionID).
			Return(existing(), nil)
		repo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			Return(nil)

		minutes := 30
		controllers := 0
		session, err := svc.UpdateSession(context.Background(), sessionID, &dto.UpdateSessionRequest{
			MinutesPaid:      &minutes,
			ExtraControllers: &controllers,
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if session.Total != domain.NewAmountFromValue(500) {
			t.Fatalf("expected repriced total 500, got %v", session.Total)
		}
	})

	t.Run("switching station reprices with the new rate", func(t *testing.T) {
		svc, repo := setupSessionService(t)

		repo.EXPECT().
			GetByID(gomock.Any(), sessionID).
			Return(existing(), nil)
		repo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			Return(nil)

		station := "Play 4 #2"
		session, err := svc.UpdateSession(context.Background(), sessionID, &dto.UpdateSessionRequest{Station: &station})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if session.StationType != domain.StationPlay4 {
			t.Fatalf("expected Play 4 station type, got %s", session.StationType)
		}
		if session.Total != domain.NewAmountFromValue(1000) {
			t.Fatalf("expected repriced total 1000, got %v", session.Total)
		}
	})

	t.Run("invalid station is rejected before writing", func(t *testing.T) {
		svc, repo := setupSessionService(t)

		repo.EXPECT().
			GetByID(gomock.Any(), sessionID).
			Return(existing(), nil)

		station := "Mesa de pool"
		_, err := svc.UpdateSession(context.Background(), sessionID, &dto.UpdateSessionRequest{Station: &station})
		if !serviceerrors.IsOfKind(err, serviceerrors.KindInvalidRequest) {
			t.Fatalf("expected invalid request error, got %v", err)
		}
	})

	t.Run("missing session", func(t *testing.T) {
		svc, repo := setupSessionService(t)

		repo.EXPECT().
			GetByID(gomock.Any(), sessionID).
			Return(nil, serviceerrors.NewNotFoundError("not found"))

		_, err := svc.UpdateSession(context.Background(), sessionID, &dto.UpdateSessionRequest{})
		if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			t.Fatalf("expected not found error, got %v", err)
		}
	})
}
