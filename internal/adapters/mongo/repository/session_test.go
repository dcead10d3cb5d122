package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/gameroom/backoffice/internal/adapters/mongo/repository"
	"github.com/gameroom/backoffice/internal/core/domain"
	"github.com/gameroom/backoffice/internal/core/serviceerrors"
)

func newTestSession(date time.Time) *domain.PlaySession {
	session := &domain.PlaySession{
		Date:             date,
		Customer:         "Carlos",
		AttendedBy:       "Luis",
		MinutesPaid:      60,
		StartTime:        "14:00",
		Station:          "Play 5 #1",
		GamesPlayed:      []string{"FIFA"},
		ExtraControllers: 1,
		PaymentStatus:    domain.PaymentPaid,
	}
	session.Reprice()
	return session
}

func TestSessionRepository_Create(t *testing.T) {
	repo := repository.NewSessionRepository(testDB)
	ctx := context.Background()

	t.Run("creates session with computed fees", func(t *testing.T) {
		session := newTestSession(time.Now())

		err := repo.Create(ctx, session)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if session.ID == "" {
			t.Fatal("expected session ID to be assigned")
		}

		found, _ := repo.GetByID(ctx, session.ID)
		if found.StationType != domain.StationPlay5 {
			t.Fatalf("expected station type %s, got %s", domain.StationPlay5, found.StationType)
		}
		// 1000/hr for one hour plus one extra controller at 200
		if found.Total != domain.NewAmountFromValue(1200) {
			t.Fatalf("expected total %d, got %d", domain.NewAmountFromValue(1200), found.Total)
		}
	})
}

func TestSessionRepository_Update(t *testing.T) {
	repo := repository.NewSessionRepository(testDB)
	ctx := context.Background()

	t.Run("persists repriced fields", func(t *testing.T) {
		session := newTestSession(time.Now())
		if err := repo.Create(ctx, session); err != nil {
			t.Fatalf("setup: create session failed: %v", err)
		}

		session.MinutesPaid = 30
		session.ExtraControllers = 0
		session.PaymentStatus = domain.PaymentPending
		session.Reprice()

		if err := repo.Update(ctx, session); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		found, _ := repo.GetByID(ctx, session.ID)
		if found.Total != domain.NewAmountFromValue(500) {
			t.Fatalf("expected total %d, got %d", domain.NewAmountFromValue(500), found.Total)
		}
		if found.PaymentStatus != domain.PaymentPending {
			t.Fatalf("expected payment status %s, got %s", domain.PaymentPending, found.PaymentStatus)
		}
	})

	t.Run("returns not found for non-existing session", func(t *testing.T) {
		ghost := newTestSession(time.Now())
		ghost.ID = "aabbccddee112233aabbccdd"

		err := repo.Update(ctx, ghost)
		if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			t.Fatalf("expected KindNotFound, got %v", err)
		}
	})
}

func TestSessionRepository_GetPage(t *testing.T) {
	freshDB := testClient.Database("test_session_page")
	repo := repository.NewSessionRepository(freshDB)
	ctx := context.Background()

	base := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		session := newTestSession(base.Add(time.Duration(i) * time.Hour))
		if err := repo.Create(ctx, session); err != nil {
			t.Fatalf("setup: create session failed: %v", err)
		}
	}

	t.Run("pages newest first with total count", func(t *testing.T) {
		sessions, total, err := repo.GetPage(ctx, 2, 0)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if total != 3 {
			t.Fatalf("expected total 3, got %d", total)
		}
		if len(sessions) != 2 {
			t.Fatalf("expected 2 sessions, got %d", len(sessions))
		}
		if !sessions[0].Date.After(sessions[1].Date) {
			t.Fatal("expected newest-first ordering")
		}
	})
}

func TestSessionRepository_Delete(t *testing.T) {
	repo := repository.NewSessionRepository(testDB)
	ctx := context.Background()

	t.Run("deletes existing session", func(t *testing.T) {
		session := newTestSession(time.Now())
		if err := repo.Create(ctx, session); err != nil {
			t.Fatalf("setup: create session failed: %v", err)
		}

		if err := repo.Delete(ctx, session.ID); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		_, err := repo.GetByID(ctx, session.ID)
		if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			t.Fatalf("expected KindNotFound, got %v", err)
		}
	})
}
