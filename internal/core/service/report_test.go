package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gameroom/backoffice/internal/core/domain"
	"github.com/gameroom/backoffice/internal/core/port"
	"github.com/gameroom/backoffice/internal/core/port/mock"
	"go.uber.org/mock/gomock"
)

type reportMocks struct {
	saleRepo     *mock.MockSalePort
	productRepo  *mock.MockProductPort
	preorderRepo *mock.MockPreorderPort
	summaryCache *mock.MockCachePort[SummaryReport]
	rankingCache *mock.MockCachePort[ProductRankingReport]
	seriesCache  *mock.MockCachePort[SalesSeriesReport]
}

func setupReportService(t *testing.T) (*ReportService, *reportMocks) {
	ctrl := gomock.NewController(t)

	saleRepo := mock.NewMockSalePort(ctrl)
	productRepo := mock.NewMockProductPort(ctrl)
	preorderRepo := mock.NewMockPreorderPort(ctrl)
	summaryCache := mock.NewMockCachePort[SummaryReport](ctrl)
	rankingCache := mock.NewMockCachePort[ProductRankingReport](ctrl)
	seriesCache := mock.NewMockCachePort[SalesSeriesReport](ctrl)

	svc := NewReportService(saleRepo, productRepo, preorderRepo, summaryCache, rankingCache, seriesCache, 5*time.Minute, time.UTC)

	return svc, &reportMocks{
		saleRepo:     saleRepo,
		productRepo:  productRepo,
		preorderRepo: preorderRepo,
		summaryCache: summaryCache,
		rankingCache: rankingCache,
		seriesCache:  seriesCache,
	}
}

func reportSale(date time.Time, productID domain.ID, name string, quantity int, unitPrice float64) *domain.Sale {
	price := domain.NewAmountFromFloat(unitPrice)
	subtotal := price.Multiply(quantity)
	return &domain.Sale{
		Lines: []domain.SaleLine{{
			ProductID:   productID,
			ProductName: name,
			Quantity:    quantity,
			UnitPrice:   price,
			Subtotal:    subtotal,
		}},
		Total: subtotal,
		Date:  date,
	}
}

func TestReportService_GetSummary(t *testing.T) {
	t.Run("cache hit skips computation", func(t *testing.T) {
		svc, m := setupReportService(t)

		cached := &SummaryReport{PendingPreorders: 3}
		m.summaryCache.EXPECT().
			Get(gomock.Any(), "resumen-general").
			Return(cached, nil)

		report, err := svc.GetSummary(context.Background())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if report.PendingPreorders != 3 {
			t.Fatalf("expected cached report, got %+v", report)
		}
	})

	t.Run("cache miss computes and stores", func(t *testing.T) {
		svc, m := setupReportService(t)

		now := time.Now().UTC()
		productID := domain.ID("aabbccddee112233aabbccdd")
		todaySale := reportSale(now, productID, "Coca Cola 600ml", 2, 1000)

		m.summaryCache.EXPECT().
			Get(gomock.Any(), "resumen-general").
			Return(nil, nil)
		m.saleRepo.EXPECT().
			GetByDateRange(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]*domain.Sale{todaySale}, nil).
			Times(2)
		m.productRepo.EXPECT().
			GetAll(gomock.Any(), port.ProductFilter{}).
			Return([]*domain.Product{
				{ID: productID, Name: "Coca Cola 600ml", Stock: 10, PurchasePrice: domain.NewAmountFromValue(600), SalePrice: domain.NewAmountFromValue(1000), ForSale: true},
				{ID: "112233445566778899aabbcc", Name: "Cartucho retro", Stock: 2, PurchasePrice: domain.NewAmountFromValue(5000), ForSale: false},
			}, nil)
		m.preorderRepo.EXPECT().
			CountByStatus(gomock.Any(), domain.PreorderStatusPending).
			Return(int64(4), nil)
		m.summaryCache.EXPECT().
			Set(gomock.Any(), "resumen-general", gomock.Any(), 5*time.Minute).
			Return(nil)

		report, err := svc.GetSummary(context.Background())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if report.SalesToday.Total != 2000 || report.SalesToday.Count != 1 {
			t.Fatalf("unexpected today totals: %+v", report.SalesToday)
		}
		if report.SalesToday.Earnings != 800 {
			t.Fatalf("expected earnings 800, got %v", report.SalesToday.Earnings)
		}
		if report.InventoryTotal.ProductCount != 2 || report.InventoryTotal.UnitCount != 12 {
			t.Fatalf("unexpected inventory totals: %+v", report.InventoryTotal)
		}
		if report.InventoryForSale.ProductCount != 1 {
			t.Fatalf("expected 1 for-sale product, got %d", report.InventoryForSale.ProductCount)
		}
		if report.PendingPreorders != 4 {
			t.Fatalf("expected 4 pending preorders, got %d", report.PendingPreorders)
		}
	})

	t.Run("cache fault falls back to computing", func(t *testing.T) {
		svc, m := setupReportService(t)

		m.summaryCache.EXPECT().
			Get(gomock.Any(), "resumen-general").
			Return(nil, errors.New("redis down"))
		m.saleRepo.EXPECT().
			GetByDateRange(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil).
			Times(2)
		m.productRepo.EXPECT().
			GetAll(gomock.Any(), port.ProductFilter{}).
			Return(nil, nil)
		m.preorderRepo.EXPECT().
			CountByStatus(gomock.Any(), domain.PreorderStatusPending).
			Return(int64(0), nil)
		m.summaryCache.EXPECT().
			Set(gomock.Any(), "resumen-general", gomock.Any(), gomock.Any()).
			Return(errors.New("redis down"))

		if _, err := svc.GetSummary(context.Background()); err != nil {
			t.Fatalf("expected report despite cache fault, got %v", err)
		}
	})
}

func TestReportService_GetTopProducts(t *testing.T) {
	t.Run("ranks by units sold and collapses renamed duplicates", func(t *testing.T) {
		svc, m := setupReportService(t)

		now := time.Now().UTC()
		colaID := domain.ID("aabbccddee112233aabbccdd")
		chipsID := domain.ID("112233445566778899aabbcc")

		m.rankingCache.EXPECT().
			Get(gomock.Any(), "mas-vendidos:30:10").
			Return(nil, nil)
		m.productRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any()).
			Return([]*domain.Product{
				{ID: colaID, Name: "Coca Cola 600ml", ForSale: true},
				{ID: chipsID, Name: "Chips Jalapeño", ForSale: true},
			}, nil)
		m.saleRepo.EXPECT().
			GetByDateRange(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]*domain.Sale{
				reportSale(now.AddDate(0, 0, -1), colaID, "Coca Cola 600ml", 3, 1000),
				reportSale(now.AddDate(0, 0, -2), colaID, "coca cola 600ml ", 2, 1000),
				reportSale(now.AddDate(0, 0, -3), chipsID, "Chips Jalapeño", 4, 800),
			}, nil)
		m.rankingCache.EXPECT().
			Set(gomock.Any(), "mas-vendidos:30:10", gomock.Any(), gomock.Any()).
			Return(nil)

		report, err := svc.GetTopProducts(context.Background(), 30, 10)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(report.Products) != 2 {
			t.Fatalf("expected 2 ranking rows, got %d", len(report.Products))
		}
		if report.Products[0].Name != "Coca Cola 600ml" || report.Products[0].QuantitySold != 5 {
			t.Fatalf("unexpected top row: %+v", report.Products[0])
		}
		if report.Products[1].QuantitySold != 4 {
			t.Fatalf("unexpected second row: %+v", report.Products[1])
		}
	})

	t.Run("cache hit", func(t *testing.T) {
		svc, m := setupReportService(t)

		m.rankingCache.EXPECT().
			Get(gomock.Any(), "mas-vendidos:7:5").
			Return(&ProductRankingReport{Period: "Últimos 7 días"}, nil)

		report, err := svc.GetTopProducts(context.Background(), 7, 5)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if report.Period != "Últimos 7 días" {
			t.Fatalf("expected cached report, got %+v", report)
		}
	})
}

func TestReportService_GetLeastSoldProducts(t *testing.T) {
	svc, m := setupReportService(t)

	now := time.Now().UTC()
	colaID := domain.ID("aabbccddee112233aabbccdd")
	chipsID := domain.ID("112233445566778899aabbcc")

	m.rankingCache.EXPECT().
		Get(gomock.Any(), "menos-vendidos:30:10:2").
		Return(nil, nil)
	m.productRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any()).
		Return([]*domain.Product{
			{ID: colaID, Name: "Coca Cola 600ml", Stock: 10, ForSale: true},
			{ID: chipsID, Name: "Chips Jalapeño", Stock: 7, ForSale: true},
		}, nil)
	m.saleRepo.EXPECT().
		GetByDateRange(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]*domain.Sale{
			reportSale(now.AddDate(0, 0, -1), colaID, "Coca Cola 600ml", 5, 1000),
			reportSale(now.AddDate(0, 0, -2), chipsID, "Chips Jalapeño", 1, 800),
		}, nil)
	m.rankingCache.EXPECT().
		Set(gomock.Any(), "menos-vendidos:30:10:2", gomock.Any(), gomock.Any()).
		Return(nil)

	report, err := svc.GetLeastSoldProducts(context.Background(), 30, 10, 2)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(report.Products) != 1 {
		t.Fatalf("expected only slow movers, got %d rows", len(report.Products))
	}
	if report.Products[0].Name != "Chips Jalapeño" || report.Products[0].CurrentStock != 7 {
		t.Fatalf("unexpected row: %+v", report.Products[0])
	}
}

func TestReportService_GetLowStock(t *testing.T) {
	svc, m := setupReportService(t)

	// Live report, the cache is never consulted.
	m.productRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any()).
		Return([]*domain.Product{
			{ID: "a1", Name: "Coca Cola 600ml", Stock: 2, SalePrice: domain.NewAmountFromValue(1000), ForSale: true},
			{ID: "a2", Name: "Chips Jalapeño", Stock: 0, SalePrice: domain.NewAmountFromValue(800), ForSale: true},
			{ID: "a3", Name: "Agua 500ml", Stock: 40, SalePrice: domain.NewAmountFromValue(500), ForSale: true},
		}, nil)

	report, err := svc.GetLowStock(context.Background(), 5, 20)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(report.LowStock) != 1 || report.LowStock[0].Name != "Coca Cola 600ml" {
		t.Fatalf("unexpected low stock rows: %+v", report.LowStock)
	}
	if len(report.OutOfStock) != 1 || report.OutOfStock[0].Name != "Chips Jalapeño" {
		t.Fatalf("unexpected out of stock rows: %+v", report.OutOfStock)
	}
	if report.Threshold != 5 {
		t.Fatalf("expected threshold 5, got %d", report.Threshold)
	}
}

func TestReportService_GetSalesByDay(t *testing.T) {
	svc, m := setupReportService(t)

	day1 := time.Date(2026, 8, 18, 10, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 8, 19, 15, 0, 0, 0, time.UTC)
	colaID := domain.ID("aabbccddee112233aabbccdd")

	m.seriesCache.EXPECT().
		Get(gomock.Any(), "ventas-por-dia:7").
		Return(nil, nil)
	m.saleRepo.EXPECT().
		GetByDateRange(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]*domain.Sale{
			reportSale(day1, colaID, "Coca Cola 600ml", 1, 1000),
			reportSale(day1, colaID, "Coca Cola 600ml", 2, 1000),
			reportSale(day2, colaID, "Coca Cola 600ml", 1, 1000),
		}, nil)
	m.seriesCache.EXPECT().
		Set(gomock.Any(), "ventas-por-dia:7", gomock.Any(), gomock.Any()).
		Return(nil)

	report, err := svc.GetSalesByDay(context.Background(), 7)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(report.Points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(report.Points))
	}
	if report.Points[0].Date != "2026-08-18" || report.Points[0].Total != 3000 || report.Points[0].Count != 2 {
		t.Fatalf("unexpected first point: %+v", report.Points[0])
	}
	if report.Points[1].Date != "2026-08-19" || report.Points[1].Count != 1 {
		t.Fatalf("unexpected second point: %+v", report.Points[1])
	}
}

func TestReportService_GetPreorderStats(t *testing.T) {
	svc, m := setupReportService(t)

	m.preorderRepo.EXPECT().CountByStatus(gomock.Any(), domain.PreorderStatusPending).Return(int64(3), nil)
	m.preorderRepo.EXPECT().CountByStatus(gomock.Any(), domain.PreorderStatusConfirmed).Return(int64(2), nil)
	m.preorderRepo.EXPECT().CountByStatus(gomock.Any(), domain.PreorderStatusCompleted).Return(int64(5), nil)
	m.preorderRepo.EXPECT().CountByStatus(gomock.Any(), domain.PreorderStatusCancelled).Return(int64(1), nil)

	report, err := svc.GetPreorderStats(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if report.Total != 11 || report.Pending != 3 || report.Completed != 5 {
		t.Fatalf("unexpected stats: %+v", report)
	}
}
