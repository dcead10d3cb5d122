package service

import (
	"context"
	"time"

	"github.com/gameroom/backoffice/internal/core/domain"
	"github.com/gameroom/backoffice/internal/core/port"
)

// SaleService is the read side of the sales ledger. Writes only happen
// through CheckoutService; sales are never edited.
type SaleService struct {
	saleRepository port.SalePort
}

func NewSaleService(saleRepository port.SalePort) *SaleService {
	return &SaleService{saleRepository: saleRepository}
}

func (s *SaleService) GetByID(ctx context.Context, id domain.ID) (*domain.Sale, error) {
	return s.saleRepository.GetByID(ctx, id)
}

func (s *SaleService) GetPage(ctx context.Context, limit, offset int64) ([]*domain.Sale, int64, error) {
	return s.saleRepository.GetPage(ctx, limit, offset)
}

type SalesPeriodStats struct {
	Total domain.Amount `json:"total"`
	Count int           `json:"cantidad"`
}

type SalesStats struct {
	Today SalesPeriodStats `json:"hoy"`
	Month SalesPeriodStats `json:"mes"`
}

func (s *SaleService) GetStats(ctx context.Context, now time.Time) (*SalesStats, error) {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	monthSales, err := s.saleRepository.GetByDateRange(ctx, monthStart, now)
	if err != nil {
		return nil, err
	}

	var stats SalesStats
	for _, sale := range monthSales {
		stats.Month.Total = stats.Month.Total.Add(sale.Total)
		stats.Month.Count++
		if !sale.Date.Before(dayStart) {
			stats.Today.Total = stats.Today.Total.Add(sale.Total)
			stats.Today.Count++
		}
	}
	return &stats, nil
}
