package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/gameroom/backoffice/internal/core/domain"
	"github.com/gameroom/backoffice/internal/core/logger"
	"github.com/gameroom/backoffice/internal/core/port"
)

type PeriodTotals struct {
	Total    float64 `json:"total"`
	Count    int     `json:"cantidad"`
	Earnings float64 `json:"ganancias,omitempty"`
}

type InventoryTotals struct {
	TotalValue   float64 `json:"valorTotal"`
	ProductCount int     `json:"totalProductos"`
	UnitCount    int     `json:"totalUnidades"`
	LowStock     int     `json:"stockBajo,omitempty"`
	OutOfStock   int     `json:"agotados,omitempty"`
}

type SummaryReport struct {
	SalesToday       PeriodTotals    `json:"ventasHoy"`
	SalesWeek        PeriodTotals    `json:"ventasSemana"`
	SalesMonth       PeriodTotals    `json:"ventasMes"`
	InventoryTotal   InventoryTotals `json:"inventarioTotal"`
	InventoryForSale InventoryTotals `json:"inventarioVenta"`
	PendingPreorders int64           `json:"pedidosPendientes"`
}

type RankingEntry struct {
	Name         string  `json:"nombre"`
	QuantitySold int     `json:"cantidadVendida"`
	TotalSales   float64 `json:"totalVentas,omitempty"`
	CurrentStock int     `json:"stockActual,omitempty"`
}

type ProductRankingReport struct {
	Period   string         `json:"periodo"`
	Products []RankingEntry `json:"productos"`
}

type LowStockEntry struct {
	ID        domain.ID `json:"id"`
	Name      string    `json:"nombre"`
	Stock     int       `json:"cantidad"`
	SalePrice float64   `json:"precioVenta"`
}

type LowStockReport struct {
	LowStock   []LowStockEntry `json:"stockBajo"`
	OutOfStock []LowStockEntry `json:"agotados"`
	Threshold  int             `json:"umbral"`
}

type DailySalesPoint struct {
	Date  string  `json:"fecha"`
	Total float64 `json:"total"`
	Count int     `json:"cantidad"`
}

type SalesSeriesReport struct {
	Period string            `json:"periodo"`
	Points []DailySalesPoint `json:"datos"`
}

type PreorderStatsReport struct {
	Pending   int64 `json:"pendientes"`
	Confirmed int64 `json:"confirmados"`
	Completed int64 `json:"completados"`
	Cancelled int64 `json:"cancelados"`
	Total     int64 `json:"total"`
}

const lowStockThreshold = 5

// ReportService aggregates sales, inventory and preorder data. Heavy reports
// are cached with a fixed TTL; the cache is owned here and shares nothing
// with the checkout path. Stock-level reports are always computed live.
type ReportService struct {
	saleRepository     port.SalePort
	productRepository  port.ProductPort
	preorderRepository port.PreorderPort
	summaryCache       port.CachePort[SummaryReport]
	rankingCache       port.CachePort[ProductRankingReport]
	seriesCache        port.CachePort[SalesSeriesReport]
	cacheTTL           time.Duration
	location           *time.Location
}

func NewReportService(
	saleRepository port.SalePort,
	productRepository port.ProductPort,
	preorderRepository port.PreorderPort,
	summaryCache port.CachePort[SummaryReport],
	rankingCache port.CachePort[ProductRankingReport],
	seriesCache port.CachePort[SalesSeriesReport],
	cacheTTL time.Duration,
	location *time.Location,
) *ReportService {
	if location == nil {
		location = time.UTC
	}
	return &ReportService{
		saleRepository:     saleRepository,
		productRepository:  productRepository,
		preorderRepository: preorderRepository,
		summaryCache:       summaryCache,
		rankingCache:       rankingCache,
		seriesCache:        seriesCache,
		cacheTTL:           cacheTTL,
		location:           location,
	}
}

// cachedReport serves a report from cache when fresh, computing and storing
// it otherwise. Cache faults never fail the report.
func cachedReport[T any](ctx context.Context, cache port.CachePort[T], key string, ttl time.Duration, compute func(context.Context) (*T, error)) (*T, error) {
	cached, err := cache.Get(ctx, key)
	if err != nil {
		logger.Error(ctx, "report cache: get failed", err, map[string]any{"key": key})
	}
	if cached != nil {
		return cached, nil
	}

	report, err := compute(ctx)
	if err != nil {
		return nil, err
	}

	if err := cache.Set(ctx, key, report, ttl); err != nil {
		logger.Error(ctx, "report cache: set failed", err, map[string]any{"key": key})
	}
	return report, nil
}

func (s *ReportService) now() time.Time {
	return time.Now().In(s.location)
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// weekStart is the most recent Sunday at midnight.
func weekStart(t time.Time) time.Time {
	return dayStart(t).AddDate(0, 0, -int(t.Weekday()))
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func (s *ReportService) GetSummary(ctx context.Context) (*SummaryReport, error) {
	return cachedReport(ctx, s.summaryCache, "resumen-general", s.cacheTTL, s.computeSummary)
}

func (s *ReportService) computeSummary(ctx context.Context) (*SummaryReport, error) {
	now := s.now()

	salesWeek, err := s.saleRepository.GetByDateRange(ctx, weekStart(now), now)
	if err != nil {
		return nil, err
	}
	salesMonth, err := s.saleRepository.GetByDateRange(ctx, monthStart(now), now)
	if err != nil {
		return nil, err
	}
	products, err := s.productRepository.GetAll(ctx, port.ProductFilter{})
	if err != nil {
		return nil, err
	}
	pendingPreorders, err := s.preorderRepository.CountByStatus(ctx, domain.PreorderStatusPending)
	if err != nil {
		return nil, err
	}

	purchasePriceByID := make(map[domain.ID]domain.Amount, len(products))
	for _, p := range products {
		purchasePriceByID[p.ID] = p.PurchasePrice
	}

	earnings := func(sales []*domain.Sale) domain.Amount {
		var total domain.Amount
		for _, sale := range sales {
			for _, line := range sale.Lines {
				purchasePrice, ok := purchasePriceByID[line.ProductID]
				if !ok {
					continue
				}
				total = total.Add(line.UnitPrice.Sub(purchasePrice).Multiply(line.Quantity))
			}
		}
		return total
	}

	sum := func(sales []*domain.Sale) (domain.Amount, int) {
		var total domain.Amount
		for _, sale := range sales {
			total = total.Add(sale.Total)
		}
		return total, len(sales)
	}

	today := dayStart(now)
	var salesToday []*domain.Sale
	for _, sale := range salesWeek {
		if !sale.Date.Before(today) {
			salesToday = append(salesToday, sale)
		}
	}

	report := &SummaryReport{PendingPreorders: pendingPreorders}

	totalToday, countToday := sum(salesToday)
	report.SalesToday = PeriodTotals{Total: totalToday.ToFloat(), Count: countToday, Earnings: earnings(salesToday).ToFloat()}

	totalWeek, countWeek := sum(salesWeek)
	report.SalesWeek = PeriodTotals{Total: totalWeek.ToFloat(), Count: countWeek}

	totalMonth, countMonth := sum(salesMonth)
	report.SalesMonth = PeriodTotals{Total: totalMonth.ToFloat(), Count: countMonth, Earnings: earnings(salesMonth).ToFloat()}

	for _, p := range products {
		report.InventoryTotal.TotalValue += p.InventoryValue().ToFloat()
		report.InventoryTotal.ProductCount++
		report.InventoryTotal.UnitCount += p.Stock

		if !p.ForSale {
			continue
		}
		report.InventoryForSale.TotalValue += p.InventoryValue().ToFloat()
		report.InventoryForSale.ProductCount++
		report.InventoryForSale.UnitCount += p.Stock
		if p.Stock == 0 {
			report.InventoryForSale.OutOfStock++
		} else if p.Stock < lowStockThreshold {
			report.InventoryForSale.LowStock++
		}
	}

	return report, nil
}

func (s *ReportService) forSaleProducts(ctx context.Context) ([]*domain.Product, error) {
	forSale := true
	return s.productRepository.GetAll(ctx, port.ProductFilter{ForSale: &forSale})
}

// soldQuantities tallies units sold per product id over the window.
func (s *ReportService) soldQuantities(ctx context.Context, days int) (map[domain.ID]int, []*domain.Sale, error) {
	now := s.now()
	sales, err := s.saleRepository.GetByDateRange(ctx, now.AddDate(0, 0, -days), now)
	if err != nil {
		return nil, nil, err
	}
	quantities := make(map[domain.ID]int)
	for _, sale := range sales {
		for _, line := range sale.Lines {
			quantities[line.ProductID] += line.Quantity
		}
	}
	return quantities, sales, nil
}

func (s *ReportService) GetTopProducts(ctx context.Context, days, limit int) (*ProductRankingReport, error) {
	key := fmt.Sprintf("mas-vendidos:%d:%d", days, limit)
	return cachedReport(ctx, s.rankingCache, key, s.cacheTTL, func(ctx context.Context) (*ProductRankingReport, error) {
		return s.computeTopProducts(ctx, days, limit)
	})
}

func (s *ReportService) computeTopProducts(ctx context.Context, days, limit int) (*ProductRankingReport, error) {
	products, err := s.forSaleProducts(ctx)
	if err != nil {
		return nil, err
	}
	_, sales, err := s.soldQuantities(ctx, days)
	if err != nil {
		return nil, err
	}

	forSaleIDs := make(map[domain.ID]bool, len(products))
	for _, p := range products {
		forSaleIDs[p.ID] = true
	}

	// Grouped by normalized name so renamed duplicates collapse into one row.
	byName := make(map[string]*RankingEntry)
	for _, sale := range sales {
		for _, line := range sale.Lines {
			if !forSaleIDs[line.ProductID] {
				continue
			}
			key := strings.ToLower(strings.TrimSpace(line.ProductName))
			entry, ok := byName[key]
			if !ok {
				entry = &RankingEntry{Name: line.ProductName}
				byName[key] = entry
			}
			entry.QuantitySold += line.Quantity
			entry.TotalSales += line.Subtotal.ToFloat()
		}
	}

	ranking := make([]RankingEntry, 0, len(byName))
	for _, entry := range byName {
		ranking = append(ranking, *entry)
	}
	sort.Slice(ranking, func(i, j int) bool {
		return ranking[i].QuantitySold > ranking[j].QuantitySold
	})
	if len(ranking) > limit {
		ranking = ranking[:limit]
	}

	return &ProductRankingReport{
		Period:   fmt.Sprintf("Últimos %d días", days),
		Products: ranking,
	}, nil
}

func (s *ReportService) GetLeastSoldProducts(ctx context.Context, days, limit, maxSales int) (*ProductRankingReport, error) {
	key := fmt.Sprintf("menos-vendidos:%d:%d:%d", days, limit, maxSales)
	return cachedReport(ctx, s.rankingCache, key, s.cacheTTL, func(ctx context.Context) (*ProductRankingReport, error) {
		return s.computeLeastSold(ctx, days, limit, maxSales)
	})
}

func (s *ReportService) computeLeastSold(ctx context.Context, days, limit, maxSales int) (*ProductRankingReport, error) {
	products, err := s.forSaleProducts(ctx)
	if err != nil {
		return nil, err
	}
	quantities, _, err := s.soldQuantities(ctx, days)
	if err != nil {
		return nil, err
	}

	var entries []RankingEntry
	for _, p := range products {
		sold := quantities[p.ID]
		if sold > maxSales {
			continue
		}
		entries = append(entries, RankingEntry{
			Name:         p.Name,
			QuantitySold: sold,
			CurrentStock: p.Stock,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].QuantitySold != entries[j].QuantitySold {
			return entries[i].QuantitySold < entries[j].QuantitySold
		}
		return entries[i].CurrentStock > entries[j].CurrentStock
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}

	return &ProductRankingReport{
		Period:   fmt.Sprintf("Últimos %d días", days),
		Products: entries,
	}, nil
}

// GetLowStock is always live; a stale stock alert is worse than no cache.
func (s *ReportService) GetLowStock(ctx context.Context, threshold, limit int) (*LowStockReport, error) {
	products, err := s.forSaleProducts(ctx)
	if err != nil {
		return nil, err
	}

	report := &LowStockReport{Threshold: threshold}
	for _, p := range products {
		entry := LowStockEntry{
			ID:        p.ID,
			Name:      p.Name,
			Stock:     p.Stock,
			SalePrice: p.SalePrice.ToFloat(),
		}
		switch {
		case p.Stock == 0:
			report.OutOfStock = append(report.OutOfStock, entry)
		case p.Stock <= threshold:
			report.LowStock = append(report.LowStock, entry)
		}
	}

	sort.Slice(report.LowStock, func(i, j int) bool {
		return report.LowStock[i].Stock < report.LowStock[j].Stock
	})
	if len(report.LowStock) > limit {
		report.LowStock = report.LowStock[:limit]
	}
	if len(report.OutOfStock) > limit {
		report.OutOfStock = report.OutOfStock[:limit]
	}
	return report, nil
}

func (s *ReportService) GetSalesByDay(ctx context.Context, days int) (*SalesSeriesReport, error) {
	key := fmt.Sprintf("ventas-por-dia:%d", days)
	return cachedReport(ctx, s.seriesCache, key, s.cacheTTL, func(ctx context.Context) (*SalesSeriesReport, error) {
		return s.computeSalesByDay(ctx, days)
	})
}

func (s *ReportService) computeSalesByDay(ctx context.Context, days int) (*SalesSeriesReport, error) {
	_, sales, err := s.soldQuantities(ctx, days)
	if err != nil {
		return nil, err
	}

	byDay := make(map[string]*DailySalesPoint)
	for _, sale := range sales {
		key := sale.Date.In(s.location).Format("2006-01-02")
		point, ok := byDay[key]
		if !ok {
			point = &DailySalesPoint{Date: key}
			byDay[key] = point
		}
		point.Total += sale.Total.ToFloat()
		point.Count++
	}

	points := make([]DailySalesPoint, 0, len(byDay))
	for _, point := range byDay {
		points = append(points, *point)
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Date < points[j].Date
	})

	return &SalesSeriesReport{
		Period: fmt.Sprintf("Últimos %d días", days),
		Points: points,
	}, nil
}

func (s *ReportService) GetPreorderStats(ctx context.Context) (*PreorderStatsReport, error) {
	var report PreorderStatsReport
	counts := []struct {
		status domain.PreorderStatus
		dest   *int64
	}{
		{domain.PreorderStatusPending, &report.Pending},
		{domain.PreorderStatusConfirmed, &report.Confirmed},
		{domain.PreorderStatusCompleted, &report.Completed},
		{domain.PreorderStatusCancelled, &report.Cancelled},
	}
	for _, c := range counts {
		n, err := s.preorderRepository.CountByStatus(ctx, c.status)
		if err != nil {
			return nil, err
		}
		*c.dest = n
		report.Total += n
	}
	return &report, nil
}
