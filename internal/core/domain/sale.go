package domain

import "time"

// SaleLine is a snapshot of a product at the moment of sale. Name and price
// are captured here and never re-derived from the inventory later.
type SaleLine struct {
	ProductID   ID
	ProductName string
	Quantity    int
	UnitPrice   Amount
	Subtotal    Amount
}

// Sale is an immutable record of a completed checkout. Once persisted it is
// never updated or deleted; corrections are modeled as new compensating sales.
type Sale struct {
	ID          ID
	Lines       []SaleLine
	Total       Amount
	AmountPaid  Amount
	ChangeGiven Amount
	Date        time.Time
	CashierID   ID
	CashierName string
	CreatedAt   time.Time
}

func NewSale(lines []SaleLine, total, amountPaid, changeGiven Amount, date time.Time, cashierID ID, cashierName string) *Sale {
	if date.IsZero() {
		date = time.Now()
	}
	return &Sale{
		Lines:       lines,
		Total:       total,
		AmountPaid:  amountPaid,
		ChangeGiven: changeGiven,
		Date:        date,
		CashierID:   cashierID,
		CashierName: cashierName,
		CreatedAt:   time.Now(),
	}
}

func SumLineSubtotals(lines []SaleLine) Amount {
	sum := Amount(0)
	for _, line := range lines {
		sum = sum.Add(line.Subtotal)
	}
	return sum
}

type SaleCompletedEvent struct {
	SaleID    ID        `json:"sale_id"`
	Total     int64     `json:"total_cents"`
	LineCount int       `json:"line_count"`
	Date      time.Time `json:"date"`
}

func (e *SaleCompletedEvent) GetName() string {
	return "sale.completed"
}

func (e *SaleCompletedEvent) GetEntityName() string {
	return "sale"
}

func NewSaleCompletedEvent(sale *Sale) *SaleCompletedEvent {
	return &SaleCompletedEvent{
		SaleID:    sale.ID,
		Total:     int64(sale.Total),
		LineCount: len(sale.Lines),
		Date:      sale.Date,
	}
}

// StockDrift names a sale line whose stock decrement lost the race after the
// sale record was already committed. The sale stands; the drift is reported
// for manual reconciliation.
type StockDrift struct {
	ProductID   ID     `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
}

type StockDriftEvent struct {
	SaleID ID           `json:"sale_id"`
	Drifts []StockDrift `json:"drifts"`
}

func (e *StockDriftEvent) GetName() string {
	return "sale.stock_drift"
}

func (e *StockDriftEvent) GetEntityName() string {
	return "sale"
}

func NewStockDriftEvent(saleID ID, drifts []StockDrift) *StockDriftEvent {
	return &StockDriftEvent{SaleID: saleID, Drifts: drifts}
}
