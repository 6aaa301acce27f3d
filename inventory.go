package dividend

import (
	"math"
	"strings"
)

// Position is a stock with a non-empty weighted-average position.
type Position struct {
	StockID       string
	StockName     string
	TotalQuantity Quantity
	TotalCost     Money
	AveragePrice  Money
}

// InventorySummary is the rollup of the whole transaction history into
// current positions.
type InventorySummary struct {
	Positions       []Position // first-appearance order, positive positions only
	TotalInvestment Money
	TotalValue      Money // zero unless latest prices were supplied
}

// SummarizeInventory folds the transaction history into current positions
// using weighted-average cost accounting. Records replay in their stored
// order. Positions that net out to zero are dropped. latestPrices is
// optional; when present it prices TotalValue.
func SummarizeInventory(history []TransactionRecord, latestPrices map[string]float64) InventorySummary {
	type entry struct {
		name  string
		state CostBasis
	}
	index := make(map[string]*entry)
	var order []string

	for _, rec := range history {
		stockID := strings.TrimSpace(rec.StockID)
		if stockID == "" {
			continue
		}
		e, ok := index[stockID]
		if !ok {
			e = &entry{state: CostBasis{TotalCost: M(0, DefaultCurrency)}}
			index[stockID] = e
			order = append(order, stockID)
		}
		if e.name == "" {
			e.name = strings.TrimSpace(rec.StockName)
		}
		quantity := rec.Quantity
		if math.IsNaN(quantity) || math.IsInf(quantity, 0) {
			quantity = 0
		}
		ev := tradeEvent{stockID: stockID, quantity: Q(math.Abs(quantity)), sell: rec.Type == TradeSell}
		if quantity < 0 {
			ev.sell = !ev.sell
		}
		if rec.Price != nil && !math.IsNaN(*rec.Price) && !math.IsInf(*rec.Price, 0) {
			ev.price = M(*rec.Price, DefaultCurrency)
			ev.hasPrice = true
		}
		e.state = e.state.apply(ev)
	}

	summary := InventorySummary{
		TotalInvestment: M(0, DefaultCurrency),
		TotalValue:      M(0, DefaultCurrency),
	}
	for _, stockID := range order {
		e := index[stockID]
		if !e.state.Quantity.IsPositive() {
			continue
		}
		summary.Positions = append(summary.Positions, Position{
			StockID:       stockID,
			StockName:     e.name,
			TotalQuantity: e.state.Quantity,
			TotalCost:     e.state.TotalCost,
			AveragePrice:  e.state.AverageCost(),
		})
		summary.TotalInvestment = summary.TotalInvestment.Add(e.state.TotalCost)
		if price, ok := latestPrices[stockID]; ok && !math.IsNaN(price) && !math.IsInf(price, 0) {
			summary.TotalValue = summary.TotalValue.Add(M(price, DefaultCurrency).Mul(e.state.Quantity))
		}
	}
	return summary
}

// InventoryRecords converts the rollup into the flat snapshot shape
// consumed by the summary fallback path.
func (s InventorySummary) InventoryRecords() []InventoryRecord {
	records := make([]InventoryRecord, 0, len(s.Positions))
	for _, p := range s.Positions {
		records = append(records, InventoryRecord{
			StockID:       p.StockID,
			StockName:     p.StockName,
			TotalQuantity: p.TotalQuantity.InexactFloat64(),
		})
	}
	return records
}

// MonthlyContribution sums the cash spent on buys during the reference
// date's calendar month.
func MonthlyContribution(history []TransactionRecord, reference Date) Money {
	total := M(0, DefaultCurrency)
	for i, rec := range history {
		ev, ok := normalizeTrade(rec, i)
		if !ok || ev.sell || !ev.hasPrice {
			continue
		}
		if ev.on.Year() != reference.Year() || ev.on.Month() != reference.Month() {
			continue
		}
		total = total.Add(ev.price.Mul(ev.quantity))
	}
	return total
}
