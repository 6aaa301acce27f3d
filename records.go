package dividend

import (
	"math"
	"strings"
)

// This file declares the loose, wire-shaped records the engine consumes and
// the normalization step turning them into typed events. Malformed records
// are never an error: normalization returns ok=false and the computation
// simply skips them, so "why was this record dropped" is a testable branch
// instead of an implicit falsy check.

// TradeBuy and TradeSell are the two recognized transaction kinds. Any other
// value on the wire is treated as a buy.
const (
	TradeBuy  = "buy"
	TradeSell = "sell"
)

// TransactionRecord is a single row of persisted transaction history.
type TransactionRecord struct {
	ID            string   `json:"id,omitempty" csv:"id"`
	StockID       string   `json:"stock_id" csv:"stock_id"`
	StockName     string   `json:"stock_name,omitempty" csv:"stock_name"`
	Date          string   `json:"date" csv:"date"`
	PurchasedDate string   `json:"purchased_date,omitempty" csv:"-"`
	Quantity      float64  `json:"quantity" csv:"quantity"`
	Price         *float64 `json:"price" csv:"price"`
	Type          string   `json:"type" csv:"type"`
}

// DividendRecord is a single dividend announcement from the dividend feed.
type DividendRecord struct {
	StockID          string  `json:"stock_id"`
	StockName        string  `json:"stock_name,omitempty"`
	Dividend         float64 `json:"dividend"`
	DividendDate     string  `json:"dividend_date,omitempty"`
	PaymentDate      string  `json:"payment_date,omitempty"`
	Currency         string  `json:"currency,omitempty"`
	DividendCurrency string  `json:"dividend_currency,omitempty"`
	PaymentCurrency  string  `json:"payment_currency,omitempty"`
}

// InventoryRecord is a flat position snapshot, the fallback source of held
// quantities when no transaction history exists at all.
type InventoryRecord struct {
	StockID       string  `json:"stock_id"`
	StockName     string  `json:"stock_name,omitempty"`
	TotalQuantity float64 `json:"total_quantity"`
}

// tradeEvent is a validated transaction record.
type tradeEvent struct {
	stockID  string
	on       Date
	quantity Quantity // always positive
	sell     bool
	price    Money // meaningful only when hasPrice
	hasPrice bool
	index    int // original position, tie-break for same-day events
}

// normalizeTrade validates a raw transaction record. A record is usable iff
// it has a stock id, a finite non-zero quantity and a parseable date (the
// "date" field, with "purchased_date" as legacy fallback).
func normalizeTrade(rec TransactionRecord, index int) (tradeEvent, bool) {
	stockID := strings.TrimSpace(rec.StockID)
	if stockID == "" {
		return tradeEvent{}, false
	}
	if math.IsNaN(rec.Quantity) || math.IsInf(rec.Quantity, 0) || rec.Quantity == 0 {
		return tradeEvent{}, false
	}
	raw := rec.Date
	if raw == "" {
		raw = rec.PurchasedDate
	}
	on, err := ParseDate(raw)
	if err != nil {
		if on, err = ParseDate(rec.PurchasedDate); err != nil {
			return tradeEvent{}, false
		}
	}
	ev := tradeEvent{
		stockID:  stockID,
		on:       on,
		quantity: Q(math.Abs(rec.Quantity)),
		sell:     rec.Type == TradeSell,
		index:    index,
	}
	if rec.Quantity < 0 {
		// a negative quantity flips the direction of the record
		ev.sell = !ev.sell
	}
	if rec.Price != nil && !math.IsNaN(*rec.Price) && !math.IsInf(*rec.Price, 0) {
		ev.price = M(*rec.Price, DefaultCurrency)
		ev.hasPrice = true
	}
	return ev, true
}

// delta returns the signed quantity change of the event.
func (e tradeEvent) delta() Quantity {
	if e.sell {
		return Q(0).Sub(e.quantity)
	}
	return e.quantity
}

// dividendEvent is a validated dividend record.
type dividendEvent struct {
	stockID  string
	perShare Money // per-share amount in the normalized currency
	on       Date  // ex-date, falling back to payment date
}

// normalizeDividend validates a raw dividend record. The reference date for
// attribution is the ex-date ("dividend_date") with the payment date as
// fallback; an event with neither, or a non-positive per-share amount, is
// unusable.
func normalizeDividend(rec DividendRecord) (dividendEvent, bool) {
	stockID := strings.TrimSpace(rec.StockID)
	if stockID == "" {
		return dividendEvent{}, false
	}
	if math.IsNaN(rec.Dividend) || math.IsInf(rec.Dividend, 0) || rec.Dividend <= 0 {
		return dividendEvent{}, false
	}
	on, err := ParseDate(rec.DividendDate)
	if err != nil {
		if on, err = ParseDate(rec.PaymentDate); err != nil {
			return dividendEvent{}, false
		}
	}
	return dividendEvent{
		stockID:  stockID,
		perShare: M(rec.Dividend, NormalizeCurrency(rec.currencyHint())),
		on:       on,
	}, true
}

// currencyHint returns the first currency field present on the record.
func (rec DividendRecord) currencyHint() string {
	for _, raw := range []string{rec.Currency, rec.DividendCurrency, rec.PaymentCurrency} {
		if strings.TrimSpace(raw) != "" {
			return raw
		}
	}
	return ""
}
