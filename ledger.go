package dividend

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Ledger is the append-only transaction history behind the engine. The
// engine itself only ever sees the record slice; the Ledger exists so the
// CLI has one place that keeps records identified, validated and in
// chronological order.
type Ledger struct {
	name    string
	records []TransactionRecord
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{name: "transactions"}
}

// Name returns the ledger name, its file name without extension.
func (l *Ledger) Name() string { return l.name }

// Validate checks a record for correctness before it enters the ledger.
// Unlike the engine, which silently skips malformed rows, data entry is
// strict: a bad record here is a user mistake worth reporting.
func (l *Ledger) Validate(rec TransactionRecord) (TransactionRecord, error) {
	rec.StockID = strings.TrimSpace(rec.StockID)
	if rec.StockID == "" {
		return rec, errors.New("stock id is missing")
	}
	if math.IsNaN(rec.Quantity) || math.IsInf(rec.Quantity, 0) || rec.Quantity <= 0 {
		return rec, fmt.Errorf("invalid quantity %v", rec.Quantity)
	}
	if rec.Type != TradeSell {
		rec.Type = TradeBuy
	}
	if _, err := ParseDate(rec.Date); err != nil {
		return rec, fmt.Errorf("invalid transaction date: %w", err)
	}
	if rec.Type == TradeSell {
		// sells carry no price, the cost basis rule prices them
		rec.Price = nil
	} else if rec.Price != nil && (math.IsNaN(*rec.Price) || math.IsInf(*rec.Price, 0) || *rec.Price < 0) {
		return rec, fmt.Errorf("invalid price %v", *rec.Price)
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	return rec, nil
}

// Append validates records and adds them to the ledger, maintaining
// chronological order.
func (l *Ledger) Append(records ...TransactionRecord) error {
	for _, rec := range records {
		validated, err := l.Validate(rec)
		if err != nil {
			return fmt.Errorf("invalid %s transaction for %q: %w", rec.Type, rec.StockID, err)
		}
		l.records = append(l.records, validated)
	}
	l.stableSort()
	return nil
}

// Delete removes the record with the given id. It reports whether a record
// was removed.
func (l *Ledger) Delete(id string) bool {
	for i, rec := range l.records {
		if rec.ID == id {
			l.records = append(l.records[:i], l.records[i+1:]...)
			return true
		}
	}
	return false
}

// Records returns the transaction history in chronological order. The
// returned slice is the ledger's own; callers treat it read-only.
func (l *Ledger) Records() []TransactionRecord { return l.records }

// Len returns the number of records.
func (l *Ledger) Len() int { return len(l.records) }

// Transactions iterates over the records, optionally filtered.
func (l *Ledger) Transactions(filters ...func(TransactionRecord) bool) iter.Seq2[int, TransactionRecord] {
	return func(yield func(int, TransactionRecord) bool) {
		for i, rec := range l.records {
			accept := len(filters) == 0
			for _, filter := range filters {
				if filter(rec) {
					accept = true
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(i, rec) {
				return
			}
		}
	}
}

// ByStock returns a predicate that filters records by stock id.
func ByStock(stockID string) func(TransactionRecord) bool {
	return func(rec TransactionRecord) bool { return rec.StockID == stockID }
}

// stableSort sorts the ledger by transaction date. The sort is stable, so
// same-day records keep their insertion order, the same tie-break the
// engine replays with.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.records, func(i, j int) bool {
		return l.recordDate(i).Before(l.recordDate(j))
	})
}

func (l *Ledger) recordDate(i int) Date {
	d, err := ParseDate(l.records[i].Date)
	if err != nil {
		return Date{}
	}
	return d
}
