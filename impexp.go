package dividend

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
)

// ImportCSV reads transaction rows from a CSV stream and appends them to the
// ledger. Rows go through the same strict validation as interactive entry, so
// a malformed row aborts the whole import with its line reported.
func ImportCSV(r io.Reader, ledger *Ledger) (int, error) {
	var rows []TransactionRecord
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return 0, fmt.Errorf("could not parse csv: %w", err)
	}
	for i, row := range rows {
		if err := ledger.Append(row); err != nil {
			return i, fmt.Errorf("row %d: %w", i+1, err)
		}
	}
	return len(rows), nil
}

// ExportCSV writes the ledger transactions as CSV, one row per record in
// date order.
func ExportCSV(w io.Writer, ledger *Ledger) error {
	rows := ledger.Records()
	if err := gocsv.Marshal(&rows, w); err != nil {
		return fmt.Errorf("could not write csv: %w", err)
	}
	return nil
}
