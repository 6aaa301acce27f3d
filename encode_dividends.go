package dividend

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Fetched dividend announcements are kept locally in the same line-oriented
// format as the ledger, one JSON object per line, so reports work offline.

// DecodeDividends reads dividend records from a JSONL stream.
func DecodeDividends(r io.Reader) ([]DividendRecord, error) {
	var records []DividendRecord
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}
		var rec DividendRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, fmt.Errorf("invalid dividend record on line %d: %w", line, err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// EncodeDividends writes dividend records as JSONL.
func EncodeDividends(w io.Writer, records []DividendRecord) error {
	enc := json.NewEncoder(w)
	for _, rec := range records {
		if err := enc.Encode(rec); err != nil {
			return err
		}
	}
	return nil
}

// LoadDividends reads the local dividend store. A missing file means no
// announcements were fetched yet.
func LoadDividends(filename string) ([]DividendRecord, error) {
	f, err := os.Open(filename)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open dividends file %q: %w", filename, err)
	}
	defer f.Close()
	records, err := DecodeDividends(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode dividends file %q: %w", filename, err)
	}
	return records, nil
}

// SaveDividends writes the local dividend store.
func SaveDividends(filename string, records []DividendRecord) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("could not open dividends file %q for writing: %w", filename, err)
	}
	defer f.Close()
	return EncodeDividends(f, records)
}
