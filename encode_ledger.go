package dividend

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
)

// The ledger persists as JSONL, one transaction record per line, append
// friendly and git friendly. Goal settings persist as a single JSON
// document.

// DecodeLedger decodes a stream of JSONL transaction records into a sorted
// Ledger.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue // Skip empty lines
		}
		var rec TransactionRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, fmt.Errorf("could not decode transaction line %q: %w", string(line), err)
		}
		ledger.records = append(ledger.records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read ledger: %w", err)
	}
	ledger.stableSort()
	return ledger, nil
}

// EncodeTransaction writes a single record as one JSONL line.
func EncodeTransaction(w io.Writer, rec TransactionRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	_, err = w.Write([]byte("\n"))
	return err
}

// EncodeLedger writes the whole ledger in canonical JSONL form.
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	for _, rec := range ledger.records {
		if err := EncodeTransaction(w, rec); err != nil {
			return err
		}
	}
	return nil
}

// DecodeGoalSettings reads the goal settings document.
func DecodeGoalSettings(r io.Reader) (GoalSettings, error) {
	var settings GoalSettings
	if err := json.NewDecoder(r).Decode(&settings); err != nil {
		return GoalSettings{}, fmt.Errorf("could not decode goal settings: %w", err)
	}
	return settings, nil
}

// EncodeGoalSettings writes the goal settings document, indented for hand
// editing.
func EncodeGoalSettings(w io.Writer, settings GoalSettings) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(settings)
}
