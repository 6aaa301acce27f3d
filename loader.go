package dividend

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// LoadLedger reads a ledger file. A missing file is not an error: data entry
// starts from an empty ledger.
func LoadLedger(filename string) (*Ledger, error) {
	f, err := os.Open(filename)
	if errors.Is(err, fs.ErrNotExist) {
		l := NewLedger()
		l.name = ledgerName(filename)
		return l, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open ledger file %q: %w", filename, err)
	}
	defer f.Close()

	ledger, err := DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode ledger file %q: %w", filename, err)
	}
	ledger.name = ledgerName(filename)
	return ledger, nil
}

// SaveLedger writes the ledger back in canonical form, creating parent
// directories as needed.
func SaveLedger(filename string, ledger *Ledger) error {
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("could not create directory for ledger %q: %w", filename, err)
		}
	}
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("could not open ledger file %q for writing: %w", filename, err)
	}
	defer f.Close()
	return EncodeLedger(f, ledger)
}

// AppendTransaction appends a single validated record to the ledger file
// without rewriting it.
func AppendTransaction(filename string, rec TransactionRecord) error {
	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("could not open ledger file %q: %w", filename, err)
	}
	defer f.Close()
	return EncodeTransaction(f, rec)
}

// LoadGoalSettings reads the goal settings document. A missing or malformed
// file yields the default (empty) settings: the engine prefers silence over
// failure for user-editable state.
func LoadGoalSettings(filename string) GoalSettings {
	f, err := os.Open(filename)
	if err != nil {
		return GoalSettings{}
	}
	defer f.Close()
	settings, err := DecodeGoalSettings(f)
	if err != nil {
		return GoalSettings{}
	}
	return settings
}

// SaveGoalSettings writes the goal settings document.
func SaveGoalSettings(filename string, settings GoalSettings) error {
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("could not create directory for goals %q: %w", filename, err)
		}
	}
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("could not open goals file %q for writing: %w", filename, err)
	}
	defer f.Close()
	return EncodeGoalSettings(f, settings)
}

func ledgerName(filename string) string {
	return strings.TrimSuffix(filepath.Base(filename), ".jsonl")
}
