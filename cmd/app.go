// Package cmd implements the CLI application to track dividends and goals.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/etnz/dividend"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&buyCmd{}, "transactions")
	c.Register(&sellCmd{}, "transactions")
	c.Register(&txCmd{}, "transactions")
	c.Register(&fmtCmd{}, "transactions")
	c.Register(&importCmd{}, "transactions")
	c.Register(&exportCmd{}, "transactions")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&holdingCmd{}, "reports")
	c.Register(&goalCmd{}, "reports")
	c.Register(&alertsCmd{}, "reports")

	c.Register(&fetchCmd{}, "dividends")

	c.Register(&topicCmd{}, "help")
	c.Register(&assistCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", "transactions.jsonl", "Path to the ledger file containing transactions (JSONL format)")
var dividendsFile = flag.String("dividends-file", "dividends.jsonl", "Path to the local dividend announcements file (JSONL format)")
var goalsFile = flag.String("goals-file", "goals.json", "Path to the goal settings file")

// DecodeLedger loads the app default ledger file.
func DecodeLedger() (*dividend.Ledger, error) {
	return dividend.LoadLedger(*ledgerFile)
}

// DecodeDividends loads the locally stored dividend announcements.
func DecodeDividends() ([]dividend.DividendRecord, error) {
	return dividend.LoadDividends(*dividendsFile)
}

// appendTransaction validates a record against the current ledger and appends
// it to the app default ledger file.
func appendTransaction(rec dividend.TransactionRecord) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	validated, err := ledger.Validate(rec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid transaction: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err := dividend.AppendTransaction(*ledgerFile, validated); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Successfully appended transaction to %s\n", *ledgerFile)
	return subcommands.ExitSuccess
}
