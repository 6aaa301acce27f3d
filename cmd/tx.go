package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/dividend"
	"github.com/etnz/dividend/renderer"
	"github.com/google/subcommands"
)

type txCmd struct {
	stock  string
	head   int
	tail   int
	delete string
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list all transactions in the ledger" }
func (*txCmd) Usage() string {
	return `pdv tx [-s <stock>] [-head <n>] [-tail <n>] [-delete <id>]

  Lists transactions from the ledger, with options for filtering and limiting
  the output. With -delete, removes the transaction with the given id instead.
`
}

func (p *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.stock, "s", "", "Show only transactions for this stock.")
	f.IntVar(&p.head, "head", 0, "Show only the first N transactions.")
	f.IntVar(&p.tail, "tail", 0, "Show only the last N transactions.")
	f.StringVar(&p.delete, "delete", "", "Delete the transaction with this id.")
}

func (p *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.head > 0 && p.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if p.delete != "" {
		if !ledger.Delete(p.delete) {
			fmt.Fprintf(os.Stderr, "Error: no transaction with id %q\n", p.delete)
			return subcommands.ExitFailure
		}
		if err := dividend.SaveLedger(*ledgerFile, ledger); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Deleted transaction %s\n", p.delete)
		return subcommands.ExitSuccess
	}

	var filters []func(dividend.TransactionRecord) bool
	if p.stock != "" {
		filters = append(filters, dividend.ByStock(p.stock))
	}
	var records []dividend.TransactionRecord
	for _, rec := range ledger.Transactions(filters...) {
		records = append(records, rec)
	}

	if p.head > 0 && len(records) > p.head {
		records = records[:p.head]
	}
	if p.tail > 0 && len(records) > p.tail {
		records = records[len(records)-p.tail:]
	}

	printMarkdown(renderer.TransactionsMarkdown(records))

	return subcommands.ExitSuccess
}
