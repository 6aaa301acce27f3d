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

type summaryCmd struct {
	date string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the dividend summary per currency" }
func (*summaryCmd) Usage() string {
	return `pdv summary [-d <date>]

  Attributes every stored dividend announcement to the position held at its
  ex-date and displays accumulated, annual and monthly figures per currency.
`
}

func (p *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.date, "d", "", "The as-of date for the summary (defaults to today).")
}

func (p *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	input, status := summaryInput(p.date)
	if status != subcommands.ExitSuccess {
		return status
	}

	summary := dividend.CalculateSummary(input)
	printMarkdown(renderer.SummaryMarkdown(summary))

	return subcommands.ExitSuccess
}

// summaryInput assembles the engine input from the app default files.
func summaryInput(date string) (dividend.SummaryInput, subcommands.ExitStatus) {
	var input dividend.SummaryInput

	if date != "" {
		asOf, err := dividend.ParseDate(date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return input, subcommands.ExitUsageError
		}
		input.AsOf = asOf
	}

	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return input, subcommands.ExitFailure
	}
	input.TransactionHistory = ledger.Records()

	events, err := DecodeDividends()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return input, subcommands.ExitFailure
	}
	if len(events) == 0 {
		fmt.Fprintf(os.Stderr, "Warning: no dividend announcements stored yet, run 'pdv fetch' first.\n")
	}
	input.DividendEvents = events

	return input, subcommands.ExitSuccess
}
