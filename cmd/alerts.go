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

type alertsCmd struct {
	date string
}

func (*alertsCmd) Name() string     { return "alerts" }
func (*alertsCmd) Synopsis() string { return "show dividend events happening tomorrow for held stocks" }
func (*alertsCmd) Usage() string {
	return `pdv alerts [-d <date>]

  Lists stocks that go ex-dividend or pay out on the day after the given
  date (today by default), with the held quantity and the expected cash.
`
}

func (p *alertsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.date, "d", "", "Reference date; alerts cover the following day.")
}

func (p *alertsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	asOf := dividend.Today()
	if p.date != "" {
		var err error
		if asOf, err = dividend.ParseDate(p.date); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	events, err := DecodeDividends()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	alerts := dividend.UpcomingAlerts(ledger.Records(), events, asOf)
	printMarkdown(renderer.AlertsMarkdown(alerts, asOf.Add(1)))

	return subcommands.ExitSuccess
}
