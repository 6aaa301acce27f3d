package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/dividend"
	"github.com/google/subcommands"
)

type fetchCmd struct {
	host      string
	countries string
	year      int
}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "download dividend announcements from the feed" }
func (*fetchCmd) Usage() string {
	return `pdv fetch -host <url> [-c <countries>] [-y <year>]

  Downloads dividend announcements and stores them in the local dividends
  file. Without -y, fetches the current and previous year. Responses are
  cached on disk for a day.
`
}

func (p *fetchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.host, "host", os.Getenv("PDV_FEED_HOST"), "Base URL of the dividend feed (defaults to $PDV_FEED_HOST).")
	f.StringVar(&p.countries, "c", "", "Comma-separated market codes (defaults to tw,us).")
	f.IntVar(&p.year, "y", 0, "Fetch a single year instead of the default window.")
}

func (p *fetchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.host == "" {
		fmt.Fprintln(os.Stderr, "Error: no feed host, set -host or $PDV_FEED_HOST.")
		return subcommands.ExitUsageError
	}
	var countries []string
	for _, c := range strings.Split(p.countries, ",") {
		if c = strings.TrimSpace(c); c != "" {
			countries = append(countries, c)
		}
	}

	client := dividend.NewFeedClient(p.host)
	var records []dividend.DividendRecord
	var err error
	if p.year > 0 {
		records, err = client.FetchYear(p.year, countries...)
		records = dividend.MergeDividends(records)
	} else {
		records, err = client.Fetch(countries...)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	// keep previously stored announcements that the fetch window missed
	stored, err := DecodeDividends()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	merged := dividend.MergeDividends(append(records, stored...))

	if err := dividend.SaveDividends(*dividendsFile, merged); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Stored %d announcements (%d new) in %s\n", len(merged), len(merged)-len(stored), *dividendsFile)
	return subcommands.ExitSuccess
}
