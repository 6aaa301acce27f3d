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

type holdingCmd struct{}

func (*holdingCmd) Name() string     { return "holding" }
func (*holdingCmd) Synopsis() string { return "display current positions and their cost basis" }
func (*holdingCmd) Usage() string {
	return `pdv holding

  Folds the whole transaction history into current positions using
  weighted-average cost accounting.
`
}

func (p *holdingCmd) SetFlags(f *flag.FlagSet) {}

func (p *holdingCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	summary := dividend.SummarizeInventory(ledger.Records(), nil)
	printMarkdown(renderer.InventoryMarkdown(summary))

	return subcommands.ExitSuccess
}
