package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/etnz/dividend"
)

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when the renderer cannot be set up (dumb terminals, pipes).
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		fmt.Println(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the ledger file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `pdv fmt

  Validates and formats the ledger file. This command reads all transactions,
  validates them, assigns ids to records that lack one, sorts them by date,
  and writes them back in a canonical JSONL format.
`
}

func (p *fmtCmd) SetFlags(f *flag.FlagSet) {}

func (p *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	canonical := dividend.NewLedger()
	if err := canonical.Append(ledger.Records()...); err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting ledger %q: %v\n", ledger.Name(), err)
		return subcommands.ExitFailure
	}

	if err := dividend.SaveLedger(*ledgerFile, canonical); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving formatted ledger %q: %v\n", ledger.Name(), err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Finished formatting ledger %q (%d transactions).\n", ledger.Name(), canonical.Len())
	return subcommands.ExitSuccess
}
