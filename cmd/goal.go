package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/dividend"
	"github.com/etnz/dividend/renderer"
	"github.com/google/subcommands"
	"github.com/google/uuid"
)

type goalCmd struct {
	date     string
	add      string
	target   float64
	currency string
	name     string
	remove   string
}

func (*goalCmd) Name() string     { return "goal" }
func (*goalCmd) Synopsis() string { return "display or edit the dividend goal dashboard" }
func (*goalCmd) Usage() string {
	return `pdv goal [-d <date>]
pdv goal -add <annual|monthly|minimum> -t <target> [-c <currency>] [-n <name>]
pdv goal -remove <id>

  Without edit flags, displays goal progress against the dividend summary.
  With -add, appends a goal to the settings file; with -remove, drops the
  goal with the given id.
`
}

func (p *goalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.date, "d", "", "The as-of date for the progress figures (defaults to today).")
	f.StringVar(&p.add, "add", "", "Add a goal of this type (annual, monthly, minimum).")
	f.Float64Var(&p.target, "t", 0, "Target amount for the new goal.")
	f.StringVar(&p.currency, "c", "", "Currency of the new goal (TWD or USD).")
	f.StringVar(&p.name, "n", "", "Optional display name for the new goal.")
	f.StringVar(&p.remove, "remove", "", "Remove the goal with this id.")
}

func (p *goalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	settings := dividend.LoadGoalSettings(*goalsFile)

	if p.add != "" {
		if p.target <= 0 {
			fmt.Fprintln(os.Stderr, "Error: a new goal needs a positive -t target.")
			return subcommands.ExitUsageError
		}
		settings.CashflowGoals = append(settings.CashflowGoals, dividend.Goal{
			ID:       uuid.NewString(),
			GoalType: p.add,
			Target:   p.target,
			Currency: p.currency,
			Name:     p.name,
		})
		if err := dividend.SaveGoalSettings(*goalsFile, settings); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Added %s goal to %s\n", p.add, *goalsFile)
		return subcommands.ExitSuccess
	}

	if p.remove != "" {
		kept := settings.CashflowGoals[:0]
		for _, g := range settings.CashflowGoals {
			if g.ID != p.remove {
				kept = append(kept, g)
			}
		}
		if len(kept) == len(settings.CashflowGoals) {
			fmt.Fprintf(os.Stderr, "Error: no goal with id %q\n", p.remove)
			return subcommands.ExitFailure
		}
		settings.CashflowGoals = kept
		if err := dividend.SaveGoalSettings(*goalsFile, settings); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Removed goal %s\n", p.remove)
		return subcommands.ExitSuccess
	}

	input, status := summaryInput(p.date)
	if status != subcommands.ExitSuccess {
		return status
	}
	summary := dividend.CalculateSummary(input)
	vm := dividend.BuildGoalViewModel(summary, settings, dividend.DefaultMessages())
	printMarkdown(renderer.GoalsMarkdown(vm))

	return subcommands.ExitSuccess
}
