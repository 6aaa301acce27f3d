package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/dividend/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion: this returns immediately unless the shell invoked us
	// to complete a command line.
	completion().Complete("pdv")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	dateFlag := map[string]complete.Predictor{"d": predict.Nothing}
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"buy":     {Flags: map[string]complete.Predictor{"d": predict.Nothing, "s": predict.Nothing, "q": predict.Nothing, "p": predict.Nothing, "n": predict.Nothing}},
			"sell":    {Flags: map[string]complete.Predictor{"d": predict.Nothing, "s": predict.Nothing, "q": predict.Nothing}},
			"tx":      {Flags: map[string]complete.Predictor{"s": predict.Nothing, "head": predict.Nothing, "tail": predict.Nothing, "delete": predict.Nothing}},
			"fmt":     {},
			"import":  {Flags: map[string]complete.Predictor{"f": predict.Files("*.csv")}},
			"export":  {Flags: map[string]complete.Predictor{"f": predict.Files("*.csv")}},
			"summary": {Flags: dateFlag},
			"holding": {},
			"goal":    {Flags: map[string]complete.Predictor{"d": predict.Nothing, "add": predict.Set{"annual", "monthly", "minimum"}, "t": predict.Nothing, "c": predict.Set{"TWD", "USD"}, "n": predict.Nothing, "remove": predict.Nothing}},
			"alerts":  {Flags: dateFlag},
			"fetch":   {Flags: map[string]complete.Predictor{"host": predict.Nothing, "c": predict.Nothing, "y": predict.Nothing}},
			"topic":   {Args: predict.Set{"readme", "dividends", "goals", "ledger"}},
			"assist":  {},
		},
		Flags: map[string]complete.Predictor{
			"ledger-file":    predict.Files("*.jsonl"),
			"dividends-file": predict.Files("*.jsonl"),
			"goals-file":     predict.Files("*.json"),
		},
	}
}
