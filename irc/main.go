package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/jonathadv/ir-calculator/cmd"
)

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion wires shell completion; outside of completion mode it returns
// immediately.
func completion() {
	ledger := map[string]complete.Predictor{"i": predict.Files("*.csv")}
	c := &complete.Command{
		Sub: map[string]*complete.Command{
			"details": {Flags: ledger},
			"sold":    {Flags: ledger},
			"overall": {Flags: ledger},
			"summary": {Flags: ledger},
			"tx":      {Flags: ledger},
			"topic":   {},
		},
	}
	c.Complete("irc")
}
