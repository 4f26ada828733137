package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/jonathadv/ir-calculator/renderer"
)

// txCmd holds the flags for the 'tx' subcommand.
type txCmd struct {
	file string
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "dated transaction log" }
func (*txCmd) Usage() string {
	return `irc tx -i <ledger.csv>

  Lists every parsed transaction per ticker, in date order, with its fee
  lines.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "i", "", "ledger export to report on")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	stocks, err := loadStocks(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Transactions(stocks))
	return subcommands.ExitSuccess
}
