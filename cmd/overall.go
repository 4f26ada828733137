package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/jonathadv/ir-calculator/renderer"
)

// overallCmd holds the flags for the 'overall' subcommand.
type overallCmd struct {
	file string
}

func (*overallCmd) Name() string     { return "overall" }
func (*overallCmd) Synopsis() string { return "overall result per ticker" }
func (*overallCmd) Usage() string {
	return `irc overall -i <ledger.csv>

  Reports, for every ticker, the cost-adjusted purchase amount minus the
  cost-adjusted sale amount, and the grand total.
`
}

func (c *overallCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "i", "", "ledger export to report on")
}

func (c *overallCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	stocks, err := loadStocks(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.OverallMarkdown(stocks))
	return subcommands.ExitSuccess
}
