package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/jonathadv/ir-calculator/renderer"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	file string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "one-screen rollup of the whole ledger" }
func (*summaryCmd) Usage() string {
	return `irc summary -i <ledger.csv>

  Reports the portfolio-level rollup: stock and transaction counts, grand
  totals and the overall result.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "i", "", "ledger export to report on")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	stocks, err := loadStocks(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SummaryMarkdown(stocks))
	return subcommands.ExitSuccess
}
