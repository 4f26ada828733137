package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/jonathadv/ir-calculator/renderer"
)

// detailsCmd holds the flags for the 'details' subcommand.
type detailsCmd struct {
	file string
}

func (*detailsCmd) Name() string     { return "details" }
func (*detailsCmd) Synopsis() string { return "full per-ticker report with transaction listing" }
func (*detailsCmd) Usage() string {
	return `irc details -i <ledger.csv>

  Reports, for every ticker in the ledger, the shares sold and purchased,
  the total amount, the total cost and the cost-adjusted result, followed
  by the dated transaction listing with its fee lines.
`
}

func (c *detailsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "i", "", "ledger export to report on")
}

func (c *detailsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	stocks, err := loadStocks(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.DetailsMarkdown(stocks))
	return subcommands.ExitSuccess
}
