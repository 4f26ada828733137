package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/jonathadv/ir-calculator/renderer"
)

// soldCmd holds the flags for the 'sold' subcommand.
type soldCmd struct {
	file string
}

func (*soldCmd) Name() string     { return "sold" }
func (*soldCmd) Synopsis() string { return "net sale proceeds per ticker" }
func (*soldCmd) Usage() string {
	return `irc sold -i <ledger.csv>

  Reports the sale proceeds net of costs for every ticker that sold
  anything, the figure the capital gains declaration asks for.
`
}

func (c *soldCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "i", "", "ledger export to report on")
}

func (c *soldCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	stocks, err := loadStocks(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SoldMarkdown(stocks))
	return subcommands.ExitSuccess
}
