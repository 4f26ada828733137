package renderer

import (
	"fmt"
	"strings"

	ircalculator "github.com/jonathadv/ir-calculator"
)

// Transactions renders a flat dated transaction log for the whole registry,
// one section per ticker.
func Transactions(stocks ircalculator.Stocks) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Transactions\n\n")
	for _, ticker := range stocks.Tickers() {
		fmt.Fprintf(&b, "## %s\n\n", ticker)
		for _, tx := range stocks[ticker].Transactions() {
			writeTransaction(&b, tx)
		}
		fmt.Fprintln(&b)
	}

	return b.String()
}
