package renderer

import (
	"fmt"
	"strings"

	ircalculator "github.com/jonathadv/ir-calculator"
)

// OverallMarkdown renders the overall result per ticker: the cost-adjusted
// purchase amount minus the cost-adjusted sale amount.
func OverallMarkdown(stocks ircalculator.Stocks) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Overall Results\n\n")
	fmt.Fprintln(&b, "| Ticker | Result |")
	fmt.Fprintln(&b, "|:---|---:|")

	var total ircalculator.Money
	for _, ticker := range stocks.Tickers() {
		result := stocks[ticker].OverallResult()
		total = total.Add(result)
		fmt.Fprintf(&b, "| %s | %s |\n", ticker, result.SignedString())
	}
	fmt.Fprintf(&b, "| **Total** | **%s** |\n", total.SignedString())

	return b.String()
}
