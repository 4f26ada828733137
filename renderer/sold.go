package renderer

import (
	"fmt"
	"strings"

	ircalculator "github.com/jonathadv/ir-calculator"
)

// SoldMarkdown renders the sale proceeds per ticker, net of costs. Tickers
// without sales in the period are skipped.
func SoldMarkdown(stocks ircalculator.Stocks) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Sold Positions\n\n")
	fmt.Fprintln(&b, "| Ticker | Amount + Cost |")
	fmt.Fprintln(&b, "|:---|---:|")

	for _, ticker := range stocks.Tickers() {
		sold := stocks[ticker].TotalAmountWithCost(ircalculator.Sell)
		if sold.IsZero() {
			continue
		}
		fmt.Fprintf(&b, "| %s | %s |\n", ticker, sold)
	}

	return b.String()
}
