package renderer

import (
	"fmt"
	"strings"

	ircalculator "github.com/jonathadv/ir-calculator"
)

// SummaryMarkdown renders the portfolio-level rollup over the whole
// registry.
func SummaryMarkdown(stocks ircalculator.Stocks) string {
	var b strings.Builder

	var transactions int
	var amount, cost, overall ircalculator.Money
	for _, ticker := range stocks.Tickers() {
		stock := stocks[ticker]
		transactions += stock.NTransactions()
		amount = amount.Add(stock.TotalAmount())
		cost = cost.Add(stock.TotalCost())
		overall = overall.Add(stock.OverallResult())
	}

	fmt.Fprint(&b, "# Ledger Summary\n\n")
	fmt.Fprintf(&b, "- Stocks: %d\n", len(stocks))
	fmt.Fprintf(&b, "- Transactions: %d\n", transactions)
	fmt.Fprintf(&b, "- Total Amount: %s\n", amount)
	fmt.Fprintf(&b, "- Total Cost: %s\n", cost)
	fmt.Fprintf(&b, "- Overall Result: %s\n", overall.SignedString())

	return b.String()
}
