package renderer

import (
	"fmt"
	"strings"

	ircalculator "github.com/jonathadv/ir-calculator"
)

// DetailsMarkdown renders one full section per ticker: share counts, the
// rollup amounts and the dated transaction listing with its cost lines.
func DetailsMarkdown(stocks ircalculator.Stocks) string {
	var b strings.Builder

	for _, ticker := range stocks.Tickers() {
		writeDetails(&b, stocks[ticker])
	}

	return b.String()
}

func writeDetails(w *strings.Builder, stock *ircalculator.Stock) {
	sell := stock.TotalAmountWithCost(ircalculator.Sell)
	buy := stock.TotalAmountWithCost(ircalculator.Buy)

	// a ticker that was never sold reports its purchase basis, otherwise
	// the net of the period
	result := buy
	if !sell.IsZero() {
		result = sell.Sub(buy)
	}

	fmt.Fprintf(w, "# %s\n\n", stock.Ticker())
	fmt.Fprintf(w, "- Total Sold: %d\n", stock.NShares(ircalculator.Sell))
	fmt.Fprintf(w, "- Total Purchased: %d\n", stock.NShares(ircalculator.Buy))
	fmt.Fprintf(w, "- Total Amount: %s\n", stock.TotalAmount())
	fmt.Fprintf(w, "- Total Cost: %s\n", stock.TotalCost())
	fmt.Fprintf(w, "- Amount + Cost: %s\n", result)
	fmt.Fprint(w, "\n## Transactions\n\n")

	for _, tx := range stock.Transactions() {
		writeTransaction(w, tx)
	}
	fmt.Fprintln(w)
}
