package ircalculator

import (
	"fmt"
	"maps"
	"slices"
)

// Stock aggregates every known transaction for one ticker, split by side.
// Aggregates are recomputed on each call: the model is read-only once a
// parse run completes and call volume is bounded by report size.
type Stock struct {
	ticker    string
	purchased []Transaction
	sold      []Transaction
}

// NewStock returns an empty aggregate for the given ticker.
func NewStock(ticker string) *Stock {
	return &Stock{ticker: ticker}
}

// Ticker returns the instrument identifier, the registry key.
func (s *Stock) Ticker() string { return s.ticker }

// Add appends the transaction to the purchased or sold sequence per its
// type. Any other type is rejected and the stock is left untouched.
func (s *Stock) Add(op Transaction) error {
	switch op.Type() {
	case Buy:
		s.purchased = append(s.purchased, op)
	case Sell:
		s.sold = append(s.sold, op)
	default:
		return fmt.Errorf("%w: cannot add %s to %s", ErrInvalidOperationType, op, s.ticker)
	}
	return nil
}

// pick returns the transactions selected by the given filter, purchases
// first. An empty filter selects both sides.
func (s *Stock) pick(types []OperationType) []Transaction {
	if len(types) == 0 {
		types = []OperationType{Buy, Sell}
	}
	var txs []Transaction
	for _, ty := range types {
		switch ty {
		case Buy:
			txs = append(txs, s.purchased...)
		case Sell:
			txs = append(txs, s.sold...)
		}
	}
	return txs
}

// Transactions returns the selected transactions ordered by date ascending;
// transactions on the same date keep their ledger order.
func (s *Stock) Transactions(types ...OperationType) []Transaction {
	txs := s.pick(types)
	slices.SortStableFunc(txs, func(a, b Transaction) int { return a.When().Compare(b.When()) })
	return txs
}

// NTransactions returns the number of selected transactions.
func (s *Stock) NTransactions(types ...OperationType) int {
	return len(s.pick(types))
}

// NShares returns the total share count of the selected transactions.
func (s *Stock) NShares(types ...OperationType) int64 {
	var n int64
	for _, t := range s.pick(types) {
		n += t.Shares()
	}
	return n
}

// TotalAmount returns the sum of the selected transactions' totals, before
// costs.
func (s *Stock) TotalAmount(types ...OperationType) Money {
	var sum Money
	for _, t := range s.pick(types) {
		sum = sum.Add(t.Total())
	}
	return sum
}

// TotalCost returns the sum of the selected transactions' fee lines.
func (s *Stock) TotalCost(types ...OperationType) Money {
	var sum Money
	for _, t := range s.pick(types) {
		sum = sum.Add(t.TotalCost())
	}
	return sum
}

// TotalAmountWithCost returns the sum of the selected transactions'
// cost-adjusted amounts.
func (s *Stock) TotalAmountWithCost(types ...OperationType) Money {
	var sum Money
	for _, t := range s.pick(types) {
		sum = sum.Add(t.TotalWithCost())
	}
	return sum
}

// OverallResult returns the cost-adjusted purchase amount minus the
// cost-adjusted sale amount.
func (s *Stock) OverallResult() Money {
	return s.TotalAmountWithCost(Buy).Sub(s.TotalAmountWithCost(Sell))
}

// String renders a compact summary of the aggregate.
func (s *Stock) String() string {
	return fmt.Sprintf("Stock(ticker=%s, n_transactions=%d, purchased=%d, sold=%d, total_amount=%s)",
		s.ticker, s.NTransactions(), s.NShares(Buy), s.NShares(Sell), s.TotalAmount())
}

// Stocks is the registry of every stock seen in one parse run, keyed by
// ticker. It is created empty, populated incrementally while the ledger is
// parsed, and must be treated as read-only once handed to reporting.
type Stocks map[string]*Stock

// Get returns the stock for ticker, creating it on first encounter.
func (s Stocks) Get(ticker string) *Stock {
	stock, ok := s[ticker]
	if !ok {
		stock = NewStock(ticker)
		s[ticker] = stock
	}
	return stock
}

// Tickers returns the registry keys sorted, for deterministic reports.
func (s Stocks) Tickers() []string {
	return slices.Sorted(maps.Keys(s))
}
