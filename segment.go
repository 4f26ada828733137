package ircalculator

import (
	"fmt"
	"iter"
)

// span is a half-open row interval [start, end) within the sanitized ledger.
type span struct{ start, end int }

// blocks yields the body span of every instrument block: a block opens at a
// title row and its body runs until the next title row or the end of input.
// A title immediately followed by another title has an empty body and yields
// nothing. Rows before the first title belong to no block and are dropped.
// The scan is a single forward pass.
func blocks(rows []Row) iter.Seq[span] {
	return func(yield func(span) bool) {
		title := -1
		for i, r := range rows {
			if Classify(r) != KindTitle {
				continue
			}
			if title >= 0 && i > title+1 {
				if !yield(span{title + 1, i}) {
					return
				}
			}
			title = i
		}
		// a block still open at EOF is emitted
		if title >= 0 && title+1 < len(rows) {
			yield(span{title + 1, len(rows)})
		}
	}
}

// groups yields the transaction groups of one block body: each group is a
// header row plus every following cost row up to the next header or the end
// of the span. Rows before the first header are orphans and are dropped
// without error.
func groups(rows []Row) iter.Seq[[]Row] {
	return func(yield func([]Row) bool) {
		start := -1
		for i, r := range rows {
			if Classify(r) != KindHeader {
				continue
			}
			if start >= 0 && !yield(rows[start:i]) {
				return
			}
			start = i
		}
		if start >= 0 {
			yield(rows[start:])
		}
	}
}

// buildTransaction converts one transaction group into a Transaction value.
// The first row of the group is the header; every following row is a cost
// line. Field positions follow the export's column contract.
func buildTransaction(group []Row) (Transaction, error) {
	head := group[0]
	if len(head) < 6 {
		return Transaction{}, fmt.Errorf("%w: header row %q has %d fields, want 6", ErrMalformedTransaction, head, len(head))
	}

	costs := make([]Cost, 0, len(group)-1)
	for _, r := range group[1:] {
		if len(r) < 7 {
			return Transaction{}, fmt.Errorf("%w: cost row %q has %d fields, want 7", ErrMalformedTransaction, r, len(r))
		}
		c, err := NewCost(r[1], r[6])
		if err != nil {
			return Transaction{}, fmt.Errorf("cost row %q: %w", r, err)
		}
		costs = append(costs, c)
	}

	op, err := NewTransaction(head[2], head[3], head[0], head[4], head[5], costs)
	if err != nil {
		return Transaction{}, fmt.Errorf("header row %q: %w", head, err)
	}
	return op, nil
}

// parseBlock accumulates every transaction group of one block body into the
// registry, creating stocks on first encounter of their ticker.
func parseBlock(rows []Row, stocks Stocks) error {
	for group := range groups(rows) {
		op, err := buildTransaction(group)
		if err != nil {
			return err
		}
		if err := stocks.Get(op.Ticker()).Add(op); err != nil {
			return err
		}
	}
	return nil
}

// ParseRows reconstructs the stock registry from raw ledger rows: noise rows
// are removed, the remainder is segmented into instrument blocks and each
// block's transaction groups are built and accumulated into the returned
// registry. The first malformed row aborts the run; the registry is not
// usable after a failure.
func ParseRows(rows []Row) (Stocks, error) {
	stocks := Stocks{}
	clean := Sanitize(rows)
	for sp := range blocks(clean) {
		if err := parseBlock(clean[sp.start:sp.end], stocks); err != nil {
			return nil, err
		}
	}
	return stocks, nil
}
