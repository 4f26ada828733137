package ircalculator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jonathadv/ir-calculator/date"
)

// OperationType is a typed string identifying the side of a transaction.
type OperationType string

// Operation types found in a ledger export.
const (
	Buy  OperationType = "BUY"
	Sell OperationType = "SELL"
)

var (
	// ErrMalformedTransaction reports a header or cost row whose date or
	// numeric fields do not parse. It aborts the whole parse run.
	ErrMalformedTransaction = errors.New("malformed transaction")

	// ErrInvalidOperationType reports an operation token that is neither BUY
	// nor SELL after case normalization. It aborts the whole parse run.
	ErrInvalidOperationType = errors.New("invalid operation type")
)

// parseAmount parses a ledger decimal field. The export uses the comma as
// decimal separator and signs fees negatively; both are normalized away.
func parseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.ReplaceAll(s, ",", "."))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: invalid amount %q", ErrMalformedTransaction, s)
	}
	return d.Abs(), nil
}

// Cost is a named fee or adjustment attached to one transaction.
// It is immutable after construction.
type Cost struct {
	name  string
	value Money
}

// NewCost parses the textual fields of one cost line.
func NewCost(name, value string) (Cost, error) {
	v, err := parseAmount(value)
	if err != nil {
		return Cost{}, err
	}
	return Cost{name: name, value: M(v, BRL)}, nil
}

func (c Cost) Name() string   { return c.name }
func (c Cost) Value() Money   { return c.value }
func (c Cost) String() string { return fmt.Sprintf("%s=%s", c.name, c.value) }

// Transaction is one buy or sell event for one instrument on one date,
// together with the fee lines the broker attached to it. It is immutable
// after construction and belongs to exactly one Stock.
type Transaction struct {
	ticker string
	optype OperationType
	on     date.Date
	shares int64
	price  Money
	costs  []Cost
}

// NewTransaction parses the textual fields of one transaction group.
// The date, shares and price fields come straight from the ledger export:
// the date must be ISO formatted, the numeric fields may use a comma decimal
// separator and any sign (the sign is discarded, fractional share counts are
// truncated). A date or numeric field that does not parse yields
// ErrMalformedTransaction; an operation token that is neither BUY nor SELL
// yields ErrInvalidOperationType.
func NewTransaction(ticker, optype, on, shares, pricePerShare string, costs []Cost) (Transaction, error) {
	op := OperationType(strings.ToUpper(optype))
	if op != Buy && op != Sell {
		return Transaction{}, fmt.Errorf("%w: %q", ErrInvalidOperationType, optype)
	}

	day, err := date.Parse(on)
	if err != nil {
		return Transaction{}, fmt.Errorf("%w: %v", ErrMalformedTransaction, err)
	}

	n, err := parseAmount(shares)
	if err != nil {
		return Transaction{}, err
	}

	price, err := parseAmount(pricePerShare)
	if err != nil {
		return Transaction{}, err
	}

	return Transaction{
		ticker: ticker,
		optype: op,
		on:     day,
		shares: n.IntPart(),
		price:  M(price, BRL),
		costs:  costs,
	}, nil
}

func (t Transaction) Ticker() string      { return t.ticker }
func (t Transaction) Type() OperationType { return t.optype }

// When returns the date on which the transaction occurred.
func (t Transaction) When() date.Date { return t.on }

// Shares returns the traded share count.
func (t Transaction) Shares() int64 { return t.shares }

// Price returns the price paid or received per share.
func (t Transaction) Price() Money { return t.price }

// Costs returns the fee lines in ledger order.
func (t Transaction) Costs() []Cost {
	costs := make([]Cost, len(t.costs))
	copy(costs, t.costs)
	return costs
}

// Total returns shares times price per share, before costs.
func (t Transaction) Total() Money { return t.price.MulInt(t.shares) }

// TotalCost returns the sum of the fee lines.
func (t Transaction) TotalCost() Money {
	var sum Money
	for _, c := range t.costs {
		sum = sum.Add(c.value)
	}
	return sum
}

// TotalWithCost returns the effective amount of the transaction: costs
// increase a purchase basis and reduce sale proceeds.
func (t Transaction) TotalWithCost() Money {
	if t.optype == Sell {
		return t.Total().Sub(t.TotalCost())
	}
	return t.Total().Add(t.TotalCost())
}

// String renders the transaction in the ledger's display form.
func (t Transaction) String() string {
	return fmt.Sprintf("[%s] | %s | %d x %s = %s", t.on, t.optype, t.shares, t.price, t.Total())
}
