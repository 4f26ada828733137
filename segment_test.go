package ircalculator

import (
	"errors"
	"testing"
)

// ledgerRows returns the rows of a small but complete ledger export: one
// instrument with a BUY and a SELL, each carrying one brokerage fee, plus
// the noise rows a real export interleaves.
func ledgerRows(t *testing.T) []Row {
	t.Helper()
	return []Row{
		{"Total da conta", "999"},
		{"AAA"},
		{"2023-01-05", "", "AAA", "BUY", "10", "5.00"},
		{"", "brokerage", "", "", "", "", "1,50"},
		{"2023-01-20", "", "AAA", "SELL", "10", "5.00"},
		{"", "brokerage", "", "", "", "", "1,50"},
		{"", "Transferir saldo", "", "x"},
	}
}

func TestParseRowsRoundTrip(t *testing.T) {
	stocks, err := ParseRows(ledgerRows(t))
	if err != nil {
		t.Fatalf("ParseRows() returned unexpected error: %v", err)
	}

	stock, ok := stocks["AAA"]
	if !ok {
		t.Fatalf("ParseRows() registry = %v, want a stock for AAA", stocks)
	}

	buys := stock.Transactions(Buy)
	if len(buys) != 1 {
		t.Fatalf("Transactions(Buy) has %d entries, want 1", len(buys))
	}
	buy := buys[0]

	if buy.Shares() != 10 {
		t.Errorf("Shares() = %d, want 10", buy.Shares())
	}
	if !buy.Price().Equal(M(5.0, BRL)) {
		t.Errorf("Price() = %s, want %s", buy.Price(), M(5.0, BRL))
	}
	if !buy.Total().Equal(M(50.0, BRL)) {
		t.Errorf("Total() = %s, want %s", buy.Total(), M(50.0, BRL))
	}
	costs := buy.Costs()
	if len(costs) != 1 || !costs[0].Value().Equal(M(1.5, BRL)) {
		t.Errorf("Costs() = %v, want one cost of %s", costs, M(1.5, BRL))
	}
	if !buy.TotalCost().Equal(M(1.5, BRL)) {
		t.Errorf("TotalCost() = %s, want %s", buy.TotalCost(), M(1.5, BRL))
	}
	// a BUY's costs increase the purchase basis
	if !buy.TotalWithCost().Equal(M(51.5, BRL)) {
		t.Errorf("TotalWithCost() = %s, want %s", buy.TotalWithCost(), M(51.5, BRL))
	}

	sells := stock.Transactions(Sell)
	if len(sells) != 1 {
		t.Fatalf("Transactions(Sell) has %d entries, want 1", len(sells))
	}
	// a SELL's costs reduce the sale proceeds
	if !sells[0].TotalWithCost().Equal(M(48.5, BRL)) {
		t.Errorf("TotalWithCost() = %s, want %s", sells[0].TotalWithCost(), M(48.5, BRL))
	}

	if !stock.OverallResult().Equal(M(3.0, BRL)) {
		t.Errorf("OverallResult() = %s, want %s", stock.OverallResult(), M(3.0, BRL))
	}
}

func TestParseRowsEmptyBlock(t *testing.T) {
	// a title immediately followed by another title has no body to parse
	rows := []Row{
		{"AAA"},
		{"BBB"},
		{"2023-01-05", "", "BBB", "BUY", "1", "1.00"},
	}

	stocks, err := ParseRows(rows)
	if err != nil {
		t.Fatalf("ParseRows() returned unexpected error: %v", err)
	}
	if _, ok := stocks["AAA"]; ok {
		t.Errorf("ParseRows() created a stock for the empty AAA block")
	}
	if _, ok := stocks["BBB"]; !ok {
		t.Errorf("ParseRows() registry = %v, want a stock for BBB", stocks)
	}
}

func TestParseRowsOnlyTitles(t *testing.T) {
	stocks, err := ParseRows([]Row{{"AAA"}, {"BBB"}})
	if err != nil {
		t.Fatalf("ParseRows() returned unexpected error: %v", err)
	}
	if len(stocks) != 0 {
		t.Errorf("ParseRows() registry = %v, want empty", stocks)
	}
}

func TestParseRowsBlockOpenAtEOF(t *testing.T) {
	// the last block of a ledger has no closing title row
	rows := []Row{
		{"AAA"},
		{"2023-01-05", "", "AAA", "BUY", "10", "5.00"},
		{"", "brokerage", "", "", "", "", "1,50"},
	}

	stocks, err := ParseRows(rows)
	if err != nil {
		t.Fatalf("ParseRows() returned unexpected error: %v", err)
	}
	stock, ok := stocks["AAA"]
	if !ok {
		t.Fatalf("ParseRows() dropped the block still open at EOF")
	}
	if n := stock.NTransactions(); n != 1 {
		t.Errorf("NTransactions() = %d, want 1", n)
	}
}

func TestParseRowsDropsOrphanRows(t *testing.T) {
	// cost rows before the first header belong to no transaction
	rows := []Row{
		{"AAA"},
		{"", "orphan fee", "", "", "", "", "9,99"},
		{"2023-01-05", "", "AAA", "BUY", "10", "5.00"},
	}

	stocks, err := ParseRows(rows)
	if err != nil {
		t.Fatalf("ParseRows() returned unexpected error: %v", err)
	}
	stock := stocks["AAA"]
	if stock == nil {
		t.Fatal("ParseRows() registry has no stock for AAA")
	}
	tx := stock.Transactions()[0]
	if len(tx.Costs()) != 0 {
		t.Errorf("Costs() = %v, want the orphan row dropped", tx.Costs())
	}
}

func TestParseRowsIgnoresRowsBeforeFirstTitle(t *testing.T) {
	rows := []Row{
		{"2023-01-05", "", "ZZZ", "BUY", "10", "5.00"},
		{"AAA"},
		{"2023-01-06", "", "AAA", "BUY", "1", "1.00"},
	}

	stocks, err := ParseRows(rows)
	if err != nil {
		t.Fatalf("ParseRows() returned unexpected error: %v", err)
	}
	if _, ok := stocks["ZZZ"]; ok {
		t.Errorf("ParseRows() parsed a transaction outside any block")
	}
}

func TestParseRowsMalformedNumberAborts(t *testing.T) {
	rows := []Row{
		{"AAA"},
		{"2023-01-05", "", "AAA", "BUY", "ten", "5.00"},
	}

	stocks, err := ParseRows(rows)
	if !errors.Is(err, ErrMalformedTransaction) {
		t.Fatalf("ParseRows() error = %v, want ErrMalformedTransaction", err)
	}
	if stocks != nil {
		t.Errorf("ParseRows() registry = %v, want nil after failure", stocks)
	}
}

func TestParseRowsMalformedCostAborts(t *testing.T) {
	rows := []Row{
		{"AAA"},
		{"2023-01-05", "", "AAA", "BUY", "10", "5.00"},
		{"", "brokerage", "", "", "", "", "one fifty"},
	}

	_, err := ParseRows(rows)
	if !errors.Is(err, ErrMalformedTransaction) {
		t.Fatalf("ParseRows() error = %v, want ErrMalformedTransaction", err)
	}
}

func TestParseRowsInvalidOperationAborts(t *testing.T) {
	rows := []Row{
		{"AAA"},
		{"2023-01-05", "", "AAA", "DIVIDEND", "10", "5.00"},
	}

	_, err := ParseRows(rows)
	if !errors.Is(err, ErrInvalidOperationType) {
		t.Fatalf("ParseRows() error = %v, want ErrInvalidOperationType", err)
	}
}

func TestParseRowsShortHeaderAborts(t *testing.T) {
	rows := []Row{
		{"AAA"},
		{"2023-01-05", "", "AAA"},
	}

	_, err := ParseRows(rows)
	if !errors.Is(err, ErrMalformedTransaction) {
		t.Fatalf("ParseRows() error = %v, want ErrMalformedTransaction", err)
	}
}

func TestBlocksSpans(t *testing.T) {
	rows := []Row{
		{"AAA"},
		{"a", "b"},
		{"c", "d"},
		{"BBB"},
		{"e", "f"},
	}

	var got []span
	for sp := range blocks(rows) {
		got = append(got, sp)
	}

	want := []span{{1, 3}, {4, 5}}
	if len(got) != len(want) {
		t.Fatalf("blocks() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("blocks()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestGroupsSplitsOnHeaders(t *testing.T) {
	rows := []Row{
		{"2023-01-05", "", "AAA", "BUY", "1", "1"},
		{"", "fee", "", "", "", "", "1"},
		{"", "fee", "", "", "", "", "2"},
		{"2023-01-06", "", "AAA", "SELL", "1", "1"},
	}

	var sizes []int
	for g := range groups(rows) {
		sizes = append(sizes, len(g))
	}

	if len(sizes) != 2 || sizes[0] != 3 || sizes[1] != 1 {
		t.Errorf("groups() sizes = %v, want [3 1]", sizes)
	}
}
