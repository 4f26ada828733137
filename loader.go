package ircalculator

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// ReadLedger materializes the delimited ledger export into rows. The export
// is ragged on purpose (title rows have one field, cost rows seven), so the
// reader does not enforce a uniform record length. Fields may be quoted.
func ReadLedger(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading ledger: %w", err)
	}

	rows := make([]Row, len(records))
	for i, rec := range records {
		rows[i] = Row(rec)
	}
	return rows, nil
}

// ReadLedgerFile reads the ledger export at path into rows.
func ReadLedgerFile(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening ledger %q: %w", path, err)
	}
	defer f.Close()

	return ReadLedger(f)
}

// ParseLedgerFile reads and parses the ledger export at path into a stock
// registry, the one-call entry point for collaborators.
func ParseLedgerFile(path string) (Stocks, error) {
	rows, err := ReadLedgerFile(path)
	if err != nil {
		return nil, err
	}
	return ParseRows(rows)
}
