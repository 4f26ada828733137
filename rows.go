package ircalculator

import (
	"regexp"
	"strings"
)

// Row is one raw ledger line split into its delimited fields.
type Row []string

// Kind tags a row with the role it plays in the ledger layout. The export
// carries no explicit tags, so the role is derived from shape and content.
type Kind int

const (
	KindData   Kind = iota // cost line or anything else inside a block
	KindTitle              // single-field instrument section marker
	KindHeader             // first field is an ISO date: opens a transaction
	KindNoise              // totals, transfers and income notices
)

// headerRE matches the first field of a transaction header row.
var headerRE = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// transferMarker opens the second field of account transfer rows in the
// broker's locale.
const transferMarker = "Transferir"

// noiseTokens flag income notice rows anywhere they appear. Dividends and
// "rendimento" payouts are out of scope for the capital gains model.
var noiseTokens = []string{"Dividend", "Rendimento"}

// Classify returns the role the row plays in the ledger layout.
func Classify(r Row) Kind {
	switch {
	case isNoise(r):
		return KindNoise
	case isTitle(r):
		return KindTitle
	case IsHeader(r):
		return KindHeader
	default:
		return KindData
	}
}

// IsHeader reports whether the row opens a transaction group.
// A row with no fields is not a header.
func IsHeader(r Row) bool {
	return len(r) > 0 && headerRE.MatchString(r[0])
}

func isTitle(r Row) bool { return len(r) == 1 }

func isNoise(r Row) bool {
	if len(r) > 0 && strings.HasPrefix(r[0], "Total") {
		return true
	}
	// Rows too short to hold a transfer marker simply don't match.
	if len(r) > 2 && strings.HasPrefix(r[1], transferMarker) && r[2] == "" {
		return true
	}
	for _, f := range r {
		for _, tok := range noiseTokens {
			if f == tok {
				return true
			}
		}
	}
	return false
}

// Sanitize removes noise rows from the ledger, preserving the relative order
// of everything else. It is a pure function and idempotent.
func Sanitize(rows []Row) []Row {
	clean := make([]Row, 0, len(rows))
	for _, r := range rows {
		if isNoise(r) {
			continue
		}
		clean = append(clean, r)
	}
	return clean
}
