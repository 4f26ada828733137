// Package ircalculator reconstructs stock purchase and sale transactions
// from a broker-exported ledger and derives the tax-relevant aggregates per
// ticker.
//
// A ledger export is a flat sequence of delimited text rows with no explicit
// delimiters between logical groups: single-field title rows open per
// instrument blocks, rows whose first field is an ISO date open transactions,
// and the rows that follow a transaction are its cost lines. The package
// sanitizes the noise rows away, segments the remainder in two stages
// (blocks, then transaction groups) and accumulates the result into a
// registry of per-ticker Stock aggregates.
//
// The registry is owned by the caller and mutated only while ParseRows runs.
// Once handed to a reporting collaborator it must be treated as read-only;
// this is an ownership-transfer contract, not runtime enforced.
package ircalculator
