// Package cmd implements the CLI application that reports on a broker
// ledger export.
package cmd

import (
	"errors"
	"flag"
	"os"

	"github.com/google/subcommands"
	"github.com/rs/zerolog"

	ircalculator "github.com/jonathadv/ir-calculator"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on
// the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&detailsCmd{}, "reports")
	c.Register(&soldCmd{}, "reports")
	c.Register(&overallCmd{}, "reports")
	c.Register(&summaryCmd{}, "reports")
	c.Register(&txCmd{}, "reports")

	c.Register(&topicCmd{}, "help")
	c.Register(c.HelpCommand(), "help")
	c.Register(c.FlagsCommand(), "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var verbose = flag.Bool("v", false, "log parse diagnostics to stderr")

// logger returns the stderr diagnostics logger; report output goes to
// stdout and stays clean.
func logger() zerolog.Logger {
	level := zerolog.WarnLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}

// loadStocks reads and parses the ledger export into the stock registry all
// report commands consume.
func loadStocks(file string) (ircalculator.Stocks, error) {
	if file == "" {
		return nil, errors.New("-i argument is required")
	}
	log := logger()

	rows, err := ircalculator.ReadLedgerFile(file)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("file", file).Int("rows", len(rows)).Msg("ledger read")

	stocks, err := ircalculator.ParseRows(rows)
	if err != nil {
		return nil, err
	}
	log.Debug().Int("stocks", len(stocks)).Msg("ledger parsed")
	return stocks, nil
}
