// Package renderer builds markdown reports from a parsed stock registry.
// It only consumes the registry's accessors; the registry must not be
// mutated once reporting has started.
package renderer

import (
	"fmt"
	"io"

	ircalculator "github.com/jonathadv/ir-calculator"
)

// writeTransaction renders one transaction and its cost lines as a list item.
func writeTransaction(w io.Writer, tx ircalculator.Transaction) {
	fmt.Fprintf(w, "- %s\n", tx)
	for _, c := range tx.Costs() {
		fmt.Fprintf(w, "  - %s\n", c)
	}
}
