package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
	"github.com/kvasir-fin/stockfolio"
)

// commissionCmd holds the flags for the 'commission' subcommand.
type commissionCmd struct {
	amount float64
	set    bool
}

func (*commissionCmd) Name() string     { return "commission" }
func (*commissionCmd) Synopsis() string { return "show or set the flat per-trade commission" }
func (*commissionCmd) Usage() string {
	return `sfo commission [-a <amount>]

  Without -a, prints the commission used by cost basis. With -a, sets it.

Usage Examples:
$ sfo commission -a 7.5

`
}

func (c *commissionCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.amount, "a", 0, "New per-trade commission")
}

func (c *commissionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	// Visit only reports flags that were actually given, so a plain
	// "sfo commission" shows the current value instead of zeroing it.
	f.Visit(func(fl *flag.Flag) {
		if fl.Name == "a" {
			c.set = true
		}
	})

	b, _, err := decodeBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load book: %v\n", err)
		return subcommands.ExitFailure
	}
	if !c.set {
		fmt.Printf("commission per trade: %s\n", b.Commission())
		return subcommands.ExitSuccess
	}

	commission := stockfolio.USD(c.amount)
	if err := b.SetCommission(commission); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return appendToBook(func(w io.Writer) error {
		return stockfolio.EncodeCommission(w, commission)
	})
}
