package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/kvasir-fin/stockfolio/date"
)

// valueCmd holds the flags for the 'value' subcommand.
type valueCmd struct {
	portfolio string
	date      string
}

func (*valueCmd) Name() string     { return "value" }
func (*valueCmd) Synopsis() string { return "display the market value of a portfolio on a date" }
func (*valueCmd) Usage() string {
	return `sfo value -p <portfolio> [-d <date>]

  Sums quantity times closing price over the portfolio composition. A
  missing price falls back to the most recent one within the lookback
  window.
`
}

func (c *valueCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.portfolio, "p", "", "Portfolio to value")
	f.StringVar(&c.date, "d", date.Today().String(), "Valuation date")
}

func (c *valueCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	b, _, err := decodeBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load book: %v\n", err)
		return subcommands.ExitFailure
	}
	value, err := b.Value(c.portfolio, on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("%s is worth %s on %s\n", c.portfolio, value, on)
	return subcommands.ExitSuccess
}

// costBasisCmd holds the flags for the 'costbasis' subcommand.
type costBasisCmd struct {
	portfolio string
	date      string
}

func (*costBasisCmd) Name() string { return "costbasis" }
func (*costBasisCmd) Synopsis() string {
	return "display the capital committed to a ledger portfolio by a date"
}
func (*costBasisCmd) Usage() string {
	return `sfo costbasis -p <portfolio> [-d <date>]

  Sums the purchase cost of every buy up to the date, plus the flat
  commission once per trade, buy or sell.
`
}

func (c *costBasisCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.portfolio, "p", "", "Ledger portfolio to report on")
	f.StringVar(&c.date, "d", date.Today().String(), "Report date")
}

func (c *costBasisCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	b, _, err := decodeBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load book: %v\n", err)
		return subcommands.ExitFailure
	}
	basis, err := b.CostBasis(c.portfolio, on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("%s cost basis on %s: %s (commission %s per trade)\n", c.portfolio, on, basis, b.Commission())
	return subcommands.ExitSuccess
}
