package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/kvasir-fin/stockfolio/date"
)

// investCmd holds the flags for the 'invest' subcommand.
type investCmd struct {
	portfolio string
	amount    float64
	date      string
}

func (*investCmd) Name() string { return "invest" }
func (*investCmd) Synopsis() string {
	return "invest an amount across tickers in fixed proportions"
}
func (*investCmd) Usage() string {
	return `sfo invest -p <portfolio> -a <amount> [-d <date>] <ticker>:<percent>...

  Splits the amount across the tickers by the given percents (which must
  sum to 100), sizes one trade per ticker at the day's closing quote, and
  commits them all at once. A missing quote on the date commits nothing.

Usage Examples:
$ sfo invest -p retirement -a 1000 -d 2022-11-08 AAPL:30 GOOG:70

`
}

func (c *investCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.portfolio, "p", "", "Ledger portfolio to invest in")
	f.Float64Var(&c.amount, "a", 0, "Amount to invest")
	f.StringVar(&c.date, "d", date.Today().String(), "Investment date")
}

func (c *investCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	alloc, err := parseAllocation(f.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	b, _, err := decodeBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load book: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := b.Invest(c.portfolio, c.amount, alloc, on); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return saveBook(b)
}
