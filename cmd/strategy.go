package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/kvasir-fin/stockfolio"
	"github.com/kvasir-fin/stockfolio/date"
)

// strategyCmd holds the flags for the 'strategy' subcommand.
type strategyCmd struct {
	portfolio string
	amount    float64
	period    string
	from      string
	to        string
}

func (*strategyCmd) Name() string { return "strategy" }
func (*strategyCmd) Synopsis() string {
	return "expand a recurring proportional investment into trades"
}
func (*strategyCmd) Usage() string {
	return `sfo strategy -p <portfolio> -a <amount> -period <weekly|monthly> -from <date> [-to <date>] <ticker>:<percent>...

  Invests a fixed amount in the given proportions on every periodic trading
  day between the two dates, walking the market calendar: a closed day
  slides the investment to the next open one. All trades are sized before
  any is committed.

Usage Examples:
# 500 a month, 60/40, since January.
$ sfo strategy -p retirement -a 500 -period monthly -from 2022-01-15 AAPL:60 GOOG:40

`
}

func (c *strategyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.portfolio, "p", "", "Ledger portfolio to invest in")
	f.Float64Var(&c.amount, "a", 0, "Amount to invest per period")
	f.StringVar(&c.period, "period", "monthly", "Investment periodicity (weekly or monthly)")
	f.StringVar(&c.from, "from", "", "First investment date")
	f.StringVar(&c.to, "to", "", "Last investment date (defaults to today)")
}

func (c *strategyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	period, err := date.ParsePeriod(c.period)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	from, err := date.Parse(c.from)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing start date: %v\n", err)
		return subcommands.ExitUsageError
	}
	var to date.Date
	if c.to != "" {
		if to, err = date.Parse(c.to); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing end date: %v\n", err)
			return subcommands.ExitUsageError
		}
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
	s := stockfolio.Strategy{
		Amount:     c.amount,
		Allocation: alloc,
		From:       from,
		To:         to,
		Period:     period,
	}
	if err := b.AddStrategy(c.portfolio, s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return saveBook(b)
}
