package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/kvasir-fin/stockfolio/date"
	"github.com/kvasir-fin/stockfolio/renderer"
)

// performanceCmd holds the flags for the 'performance' subcommand.
type performanceCmd struct {
	portfolio string
	from      string
	to        string
}

func (*performanceCmd) Name() string { return "performance" }
func (*performanceCmd) Synopsis() string {
	return "display a bucketed value series of a portfolio over a date range"
}
func (*performanceCmd) Usage() string {
	return `sfo performance -p <portfolio> -from <date> [-to <date>]

  Values the portfolio on every bucket boundary of the range. The bucket
  granularity (daily, weekly, monthly, yearly) is chosen automatically
  from the range length.

Usage Examples:
$ sfo performance -p retirement -from 2022-01-01 -to 2022-11-10

`
}

func (c *performanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.portfolio, "p", "", "Portfolio to report on")
	f.StringVar(&c.from, "from", "", "Start of the report range")
	f.StringVar(&c.to, "to", date.Today().String(), "End of the report range (defaults to today)")
}

func (c *performanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	from, err := date.Parse(c.from)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing start date: %v\n", err)
		return subcommands.ExitUsageError
	}
	to, err := date.Parse(c.to)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing end date: %v\n", err)
		return subcommands.ExitUsageError
	}

	b, _, err := decodeBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load book: %v\n", err)
		return subcommands.ExitFailure
	}
	series, err := b.Performance(c.portfolio, date.NewRange(from, to))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.PerformanceMarkdown(c.portfolio, series))
	return subcommands.ExitSuccess
}

// logCmd holds the flags for the 'log' subcommand.
type logCmd struct {
	portfolio string
}

func (*logCmd) Name() string     { return "log" }
func (*logCmd) Synopsis() string { return "display the trade history of a ledger portfolio" }
func (*logCmd) Usage() string {
	return `sfo log -p <portfolio>

  Displays every trade of a ledger portfolio in chronological order.
`
}

func (c *logCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.portfolio, "p", "", "Ledger portfolio to report on")
}

func (c *logCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, _, err := decodeBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load book: %v\n", err)
		return subcommands.ExitFailure
	}
	l, err := b.Ledger(c.portfolio)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.TradesMarkdown(l))
	return subcommands.ExitSuccess
}
