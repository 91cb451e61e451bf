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

// holdingCmd holds the flags for the 'holding' subcommand.
type holdingCmd struct {
	portfolio string
	date      string
}

func (*holdingCmd) Name() string     { return "holding" }
func (*holdingCmd) Synopsis() string { return "display the composition of a portfolio on a date" }
func (*holdingCmd) Usage() string {
	return `sfo holding -p <portfolio> [-d <date>]

  Displays the portfolio composition on a given date, with per-ticker
  prices and market values.
`
}

func (c *holdingCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.portfolio, "p", "", "Portfolio to report on")
	f.StringVar(&c.date, "d", date.Today().String(), "Date for the holding report")
}

func (c *holdingCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	b, m, err := decodeBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load book: %v\n", err)
		return subcommands.ExitFailure
	}
	p, err := b.Portfolio(c.portfolio)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.HoldingMarkdown(p, m, on))
	return subcommands.ExitSuccess
}
