package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
	"github.com/kvasir-fin/stockfolio"
	"github.com/kvasir-fin/stockfolio/date"
)

// tradeCmd holds the flags shared by the 'buy' and 'sell' subcommands.
type tradeCmd struct {
	portfolio string
	ticker    string
	quantity  string
	date      string
}

func (c *tradeCmd) setFlags(f *flag.FlagSet) {
	f.StringVar(&c.portfolio, "p", "", "Ledger portfolio to record the trade in")
	f.StringVar(&c.ticker, "t", "", "Ticker of the traded instrument")
	f.StringVar(&c.quantity, "q", "", "Number of units traded")
	f.StringVar(&c.date, "d", date.Today().String(), "Date of the trade")
}

// execute records one signed trade: the side decides the sign.
func (c *tradeCmd) execute(side stockfolio.Side) subcommands.ExitStatus {
	qty, err := stockfolio.ParseQuantity(c.quantity)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	qty = qty.Abs()
	if side == stockfolio.Sell {
		qty = qty.Neg()
	}
	on, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	b, _, err := decodeBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load book: %v\n", err)
		return subcommands.ExitFailure
	}
	// The in-memory append enforces the consistency guard before anything
	// touches the file.
	if err := b.AddTrade(c.portfolio, c.ticker, qty, on); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	t, err := stockfolio.NewTrade(c.ticker, qty, on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return appendToBook(func(w io.Writer) error {
		return stockfolio.EncodeTrade(w, c.portfolio, t)
	})
}

type buyCmd struct{ tradeCmd }

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record a purchase in a ledger portfolio" }
func (*buyCmd) Usage() string {
	return `sfo buy -p <portfolio> -t <ticker> -q <quantity> [-d <date>]

  Appends a purchase to a ledger portfolio.

Usage Examples:
$ sfo buy -p retirement -t AAPL -q 12 -d 2022-11-08

`
}
func (c *buyCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f) }
func (c *buyCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.execute(stockfolio.Buy)
}

type sellCmd struct{ tradeCmd }

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a sale in a ledger portfolio" }
func (*sellCmd) Usage() string {
	return `sfo sell -p <portfolio> -t <ticker> -q <quantity> [-d <date>]

  Appends a sale to a ledger portfolio. The sale is rejected if it would
  drive the position negative as of its date.

Usage Examples:
$ sfo sell -p retirement -t AAPL -q 5

`
}
func (c *sellCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f) }
func (c *sellCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.execute(stockfolio.Sell)
}
