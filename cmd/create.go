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

// createCmd holds the flags for the 'create' subcommand.
type createCmd struct{}

func (*createCmd) Name() string     { return "create" }
func (*createCmd) Synopsis() string { return "create a new portfolio" }
func (*createCmd) Usage() string {
	return `sfo create <name> [<ticker>:<quantity>...]

  Creates a new portfolio. Without holdings it is a ledger portfolio whose
  content is built trade by trade; with holdings it is a static portfolio
  fixed forever at creation.

Usage Examples:
# An empty ledger portfolio.
$ sfo create retirement

# A static portfolio with two fixed positions.
$ sfo create savings AAPL:10 GOOG:2.5

`
}

func (*createCmd) SetFlags(*flag.FlagSet) {}

func (c *createCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: missing portfolio name")
		return subcommands.ExitUsageError
	}
	name := f.Arg(0)

	b, _, err := decodeBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load book: %v\n", err)
		return subcommands.ExitFailure
	}

	if f.NArg() == 1 {
		if _, err := b.NewLedger(name); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return appendToBook(func(w io.Writer) error {
			return stockfolio.EncodeLedgerCreation(w, name)
		})
	}

	holdings, err := parseHoldings(f.Args()[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	p, err := b.NewStatic(name, holdings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return appendToBook(func(w io.Writer) error {
		return stockfolio.EncodeStaticCreation(w, p)
	})
}
