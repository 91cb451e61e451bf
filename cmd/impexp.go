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

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	portfolio string
	output    string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export a ledger portfolio's trades as CSV" }
func (*exportCmd) Usage() string {
	return `sfo export -p <portfolio> [-o <file>]

  Writes the trade history as CSV (to stdout by default), one row per
  trade with an absolute quantity and a BUY/SELL tag.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.portfolio, "p", "", "Ledger portfolio to export")
	f.StringVar(&c.output, "o", "", "Output file (defaults to stdout)")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	var w io.Writer = os.Stdout
	if c.output != "" {
		file, err := os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		w = file
	}
	if err := stockfolio.ExportTrades(w, l); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// importCmd holds the flags for the 'import' subcommand.
type importCmd struct {
	portfolio string
	input     string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import a CSV trade history into a new ledger portfolio" }
func (*importCmd) Usage() string {
	return `sfo import -p <portfolio> -i <file>

  Creates a new ledger portfolio and replays the CSV rows into it. Every
  row goes through the consistency guard, so a file that oversells is
  rejected as a whole.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.portfolio, "p", "", "Name of the new ledger portfolio")
	f.StringVar(&c.input, "i", "", "CSV file to import")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.input == "" {
		fmt.Fprintln(os.Stderr, "Error: missing input file")
		return subcommands.ExitUsageError
	}
	file, err := os.Open(c.input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", c.input, err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	imported, err := stockfolio.ImportTrades(c.portfolio, file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing %q: %v\n", c.input, err)
		return subcommands.ExitFailure
	}

	b, _, err := decodeBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load book: %v\n", err)
		return subcommands.ExitFailure
	}
	if _, err := b.NewLedger(c.portfolio); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	for _, t := range imported.Trades() {
		if err := b.AddTrade(c.portfolio, t.Ticker, t.Quantity, t.Date); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	fmt.Printf("Imported %d trades into %q\n", imported.Len(), c.portfolio)
	return saveBook(b)
}
