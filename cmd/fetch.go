package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/kvasir-fin/stockfolio"
)

// fetchCmd holds the flags for the 'fetch' subcommand.
type fetchCmd struct{}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "fetch daily closing prices from Alphavantage" }
func (*fetchCmd) Usage() string {
	return `sfo fetch [<ticker>...]

  Downloads the daily close history of the given tickers (or, without
  arguments, of every ticker the market file already knows) and merges it
  into the market file.

  Requires an Alphavantage API key, set via the --alphavantage-api-key
  flag or the ALPHAVANTAGE_API_KEY environment variable. Responses are
  cached for a day.

Usage Examples:
$ sfo fetch AAPL GOOG

`
}

func (*fetchCmd) SetFlags(*flag.FlagSet) {}

func (c *fetchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	m, err := decodeMarket()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load market data: %v\n", err)
		return subcommands.ExitFailure
	}

	tickers := f.Args()
	if len(tickers) == 0 {
		tickers = m.Tickers()
	}
	if len(tickers) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no tickers to fetch, name some or record trades first")
		return subcommands.ExitUsageError
	}

	client := stockfolio.NewCachedClient()
	for _, ticker := range tickers {
		if err := m.FetchDaily(client, ticker); err != nil {
			fmt.Fprintf(os.Stderr, "Error fetching %q: %v\n", ticker, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Fetched daily prices for %s\n", ticker)
	}

	if err := encodeMarket(m); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving market data: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
