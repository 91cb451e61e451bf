package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// fmtCmd holds the flags for the 'fmt' subcommand.
type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and rewrites the book file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `sfo fmt

  Replays the whole book file, validating every command, and writes it
  back in canonical order: commission first, then portfolios, then trades
  in chronological order.
`
}

func (*fmtCmd) SetFlags(*flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, _, err := decodeBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load book: %v\n", err)
		return subcommands.ExitFailure
	}
	return saveBook(b)
}
