package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/kvasir-fin/stockfolio/docs"
)

// topicCmd holds the flags for the 'topic' subcommand.
type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "display a topic of the user manual" }
func (*topicCmd) Usage() string {
	return `sfo topic [<name>...]

  Displays manual topics in the terminal. Without arguments it lists the
  available topics; "*" displays all of them.

Usage Examples:
$ sfo topic getting-started

`
}

func (*topicCmd) SetFlags(*flag.FlagSet) {}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		content, err := docs.GetTopic("readme")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		printMarkdown(content)
		return subcommands.ExitSuccess
	}
	content, err := docs.GetTopics(f.Args()...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(content)
	return subcommands.ExitSuccess
}
