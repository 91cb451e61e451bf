package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/kvasir-fin/stockfolio/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the command tree for shell completion. Running with
// the COMP_LINE environment set makes Complete answer and exit.
func completion() {
	sub := make(map[string]*complete.Command, len(cmd.Commands))
	for _, c := range cmd.Commands {
		sub[c.Name()] = &complete.Command{Args: predict.Something}
	}
	c := &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"book-file":   predict.Files("*.jsonl"),
			"market-file": predict.Files("*.jsonl"),
		},
	}
	c.Complete("sfo")
}

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
