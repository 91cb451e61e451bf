package cmd

import "github.com/google/subcommands"

// Commands lists every subcommand of the sfo application, in the order they
// appear in the help.
var Commands = []subcommands.Command{
	subcommands.HelpCommand(),
	subcommands.FlagsCommand(),
	subcommands.CommandsCommand(),

	&createCmd{},
	&buyCmd{},
	&sellCmd{},
	&investCmd{},
	&strategyCmd{},

	&holdingCmd{},
	&valueCmd{},
	&costBasisCmd{},
	&performanceCmd{},
	&logCmd{},

	&commissionCmd{},
	&fetchCmd{},
	&exportCmd{},
	&importCmd{},
	&fmtCmd{},
	&topicCmd{},
}
