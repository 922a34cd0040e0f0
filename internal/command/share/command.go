package share

import (
	"github.com/urfave/cli/v2"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:  "share",
		Usage: "Manage share grants",
		Subcommands: []*cli.Command{
			createCommand(),
			listCommand(),
			revokeCommand(),
			resolveCommand(),
		},
	}
}
