package savepoints

import (
	"github.com/mitchellh/cli"

	"github.com/draftin/draft-go/internal/cmd/base"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Manage document savepoints"
}

func (c *Command) Help() string {
	return `Usage: draft savepoint <subcommand> [options] [args]

  This command groups subcommands for working with document savepoints:
  immutable snapshots of a document at a point in time.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}
