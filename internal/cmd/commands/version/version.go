package version

import (
	"github.com/draftin/draft-go/internal/cmd/base"
	"github.com/draftin/draft-go/internal/version"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Print the CLI version"
}

func (c *Command) Help() string {
	return `Usage: draft version`
}

func (c *Command) Run(args []string) int {
	c.UI.Output(version.Version)
	return 0
}
