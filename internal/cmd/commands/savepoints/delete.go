package savepoints

import (
	"context"
	"flag"
	"fmt"

	"github.com/draftin/draft-go/internal/cmd/base"
)

type DeleteCommand struct {
	*base.Command

	flagConfig string
	flagID     string
}

func (c *DeleteCommand) Synopsis() string {
	return "Delete a savepoint"
}

func (c *DeleteCommand) Help() string {
	return `Usage: draft savepoint delete -id ID

  This command permanently deletes a savepoint from the service. The
  document it belongs to is not touched.` +
		c.Flags().Help()
}

func (c *DeleteCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(
		flag.NewFlagSet("savepoint delete", flag.ExitOnError))

	f.StringVar(
		&c.flagConfig, "config", "", "Path to the draft config file.",
	)
	f.StringVar(
		&c.flagID, "id", "", "(Required) ID of the savepoint.",
	)

	return f
}

func (c *DeleteCommand) Run(args []string) int {
	ui := c.UI

	// Parse flags.
	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	// Validate flags.
	if c.flagID == "" {
		ui.Error("id flag is required")
		return 1
	}

	client, err := c.Client(c.flagConfig)
	if err != nil {
		ui.Error(fmt.Sprintf("error creating client: %v", err))
		return 1
	}

	ctx := context.Background()
	sp, err := client.Savepoint(ctx, c.flagID)
	if err != nil {
		ui.Error(fmt.Sprintf("error fetching savepoint: %v", err))
		return 1
	}

	if err := sp.Delete(ctx); err != nil {
		ui.Error(fmt.Sprintf("error deleting savepoint: %v", err))
		return 1
	}

	ui.Info(fmt.Sprintf("Deleted savepoint %s", c.flagID))

	return 0
}
