package savepoints

import (
	"context"
	"flag"
	"fmt"

	"github.com/draftin/draft-go/internal/cmd/base"
)

type ShowCommand struct {
	*base.Command

	flagConfig string
	flagID     string
}

func (c *ShowCommand) Synopsis() string {
	return "Show a savepoint"
}

func (c *ShowCommand) Help() string {
	return `Usage: draft savepoint show -id ID

  This command fetches a savepoint and prints its metadata and content.` +
		c.Flags().Help()
}

func (c *ShowCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(
		flag.NewFlagSet("savepoint show", flag.ExitOnError))

	f.StringVar(
		&c.flagConfig, "config", "", "Path to the draft config file.",
	)
	f.StringVar(
		&c.flagID, "id", "", "(Required) ID of the savepoint.",
	)

	return f
}

func (c *ShowCommand) Run(args []string) int {
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

	sp, err := client.Savepoint(context.Background(), c.flagID)
	if err != nil {
		ui.Error(fmt.Sprintf("error fetching savepoint: %v", err))
		return 1
	}

	ui.Output(fmt.Sprintf("ID:       %s", sp.ObjectID()))
	ui.Output(fmt.Sprintf("Document: %d", sp.DocumentID))
	if t, err := sp.Created(); err == nil {
		ui.Output(fmt.Sprintf("Created:  %s", t.Format("2006-01-02 15:04:05")))
	}

	// The service may include the snapshotted content; print it when it
	// does.
	if content, err := sp.Field("content"); err == nil {
		ui.Output("")
		ui.Output(fmt.Sprintf("%v", content))
	}

	return 0
}
