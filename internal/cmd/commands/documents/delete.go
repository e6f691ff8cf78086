package documents

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
	return "Delete a document"
}

func (c *DeleteCommand) Help() string {
	return `Usage: draft delete -id ID

  This command permanently deletes a document from the service.` +
		c.Flags().Help()
}

func (c *DeleteCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(
		flag.NewFlagSet("delete", flag.ExitOnError))

	f.StringVar(
		&c.flagConfig, "config", "", "Path to the draft config file.",
	)
	f.StringVar(
		&c.flagID, "id", "", "(Required) ID of the document.",
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
	doc, err := client.Document(ctx, c.flagID)
	if err != nil {
		ui.Error(fmt.Sprintf("error fetching document: %v", err))
		return 1
	}

	if err := doc.Delete(ctx); err != nil {
		ui.Error(fmt.Sprintf("error deleting document: %v", err))
		return 1
	}

	ui.Info(fmt.Sprintf("Deleted document %s", c.flagID))

	return 0
}
