package savepoints

import (
	"context"
	"flag"
	"fmt"

	"github.com/draftin/draft-go/internal/cmd/base"
)

type CreateCommand struct {
	*base.Command

	flagConfig string
	flagDoc    string
}

func (c *CreateCommand) Synopsis() string {
	return "Snapshot a document's current state"
}

func (c *CreateCommand) Help() string {
	return `Usage: draft savepoint create -doc ID

  This command creates a new savepoint for a document, an immutable
  snapshot of its current content.` +
		c.Flags().Help()
}

func (c *CreateCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(
		flag.NewFlagSet("savepoint create", flag.ExitOnError))

	f.StringVar(
		&c.flagConfig, "config", "", "Path to the draft config file.",
	)
	f.StringVar(
		&c.flagDoc, "doc", "", "(Required) ID of the document.",
	)

	return f
}

func (c *CreateCommand) Run(args []string) int {
	ui := c.UI

	// Parse flags.
	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	// Validate flags.
	if c.flagDoc == "" {
		ui.Error("doc flag is required")
		return 1
	}

	client, err := c.Client(c.flagConfig)
	if err != nil {
		ui.Error(fmt.Sprintf("error creating client: %v", err))
		return 1
	}

	ctx := context.Background()
	doc, err := client.Document(ctx, c.flagDoc)
	if err != nil {
		ui.Error(fmt.Sprintf("error fetching document: %v", err))
		return 1
	}

	sp, err := doc.CreateSavepoint(ctx)
	if err != nil {
		ui.Error(fmt.Sprintf("error creating savepoint: %v", err))
		return 1
	}
	if sp == nil {
		ui.Warn("Document has no savepoint to create")
		return 0
	}

	ui.Info(fmt.Sprintf("Created savepoint %s for document %s", sp.ObjectID(), doc.ObjectID()))

	return 0
}
