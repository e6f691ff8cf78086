package documents

import (
	"context"
	"flag"
	"fmt"

	"github.com/draftin/draft-go/internal/cmd/base"
)

type UpdateCommand struct {
	*base.Command

	flagConfig  string
	flagID      string
	flagName    string
	flagFile    string
	flagContent string
}

func (c *UpdateCommand) Synopsis() string {
	return "Update a document's content and name"
}

func (c *UpdateCommand) Help() string {
	return `Usage: draft update -id ID (-file FILE | -content TEXT)

  This command replaces a document's content with the given file or inline
  content, optionally renaming it.` +
		c.Flags().Help()
}

func (c *UpdateCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(
		flag.NewFlagSet("update", flag.ExitOnError))

	f.StringVar(
		&c.flagConfig, "config", "", "Path to the draft config file.",
	)
	f.StringVar(
		&c.flagID, "id", "", "(Required) ID of the document.",
	)
	f.StringVar(
		&c.flagName, "name", "", "New name for the document.",
	)
	f.StringVar(
		&c.flagFile, "file", "", "Read the new content from this file.",
	)
	f.StringVar(
		&c.flagContent, "content", "", "Inline document content.",
	)

	return f
}

func (c *UpdateCommand) Run(args []string) int {
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

	content, err := resolveContent(c.FS, c.flagFile, c.flagContent)
	if err != nil {
		ui.Error(err.Error())
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

	if err := doc.Update(ctx, content, c.flagName); err != nil {
		ui.Error(fmt.Sprintf("error updating document: %v", err))
		return 1
	}

	ui.Info(fmt.Sprintf("Updated document %s", doc.ObjectID()))

	return 0
}
