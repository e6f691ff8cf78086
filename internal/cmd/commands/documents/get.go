package documents

import (
	"context"
	"flag"
	"fmt"

	"github.com/spf13/afero"

	"github.com/draftin/draft-go/internal/cmd/base"
)

type GetCommand struct {
	*base.Command

	flagConfig string
	flagID     string
	flagOut    string
}

func (c *GetCommand) Synopsis() string {
	return "Print or save a document's content"
}

func (c *GetCommand) Help() string {
	return `Usage: draft get -id ID

  This command fetches a document and prints its content to stdout, or
  writes it to a file when -out is given.` +
		c.Flags().Help()
}

func (c *GetCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(
		flag.NewFlagSet("get", flag.ExitOnError))

	f.StringVar(
		&c.flagConfig, "config", "", "Path to the draft config file.",
	)
	f.StringVar(
		&c.flagID, "id", "", "(Required) ID of the document.",
	)
	f.StringVar(
		&c.flagOut, "out", "", "Write the document content to this file instead of stdout.",
	)

	return f
}

func (c *GetCommand) Run(args []string) int {
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

	doc, err := client.Document(context.Background(), c.flagID)
	if err != nil {
		ui.Error(fmt.Sprintf("error fetching document: %v", err))
		return 1
	}

	if c.flagOut == "" {
		ui.Output(doc.Content)
		return 0
	}

	if err := afero.WriteFile(c.FS, c.flagOut, []byte(doc.Content), 0o644); err != nil {
		ui.Error(fmt.Sprintf("error writing %s: %v", c.flagOut, err))
		return 1
	}
	ui.Info(fmt.Sprintf("Wrote document %s to %s", doc.ObjectID(), c.flagOut))

	return 0
}
