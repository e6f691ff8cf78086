package savepoints

import (
	"context"
	"flag"
	"fmt"

	"github.com/draftin/draft-go/internal/cmd/base"
)

type ListCommand struct {
	*base.Command

	flagConfig string
	flagDoc    string
}

func (c *ListCommand) Synopsis() string {
	return "List a document's savepoints"
}

func (c *ListCommand) Help() string {
	return `Usage: draft savepoint list -doc ID

  This command lists all savepoints of a document.` +
		c.Flags().Help()
}

func (c *ListCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(
		flag.NewFlagSet("savepoint list", flag.ExitOnError))

	f.StringVar(
		&c.flagConfig, "config", "", "Path to the draft config file.",
	)
	f.StringVar(
		&c.flagDoc, "doc", "", "(Required) ID of the document.",
	)

	return f
}

func (c *ListCommand) Run(args []string) int {
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

	savepoints, err := doc.Savepoints(ctx)
	if err != nil {
		ui.Error(fmt.Sprintf("error listing savepoints: %v", err))
		return 1
	}

	if len(savepoints) == 0 {
		ui.Info("No savepoints")
		return 0
	}

	ui.Output(fmt.Sprintf("%-10s  %s", "ID", "CREATED"))
	for _, sp := range savepoints {
		created := ""
		if t, err := sp.Created(); err == nil {
			created = t.Format("2006-01-02 15:04")
		}
		ui.Output(fmt.Sprintf("%-10s  %s", sp.ObjectID(), created))
	}

	return 0
}
