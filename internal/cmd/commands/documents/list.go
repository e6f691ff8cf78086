package documents

import (
	"context"
	"flag"
	"fmt"

	"github.com/draftin/draft-go/internal/cmd/base"
)

type ListCommand struct {
	*base.Command

	flagConfig string
}

func (c *ListCommand) Synopsis() string {
	return "List all documents in the account"
}

func (c *ListCommand) Help() string {
	return `Usage: draft list

  This command lists all documents in the account with their id, name,
  and last update time.` +
		c.Flags().Help()
}

func (c *ListCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(
		flag.NewFlagSet("list", flag.ExitOnError))

	f.StringVar(
		&c.flagConfig, "config", "", "Path to the draft config file.",
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

	client, err := c.Client(c.flagConfig)
	if err != nil {
		ui.Error(fmt.Sprintf("error creating client: %v", err))
		return 1
	}

	docs, err := client.Documents(context.Background())
	if err != nil {
		ui.Error(fmt.Sprintf("error listing documents: %v", err))
		return 1
	}

	if len(docs) == 0 {
		ui.Info("No documents")
		return 0
	}

	ui.Output(fmt.Sprintf("%-10s  %-40s  %s", "ID", "NAME", "UPDATED"))
	for _, doc := range docs {
		updated := ""
		if t, err := doc.Updated(); err == nil {
			updated = t.Format("2006-01-02 15:04")
		}
		ui.Output(fmt.Sprintf("%-10s  %-40s  %s", doc.ObjectID(), doc.Name, updated))
	}

	return 0
}
