package documents

import (
	"context"
	"flag"
	"fmt"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"github.com/iancoleman/strcase"
	"github.com/spf13/afero"

	"github.com/draftin/draft-go/internal/cmd/base"
)

type ExportCommand struct {
	*base.Command

	flagConfig string
	flagDir    string
}

func (c *ExportCommand) Synopsis() string {
	return "Export every document to markdown files"
}

func (c *ExportCommand) Help() string {
	return `Usage: draft export -dir DIR

  This command writes every document in the account to a markdown file in
  the given directory, named <kebab-cased-name>-<id>.md. Failures on
  individual documents are collected and reported together; the remaining
  documents are still exported.` +
		c.Flags().Help()
}

func (c *ExportCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(
		flag.NewFlagSet("export", flag.ExitOnError))

	f.StringVar(
		&c.flagConfig, "config", "", "Path to the draft config file.",
	)
	f.StringVar(
		&c.flagDir, "dir", "", "(Required) Directory to export into.",
	)

	return f
}

// exportFileName builds a stable filename for a document. Documents
// without a name fall back to "untitled".
func exportFileName(name, id string) string {
	slug := strcase.ToKebab(name)
	if slug == "" {
		slug = "untitled"
	}
	return fmt.Sprintf("%s-%s.md", slug, id)
}

func (c *ExportCommand) Run(args []string) int {
	ui := c.UI

	// Parse flags.
	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	// Validate flags.
	if c.flagDir == "" {
		ui.Error("dir flag is required")
		return 1
	}

	client, err := c.Client(c.flagConfig)
	if err != nil {
		ui.Error(fmt.Sprintf("error creating client: %v", err))
		return 1
	}

	ctx := context.Background()
	docs, err := client.Documents(ctx)
	if err != nil {
		ui.Error(fmt.Sprintf("error listing documents: %v", err))
		return 1
	}

	if err := c.FS.MkdirAll(c.flagDir, 0o755); err != nil {
		ui.Error(fmt.Sprintf("error creating %s: %v", c.flagDir, err))
		return 1
	}

	var result *multierror.Error
	var exported int
	for _, doc := range docs {
		// The list response is not guaranteed to carry full content;
		// fetch each document before writing it out.
		full, err := client.Document(ctx, doc.ObjectID())
		if err != nil {
			result = multierror.Append(result,
				fmt.Errorf("document %s: %w", doc.ObjectID(), err))
			continue
		}

		path := filepath.Join(c.flagDir, exportFileName(full.Name, full.ObjectID()))
		if err := afero.WriteFile(c.FS, path, []byte(full.Content), 0o644); err != nil {
			result = multierror.Append(result,
				fmt.Errorf("document %s: %w", doc.ObjectID(), err))
			continue
		}
		exported++
	}

	ui.Info(fmt.Sprintf("Exported %d of %d documents to %s", exported, len(docs), c.flagDir))
	if err := result.ErrorOrNil(); err != nil {
		ui.Error(fmt.Sprintf("some documents failed to export: %v", err))
		return 1
	}

	return 0
}
