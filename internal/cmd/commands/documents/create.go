package documents

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/draftin/draft-go/internal/cmd/base"
)

type CreateCommand struct {
	*base.Command

	flagConfig  string
	flagName    string
	flagFile    string
	flagContent string
}

func (c *CreateCommand) Synopsis() string {
	return "Create a new document"
}

func (c *CreateCommand) Help() string {
	return `Usage: draft create (-file FILE | -content TEXT)

  This command creates a new document from a file or from inline content.
  When no name is given, a unique placeholder name is generated.` +
		c.Flags().Help()
}

func (c *CreateCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(
		flag.NewFlagSet("create", flag.ExitOnError))

	f.StringVar(
		&c.flagConfig, "config", "", "Path to the draft config file.",
	)
	f.StringVar(
		&c.flagName, "name", "", "Name of the new document.",
	)
	f.StringVar(
		&c.flagFile, "file", "", "Read the document content from this file.",
	)
	f.StringVar(
		&c.flagContent, "content", "", "Inline document content.",
	)

	return f
}

// resolveContent returns the content from either the -file or -content
// flag, exactly one of which must be set.
func resolveContent(fs afero.Fs, file, content string) (string, error) {
	switch {
	case file != "" && content != "":
		return "", fmt.Errorf("only one of -file and -content may be given")
	case file != "":
		data, err := afero.ReadFile(fs, file)
		if err != nil {
			return "", fmt.Errorf("error reading %s: %w", file, err)
		}
		return string(data), nil
	case content != "":
		return content, nil
	default:
		return "", fmt.Errorf("one of -file or -content is required")
	}
}

func (c *CreateCommand) Run(args []string) int {
	ui := c.UI

	// Parse flags.
	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	content, err := resolveContent(c.FS, c.flagFile, c.flagContent)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	name := c.flagName
	if name == "" {
		name = fmt.Sprintf("Untitled-%s", uuid.NewString()[:8])
	}

	client, err := c.Client(c.flagConfig)
	if err != nil {
		ui.Error(fmt.Sprintf("error creating client: %v", err))
		return 1
	}

	doc, err := client.CreateDocument(context.Background(), content, name)
	if err != nil {
		ui.Error(fmt.Sprintf("error creating document: %v", err))
		return 1
	}

	ui.Info(fmt.Sprintf("Created document %s (%s)", doc.ObjectID(), doc.Name))

	return 0
}
