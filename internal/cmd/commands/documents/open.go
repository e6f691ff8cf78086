package documents

import (
	"flag"
	"fmt"
	"net/url"

	"github.com/pkg/browser"

	"github.com/draftin/draft-go/internal/cmd/base"
)

type OpenCommand struct {
	*base.Command

	flagConfig string
	flagID     string
}

func (c *OpenCommand) Synopsis() string {
	return "Open a document in the browser"
}

func (c *OpenCommand) Help() string {
	return `Usage: draft open -id ID

  This command opens the document's web page in the default browser.` +
		c.Flags().Help()
}

func (c *OpenCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(
		flag.NewFlagSet("open", flag.ExitOnError))

	f.StringVar(
		&c.flagConfig, "config", "", "Path to the draft config file.",
	)
	f.StringVar(
		&c.flagID, "id", "", "(Required) ID of the document.",
	)

	return f
}

// webURL derives the document's web page URL from the API base URL: the
// service serves documents on the same host, outside the API root.
func webURL(baseURL, id string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base URL: %w", err)
	}
	return fmt.Sprintf("%s://%s/documents/%s", u.Scheme, u.Host, url.PathEscape(id)), nil
}

func (c *OpenCommand) Run(args []string) int {
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

	target, err := webURL(client.BaseURL(), c.flagID)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	if err := browser.OpenURL(target); err != nil {
		ui.Error(fmt.Sprintf("error opening browser: %v", err))
		return 1
	}

	ui.Info(fmt.Sprintf("Opened %s", target))

	return 0
}
