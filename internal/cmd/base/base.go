// Package base carries the pieces shared by all draft CLI commands: the
// logger, the UI, the filesystem, and flag set help rendering.
package base

import (
	"flag"
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"

	"github.com/draftin/draft-go/internal/config"
	"github.com/draftin/draft-go/pkg/draft"
)

// Command is embedded in every CLI command.
type Command struct {
	Log hclog.Logger
	UI  cli.Ui

	// FS is the filesystem commands read from and write to. The real OS
	// filesystem in production, a memory filesystem in tests.
	FS afero.Fs
}

// Client loads the CLI configuration from configPath (or its defaults) and
// builds an API client from it.
func (c *Command) Client(configPath string) (*draft.Client, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	clientCfg, err := cfg.ClientConfig(c.Log)
	if err != nil {
		return nil, err
	}

	return draft.NewClient(clientCfg)
}

// FlagSet wraps flag.FlagSet with help text rendering for command Help
// output.
type FlagSet struct {
	*flag.FlagSet
}

// NewFlagSet creates a new wrapped flag set.
func NewFlagSet(f *flag.FlagSet) *FlagSet {
	return &FlagSet{FlagSet: f}
}

// Help returns the flag set's options rendered as an indented block,
// suitable for appending to a command's Help output.
func (f *FlagSet) Help() string {
	var b strings.Builder
	b.WriteString("\n\nOptions:\n")

	f.VisitAll(func(fl *flag.Flag) {
		b.WriteString(fmt.Sprintf("\n  -%s\n      %s", fl.Name, fl.Usage))
		if fl.DefValue != "" && fl.DefValue != "false" {
			b.WriteString(fmt.Sprintf(" (default: %s)", fl.DefValue))
		}
		b.WriteString("\n")
	})

	return strings.TrimRight(b.String(), "\n")
}
