package cmd

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"

	"github.com/draftin/draft-go/internal/cmd/base"
	"github.com/draftin/draft-go/internal/cmd/commands/documents"
	"github.com/draftin/draft-go/internal/cmd/commands/savepoints"
	ver "github.com/draftin/draft-go/internal/cmd/commands/version"
)

// Commands is the mapping of all available CLI commands.
var Commands map[string]cli.CommandFactory

func initCommands(log hclog.Logger, ui cli.Ui) {
	baseCommand := &base.Command{
		Log: log,
		UI:  ui,
		FS:  afero.NewOsFs(),
	}

	Commands = map[string]cli.CommandFactory{
		"list": func() (cli.Command, error) {
			return &documents.ListCommand{Command: baseCommand}, nil
		},
		"get": func() (cli.Command, error) {
			return &documents.GetCommand{Command: baseCommand}, nil
		},
		"create": func() (cli.Command, error) {
			return &documents.CreateCommand{Command: baseCommand}, nil
		},
		"update": func() (cli.Command, error) {
			return &documents.UpdateCommand{Command: baseCommand}, nil
		},
		"delete": func() (cli.Command, error) {
			return &documents.DeleteCommand{Command: baseCommand}, nil
		},
		"export": func() (cli.Command, error) {
			return &documents.ExportCommand{Command: baseCommand}, nil
		},
		"open": func() (cli.Command, error) {
			return &documents.OpenCommand{Command: baseCommand}, nil
		},
		"savepoint": func() (cli.Command, error) {
			return &savepoints.Command{Command: baseCommand}, nil
		},
		"savepoint list": func() (cli.Command, error) {
			return &savepoints.ListCommand{Command: baseCommand}, nil
		},
		"savepoint create": func() (cli.Command, error) {
			return &savepoints.CreateCommand{Command: baseCommand}, nil
		},
		"savepoint show": func() (cli.Command, error) {
			return &savepoints.ShowCommand{Command: baseCommand}, nil
		},
		"savepoint delete": func() (cli.Command, error) {
			return &savepoints.DeleteCommand{Command: baseCommand}, nil
		},
		"version": func() (cli.Command, error) {
			return &ver.Command{Command: baseCommand}, nil
		},
	}
}
