package commands

import (
	"fmt"

	"github.com/himanshoe/chartytools/internal/config"
	ferrors "github.com/himanshoe/chartytools/internal/foundation/errors"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force bool `help:"Overwrite existing configuration file"`
}

func (i *InitCmd) Run(g *Global, root *CLI) error {
	path := root.Config
	if path == "" {
		path = config.DefaultPath
	}

	out := g.out()
	_, _ = fmt.Fprintf(out, "Writing configuration to %s\n", path)
	if err := config.Init(path, i.Force); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryConfig, "initialization failed").
			WithContext("path", path).
			Build()
	}
	_, _ = fmt.Fprintln(out, "Initialized successfully")
	return nil
}
