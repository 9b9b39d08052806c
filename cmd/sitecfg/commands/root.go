package commands

import (
	"fmt"

	"git.home.luguber.info/inful/sitecfg/internal/basepath"
)

// RootCmd implements the 'root' command.
type RootCmd struct {
	Base string `arg:"" help:"Deployed base path, e.g. /project/v1.2.3/"`
}

func (r *RootCmd) Run(g *Global, _ *CLI) error {
	_, err := fmt.Fprintln(g.stdout(), basepath.ResolveRoot(r.Base))
	return err
}
