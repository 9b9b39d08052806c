package commands

import (
	"fmt"
	"path/filepath"

	"git.home.luguber.info/inful/sitecfg/internal/config"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force  bool   `help:"Overwrite existing site definition"`
	Output string `short:"o" name:"output" help:"Output directory for the generated site definition"`
}

func (i *InitCmd) Run(g *Global, root *CLI) error {
	// If the user specified an output directory, place the definition there as "site.yaml".
	if i.Output != "" {
		return RunInit(g, filepath.Join(i.Output, "site.yaml"), i.Force)
	}
	return RunInit(g, root.Config, i.Force)
}

func RunInit(g *Global, path string, force bool) error {
	out := g.stdout()
	_, _ = fmt.Fprintf(out, "Writing site definition to %s\n", path)
	if err := config.Init(path, force); err != nil {
		_, _ = fmt.Fprintln(out, "Initialization failed")
		return err
	}
	_, _ = fmt.Fprintln(out, "initialized successfully")
	return nil
}
