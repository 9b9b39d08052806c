package commands

import (
	"log/slog"

	"git.home.luguber.info/inful/sitecfg/internal/errors"
	"git.home.luguber.info/inful/sitecfg/internal/logfields"
	"git.home.luguber.info/inful/sitecfg/internal/versioning"
)

// VersionsCmd implements the 'versions' command.
type VersionsCmd struct {
	Repo        string `name:"repo" help:"Git repository to read tags from" default:"."`
	Output      string `short:"o" help:"Output path, '-' for stdout" default:"versions.js"`
	JSON        bool   `name:"json" help:"Write the index as JSON instead of JavaScript"`
	Max         int    `name:"max" help:"Maximum number of tagged versions (0 keeps all)"`
	Prereleases bool   `name:"prereleases" help:"Include prerelease tags"`
}

func (v *VersionsCmd) Run(g *Global, _ *CLI) error {
	found, err := versioning.Discover(v.Repo, versioning.Options{MaxVersions: v.Max, Prereleases: v.Prereleases})
	if err != nil {
		return err
	}
	idx := versioning.BuildIndex(found)

	var data []byte
	if v.JSON {
		data, err = idx.JSON()
	} else {
		data, err = idx.Script()
	}
	if err != nil {
		return errors.InternalError("render version index", err)
	}
	if err := writeOutput(g, v.Output, data); err != nil {
		return err
	}
	slog.Info("Wrote version index",
		logfields.Path(v.Output),
		logfields.Repository(v.Repo),
		logfields.Version(idx.Newest),
		logfields.Count(len(found)))
	return nil
}
