package commands

import (
	"log/slog"
	"os"

	"git.home.luguber.info/inful/sitecfg/internal/config"
	"git.home.luguber.info/inful/sitecfg/internal/logfields"
	"git.home.luguber.info/inful/sitecfg/internal/pages"
	"git.home.luguber.info/inful/sitecfg/internal/site"
)

// siteBuild is the outcome of loading a definition and assembling its site.
type siteBuild struct {
	Def   *config.Definition
	Site  site.Site
	Pages pages.Index // nil when the docs directory does not exist
}

// buildSite loads the definition at configPath and assembles the site. A
// non-empty base replaces the deployment base of the definition. When the
// docs directory exists, unlabelled entries take their page titles.
func buildSite(configPath, base string) (*siteBuild, error) {
	def, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if base != "" {
		def.Deploy.Base = base
	}

	out := &siteBuild{Def: def}
	docsDir := relativeToConfig(configPath, def.DocsDir)
	if info, statErr := os.Stat(docsDir); statErr == nil && info.IsDir() {
		idx, err := pages.Scan(docsDir)
		if err != nil {
			return nil, err
		}
		slog.Debug("Indexed docs pages", logfields.Path(docsDir), logfields.Count(len(idx)))
		def.Navigation.Groups = pages.FillLabels(def.Navigation.Groups, idx)
		out.Pages = idx
	} else {
		slog.Debug("Docs directory not found, labels taken from the definition", logfields.Path(docsDir))
	}

	s, err := site.Build(def)
	if err != nil {
		return nil, err
	}
	out.Site = s
	return out, nil
}
