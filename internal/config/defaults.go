package config

import (
	"git.home.luguber.info/inful/sitecfg/internal/nav"
)

// Default values applied after normalization.
const (
	DefaultTitle          = "Documentation"
	DefaultLang           = "en-US"
	DefaultOutputPath     = "config.json"
	DefaultDocsDir        = "docs/src"
	DefaultVersionsAsset  = "versions.js"
	DefaultSiteInfoAsset  = "siteinfo.js"
	DefaultSearchProvider = "local"
)

func applyDefaults(def *Definition) {
	if def.Title == "" {
		def.Title = DefaultTitle
	}
	if def.Lang == "" {
		def.Lang = DefaultLang
	}
	if def.DocsDir == "" {
		def.DocsDir = DefaultDocsDir
	}
	def.Placeholders = def.Placeholders.WithDefaults()

	if def.Output.Format == "" {
		def.Output.Format = OutputJSON
	}
	if def.Output.Path == "" {
		def.Output.Path = DefaultOutputPath
		if def.Output.Format == OutputYAML {
			def.Output.Path = "config.yaml"
		}
	}

	if def.Theme.Search.Provider == "" {
		def.Theme.Search.Provider = DefaultSearchProvider
	}
	if def.Versions.Asset == "" {
		def.Versions.Asset = DefaultVersionsAsset
	}
	if def.Versions.SiteInfo == "" {
		def.Versions.SiteInfo = DefaultSiteInfoAsset
	}

	for i := range def.Navigation.Groups {
		if def.Navigation.Groups[i].Nav == "" {
			def.Navigation.Groups[i].Nav = nav.NavFlatten
		}
	}
}
