// Package site assembles the immutable configuration value consumed by the
// static-site generator: navigation, sidebar, head tags, footer and theme
// options. A Site is built once per invocation and never mutated afterwards.
package site

import (
	"git.home.luguber.info/inful/sitecfg/internal/basepath"
	"git.home.luguber.info/inful/sitecfg/internal/config"
	"git.home.luguber.info/inful/sitecfg/internal/nav"
	"git.home.luguber.info/inful/sitecfg/internal/placeholder"
)

// Site is the phase-1 template. Values that depend on placeholder tokens are
// either the token itself or a derived expression listed in Deferred.
type Site struct {
	Base          string                 `json:"base" yaml:"base"`
	DeployAbsPath string                 `json:"deployAbsPath" yaml:"deployAbsPath"`
	Title         string                 `json:"title" yaml:"title"`
	Description   string                 `json:"description,omitempty" yaml:"description,omitempty"`
	Lang          string                 `json:"lang" yaml:"lang"`
	CleanURLs     bool                   `json:"cleanUrls" yaml:"cleanUrls"`
	Head          []HeadTag              `json:"head" yaml:"head"`
	Markdown      Markdown               `json:"markdown" yaml:"markdown"`
	ThemeConfig   Theme                  `json:"themeConfig" yaml:"themeConfig"`
	Deferred      []placeholder.Deferred `json:"deferred,omitempty" yaml:"deferred,omitempty"`
}

// Theme holds the theme layer's options.
type Theme struct {
	Logo        string              `json:"logo,omitempty" yaml:"logo,omitempty"`
	SiteTitle   string              `json:"siteTitle,omitempty" yaml:"siteTitle,omitempty"`
	Nav         []nav.NavItem       `json:"nav" yaml:"nav"`
	Sidebar     []nav.SidebarItem   `json:"sidebar" yaml:"sidebar"`
	Search      Search              `json:"search" yaml:"search"`
	SocialLinks []config.SocialLink `json:"socialLinks,omitempty" yaml:"socialLinks,omitempty"`
	Outline     []int               `json:"outline,omitempty" yaml:"outline,omitempty"`
	EditLink    *EditLink           `json:"editLink,omitempty" yaml:"editLink,omitempty"`
	Footer      Footer              `json:"footer" yaml:"footer"`
	Params      map[string]any      `json:"params,omitempty" yaml:"params,omitempty"`
}

// Search selects the search provider.
type Search struct {
	Provider string         `json:"provider" yaml:"provider"`
	Options  map[string]any `json:"options,omitempty" yaml:"options,omitempty"`
}

// EditLink configures the "edit this page" link.
type EditLink struct {
	Pattern string `json:"pattern" yaml:"pattern"`
	Text    string `json:"text,omitempty" yaml:"text,omitempty"`
}

// Footer is rendered verbatim by the theme; Message is raw HTML that the
// generator does not prefix with the base path.
type Footer struct {
	Message   string `json:"message,omitempty" yaml:"message,omitempty"`
	Copyright string `json:"copyright,omitempty" yaml:"copyright,omitempty"`
}

// Markdown carries markdown rendering options.
type Markdown struct {
	Math        bool          `json:"math" yaml:"math"`
	LineNumbers bool          `json:"lineNumbers" yaml:"lineNumbers"`
	Theme       MarkdownTheme `json:"theme,omitempty" yaml:"theme,omitempty"`
}

// MarkdownTheme names the code highlighting themes.
type MarkdownTheme struct {
	Light string `json:"light,omitempty" yaml:"light,omitempty"`
	Dark  string `json:"dark,omitempty" yaml:"dark,omitempty"`
}

// Build assembles the Site for def. def.Navigation.Groups are used as given;
// label filling from page titles happens before Build.
func Build(def *config.Definition) (Site, error) {
	tokens := def.Placeholders.WithDefaults()
	base := placeholder.Resolve(def.Deploy.Base, tokens.Base)
	if !base.IsToken() {
		base = placeholder.Literal(basepath.Normalize(base.String()))
	}
	favicon := placeholder.Resolve(def.Deploy.Favicon, tokens.Favicon)

	tree := nav.Build(def.Navigation.Groups, nav.Options{CollapseAbove: def.Navigation.CollapseAbove})

	footer, err := buildFooter(def.Footer, base.String())
	if err != nil {
		return Site{}, err
	}

	head, deferred := buildHead(def, base, favicon)

	s := Site{
		Base:          base.String(),
		DeployAbsPath: placeholder.Resolve(def.Deploy.AbsPath, tokens.AbsPath).String(),
		Title:         def.Title,
		Description:   def.Description,
		Lang:          def.Lang,
		CleanURLs:     def.CleanURLs,
		Head:          head,
		Markdown: Markdown{
			Math:        def.Markdown.Math,
			LineNumbers: def.Markdown.LineNumbers,
			Theme:       MarkdownTheme{Light: def.Markdown.LightTheme, Dark: def.Markdown.DarkTheme},
		},
		ThemeConfig: Theme{
			Logo:        def.Theme.Logo,
			SiteTitle:   def.Theme.SiteTitle,
			Nav:         tree.Nav,
			Sidebar:     tree.Sidebar,
			Search:      Search{Provider: def.Theme.Search.Provider, Options: copyMap(def.Theme.Search.Options)},
			SocialLinks: append([]config.SocialLink(nil), def.Theme.SocialLinks...),
			Outline:     append([]int(nil), def.Theme.Outline...),
			Footer:      footer,
			Params:      copyMap(def.Theme.Params),
		},
		Deferred: deferred,
	}
	if def.Theme.EditLink != nil {
		s.ThemeConfig.EditLink = &EditLink{Pattern: def.Theme.EditLink.Pattern, Text: def.Theme.EditLink.Text}
	}
	return s, nil
}

// Tree returns the navigation presentations carried by s.
func (s Site) Tree() nav.Tree {
	return nav.Tree{Nav: s.ThemeConfig.Nav, Sidebar: s.ThemeConfig.Sidebar}
}

func copyMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
