package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/sitecfg/internal/errors"
	"git.home.luguber.info/inful/sitecfg/internal/nav"
)

// Example returns the example site definition written by Init: the five
// content groups of a modeling framework's documentation.
func Example() Definition {
	collapsed := true
	return Definition{
		Title:       "ModelKit",
		Description: "Documentation for ModelKit, a framework for scientific modeling",
		Lang:        DefaultLang,
		CleanURLs:   true,
		DocsDir:     DefaultDocsDir,
		Output:      OutputConfig{Path: DefaultOutputPath, Format: OutputJSON},
		Theme: ThemeConfig{
			Logo:        "logo.svg",
			Search:      SearchConfig{Provider: DefaultSearchProvider},
			SocialLinks: []SocialLink{{Icon: "github", Link: "https://github.com/example/ModelKit"}},
			Outline:     []int{2, 3},
			EditLink:    &EditLink{Pattern: "https://github.com/example/ModelKit/edit/main/docs/src/:path", Text: "Edit this page"},
		},
		Navigation: NavigationConfig{
			CollapseAbove: 20,
			Groups: []nav.Group{
				{Key: "home", Text: "Home", Link: "/"},
				{Key: "concepts", Text: "Concepts", Items: []nav.Entry{
					{Text: "Getting started", Link: "/concepts/getting_started"},
					{Text: "Model structure", Link: "/concepts/model_structure"},
					{Text: "Solvers", Items: []nav.Entry{
						{Text: "Time stepping", Link: "/concepts/solvers/time_stepping"},
						{Text: "Convergence", Link: "/concepts/solvers/convergence"},
					}},
				}},
				{Key: "settings", Text: "Settings", Link: "/settings/", Items: []nav.Entry{
					{Text: "Simulation", Link: "/settings/simulation"},
					{Text: "Output", Link: "/settings/output"},
				}},
				{Key: "api", Text: "API", Link: "/api/", Nav: nav.NavLanding, Collapsed: &collapsed, Items: []nav.Entry{
					{Text: "Core", Link: "/api/core"},
					{Text: "IO", Link: "/api/io"},
				}},
				{Key: "developer", Text: "Developer", Items: []nav.Entry{
					{Text: "Contributing", Link: "/developer/contributing"},
					{Text: "Release process", Link: "/developer/release"},
				}},
				{Key: "project", Text: "Project", Items: []nav.Entry{
					{Text: "Changelog", Link: "/project/changelog"},
					{Text: "Citing", Link: "/project/citing"},
				}},
			},
		},
		Footer: FooterConfig{
			Message:   `Made with <a href="https://documenter.juliadocs.org/" target="_blank">Documenter</a>`,
			Logo:      "logo.svg",
			LogoAlt:   "ModelKit",
			Copyright: "© ModelKit contributors",
		},
		Markdown: MarkdownConfig{Math: true, LineNumbers: false},
	}
}

// Init writes the example definition to path.
func Init(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return errors.ConfigExists(path)
	}
	example := Example()
	data, err := yaml.Marshal(&example)
	if err != nil {
		return errors.InternalError("marshal example definition", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return errors.FileSystemError("write site definition", err).WithContext("path", path)
	}
	return nil
}
