package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/sitecfg/internal/errors"
	"git.home.luguber.info/inful/sitecfg/internal/nav"
	"git.home.luguber.info/inful/sitecfg/internal/placeholder"
)

// Definition is the site definition read from site.yaml.
type Definition struct {
	Title        string           `yaml:"title"`
	Description  string           `yaml:"description,omitempty"`
	Lang         string           `yaml:"lang,omitempty"`
	CleanURLs    bool             `yaml:"clean_urls,omitempty"`
	DocsDir      string           `yaml:"docs_dir,omitempty"`
	Placeholders placeholder.Set  `yaml:"placeholders,omitempty"`
	Deploy       DeployConfig     `yaml:"deploy,omitempty"`
	Output       OutputConfig     `yaml:"output,omitempty"`
	Theme        ThemeConfig      `yaml:"theme,omitempty"`
	Navigation   NavigationConfig `yaml:"navigation"`
	Head         []HeadTag        `yaml:"head,omitempty"`
	Footer       FooterConfig     `yaml:"footer,omitempty"`
	Markdown     MarkdownConfig   `yaml:"markdown,omitempty"`
	Versions     VersionsConfig   `yaml:"versions,omitempty"`
}

// DeployConfig holds concrete deployment values. Empty fields are emitted as
// placeholder tokens and filled in by the deploying tool.
type DeployConfig struct {
	Base    string `yaml:"base,omitempty"`
	AbsPath string `yaml:"abspath,omitempty"`
	Favicon string `yaml:"favicon,omitempty"`
}

// OutputConfig controls where the generated template is written.
type OutputConfig struct {
	Path   string       `yaml:"path,omitempty"`
	Format OutputFormat `yaml:"format,omitempty"`
}

// ThemeConfig carries theme options passed through to the generator.
type ThemeConfig struct {
	Logo        string         `yaml:"logo,omitempty"`
	SiteTitle   string         `yaml:"site_title,omitempty"`
	Search      SearchConfig   `yaml:"search,omitempty"`
	SocialLinks []SocialLink   `yaml:"social_links,omitempty"`
	Outline     []int          `yaml:"outline,omitempty"`
	EditLink    *EditLink      `yaml:"edit_link,omitempty"`
	Params      map[string]any `yaml:"params,omitempty"`
}

// SearchConfig selects the search provider.
type SearchConfig struct {
	Provider string         `yaml:"provider,omitempty"`
	Options  map[string]any `yaml:"options,omitempty"`
}

// SocialLink is an icon link shown in the navigation bar.
type SocialLink struct {
	Icon string `yaml:"icon" json:"icon"`
	Link string `yaml:"link" json:"link"`
}

// EditLink configures the "edit this page" link.
type EditLink struct {
	Pattern string `yaml:"pattern"`
	Text    string `yaml:"text,omitempty"`
}

// NavigationConfig declares the content groups shared by the navigation bar
// and the sidebar.
type NavigationConfig struct {
	Groups        []nav.Group `yaml:"groups"`
	CollapseAbove int         `yaml:"collapse_above,omitempty"`
}

// HeadTag is an extra tag injected into every page head.
type HeadTag struct {
	Tag     string            `yaml:"tag"`
	Attrs   map[string]string `yaml:"attrs,omitempty"`
	Content string            `yaml:"content,omitempty"`
}

// FooterConfig describes the page footer. Message is raw HTML; base-relative
// asset references in it are prefixed with the deployment base path.
type FooterConfig struct {
	Message   string `yaml:"message,omitempty"`
	Logo      string `yaml:"logo,omitempty"`
	LogoAlt   string `yaml:"logo_alt,omitempty"`
	LogoLink  string `yaml:"logo_link,omitempty"`
	Copyright string `yaml:"copyright,omitempty"`
}

// MarkdownConfig toggles markdown rendering features.
type MarkdownConfig struct {
	Math        bool   `yaml:"math,omitempty"`
	LineNumbers bool   `yaml:"line_numbers,omitempty"`
	LightTheme  string `yaml:"light_theme,omitempty"`
	DarkTheme   string `yaml:"dark_theme,omitempty"`
}

// VersionsConfig locates the cross-version assets.
type VersionsConfig struct {
	Disabled bool   `yaml:"disabled,omitempty"`
	Asset    string `yaml:"asset,omitempty"`
	SiteInfo string `yaml:"siteinfo,omitempty"`
}

// Load reads, expands, normalizes and validates a site definition. Env files
// next to the definition are applied before expansion.
func Load(path string) (*Definition, error) {
	loadEnvFiles(filepath.Dir(path))

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, errors.ConfigNotFound(path)
	}

	data, err := os.ReadFile(path) // #nosec G304 -- path is user supplied by design
	if err != nil {
		return nil, errors.FileSystemError("read site definition", err).WithContext("path", path)
	}

	def, err := Parse(data)
	if err != nil {
		return nil, errors.ConfigInvalid(path, err)
	}
	return def, nil
}

// Parse expands environment variables in data and decodes it as a site
// definition, applying normalization, defaults and validation.
func Parse(data []byte) (*Definition, error) {
	expanded := os.ExpandEnv(string(data))

	var def Definition
	if err := yaml.Unmarshal([]byte(expanded), &def); err != nil {
		return nil, fmt.Errorf("unmarshal site definition: %w", err)
	}
	if err := normalize(&def); err != nil {
		return nil, fmt.Errorf("normalize: %w", err)
	}
	applyDefaults(&def)
	if err := validate(&def); err != nil {
		return nil, err
	}
	return &def, nil
}
