package commands

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/sitecfg/internal/config"
	"git.home.luguber.info/inful/sitecfg/internal/errors"
	"git.home.luguber.info/inful/sitecfg/internal/logfields"
	"git.home.luguber.info/inful/sitecfg/internal/pages"
	"git.home.luguber.info/inful/sitecfg/internal/site"
)

// CheckCmd implements the 'check' command.
type CheckCmd struct {
	Template string `name:"template" help:"Also verify a generated template (format from the file extension)"`
	Strict   bool   `name:"strict" help:"Fail when sidebar links point at missing pages"`
}

func (c *CheckCmd) Run(g *Global, root *CLI) error {
	b, err := buildSite(root.Config, "")
	if err != nil {
		return err
	}
	tree := b.Site.Tree()
	if err := tree.Validate(); err != nil {
		return err
	}

	if b.Pages != nil {
		if missing := pages.MissingLinks(tree, b.Pages); len(missing) > 0 {
			for _, l := range missing {
				slog.Warn("Sidebar link without a page", logfields.Link(l))
			}
			if c.Strict {
				return errors.MissingPages(missing)
			}
		}
	}

	if c.Template != "" {
		if err := checkTemplate(c.Template); err != nil {
			return err
		}
	}

	stats := tree.Stats()
	_, err = fmt.Fprintf(g.stdout(), "ok: %d groups, %d nav links, %d sidebar links\n",
		stats.Groups, stats.NavLinks, stats.SidebarLinks)
	return err
}

func checkTemplate(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.FileSystemError("read template", err).WithContext("path", path)
	}
	format := config.OutputJSON
	if ext := strings.ToLower(filepath.Ext(path)); ext == ".yaml" || ext == ".yml" {
		format = config.OutputYAML
	}
	s, err := site.Decode(data, format)
	if err != nil {
		return errors.ValidationFailed("template", err.Error()).WithContext("path", path)
	}
	if err := s.Tree().Validate(); err != nil {
		return err
	}
	slog.Debug("Template verified", logfields.Path(path), logfields.Format(string(format)))
	return nil
}
