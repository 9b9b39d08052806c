package config

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/sitecfg/internal/nav"
)

// normalize case-folds enumerations and trims whitespace before defaults run.
func normalize(def *Definition) error {
	format, err := ParseOutputFormat(string(def.Output.Format))
	if err != nil {
		return err
	}
	def.Output.Format = format

	def.Deploy.Base = strings.TrimSpace(def.Deploy.Base)
	def.Deploy.AbsPath = strings.TrimSpace(def.Deploy.AbsPath)
	def.Deploy.Favicon = strings.TrimSpace(def.Deploy.Favicon)
	def.Theme.Search.Provider = strings.ToLower(strings.TrimSpace(def.Theme.Search.Provider))

	for i := range def.Navigation.Groups {
		g := &def.Navigation.Groups[i]
		g.Key = strings.TrimSpace(g.Key)
		mode, err := nav.ParseNavMode(string(g.Nav))
		if err != nil {
			return fmt.Errorf("group %q: %w", g.Key, err)
		}
		g.Nav = mode
	}
	return nil
}
