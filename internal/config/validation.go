package config

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/sitecfg/internal/errors"
	"git.home.luguber.info/inful/sitecfg/internal/nav"
)

var searchProviders = map[string]bool{"local": true, "algolia": true, "none": true}

func validate(def *Definition) error {
	if len(def.Navigation.Groups) == 0 {
		return errors.ValidationFailed("navigation.groups", "at least one group is required")
	}
	seen := map[string]bool{}
	for i, g := range def.Navigation.Groups {
		field := fmt.Sprintf("navigation.groups[%d]", i)
		if g.Key == "" {
			return errors.ValidationFailed(field+".key", "group key is required")
		}
		if seen[g.Key] {
			return errors.ValidationFailed(field+".key", fmt.Sprintf("duplicate group key %q", g.Key))
		}
		seen[g.Key] = true
		if strings.TrimSpace(g.Text) == "" {
			return errors.ValidationFailed(field+".text", "group text is required")
		}
		if g.Nav == nav.NavLanding && g.Link == "" {
			return errors.ValidationFailed(field+".link", "landing groups need a link")
		}
		if err := validateEntries(field, g.Items); err != nil {
			return err
		}
	}

	if !searchProviders[def.Theme.Search.Provider] {
		return errors.ValidationFailed("theme.search.provider",
			fmt.Sprintf("unknown provider %q (valid: algolia, local, none)", def.Theme.Search.Provider))
	}
	if def.Navigation.CollapseAbove < 0 {
		return errors.ValidationFailed("navigation.collapse_above", "must not be negative")
	}
	for i, h := range def.Head {
		if strings.TrimSpace(h.Tag) == "" {
			return errors.ValidationFailed(fmt.Sprintf("head[%d].tag", i), "tag name is required")
		}
	}
	return nil
}

// validateEntries rejects entries that carry neither a link nor children.
// Entries without text are allowed: their label comes from the linked page.
func validateEntries(field string, entries []nav.Entry) error {
	for i, e := range entries {
		f := fmt.Sprintf("%s.items[%d]", field, i)
		if e.Link == "" && len(e.Items) == 0 {
			return errors.ValidationFailed(f, "entry needs a link or items")
		}
		if e.Link == "" && strings.TrimSpace(e.Text) == "" {
			return errors.ValidationFailed(f+".text", "entries without a link need text")
		}
		if err := validateEntries(f, e.Items); err != nil {
			return err
		}
	}
	return nil
}
