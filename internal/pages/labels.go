package pages

import (
	"log/slog"

	"git.home.luguber.info/inful/sitecfg/internal/logfields"
	"git.home.luguber.info/inful/sitecfg/internal/nav"
)

// FillLabels returns a copy of groups in which entries declared without text
// take the title of the page they link to. Entries whose page is unknown keep
// their link as label.
func FillLabels(groups []nav.Group, idx Index) []nav.Group {
	out := make([]nav.Group, len(groups))
	for i, g := range groups {
		g.Items = fillEntries(g.Items, idx)
		out[i] = g
	}
	return out
}

func fillEntries(entries []nav.Entry, idx Index) []nav.Entry {
	if entries == nil {
		return nil
	}
	out := make([]nav.Entry, len(entries))
	for i, e := range entries {
		if e.Text == "" && e.Link != "" {
			if p, ok := idx.Lookup(e.Link); ok {
				e.Text = p.Title
			} else {
				slog.Warn("No page for unlabelled entry, using link as label", logfields.Link(e.Link))
				e.Text = e.Link
			}
		}
		e.Items = fillEntries(e.Items, idx)
		out[i] = e
	}
	return out
}

// MissingLinks returns the internal sidebar links of tree that resolve to no
// page in idx, in sidebar order.
func MissingLinks(tree nav.Tree, idx Index) []string {
	var missing []string
	for _, link := range tree.SidebarLinks() {
		if IsExternal(link) {
			continue
		}
		if _, ok := idx.Lookup(link); !ok {
			missing = append(missing, link)
		}
	}
	return missing
}
