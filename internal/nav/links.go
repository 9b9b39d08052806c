package nav

import (
	"git.home.luguber.info/inful/sitecfg/internal/errors"
)

// NavLinks returns the leaf links of the navigation bar in display order.
func (t Tree) NavLinks() []string {
	var out []string
	for _, item := range t.Nav {
		if len(item.Items) == 0 {
			if item.Link != "" {
				out = append(out, item.Link)
			}
			continue
		}
		for _, l := range item.Items {
			out = append(out, l.Link)
		}
	}
	return out
}

// SidebarLinks returns every link in the sidebar, landing links included, in
// depth-first order without duplicates.
func (t Tree) SidebarLinks() []string {
	seen := map[string]bool{}
	var out []string
	var walk func([]SidebarItem)
	walk = func(items []SidebarItem) {
		for _, it := range items {
			if it.Link != "" && !seen[it.Link] {
				seen[it.Link] = true
				out = append(out, it.Link)
			}
			walk(it.Items)
		}
	}
	walk(t.Sidebar)
	return out
}

// Validate checks that every navigation-bar link also appears in the sidebar
// and that no navigation item carries an empty leaf link.
func (t Tree) Validate() error {
	inSidebar := map[string]bool{}
	for _, l := range t.SidebarLinks() {
		inSidebar[l] = true
	}
	var missing []string
	for _, l := range t.NavLinks() {
		if !inSidebar[l] {
			missing = append(missing, l)
		}
	}
	if len(missing) > 0 {
		return errors.NavigationInvariant("nav links must appear in the sidebar", missing)
	}

	var empty []string
	for _, item := range t.Nav {
		for _, l := range item.Items {
			if l.Link == "" {
				empty = append(empty, item.Text+"/"+l.Text)
			}
		}
	}
	if len(empty) > 0 {
		return errors.NavigationInvariant("nav leaves must have a link", empty)
	}
	return nil
}

// Stats summarizes a tree.
type Stats struct {
	Groups       int
	NavLinks     int
	SidebarLinks int
	SidebarDepth int
}

// Stats returns counts describing the tree.
func (t Tree) Stats() Stats {
	return Stats{
		Groups:       len(t.Sidebar),
		NavLinks:     len(t.NavLinks()),
		SidebarLinks: len(t.SidebarLinks()),
		SidebarDepth: depth(t.Sidebar),
	}
}

func depth(items []SidebarItem) int {
	d := 0
	for _, it := range items {
		if c := 1 + depth(it.Items); c > d {
			d = c
		}
	}
	return d
}
