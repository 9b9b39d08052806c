package nav

// Build assembles the navigation bar and the sidebar from groups. Order is
// preserved exactly as declared. Build never fails: a landing group without a
// link falls back to flattening and a group without links is left out of the
// navigation bar.
func Build(groups []Group, opts Options) Tree {
	t := Tree{
		Nav:     make([]NavItem, 0, len(groups)),
		Sidebar: make([]SidebarItem, 0, len(groups)),
	}
	for _, g := range groups {
		if item, ok := navItem(g); ok {
			t.Nav = append(t.Nav, item)
		}
		t.Sidebar = append(t.Sidebar, sidebarGroup(g, opts))
	}
	return t
}

func navItem(g Group) (NavItem, bool) {
	mode := g.Nav
	if mode == "" {
		mode = NavFlatten
	}
	switch mode {
	case NavOmit:
		return NavItem{}, false
	case NavLanding:
		if g.Link != "" {
			return NavItem{Text: g.Text, Link: g.Link}, true
		}
	}

	if len(g.Items) == 0 {
		if g.Link == "" {
			return NavItem{}, false
		}
		return NavItem{Text: g.Text, Link: g.Link}, true
	}

	var links []NavLink
	if g.Link != "" {
		links = append(links, NavLink{Text: g.Text, Link: g.Link})
	}
	links = appendLeaves(links, g.Items)
	if len(links) == 0 {
		return NavItem{}, false
	}
	return NavItem{Text: g.Text, Items: links}, true
}

func appendLeaves(dst []NavLink, entries []Entry) []NavLink {
	for _, e := range entries {
		if e.Link != "" {
			dst = append(dst, NavLink{Text: e.Text, Link: e.Link})
			continue
		}
		dst = appendLeaves(dst, e.Items)
	}
	return dst
}

func sidebarGroup(g Group, opts Options) SidebarItem {
	items := sidebarItems(g.Items, opts)
	return SidebarItem{
		Text:      g.Text,
		Link:      g.Link,
		Items:     items,
		Collapsed: collapsed(g.Collapsed, items, opts),
	}
}

func sidebarItems(entries []Entry, opts Options) []SidebarItem {
	if len(entries) == 0 {
		return nil
	}
	out := make([]SidebarItem, 0, len(entries))
	for _, e := range entries {
		items := sidebarItems(e.Items, opts)
		out = append(out, SidebarItem{
			Text:      e.Text,
			Link:      e.Link,
			Items:     items,
			Collapsed: collapsed(e.Collapsed, items, opts),
		})
	}
	return out
}

func collapsed(declared *bool, items []SidebarItem, opts Options) *bool {
	if declared != nil {
		v := *declared
		return &v
	}
	if opts.CollapseAbove > 0 && countLinks(items) > opts.CollapseAbove {
		v := true
		return &v
	}
	return nil
}

func countLinks(items []SidebarItem) int {
	n := 0
	for _, it := range items {
		if it.Link != "" {
			n++
		}
		n += countLinks(it.Items)
	}
	return n
}
