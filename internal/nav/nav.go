// Package nav assembles the navigation bar and the sidebar from one list of
// content groups, so the two presentations cannot drift apart.
//
// The navigation bar is shallow: a group is a direct link or a label with one
// level of leaf links. NavLink has no children field, so the depth bound is
// enforced by the types. The sidebar keeps the declared nesting.
package nav

import (
	"git.home.luguber.info/inful/sitecfg/internal/foundation/normalization"
)

// NavMode controls how a group is rendered in the navigation bar.
type NavMode string

const (
	// NavFlatten lists the group's links one level deep. A child with its own
	// link is shown as that link; a child without one contributes its
	// descendants' links in order.
	NavFlatten NavMode = "flatten"
	// NavLanding shows the group as a single link to its landing page.
	NavLanding NavMode = "landing"
	// NavOmit leaves the group out of the navigation bar.
	NavOmit NavMode = "omit"
)

var navModeNormalizer = normalization.NewEnumNormalizer("nav mode", map[string]NavMode{
	"flatten": NavFlatten,
	"landing": NavLanding,
	"omit":    NavOmit,
}, NavFlatten)

// ParseNavMode converts raw text to a NavMode. Empty input means NavFlatten.
func ParseNavMode(raw string) (NavMode, error) {
	if raw == "" {
		return NavFlatten, nil
	}
	return navModeNormalizer.NormalizeWithValidation(raw)
}

// NavModes lists the accepted nav mode names.
func NavModes() []string { return navModeNormalizer.ValidValues() }

// Entry is a labelled link, a labelled list of children, or a landing link
// with children.
type Entry struct {
	Text      string  `yaml:"text,omitempty" json:"text,omitempty"`
	Link      string  `yaml:"link,omitempty" json:"link,omitempty"`
	Items     []Entry `yaml:"items,omitempty" json:"items,omitempty"`
	Collapsed *bool   `yaml:"collapsed,omitempty" json:"collapsed,omitempty"`
}

// Group is one top-level content category.
type Group struct {
	Key       string  `yaml:"key" json:"key"`
	Text      string  `yaml:"text" json:"text"`
	Link      string  `yaml:"link,omitempty" json:"link,omitempty"`
	Items     []Entry `yaml:"items,omitempty" json:"items,omitempty"`
	Collapsed *bool   `yaml:"collapsed,omitempty" json:"collapsed,omitempty"`
	Nav       NavMode `yaml:"nav,omitempty" json:"nav,omitempty"`
}

// NavLink is a leaf of the navigation bar.
type NavLink struct {
	Text string `yaml:"text" json:"text"`
	Link string `yaml:"link" json:"link"`
}

// NavItem is one entry of the navigation bar: a direct link or a label with
// leaf links.
type NavItem struct {
	Text  string    `yaml:"text" json:"text"`
	Link  string    `yaml:"link,omitempty" json:"link,omitempty"`
	Items []NavLink `yaml:"items,omitempty" json:"items,omitempty"`
}

// Depth is 1 for a label with children and 0 for a direct link.
func (n NavItem) Depth() int {
	if len(n.Items) > 0 {
		return 1
	}
	return 0
}

// SidebarItem is one node of the sidebar tree.
type SidebarItem struct {
	Text      string        `yaml:"text" json:"text"`
	Link      string        `yaml:"link,omitempty" json:"link,omitempty"`
	Items     []SidebarItem `yaml:"items,omitempty" json:"items,omitempty"`
	Collapsed *bool         `yaml:"collapsed,omitempty" json:"collapsed,omitempty"`
}

// Tree holds both presentations built from the same groups.
type Tree struct {
	Nav     []NavItem     `yaml:"nav" json:"nav"`
	Sidebar []SidebarItem `yaml:"sidebar" json:"sidebar"`
}

// Options tune Build.
type Options struct {
	// CollapseAbove collapses sidebar nodes with more than this many
	// descendant links when the definition does not say otherwise. Zero
	// disables the rule.
	CollapseAbove int
}
