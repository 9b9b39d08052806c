package site

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"git.home.luguber.info/inful/sitecfg/internal/basepath"
	"git.home.luguber.info/inful/sitecfg/internal/config"
	"git.home.luguber.info/inful/sitecfg/internal/errors"
)

// assetAttrs are the attributes whose values reference assets or pages.
var assetAttrs = map[string]bool{"src": true, "href": true, "poster": true}

// buildFooter renders the footer. The theme emits the footer HTML verbatim, so
// every base-relative reference is prefixed with base here, for every base
// including the root.
func buildFooter(cfg config.FooterConfig, base string) (Footer, error) {
	var parts []string
	if strings.TrimSpace(cfg.Message) != "" {
		msg, err := rebaseHTML(cfg.Message, base)
		if err != nil {
			return Footer{}, errors.Wrap(err, errors.CategoryConfig, errors.SeverityFatal, "footer message is not valid HTML")
		}
		parts = append(parts, msg)
	}
	if cfg.Logo != "" {
		logo, err := renderNodes(logoNode(cfg, base))
		if err != nil {
			return Footer{}, errors.InternalError("render footer logo", err)
		}
		parts = append(parts, logo)
	}

	copyright := cfg.Copyright
	if strings.TrimSpace(copyright) != "" {
		c, err := rebaseHTML(copyright, base)
		if err != nil {
			return Footer{}, errors.Wrap(err, errors.CategoryConfig, errors.SeverityFatal, "footer copyright is not valid HTML")
		}
		copyright = c
	}
	return Footer{Message: strings.Join(parts, " "), Copyright: copyright}, nil
}

func logoNode(cfg config.FooterConfig, base string) *html.Node {
	img := &html.Node{
		Type:     html.ElementNode,
		Data:     "img",
		DataAtom: atom.Img,
		Attr: []html.Attribute{
			{Key: "src", Val: basepath.Join(base, cfg.Logo)},
			{Key: "alt", Val: cfg.LogoAlt},
			{Key: "class", Val: "footer-logo"},
		},
	}
	if cfg.LogoLink == "" {
		return img
	}
	a := &html.Node{
		Type:     html.ElementNode,
		Data:     "a",
		DataAtom: atom.A,
		Attr:     []html.Attribute{{Key: "href", Val: rebase(cfg.LogoLink, base)}},
	}
	a.AppendChild(img)
	return a
}

// rebaseHTML parses fragment, prefixes base-relative references with base and
// renders it back.
func rebaseHTML(fragment, base string) (string, error) {
	ctx := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), ctx)
	if err != nil {
		return "", err
	}
	for _, n := range nodes {
		walk(n, func(el *html.Node) {
			for i, a := range el.Attr {
				if assetAttrs[a.Key] {
					el.Attr[i].Val = rebase(a.Val, base)
				}
			}
		})
	}
	return renderNodes(nodes...)
}

func walk(n *html.Node, fn func(*html.Node)) {
	if n.Type == html.ElementNode {
		fn(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

func renderNodes(nodes ...*html.Node) (string, error) {
	var buf bytes.Buffer
	for _, n := range nodes {
		if err := html.Render(&buf, n); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

// rebase prefixes ref with base when ref points inside the site. References
// that already carry base, external URLs and in-page anchors are unchanged.
func rebase(ref, base string) string {
	switch {
	case ref == "",
		strings.HasPrefix(ref, "#"),
		strings.HasPrefix(ref, "?"),
		strings.HasPrefix(ref, "//"),
		hasScheme(ref):
		return ref
	case base != basepath.Root && base != "" && strings.HasPrefix(ref, base):
		return ref
	}
	return basepath.Join(base, ref)
}

func hasScheme(ref string) bool {
	i := strings.IndexByte(ref, ':')
	if i <= 0 {
		return false
	}
	for _, r := range ref[:i] {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '+' || r == '-' || r == '.') {
			return false
		}
	}
	return true
}
