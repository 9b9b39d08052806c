// Package pages inspects the Markdown source tree of the documentation so
// navigation labels can be derived from page titles and dangling sidebar links
// can be reported.
package pages

import (
	"bytes"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/sitecfg/internal/errors"
)

// Page is one Markdown source file.
type Page struct {
	Path  string // slash-separated, relative to the docs root
	Link  string // site link, e.g. /manual/intro or /manual/
	Title string
}

// Index maps normalized link keys to pages.
type Index map[string]Page

// Lookup finds the page a site link points at.
func (idx Index) Lookup(link string) (Page, bool) {
	p, ok := idx[Key(link)]
	return p, ok
}

// Scan walks root and indexes every *.md file.
func Scan(root string) (Index, error) {
	idx, err := ScanFS(os.DirFS(filepath.Clean(root)))
	if err != nil {
		return nil, errors.FileSystemError("scan docs", err).WithContext("root", root)
	}
	return idx, nil
}

// ScanFS indexes every *.md file of fsys.
func ScanFS(fsys fs.FS) (Index, error) {
	idx := Index{}
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != "." && strings.HasPrefix(d.Name(), ".") {
				return fs.SkipDir
			}
			return nil
		}
		if !strings.EqualFold(path.Ext(p), ".md") {
			return nil
		}
		src, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}
		page := Page{Path: p, Link: linkFor(p), Title: Title(p, src)}
		idx[Key(page.Link)] = page
		return nil
	})
	if err != nil {
		return nil, err
	}
	return idx, nil
}

// Key normalizes a site link or page path for lookup: query, fragment and
// .md/.html suffixes are dropped and directory links map to their index page.
func Key(link string) string {
	if i := strings.IndexAny(link, "?#"); i >= 0 {
		link = link[:i]
	}
	link = strings.TrimPrefix(link, "/")
	if link == "" || strings.HasSuffix(link, "/") {
		link += "index"
	}
	for _, ext := range []string{".md", ".html"} {
		link = strings.TrimSuffix(link, ext)
	}
	return link
}

// IsExternal reports whether link leaves the site.
func IsExternal(link string) bool {
	return strings.Contains(link, "://") || strings.HasPrefix(link, "mailto:") || strings.HasPrefix(link, "//")
}

func linkFor(p string) string {
	p = strings.TrimSuffix(p, path.Ext(p))
	if p == "index" {
		return "/"
	}
	if strings.HasSuffix(p, "/index") {
		return "/" + strings.TrimSuffix(p, "index")
	}
	return "/" + p
}

// Title derives a page title: frontmatter title, then the first level-one
// heading, then the file name.
func Title(p string, src []byte) string {
	fm, body := splitFrontmatter(src)
	if len(fm) > 0 {
		var meta struct {
			Title string `yaml:"title"`
		}
		if err := yaml.Unmarshal(fm, &meta); err == nil && strings.TrimSpace(meta.Title) != "" {
			return strings.TrimSpace(meta.Title)
		}
	}
	if h := firstHeading(body); h != "" {
		return h
	}
	return titleFromName(p)
}

func splitFrontmatter(src []byte) (frontmatter, body []byte) {
	src = bytes.ReplaceAll(src, []byte("\r\n"), []byte("\n"))
	if !bytes.HasPrefix(src, []byte("---\n")) {
		return nil, src
	}
	rest := src[len("---\n"):]
	if bytes.HasPrefix(rest, []byte("---\n")) {
		return nil, rest[len("---\n"):]
	}
	end := bytes.Index(rest, []byte("\n---\n"))
	if end < 0 {
		return nil, src
	}
	return rest[:end+1], rest[end+len("\n---\n"):]
}

func firstHeading(body []byte) string {
	root := goldmark.New().Parser().Parse(text.NewReader(body))
	var title string
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		h, ok := n.(*gmast.Heading)
		if !ok || h.Level != 1 {
			return gmast.WalkContinue, nil
		}
		title = strings.TrimSpace(inlineText(h, body))
		return gmast.WalkStop, nil
	})
	return title
}

func inlineText(n gmast.Node, src []byte) string {
	var b strings.Builder
	_ = gmast.Walk(n, func(c gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *gmast.Text:
			b.Write(t.Segment.Value(src))
			if t.SoftLineBreak() {
				b.WriteByte(' ')
			}
		case *gmast.String:
			b.Write(t.Value)
		case *gmast.CodeSpan:
			for cc := t.FirstChild(); cc != nil; cc = cc.NextSibling() {
				if tt, ok := cc.(*gmast.Text); ok {
					b.Write(tt.Segment.Value(src))
				}
			}
			return gmast.WalkSkipChildren, nil
		}
		return gmast.WalkContinue, nil
	})
	return b.String()
}

func titleFromName(p string) string {
	name := strings.TrimSuffix(path.Base(p), path.Ext(p))
	if name == "index" {
		if dir := path.Dir(p); dir != "." {
			name = path.Base(dir)
		} else {
			name = "home"
		}
	}
	name = strings.NewReplacer("_", " ", "-", " ").Replace(name)
	return cases.Title(language.English).String(name)
}
