package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/sitecfg/internal/config"
	"git.home.luguber.info/inful/sitecfg/internal/errors"
	"git.home.luguber.info/inful/sitecfg/internal/metrics"
	"git.home.luguber.info/inful/sitecfg/internal/placeholder"
	"git.home.luguber.info/inful/sitecfg/internal/site"
)

// newProject writes the example site definition into a fresh directory.
func newProject(t *testing.T) (*CLI, string) {
	t.Helper()
	dir := t.TempDir()
	root := &CLI{Config: filepath.Join(dir, "site.yaml")}
	require.NoError(t, config.Init(root.Config, false))
	return root, dir
}

func readSite(t *testing.T, path string) site.Site {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	s, err := site.Decode(data, config.OutputJSON)
	require.NoError(t, err)
	return s
}

func TestGenerate_WritesTemplateWithPlaceholders(t *testing.T) {
	root, dir := newProject(t)
	out := filepath.Join(dir, "build", "config.json")

	cmd := &GenerateCmd{Output: out}
	require.NoError(t, cmd.Run(&Global{}, root))

	s := readSite(t, out)
	assert.Equal(t, string(placeholder.DefaultBase), s.Base)
	require.Len(t, s.Deferred, 1)
	assert.Equal(t, placeholder.DeriveRepositoryRoot, s.Deferred[0].Derive)
	require.NoError(t, s.Tree().Validate())
}

func TestGenerate_DefaultOutputRelativeToDefinition(t *testing.T) {
	root, dir := newProject(t)

	require.NoError(t, (&GenerateCmd{}).Run(&Global{}, root))
	_, err := os.Stat(filepath.Join(dir, config.DefaultOutputPath))
	require.NoError(t, err)
}

func TestGenerate_ConcreteBase(t *testing.T) {
	root, _ := newProject(t)
	var buf bytes.Buffer

	cmd := &GenerateCmd{Output: "-", Base: "/ModelKit/v0.2.0"}
	require.NoError(t, cmd.Run(&Global{Stdout: &buf}, root))

	s, err := site.Decode(buf.Bytes(), config.OutputJSON)
	require.NoError(t, err)
	assert.Equal(t, "/ModelKit/v0.2.0/", s.Base)
	assert.Empty(t, s.Deferred)
	assert.Contains(t, buf.String(), `"/ModelKit/versions.js"`)
}

func TestGenerate_YAMLFormat(t *testing.T) {
	root, _ := newProject(t)
	var buf bytes.Buffer

	require.NoError(t, (&GenerateCmd{Output: "-", Format: "yml"}).Run(&Global{Stdout: &buf}, root))
	s, err := site.Decode(buf.Bytes(), config.OutputYAML)
	require.NoError(t, err)
	assert.Equal(t, "ModelKit", s.Title)
}

func TestGenerate_InvalidFormat(t *testing.T) {
	root, _ := newProject(t)
	err := (&GenerateCmd{Output: "-", Format: "toml"}).Run(&Global{Stdout: &bytes.Buffer{}}, root)
	require.Error(t, err)
	assert.True(t, errors.IsCategory(err, errors.CategoryValidation))
}

func TestGenerate_MissingDefinition(t *testing.T) {
	root := &CLI{Config: filepath.Join(t.TempDir(), "site.yaml")}
	err := (&GenerateCmd{Output: "-"}).Run(&Global{}, root)
	require.Error(t, err)
	assert.True(t, errors.IsCategory(err, errors.CategoryConfig))
}

func TestGenerate_MetricsFile(t *testing.T) {
	root, dir := newProject(t)
	promFile := filepath.Join(dir, "sitecfg.prom")

	cmd := &GenerateCmd{Output: filepath.Join(dir, "config.json"), MetricsFile: promFile}
	require.NoError(t, cmd.Run(&Global{}, root))

	data, err := os.ReadFile(promFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `sitecfg_generations_total{outcome="success"} 1`)
	assert.Contains(t, string(data), "sitecfg_nav_groups 6")
}

type countingRecorder struct {
	metrics.NoopRecorder
	outcomes []metrics.OutcomeLabel
}

func (c *countingRecorder) IncGeneration(o metrics.OutcomeLabel) { c.outcomes = append(c.outcomes, o) }

func TestGenerate_RecordsFailure(t *testing.T) {
	root := &CLI{Config: filepath.Join(t.TempDir(), "site.yaml")}
	rec := &countingRecorder{}
	require.Error(t, (&GenerateCmd{Output: "-"}).generate(&Global{}, root, rec))
	assert.Equal(t, []metrics.OutcomeLabel{metrics.OutcomeFailed}, rec.outcomes)
}

func TestGenerate_FillsLabelsFromPages(t *testing.T) {
	dir := t.TempDir()
	root := &CLI{Config: filepath.Join(dir, "site.yaml")}
	def := `
title: Labels
navigation:
  groups:
    - key: manual
      text: Manual
      items:
        - link: /manual/intro
`
	require.NoError(t, os.WriteFile(root.Config, []byte(def), 0o600))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "docs", "src", "manual"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "docs", "src", "manual", "intro.md"), []byte("# Introduction\n"), 0o600))

	var buf bytes.Buffer
	require.NoError(t, (&GenerateCmd{Output: "-"}).Run(&Global{Stdout: &buf}, root))
	s, err := site.Decode(buf.Bytes(), config.OutputJSON)
	require.NoError(t, err)
	require.Len(t, s.ThemeConfig.Sidebar, 1)
	require.Len(t, s.ThemeConfig.Sidebar[0].Items, 1)
	assert.Equal(t, "Introduction", s.ThemeConfig.Sidebar[0].Items[0].Text)
}

func TestSubstitute_ResolvesEveryPlaceholder(t *testing.T) {
	root, dir := newProject(t)
	tmpl := filepath.Join(dir, "config.json")
	require.NoError(t, (&GenerateCmd{Output: tmpl}).Run(&Global{}, root))

	out := filepath.Join(dir, "final.json")
	sub := &SubstituteCmd{In: tmpl, Out: out, Base: "/ModelKit/v0.1.0/", AbsPath: "ModelKit/v0.1.0", Favicon: "/ModelKit/v0.1.0/favicon.ico"}
	require.NoError(t, sub.Run(&Global{}, root))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Empty(t, placeholder.Unresolved(string(data), placeholder.DefaultSet()))
	assert.Contains(t, string(data), `"/ModelKit/versions.js"`)

	s := readSite(t, out)
	assert.Equal(t, "/ModelKit/v0.1.0/", s.Base)
	assert.Equal(t, "ModelKit/v0.1.0", s.DeployAbsPath)
}

func TestSubstitute_RequiresValuesForTemplatePlaceholders(t *testing.T) {
	root, dir := newProject(t)
	tmpl := filepath.Join(dir, "config.json")
	require.NoError(t, (&GenerateCmd{Output: tmpl}).Run(&Global{}, root))

	err := (&SubstituteCmd{In: tmpl, Out: "-", Base: "/ModelKit/dev/"}).Run(&Global{Stdout: &bytes.Buffer{}}, root)
	require.Error(t, err)
	assert.True(t, errors.IsCategory(err, errors.CategoryValidation))
	se, ok := errors.As(err)
	require.True(t, ok)
	assert.Equal(t, "abspath", se.Context["field"])

	err = (&SubstituteCmd{In: tmpl, Out: "-", Base: "/ModelKit/dev/", AbsPath: "ModelKit/dev"}).Run(&Global{Stdout: &bytes.Buffer{}}, root)
	require.Error(t, err)
	se, ok = errors.As(err)
	require.True(t, ok)
	assert.Equal(t, "favicon", se.Context["field"])

	// The template is left untouched on failure.
	data, readErr := os.ReadFile(tmpl)
	require.NoError(t, readErr)
	assert.Contains(t, string(data), string(placeholder.DefaultBase))
}

func TestSubstitute_ConcreteDeployValuesNeedOnlyBase(t *testing.T) {
	dir := t.TempDir()
	root := &CLI{Config: filepath.Join(dir, "site.yaml")}
	def := `
deploy:
  abspath: ModelKit/stable
  favicon: /favicon.ico
navigation:
  groups:
    - key: home
      text: Home
      link: /
`
	require.NoError(t, os.WriteFile(root.Config, []byte(def), 0o600))
	tmpl := filepath.Join(dir, "config.json")
	require.NoError(t, (&GenerateCmd{Output: tmpl}).Run(&Global{}, root))

	var buf bytes.Buffer
	require.NoError(t, (&SubstituteCmd{In: tmpl, Out: "-", Base: "/ModelKit/stable/"}).Run(&Global{Stdout: &buf}, root))
	assert.Empty(t, placeholder.Unresolved(buf.String(), placeholder.DefaultSet()))
}

func TestSubstitute_FailsOnLeftoverExpressions(t *testing.T) {
	dir := t.TempDir()
	tmpl := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(tmpl, []byte(`{"src": "@root(UNKNOWN_TOKEN)versions.js"}`), 0o600))

	root := &CLI{Config: filepath.Join(dir, "site.yaml")}
	err := (&SubstituteCmd{In: tmpl, Out: "-", Base: "/ModelKit/dev/"}).Run(&Global{Stdout: &bytes.Buffer{}}, root)
	require.Error(t, err)
	assert.True(t, errors.IsCategory(err, errors.CategorySubstitution))
}

func TestRoot(t *testing.T) {
	cases := map[string]string{
		"/project/v1.2.3/": "/project/\n",
		"/project/dev/":    "/project/\n",
		"":                 "/\n",
		"///":              "/\n",
	}
	for in, want := range cases {
		var buf bytes.Buffer
		require.NoError(t, (&RootCmd{Base: in}).Run(&Global{Stdout: &buf}, &CLI{}))
		assert.Equal(t, want, buf.String(), "base %q", in)
	}
}

func TestCheck_ExampleIsValid(t *testing.T) {
	root, dir := newProject(t)
	tmpl := filepath.Join(dir, "config.json")
	require.NoError(t, (&GenerateCmd{Output: tmpl}).Run(&Global{}, root))

	var buf bytes.Buffer
	require.NoError(t, (&CheckCmd{Template: tmpl}).Run(&Global{Stdout: &buf}, root))
	assert.True(t, strings.HasPrefix(buf.String(), "ok: 6 groups"), buf.String())
}

func TestCheck_StrictReportsMissingPages(t *testing.T) {
	root, dir := newProject(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "docs", "src"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "docs", "src", "index.md"), []byte("# Home\n"), 0o600))

	require.NoError(t, (&CheckCmd{}).Run(&Global{Stdout: &bytes.Buffer{}}, root))

	err := (&CheckCmd{Strict: true}).Run(&Global{Stdout: &bytes.Buffer{}}, root)
	require.Error(t, err)
	assert.True(t, errors.IsCategory(err, errors.CategoryNavigation))
}

func TestCheck_BrokenTemplate(t *testing.T) {
	root, dir := newProject(t)
	tmpl := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(tmpl, []byte("{not json"), 0o600))

	err := (&CheckCmd{Template: tmpl}).Run(&Global{Stdout: &bytes.Buffer{}}, root)
	require.Error(t, err)
	assert.True(t, errors.IsCategory(err, errors.CategoryValidation))
}

func TestVersions_WritesIndexFromTags(t *testing.T) {
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("x"), 0o600))
	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("README.md")
	require.NoError(t, err)
	h, err := wt.Commit("init", &git.CommitOptions{Author: &object.Signature{Name: "tester", Email: "t@example.com", When: time.Now()}})
	require.NoError(t, err)
	for _, tag := range []string{"v0.1.0", "v0.2.0", "v0.3.0-rc.1"} {
		_, err = repo.CreateTag(tag, h, nil)
		require.NoError(t, err)
	}

	var buf bytes.Buffer
	require.NoError(t, (&VersionsCmd{Repo: dir, Output: "-", JSON: true}).Run(&Global{Stdout: &buf}, &CLI{}))

	var idx struct {
		Versions []string `json:"versions"`
		Newest   string   `json:"newest"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &idx))
	assert.Equal(t, []string{"stable", "v0.2.0", "v0.1.0", "dev"}, idx.Versions)
	assert.Equal(t, "v0.2.0", idx.Newest)

	out := filepath.Join(t.TempDir(), "versions.js")
	require.NoError(t, (&VersionsCmd{Repo: dir, Output: out, Prereleases: true}).Run(&Global{}, &CLI{}))
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"v0.3.0-rc.1"`)
	assert.Contains(t, string(data), `var DOCUMENTER_NEWEST = "v0.2.0";`)
}

func TestInit_RefusesToOverwrite(t *testing.T) {
	root, _ := newProject(t)
	var buf bytes.Buffer

	err := (&InitCmd{}).Run(&Global{Stdout: &buf}, root)
	require.Error(t, err)
	assert.True(t, errors.IsCategory(err, errors.CategoryConfig))
	assert.Contains(t, buf.String(), "Initialization failed")

	buf.Reset()
	require.NoError(t, (&InitCmd{Force: true}).Run(&Global{Stdout: &buf}, root))
	assert.Contains(t, buf.String(), "initialized successfully")
}

func TestInit_OutputDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, (&InitCmd{Output: dir}).Run(&Global{Stdout: &bytes.Buffer{}}, &CLI{Config: "ignored.yaml"}))
	_, err := os.Stat(filepath.Join(dir, "site.yaml"))
	require.NoError(t, err)
}
