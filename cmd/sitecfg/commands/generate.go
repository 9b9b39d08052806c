package commands

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/sitecfg/internal/config"
	"git.home.luguber.info/inful/sitecfg/internal/errors"
	"git.home.luguber.info/inful/sitecfg/internal/logfields"
	"git.home.luguber.info/inful/sitecfg/internal/metrics"
	"git.home.luguber.info/inful/sitecfg/internal/watch"
)

// GenerateCmd implements the 'generate' command.
type GenerateCmd struct {
	Output      string `short:"o" help:"Template output path, '-' for stdout (default: output.path of the site definition)"`
	Format      string `name:"format" help:"Template format (json|yaml)"`
	Base        string `name:"base" help:"Concrete deployment base path; the base placeholder is emitted when empty"`
	Watch       bool   `name:"watch" help:"Regenerate whenever the site definition changes"`
	MetricsFile string `name:"metrics-file" help:"Write generation metrics to this node-exporter textfile"`
}

func (g *GenerateCmd) Run(global *Global, root *CLI) error {
	recorder := metrics.Recorder(metrics.NoopRecorder{})
	var prom *metrics.PrometheusRecorder
	if g.MetricsFile != "" {
		prom = metrics.NewPrometheusRecorder(nil)
		recorder = prom
	}

	runOnce := func() error {
		err := g.generate(global, root, recorder)
		if prom != nil {
			if werr := prom.WriteTextfile(g.MetricsFile); werr != nil {
				slog.Warn("Failed to write metrics textfile", logfields.Path(g.MetricsFile), logfields.Error(werr))
			}
		}
		return err
	}

	err := runOnce()
	if !g.Watch {
		return err
	}
	if err != nil {
		slog.Error("Generation failed, waiting for changes", logfields.Error(err))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	return g.watch(ctx, root, runOnce)
}

func (g *GenerateCmd) watch(ctx context.Context, root *CLI, runOnce func() error) error {
	files := []string{root.Config, relativeToConfig(root.Config, ".env"), relativeToConfig(root.Config, ".env.local")}
	w, err := watch.New(files, watch.DefaultDebounce)
	if err != nil {
		return errors.FileSystemError("watch site definition", err).WithContext("path", root.Config)
	}
	slog.Info("Watching site definition for changes", logfields.Path(root.Config))
	err = w.Run(ctx, func(context.Context) {
		if err := runOnce(); err != nil {
			slog.Error("Generation failed, waiting for changes", logfields.Error(err))
		}
	})
	slog.Info("Watcher stopped")
	return err
}

// generate performs one phase-1 run and writes the template.
func (g *GenerateCmd) generate(global *Global, root *CLI, recorder metrics.Recorder) error {
	start := time.Now()
	logger := slog.With(logfields.RunID(uuid.NewString()))

	outcome := metrics.OutcomeFailed
	defer func() {
		recorder.ObserveGeneration(time.Since(start))
		recorder.IncGeneration(outcome)
	}()

	b, err := buildSite(root.Config, g.Base)
	if err != nil {
		return err
	}

	format := b.Def.Output.Format
	if g.Format != "" {
		if format, err = config.ParseOutputFormat(g.Format); err != nil {
			return errors.ValidationFailed("format", err.Error())
		}
	}
	path := g.Output
	if path == "" {
		path = relativeToConfig(root.Config, b.Def.Output.Path)
	}

	tree := b.Site.Tree()
	stats := tree.Stats()
	recorder.SetTreeStats(metrics.TreeStats{
		Groups:       stats.Groups,
		NavLinks:     stats.NavLinks,
		SidebarLinks: stats.SidebarLinks,
		SidebarDepth: stats.SidebarDepth,
		Deferred:     len(b.Site.Deferred),
	})
	if err := tree.Validate(); err != nil {
		outcome = metrics.OutcomeInvalid
		return err
	}

	data, err := b.Site.Template(format)
	if err != nil {
		return errors.InternalError("serialize template", err)
	}
	if err := writeOutput(global, path, data); err != nil {
		return err
	}

	outcome = metrics.OutcomeSuccess
	logger.Info("Generated site configuration",
		logfields.Path(path),
		logfields.Format(string(format)),
		logfields.Base(b.Site.Base),
		slog.Int("groups", stats.Groups),
		slog.Int("nav_links", stats.NavLinks),
		slog.Int("sidebar_links", stats.SidebarLinks),
		logfields.DurationMS(float64(time.Since(start).Microseconds())/1000))
	return nil
}
