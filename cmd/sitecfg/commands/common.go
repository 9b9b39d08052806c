package commands

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/sitecfg/internal/config"
	"git.home.luguber.info/inful/sitecfg/internal/errors"
)

// LogLevelEnv overrides the default log level when --verbose is not given.
const LogLevelEnv = "SITECFG_LOG_LEVEL"

// Global context passed to subcommands.
type Global struct {
	Stdout io.Writer
}

func (g *Global) stdout() io.Writer {
	if g == nil || g.Stdout == nil {
		return os.Stdout
	}
	return g.Stdout
}

// CLI definition & global flags - used by commands that need access to root config.
type CLI struct {
	Config    string           `short:"c" help:"Site definition path" default:"site.yaml"`
	Verbose   bool             `short:"v" help:"Enable verbose logging"`
	LogFormat string           `name:"log-format" help:"Log output format (text|json)" default:"text"`
	Version   kong.VersionFlag `name:"version" help:"Show version and exit"`

	Generate   GenerateCmd   `cmd:"" help:"Generate the site configuration template (phase 1)"`
	Substitute SubstituteCmd `cmd:"" help:"Replace placeholder tokens in a generated template (phase 2)"`
	Root       RootCmd       `cmd:"" help:"Print the repository-root path of a deployed base path"`
	Check      CheckCmd      `cmd:"" help:"Validate navigation invariants and page links"`
	Versions   VersionsCmd   `cmd:"" help:"Write the cross-version index from repository tags"`
	Init       InitCmd       `cmd:"" help:"Initialize a new site definition"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := config.NormalizeLogLevel(os.Getenv(LogLevelEnv))
	if c.Verbose {
		level = config.LogLevelDebug
	}
	slog.SetDefault(config.NewLogger(os.Stderr, level, config.NormalizeLogFormat(c.LogFormat)))
	return nil
}

// relativeToConfig resolves p against the directory holding the site
// definition. Absolute paths are returned unchanged.
func relativeToConfig(configPath, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(filepath.Dir(configPath), p)
}

// writeOutput writes data to path, or to stdout when path is "-".
func writeOutput(g *Global, path string, data []byte) error {
	if path == "-" {
		_, err := g.stdout().Write(data)
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return errors.FileSystemError("create output directory", err).WithContext("path", dir)
		}
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return errors.FileSystemError("write output", err).WithContext("path", path)
	}
	return nil
}
