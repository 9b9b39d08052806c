package commands

import (
	"log/slog"
	"os"

	"git.home.luguber.info/inful/sitecfg/internal/basepath"
	"git.home.luguber.info/inful/sitecfg/internal/config"
	"git.home.luguber.info/inful/sitecfg/internal/errors"
	"git.home.luguber.info/inful/sitecfg/internal/logfields"
	"git.home.luguber.info/inful/sitecfg/internal/placeholder"
)

// SubstituteCmd implements the 'substitute' command, the reference phase-2
// step run by the deploying tool.
type SubstituteCmd struct {
	In      string `name:"in" required:"" help:"Template produced by generate"`
	Out     string `name:"out" help:"Destination, '-' for stdout (default: overwrite --in)"`
	Base    string `name:"base" required:"" help:"Deployed base path, e.g. /project/v1.2.3/"`
	AbsPath string `name:"abspath" help:"Deployed absolute path; required while the template carries the abspath placeholder (deploy.abspath unset)"`
	Favicon string `name:"favicon" help:"Favicon path; required while the template carries the favicon placeholder (deploy.favicon unset)"`
}

func (s *SubstituteCmd) Run(g *Global, root *CLI) error {
	tokens, err := s.tokens(root.Config)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(s.In)
	if err != nil {
		return errors.FileSystemError("read template", err).WithContext("path", s.In)
	}

	if err := s.checkValues(string(data), tokens); err != nil {
		return err
	}

	sub := placeholder.NewSubstitution(tokens, basepath.Normalize(s.Base), s.AbsPath, s.Favicon)
	text := sub.Apply(string(data))
	if left := placeholder.Unresolved(text, tokens); len(left) > 0 {
		for _, t := range left {
			slog.Error("Placeholder left unresolved", logfields.Token(t))
		}
		return errors.UnresolvedPlaceholder(left).WithContext("path", s.In)
	}

	out := s.Out
	if out == "" {
		out = s.In
	}
	if err := writeOutput(g, out, []byte(text)); err != nil {
		return err
	}
	slog.Info("Substituted placeholders",
		logfields.Path(out),
		logfields.Base(basepath.Normalize(s.Base)),
		logfields.Root(basepath.ResolveRoot(s.Base)))
	return nil
}

// checkValues fails when the template carries a placeholder whose value was
// not given on the command line.
func (s *SubstituteCmd) checkValues(text string, tokens placeholder.Set) error {
	present := map[string]bool{}
	for _, t := range placeholder.Unresolved(text, tokens) {
		present[t] = true
	}
	required := []struct {
		flag  string
		value string
		token placeholder.Token
	}{
		{"abspath", s.AbsPath, tokens.AbsPath},
		{"favicon", s.Favicon, tokens.Favicon},
	}
	for _, r := range required {
		if r.value == "" && present[string(r.token)] {
			return errors.ValidationFailed(r.flag, "template carries "+string(r.token)+"; pass --"+r.flag).
				WithContext("path", s.In)
		}
	}
	return nil
}

// tokens returns the placeholder set of the site definition when one exists,
// and the default set otherwise.
func (s *SubstituteCmd) tokens(configPath string) (placeholder.Set, error) {
	if _, err := os.Stat(configPath); err != nil {
		return placeholder.DefaultSet(), nil
	}
	def, err := config.Load(configPath)
	if err != nil {
		return placeholder.Set{}, err
	}
	return def.Placeholders.WithDefaults(), nil
}
