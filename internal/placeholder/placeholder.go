// Package placeholder models the two-phase substitution contract between the
// configuration generator and the external tool that deploys it.
//
// Phase 1 (this module) emits a template containing opaque tokens. Phase 2,
// owned by the deploying tool, replaces the tokens textually. Phase-1 code
// never parses a token as a path: values that depend on a token's final form
// are emitted as derived expressions and listed as deferred.
package placeholder

import (
	"regexp"
	"sort"
	"strings"

	"git.home.luguber.info/inful/sitecfg/internal/basepath"
)

// Token is an opaque string replaced after the configuration is evaluated.
type Token string

func (t Token) String() string { return string(t) }

// Default tokens understood by the deploying tool.
const (
	DefaultBase    Token = "REPLACE_ME_DOCUMENTER_VITEPRESS"
	DefaultAbsPath Token = "REPLACE_ME_DOCUMENTER_VITEPRESS_DEPLOY_ABSPATH"
	DefaultFavicon Token = "REPLACE_ME_DOCUMENTER_VITEPRESS_FAVICON"
)

// Set names the tokens for deployment base path, absolute deployment path and
// favicon path.
type Set struct {
	Base    Token `yaml:"base" json:"base"`
	AbsPath Token `yaml:"abspath" json:"abspath"`
	Favicon Token `yaml:"favicon" json:"favicon"`
}

// DefaultSet returns the default token set.
func DefaultSet() Set {
	return Set{Base: DefaultBase, AbsPath: DefaultAbsPath, Favicon: DefaultFavicon}
}

// WithDefaults fills unset tokens from DefaultSet.
func (s Set) WithDefaults() Set {
	d := DefaultSet()
	if s.Base == "" {
		s.Base = d.Base
	}
	if s.AbsPath == "" {
		s.AbsPath = d.AbsPath
	}
	if s.Favicon == "" {
		s.Favicon = d.Favicon
	}
	return s
}

// All returns the tokens in declaration order.
func (s Set) All() []Token {
	return []Token{s.Base, s.AbsPath, s.Favicon}
}

// Value is a phase-1 value: either a concrete string or a token that phase 2
// will replace.
type Value struct {
	raw   string
	token bool
}

// Literal wraps a concrete value.
func Literal(s string) Value { return Value{raw: s} }

// FromToken wraps a token.
func FromToken(t Token) Value { return Value{raw: string(t), token: true} }

// Resolve returns Literal(concrete) when concrete is non-empty, else the token.
func Resolve(concrete string, t Token) Value {
	if concrete != "" {
		return Literal(concrete)
	}
	return FromToken(t)
}

// IsToken reports whether v is still an unsubstituted token.
func (v Value) IsToken() bool { return v.token }

// String returns the text emitted into the template.
func (v Value) String() string { return v.raw }

// Derivation kinds.
const DeriveRepositoryRoot = "repository-root"

// Deferred records a value derived from a token that phase 2 must compute
// after substitution.
type Deferred struct {
	Expr   string `json:"expr" yaml:"expr"`
	Derive string `json:"derive" yaml:"derive"`
	Token  Token  `json:"token" yaml:"token"`
}

var rootExpr = regexp.MustCompile(`@root\(([^()\s]+)\)`)

// RootExpr returns the derived expression standing for the repository root of
// whatever t is replaced with.
func RootExpr(t Token) string { return "@root(" + string(t) + ")" }

// Root returns the repository-root path for a base value. A concrete base is
// resolved immediately; a token yields a derived expression plus the matching
// Deferred entry.
func Root(base Value) (string, *Deferred) {
	if !base.IsToken() {
		return basepath.ResolveRoot(base.String()), nil
	}
	t := Token(base.String())
	expr := RootExpr(t)
	return expr, &Deferred{Expr: expr, Derive: DeriveRepositoryRoot, Token: t}
}

// Substitution maps tokens to their phase-2 values. A token mapped to ""
// is known but left untouched, which keeps it from being matched as part of a
// longer token.
type Substitution map[Token]string

// NewSubstitution builds a Substitution for every token of set. Empty values
// leave the corresponding token in place.
func NewSubstitution(set Set, base, absPath, favicon string) Substitution {
	s := Substitution{}
	for _, t := range set.All() {
		if t != "" {
			s[t] = ""
		}
	}
	if set.Base != "" {
		s[set.Base] = base
	}
	if set.AbsPath != "" {
		s[set.AbsPath] = absPath
	}
	if set.Favicon != "" {
		s[set.Favicon] = favicon
	}
	return s
}

// Apply performs phase 2 on text: derived expressions whose token has a value
// are resolved against that value, then tokens are replaced longest first so a
// token that prefixes another never corrupts it.
func (s Substitution) Apply(text string) string {
	text = rootExpr.ReplaceAllStringFunc(text, func(m string) string {
		tok := Token(rootExpr.FindStringSubmatch(m)[1])
		if v := s[tok]; v != "" {
			return basepath.ResolveRoot(v)
		}
		return m
	})

	tokens := make([]Token, 0, len(s))
	for t := range s {
		if t != "" {
			tokens = append(tokens, t)
		}
	}
	sort.Slice(tokens, func(i, j int) bool {
		if len(tokens[i]) != len(tokens[j]) {
			return len(tokens[i]) > len(tokens[j])
		}
		return tokens[i] < tokens[j]
	})
	pairs := make([]string, 0, 2*len(tokens))
	for _, t := range tokens {
		v := s[t]
		if v == "" {
			v = string(t)
		}
		pairs = append(pairs, string(t), v)
	}
	return strings.NewReplacer(pairs...).Replace(text)
}

// Unresolved lists the derived expressions and tokens from set still present
// in text. Expressions come first, then tokens in set order. A token is only
// reported where it is not part of a longer token.
func Unresolved(text string, set Set) []string {
	seen := map[string]bool{}
	var out []string
	for _, m := range rootExpr.FindAllString(text, -1) {
		if !seen[m] {
			seen[m] = true
			out = append(out, m)
		}
	}
	text = rootExpr.ReplaceAllString(text, "")

	byLength := append([]Token(nil), set.All()...)
	sort.SliceStable(byLength, func(i, j int) bool { return len(byLength[i]) > len(byLength[j]) })
	found := map[Token]bool{}
	for _, t := range byLength {
		if t != "" && strings.Contains(text, string(t)) {
			found[t] = true
			text = strings.ReplaceAll(text, string(t), "")
		}
	}
	for _, t := range set.All() {
		if found[t] && !seen[string(t)] {
			seen[string(t)] = true
			out = append(out, string(t))
		}
	}
	return out
}
