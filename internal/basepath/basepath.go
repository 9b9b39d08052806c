// Package basepath derives paths from the deployment base path under which one
// version of the documentation is served.
//
// A deployed base path has the form /<repo>/<version>/. Every function here is
// total: malformed input degrades to the root path rather than failing.
package basepath

import "strings"

// Root is the root path token.
const Root = "/"

// ResolveRoot returns the repository-root path (/<repo>/) for a deployed base
// path such as /project/v1.2.3/. Empty segments are ignored, so leading,
// trailing and doubled slashes do not matter. Inputs without any segment yield
// Root.
func ResolveRoot(base string) string {
	if base == "" || base == Root {
		return Root
	}
	if segs := segments(base); len(segs) > 0 {
		return Root + segs[0] + Root
	}
	return Root
}

// Normalize returns base with exactly one leading and one trailing slash and
// no empty segments. "" and "/" both normalize to Root.
func Normalize(base string) string {
	segs := segments(base)
	if len(segs) == 0 {
		return Root
	}
	return Root + strings.Join(segs, "/") + Root
}

// Join prefixes a base-relative asset with base. A slash is inserted only when
// base is a path (starts with "/") lacking its trailing slash; any other base
// is treated as opaque and concatenated verbatim, which is what a placeholder
// token later replaced by a slash-terminated path requires.
func Join(base, asset string) string {
	asset = strings.TrimLeft(asset, "/")
	switch {
	case base == "":
		return Root + asset
	case strings.HasSuffix(base, "/"):
		return base + asset
	case strings.HasPrefix(base, "/"):
		return base + "/" + asset
	default:
		return base + asset
	}
}

func segments(p string) []string {
	return strings.FieldsFunc(p, func(r rune) bool { return r == '/' })
}
