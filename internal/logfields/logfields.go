package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRunID      = "run_id"
	KeyPath       = "path"
	KeyFormat     = "format"
	KeyGroup      = "group"
	KeyBase       = "base"
	KeyRoot       = "root"
	KeyToken      = "token"
	KeyLink       = "link"
	KeyRepo       = "repository"
	KeyVersion    = "version"
	KeyCount      = "count"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func RunID(id string) slog.Attr       { return slog.String(KeyRunID, id) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Format(f string) slog.Attr       { return slog.String(KeyFormat, f) }
func Group(key string) slog.Attr      { return slog.String(KeyGroup, key) }
func Base(b string) slog.Attr         { return slog.String(KeyBase, b) }
func Root(r string) slog.Attr         { return slog.String(KeyRoot, r) }
func Token(t string) slog.Attr        { return slog.String(KeyToken, t) }
func Link(l string) slog.Attr         { return slog.String(KeyLink, l) }
func Repository(r string) slog.Attr   { return slog.String(KeyRepo, r) }
func Version(v string) slog.Attr      { return slog.String(KeyVersion, v) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
