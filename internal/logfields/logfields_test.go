package logfields

import (
	"errors"
	"log/slog"
	"testing"
)

// TestHelperKeyNames verifies string-based helper key/value stability.
func TestHelperKeyNames(t *testing.T) {
	cases := []struct {
		name    string
		attrKey string
		attrVal string
		attr    slog.Attr
	}{
		{"RunID", KeyRunID, "abc", RunID("abc")},
		{"Path", KeyPath, "/tmp/x", Path("/tmp/x")},
		{"Format", KeyFormat, "json", Format("json")},
		{"Group", KeyGroup, "api", Group("api")},
		{"Base", KeyBase, "/p/dev/", Base("/p/dev/")},
		{"Root", KeyRoot, "/p/", Root("/p/")},
		{"Token", KeyToken, "TOK", Token("TOK")},
		{"Link", KeyLink, "/manual/", Link("/manual/")},
		{"Repository", KeyRepo, "repo", Repository("repo")},
		{"Version", KeyVersion, "v1.0.0", Version("v1.0.0")},
	}
	for _, c := range cases {
		if c.attr.Key != c.attrKey {
			t.Errorf("%s: key = %q, want %q", c.name, c.attr.Key, c.attrKey)
		}
		if c.attr.Value.String() != c.attrVal {
			t.Errorf("%s: value = %q, want %q", c.name, c.attr.Value.String(), c.attrVal)
		}
	}
}

func TestNumericAndErrorHelpers(t *testing.T) {
	if a := Count(3); a.Key != KeyCount || a.Value.Int64() != 3 {
		t.Errorf("Count attr = %v", a)
	}
	if a := DurationMS(1.5); a.Key != KeyDurationMS || a.Value.Float64() != 1.5 {
		t.Errorf("DurationMS attr = %v", a)
	}
	if a := Error(nil); a.Value.String() != "" {
		t.Errorf("Error(nil) = %q", a.Value.String())
	}
	if a := Error(errors.New("boom")); a.Value.String() != "boom" {
		t.Errorf("Error(boom) = %q", a.Value.String())
	}
}
