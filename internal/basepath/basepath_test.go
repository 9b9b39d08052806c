package basepath

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestResolveRoot(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", "/"},
		{"/", "/"},
		{"///", "/"},
		{"/project/v1.2.3/", "/project/"},
		{"/project/dev/", "/project/"},
		{"/project/stable", "/project/"},
		{"project/dev/", "/project/"},
		{"//project//dev//", "/project/"},
		{"/project/", "/project/"},
		{"REPLACE_ME", "/REPLACE_ME/"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ResolveRoot(c.in), "ResolveRoot(%q)", c.in)
	}
}

func segmentGen() *rapid.Generator[string] {
	return rapid.StringMatching(`[A-Za-z0-9._-]{1,12}`)
}

func TestResolveRoot_FirstSegmentProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		segs := rapid.SliceOfN(segmentGen(), 1, 5).Draw(t, "segments")
		var b strings.Builder
		if rapid.Bool().Draw(t, "leading") {
			b.WriteString(strings.Repeat("/", rapid.IntRange(1, 3).Draw(t, "leadingN")))
		}
		for i, s := range segs {
			if i > 0 {
				b.WriteString(strings.Repeat("/", rapid.IntRange(1, 3).Draw(t, "sepN")))
			}
			b.WriteString(s)
		}
		if rapid.Bool().Draw(t, "trailing") {
			b.WriteString(strings.Repeat("/", rapid.IntRange(1, 3).Draw(t, "trailingN")))
		}
		if got, want := ResolveRoot(b.String()), "/"+segs[0]+"/"; got != want {
			t.Fatalf("ResolveRoot(%q) = %q, want %q", b.String(), got, want)
		}
	})
}

func TestResolveRoot_Idempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.String().Draw(t, "s")
		once := ResolveRoot(s)
		if twice := ResolveRoot(once); twice != once {
			t.Fatalf("ResolveRoot not idempotent for %q: %q then %q", s, once, twice)
		}
	})
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "/", Normalize(""))
	assert.Equal(t, "/", Normalize("//"))
	assert.Equal(t, "/project/dev/", Normalize("project/dev"))
	assert.Equal(t, "/project/dev/", Normalize("/project//dev/"))
}

func TestJoin(t *testing.T) {
	cases := []struct {
		base, asset, want string
	}{
		{"", "logo.png", "/logo.png"},
		{"/", "logo.png", "/logo.png"},
		{"/project/v1/", "logo.png", "/project/v1/logo.png"},
		{"/project/v1/", "/logo.png", "/project/v1/logo.png"},
		{"/project/v1", "logo.png", "/project/v1/logo.png"},
		{"TOKEN", "logo.png", "TOKENlogo.png"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Join(c.base, c.asset), "Join(%q, %q)", c.base, c.asset)
	}
}
