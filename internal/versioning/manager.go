package versioning

import (
	"errors"
	"log/slog"
	"sort"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"golang.org/x/mod/semver"

	serrors "git.home.luguber.info/inful/sitecfg/internal/errors"
	"git.home.luguber.info/inful/sitecfg/internal/logfields"
)

// Discover reads the tags of the repository at repoPath and returns the
// documentation versions, newest first.
func Discover(repoPath string, opts Options) ([]Version, error) {
	repo, err := git.PlainOpenWithOptions(repoPath, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, serrors.GitError(repoPath, err)
	}

	iter, err := repo.Tags()
	if err != nil {
		return nil, serrors.GitError(repoPath, err)
	}
	defer iter.Close()

	var tags []string
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		tags = append(tags, ref.Name().Short())
		return nil
	})
	if err != nil {
		return nil, serrors.GitError(repoPath, err)
	}

	versions := Select(tags, opts)
	slog.Debug("Discovered documentation versions",
		logfields.Repository(repoPath),
		slog.Int("tags", len(tags)),
		logfields.Count(len(versions)))
	return versions, nil
}

// Select filters tag names down to semantic versions and orders them newest
// first. Tags without a leading "v" are accepted when the rest is valid.
func Select(tags []string, opts Options) []Version {
	seen := make(map[string]bool, len(tags))
	versions := make([]Version, 0, len(tags))
	for _, tag := range tags {
		canonical, ok := canonicalize(tag)
		if !ok || seen[canonical] {
			continue
		}
		pre := semver.Prerelease(canonical) != ""
		if pre && !opts.Prereleases {
			continue
		}
		seen[canonical] = true
		versions = append(versions, Version{Tag: tag, Canonical: canonical, Prerelease: pre})
	}

	sort.SliceStable(versions, func(i, j int) bool {
		return semver.Compare(versions[i].Canonical, versions[j].Canonical) > 0
	})

	if opts.MaxVersions > 0 && len(versions) > opts.MaxVersions {
		versions = versions[:opts.MaxVersions]
	}
	return versions
}

func canonicalize(tag string) (string, bool) {
	v := tag
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return "", false
	}
	return semver.Canonical(v), true
}

// ErrNoVersions is returned by Newest when no release exists.
var ErrNoVersions = errors.New("no tagged versions")

// Newest returns the highest non-prerelease version, falling back to the
// highest prerelease when nothing else exists.
func Newest(versions []Version) (Version, error) {
	if len(versions) == 0 {
		return Version{}, ErrNoVersions
	}
	for _, v := range versions {
		if !v.Prerelease {
			return v, nil
		}
	}
	return versions[0], nil
}
