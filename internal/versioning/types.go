package versioning

// Options controls which tags become documentation versions.
type Options struct {
	// MaxVersions caps the number of tagged versions; zero keeps all.
	MaxVersions int
	// Prereleases keeps tags such as v1.2.0-rc.1.
	Prereleases bool
}

// Version is one tagged release of the documentation.
type Version struct {
	Tag        string `json:"tag"`        // Tag name as found in the repository
	Canonical  string `json:"canonical"`  // semver canonical form (v1.2.3)
	Prerelease bool   `json:"prerelease"` // Whether the tag carries a prerelease suffix
}

// Well-known version segments that every deployment publishes next to tags.
const (
	StableSegment = "stable"
	DevSegment    = "dev"
)

// Index is the cross-version metadata shared by all deployed versions.
type Index struct {
	Versions []string `json:"versions"`
	Newest   string   `json:"newest"`
	Stable   string   `json:"stable"`
}
