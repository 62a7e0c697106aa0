package versioning

var (
	// Version is the main version at the moment.
	// Commit is the git commit that the binary was built on.
	// Embedded by --ldflags on build time.
	// Versioning should follow the SemVer guidelines
	// https://semver.org/
	Version string
	Commit  string
)
