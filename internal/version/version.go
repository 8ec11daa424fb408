// Package version exposes build information injected at link time.
package version

//nolint:gochecknoglobals // Overridden with -ldflags "-X" at build time.
var (
	// Version is the semantic version of the build.
	Version = "0.5.0"
	// Commit is the git commit the binary was built from.
	Commit = "none"
	// BuildTime is the build timestamp.
	BuildTime = "unknown"
)

// Short returns the bare version.
func Short() string {
	return Version
}

// Full returns version, commit and build time in one line.
func Full() string {
	return "version: " + Version + ", commit: " + Commit + ", built at: " + BuildTime
}
