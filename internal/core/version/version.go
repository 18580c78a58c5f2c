// Package version provides information about the build version of the service.
package version

// Service is the name every reply carries
const Service = "Mishkal"

// BuildInfo holds version information about the service build.
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Info returns the build information. The version, commit, and date variables
// are intended to be set at build time using -ldflags.
func Info() BuildInfo {
	// -ldflags "-X 'mishkal/internal/core/version.version=1.0.1'
	// -X 'mishkal/internal/core/version.commit=abcd' -X 'mishkal/internal/core/version.date=2026-10-14'"
	return BuildInfo{
		Service: Service,
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}

// Version is the reported service version
func Version() string { return version }

var (
	version = "1.0.0"
	commit  = "none"
	date    = "unknown"
)
