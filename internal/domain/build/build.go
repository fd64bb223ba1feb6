// Package build provides domain entities for build information.
package build

// Info holds build-time information injected via ldflags.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// RepoURL returns the GitHub repository URL.
func RepoURL() string {
	return "https://github.com/bnema/pinboard"
}

// String formats the info for version output.
func (i Info) String() string {
	v := i.Version
	if v == "" {
		v = "dev"
	}
	if i.Commit != "" && i.Commit != "unknown" {
		v += " (" + i.Commit + ")"
	}
	if i.BuildDate != "" && i.BuildDate != "unknown" {
		v += " built " + i.BuildDate
	}
	if i.GoVersion != "" {
		v += " " + i.GoVersion
	}
	return v
}
