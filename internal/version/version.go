package version

import "fmt"

// These variables are set at build time via ldflags
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Info is the build information served by /version.
type Info struct {
	Service   string `json:"service"`
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"buildTime"`
}

// Current returns the build information of this binary.
func Current() Info {
	return Info{
		Service:   "hive",
		Version:   Version,
		Commit:    shortCommit(),
		BuildTime: BuildTime,
	}
}

// String returns the version string
func String() string {
	return fmt.Sprintf("hive %s (commit: %s, built: %s)", Version, shortCommit(), BuildTime)
}

func shortCommit() string {
	if len(Commit) > 7 {
		return Commit[:7]
	}
	return Commit
}
