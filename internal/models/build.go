package models

import "fmt"

// BuildInformation is set at build time using ldflags.
type BuildInformation struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"buildDate"`
}

// VersionString returns the version, with the short commit
// hash appended if the version is latest.
func (b BuildInformation) VersionString() string {
	const commitShortHashLength = 7
	if b.Version != "latest" || len(b.Commit) != commitShortHashLength {
		return b.Version
	}
	return b.Version + "-" + b.Commit
}

func (b BuildInformation) String() string {
	return fmt.Sprintf("version %s built on %s (commit %s)",
		b.VersionString(), b.Date, b.Commit)
}
