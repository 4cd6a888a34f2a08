package buildinfo

import "fmt"

// Set at link time with -ldflags "-X .../buildinfo.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("contrastly %s (commit=%s, date=%s)", Version, Commit, Date)
}

// UserAgent is sent with outgoing HTTP requests.
func UserAgent() string {
	return "contrastly/" + Version
}
