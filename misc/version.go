// Package misc holds build time information.
package misc

// Set with -ldflags "-X justify/misc.version=... -X justify/misc.gitHash=..."
var (
	version = "dev"
	gitHash = "unknown"
)

// GetAppName returns program name, used for log names, temporary files and
// report archives.
func GetAppName() string {
	return "justify"
}

func GetVersion() string {
	return version
}

func GetGitHash() string {
	return gitHash
}
