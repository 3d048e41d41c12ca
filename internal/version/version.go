package version

import "runtime"

// Set at build time with -ldflags "-X github.com/redjax/csvdash/internal/version.Version=..."
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"

	RepoUser = "redjax"
	RepoName = "csvdash"
	RepoUrl  = "https://github.com/redjax/csvdash"
	Package  = "csvdash"
)

type PackageInfo struct {
	PackageName        string
	RepoUrl            string
	RepoUser           string
	RepoName           string
	PackageVersion     string
	PackageCommit      string
	PackageReleaseDate string
	GoVersion          string
	Platform           string
}

// GetPackageInfo returns a struct with information about the current package
func GetPackageInfo() PackageInfo {
	return PackageInfo{
		PackageName:        Package,
		RepoUrl:            RepoUrl,
		RepoUser:           RepoUser,
		RepoName:           RepoName,
		PackageVersion:     Version,
		PackageCommit:      Commit,
		PackageReleaseDate: Date,
		GoVersion:          runtime.Version(),
		Platform:           runtime.GOOS + "/" + runtime.GOARCH,
	}
}
