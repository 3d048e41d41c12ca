package version

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func showPackageInfo(cmd *cobra.Command, args []string) error {
	writePackageInfo(cmd.OutOrStdout(), GetPackageInfo())
	return nil
}

func writePackageInfo(w io.Writer, pkgInfo PackageInfo) {
	fmt.Fprintf(w,
		"Program: %s\nOwner: %s\nRepository Name: %s\nRepository URL: %s\nVersion: %s\nCommit: %s\nRelease Date: %s\nGo: %s\nPlatform: %s\n",
		pkgInfo.PackageName,
		pkgInfo.RepoUser,
		pkgInfo.RepoName,
		pkgInfo.RepoUrl,
		pkgInfo.PackageVersion,
		pkgInfo.PackageCommit,
		pkgInfo.PackageReleaseDate,
		pkgInfo.GoVersion,
		pkgInfo.Platform,
	)
}
