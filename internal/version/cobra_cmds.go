package version

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewSelfCommand creates the 'self' parent command, which adds some of the other
// commands in this file as subcommands.
//
// When adding this as a subcommand to another CLI, use:
//
//	cmd.AddCommand(version.NewSelfCommand())
func NewSelfCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "self",
		Short: "Information about this csvdash build",
	}

	cmd.AddCommand(NewPackageInfoCommand())
	cmd.AddCommand(NewVersionCommand())

	return cmd
}

// NewVersionCommand adds a 'version' subcommand, which prints the package's version.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print CLI's version",
		Run: func(cmd *cobra.Command, args []string) {
			pkgInfo := GetPackageInfo()
			fmt.Fprintf(cmd.OutOrStdout(), "package: %s version:%s commit:%s date:%s\n",
				pkgInfo.PackageName,
				pkgInfo.PackageVersion,
				pkgInfo.PackageCommit,
				pkgInfo.PackageReleaseDate,
			)
		},
	}
}

// NewPackageInfoCommand adds a subcommand 'info' and prints info about the package.
func NewPackageInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show info about the current package",
		RunE:  showPackageInfo,
	}
}
