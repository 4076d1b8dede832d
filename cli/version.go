package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Set via ldflags at build time:
//
//	go build -ldflags "-X github.com/YuliaD2609/DesktopPotato/cli.Version=1.0.0
//	  -X github.com/YuliaD2609/DesktopPotato/cli.Commit=abc123"
var (
	Version = "dev"
	Commit  = "unknown"
)

// VersionInfo returns a formatted version string.
func VersionInfo() string {
	commit := Commit
	if len(commit) > 7 {
		commit = commit[:7]
	}
	return fmt.Sprintf("desktop-potato %s (commit: %s, %s/%s)", Version, commit, runtime.GOOS, runtime.GOARCH)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of desktop-potato",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), VersionInfo())
		},
	}
}
