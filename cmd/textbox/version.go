package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	VersionMajor   = 0
	VersionMinor   = 1
	VersionPatch   = 0
	VersionRelease = "-dev" // -dev -release etc.
)

var Version = fmt.Sprintf("%d.%d.%d%s", VersionMajor, VersionMinor, VersionPatch, VersionRelease)

// set with -ldflags "-X main.commit=... -X main.buildDate=..."
var (
	commit    string
	buildDate string
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "textbox %s (commit %s, built %s)\n", Version, getShortCommit(), getBuildDate())
	},
}

// getShortCommit returns the first 8 characters of the commit hash
func getShortCommit() string {
	if len(commit) >= 8 {
		return commit[:8]
	}
	if commit == "" {
		return "dev"
	}
	return commit
}

func getBuildDate() string {
	if buildDate == "" {
		return "unknown"
	}
	return buildDate
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
