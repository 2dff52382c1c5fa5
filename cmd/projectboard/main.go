// Package main is the entry point for the projectboard CLI.
//
// ProjectBoard can be run either as a library (SDK) or as a standalone binary
// with YAML configuration. This CLI provides the standalone binary approach.
//
// Usage:
//
//	projectboard run -c board.yaml      # Open an interactive board session
//	projectboard validate -c board.yaml # Validate configuration
//	projectboard version                # Show version info
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information - set by GoReleaser at build time via ldflags.
// Example: go build -ldflags "-X main.version=1.0.0"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCmd is the base command when called without subcommands.
// It just displays help - actual functionality is in subcommands.
var rootCmd = &cobra.Command{
	Use:   "projectboard",
	Short: "A small drag and drop project tracker",
	Long: `ProjectBoard keeps a list of projects, each either active or completed.

Projects are added through a validated form and moved between the active
and completed lists. Every change is pushed to the lists, which redraw
themselves from a fresh copy of the projects.

Quick start:
  1. Optionally create a config file (board.yaml)
  2. Run: projectboard run -c board.yaml
  3. Type "help" for the session commands

Example config:
  title: Sprint 12
  projects:
    - title: Project 1
      description: This is Project 1
      people: 1`,
	// No Run/RunE means this just shows help when called without subcommands
}

// Execute runs the root command.
// This is the main entry point called from main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error, just exit with code 1
		os.Exit(1)
	}
}

func main() {
	Execute()
}

// versionCmd prints version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print the version, commit hash, and build date of this projectboard binary.`,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "projectboard %s\n", version)
		fmt.Fprintf(out, "  commit: %s\n", commit)
		fmt.Fprintf(out, "  built:  %s\n", date)
	},
}

func init() {
	// Register subcommands with root
	rootCmd.AddCommand(versionCmd)
}
