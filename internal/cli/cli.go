// Package cli implements the keel command-line interface.
//
// This package provides commands for generating and inspecting the
// project lock document. The CLI is built using cobra and supports
// verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - lock generate: Write keel.lock from the manifest's dependencies
//   - lock status: Report whether keel.lock is outdated
//   - lock show: Print the packages recorded in keel.lock
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers
// are passed through context.Context to allow structured progress
// tracking.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/keelpkg/keel/pkg/buildinfo"
)

// appName is the application name used for display.
const appName = "keel"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Keel manages project dependencies through a versioned lockfile",
		Long:         `Keel is a package manager CLI. It records resolved dependencies in a versioned, diff-stable keel.lock document and regenerates it only when the manifest has changed.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.lockCommand())
	root.AddCommand(c.completionCommand())

	return root
}
