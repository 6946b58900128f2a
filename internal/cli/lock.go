package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/keelpkg/keel/pkg/errors"
	"github.com/keelpkg/keel/pkg/lockfile"
	"github.com/keelpkg/keel/pkg/manifest"
	"github.com/keelpkg/keel/pkg/resolver"
)

// lockCommand creates the lock document management command.
func (c *CLI) lockCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "lock",
		Short: "Manage the project lock document",
	}

	cmd.PersistentFlags().StringVarP(&dir, "dir", "C", ".", "project directory containing "+manifest.FileName)

	cmd.AddCommand(c.lockGenerateCommand(&dir))
	cmd.AddCommand(c.lockStatusCommand(&dir))
	cmd.AddCommand(c.lockShowCommand(&dir))

	return cmd
}

// lockGenerateCommand creates the "lock generate" subcommand.
// Without --force, the lock document is only rewritten when it is
// outdated relative to the manifest.
func (c *CLI) lockGenerateCommand(dir *string) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write " + lockfile.FileName + " from the manifest's dependencies",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			if err := errors.ValidateProjectDir(*dir); err != nil {
				return err
			}

			outdated, err := lockfile.IsOutdated(*dir)
			if err != nil {
				return err
			}
			if !outdated && !force {
				printInfo("%s is up to date", lockfile.FileName)
				return nil
			}

			m, err := manifest.Load(*dir)
			if err != nil {
				return err
			}
			logger.Debugf("loaded %s: %d direct dependencies", manifest.FileName, len(m.Dependencies))

			graph, err := resolver.ManifestResolver{}.Resolve(cmd.Context(), m)
			if err != nil {
				return err
			}

			prog := newProgress(logger)
			if force {
				err = lockfile.Overwrite(*dir, graph)
			} else {
				err = lockfile.Generate(*dir, graph)
			}
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Locked %d packages", len(graph)))

			printSuccess("Wrote %s", lockfile.Path(*dir))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "rewrite the lock document even if it is fresh")

	return cmd
}

// lockStatusCommand creates the "lock status" subcommand.
func (c *CLI) lockStatusCommand(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Report whether " + lockfile.FileName + " is outdated",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errors.ValidateProjectDir(*dir); err != nil {
				return err
			}

			outdated, err := lockfile.IsOutdated(*dir)
			if err != nil {
				return err
			}
			if outdated {
				printWarning("%s is missing or older than %s", lockfile.FileName, manifest.FileName)
				printDetail("Run 'keel lock generate' to refresh it")
			} else {
				printSuccess("%s is up to date", lockfile.FileName)
			}
			return nil
		},
	}
}

// lockShowCommand creates the "lock show" subcommand.
// A missing lock document is a normal state, not an error.
func (c *CLI) lockShowCommand(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the packages recorded in " + lockfile.FileName,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errors.ValidateProjectDir(*dir); err != nil {
				return err
			}

			graph, err := lockfile.Read(*dir)
			if err != nil {
				return err
			}
			if graph == nil {
				printInfo("No %s found; run 'keel lock generate'", lockfile.FileName)
				return nil
			}

			for _, pkg := range graph.Sorted() {
				printKeyValue(pkg.Name, pkg.Version)
				if edges := graph[pkg]; len(edges) > 0 {
					names := make([]string, 0, len(edges))
					for _, dep := range edges {
						names = append(names, dep.Name)
					}
					printDetail("depends on %s", strings.Join(names, ", "))
				}
			}
			return nil
		},
	}
}
