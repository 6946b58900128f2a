// Package resolver defines the resolved dependency graph model shared by
// the lockfile subsystem and the CLI, plus the Resolver boundary that
// produces such graphs.
//
// A full registry-backed resolver is out of scope for keel's core; the
// package ships a manifest-backed resolver that records only the direct
// dependencies declared in keel.toml. The graph types themselves are what
// the lockfile subsystem persists and reconstructs.
package resolver

import (
	"cmp"
	"context"
	"slices"

	"github.com/keelpkg/keel/pkg/manifest"
)

// Package identifies a resolved package. The (Name, Version) pair is the
// unique key of a graph node and is immutable once constructed.
type Package struct {
	Name    string // Package name
	Version string // Resolved version
}

// Dependency is a directed edge from a package to one of its direct
// dependencies. Version may be empty when the edge was reconstructed
// from a lockfile, where dependency versions are not recorded.
type Dependency struct {
	Name    string
	Version string
}

// Graph maps each resolved package to its direct dependencies.
//
// A nil edge slice means the package's dependencies are not tracked
// (a leaf from the resolver's point of view); a non-nil slice, even an
// empty one, means the package was resolved with the listed edges.
// Graphs are owned by the caller of each operation and are never
// retained by the lockfile subsystem.
type Graph map[Package][]Dependency

// Resolver produces a fully resolved dependency graph for a project.
// Implementations may contact package registries; the manifest resolver
// below does not.
type Resolver interface {
	Resolve(ctx context.Context, m *manifest.Manifest) (Graph, error)
}

// Sorted returns the graph's packages ordered by name, then version.
// Map iteration order is unspecified in Go, so every consumer that needs
// reproducible output (lockfile serialization, CLI listings) goes
// through this.
func (g Graph) Sorted() []Package {
	pkgs := make([]Package, 0, len(g))
	for pkg := range g {
		pkgs = append(pkgs, pkg)
	}
	slices.SortFunc(pkgs, func(a, b Package) int {
		if c := cmp.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return cmp.Compare(a.Version, b.Version)
	})
	return pkgs
}

// ManifestResolver builds a shallow graph from the manifest's declared
// dependencies without contacting a registry. Each declared dependency
// becomes a leaf node keyed by its requirement string, and the project's
// own package carries the edges. It implements Resolver.
type ManifestResolver struct{}

// Resolve builds the shallow graph for m. The context is accepted for
// interface compatibility; no blocking work is performed.
func (ManifestResolver) Resolve(_ context.Context, m *manifest.Manifest) (Graph, error) {
	g := make(Graph, len(m.Dependencies)+1)

	deps := make([]Dependency, 0, len(m.Dependencies))
	for name, req := range m.Dependencies {
		deps = append(deps, Dependency{Name: name, Version: req})
		g[Package{Name: name, Version: req}] = nil
	}
	slices.SortFunc(deps, func(a, b Dependency) int {
		return cmp.Compare(a.Name, b.Name)
	})

	g[Package{Name: m.Package.Name, Version: m.Package.Version}] = deps
	return g, nil
}

// Ensure ManifestResolver implements Resolver.
var _ Resolver = ManifestResolver{}
