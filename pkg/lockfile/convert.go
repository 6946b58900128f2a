package lockfile

import (
	"github.com/keelpkg/keel/pkg/resolver"
)

// ConvertToLock maps a resolved graph to the lock document model.
//
// Each graph entry becomes one Record; dependency edges are reduced to
// their names, and a nil edge slice becomes an empty list. This is the
// single place edge version information is discarded - ConvertToDeps
// relies on that asymmetry when it restores versions as "".
//
// Records are emitted sorted by name, then version, so the same graph
// always serializes to the same bytes regardless of map iteration order.
func ConvertToLock(g resolver.Graph) *File {
	records := make([]Record, 0, len(g))
	for _, pkg := range g.Sorted() {
		edges := g[pkg]
		rec := Record{
			Name:         pkg.Name,
			Version:      pkg.Version,
			Dependencies: make([]string, 0, len(edges)),
		}
		for _, dep := range edges {
			rec.Dependencies = append(rec.Dependencies, dep.Name)
		}
		records = append(records, rec)
	}
	return &File{Version: SchemaVersion, Package: records}
}

// ConvertToDeps maps a parsed lock document back to a dependency graph.
//
// Dependency versions were dropped when the document was written, so
// each reconstructed edge carries the empty string as its version: a
// sentinel meaning "unknown, re-resolve if needed". An empty dependency
// list maps back to a nil edge slice (no tracked dependencies).
//
// Consequently ConvertToDeps(ConvertToLock(g)) preserves g's package
// keys and dependency name sets, but not edge versions. That lossiness
// is contractual, not incidental.
func ConvertToDeps(f *File) resolver.Graph {
	g := make(resolver.Graph, len(f.Package))
	for _, rec := range f.Package {
		var edges []resolver.Dependency
		if len(rec.Dependencies) > 0 {
			edges = make([]resolver.Dependency, 0, len(rec.Dependencies))
			for _, name := range rec.Dependencies {
				edges = append(edges, resolver.Dependency{Name: name, Version: ""})
			}
		}
		g[resolver.Package{Name: rec.Name, Version: rec.Version}] = edges
	}
	return g
}
