// Package pkg provides the core libraries for the keel package manager.
//
// # Overview
//
// Keel records resolved project dependencies in a versioned, diff-stable
// lock document (keel.lock) and regenerates it only when the manifest
// (keel.toml) has changed. The pkg directory is organized as follows:
//
//   - [lockfile] - Lock document model, staleness check, converters,
//     reader and writer. The durability core of keel.
//   - [resolver] - Resolved dependency graph types and the Resolver
//     boundary, including a shallow manifest-backed resolver.
//   - [manifest] - keel.toml parsing and modification-time queries.
//   - [errors] - Structured error codes and validation helpers.
//   - [buildinfo] - Build-time version information.
//
// # Architecture
//
// The write path:
//
//	keel.toml → [manifest] → [resolver] → [lockfile] (staleness gate,
//	convert, serialize, atomic replace) → keel.lock
//
// The read path:
//
//	keel.lock → [lockfile] (parse, schema gate, convert) → resolver.Graph
//
// The lock document deliberately drops dependency edge versions on
// write; reading restores them as empty strings. See the lockfile
// package documentation for the full round-trip contract.
//
// [lockfile]: https://pkg.go.dev/github.com/keelpkg/keel/pkg/lockfile
// [resolver]: https://pkg.go.dev/github.com/keelpkg/keel/pkg/resolver
// [manifest]: https://pkg.go.dev/github.com/keelpkg/keel/pkg/manifest
// [errors]: https://pkg.go.dev/github.com/keelpkg/keel/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/keelpkg/keel/pkg/buildinfo
package pkg
