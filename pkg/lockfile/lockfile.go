// Package lockfile persists a resolved dependency graph as keel.lock and
// reconstructs it on later runs.
//
// The lock document is the single durable artifact of resolution. It is
// versioned (schema version 1, exact match required on read), written
// wholesale via an atomic rename, and regenerated whenever it is older
// than the manifest. The graph-to-document transform is deliberately
// lossy: dependency edges are stored by name only, and reading the
// document back restores edge versions as the empty string. See
// ConvertToLock and ConvertToDeps.
//
// No locking is performed here. Concurrent processes touching the same
// lock file race on the filesystem; callers must serialize access with
// an external mechanism such as a workspace lock.
package lockfile

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/keelpkg/keel/pkg/errors"
	"github.com/keelpkg/keel/pkg/manifest"
	"github.com/keelpkg/keel/pkg/resolver"
)

const (
	// FileName is the fixed lock document name within a project directory.
	FileName = "keel.lock"

	// SchemaVersion is the only lock document schema this build can read
	// or write. Documents with any other version are rejected outright;
	// there is no migration path.
	SchemaVersion int64 = 1
)

// header precedes the TOML body of every generated lock document.
const header = "# This file is automatically generated by keel.\n" +
	"# It is not intended for manual editing.\n"

// File is the persisted lock document schema.
type File struct {
	Version int64    `toml:"version"`
	Package []Record `toml:"package"`
}

// Record is one locked package. Dependencies holds direct dependency
// names only; their versions are dropped on write (see ConvertToLock).
type Record struct {
	Name         string   `toml:"name"`
	Version      string   `toml:"version"`
	Dependencies []string `toml:"dependencies"`
}

// Path returns the lock document path within dir.
func Path(dir string) string {
	return filepath.Join(dir, FileName)
}

// IsOutdated reports whether the lock document in dir must be
// regenerated: true when it does not exist, or when its mtime is
// strictly earlier than the manifest's. Only filesystem metadata is
// inspected, so a hand-edited but freshly-touched lock document still
// counts as up to date.
func IsOutdated(dir string) (bool, error) {
	lockInfo, err := os.Stat(Path(dir))
	if os.IsNotExist(err) {
		return true, nil
	}
	if err != nil {
		return false, errors.Wrap(errors.ErrCodeIO, err, "failed to stat %s", FileName)
	}

	manifestTime, err := manifest.LastModified(dir)
	if err != nil {
		return false, err
	}
	return lockInfo.ModTime().Before(manifestTime), nil
}

// Generate writes the lock document for g into dir if the existing one
// is outdated, and is a no-op otherwise. The freshness gate looks only
// at mtimes, never at content, so a fresh document is left byte-for-byte
// untouched even when g differs from what it records.
func Generate(dir string, g resolver.Graph) error {
	outdated, err := IsOutdated(dir)
	if err != nil {
		return err
	}
	if !outdated {
		return nil
	}
	return Overwrite(dir, g)
}

// Overwrite unconditionally replaces the lock document in dir with the
// serialized form of g. The document is written to a sibling temporary
// file and renamed into place, so a crash mid-write never leaves a
// truncated keel.lock behind.
func Overwrite(dir string, g resolver.Graph) error {
	data, err := encode(ConvertToLock(g))
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, FileName+".*.tmp")
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "failed to create temporary lockfile")
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return errors.Wrap(errors.ErrCodeIO, err, "failed to write %s", FileName)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return errors.Wrap(errors.ErrCodeIO, err, "failed to write %s", FileName)
	}
	if err := os.Rename(tmp.Name(), Path(dir)); err != nil {
		os.Remove(tmp.Name())
		return errors.Wrap(errors.ErrCodeIO, err, "failed to replace %s", FileName)
	}
	return nil
}

// Read loads the lock document from dir and reconstructs its graph.
//
// A missing document is the normal first-run state and yields (nil, nil),
// never an error. A document that cannot be parsed, or that lacks the
// version or package keys, fails with *ReadError carrying the underlying
// diagnostic. A parseable document whose version differs from
// SchemaVersion fails with *VersionError before any conversion.
func Read(dir string) (resolver.Graph, error) {
	data, err := os.ReadFile(Path(dir))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "failed to read %s", FileName)
	}

	var f File
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, &ReadError{Message: err.Error()}
	}
	if !md.IsDefined("version") {
		return nil, &ReadError{Message: "missing required key: version"}
	}
	if !md.IsDefined("package") {
		return nil, &ReadError{Message: "missing required key: package"}
	}
	if f.Version != SchemaVersion {
		return nil, &VersionError{Found: f.Version}
	}

	return ConvertToDeps(&f), nil
}

// encode serializes f with the generated-file header.
func encode(f *File) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(header)
	buf.WriteString("\n")

	enc := toml.NewEncoder(&buf)
	enc.Indent = ""
	if err := enc.Encode(f); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "failed to serialize %s", FileName)
	}
	return buf.Bytes(), nil
}
