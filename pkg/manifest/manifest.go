// Package manifest reads the human-authored keel.toml project file.
//
// The manifest is the input side of the lockfile subsystem's staleness
// check: the lockfile is regenerated whenever it is older than the
// manifest. Only the fields the rest of keel consumes are modeled here.
package manifest

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/keelpkg/keel/pkg/errors"
)

// FileName is the fixed manifest file name within a project directory.
const FileName = "keel.toml"

// Manifest holds the declared project metadata and direct dependencies.
type Manifest struct {
	Package struct {
		Name    string `toml:"name"`
		Version string `toml:"version"`
	} `toml:"package"`
	// Dependencies maps package name to its version requirement string.
	Dependencies map[string]string `toml:"dependencies"`
}

// Path returns the manifest path within dir.
func Path(dir string) string {
	return filepath.Join(dir, FileName)
}

// Load reads and parses the manifest in dir.
// A missing manifest is an error: unlike the lockfile, a project without
// keel.toml is not a keel project at all.
func Load(dir string) (*Manifest, error) {
	data, err := os.ReadFile(Path(dir))
	if os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeManifestNotFound, "no %s found in %s", FileName, dir)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "failed to read %s", FileName)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "failed to parse %s", FileName)
	}

	if m.Package.Name == "" {
		return nil, errors.New(errors.ErrCodeInvalidManifest, "package name missing in %s", FileName)
	}
	for name := range m.Dependencies {
		if err := errors.ValidatePackageName(name); err != nil {
			return nil, err
		}
	}

	return &m, nil
}

// LastModified returns the manifest's last-modification time.
// The manifest is expected to exist; any stat failure, including
// absence, is surfaced as an I/O error.
func LastModified(dir string) (time.Time, error) {
	info, err := os.Stat(Path(dir))
	if err != nil {
		return time.Time{}, errors.Wrap(errors.ErrCodeIO, err, "failed to stat %s", FileName)
	}
	return info.ModTime(), nil
}
