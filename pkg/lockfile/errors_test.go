package lockfile

import (
	"testing"

	"github.com/keelpkg/keel/pkg/errors"
)

func TestVersionError(t *testing.T) {
	err := &VersionError{Found: 2}

	if got, want := err.Error(), "invalid lockfile version found: 2"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if err.Code() != errors.ErrCodeInvalidLockfileVersion {
		t.Errorf("Code() = %q, want %q", err.Code(), errors.ErrCodeInvalidLockfileVersion)
	}
}

func TestReadError(t *testing.T) {
	err := &ReadError{Message: "toml: line 3: expected value"}

	// The parser diagnostic is carried verbatim on its own line.
	if got, want := err.Error(), "failed to read lockfile:\ntoml: line 3: expected value"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if err.Code() != errors.ErrCodeFailedToReadLockfile {
		t.Errorf("Code() = %q, want %q", err.Code(), errors.ErrCodeFailedToReadLockfile)
	}
}
