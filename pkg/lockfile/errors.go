package lockfile

import (
	"fmt"

	"github.com/keelpkg/keel/pkg/errors"
)

// VersionError is returned by Read when the persisted document's schema
// version does not match SchemaVersion. The caller decides whether to
// abort or regenerate; no migration is attempted here.
type VersionError struct {
	Found int64 // The version the document actually declared
}

// Error implements the error interface.
func (e *VersionError) Error() string {
	return fmt.Sprintf("invalid lockfile version found: %d", e.Found)
}

// Code returns the error code for this error type.
func (e *VersionError) Code() errors.Code {
	return errors.ErrCodeInvalidLockfileVersion
}

// ReadError is returned by Read when parsing or structural extraction of
// the lock document fails. Message carries the underlying parser
// diagnostic verbatim.
type ReadError struct {
	Message string
}

// Error implements the error interface.
func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read lockfile:\n%s", e.Message)
}

// Code returns the error code for this error type.
func (e *ReadError) Code() errors.Code {
	return errors.ErrCodeFailedToReadLockfile
}
