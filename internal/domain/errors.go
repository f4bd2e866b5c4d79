package domain

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so callers can tell a bad URL from a full disk
// from an image the OS rejected.
type Kind string

const (
	KindInvalidInput        Kind = "InvalidInput"
	KindRemoteError         Kind = "RemoteError"
	KindProtocolViolation   Kind = "ProtocolViolation"
	KindNotAnImage          Kind = "NotAnImage"
	KindTransferError       Kind = "TransferError"
	KindDirectoryError      Kind = "DirectoryError"
	KindWriteError          Kind = "WriteError"
	KindCommitError         Kind = "CommitError"
	KindEncodingError       Kind = "EncodingError"
	KindInstallError        Kind = "InstallError"
	KindPathResolutionError Kind = "PathResolutionError"
	KindRegistryError       Kind = "RegistryError"
	KindUnsupportedPlatform Kind = "UnsupportedPlatform"
)

// Error is the error type returned by every pipeline stage and by the
// startup registrar. Msg is meant for humans and already names the
// offending URL, status or path.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

// Errorf builds an *Error of the given kind. A %w verb in format is
// unwrapped into Err so errors.Is keeps working on the cause.
func Errorf(kind Kind, format string, args ...any) *Error {
	wrapped := fmt.Errorf(format, args...)
	return &Error{Kind: kind, Msg: wrapped.Error(), Err: errors.Unwrap(wrapped)}
}

func (e *Error) Error() string {
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the Kind of the first *Error in err's chain, or "" if
// there is none.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return ""
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// ErrEntryNotFound is returned by autostart backends when asked to remove
// or read an entry that does not exist.
var ErrEntryNotFound = errors.New("autostart entry not found")
