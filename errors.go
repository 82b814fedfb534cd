package netmirror

import (
	"errors"
	"fmt"
)

// Kind is the closed error taxonomy from the design: every error this
// library returns to a caller classifies as exactly one of these.
type Kind int

const (
	// KindInvalidArgument means caller-supplied data failed validation: a
	// bad IP literal, a missing base interface, an unsupported IfaceType
	// for creation, an unsupported state value.
	KindInvalidArgument Kind = iota
	// KindNetlink means the kernel or transport returned a netlink error;
	// Errno carries the raw errno when the kernel supplied one.
	KindNetlink
	// KindPermissionDenied is raised from EPERM during a mutation.
	KindPermissionDenied
	// KindBug means an internal invariant was violated: an unexpected
	// slice length, an index overflow, a malformed kernel payload that
	// nonetheless made it past decode.
	KindBug
)

func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid_argument"
	case KindNetlink:
		return "netlink"
	case KindPermissionDenied:
		return "permission_denied"
	case KindBug:
		return "bug"
	default:
		return "unknown"
	}
}

// Error is the single error type this library returns. Use errors.As to
// recover it and inspect Kind/Errno; use errors.Is against the kernel errno
// (e.g. errors.Is(err, unix.EEXIST)) to test specific netlink failures,
// since Error wraps the underlying cause.
type Error struct {
	Kind Kind
	Msg  string
	Err  error // underlying cause, may be a unix.Errno; may be nil
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("netmirror: %s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("netmirror: %s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

func newErr(kind Kind, msg string, cause error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: cause}
}

// InvalidArgument builds a KindInvalidArgument error.
func InvalidArgument(msg string, cause error) error { return newErr(KindInvalidArgument, msg, cause) }

// NetlinkFailure builds a KindNetlink error.
func NetlinkFailure(msg string, cause error) error { return newErr(KindNetlink, msg, cause) }

// PermissionDenied builds a KindPermissionDenied error.
func PermissionDenied(msg string, cause error) error {
	return newErr(KindPermissionDenied, msg, cause)
}

// Bug builds a KindBug error: an internal invariant was violated.
func Bug(msg string, cause error) error { return newErr(KindBug, msg, cause) }

// Is reports whether err is a *Error of the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
