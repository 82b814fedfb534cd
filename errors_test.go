package netmirror

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/sys/unix"
)

func TestIsMatchesConstructedKind(t *testing.T) {
	t.Parallel()

	err := InvalidArgument("bad vlan id", nil)
	if !Is(err, KindInvalidArgument) {
		t.Errorf("Is(err, KindInvalidArgument) = false, want true")
	}
	if Is(err, KindNetlink) {
		t.Errorf("Is(err, KindNetlink) = true, want false")
	}
}

func TestIsFalseForPlainError(t *testing.T) {
	t.Parallel()

	if Is(errors.New("plain"), KindBug) {
		t.Errorf("Is should return false for an error that isn't *Error")
	}
}

func TestErrorUnwrapsToErrno(t *testing.T) {
	t.Parallel()

	err := NetlinkFailure("link add", unix.EEXIST)
	if !errors.Is(err, unix.EEXIST) {
		t.Errorf("errors.Is(err, unix.EEXIST) = false, want true (Unwrap must expose the cause)")
	}
}

func TestErrorMessageIncludesKindAndCause(t *testing.T) {
	t.Parallel()

	err := PermissionDenied("set link up", unix.EPERM)
	msg := err.Error()
	if msg == "" {
		t.Fatal("Error() returned empty string")
	}
	if !strings.Contains(msg, "permission_denied") {
		t.Errorf("Error() = %q, want it to contain the kind permission_denied", msg)
	}
	if !strings.Contains(msg, unix.EPERM.Error()) {
		t.Errorf("Error() = %q, want it to contain the cause %q", msg, unix.EPERM.Error())
	}
	var e *Error
	if !errors.As(err, &e) {
		t.Fatal("errors.As failed to recover *Error")
	}
	if e.Kind != KindPermissionDenied {
		t.Errorf("Kind = %v, want KindPermissionDenied", e.Kind)
	}
}

func TestBugErrorHasNilCauseWhenNotGiven(t *testing.T) {
	t.Parallel()

	err := Bug("unexpected slice length", nil)
	var e *Error
	if !errors.As(err, &e) {
		t.Fatal("errors.As failed")
	}
	if e.Err != nil {
		t.Errorf("Err = %v, want nil", e.Err)
	}
}
