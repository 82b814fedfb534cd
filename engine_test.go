package netmirror

import (
	"errors"
	"fmt"
	"testing"

	"golang.org/x/sys/unix"
)

func TestParseLftConventions(t *testing.T) {
	t.Parallel()

	if v, err := parseLft(""); err != nil || v != nil {
		t.Errorf("parseLft(\"\") = %v, %v; want nil, nil", v, err)
	}
	if v, err := parseLft("forever"); err != nil || v == nil || *v != 0xFFFFFFFF {
		t.Errorf("parseLft(forever) = %v, %v; want 0xFFFFFFFF, nil", v, err)
	}
	if v, err := parseLft("300sec"); err != nil || v == nil || *v != 300 {
		t.Errorf("parseLft(300sec) = %v, %v; want 300, nil", v, err)
	}
	if _, err := parseLft("300"); err == nil {
		t.Error("parseLft(300) should fail: missing sec suffix")
	}
	if _, err := parseLft("xsec"); err == nil {
		t.Error("parseLft(xsec) should fail: not a number")
	}
}

func TestRouteProtocolToRawDefaultsToStatic(t *testing.T) {
	t.Parallel()

	if got := routeProtocolToRaw(ProtoKernel); got != 2 {
		t.Errorf("routeProtocolToRaw(kernel) = %d, want 2", got)
	}
	if got := routeProtocolToRaw(RouteProtocol("bogus")); got != 4 {
		t.Errorf("routeProtocolToRaw(bogus) = %d, want 4 (static default)", got)
	}
}

func TestRouteScopeToRawDefaultsToUniverse(t *testing.T) {
	t.Parallel()

	if got := routeScopeToRaw(ScopeHost); got != 254 {
		t.Errorf("routeScopeToRaw(host) = %d, want 254", got)
	}
	if got := routeScopeToRaw(RouteScope("bogus")); got != 0 {
		t.Errorf("routeScopeToRaw(bogus) = %d, want 0 (universe default)", got)
	}
}

func TestAbsorbErrnoMatchesWrappedErrno(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("netlink: %w", unix.EEXIST)
	if !absorbErrno(err, unix.EEXIST) {
		t.Error("absorbErrno should match a wrapped matching errno")
	}
	if absorbErrno(err, unix.ESRCH) {
		t.Error("absorbErrno should not match a different errno")
	}
}

func TestAbsorbErrnoFalseForNonErrno(t *testing.T) {
	t.Parallel()

	if absorbErrno(errors.New("boom"), unix.EEXIST) {
		t.Error("absorbErrno should return false for a non-errno error")
	}
}

func TestAbsorbDeleteErrnoCoversIdempotentDeleteCases(t *testing.T) {
	t.Parallel()

	for _, errno := range []unix.Errno{unix.ESRCH, unix.EADDRNOTAVAIL, unix.ENODEV} {
		if !absorbDeleteErrno(fmt.Errorf("wrap: %w", errno)) {
			t.Errorf("absorbDeleteErrno should absorb %v", errno)
		}
	}
	if absorbDeleteErrno(fmt.Errorf("wrap: %w", unix.EPERM)) {
		t.Error("absorbDeleteErrno should not absorb EPERM")
	}
}

func TestBondModeToRawCoversAllModes(t *testing.T) {
	t.Parallel()

	want := map[BondMode]uint8{
		BondModeBalanceRR: 0, BondModeActiveBackup: 1, BondModeBalanceXOR: 2,
		BondModeBroadcast: 3, BondMode8023AD: 4, BondModeBalanceTLB: 5, BondModeBalanceALB: 6,
	}
	for mode, raw := range want {
		got, ok := bondModeToRaw[mode]
		if !ok || got != raw {
			t.Errorf("bondModeToRaw[%s] = %d, %v; want %d, true", mode, got, ok, raw)
		}
	}
}

func TestRouteActionToRawCoversAllActions(t *testing.T) {
	t.Parallel()

	want := map[RouteAction]uint8{
		RuleActionTable: 1, RuleActionGoto: 2, RuleActionNop: 3,
		RuleActionBlackhole: 6, RuleActionUnreachable: 7, RuleActionProhibit: 8,
	}
	for action, raw := range want {
		if got := routeActionToRaw(action); got != raw {
			t.Errorf("routeActionToRaw(%s) = %d, want %d", action, got, raw)
		}
	}
}

func TestRouteActionToRawDefaultsToTable(t *testing.T) {
	t.Parallel()

	if got := routeActionToRaw(RouteAction("bogus")); got != 1 {
		t.Errorf("routeActionToRaw(bogus) = %d, want 1 (table)", got)
	}
}
