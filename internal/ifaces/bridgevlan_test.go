package ifaces

import (
	"testing"

	"github.com/kuuji/netmirror/internal/nlattr"
)

func vlanInfoAttr(flags, vid uint16) nlattr.Attr {
	v := make([]byte, 4)
	v[0] = byte(flags)
	v[1] = byte(flags >> 8)
	v[2] = byte(vid)
	v[3] = byte(vid >> 8)
	return nlattr.Attr{Type: IFLA_BRIDGE_VLAN_INFO, Value: v}
}

func TestParseBridgeVlansCoalescesRange(t *testing.T) {
	t.Parallel()

	entries := []nlattr.Attr{
		vlanInfoAttr(bridgeVlanInfoRangeBegin, 10),
		vlanInfoAttr(bridgeVlanInfoRangeEnd|bridgeVlanInfoUntagged, 20),
	}
	out := ParseBridgeVlans(nil, entries)
	if len(out) != 1 {
		t.Fatalf("got %d entries, want 1 coalesced range", len(out))
	}
	if out[0].VidRange == nil || *out[0].VidRange != [2]uint16{10, 20} {
		t.Errorf("VidRange = %v, want [10,20]", out[0].VidRange)
	}
	if !out[0].Untagged {
		t.Errorf("Untagged = false, want true (carried from the range-end flags)")
	}
}

func TestParseBridgeVlansStandaloneEntry(t *testing.T) {
	t.Parallel()

	entries := []nlattr.Attr{vlanInfoAttr(bridgeVlanInfoPvid, 5)}
	out := ParseBridgeVlans(nil, entries)
	if len(out) != 1 {
		t.Fatalf("got %d entries, want 1", len(out))
	}
	if out[0].Vid == nil || *out[0].Vid != 5 {
		t.Errorf("Vid = %v, want 5", out[0].Vid)
	}
	if out[0].VidRange != nil {
		t.Errorf("VidRange = %v, want nil for standalone entry", out[0].VidRange)
	}
	if !out[0].Pvid {
		t.Errorf("Pvid = false, want true")
	}
}

func TestParseBridgeVlansMixedRangeAndStandalone(t *testing.T) {
	t.Parallel()

	entries := []nlattr.Attr{
		vlanInfoAttr(bridgeVlanInfoRangeBegin, 100),
		vlanInfoAttr(bridgeVlanInfoRangeEnd, 105),
		vlanInfoAttr(0, 200),
	}
	out := ParseBridgeVlans(nil, entries)
	if len(out) != 2 {
		t.Fatalf("got %d entries, want 2", len(out))
	}
	if out[0].VidRange == nil || *out[0].VidRange != [2]uint16{100, 105} {
		t.Errorf("first entry = %+v, want range [100,105]", out[0])
	}
	if out[1].Vid == nil || *out[1].Vid != 200 {
		t.Errorf("second entry = %+v, want standalone vid 200", out[1])
	}
}

func TestParseBridgeVlansBothRangeFlagsSetIsScalar(t *testing.T) {
	t.Parallel()

	entries := []nlattr.Attr{
		vlanInfoAttr(bridgeVlanInfoRangeBegin|bridgeVlanInfoRangeEnd|bridgeVlanInfoPvid, 42),
	}
	out := ParseBridgeVlans(nil, entries)
	if len(out) != 1 {
		t.Fatalf("got %d entries, want 1 scalar entry", len(out))
	}
	if out[0].VidRange != nil {
		t.Errorf("VidRange = %v, want nil for a both-flags-set record", out[0].VidRange)
	}
	if out[0].Vid == nil || *out[0].Vid != 42 {
		t.Errorf("Vid = %v, want 42", out[0].Vid)
	}
	if !out[0].Pvid {
		t.Errorf("Pvid = false, want true")
	}
}

func TestParseBridgeVlansDanglingRangeEndIsDropped(t *testing.T) {
	t.Parallel()

	entries := []nlattr.Attr{
		vlanInfoAttr(bridgeVlanInfoRangeEnd, 20),
		vlanInfoAttr(0, 30),
	}
	out := ParseBridgeVlans(nil, entries)
	if len(out) != 1 {
		t.Fatalf("got %d entries, want 1 (dangling range-end dropped)", len(out))
	}
	if out[0].Vid == nil || *out[0].Vid != 30 {
		t.Errorf("surviving entry = %+v, want standalone vid 30", out[0])
	}
}
