package ifaces

import (
	"testing"

	"github.com/kuuji/netmirror/internal/nlattr"
)

func TestParseVlanResolvesBaseIfaceAndProtocol(t *testing.T) {
	t.Parallel()

	var payload []byte
	payload = append(payload, nlattr.EncodeU16(IFLA_VLAN_ID, 42)...)
	payload = append(payload, nlattr.EncodeU16BE(IFLA_VLAN_PROTOCOL, 0x88a8)...)

	byIndex := map[int]string{3: "eth0"}
	v := ParseVlan(nlattr.Iterate(payload), 3, byIndex)

	if v.VlanID != 42 {
		t.Errorf("VlanID = %d, want 42", v.VlanID)
	}
	if v.BaseIface != "eth0" {
		t.Errorf("BaseIface = %q, want eth0", v.BaseIface)
	}
	if v.Protocol != "802.1ad" {
		t.Errorf("Protocol = %q, want 802.1ad", v.Protocol)
	}
}

func TestParseVlanDefaultsProtocolWhenAbsent(t *testing.T) {
	t.Parallel()

	payload := nlattr.EncodeU16(IFLA_VLAN_ID, 7)
	v := ParseVlan(nlattr.Iterate(payload), 99, map[int]string{})

	if v.Protocol != "802.1Q" {
		t.Errorf("Protocol = %q, want default 802.1Q", v.Protocol)
	}
	if v.BaseIface != "99" {
		t.Errorf("BaseIface = %q, want stringified fallback 99", v.BaseIface)
	}
}
