package ifaces

import (
	"net"
	"testing"

	"github.com/kuuji/netmirror/internal/nlattr"
)

func TestParseVxlanDecodesAddressesAndPortRange(t *testing.T) {
	t.Parallel()

	var payload []byte
	payload = append(payload, nlattr.EncodeU32(IFLA_VXLAN_ID, 100)...)
	payload = append(payload, nlattr.EncodeIP(IFLA_VXLAN_GROUP, net.ParseIP("239.1.1.1").To4())...)
	payload = append(payload, nlattr.EncodeIP(IFLA_VXLAN_LOCAL, net.ParseIP("10.0.0.1").To4())...)
	payload = append(payload, nlattr.EncodeU16BE(IFLA_VXLAN_PORT, 4789)...)
	payload = append(payload, nlattr.EncodeU8(IFLA_VXLAN_LEARNING, 1)...)

	portRange := make([]byte, 4)
	portRange[0], portRange[1] = 0x04, 0xd2 // 1234
	portRange[2], portRange[3] = 0x13, 0x88 // 5000
	payload = append(payload, nlattr.Encode(IFLA_VXLAN_PORT_RANGE, portRange)...)

	v := ParseVxlan(nlattr.Iterate(payload), 0, map[int]string{})

	if v.VxlanID != 100 {
		t.Errorf("VxlanID = %d, want 100", v.VxlanID)
	}
	if v.Remote != "239.1.1.1" {
		t.Errorf("Remote = %q, want 239.1.1.1", v.Remote)
	}
	if v.Local != "10.0.0.1" {
		t.Errorf("Local = %q, want 10.0.0.1", v.Local)
	}
	if v.Port != 4789 {
		t.Errorf("Port = %d, want 4789", v.Port)
	}
	if !v.Learning {
		t.Errorf("Learning = false, want true")
	}
	if v.SrcPortMin != 1234 || v.SrcPortMax != 5000 {
		t.Errorf("SrcPortMin/Max = %d/%d, want 1234/5000", v.SrcPortMin, v.SrcPortMax)
	}
}

func TestParseVxlanBaseIfaceOmittedWhenZero(t *testing.T) {
	t.Parallel()

	v := ParseVxlan(nil, 0, map[int]string{5: "eth0"})
	if v.BaseIface != "" {
		t.Errorf("BaseIface = %q, want empty when link index is 0 (no underlay binding)", v.BaseIface)
	}
}
