package ifaces

import "github.com/kuuji/netmirror/internal/nlattr"

// ParseVlan decodes IFLA_INFO_DATA for an 802.1Q/802.1ad VLAN sub-interface.
// BaseIface is resolved from the link's IFLA_LINK index; the caller passes
// byIndex so namespace-local links resolve to a name and cross-namespace
// links fall back to the stringified index (§4.2).
func ParseVlan(data []nlattr.Attr, baseIndex int32, byIndex map[int]string) *Vlan {
	m := nlattr.Map(data)
	info := &Vlan{
		BaseIface: resolveIndex(byIndex, baseIndex),
		Protocol:  "802.1Q",
	}
	if v, ok := u16(m, IFLA_VLAN_ID); ok {
		info.VlanID = v
	}
	if v, ok := u16be(m, IFLA_VLAN_PROTOCOL); ok {
		switch v {
		case 0x8100:
			info.Protocol = "802.1Q"
		case 0x88a8:
			info.Protocol = "802.1ad"
		}
	}
	return info
}
