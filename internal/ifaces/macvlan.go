package ifaces

import "github.com/kuuji/netmirror/internal/nlattr"

var macVlanModeByRaw = map[uint32]string{
	1: "private",
	2: "vepa",
	4: "bridge",
	8: "passthru",
	16: "source",
}

// ParseMacVlan decodes IFLA_INFO_DATA shared by both macvlan and macvtap
// kinds (identical attribute layout; the discriminator is the outer
// IFLA_INFO_KIND string, handled by the caller).
func ParseMacVlan(data []nlattr.Attr, baseIndex int32, byIndex map[int]string) *MacVlan {
	m := nlattr.Map(data)
	info := &MacVlan{
		BaseIface: resolveIndex(byIndex, baseIndex),
		Mode:      "unknown",
	}
	if v, ok := u32(m, IFLA_MACVLAN_MODE); ok {
		if mode, ok := macVlanModeByRaw[v]; ok {
			info.Mode = mode
		}
	}
	return info
}
