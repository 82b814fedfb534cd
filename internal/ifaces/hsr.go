package ifaces

import "github.com/kuuji/netmirror/internal/nlattr"

// ParseHsr decodes IFLA_INFO_DATA for a High-availability Seamless Redundancy
// interface. Port1/Port2 carry kernel ifindexes, resolved like any other
// cross-link reference (§4.2).
func ParseHsr(data []nlattr.Attr, byIndex map[int]string) *Hsr {
	m := nlattr.Map(data)
	info := &Hsr{Protocol: "hsr"}
	if v, ok := i32Attr(m, IFLA_HSR_SLAVE1); ok {
		info.Port1 = resolveIndex(byIndex, v)
	}
	if v, ok := i32Attr(m, IFLA_HSR_SLAVE2); ok {
		info.Port2 = resolveIndex(byIndex, v)
	}
	if v, ok := mac(m, IFLA_HSR_SUPERVISION_ADDR); ok {
		info.SupervisionAddr = v
	}
	if v, ok := u8(m, IFLA_HSR_PROTOCOL); ok && v == 1 {
		info.Protocol = "prp"
	}
	if v, ok := u8(m, IFLA_HSR_MULTICAST_SPEC); ok {
		info.MulticastSpec = v
	}
	return info
}
