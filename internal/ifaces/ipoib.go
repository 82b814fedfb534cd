package ifaces

import "github.com/kuuji/netmirror/internal/nlattr"

// ParseIpoib decodes IFLA_INFO_DATA for an IP-over-InfiniBand interface.
func ParseIpoib(data []nlattr.Attr) *Ipoib {
	m := nlattr.Map(data)
	info := &Ipoib{Mode: "datagram"}
	if v, ok := u16(m, IFLA_IPOIB_PKEY); ok {
		info.Pkey = v
	}
	if v, ok := u16(m, IFLA_IPOIB_MODE); ok {
		if v == 0 {
			info.Mode = "datagram"
		} else {
			info.Mode = "connected"
		}
	}
	if v, ok := u8(m, IFLA_IPOIB_UMCAST); ok {
		info.Umcast = v
	}
	return info
}
