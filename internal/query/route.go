package query

import (
	"golang.org/x/sys/unix"

	"github.com/kuuji/netmirror/internal/nlattr"
	"github.com/kuuji/netmirror/internal/rtnl"
)

var routeProtocolByRaw = map[uint8]string{
	0: "unspec", 1: "redirect", 2: "kernel", 3: "boot", 4: "static", 0x10: "dhcp",
}

var routeScopeByRaw = map[uint8]string{0: "universe", 200: "site", 253: "link", 254: "host", 255: "nowhere"}

var routeTypeByRaw = map[uint8]string{
	1: "unicast", 2: "local", 3: "broadcast", 4: "anycast", 5: "multicast",
	6: "blackhole", 7: "unreachable", 8: "prohibit",
}

const (
	rtaDst      = unix.RTA_DST
	rtaSrc      = unix.RTA_SRC
	rtaOif      = unix.RTA_OIF
	rtaIif      = unix.RTA_IIF
	rtaGateway  = unix.RTA_GATEWAY
	rtaPriority = unix.RTA_PRIORITY
	rtaPrefsrc  = unix.RTA_PREFSRC
	rtaTable    = unix.RTA_TABLE
)

func convertRoute(r rtnl.RawRoute, byIndex map[int]string) Route {
	m := nlattr.Map(r.Attrs)
	out := Route{
		AddressFamily: int(r.Family),
		Table:         uint32(r.Table),
		DstLen:        int(r.DstLen),
		SrcLen:        int(r.SrcLen),
		Flags:         r.Flags,
	}
	if p, ok := routeProtocolByRaw[r.Protocol]; ok {
		out.Protocol = p
	} else {
		out.Protocol = "other"
	}
	if s, ok := routeScopeByRaw[r.Scope]; ok {
		out.Scope = s
	}
	if t, ok := routeTypeByRaw[r.Type]; ok {
		out.RouteType = t
	} else {
		out.RouteType = "other"
	}

	if a, ok := m[rtaTable]; ok {
		if v, err := nlattr.U32(a.Value); err == nil {
			out.Table = v
		}
	}
	if a, ok := m[rtaDst]; ok {
		out.Dst = decodeAddr(r.Family, a.Value)
	}
	if a, ok := m[rtaSrc]; ok {
		out.Src = decodeAddr(r.Family, a.Value)
	}
	if a, ok := m[rtaGateway]; ok {
		out.Gateway = decodeAddr(r.Family, a.Value)
	}
	if a, ok := m[rtaPrefsrc]; ok {
		out.PreferedSrc = decodeAddr(r.Family, a.Value)
	}
	if a, ok := m[rtaOif]; ok {
		if v, err := nlattr.U32(a.Value); err == nil {
			out.Oif = byIndex[int(v)]
		}
	}
	if a, ok := m[rtaIif]; ok {
		if v, err := nlattr.U32(a.Value); err == nil {
			out.Iif = byIndex[int(v)]
		}
	}
	if a, ok := m[rtaPriority]; ok {
		if v, err := nlattr.U32(a.Value); err == nil {
			out.Metric = &v
		}
	}
	return out
}

func decodeAddr(family uint8, b []byte) string {
	if family == unix.AF_INET6 {
		if ip, err := nlattr.IPv6(b); err == nil {
			return ip.String()
		}
		return ""
	}
	if ip, err := nlattr.IPv4(b); err == nil {
		return ip.String()
	}
	return ""
}
