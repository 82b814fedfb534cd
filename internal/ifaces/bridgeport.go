package ifaces

import "github.com/kuuji/netmirror/internal/nlattr"

// ParseBridgePort decodes IFLA_INFO_SLAVE_DATA for a bridge member interface.
func ParseBridgePort(data []nlattr.Attr, byIndex map[int]string) *BridgePort {
	m := nlattr.Map(data)
	info := &BridgePort{StpState: "unknown"}
	if v, ok := u8(m, IFLA_BRPORT_STATE); ok {
		if s, ok := stpStateByRaw[uint32(v)]; ok {
			info.StpState = s
		}
	}
	if v, ok := u16(m, IFLA_BRPORT_PRIORITY); ok {
		info.Priority = v
	}
	if v, ok := u32(m, IFLA_BRPORT_COST); ok {
		info.Cost = v
	}
	info.Hairpin = boolU8(m, IFLA_BRPORT_MODE_HAIRPIN)
	info.Guard = boolU8(m, IFLA_BRPORT_GUARD)
	info.Protect = boolU8(m, IFLA_BRPORT_PROTECT)
	info.FastLeave = boolU8(m, IFLA_BRPORT_FAST_LEAVE)
	info.Learning = boolU8(m, IFLA_BRPORT_LEARNING)
	info.Flood = boolU8(m, IFLA_BRPORT_UNICAST_FLOOD)
	info.ProxyArp = boolU8(m, IFLA_BRPORT_PROXYARP)
	if v, ok := i32Attr(m, IFLA_BRPORT_BACKUP_PORT); ok {
		name := resolveIndex(byIndex, v)
		info.BackupPort = &name
	}
	return info
}
