package ifaces

import "github.com/kuuji/netmirror/internal/nlattr"

// ParseVxlan decodes IFLA_INFO_DATA for a VXLAN interface. IFLA_VXLAN_PORT
// and IFLA_VXLAN_PORT_RANGE are both always network byte order regardless of
// host endianness, unlike most other uint16 fields in this namespace.
func ParseVxlan(data []nlattr.Attr, baseIndex int32, byIndex map[int]string) *Vxlan {
	m := nlattr.Map(data)
	info := &Vxlan{}
	if baseIndex != 0 {
		info.BaseIface = resolveIndex(byIndex, baseIndex)
	}
	if v, ok := u32(m, IFLA_VXLAN_ID); ok {
		info.VxlanID = v
	}
	if v, ok := ipv4(m, IFLA_VXLAN_GROUP); ok {
		info.Remote = v
	}
	if v, ok := ipv6(m, IFLA_VXLAN_GROUP6); ok {
		info.Remote6 = v
	}
	if v, ok := ipv4(m, IFLA_VXLAN_LOCAL); ok {
		info.Local = v
	}
	if v, ok := ipv6(m, IFLA_VXLAN_LOCAL6); ok {
		info.Local6 = v
	}
	if v, ok := u8(m, IFLA_VXLAN_TTL); ok {
		info.TTL = v
	}
	if v, ok := u8(m, IFLA_VXLAN_TOS); ok {
		info.TOS = v
	}
	info.Learning = boolU8(m, IFLA_VXLAN_LEARNING)
	info.UDPCsum = boolU8(m, IFLA_VXLAN_UDP_CSUM)
	if v, ok := u32(m, IFLA_VXLAN_AGEING); ok {
		info.AgeingSecs = v
	}
	if v, ok := u32(m, IFLA_VXLAN_LIMIT); ok {
		info.MaxAddress = v
	}
	if v, ok := u16be(m, IFLA_VXLAN_PORT); ok {
		info.Port = v
	}
	if a, ok := m[IFLA_VXLAN_PORT_RANGE]; ok && len(a.Value) >= 4 {
		lo, err1 := nlattr.U16BE(a.Value[0:2])
		hi, err2 := nlattr.U16BE(a.Value[2:4])
		if err1 == nil && err2 == nil {
			info.SrcPortMin = lo
			info.SrcPortMax = hi
		}
	}
	return info
}
