package ifaces

import "github.com/kuuji/netmirror/internal/nlattr"

// ParseXfrm decodes IFLA_INFO_DATA for an IPsec virtual tunnel interface.
func ParseXfrm(data []nlattr.Attr, byIndex map[int]string) *Xfrm {
	m := nlattr.Map(data)
	info := &Xfrm{}
	if v, ok := i32Attr(m, IFLA_XFRM_LINK); ok {
		info.BaseIface = resolveIndex(byIndex, v)
	}
	if v, ok := u32(m, IFLA_XFRM_IF_ID); ok {
		info.IfID = v
	}
	return info
}
